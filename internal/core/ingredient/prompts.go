package ingredient

import "fmt"

const imagePrompt = `Identify the dish and list likely ingredients for one serving with weight_kg. Return JSON: {"dish": string, "ingredients": [...]}`

func dishPrompt(dish string) string {
	return fmt.Sprintf(`You are a culinary expert. Return ONLY a JSON array with 12-30 items. Each item must be {"ingredient": string, "weight_g": number}. Use common global English names, lowercase, and estimate realistic grams per single serving. Include spices, oils, herbs and common add-ons when typical. No explanations or markdown. Dish: %s.`, dish)
}

func expandPrompt(dish, seed string) string {
	return fmt.Sprintf(`Expand this list of ingredients for a single serving of %s. Ensure a comprehensive list of 18-30 items including aromatics, spices, oils, herbs, toppings and typical accompaniments. Return ONLY JSON array of {"ingredient": string, "weight_g": number}. Start from this seed and add missing items without duplicating: %s`, dish, seed)
}
