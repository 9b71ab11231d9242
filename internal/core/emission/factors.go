package emission

import "sort"

// factorTable 食材排放係數表（kg CO2e / kg 食材）
// 程序啟動時建立一次，之後只讀
var factorTable = map[string]float64{
	// 反芻動物肉類
	"beef":   99.48,
	"lamb":   39.72,
	"mutton": 39.72,
	"goat":   40.0,
	"veal":   35.0,

	// 其他肉類與禽肉
	"pork":    12.31,
	"chicken": 9.87,
	"turkey":  10.9,
	"duck":    10.5,

	// 海鮮
	"shrimp (farmed)":          26.87,
	"prawns (farmed)":          26.87,
	"fish (farmed salmon)":     4.0,
	"fish (farmed)":            13.63,
	"fish (wild caught - cod)": 5.77,
	"tuna (canned)":            6.1,
	"tuna (steak)":             6.22,
	"sardines":                 1.11,
	"mussels":                  0.62,
	"oysters":                  0.77,
	"clams":                    0.52,

	// 乳製品與蛋
	"cheese": 23.88,
	"butter": 12.1,
	"milk":   3.0,
	"yogurt": 2.55,
	"cream":  8.0,
	"eggs":   4.6,

	// 穀物
	"rice":   2.7,
	"wheat":  1.4,
	"oats":   0.9,
	"corn":   0.6,
	"quinoa": 5.0,
	"barley": 1.2,
	"rye":    1.1,

	// 豆類與植物蛋白
	"beans":     1.0,
	"lentils":   0.9,
	"tofu":      2.0,
	"peas":      1.0,
	"chickpeas": 1.2,
	"soybeans":  0.85,

	// 蔬菜
	"potatoes":     0.4,
	"tomatoes":     1.4,
	"onions":       0.5,
	"lettuce":      0.57,
	"cucumber":     0.7,
	"broccoli":     0.5,
	"carrots":      0.4,
	"bell peppers": 1.6,
	"spinach":      0.4,
	"cabbage":      0.3,
	"cauliflower":  0.5,
	"mushrooms":    1.0,
	"asparagus":    2.5,

	// 水果
	"apples":     0.4,
	"bananas":    0.8,
	"oranges":    0.5,
	"berries":    1.2,
	"grapes":     0.6,
	"avocado":    2.0,
	"mangoes":    1.5,
	"pineapples": 0.6,

	// 堅果、種子與油脂
	"nuts (mixed)":  2.3,
	"almonds":       3.56,
	"walnuts":       0.76,
	"peanuts":       2.5,
	"cashews":       3.0,
	"olive oil":     6.0,
	"sunflower oil": 3.0,
	"rapeseed oil":  2.49,
	"soybean oil":   4.25,
	"palm oil":      7.6,
	"coconut oil":   5.6,

	// 飲品與加工食品
	"coffee":           28.53,
	"dark chocolate":   46.65,
	"chocolate (milk)": 15.0,
	"sugar":            1.2,
	"beer":             1.18,
	"wine":             1.6,
	"orange juice":     0.93,
	"apple juice":      0.7,

	// 香料、調味料與其他
	"spices":                        1.5,
	"herbs (fresh)":                 6.01,
	"salt":                          0.22,
	"pepper (black)":                9.06,
	"water":                         0.0,
	"heavy cream":                   8.0,
	"garam masala":                  1.5,
	"kasuri methi":                  6.01,
	"cumin":                         1.5,
	"turmeric":                      1.5,
	"red chili":                     1.2,
	"coriander":                     6.01,
	"lemon juice":                   0.7,
	"cinnamon":                      1.5,
	"cloves":                        1.5,
	"bay leaf":                      1.5,
	"green chili":                   1.2,
	"ginger":                        1.5,
	"garlic":                        1.5,
	"paneer":                        23.88,
	"ghee":                          12.1,
	"raisins":                       1.2,
	"sultana":                       1.2,
	"saffron":                       1.5,
	"cardamom":                      1.5,
	"bayleaf":                       1.5,
	"chilli":                        1.2,
	"chilli powder":                 1.2,
	"chili powder":                  1.2,
	"fresh herbs":                   6.01,
	"dried herbs":                   3.0,
	"fresh spices":                  1.5,
	"ground spices":                 1.5,
	"whole spices":                  1.5,
	"seeds":                         2.0,
	"pumpkin seeds":                 2.0,
	"sunflower seeds":               2.0,
	"flax seeds":                    2.0,
	"chia seeds":                    2.0,
	"poppy seeds":                   2.0,
	"mustard seeds":                 2.0,
	"fennel seeds":                  2.0,
	"caraway seeds":                 2.0,
	"celery seeds":                  2.0,
	"coriander seeds":               2.0,
	"cumin seeds":                   2.0,
	"fenugreek":                     6.01,
	"dried fenugreek":               3.0,
	"curry leaves":                  6.01,
	"dried curry leaves":            3.0,
	"asafoetida":                    1.5,
	"amchur":                        1.5,
	"black salt":                    0.22,
	"rock salt":                     0.22,
	"sea salt":                      0.22,
	"himalayan salt":                0.22,
	"white sugar":                   1.2,
	"brown sugar":                   1.2,
	"jaggery":                       1.2,
	"palm sugar":                    1.2,
	"coconut sugar":                 1.2,
	"stevia":                        0.5,
	"honey":                         1.0,
	"maple syrup":                   1.0,
	"agave":                         1.0,
	"vinegar":                       0.5,
	"apple cider vinegar":           0.5,
	"white vinegar":                 0.5,
	"balsamic vinegar":              0.5,
	"red wine vinegar":              0.5,
	"rice vinegar":                  0.5,
	"citric acid":                   0.3,
	"lemon zest":                    0.7,
	"lime zest":                     0.7,
	"orange zest":                   0.5,
	"lemon grass":                   6.01,
	"kaffir lime leaves":            6.01,
	"curry powder":                  1.5,
	"garam masala powder":           1.5,
	"chicken masala":                1.5,
	"fish masala":                   1.5,
	"meat masala":                   1.5,
	"kitchen king masala":           1.5,
	"pav bhaji masala":              1.5,
	"chaat masala":                  1.5,
	"pani puri masala":              1.5,
	"rasam powder":                  1.5,
	"sambar powder":                 1.5,
	"idli podi":                     1.5,
	"gunpowder":                     1.5,
	"pickle masala":                 1.5,
	"papad masala":                  1.5,
	"roti masala":                   1.5,
	"paratha masala":                1.5,
	"naan masala":                   1.5,
	"kulcha masala":                 1.5,
	"poori masala":                  1.5,
	"bhaji masala":                  1.5,
	"pakora masala":                 1.5,
	"kebab masala":                  1.5,
	"tandoori masala":               1.5,
	"butter chicken masala":         1.5,
	"kadai masala":                  1.5,
	"korma masala":                  1.5,
	"vindaloo masala":               1.5,
	"jalfrezi masala":               1.5,
	"do pyaza masala":               1.5,
	"achari masala":                 1.5,
	"kashmiri masala":               1.5,
	"hyderabadi masala":             1.5,
	"awadhi masala":                 1.5,
	"lucknowi masala":               1.5,
	"banarasi masala":               1.5,
	"punjabi masala":                1.5,
	"gujarati masala":               1.5,
	"maharashtrian masala":          1.5,
	"karnataka masala":              1.5,
	"tamil masala":                  1.5,
	"kerala masala":                 1.5,
	"andhra masala":                 1.5,
	"telangana masala":              1.5,
	"odisha masala":                 1.5,
	"west bengal masala":            1.5,
	"bihar masala":                  1.5,
	"jharkhand masala":              1.5,
	"chhattisgarh masala":           1.5,
	"madhya pradesh masala":         1.5,
	"rajasthan masala":              1.5,
	"uttar pradesh masala":          1.5,
	"uttarakhand masala":            1.5,
	"haryana masala":                1.5,
	"delhi masala":                  1.5,
	"himachal pradesh masala":       1.5,
	"jammu and kashmir masala":      1.5,
	"ladakh masala":                 1.5,
	"sikkim masala":                 1.5,
	"arunachal pradesh masala":      1.5,
	"nagaland masala":               1.5,
	"manipur masala":                1.5,
	"mizoram masala":                1.5,
	"tripura masala":                1.5,
	"meghalaya masala":              1.5,
	"assam masala":                  1.5,
	"goa masala":                    1.5,
	"pondicherry masala":            1.5,
	"daman and diu masala":          1.5,
	"dadra and nagar haveli masala": 1.5,
	"chandigarh masala":             1.5,
	"andaman and nicobar masala":    1.5,
	"lakshadweep masala":            1.5,
}

// Factor 排放係數條目
type Factor struct {
	Name        string  `json:"name"`
	KgCO2ePerKg float64 `json:"kg_co2e_per_kg"`
}

// Lookup 以正規名稱精確查詢排放係數
func Lookup(name string) (float64, bool) {
	v, ok := factorTable[name]
	return v, ok
}

// Factors 回傳依名稱排序的完整係數表副本
func Factors() []Factor {
	out := make([]Factor, 0, len(factorTable))
	for name, v := range factorTable {
		out = append(out, Factor{Name: name, KgCO2ePerKg: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
