package emission

import (
	"strings"
)

// DefaultFactor 未知食材使用的保守排放係數
const DefaultFactor = 1.0

// MatchSource 係數的決定方式
type MatchSource string

const (
	MatchExact   MatchSource = "exact"
	MatchRule    MatchSource = "rule"
	MatchDefault MatchSource = "default"
)

// Match 係數解析結果
type Match struct {
	Name      string      `json:"name"`
	Factor    float64     `json:"factor"`
	MatchedBy MatchSource `json:"matched_by"`
	Rule      string      `json:"rule,omitempty"`
}

// rule 子字串規則：名稱包含任一 token 即採用 target 的係數
type rule struct {
	tokens []string
	target string
}

// cascade 模糊比對規則，由上而下第一個命中者生效。
// 順序即優先權，部分規則被前面較寬的規則遮蔽，保留原樣不可去重。
var cascade = []rule{
	{tokens: []string{"chicken"}, target: "chicken"},
	{tokens: []string{"beef"}, target: "beef"},
	{tokens: []string{"pork"}, target: "pork"},
	{tokens: []string{"rice"}, target: "rice"},
	{tokens: []string{"tomato"}, target: "tomatoes"},
	{tokens: []string{"onion"}, target: "onions"},
	{tokens: []string{"oil"}, target: "olive oil"},
	{tokens: []string{"yogurt"}, target: "yogurt"},
	{tokens: []string{"paneer", "panner"}, target: "paneer"},
	{tokens: []string{"ghee"}, target: "ghee"},
	{tokens: []string{"garlic"}, target: "garlic"},
	{tokens: []string{"ginger"}, target: "ginger"},
	{tokens: []string{"cardamom", "clove", "cinnamon", "bay leaf", "bayleaf"}, target: "spices"},
	{tokens: []string{"mint", "cilantro", "coriander", "parsley"}, target: "herbs (fresh)"},
	{tokens: []string{"lemon"}, target: "lemon juice"},
	{tokens: []string{"lime"}, target: "lemon juice"},
	{tokens: []string{"chili", "chilli", "green chilli", "green chili", "red chili"}, target: "green chili"},
	{tokens: []string{"cashew"}, target: "cashews"},
	{tokens: []string{"almond"}, target: "almonds"},
	{tokens: []string{"raisin", "sultana"}, target: "raisins"},
	{tokens: []string{"saffron"}, target: "saffron"},
	{tokens: []string{"cumin"}, target: "cumin"},
	{tokens: []string{"turmeric"}, target: "turmeric"},
	{tokens: []string{"coriander"}, target: "coriander"},
	{tokens: []string{"lemon juice"}, target: "lemon juice"},
	{tokens: []string{"sugar"}, target: "sugar"},
	{tokens: []string{"cinnamon"}, target: "cinnamon"},
	{tokens: []string{"cloves"}, target: "cloves"},
	{tokens: []string{"bay leaf"}, target: "bay leaf"},
	{tokens: []string{"green chili"}, target: "green chili"},
	{tokens: []string{"ginger"}, target: "ginger"},
	{tokens: []string{"garlic"}, target: "garlic"},
	{tokens: []string{"water"}, target: "water"},
	{tokens: []string{"heavy cream"}, target: "heavy cream"},
	{tokens: []string{"garam masala"}, target: "garam masala"},
	{tokens: []string{"kasuri methi"}, target: "kasuri methi"},
	{tokens: []string{"red chili"}, target: "red chili"},
	{tokens: []string{"sunflower oil"}, target: "sunflower oil"},
	{tokens: []string{"salt"}, target: "salt"},
	{tokens: []string{"cream"}, target: "heavy cream"},
	{tokens: []string{"masala"}, target: "spices"},
	{tokens: []string{"powder"}, target: "spices"},
	{tokens: []string{"seeds"}, target: "seeds"},
	{tokens: []string{"herbs"}, target: "herbs (fresh)"},
	{tokens: []string{"spices"}, target: "spices"},
	{tokens: []string{"fresh"}, target: "herbs (fresh)"},
	{tokens: []string{"dried"}, target: "dried herbs"},
	{tokens: []string{"ground"}, target: "spices"},
	{tokens: []string{"whole"}, target: "spices"},
	{tokens: []string{"blend"}, target: "spices"},
	{tokens: []string{"mix"}, target: "spices"},
	{tokens: []string{"seasoning"}, target: "spices"},
	{tokens: []string{"flavoring"}, target: "spices"},
	{tokens: []string{"essence"}, target: "spices"},
	{tokens: []string{"extract"}, target: "spices"},
	{tokens: []string{"juice"}, target: "lemon juice"},
	{tokens: []string{"zest"}, target: "lemon zest"},
	{tokens: []string{"leaves"}, target: "herbs (fresh)"},
	{tokens: []string{"vinegar"}, target: "vinegar"},
	{tokens: []string{"acid"}, target: "citric acid"},
	{tokens: []string{"sweetener"}, target: "stevia"},
	{tokens: []string{"syrup"}, target: "maple syrup"},
	{tokens: []string{"honey"}, target: "honey"},
	{tokens: []string{"jaggery"}, target: "jaggery"},
	{tokens: []string{"palm"}, target: "palm sugar"},
	{tokens: []string{"coconut"}, target: "coconut sugar"},
	{tokens: []string{"stevia"}, target: "stevia"},
	{tokens: []string{"agave"}, target: "agave"},
	{tokens: []string{"black salt"}, target: "black salt"},
	{tokens: []string{"rock salt"}, target: "rock salt"},
	{tokens: []string{"sea salt"}, target: "sea salt"},
	{tokens: []string{"himalayan salt"}, target: "himalayan salt"},
	{tokens: []string{"white sugar"}, target: "white sugar"},
	{tokens: []string{"brown sugar"}, target: "brown sugar"},
	{tokens: []string{"apple cider vinegar"}, target: "apple cider vinegar"},
	{tokens: []string{"white vinegar"}, target: "white vinegar"},
	{tokens: []string{"balsamic vinegar"}, target: "balsamic vinegar"},
	{tokens: []string{"red wine vinegar"}, target: "red wine vinegar"},
	{tokens: []string{"rice vinegar"}, target: "rice vinegar"},
	{tokens: []string{"lemon grass"}, target: "lemon grass"},
	{tokens: []string{"kaffir lime leaves"}, target: "kaffir lime leaves"},
	{tokens: []string{"curry powder"}, target: "curry powder"},
	{tokens: []string{"garam masala powder"}, target: "garam masala powder"},
	{tokens: []string{"chicken masala"}, target: "chicken masala"},
	{tokens: []string{"fish masala"}, target: "fish masala"},
	{tokens: []string{"meat masala"}, target: "meat masala"},
	{tokens: []string{"kitchen king masala"}, target: "kitchen king masala"},
	{tokens: []string{"pav bhaji masala"}, target: "pav bhaji masala"},
	{tokens: []string{"chaat masala"}, target: "chaat masala"},
	{tokens: []string{"pani puri masala"}, target: "pani puri masala"},
	{tokens: []string{"rasam powder"}, target: "rasam powder"},
	{tokens: []string{"sambar powder"}, target: "sambar powder"},
	{tokens: []string{"idli podi"}, target: "idli podi"},
	{tokens: []string{"gunpowder"}, target: "gunpowder"},
	{tokens: []string{"pickle masala"}, target: "pickle masala"},
	{tokens: []string{"papad masala"}, target: "papad masala"},
	{tokens: []string{"roti masala"}, target: "roti masala"},
	{tokens: []string{"paratha masala"}, target: "paratha masala"},
	{tokens: []string{"naan masala"}, target: "naan masala"},
	{tokens: []string{"kulcha masala"}, target: "kulcha masala"},
	{tokens: []string{"poori masala"}, target: "poori masala"},
	{tokens: []string{"bhaji masala"}, target: "bhaji masala"},
	{tokens: []string{"pakora masala"}, target: "pakora masala"},
	{tokens: []string{"kebab masala"}, target: "kebab masala"},
	{tokens: []string{"tandoori masala"}, target: "tandoori masala"},
	{tokens: []string{"butter chicken masala"}, target: "butter chicken masala"},
	{tokens: []string{"kadai masala"}, target: "kadai masala"},
	{tokens: []string{"korma masala"}, target: "korma masala"},
	{tokens: []string{"vindaloo masala"}, target: "vindaloo masala"},
	{tokens: []string{"jalfrezi masala"}, target: "jalfrezi masala"},
	{tokens: []string{"do pyaza masala"}, target: "do pyaza masala"},
	{tokens: []string{"achari masala"}, target: "achari masala"},
	{tokens: []string{"kashmiri masala"}, target: "kashmiri masala"},
	{tokens: []string{"hyderabadi masala"}, target: "hyderabadi masala"},
	{tokens: []string{"awadhi masala"}, target: "awadhi masala"},
	{tokens: []string{"lucknowi masala"}, target: "lucknowi masala"},
	{tokens: []string{"banarasi masala"}, target: "banarasi masala"},
	{tokens: []string{"punjabi masala"}, target: "punjabi masala"},
	{tokens: []string{"gujarati masala"}, target: "gujarati masala"},
	{tokens: []string{"maharashtrian masala"}, target: "maharashtrian masala"},
	{tokens: []string{"karnataka masala"}, target: "karnataka masala"},
	{tokens: []string{"tamil masala"}, target: "tamil masala"},
	{tokens: []string{"kerala masala"}, target: "kerala masala"},
	{tokens: []string{"andhra masala"}, target: "andhra masala"},
	{tokens: []string{"telangana masala"}, target: "telangana masala"},
	{tokens: []string{"odisha masala"}, target: "odisha masala"},
	{tokens: []string{"west bengal masala"}, target: "west bengal masala"},
	{tokens: []string{"bihar masala"}, target: "bihar masala"},
	{tokens: []string{"jharkhand masala"}, target: "jharkhand masala"},
	{tokens: []string{"chhattisgarh masala"}, target: "chhattisgarh masala"},
	{tokens: []string{"madhya pradesh masala"}, target: "madhya pradesh masala"},
	{tokens: []string{"rajasthan masala"}, target: "rajasthan masala"},
	{tokens: []string{"uttar pradesh masala"}, target: "uttar pradesh masala"},
	{tokens: []string{"uttarakhand masala"}, target: "uttarakhand masala"},
	{tokens: []string{"haryana masala"}, target: "haryana masala"},
	{tokens: []string{"delhi masala"}, target: "delhi masala"},
	{tokens: []string{"himachal pradesh masala"}, target: "himachal pradesh masala"},
	{tokens: []string{"jammu and kashmir masala"}, target: "jammu and kashmir masala"},
	{tokens: []string{"ladakh masala"}, target: "ladakh masala"},
	{tokens: []string{"sikkim masala"}, target: "sikkim masala"},
	{tokens: []string{"arunachal pradesh masala"}, target: "arunachal pradesh masala"},
	{tokens: []string{"nagaland masala"}, target: "nagaland masala"},
	{tokens: []string{"manipur masala"}, target: "manipur masala"},
	{tokens: []string{"mizoram masala"}, target: "mizoram masala"},
	{tokens: []string{"tripura masala"}, target: "tripura masala"},
	{tokens: []string{"meghalaya masala"}, target: "meghalaya masala"},
	{tokens: []string{"assam masala"}, target: "assam masala"},
	{tokens: []string{"goa masala"}, target: "goa masala"},
	{tokens: []string{"pondicherry masala"}, target: "pondicherry masala"},
	{tokens: []string{"daman and diu masala"}, target: "daman and diu masala"},
	{tokens: []string{"dadra and nagar haveli masala"}, target: "dadra and nagar haveli masala"},
	{tokens: []string{"chandigarh masala"}, target: "chandigarh masala"},
	{tokens: []string{"andaman and nicobar masala"}, target: "andaman and nicobar masala"},
	{tokens: []string{"lakshadweep masala"}, target: "lakshadweep masala"},
}

// ResolveFactor 解析任意食材名稱的排放係數，永不失敗且不為負
func ResolveFactor(name string) float64 {
	return Resolve(name).Factor
}

// Resolve 依序執行精確查詢、規則比對、預設值，並回傳命中來源
func Resolve(name string) Match {
	key := strings.ToLower(strings.TrimSpace(name))

	if v, ok := factorTable[key]; ok {
		return Match{Name: key, Factor: v, MatchedBy: MatchExact}
	}

	for _, r := range cascade {
		for _, tok := range r.tokens {
			if strings.Contains(key, tok) {
				return Match{Name: key, Factor: factorTable[r.target], MatchedBy: MatchRule, Rule: tok}
			}
		}
	}

	return Match{Name: key, Factor: DefaultFactor, MatchedBy: MatchDefault}
}
