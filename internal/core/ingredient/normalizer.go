package ingredient

import (
	"regexp"
	"strings"

	"foodprint/internal/pkg/common"
)

// MaxIngredients 清理後保留的食材上限
const MaxIngredients = 30

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	qualifierPattern     = regexp.MustCompile(`\b(fresh|ground|whole|chopped|minced|diced|sliced|ripe|large|small|powder|seeds)\b`)
)

// Normalize 清理食材名稱、去除重複並限制數量，保留原始順序與重量
func Normalize(items []common.Ingredient) []common.Ingredient {
	seen := make(map[string]struct{}, len(items))
	out := make([]common.Ingredient, 0, min(len(items), MaxIngredients))

	for _, item := range items {
		if item.Name == "" {
			continue
		}
		name := NormalizeName(item.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, common.Ingredient{Name: name, WeightKg: item.WeightKg})
		if len(out) == MaxIngredients {
			break
		}
	}
	return out
}

// NormalizeName 轉小寫、移除括號內容與描述詞，並合併空白
func NormalizeName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = parentheticalPattern.ReplaceAllString(s, "")
	s = qualifierPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
