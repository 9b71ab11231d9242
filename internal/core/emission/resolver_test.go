package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		factor    float64
		matchedBy MatchSource
		rule      string
	}{
		{name: "精確命中", input: "chicken", factor: 9.87, matchedBy: MatchExact},
		{name: "大小寫與空白", input: "  RICE ", factor: 2.7, matchedBy: MatchExact},
		{name: "規則命中", input: "Chicken Thigh", factor: 9.87, matchedBy: MatchRule, rule: "chicken"},
		{name: "精確優先於規則", input: "chicken masala", factor: 1.5, matchedBy: MatchExact},
		{name: "較寬規則優先", input: "spicy chicken masala curry", factor: 9.87, matchedBy: MatchRule, rule: "chicken"},
		{name: "油類歸為橄欖油", input: "mystery oil", factor: 6.0, matchedBy: MatchRule, rule: "oil"},
		{name: "masala 先於 powder", input: "fish masala powder", factor: 1.5, matchedBy: MatchRule, rule: "masala"},
		{name: "香草", input: "mint sprigs", factor: 6.01, matchedBy: MatchRule, rule: "mint"},
		{name: "未知食材", input: "zzzz", factor: DefaultFactor, matchedBy: MatchDefault},
		{name: "空字串", input: "", factor: DefaultFactor, matchedBy: MatchDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Resolve(tt.input)
			assert.Equal(t, tt.factor, m.Factor)
			assert.Equal(t, tt.matchedBy, m.MatchedBy)
			assert.Equal(t, tt.rule, m.Rule)
			assert.Equal(t, tt.factor, ResolveFactor(tt.input))
		})
	}
}

func TestCascadeTargetsExist(t *testing.T) {
	for _, r := range cascade {
		require.NotEmpty(t, r.tokens)
		_, ok := factorTable[r.target]
		assert.True(t, ok, "target %q missing from factor table", r.target)
	}
}

func TestFactorsNonNegative(t *testing.T) {
	for _, f := range Factors() {
		assert.GreaterOrEqual(t, f.KgCO2ePerKg, 0.0, f.Name)
	}
}

func TestFactorsSorted(t *testing.T) {
	list := Factors()
	require.Len(t, list, len(factorTable))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("beef")
	require.True(t, ok)
	assert.Equal(t, 99.48, v)

	_, ok = Lookup("Beef")
	assert.False(t, ok)
}
