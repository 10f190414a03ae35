package blocking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Symbol  string
	Name    string
	Country string
	Aliases []string
}

func nameNorm(r row) string        { return r.Name }
func aliasNorms(r row) []string    { return r.Aliases }
func countryOf(r row) string       { return r.Country }
func symbolOf(r row) string        { return r.Symbol }
func providerOf(r row) string      { return r.Country } // reused field for pattern test

func TestChain_EqualityFiltersByField(t *testing.T) {
	pool := []row{{Name: "alpha", Country: "AU"}, {Name: "beta", Country: "ZA"}}
	chain := NewChain(Equality("country", countryOf, "AU", true))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 1)
	assert.Equal(t, "alpha", result.Pool[0].Name)
}

func TestChain_EqualitySkippedWhenHintMissing(t *testing.T) {
	pool := []row{{Name: "alpha", Country: "AU"}, {Name: "beta", Country: "ZA"}}
	chain := NewChain(Equality("country", countryOf, "", false))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 2)
}

func TestChain_ExactNormalizedShortCircuitsOnHighConfidence(t *testing.T) {
	pool := []row{{Symbol: "pt", Name: "platinum"}, {Symbol: "pd", Name: "palladium"}}
	chain := NewChain(ExactNormalized("symbol", symbolOf, "pt", true))
	result := chain.Run(pool)
	assert.True(t, result.Exact)
	assert.Len(t, result.Pool, 1)
}

func TestChain_PrefixSkippedForShortQuery(t *testing.T) {
	pool := []row{{Name: "platinum"}, {Name: "palladium"}}
	chain := NewChain(Prefix("prefix", nameNorm, aliasNorms, "pt"))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 2)
}

func TestChain_PrefixMatchesNameOrAlias(t *testing.T) {
	pool := []row{
		{Name: "four element pgm", Aliases: []string{"pgm 4e", "4e pgm"}},
		{Name: "battery metals complex"},
	}
	chain := NewChain(Prefix("prefix", nameNorm, aliasNorms, "pgm"))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 1)
}

func TestChain_FallsBackToInputWhenStepEmptiesPool(t *testing.T) {
	pool := []row{{Name: "platinum"}, {Name: "palladium"}}
	chain := NewChain(Prefix("prefix", nameNorm, aliasNorms, "xyz"))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 2)
}

func TestChain_ContainsFiltersOnSubstring(t *testing.T) {
	pool := []row{{Name: "ammonium paratungstate (powder)"}, {Name: "ammonium paratungstate (briquette)"}}
	chain := NewChain(Contains("form", nameNorm, "briquette"))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 1)
}

func TestChain_PatternSourceFiltersByProvider(t *testing.T) {
	pool := []row{{Country: "fastmarkets", Name: "nickel"}, {Country: "lme", Name: "nickel"}}
	patterns := []NamedPattern{
		{Provider: "fastmarkets", Regexp: regexp.MustCompile(`^MB-[A-Z0-9]+-\d+$`)},
	}
	chain := NewChain(PatternSource("source", providerOf, "MB-NI-0001", patterns))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 1)
	assert.Equal(t, "fastmarkets", result.Pool[0].Country)
}

func TestChain_PatternSourceNoMatchPassesThrough(t *testing.T) {
	pool := []row{{Country: "fastmarkets"}, {Country: "lme"}}
	patterns := []NamedPattern{
		{Provider: "fastmarkets", Regexp: regexp.MustCompile(`^MB-[A-Z0-9]+-\d+$`)},
	}
	chain := NewChain(PatternSource("source", providerOf, "not-a-ticker", patterns))
	result := chain.Run(pool)
	assert.Len(t, result.Pool, 2)
}
