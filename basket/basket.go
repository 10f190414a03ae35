// Package basket resolves commodity basket references — named groupings of
// metals traded or priced as a unit, such as "4E PGM" (Pt, Pd, Rh, Au) — to
// canonical records.
package basket

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/entityidentity/internal/normalize"
)

// idPattern is the required shape of a basket_id: uppercase letters,
// digits, and underscores only.
var idPattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

// Component is one element of a basket: a metal symbol with an optional
// weight percentage, parsed from the "symbol" or "symbol:weight_pct" wire
// form.
type Component struct {
	Symbol     string
	WeightPct  float64
	HasWeight  bool
}

// String renders the component back to its wire form.
func (c Component) String() string {
	if !c.HasWeight {
		return c.Symbol
	}
	return c.Symbol + ":" + strconv.FormatFloat(c.WeightPct, 'f', -1, 64)
}

// ParseComponent parses a single "symbol" or "symbol:weight_pct" token.
func ParseComponent(raw string) (Component, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Component{}, eris.New("basket: empty component")
	}
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) == 1 {
		return Component{Symbol: parts[0]}, nil
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Component{}, eris.Wrapf(err, "basket: invalid weight_pct in component %q", raw)
	}
	return Component{Symbol: strings.TrimSpace(parts[0]), WeightPct: weight, HasWeight: true}, nil
}

// Basket is the canonical record for a resolved commodity basket.
// basket_id is explicit, human-assigned data (e.g. "PGM_4E"), validated
// against idPattern rather than derived by the Go ID Generator hash: the
// worked example `basket_identifier("4e pgm")` resolving to
// `basket_id:"PGM_4E"` shows a readable code, not a SHA1 digest.
type Basket struct {
	BasketID    string `csv:"basket_id"`
	Name        string `csv:"name"`
	NameNorm    string `csv:"name_norm"`
	Description string `csv:"description"`

	Component1  string `csv:"component1"`
	Component2  string `csv:"component2"`
	Component3  string `csv:"component3"`
	Component4  string `csv:"component4"`
	Component5  string `csv:"component5"`
	Component6  string `csv:"component6"`
	Component7  string `csv:"component7"`
	Component8  string `csv:"component8"`
	Component9  string `csv:"component9"`
	Component10 string `csv:"component10"`

	Alias1  string `csv:"alias1"`
	Alias2  string `csv:"alias2"`
	Alias3  string `csv:"alias3"`
	Alias4  string `csv:"alias4"`
	Alias5  string `csv:"alias5"`
	Alias6  string `csv:"alias6"`
	Alias7  string `csv:"alias7"`
	Alias8  string `csv:"alias8"`
	Alias9  string `csv:"alias9"`
	Alias10 string `csv:"alias10"`
}

// PrimaryName satisfies fuzzy.Candidate.
func (b Basket) PrimaryName() string { return b.NameNorm }

// AliasNames satisfies fuzzy.Candidate, returning only the non-empty slots
// of the fixed 10-wide alias array, normalized.
func (b Basket) AliasNames() []string {
	raw := [10]string{b.Alias1, b.Alias2, b.Alias3, b.Alias4, b.Alias5, b.Alias6, b.Alias7, b.Alias8, b.Alias9, b.Alias10}
	out := make([]string, 0, 10)
	for _, a := range raw {
		if a != "" {
			out = append(out, normalize.MatchNormalize(normalize.DomainBasket, a))
		}
	}
	return out
}

// Components parses the fixed 10-wide component array into Component
// values, skipping empty slots.
func (b Basket) Components() []Component {
	raw := [10]string{b.Component1, b.Component2, b.Component3, b.Component4, b.Component5,
		b.Component6, b.Component7, b.Component8, b.Component9, b.Component10}
	out := make([]Component, 0, 10)
	for _, c := range raw {
		if c == "" {
			continue
		}
		if parsed, err := ParseComponent(c); err == nil {
			out = append(out, parsed)
		}
	}
	return out
}

// Valid checks the basket's invariants: at least one component, and
// basket_id matches idPattern.
func (b Basket) Valid() bool {
	return len(b.Components()) >= 1 && idPattern.MatchString(b.BasketID)
}

// Hydrate fills derived columns when absent from the snapshot file:
// name_norm only. basket_id is never derived; it must come from source
// data already matching idPattern.
func (b *Basket) Hydrate() {
	if b.NameNorm == "" {
		b.NameNorm = normalize.MatchNormalize(normalize.DomainBasket, b.Name)
	}
}

// ToMap projects the record into a loose key-value form.
func (b Basket) ToMap() map[string]any {
	components := b.Components()
	symbols := make([]string, 0, len(components))
	for _, c := range components {
		symbols = append(symbols, c.Symbol)
	}
	m := map[string]any{
		"basket_id":  b.BasketID,
		"name":       b.Name,
		"name_norm":  b.NameNorm,
		"components": symbols,
	}
	if b.Description != "" {
		m["description"] = b.Description
	}
	if aliases := b.AliasNames(); len(aliases) > 0 {
		m["aliases"] = aliases
	}
	return m
}
