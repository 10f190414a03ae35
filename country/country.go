// Package country resolves country name references — ISO codes, official
// names, and common colloquialisms — to a canonical ISO-2 code via a
// bespoke four-stage cascade, per spec §4.7. It does not use the blocking
// chain or resolver.Resolve; only the fuzzy fallback stage scores the small
// closed catalog of registry names and aliases, via resolver.ScoreAndSort.
package country

// Record is one entry in the embedded ISO 3166-1 registry: the three code
// systems plus the name variants that resolve to them.
type Record struct {
	ISO2         string
	ISO3         string
	Numeric      string // zero-padded 3-digit, e.g. "004" for Afghanistan
	Name         string
	OfficialName string
	CommonName   string
}

// Country is the canonical record returned by Identifier: ISO-2 is always
// the canonical form, with ISO-3 and numeric available as alternate code
// systems. "XK" (Kosovo) is a user-assigned exception with fabricated
// ISO-3 "XKX" and numeric "000", gated by AllowUserAssigned.
type Country struct {
	ISO2    string
	ISO3    string
	Numeric string
	Name    string
}

// ToMap projects the record into a loose key-value form.
func (c Country) ToMap() map[string]any {
	return map[string]any{
		"iso2":    c.ISO2,
		"iso3":    c.ISO3,
		"numeric": c.Numeric,
		"name":    c.Name,
	}
}

// kosovo is the fabricated record for the user-assigned "XK" code, not
// present in ISO 3166-1 proper.
var kosovo = Record{ISO2: "XK", ISO3: "XKX", Numeric: "000", Name: "Kosovo"}
