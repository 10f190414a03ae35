// Package place resolves first-level administrative division references
// (US states, Australian territories, Canadian provinces, and similar
// GeoNames admin1 divisions) to canonical records.
package place

import (
	"github.com/sells-group/entityidentity/internal/idgen"
	"github.com/sells-group/entityidentity/internal/normalize"
)

// Attribution is the required provenance string for every place record,
// regardless of source loader.
const Attribution = "Data from GeoNames (geonames.org)"

// Place is the canonical record for a resolved admin1 division.
// (Country, Admin1Code) is unique.
type Place struct {
	PlaceID    string `csv:"place_id"`
	PlaceKey   string `csv:"place_key"`
	Country    string `csv:"country"` // ISO-2
	Admin1Code string `csv:"admin1_code"`
	Admin1     string `csv:"admin1"`
	NameNorm   string `csv:"name_norm"`
	GeonameID  string `csv:"geonameid"`
	Lat        string `csv:"lat"`
	Lon        string `csv:"lon"`

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
func (p Place) PrimaryName() string { return p.NameNorm }

// AliasNames satisfies fuzzy.Candidate, returning only the non-empty slots
// of the fixed 10-wide alias array, normalized.
func (p Place) AliasNames() []string {
	raw := [10]string{p.Alias1, p.Alias2, p.Alias3, p.Alias4, p.Alias5, p.Alias6, p.Alias7, p.Alias8, p.Alias9, p.Alias10}
	out := make([]string, 0, 10)
	for _, a := range raw {
		if a != "" {
			out = append(out, normalize.MatchNormalize(normalize.DomainPlace, a))
		}
	}
	return out
}

// Hydrate fills derived columns when absent from the snapshot file:
// name_norm, place_key, and the place_id per the
// SHA1("{country}.{admin1_code}|place") convention.
func (p *Place) Hydrate() {
	if p.NameNorm == "" {
		p.NameNorm = normalize.MatchNormalize(normalize.DomainPlace, p.Admin1)
	}
	if p.PlaceKey == "" {
		p.PlaceKey = normalize.Slugify(p.Country + "-" + p.Admin1)
	}
	if p.PlaceID == "" {
		p.PlaceID = idgen.Place(p.Country, p.Admin1Code)
	}
}

// ToMap projects the record into a loose key-value form.
func (p Place) ToMap() map[string]any {
	m := map[string]any{
		"place_id":    p.PlaceID,
		"place_key":   p.PlaceKey,
		"country":     p.Country,
		"admin1_code": p.Admin1Code,
		"admin1":      p.Admin1,
		"attribution": Attribution,
	}
	if p.GeonameID != "" {
		m["geonameid"] = p.GeonameID
	}
	if p.Lat != "" && p.Lon != "" {
		m["lat"] = p.Lat
		m["lon"] = p.Lon
	}
	if aliases := p.AliasNames(); len(aliases) > 0 {
		m["aliases"] = aliases
	}
	return m
}
