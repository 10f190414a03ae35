// Package company resolves company name references to canonical golden
// records sourced from GLEIF, Wikidata, and exchange listings.
package company

import (
	"github.com/sells-group/entityidentity/internal/idgen"
	"github.com/sells-group/entityidentity/internal/normalize"
)

// Source identifies which registry a company record was sourced from.
// Source priority GLEIF > Wikidata > exchange resolves cross-source
// duplicates at build time.
type Source string

const (
	SourceGLEIF    Source = "GLEIF"
	SourceWikidata Source = "Wikidata"
	SourceASX      Source = "ASX"
	SourceLSE      Source = "LSE"
	SourceTSX      Source = "TSX"
)

// Company is the canonical golden record for a resolved company. For
// records carrying an `lei`, the lei is globally unique; for records
// without one, (NameNorm, Country) is unique.
type Company struct {
	CompanyID   string `csv:"company_id"`
	CompanyKey  string `csv:"company_key"`
	Name        string `csv:"name"`
	NameNorm    string `csv:"name_norm"`
	Country     string `csv:"country"` // ISO-2
	LEI         string `csv:"lei"`     // 20-char alphanumeric, optional
	WikidataQID string `csv:"wikidata_qid"`
	Source      Source `csv:"source"`

	Alias1 string `csv:"alias1"`
	Alias2 string `csv:"alias2"`
	Alias3 string `csv:"alias3"`
	Alias4 string `csv:"alias4"`
	Alias5 string `csv:"alias5"`

	AddressLine string `csv:"address_line"`
	City        string `csv:"city"`
	State       string `csv:"state"`
	PostalCode  string `csv:"postal_code"`
}

// PrimaryName satisfies fuzzy.Candidate.
func (c Company) PrimaryName() string { return c.NameNorm }

// AliasNames satisfies fuzzy.Candidate, returning only the non-empty slots
// of the fixed 5-wide alias array.
func (c Company) AliasNames() []string {
	out := make([]string, 0, 5)
	for _, a := range [5]string{c.Alias1, c.Alias2, c.Alias3, c.Alias4, c.Alias5} {
		if a != "" {
			out = append(out, normalize.MatchNormalize(normalize.DomainCompany, a))
		}
	}
	return out
}

// HasLEI reports whether the record carries a Legal Entity Identifier.
func (c Company) HasLEI() bool { return c.LEI != "" }

// Hydrate fills derived columns (name_norm, company_id, company_key) when
// they are absent from the snapshot file, matching the Snapshot Store
// contract of adding computed columns on first load.
func (c *Company) Hydrate() {
	if c.NameNorm == "" {
		c.NameNorm = normalize.MatchNormalize(normalize.DomainCompany, c.Name)
	}
	if c.CompanyKey == "" {
		c.CompanyKey = normalize.Slugify(c.Name)
	}
	if c.CompanyID == "" {
		c.CompanyID = deriveID(c)
	}
}

// deriveID prefers the globally unique LEI when present; otherwise derives
// from the (name_norm, country) uniqueness key, following the ID Generator's
// namespaced-SHA1 convention used identically across every other domain.
func deriveID(c *Company) string {
	if c.LEI != "" {
		return idgen.Derive("lei:" + c.LEI + "|company")
	}
	return idgen.Derive(c.NameNorm + "|" + c.Country + "|company")
}

// ToMap projects the record into a loose key-value form for callers that
// want JSON-like output instead of the typed struct.
func (c Company) ToMap() map[string]any {
	m := map[string]any{
		"company_id":  c.CompanyID,
		"company_key": c.CompanyKey,
		"name":        c.Name,
		"name_norm":   c.NameNorm,
		"country":     c.Country,
		"source":      string(c.Source),
	}
	if c.LEI != "" {
		m["lei"] = c.LEI
	}
	if c.WikidataQID != "" {
		m["wikidata_qid"] = c.WikidataQID
	}
	if aliases := c.AliasNames(); len(aliases) > 0 {
		m["aliases"] = aliases
	}
	if c.AddressLine != "" || c.City != "" || c.State != "" || c.PostalCode != "" {
		m["address"] = map[string]any{
			"line":        c.AddressLine,
			"city":        c.City,
			"state":       c.State,
			"postal_code": c.PostalCode,
		}
	}
	return m
}
