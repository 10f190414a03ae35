// Package metal resolves commodity metal references — element symbols,
// common names, and commercial product codes — to canonical records.
package metal

import (
	"strings"

	"github.com/sells-group/entityidentity/internal/idgen"
	"github.com/sells-group/entityidentity/internal/normalize"
)

// CategoryBucket classifies a metal's commodity family.
type CategoryBucket string

const (
	CategoryPrecious   CategoryBucket = "precious"
	CategoryBase       CategoryBucket = "base"
	CategoryBattery    CategoryBucket = "battery"
	CategoryPGM        CategoryBucket = "pgm"
	CategoryREE        CategoryBucket = "ree"
	CategoryFerroalloy CategoryBucket = "ferroalloy"
	CategorySpecialty  CategoryBucket = "specialty"
	CategoryIndustrial CategoryBucket = "industrial"
)

// Metal is the canonical record for a resolved commodity metal. Unit/basis
// consistency (default_unit must appear as a substring of default_basis) is
// reported by UnitBasisConsistent; neither Hydrate nor the type system
// enforces it.
type Metal struct {
	MetalID        string         `csv:"metal_id"`
	MetalKey       string         `csv:"metal_key"`
	Symbol         string         `csv:"symbol"` // optional IUPAC element symbol
	Name           string         `csv:"name"`
	NameNorm       string         `csv:"name_norm"`
	Formula        string         `csv:"formula"`
	Code           string         `csv:"code"` // commercial code, e.g. "WO3"
	CategoryBucket CategoryBucket `csv:"category_bucket"`
	ClusterID      string         `csv:"cluster_id"`
	DefaultUnit    string         `csv:"default_unit"`
	DefaultBasis   string         `csv:"default_basis"`

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
func (m Metal) PrimaryName() string { return m.NameNorm }

// AliasNames satisfies fuzzy.Candidate, returning only the non-empty slots
// of the fixed 10-wide alias array, normalized.
func (m Metal) AliasNames() []string {
	raw := [10]string{m.Alias1, m.Alias2, m.Alias3, m.Alias4, m.Alias5, m.Alias6, m.Alias7, m.Alias8, m.Alias9, m.Alias10}
	out := make([]string, 0, 10)
	for _, a := range raw {
		if a != "" {
			out = append(out, normalize.MatchNormalize(normalize.DomainMetal, a))
		}
	}
	return out
}

// UnitBasisConsistent reports whether default_unit appears as a substring
// of default_basis, per spec's unit/basis consistency invariant.
func (m Metal) UnitBasisConsistent() bool {
	if m.DefaultUnit == "" || m.DefaultBasis == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.DefaultBasis), strings.ToLower(m.DefaultUnit))
}

// Hydrate fills derived columns when absent from the snapshot file:
// name_norm, metal_key, and the metal_id.
func (m *Metal) Hydrate() {
	if m.NameNorm == "" {
		m.NameNorm = normalize.MatchNormalize(normalize.DomainMetal, m.Name)
	}
	if m.MetalKey == "" {
		m.MetalKey = normalize.Slugify(m.Name)
	}
	if m.MetalID == "" {
		m.MetalID = idgen.Metal(m.NameNorm)
	}
}

// ToMap projects the record into a loose key-value form.
func (m Metal) ToMap() map[string]any {
	out := map[string]any{
		"metal_id":        m.MetalID,
		"metal_key":       m.MetalKey,
		"name":            m.Name,
		"name_norm":       m.NameNorm,
		"category_bucket": string(m.CategoryBucket),
		"default_unit":    m.DefaultUnit,
		"default_basis":   m.DefaultBasis,
	}
	if m.Symbol != "" {
		out["symbol"] = m.Symbol
	}
	if m.Formula != "" {
		out["formula"] = m.Formula
	}
	if m.Code != "" {
		out["code"] = m.Code
	}
	if m.ClusterID != "" {
		out["cluster_id"] = m.ClusterID
		if cl, ok := ClusterByID(m.ClusterID); ok {
			out["cluster_name"] = cl.Name
		}
	}
	if aliases := m.AliasNames(); len(aliases) > 0 {
		out["aliases"] = aliases
	}
	return out
}
