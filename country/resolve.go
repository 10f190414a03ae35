package country

import (
	"strings"

	"github.com/sells-group/entityidentity/internal/fuzzy"
	"github.com/sells-group/entityidentity/internal/resolver"
)

// FuzzyThreshold is the minimum WRatio score (0-100) at which stage 4
// accepts a fuzzy match. Confirmed by original_source/countries/fuzzycountry.py.
const FuzzyThreshold = 85

// catalogEntry is one fuzzy-fallback candidate: a lowercased name variant
// (or alias key) paired with the ISO-2 code it resolves to.
type catalogEntry struct {
	key  string
	iso2 string
}

var (
	byCode  map[string]Record // upper-cased ISO2/ISO3/numeric -> record
	byName  map[string]Record // lowercased name variants -> record
	catalog []catalogEntry    // name variants for the fuzzy fallback
)

func init() {
	byCode = make(map[string]Record, len(registry)*3)
	byName = make(map[string]Record, len(registry)*3)
	seen := make(map[string]struct{})

	for _, r := range registry {
		byCode[r.ISO2] = r
		byCode[r.ISO3] = r
		byCode[r.Numeric] = r
		for _, variant := range []string{r.Name, r.OfficialName, r.CommonName} {
			if variant == "" {
				continue
			}
			key := strings.ToLower(variant)
			byName[key] = r
			if _, ok := seen[key]; !ok {
				catalog = append(catalog, catalogEntry{key: key, iso2: r.ISO2})
				seen[key] = struct{}{}
			}
		}
	}
	for alias, code := range aliases {
		if _, ok := seen[alias]; !ok {
			catalog = append(catalog, catalogEntry{key: alias, iso2: code})
			seen[alias] = struct{}{}
		}
	}
}

// Identifier runs the four-stage cascade: direct code lookup, registry
// name lookup, the colloquialism map, then a fuzzy fallback. allowXK gates
// the user-assigned "XK" Kosovo code at every stage; without it, a stage
// that would otherwise resolve to Kosovo is skipped (stages 1-3) or
// hard-rejected (stage 4), matching original_source's "stage 4 is the only
// hard-rejecting stage for XK" rule.
func Identifier(query string, allowXK bool) (Country, bool, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Country{}, false, nil
	}

	if rec, ok := stageDirectCode(q, allowXK); ok {
		return toCountry(rec), true, nil
	}
	if rec, ok := stageRegistryName(q, allowXK); ok {
		return toCountry(rec), true, nil
	}
	if rec, ok := stageAlias(q, allowXK); ok {
		return toCountry(rec), true, nil
	}
	if rec, ok := stageFuzzy(q, allowXK); ok {
		return toCountry(rec), true, nil
	}
	return Country{}, false, nil
}

func stageDirectCode(q string, allowXK bool) (Record, bool) {
	code := strings.ToUpper(strings.TrimSpace(q))
	if rec, ok := byCode[code]; ok {
		return rec, true
	}
	if allowXK && (code == "XK" || code == "XKX" || code == "000") {
		return kosovo, true
	}
	return Record{}, false
}

func stageRegistryName(q string, allowXK bool) (Record, bool) {
	key := strings.ToLower(strings.TrimSpace(q))
	if rec, ok := byName[key]; ok {
		return rec, true
	}
	if allowXK && key == "kosovo" {
		return kosovo, true
	}
	return Record{}, false
}

func stageAlias(q string, allowXK bool) (Record, bool) {
	key := strings.ToLower(strings.TrimSpace(q))
	code, ok := aliases[key]
	if !ok {
		return Record{}, false
	}
	if code == xkCode {
		if !allowXK {
			return Record{}, false
		}
		return kosovo, true
	}
	rec, ok := byCode[code]
	return rec, ok
}

func stageFuzzy(q string, allowXK bool) (Record, bool) {
	key := strings.ToLower(strings.TrimSpace(q))
	ranked := resolver.ScoreAndSort(catalog, func(e catalogEntry) int {
		return fuzzy.WRatio(key, e.key)
	}, nil)
	if len(ranked) == 0 || ranked[0].Score < FuzzyThreshold {
		return Record{}, false
	}
	iso2 := ranked[0].Row.iso2
	if iso2 == xkCode {
		if !allowXK {
			return Record{}, false
		}
		return kosovo, true
	}
	rec, ok := byCode[iso2]
	return rec, ok
}

func toCountry(r Record) Country {
	return Country{ISO2: r.ISO2, ISO3: r.ISO3, Numeric: r.Numeric, Name: r.Name}
}

// Code converts a resolved Country to the requested code system: "iso2"
// (default), "iso3", or "numeric".
func Code(c Country, to string) string {
	switch strings.ToLower(to) {
	case "iso3":
		return c.ISO3
	case "numeric":
		return c.Numeric
	default:
		return c.ISO2
	}
}
