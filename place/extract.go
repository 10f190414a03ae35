package place

import (
	"context"
	"regexp"
	"sort"

	"github.com/rotisserie/eris"
)

// Mention is one resolved admin1-place reference located in free text.
type Mention struct {
	Text  string
	Start int
	End   int
	Place Place
}

// ExtractPlaces scans text for admin1 name/alias mentions and resolves
// each to a canonical record, per spec.md §6's extract_place operation.
// countryHint, if set, is passed through to Identifier so a shared
// admin1_code (e.g. "WA") resolves unambiguously.
func (r *Resolver) ExtractPlaces(ctx context.Context, text, countryHint string) ([]Mention, error) {
	if text == "" {
		return nil, nil
	}
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "place: load snapshot")
	}

	type claim struct{ start, end int }
	var claims []claim
	var mentions []Mention

	tryClaim := func(s, e int) bool {
		for _, c := range claims {
			if s < c.end && c.start < e {
				return false
			}
		}
		return true
	}

	for _, p := range table.Rows {
		for _, needle := range searchTerms(p) {
			if len(needle) < 3 {
				continue
			}
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(needle) + `\b`)
			for _, loc := range pattern.FindAllStringIndex(text, -1) {
				if !tryClaim(loc[0], loc[1]) {
					continue
				}
				resolved, ok, err := r.Identifier(ctx, text[loc[0]:loc[1]], countryHint)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				claims = append(claims, claim{loc[0], loc[1]})
				mentions = append(mentions, Mention{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1], Place: resolved})
			}
		}
	}

	sort.Slice(mentions, func(i, j int) bool { return mentions[i].Start < mentions[j].Start })
	return mentions, nil
}

// searchTerms lists the literal strings worth scanning text for: the
// display name and its aliases. Admin1 codes are deliberately excluded
// since a bare 2-letter code (e.g. "WA") is too ambiguous to scan for in
// free text without a stronger surrounding signal than a regex match.
func searchTerms(p Place) []string {
	out := []string{p.Admin1}
	out = append(out, p.AliasNames()...)
	return out
}
