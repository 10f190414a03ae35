package metal

import (
	"context"
	"regexp"
	"sort"

	"github.com/rotisserie/eris"
)

// Mention is one resolved metal reference located in free text.
type Mention struct {
	Text  string
	Start int
	End   int
	Metal Metal
}

// ExtractMetals scans text for metal symbol and name/alias mentions and
// resolves each to a canonical record, per spec.md §6's extract_metal
// operation. Grounded on the reference extractor's span-overlap
// dedup (a shorter overlapping match loses to a longer one already
// claimed), generalized here to run directly off the snapshot's own
// symbol/name/alias columns rather than a separate hand-maintained
// pattern table.
func (r *Resolver) ExtractMetals(ctx context.Context, text, clusterHint string) ([]Mention, error) {
	if text == "" {
		return nil, nil
	}
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "metal: load snapshot")
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

	for _, m := range table.Rows {
		for _, needle := range searchTerms(m) {
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(needle) + `\b`)
			for _, loc := range pattern.FindAllStringIndex(text, -1) {
				if !tryClaim(loc[0], loc[1]) {
					continue
				}
				resolved, ok, err := r.Identifier(ctx, text[loc[0]:loc[1]], clusterHint)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				claims = append(claims, claim{loc[0], loc[1]})
				mentions = append(mentions, Mention{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1], Metal: resolved})
			}
		}
	}

	sort.Slice(mentions, func(i, j int) bool { return mentions[i].Start < mentions[j].Start })
	return mentions, nil
}

// searchTerms lists the literal strings worth scanning text for: the
// element symbol (only when it is at least two characters long) and the
// full name plus its aliases.
func searchTerms(m Metal) []string {
	var out []string
	if len(m.Symbol) >= 2 {
		out = append(out, m.Symbol)
	}
	if m.Name != "" {
		out = append(out, m.Name)
	}
	out = append(out, m.AliasNames()...)
	return out
}
