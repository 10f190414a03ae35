package company

import (
	"context"
	"regexp"
	"sort"

	"github.com/sells-group/entityidentity/country"
)

// Mention is one resolved company reference located in free text.
type Mention struct {
	Text    string
	Start   int
	End     int
	Company Company
	Score   int
}

var legalSuffixPattern = regexp.MustCompile(
	`\b[A-Z][A-Za-z0-9&\-]+(?:\s+[A-Z][A-Za-z0-9&\-]+)*\s+(Inc\.?|Ltd\.?|Corp\.?|Corporation|Limited|Company|plc|LLC|L\.L\.C\.)\b`)

var capitalizedPhrasePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`)

// ExtractCompanies finds company mentions in free text and resolves each
// to a canonical record, per spec.md §6's extract_company operation.
// minConfidence filters the resolver's score (0-100); countryHint, if
// empty, is inferred from capitalized phrases in the text via
// country.Identifier, mirroring the reference extractor's approach of
// reusing the country resolver rather than a hardcoded country list.
func (r *Resolver) ExtractCompanies(ctx context.Context, text string, countryHint string, minConfidence int) ([]Mention, error) {
	if text == "" {
		return nil, nil
	}
	if countryHint == "" {
		countryHint = inferCountry(text)
	}

	var candidates []candidateSpan
	candidates = append(candidates, findSpans(text, legalSuffixPattern)...)
	candidates = append(candidates, findSpans(text, capitalizedPhrasePattern)...)

	var mentions []Mention
	seen := map[string]bool{}
	for _, c := range candidates {
		result, err := r.Resolve(ctx, c.text, countryHint, nil)
		if err != nil {
			return nil, err
		}
		if result.Final == nil || result.Matches[0].Score < minConfidence {
			continue
		}
		if seen[result.Final.CompanyID] {
			continue
		}
		seen[result.Final.CompanyID] = true
		mentions = append(mentions, Mention{
			Text:    c.text,
			Start:   c.start,
			End:     c.end,
			Company: *result.Final,
			Score:   result.Matches[0].Score,
		})
	}

	sort.Slice(mentions, func(i, j int) bool { return mentions[i].Start < mentions[j].Start })
	return mentions, nil
}

type candidateSpan struct {
	text       string
	start, end int
}

func findSpans(text string, pattern *regexp.Regexp) []candidateSpan {
	var out []candidateSpan
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		out = append(out, candidateSpan{text: text[loc[0]:loc[1]], start: loc[0], end: loc[1]})
	}
	return out
}

var capitalizedWordPattern = regexp.MustCompile(`\b[A-Za-z]+\b`)

// inferCountry guesses a country hint from capitalized phrases and bare
// words in text, reusing country.Identifier instead of a hardcoded
// country-name list.
func inferCountry(text string) string {
	counts := map[string]int{}
	for _, loc := range capitalizedPhrasePattern.FindAllString(text, -1) {
		if c, ok, _ := country.Identifier(loc, false); ok {
			counts[c.ISO2]++
		}
	}
	for _, w := range capitalizedWordPattern.FindAllString(text, -1) {
		if len(w) < 2 {
			continue
		}
		if c, ok, _ := country.Identifier(w, false); ok {
			counts[c.ISO2]++
		}
	}

	best, bestCount := "", 0
	for code, n := range counts {
		if n > bestCount {
			best, bestCount = code, n
		}
	}
	return best
}
