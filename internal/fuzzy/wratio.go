// Package fuzzy ports the weighted-ratio (WRatio) string similarity metric
// used by the blocking-and-scoring pipeline, reproducing the behavior of the
// reference rapidfuzz/fuzzywuzzy WRatio implementation: the maximum of a
// full-string ratio, a partial-string ratio, a token-sort ratio, and a
// token-set ratio, with length-disparity scaling on the partial variants.
package fuzzy

import (
	"sort"
	"strings"

	lev "github.com/agext/levenshtein"
)

// indelParams makes agext/levenshtein's edit distance equivalent to an Indel
// (insertion/deletion only) distance: substitutions cost as much as a delete
// plus an insert. This matches the reference library's default ratio, which
// is built on Indel distance rather than classic Levenshtein.
var indelParams = lev.NewParams().InsCost(1).DelCost(1).SubCost(2)

// ratio computes the 0-100 simple similarity ratio between two strings:
// 100 * (1 - distance / (len(a) + len(b))).
func ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	dist := lev.Distance(a, b, indelParams)
	score := 100.0 * (1.0 - float64(dist)/float64(total))
	if score < 0 {
		score = 0
	}
	return int(score + 0.5)
}

// partialRatio finds the best-aligned substring of the longer string against
// the shorter string and returns the highest ratio across all alignments.
// This approximates the reference implementation's matching-block search
// with a direct sliding window, which is adequate for the short,
// single-line entity names this scorer is used on.
func partialRatio(a, b string) int {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if shorter == "" {
		if longer == "" {
			return 100
		}
		return 0
	}
	if len(longer) == len(shorter) {
		return ratio(shorter, longer)
	}

	best := 0
	windowLen := len(shorter)
	for start := 0; start+windowLen <= len(longer); start++ {
		window := longer[start : start+windowLen]
		if r := ratio(shorter, window); r > best {
			best = r
		}
	}
	return best
}

func tokenize(s string) []string {
	return strings.Fields(s)
}

// tokenSortRatio sorts each string's whitespace-separated tokens
// alphabetically, rejoins them, and computes the full ratio.
func tokenSortRatio(a, b string) int {
	return ratio(sortedTokenJoin(a), sortedTokenJoin(b))
}

func sortedTokenJoin(s string) string {
	tokens := tokenize(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSetRatio builds the intersection and per-side differences of the two
// strings' token sets, then returns the best ratio among the three
// reconstructed strings (shared-vs-1, shared-vs-2, 1-vs-2). This lets
// reordered or partially-overlapping phrases (e.g. "4e pgm" vs
// "platinum group 4e") score highly despite differing word counts.
func tokenSetRatio(a, b string) int {
	return tokenSetCombine(a, b, ratio)
}

func partialTokenSortRatio(a, b string) int {
	return partialRatio(sortedTokenJoin(a), sortedTokenJoin(b))
}

func partialTokenSetRatio(a, b string) int {
	return tokenSetCombine(a, b, partialRatio)
}

func tokenSetCombine(a, b string, scorer func(string, string) int) int {
	setA := uniqueSorted(tokenize(a))
	setB := uniqueSorted(tokenize(b))

	intersection := intersect(setA, setB)
	onlyA := difference(setA, intersection)
	onlyB := difference(setB, intersection)

	sect := strings.Join(intersection, " ")
	combined1 := strings.TrimSpace(strings.Join(append(append([]string{}, intersection...), onlyA...), " "))
	combined2 := strings.TrimSpace(strings.Join(append(append([]string{}, intersection...), onlyB...), " "))

	best := scorer(sect, combined1)
	if r := scorer(sect, combined2); r > best {
		best = r
	}
	if r := scorer(combined1, combined2); r > best {
		best = r
	}
	return best
}

func uniqueSorted(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func intersect(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, t := range b {
		bSet[t] = struct{}{}
	}
	var out []string
	for _, t := range a {
		if _, ok := bSet[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

func difference(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, t := range b {
		bSet[t] = struct{}{}
	}
	var out []string
	for _, t := range a {
		if _, ok := bSet[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

const (
	unbaseScale   = 0.95
	partialScale  = 0.90
	lenRatioTrig  = 1.5
	lenRatioShort = 8.0
)

// WRatio computes the weighted-ratio similarity (0-100) between two already
// match-normalized strings, following the reference algorithm: prefer the
// full-string ratio when the inputs are close in length, otherwise fold in
// partial-match variants scaled down to avoid over-rewarding a short query
// that merely appears as a substring of a much longer candidate.
func WRatio(a, b string) int {
	base := ratio(a, b)
	if a == "" || b == "" {
		return base
	}

	shortLen, longLen := len(a), len(b)
	if shortLen > longLen {
		shortLen, longLen = longLen, shortLen
	}
	lenRatio := float64(longLen) / float64(shortLen)

	if lenRatio < lenRatioTrig {
		tsor := int(float64(tokenSortRatio(a, b)) * unbaseScale)
		tser := int(float64(tokenSetRatio(a, b)) * unbaseScale)
		return maxInt(base, tsor, tser)
	}

	scale := partialScale
	if lenRatio > lenRatioShort {
		scale = 0.6
	}

	partial := int(float64(partialRatio(a, b)) * scale)
	ptsor := int(float64(partialTokenSortRatio(a, b)) * unbaseScale * scale)
	ptser := int(float64(partialTokenSetRatio(a, b)) * unbaseScale * scale)

	return maxInt(base, partial, ptsor, ptser)
}

func maxInt(vals ...int) int {
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// Candidate is anything the scorer can compare a query against: a primary
// name plus a bounded set of aliases.
type Candidate interface {
	PrimaryName() string
	AliasNames() []string
}

// Score returns the best WRatio across a candidate's primary name and every
// non-empty alias, matching §4.5's "max over name and alias columns" rule.
func Score(queryNorm string, c Candidate) int {
	best := WRatio(queryNorm, c.PrimaryName())
	for _, alias := range c.AliasNames() {
		if alias == "" {
			continue
		}
		if r := WRatio(queryNorm, alias); r > best {
			best = r
		}
	}
	return best
}
