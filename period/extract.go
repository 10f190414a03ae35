package period

import (
	"regexp"
	"sort"
	"time"
)

// scanPatterns find candidate period-bearing substrings to resolve. The
// patterns run in list order (relative keyword, ISO week, quarter/half
// range, quarter, half, year, month name) and a match overlapping a span
// already claimed by an earlier pattern is skipped.
var scanPatterns = []*regexp.Regexp{
	relativeKeyword,
	isoWeekDashPattern,
	isoWeekLeadPattern,
	quarterRangePattern,
	halfRangePattern,
	quarterPattern,
	halfPattern,
	yearPattern,
	monthNameAny,
}

type span struct {
	start, end int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// ExtractPeriods runs the period grammar's regex battery across text and
// resolves every non-overlapping match, returning results ordered by
// StartTS. Later, already-claimed spans are skipped so a single mention
// (e.g. "Q2 2025") is not double-counted by more than one pattern.
func ExtractPeriods(text string) []Period {
	norm := NormalizeText(text)
	if norm == "" {
		return nil
	}

	var claimed []span
	var results []Period

	for _, pat := range scanPatterns {
		for _, loc := range pat.FindAllStringIndex(norm, -1) {
			candidate := span{loc[0], loc[1]}
			taken := false
			for _, c := range claimed {
				if candidate.overlaps(c) {
					taken = true
					break
				}
			}
			if taken {
				continue
			}

			windowStart, windowEnd, p, ok := resolveWindow(norm, candidate)
			if !ok {
				continue
			}
			claimed = append(claimed, span{windowStart, windowEnd})
			results = append(results, p)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].StartTS.Before(results[j].StartTS)
	})
	return results
}

// windowRadii are tried smallest first so a bare token (e.g. "q3") picks up
// just enough neighboring text (e.g. a trailing year) to resolve without
// reaching far enough to swallow an adjacent, distinct mention.
var windowRadii = []int{0, 6, 12, 20}

// resolveWindow grows the context around a candidate span until Identifier
// resolves it, and reports the exact character range consumed so sibling
// mentions elsewhere in the text remain eligible.
func resolveWindow(text string, s span) (start, end int, p Period, ok bool) {
	for _, radius := range windowRadii {
		start, end = s.start-radius, s.end+radius
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		if p, ok = Identifier(text[start:end], time.Time{}); ok {
			return start, end, p, true
		}
	}
	return 0, 0, Period{}, false
}
