package period

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	dashVariants    = strings.NewReplacer("—", "-", "–", "-", "−", "-", "‒", "-")
	spaceAroundDash = regexp.MustCompile(`\s*-\s*`)
	multiSpace      = regexp.MustCompile(`\s+`)
)

// NormalizeText prepares raw period text for grammar parsing: NFC fold,
// lowercase, normalize every dash variant (em/en/minus/figure) to a plain
// hyphen, remove whitespace around hyphens, and collapse whitespace.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(strings.TrimSpace(text))
	text = norm.NFC.String(text)
	text = dashVariants.Replace(text)
	text = spaceAroundDash.ReplaceAllString(text, "-")
	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var (
	yearPattern        = regexp.MustCompile(`\b(19\d{2}|20\d{2}|21\d{2})\b`)
	quarterPattern     = regexp.MustCompile(`\bq([1-4])\b`)
	halfPattern        = regexp.MustCompile(`\bh([12])\b`)
	monthNumberPattern = regexp.MustCompile(`\b(0?[1-9]|1[0-2])\b`)
	isoWeekDashPattern = regexp.MustCompile(`\b(\d{4})-?w(0?[1-9]|[1-4]\d|5[0-3])\b`)
	isoWeekLeadPattern = regexp.MustCompile(`\bw(0?[1-9]|[1-4]\d|5[0-3])\s+(\d{4})\b`)
	monthNameAny       = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
)

var monthPatterns = []struct {
	num int
	re  *regexp.Regexp
}{
	{1, regexp.MustCompile(`\b(jan|january)\b`)},
	{2, regexp.MustCompile(`\b(feb|february)\b`)},
	{3, regexp.MustCompile(`\b(mar|march)\b`)},
	{4, regexp.MustCompile(`\b(apr|april)\b`)},
	{5, regexp.MustCompile(`\b(may)\b`)},
	{6, regexp.MustCompile(`\b(jun|june)\b`)},
	{7, regexp.MustCompile(`\b(jul|july)\b`)},
	{8, regexp.MustCompile(`\b(aug|august)\b`)},
	{9, regexp.MustCompile(`\b(sep|sept|september)\b`)},
	{10, regexp.MustCompile(`\b(oct|october)\b`)},
	{11, regexp.MustCompile(`\b(nov|november)\b`)},
	{12, regexp.MustCompile(`\b(dec|december)\b`)},
}

// extractYear returns the first 4-digit year (1900-2199) found in text.
func extractYear(text string) (int, bool) {
	m := yearPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return atoi(m[1]), true
}

// periodKind names which of quarter/half/month extractQuarterHalfMonth found.
type periodKind string

const (
	kindNone    periodKind = ""
	kindQuarter periodKind = "quarter"
	kindHalf    periodKind = "half"
	kindMonth   periodKind = "month"
)

// extractQuarterHalfMonth checks quarter, then half, then bare month
// number, in that priority order, matching the reference implementation.
func extractQuarterHalfMonth(text string) (periodKind, int) {
	if m := quarterPattern.FindStringSubmatch(text); m != nil {
		return kindQuarter, atoi(m[1])
	}
	if m := halfPattern.FindStringSubmatch(text); m != nil {
		return kindHalf, atoi(m[1])
	}
	if m := monthNumberPattern.FindStringSubmatch(text); m != nil {
		return kindMonth, atoi(m[1])
	}
	return kindNone, 0
}

// extractMonthName returns the month number (1-12) for the first month
// name or abbreviation found in text.
func extractMonthName(text string) (int, bool) {
	for _, mp := range monthPatterns {
		if mp.re.MatchString(text) {
			return mp.num, true
		}
	}
	return 0, false
}

// extractISOWeek recognizes "2025-w02", "2025w02", and "w02 2025".
func extractISOWeek(text string) (year, week int, ok bool) {
	if m := isoWeekDashPattern.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), atoi(m[2]), true
	}
	if m := isoWeekLeadPattern.FindStringSubmatch(text); m != nil {
		return atoi(m[2]), atoi(m[1]), true
	}
	return 0, 0, false
}

var rangeMonthLead = regexp.MustCompile(`\b(q[1-4]|h[12]|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)-`)
var rangeJoinWord = regexp.MustCompile(`\b(to|through|thru)\b`)

// detectRangeSeparator reports whether text carries a range-joining token:
// a hyphen after a period token, or the words "to"/"through"/"thru".
func detectRangeSeparator(text string) bool {
	return rangeMonthLead.MatchString(text) || rangeJoinWord.MatchString(text)
}

var relativeKeyword = regexp.MustCompile(`\b(last|this|next|current|previous|prior)\b`)

// isRelativePeriod reports whether text contains a relative-period keyword.
func isRelativePeriod(text string) bool {
	return relativeKeyword.MatchString(text)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
