package period

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultScore is the confidence score attached to every resolved period;
// the grammar is deterministic, so every match carries the same score.
const DefaultScore = 95

// Identifier parses text into a tagged Period following the strategy order
// of §4.8: relative, range, ISO week, quarter/half/month-with-year,
// year-only. asOf anchors relative periods ("last quarter"); a zero asOf
// defaults to the current UTC time.
func Identifier(text string, asOf time.Time) (Period, bool) {
	if text == "" {
		return Period{}, false
	}
	norm := NormalizeText(text)
	if norm == "" {
		return Period{}, false
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	} else {
		asOf = asOf.UTC()
	}

	if isRelativePeriod(norm) {
		if p, ok := resolveRelative(norm, asOf); ok {
			return finalize(p, asOf), true
		}
	}
	if detectRangeSeparator(norm) {
		if p, ok := resolveRange(norm); ok {
			return finalize(p, asOf), true
		}
	}
	if year, week, ok := extractISOWeek(norm); ok {
		return finalize(resolveWeek(year, week), asOf), true
	}

	year, ok := extractYear(norm)
	if !ok {
		return Period{}, false
	}

	kind, num := extractQuarterHalfMonth(norm)
	switch kind {
	case kindHalf:
		return finalize(resolveHalf(year, num), asOf), true
	case kindQuarter:
		return finalize(resolveQuarter(year, num), asOf), true
	case kindMonth:
		return finalize(resolveMonth(year, num), asOf), true
	}

	if month, ok := extractMonthName(norm); ok {
		return finalize(resolveMonth(year, month), asOf), true
	}

	return finalize(resolveYear(year), asOf), true
}

func finalize(p Period, asOf time.Time) Period {
	p.AsOfTS = asOf
	p.Timezone = "UTC"
	p.Score = DefaultScore
	return p
}

func resolveYear(year int) Period {
	return Period{
		PeriodType: TypeYear,
		PeriodID:   fmt.Sprintf("%d", year),
		StartTS:    dayStart(year, time.January, 1),
		EndTS:      dayEnd(year, time.December, 31),
		Year:       year,
	}
}

func resolveHalf(year, half int) Period {
	startMonth, endMonth, endDay := time.January, time.June, 30
	if half == 2 {
		startMonth, endMonth, endDay = time.July, time.December, 31
	}
	return Period{
		PeriodType: TypeHalf,
		PeriodID:   fmt.Sprintf("%dH%d", year, half),
		StartTS:    dayStart(year, startMonth, 1),
		EndTS:      dayEnd(year, endMonth, endDay),
		Year:       year,
	}
}

var quarterMonths = map[int][3]int{
	1: {1, 3, 31},
	2: {4, 6, 30},
	3: {7, 9, 30},
	4: {10, 12, 31},
}

func resolveQuarter(year, quarter int) Period {
	bounds := quarterMonths[quarter]
	return Period{
		PeriodType: TypeQuarter,
		PeriodID:   fmt.Sprintf("%dQ%d", year, quarter),
		StartTS:    dayStart(year, time.Month(bounds[0]), 1),
		EndTS:      dayEnd(year, time.Month(bounds[1]), bounds[2]),
		Year:       year,
		Quarter:    quarter,
	}
}

func resolveMonth(year, month int) Period {
	lastDay := lastDayOfMonth(year, time.Month(month))
	return Period{
		PeriodType: TypeMonth,
		PeriodID:   fmt.Sprintf("%d-%02d", year, month),
		StartTS:    dayStart(year, time.Month(month), 1),
		EndTS:      dayEnd(year, time.Month(month), lastDay),
		Year:       year,
		Quarter:    ((month - 1) / 3) + 1,
		Month:      month,
	}
}

// resolveWeek computes the ISO-8601 Monday-Sunday boundary for the given
// ISO year/week using the "January 4th is always in week 1" rule.
func resolveWeek(year, week int) Period {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(weekday - 1))
	monday := week1Monday.AddDate(0, 0, (week-1)*7)
	sunday := monday.AddDate(0, 0, 6)

	return Period{
		PeriodType: TypeWeek,
		PeriodID:   fmt.Sprintf("%d-W%02d", year, week),
		StartTS:    dayStart(monday.Year(), monday.Month(), monday.Day()),
		EndTS:      dayEnd(sunday.Year(), sunday.Month(), sunday.Day()),
		Year:       year,
		Quarter:    ((int(monday.Month()) - 1) / 3) + 1,
		Month:      int(monday.Month()),
	}
}

func resolveRelative(norm string, asOf time.Time) (Period, bool) {
	var unit string
	switch {
	case containsWord(norm, "quarter"):
		unit = "quarter"
	case containsWord(norm, "year"):
		unit = "year"
	case containsWord(norm, "month"):
		unit = "month"
	default:
		return Period{}, false
	}

	var offset int
	switch {
	case containsAny(norm, "last", "previous", "prior"):
		offset = -1
	case containsAny(norm, "this", "current"):
		offset = 0
	case containsWord(norm, "next"):
		offset = 1
	default:
		return Period{}, false
	}

	switch unit {
	case "quarter":
		currentQ := ((int(asOf.Month()) - 1) / 3) + 1
		targetQ := currentQ + offset
		targetYear := asOf.Year()
		if targetQ < 1 {
			targetQ += 4
			targetYear--
		} else if targetQ > 4 {
			targetQ -= 4
			targetYear++
		}
		return resolveQuarter(targetYear, targetQ), true
	case "year":
		return resolveYear(asOf.Year() + offset), true
	case "month":
		targetMonth := int(asOf.Month()) + offset
		targetYear := asOf.Year()
		if targetMonth < 1 {
			targetMonth += 12
			targetYear--
		} else if targetMonth > 12 {
			targetMonth -= 12
			targetYear++
		}
		return resolveMonth(targetYear, targetMonth), true
	}
	return Period{}, false
}

var (
	quarterRangePattern = regexp.MustCompile(`q([1-4])(?:-|to)q([1-4])`)
	halfRangePattern    = regexp.MustCompile(`h([12])(?:-|to)h([12])`)
)

func resolveRange(norm string) (Period, bool) {
	year, ok := extractYear(norm)
	if !ok {
		return Period{}, false
	}

	if m := quarterRangePattern.FindStringSubmatch(norm); m != nil {
		start := resolveQuarter(year, atoi(m[1]))
		end := resolveQuarter(year, atoi(m[2]))
		return rangeOf(start, end, year), true
	}
	if m := halfRangePattern.FindStringSubmatch(norm); m != nil {
		start := resolveHalf(year, atoi(m[1]))
		end := resolveHalf(year, atoi(m[2]))
		return rangeOf(start, end, year), true
	}

	var months []int
	for _, m := range monthNameAny.FindAllStringSubmatch(norm, -1) {
		if num, ok := extractMonthName(m[1]); ok {
			months = append(months, num)
		}
	}
	if len(months) >= 2 {
		start := resolveMonth(year, months[0])
		end := resolveMonth(year, months[len(months)-1])
		return rangeOf(start, end, year), true
	}

	return Period{}, false
}

func rangeOf(start, end Period, year int) Period {
	return Period{
		PeriodType: TypeDateRange,
		PeriodID:   start.PeriodID + "-" + end.PeriodID,
		StartTS:    start.StartTS,
		EndTS:      end.EndTS,
		Year:       year,
	}
}

func containsWord(text, word string) bool {
	return regexp.MustCompile(`\b` + word + `\b`).MatchString(text)
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if containsWord(text, w) {
			return true
		}
	}
	return false
}
