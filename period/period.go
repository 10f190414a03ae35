// Package period parses temporal expressions — quarters, halves, months,
// ISO weeks, relative references, and ranges — into a tagged variant with
// literal UTC start/end timestamps.
package period

import "time"

// Type names which tagged variant a resolved Period carries.
type Type string

const (
	TypeYear      Type = "year"
	TypeHalf      Type = "half"
	TypeQuarter   Type = "quarter"
	TypeMonth     Type = "month"
	TypeWeek      Type = "week"
	TypeDateRange Type = "date_range"
)

// Period is the resolved, tagged temporal record. Quarter and Month are
// zero when not applicable to PeriodType (e.g. a half or a date_range).
type Period struct {
	PeriodType Type
	PeriodID   string
	StartTS    time.Time
	EndTS      time.Time
	Year       int
	Quarter    int // 1-4, zero if not applicable
	Month      int // 1-12, zero if not applicable
	AsOfTS     time.Time
	Timezone   string
	Score      int
}

// dayStart and dayEnd produce the UTC inclusive boundary timestamps for a
// calendar day, per §4.8's "00:00:00.000000Z / 23:59:59.999999Z" contract.
func dayStart(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayEnd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999999000, time.UTC)
}

// lastDayOfMonth returns the last calendar day of the given year/month,
// correctly handling leap years via time.Date's normalization.
func lastDayOfMonth(y int, m time.Month) int {
	firstOfNext := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// ToMap projects the record into a loose key-value form.
func (p Period) ToMap() map[string]any {
	m := map[string]any{
		"period_type": string(p.PeriodType),
		"period_id":   p.PeriodID,
		"start_ts":    p.StartTS,
		"end_ts":      p.EndTS,
		"year":        p.Year,
		"asof_ts":     p.AsOfTS,
		"timezone":    p.Timezone,
		"score":       p.Score,
	}
	if p.Quarter != 0 {
		m["quarter"] = p.Quarter
	}
	if p.Month != 0 {
		m["month"] = p.Month
	}
	return m
}
