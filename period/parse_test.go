package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier_ISOWeek(t *testing.T) {
	p, ok := Identifier("2025-W02", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeWeek, p.PeriodType)
	assert.Equal(t, "2025-W02", p.PeriodID)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), p.StartTS)
	assert.Equal(t, time.Monday, p.StartTS.Weekday())
	assert.Equal(t, time.Date(2025, 1, 12, 23, 59, 59, 999999000, time.UTC), p.EndTS)
}

func TestIdentifier_QuarterRange(t *testing.T) {
	p, ok := Identifier("Q1-Q2 2026", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeDateRange, p.PeriodType)
	assert.Equal(t, "2026Q1-2026Q2", p.PeriodID)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.StartTS)
	assert.Equal(t, time.Date(2026, 6, 30, 23, 59, 59, 999999000, time.UTC), p.EndTS)
}

func TestIdentifier_HalfRange(t *testing.T) {
	p, ok := Identifier("H1-H2 2025", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeDateRange, p.PeriodType)
	assert.Equal(t, "2025H1-2025H2", p.PeriodID)
}

func TestIdentifier_MonthNameRange(t *testing.T) {
	p, ok := Identifier("Jan-Mar 2025", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeDateRange, p.PeriodType)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.StartTS)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 999999000, time.UTC), p.EndTS)
}

func TestIdentifier_RelativeQuarterWrapsYearBoundary(t *testing.T) {
	asOf := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	p, ok := Identifier("last quarter", asOf)
	require.True(t, ok)
	assert.Equal(t, "2024Q4", p.PeriodID)
}

func TestIdentifier_RelativeNextMonthWrapsYearBoundary(t *testing.T) {
	asOf := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	p, ok := Identifier("next month", asOf)
	require.True(t, ok)
	assert.Equal(t, "2026-01", p.PeriodID)
}

func TestIdentifier_RelativeThisYear(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p, ok := Identifier("this year", asOf)
	require.True(t, ok)
	assert.Equal(t, "2025", p.PeriodID)
}

func TestIdentifier_QuarterWithYear(t *testing.T) {
	p, ok := Identifier("Q3 2025", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeQuarter, p.PeriodType)
	assert.Equal(t, "2025Q3", p.PeriodID)
	assert.Equal(t, 3, p.Quarter)
}

func TestIdentifier_HalfNeverDecomposesToQuarter(t *testing.T) {
	p, ok := Identifier("H2 2025", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeHalf, p.PeriodType)
	assert.Zero(t, p.Quarter)
	assert.Zero(t, p.Month)
}

func TestIdentifier_MonthName(t *testing.T) {
	p, ok := Identifier("March 2025", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeMonth, p.PeriodType)
	assert.Equal(t, "2025-03", p.PeriodID)
	assert.Equal(t, 1, p.Quarter)
}

func TestIdentifier_YearOnlyFallback(t *testing.T) {
	p, ok := Identifier("2025", time.Time{})
	require.True(t, ok)
	assert.Equal(t, TypeYear, p.PeriodType)
	assert.Equal(t, "2025", p.PeriodID)
}

func TestIdentifier_NoMatchReturnsFalse(t *testing.T) {
	_, ok := Identifier("blue whale migration", time.Time{})
	assert.False(t, ok)
}

func TestIdentifier_EmptyTextReturnsFalse(t *testing.T) {
	_, ok := Identifier("", time.Time{})
	assert.False(t, ok)
}

func TestIdentifier_StartBeforeOrEqualEnd(t *testing.T) {
	p, ok := Identifier("Q2 2025", time.Time{})
	require.True(t, ok)
	assert.True(t, !p.StartTS.After(p.EndTS))
}
