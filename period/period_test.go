package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayEnd_MicrosecondPrecision(t *testing.T) {
	end := dayEnd(2025, time.January, 31)
	assert.Equal(t, 999999000, end.Nanosecond())
	assert.Equal(t, 23, end.Hour())
}

func TestLastDayOfMonth_LeapYear(t *testing.T) {
	assert.Equal(t, 29, lastDayOfMonth(2024, time.February))
	assert.Equal(t, 28, lastDayOfMonth(2025, time.February))
}

func TestToMap_OmitsZeroQuarterAndMonth(t *testing.T) {
	p := resolveYear(2025)
	m := p.ToMap()
	_, hasQuarter := m["quarter"]
	_, hasMonth := m["month"]
	assert.False(t, hasQuarter)
	assert.False(t, hasMonth)
}

func TestToMap_IncludesQuarterForQuarterPeriod(t *testing.T) {
	p := resolveQuarter(2025, 3)
	m := p.ToMap()
	assert.Equal(t, 3, m["quarter"])
}
