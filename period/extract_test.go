package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPeriods_MultipleMentionsOrderedByStart(t *testing.T) {
	results := ExtractPeriods("Production guidance covers Q3 2025, revised down from Q1 2025 estimates.")
	require.Len(t, results, 2)
	assert.Equal(t, "2025Q1", results[0].PeriodID)
	assert.Equal(t, "2025Q3", results[1].PeriodID)
}

func TestExtractPeriods_NoMentionsReturnsEmpty(t *testing.T) {
	results := ExtractPeriods("No dates mentioned here at all.")
	assert.Empty(t, results)
}

func TestExtractPeriods_EmptyTextReturnsEmpty(t *testing.T) {
	assert.Empty(t, ExtractPeriods(""))
}

func TestExtractPeriods_DoesNotDoubleCountSameMention(t *testing.T) {
	results := ExtractPeriods("Full year 2025 results.")
	require.Len(t, results, 1)
	assert.Equal(t, "2025", results[0].PeriodID)
}
