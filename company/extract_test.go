package company

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCompanies_FindsLegalSuffixMention(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	text := "Acme Mining Corp reported quarterly output ahead of guidance."
	mentions, err := r.ExtractCompanies(context.Background(), text, "AU", 0)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, "Acme Mining Corp", mentions[0].Company.Name)
	assert.Equal(t, 0, mentions[0].Start)
}

func TestExtractCompanies_DedupsRepeatedMention(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	text := "Acme Mining Corp beat estimates. Analysts expect Acme Mining Corp to expand further."
	mentions, err := r.ExtractCompanies(context.Background(), text, "AU", 0)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
}

func TestExtractCompanies_MinConfidenceFiltersWeakMatches(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	text := "Acme Mining Corp reported quarterly output ahead of guidance."
	mentions, err := r.ExtractCompanies(context.Background(), text, "AU", 101)
	require.NoError(t, err)
	assert.Empty(t, mentions)
}

func TestExtractCompanies_EmptyTextReturnsNoMentions(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	mentions, err := r.ExtractCompanies(context.Background(), "", "AU", 0)
	require.NoError(t, err)
	assert.Nil(t, mentions)
}
