package place

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlaces_FindsAdmin1NameMentions(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	text := "The mine sits in Western Australia, not far from the New South Wales border."
	mentions, err := r.ExtractPlaces(context.Background(), text, "AU")
	require.NoError(t, err)
	require.Len(t, mentions, 2)

	assert.Equal(t, "Western Australia", mentions[0].Place.Admin1)
	assert.Equal(t, "New South Wales", mentions[1].Place.Admin1)
	assert.Less(t, mentions[0].Start, mentions[1].Start)
}

func TestExtractPlaces_CountryHintDisambiguatesSharedName(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	auMentions, err := r.ExtractPlaces(context.Background(), "Operations expanded across Washington this quarter.", "AU")
	require.NoError(t, err)
	require.Empty(t, auMentions)

	usMentions, err := r.ExtractPlaces(context.Background(), "Operations expanded across Washington this quarter.", "US")
	require.NoError(t, err)
	require.Len(t, usMentions, 1)
	assert.Equal(t, "Washington", usMentions[0].Place.Admin1)
}

func TestExtractPlaces_EmptyTextReturnsNoMentions(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	mentions, err := r.ExtractPlaces(context.Background(), "", "AU")
	require.NoError(t, err)
	assert.Nil(t, mentions)
}

func TestExtractPlaces_NoMentionsReturnsEmpty(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	mentions, err := r.ExtractPlaces(context.Background(), "Results were broadly in line with guidance.", "AU")
	require.NoError(t, err)
	assert.Empty(t, mentions)
}
