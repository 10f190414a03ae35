package metal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetals_FindsSymbolAndNameMentions(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	text := "Spot Pt held steady while Palladium slipped on weak APT demand."
	mentions, err := r.ExtractMetals(context.Background(), text, "")
	require.NoError(t, err)
	require.Len(t, mentions, 3)

	assert.Equal(t, "Platinum", mentions[0].Metal.Name)
	assert.Equal(t, "Palladium", mentions[1].Metal.Name)
	assert.Equal(t, "Ammonium Paratungstate", mentions[2].Metal.Name)
	assert.Less(t, mentions[0].Start, mentions[1].Start)
	assert.Less(t, mentions[1].Start, mentions[2].Start)
}

func TestExtractMetals_DoesNotDoubleCountOverlappingAlias(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	mentions, err := r.ExtractMetals(context.Background(), "APT prices firmed this week.", "")
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, "Ammonium Paratungstate", mentions[0].Metal.Name)
}

func TestExtractMetals_EmptyTextReturnsNoMentions(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	mentions, err := r.ExtractMetals(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, mentions)
}

func TestExtractMetals_NoMentionsReturnsEmpty(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)

	mentions, err := r.ExtractMetals(context.Background(), "Quarterly results were broadly in line with guidance.", "")
	require.NoError(t, err)
	assert.Empty(t, mentions)
}
