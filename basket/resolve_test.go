package basket

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/entityidentity/internal/snapshot"
)

func newTestStore(t *testing.T, csvBody string) *snapshot.Store[Basket] {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "baskets.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvBody), 0o644))
	return NewStore(path)
}

const fixtureCSV = `basket_id,name,name_norm,description,component1,component2,component3,component4,alias1
PGM_4E,4E PGM,,Four-element PGM basket,Pt,Pd,Rh,Au,4e pgm
BASE_3,Base Metals 3,,Three base metals,Cu,Al,Zn,,
`

func TestIdentifier_ExactBasketIDShortCircuits(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	b, ok, err := r.Identifier(context.Background(), "PGM_4E")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "4E PGM", b.Name)
}

func TestIdentifier_AliasResolutionWordReordered(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	b, ok, err := r.Identifier(context.Background(), "4e pgm")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PGM_4E", b.BasketID)
}

func TestIdentifier_EmptyQueryReturnsNoMatch(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	_, ok, err := r.Identifier(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestList_FiltersBySearch(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	rows, err := r.List(context.Background(), "base", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
