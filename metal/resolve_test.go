package metal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/entityidentity/internal/snapshot"
)

func newTestStore(t *testing.T, csvBody string) *snapshot.Store[Metal] {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "metals.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvBody), 0o644))
	return NewStore(path)
}

const fixtureCSV = `metal_id,metal_key,symbol,name,name_norm,formula,code,category_bucket,cluster_id,default_unit,default_basis,alias1
,,Pt,Platinum,,,,pgm,pgm_complex,toz,$/toz,
,,Pd,Palladium,,,,pgm,pgm_complex,toz,$/toz,
,,,Ammonium Paratungstate,,,WO3,specialty,,mtu,$/mtu WO3,APT
`

func TestIdentifier_ExactSymbolShortCircuits(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	m, ok, err := r.Identifier(context.Background(), "Pt", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Platinum", m.Name)
}

func TestIdentifier_LowercaseSymbolShortCircuits(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	m, ok, err := r.Identifier(context.Background(), "pt", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Platinum", m.Name)
}

func TestIdentifier_NameFuzzyMatch(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	m, ok, err := r.Identifier(context.Background(), "ammonium paratungstate", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "WO3", m.Code)
}

func TestIdentifier_FormHintNarrowsPool(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	m, ok, err := r.Identifier(context.Background(), "tungsten:paratungstate", "")
	require.NoError(t, err)
	if ok {
		assert.Equal(t, "WO3", m.Code)
	}
}

func TestIdentifier_ClusterHintNarrowsPool(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	m, ok, err := r.Identifier(context.Background(), "Palladium", "pgm_complex")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Pd", m.Symbol)
}

func TestList_FiltersByCategoryBucket(t *testing.T) {
	store := newTestStore(t, fixtureCSV)
	r := NewResolver(store)
	rows, err := r.List(context.Background(), "pgm", "", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
