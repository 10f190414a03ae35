package metal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHydrate_FillsNameNormWhenAbsent(t *testing.T) {
	m := Metal{Name: "Platinum"}
	m.Hydrate()
	assert.Equal(t, "platinum", m.NameNorm)
}

func TestHydrate_DerivesIDDeterministically(t *testing.T) {
	a := Metal{Name: "Platinum"}
	b := Metal{Name: "Platinum"}
	a.Hydrate()
	b.Hydrate()
	assert.Equal(t, a.MetalID, b.MetalID)
}

func TestUnitBasisConsistent_APTExample(t *testing.T) {
	m := Metal{DefaultUnit: "mtu", DefaultBasis: "$/mtu WO3"}
	assert.True(t, m.UnitBasisConsistent())
}

func TestUnitBasisConsistent_MismatchedUnit(t *testing.T) {
	m := Metal{DefaultUnit: "mtu", DefaultBasis: "$/toz"}
	assert.False(t, m.UnitBasisConsistent())
}

func TestUnitBasisConsistent_EmptyFieldsAreVacuouslyConsistent(t *testing.T) {
	assert.True(t, Metal{}.UnitBasisConsistent())
}

func TestClusterByID_KnownCluster(t *testing.T) {
	c, ok := ClusterByID("pgm_complex")
	assert.True(t, ok)
	assert.Equal(t, "Platinum Group Metals Complex", c.Name)
}

func TestClusterByID_UnknownCluster(t *testing.T) {
	_, ok := ClusterByID("not_a_cluster")
	assert.False(t, ok)
}

func TestToMap_IncludesClusterNameWhenClusterSet(t *testing.T) {
	m := Metal{Name: "Platinum", Symbol: "Pt", ClusterID: "pgm_complex"}
	m.Hydrate()
	out := m.ToMap()
	assert.Equal(t, "Platinum Group Metals Complex", out["cluster_name"])
}
