package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponent_SymbolOnly(t *testing.T) {
	c, err := ParseComponent("Pt")
	require.NoError(t, err)
	assert.Equal(t, "Pt", c.Symbol)
	assert.False(t, c.HasWeight)
}

func TestParseComponent_WithWeight(t *testing.T) {
	c, err := ParseComponent("Pt:40.5")
	require.NoError(t, err)
	assert.Equal(t, "Pt", c.Symbol)
	assert.True(t, c.HasWeight)
	assert.Equal(t, 40.5, c.WeightPct)
}

func TestParseComponent_InvalidWeightErrors(t *testing.T) {
	_, err := ParseComponent("Pt:notanumber")
	assert.Error(t, err)
}

func TestComponents_SkipsEmptySlots(t *testing.T) {
	b := Basket{Component1: "Pt", Component2: "", Component3: "Pd:30"}
	assert.Len(t, b.Components(), 2)
}

func TestValid_RequiresAtLeastOneComponentAndIDPattern(t *testing.T) {
	valid := Basket{BasketID: "PGM_4E", Component1: "Pt"}
	assert.True(t, valid.Valid())

	noComponents := Basket{BasketID: "PGM_4E"}
	assert.False(t, noComponents.Valid())

	badID := Basket{BasketID: "pgm-4e", Component1: "Pt"}
	assert.False(t, badID.Valid())
}

func TestHydrate_FillsNameNormWhenAbsent(t *testing.T) {
	b := Basket{Name: "4E PGM Basket"}
	b.Hydrate()
	assert.Equal(t, "4e pgm basket", b.NameNorm)
}

func TestToMap_ListsComponentSymbols(t *testing.T) {
	b := Basket{BasketID: "PGM_4E", Name: "4E PGM", Component1: "Pt", Component2: "Pd:30"}
	b.Hydrate()
	m := b.ToMap()
	assert.Equal(t, []string{"Pt", "Pd"}, m["components"])
}
