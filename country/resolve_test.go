package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier_DirectISO2Code(t *testing.T) {
	c, ok, err := Identifier("US", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "US", c.ISO2)
	assert.Equal(t, "USA", c.ISO3)
}

func TestIdentifier_DirectISO3Code(t *testing.T) {
	c, ok, err := Identifier("zaf", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ZA", c.ISO2)
}

func TestIdentifier_NumericCode(t *testing.T) {
	c, ok, err := Identifier("036", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "AU", c.ISO2)
}

func TestIdentifier_RegistryOfficialName(t *testing.T) {
	c, ok, err := Identifier("Republic of Chile", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "CL", c.ISO2)
}

func TestIdentifier_AliasColloquialism(t *testing.T) {
	c, ok, err := Identifier("UK", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "GB", c.ISO2)
}

func TestIdentifier_AliasFormerName(t *testing.T) {
	c, ok, err := Identifier("Burma", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "MM", c.ISO2)
}

func TestIdentifier_FuzzyFallbackTypo(t *testing.T) {
	c, ok, err := Identifier("Boswana", false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "BW", c.ISO2)
}

func TestIdentifier_KosovoRejectedWithoutAllowXK(t *testing.T) {
	_, ok, err := Identifier("Kosovo", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdentifier_KosovoAcceptedWithAllowXK(t *testing.T) {
	c, ok, err := Identifier("Kosovo", true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "XK", c.ISO2)
	assert.Equal(t, "XKX", c.ISO3)
}

func TestIdentifier_DirectXKCodeGatedByAllowXK(t *testing.T) {
	_, ok, _ := Identifier("XK", false)
	assert.False(t, ok)

	c, ok, _ := Identifier("XK", true)
	require.True(t, ok)
	assert.Equal(t, "Kosovo", c.Name)
}

func TestIdentifier_NoMatchForUnrelatedQuery(t *testing.T) {
	_, ok, err := Identifier("Zzzznotacountryatall", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdentifier_BlankQueryReturnsNoMatch(t *testing.T) {
	c, ok, err := Identifier("   ", false)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Country{}, c)
}

func TestCode_ConvertsBetweenSystems(t *testing.T) {
	c := Country{ISO2: "US", ISO3: "USA", Numeric: "840", Name: "United States"}
	assert.Equal(t, "US", Code(c, ""))
	assert.Equal(t, "USA", Code(c, "iso3"))
	assert.Equal(t, "840", Code(c, "numeric"))
}
