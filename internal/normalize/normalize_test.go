package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchNormalize_StripLegalSuffix(t *testing.T) {
	assert.Equal(t, "acme", MatchNormalize(DomainCompany, "Acme Inc."))
	assert.Equal(t, "acme", MatchNormalize(DomainCompany, "Acme, LLC"))
	assert.Equal(t, "acme widgets", MatchNormalize(DomainCompany, "Acme Widgets Corp"))
}

func TestMatchNormalize_AsciiFold(t *testing.T) {
	assert.Equal(t, "societe generale", MatchNormalize(DomainCompany, "Société Générale"))
}

func TestMatchNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "pgm 4e", MatchNormalize(DomainMetal, "  PGM   4E  "))
}

func TestMatchNormalize_MetalAllowSet(t *testing.T) {
	assert.Equal(t, "ammonium paratungstate (apt)", MatchNormalize(DomainMetal, "Ammonium Paratungstate (APT)"))
}

func TestMatchNormalize_Idempotent(t *testing.T) {
	for _, s := range []string{"Acme, Inc.", "Société Générale", "  spaced   out  "} {
		once := MatchNormalize(DomainCompany, s)
		twice := MatchNormalize(DomainCompany, once)
		assert.Equal(t, once, twice)
	}
}

func TestMatchNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", MatchNormalize(DomainCompany, ""))
}

func TestDisplayCanonicalize_RemovesCommaAndPeriod(t *testing.T) {
	assert.Equal(t, "Acme Inc", DisplayCanonicalize(DomainCompany, "Acme, Inc."))
}

func TestDisplayCanonicalize_PreservesCase(t *testing.T) {
	assert.Equal(t, "Apple Inc", DisplayCanonicalize(DomainCompany, "Apple Inc."))
}

func TestDisplayCanonicalize_TitleCaseForMetalAndPlace(t *testing.T) {
	assert.Equal(t, "Lithium Carbonate", DisplayCanonicalize(DomainMetal, "lithium carbonate"))
	assert.Equal(t, "Western Australia", DisplayCanonicalize(DomainPlace, "western australia"))
}

func TestDisplayCanonicalize_Idempotent(t *testing.T) {
	once := DisplayCanonicalize(DomainCompany, "Acme, Inc.")
	twice := DisplayCanonicalize(DomainCompany, once)
	assert.Equal(t, once, twice)
}

func TestSlugify_Basic(t *testing.T) {
	assert.Equal(t, "lithium-carbonate", Slugify("Lithium Carbonate"))
	assert.Equal(t, "pgm-4e", Slugify("PGM 4E"))
	assert.Equal(t, "ammonium-paratungstate-apt", Slugify("Ammonium paratungstate (APT)"))
}

func TestSlugify_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Slugify(""))
}

func TestSlugify_Idempotent(t *testing.T) {
	once := Slugify("Région Auvergne-Rhône-Alpes")
	twice := Slugify(once)
	assert.Equal(t, once, twice)
}
