package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_HasLookupAndExtractSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"lookup", "extract"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "entityidentity", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestLookupCommand_HasAllDomainSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range lookupCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"company", "country", "metal", "place", "basket", "instrument", "period", "unit"} {
		assert.True(t, names[name], "expected lookup subcommand %q not found", name)
	}
}

func TestExtractCommand_HasOnlyFreeTextDomains(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range extractCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"company", "metal", "place", "period"} {
		assert.True(t, names[name], "expected extract subcommand %q not found", name)
	}
	assert.False(t, names["country"], "country has no extract_country operation per spec")
	assert.False(t, names["basket"], "basket has no extract_basket operation per spec")
}
