package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Resolve a single entity reference against its snapshot",
	Long: `Resolves one free-form entity reference to a canonical record.

Examples:
  entityidentity lookup company "Acme Mining Corp" --country AU
  entityidentity lookup metal "Pt"
  entityidentity lookup place "WA" --country AU
  entityidentity lookup period "Q1-Q2 2026"
  entityidentity lookup unit --material FeCr --value 2150 --cr-pct 65 --ton-system metric`,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

// printResult renders v either as indented JSON (--json) or with the
// caller-supplied plain-text fallback.
func printResult(cmd *cobra.Command, v any, plain func()) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	plain()
	return nil
}

func noMatch(domain, query string) error {
	fmt.Fprintf(os.Stderr, "%s: no match for %q\n", domain, query)
	os.Exit(1)
	return nil
}
