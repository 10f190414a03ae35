package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/company"
)

var lookupCompanyCountry string

var lookupCompanyCmd = &cobra.Command{
	Use:   "company <query>",
	Short: "Resolve a company name reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := company.NewStore(cfg.Snapshots.CompaniesPath)
		resolver := company.NewResolver(store)

		result, err := resolver.Resolve(cmd.Context(), args[0], lookupCompanyCountry, nil)
		if err != nil {
			return eris.Wrap(err, "lookup company")
		}
		if result.Final == nil {
			return noMatch("company", args[0])
		}

		return printResult(cmd, result, func() {
			c := *result.Final
			fmt.Printf("%-10s %s\n", c.CompanyID, c.Name)
			fmt.Printf("country:  %s\n", c.Country)
			fmt.Printf("source:   %s\n", c.Source)
			fmt.Printf("decision: %s (score %d)\n", result.Decision, result.Matches[0].Score)
		})
	},
}

func init() {
	lookupCompanyCmd.Flags().StringVar(&lookupCompanyCountry, "country", "", "ISO-2 country hint")
	lookupCompanyCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupCompanyCmd)
}
