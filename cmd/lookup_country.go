package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/country"
)

var lookupCountryAllowXK bool

var lookupCountryCmd = &cobra.Command{
	Use:   "country <query>",
	Short: "Resolve a country name, ISO code, or alias",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok, err := country.Identifier(args[0], lookupCountryAllowXK)
		if err != nil {
			return err
		}
		if !ok {
			return noMatch("country", args[0])
		}

		return printResult(cmd, c, func() {
			fmt.Printf("%s / %s / %s  %s\n", c.ISO2, c.ISO3, c.Numeric, c.Name)
		})
	},
}

func init() {
	lookupCountryCmd.Flags().BoolVar(&lookupCountryAllowXK, "allow-user-assigned", false, "allow user-assigned codes such as XK (Kosovo)")
	lookupCountryCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupCountryCmd)
}
