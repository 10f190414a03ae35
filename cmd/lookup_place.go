package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/place"
)

var lookupPlaceCountry string

var lookupPlaceCmd = &cobra.Command{
	Use:   "place <query>",
	Short: "Resolve an admin1 division reference (state, province, territory)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := place.NewStore(cfg.Snapshots.PlacesPath)
		resolver := place.NewResolver(store)

		p, ok, err := resolver.Identifier(cmd.Context(), args[0], lookupPlaceCountry)
		if err != nil {
			return eris.Wrap(err, "lookup place")
		}
		if !ok {
			return noMatch("place", args[0])
		}

		return printResult(cmd, p, func() {
			fmt.Printf("%-10s %s, %s (%s)\n", p.PlaceID, p.Admin1, p.Country, p.Admin1Code)
			fmt.Println(place.Attribution)
		})
	},
}

func init() {
	lookupPlaceCmd.Flags().StringVar(&lookupPlaceCountry, "country", "", "ISO-2 country hint, required to disambiguate shared admin1 codes")
	lookupPlaceCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupPlaceCmd)
}
