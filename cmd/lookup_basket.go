package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/basket"
)

var lookupBasketCmd = &cobra.Command{
	Use:   "basket <query>",
	Short: "Resolve a commodity basket reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := basket.NewStore(cfg.Snapshots.BasketsPath)
		resolver := basket.NewResolver(store)

		b, ok, err := resolver.Identifier(cmd.Context(), args[0])
		if err != nil {
			return eris.Wrap(err, "lookup basket")
		}
		if !ok {
			return noMatch("basket", args[0])
		}

		return printResult(cmd, b, func() {
			fmt.Printf("%-10s %s\n", b.BasketID, b.Name)
		})
	},
}

func init() {
	lookupBasketCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupBasketCmd)
}
