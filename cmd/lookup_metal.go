package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/metal"
)

var lookupMetalCluster string

var lookupMetalCmd = &cobra.Command{
	Use:   "metal <query>",
	Short: "Resolve a metal symbol, name, or commercial code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := metal.NewStore(cfg.Snapshots.MetalsPath)
		resolver := metal.NewResolver(store)

		m, ok, err := resolver.Identifier(cmd.Context(), args[0], lookupMetalCluster)
		if err != nil {
			return eris.Wrap(err, "lookup metal")
		}
		if !ok {
			return noMatch("metal", args[0])
		}

		return printResult(cmd, m, func() {
			fmt.Printf("%-10s %-4s %s\n", m.MetalID, m.Symbol, m.Name)
			fmt.Printf("cluster: %s\n", m.ClusterID)
			fmt.Printf("default: %s %s\n", m.DefaultUnit, m.DefaultBasis)
		})
	},
}

func init() {
	lookupMetalCmd.Flags().StringVar(&lookupMetalCluster, "cluster", "", "supply-chain cluster hint (e.g. pgm_complex)")
	lookupMetalCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupMetalCmd)
}
