package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/instrument"
	"github.com/sells-group/entityidentity/metal"
)

var (
	lookupInstrumentSource   string
	lookupInstrumentMaterial string
)

var lookupInstrumentCmd = &cobra.Command{
	Use:   "instrument <query>",
	Short: "Resolve a price-instrument ticker (Fastmarkets, LME, CME, Bloomberg, Argus)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metalStore := metal.NewStore(cfg.Snapshots.MetalsPath)
		store := instrument.NewStore(cfg.Snapshots.InstrumentsPath, metalStore)
		resolver := instrument.NewResolver(store)

		inst, ok, err := resolver.Identifier(cmd.Context(), args[0], lookupInstrumentSource, lookupInstrumentMaterial)
		if err != nil {
			return eris.Wrap(err, "lookup instrument")
		}
		if !ok {
			return noMatch("instrument", args[0])
		}

		return printResult(cmd, inst, func() {
			fmt.Printf("%-14s %-12s %s\n", inst.InstrumentID, inst.Provider, inst.InstrumentName)
			fmt.Printf("ticker:  %s\n", inst.Ticker)
			fmt.Printf("unit:    %s %s\n", inst.Unit, inst.Basis)
			if inst.MaterialID != "" {
				fmt.Printf("material: %s (cluster %s)\n", inst.MaterialID, inst.ClusterID)
			}
		})
	},
}

func init() {
	lookupInstrumentCmd.Flags().StringVar(&lookupInstrumentSource, "source", "", "provider hint (Fastmarkets, LME, CME, Bloomberg, Argus)")
	lookupInstrumentCmd.Flags().StringVar(&lookupInstrumentMaterial, "material", "", "material substring hint")
	lookupInstrumentCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupInstrumentCmd)
}
