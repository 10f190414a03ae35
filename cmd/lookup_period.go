package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/period"
)

var lookupPeriodAsOf string

var lookupPeriodCmd = &cobra.Command{
	Use:   "period <query>",
	Short: "Resolve a period reference (quarter, half, ISO week, relative period, range)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var asOf time.Time
		if lookupPeriodAsOf != "" {
			t, err := time.Parse("2006-01-02", lookupPeriodAsOf)
			if err != nil {
				return fmt.Errorf("lookup period: parse --as-of: %w", err)
			}
			asOf = t
		}

		p, ok := period.Identifier(args[0], asOf)
		if !ok {
			return noMatch("period", args[0])
		}

		return printResult(cmd, p, func() {
			fmt.Printf("%-10s %s\n", p.PeriodType, p.PeriodID)
			fmt.Printf("start: %s\n", p.StartTS.Format(time.RFC3339Nano))
			fmt.Printf("end:   %s\n", p.EndTS.Format(time.RFC3339Nano))
		})
	},
}

func init() {
	lookupPeriodCmd.Flags().StringVar(&lookupPeriodAsOf, "as-of", "", "reference date (YYYY-MM-DD) for relative periods, default today")
	lookupPeriodCmd.Flags().Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupPeriodCmd)
}
