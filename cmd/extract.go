package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/company"
	"github.com/sells-group/entityidentity/metal"
	"github.com/sells-group/entityidentity/period"
	"github.com/sells-group/entityidentity/place"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Find and resolve every entity mention of one domain in free text",
	Long: `Scans a block of text for mentions of one domain (companies, metals,
periods, or places — the only domains spec'd for free-text extraction) and
resolves each to a canonical record.

Examples:
  entityidentity extract company --text "Acme Mining Corp reported Q1 2026 output."
  entityidentity extract period --text "Guidance covers Q3 2025, revised from Q1 2025."`,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func readExtractText(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("text")
	if text != "" {
		return text, nil
	}
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return "", eris.New("extract: one of --text or --file is required")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", eris.Wrap(err, "extract: read --file")
	}
	return string(data), nil
}

var extractCompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Extract company mentions from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readExtractText(cmd)
		if err != nil {
			return err
		}
		countryHint, _ := cmd.Flags().GetString("country")
		minConfidence, _ := cmd.Flags().GetInt("min-confidence")

		store := company.NewStore(cfg.Snapshots.CompaniesPath)
		resolver := company.NewResolver(store)
		mentions, err := resolver.ExtractCompanies(cmd.Context(), text, countryHint, minConfidence)
		if err != nil {
			return eris.Wrap(err, "extract company")
		}
		return printResult(cmd, mentions, func() {
			for _, m := range mentions {
				fmt.Printf("[%d:%d] %-30s -> %s (%s, score %d)\n", m.Start, m.End, m.Text, m.Company.Name, m.Company.CompanyID, m.Score)
			}
		})
	},
}

var extractMetalCmd = &cobra.Command{
	Use:   "metal",
	Short: "Extract metal mentions from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readExtractText(cmd)
		if err != nil {
			return err
		}
		clusterHint, _ := cmd.Flags().GetString("cluster")

		store := metal.NewStore(cfg.Snapshots.MetalsPath)
		resolver := metal.NewResolver(store)
		mentions, err := resolver.ExtractMetals(cmd.Context(), text, clusterHint)
		if err != nil {
			return eris.Wrap(err, "extract metal")
		}
		return printResult(cmd, mentions, func() {
			for _, m := range mentions {
				fmt.Printf("[%d:%d] %-12s -> %s (%s)\n", m.Start, m.End, m.Text, m.Metal.Name, m.Metal.MetalID)
			}
		})
	},
}

var extractPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Extract admin1 place mentions from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readExtractText(cmd)
		if err != nil {
			return err
		}
		countryHint, _ := cmd.Flags().GetString("country")

		store := place.NewStore(cfg.Snapshots.PlacesPath)
		resolver := place.NewResolver(store)
		mentions, err := resolver.ExtractPlaces(cmd.Context(), text, countryHint)
		if err != nil {
			return eris.Wrap(err, "extract place")
		}
		return printResult(cmd, mentions, func() {
			for _, m := range mentions {
				fmt.Printf("[%d:%d] %-20s -> %s, %s\n", m.Start, m.End, m.Text, m.Place.Admin1, m.Place.Country)
			}
		})
	},
}

var extractPeriodCmd = &cobra.Command{
	Use:   "period",
	Short: "Extract period mentions from text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readExtractText(cmd)
		if err != nil {
			return err
		}
		periods := period.ExtractPeriods(text)
		return printResult(cmd, periods, func() {
			for _, p := range periods {
				fmt.Printf("%-10s %s .. %s\n", p.PeriodID, p.StartTS.Format("2006-01-02"), p.EndTS.Format("2006-01-02"))
			}
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{extractCompanyCmd, extractMetalCmd, extractPlaceCmd, extractPeriodCmd} {
		c.Flags().String("text", "", "free text to scan")
		c.Flags().String("file", "", "path to a file of free text to scan")
		c.Flags().Bool("json", false, "emit results as JSON")
	}
	extractCompanyCmd.Flags().String("country", "", "ISO-2 country hint")
	extractCompanyCmd.Flags().Int("min-confidence", 0, "minimum resolver score (0-100) to keep a mention")
	extractMetalCmd.Flags().String("cluster", "", "supply-chain cluster hint")
	extractPlaceCmd.Flags().String("country", "", "ISO-2 country hint")

	extractCmd.AddCommand(extractCompanyCmd, extractMetalCmd, extractPlaceCmd, extractPeriodCmd)
}
