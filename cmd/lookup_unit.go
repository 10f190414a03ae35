package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/entityidentity/unit"
)

var (
	lookupUnitMaterial   string
	lookupUnitValue      float64
	lookupUnitUnit       string
	lookupUnitBasis      string
	lookupUnitTonSystem  string
	lookupUnitCrPct      float64
	lookupUnitWO3Pct     float64
	lookupUnitCuPct      float64
)

var lookupUnitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Normalize a priced quantity to its canonical unit/basis",
	Long: `Converts a material-keyed price or quantity to the canonical
unit and basis for that material (e.g. FeCr to USD/lb Cr contained).

Examples:
  entityidentity lookup unit --material FeCr --value 2150 --cr-pct 65 --ton-system metric
  entityidentity lookup unit --material APT --value 450 --wo3-pct 88.5
  entityidentity lookup unit --material Copper --value 4.10 --unit USD/lb`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := unit.Normalize(unit.Input{
			Value:      lookupUnitValue,
			Unit:       lookupUnitUnit,
			Basis:      lookupUnitBasis,
			TonSystem:  lookupUnitTonSystem,
			Material:   lookupUnitMaterial,
			Grade: unit.Grade{
				CrPct:  lookupUnitCrPct,
				WO3Pct: lookupUnitWO3Pct,
				CuPct:  lookupUnitCuPct,
			},
		})

		return printResult(cmd, result, func() {
			fmt.Printf("raw:  %g %s %s\n", result.Raw.Value, result.Raw.Unit, result.Raw.Basis)
			fmt.Printf("norm: %g %s %s\n", result.Norm.Value, result.Norm.Unit, result.Norm.Basis)
			if result.Warning != "" {
				fmt.Printf("warning: %s\n", result.Warning)
			}
		})
	},
}

func init() {
	f := lookupUnitCmd.Flags()
	f.StringVar(&lookupUnitMaterial, "material", "", "material key (FeCr, APT, Copper, Gold, Lithium, ...)")
	f.Float64Var(&lookupUnitValue, "value", 0, "raw numeric value")
	f.StringVar(&lookupUnitUnit, "unit", "", "raw unit as quoted (e.g. USD/mt)")
	f.StringVar(&lookupUnitBasis, "basis", "", "raw basis as quoted (e.g. gross weight)")
	f.StringVar(&lookupUnitTonSystem, "ton-system", "", "metric, short, or long (defaults to metric for Copper with an advisory warning)")
	f.Float64Var(&lookupUnitCrPct, "cr-pct", 0, "contained Cr percentage, required for FeCr")
	f.Float64Var(&lookupUnitWO3Pct, "wo3-pct", 0, "contained WO3 percentage, required for APT")
	f.Float64Var(&lookupUnitCuPct, "cu-pct", 0, "contained Cu percentage")
	f.Bool("json", false, "emit result as JSON")
	lookupCmd.AddCommand(lookupUnitCmd)
}
