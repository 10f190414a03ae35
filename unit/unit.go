// Package unit normalizes material-priced values onto a canonical
// unit/basis per material, with a strict "missing parameter means no
// partial conversion" contract.
package unit

import "fmt"

// Grade carries the assay percentages a conversion rule may require.
type Grade struct {
	CrPct  float64
	WO3Pct float64
	CuPct  float64
}

// Input is the raw, caller-supplied record to normalize. Value/Unit are
// required; Basis, Grade, TonSystem, and Material are optional and their
// absence is what drives the missing-parameter contract.
type Input struct {
	Value     float64
	Unit      string
	Basis     string
	Grade     Grade
	TonSystem string // "metric", "short", "long"; empty if unspecified
	Material  string
}

// Normalized is the canonical-unit projection of an Input. It equals Raw
// whenever Warning signals an outright failure to convert.
type Normalized struct {
	Value float64
	Unit  string
	Basis string
}

// Result is the full {raw, norm, warning} response contract.
type Result struct {
	Raw     Input
	Norm    Normalized
	Warning string // empty means a clean conversion
}

// Converted reports whether Result represents an actual unit conversion
// as opposed to a passthrough of raw onto norm.
func (r Result) Converted() bool {
	return r.Norm.Unit != r.Raw.Unit || r.Norm.Basis != r.Raw.Basis
}

func passthrough(in Input, warning string) Result {
	return Result{
		Raw:     in,
		Norm:    Normalized{Value: in.Value, Unit: in.Unit, Basis: in.Basis},
		Warning: warning,
	}
}

func validPct(pct float64) bool {
	return pct > 0 && pct <= 100
}

func missingParamsWarning(material, target string, missing []string) string {
	return fmt.Sprintf("missing parameters %v for %s conversion to %s", missing, material, target)
}
