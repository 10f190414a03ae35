package unit

import (
	"fmt"
	"strings"
)

// Normalize runs the five-step procedure of spec.md §4.9: preserve raw,
// look up the material's rule, validate required parameters, convert, and
// return {raw, norm, warning}. A non-empty Warning on a hard failure
// implies Norm == the raw value/unit/basis verbatim; an advisory warning
// (currently only Copper's metric-ton assumption) still carries a real
// conversion.
func Normalize(in Input) Result {
	key := strings.ToLower(strings.TrimSpace(in.Material))
	r, ok := rules[key]
	if !ok {
		return passthrough(in, fmt.Sprintf("No conversion rule for material %s", in.Material))
	}

	norm, warning, converted := r.convert(in)
	if !converted {
		return passthrough(in, warning)
	}
	return Result{Raw: in, Norm: norm, Warning: warning}
}
