package unit

import "strings"

// Conversion constants fixed by the canonical specification.
const (
	lbPerMetricTon  = 2204.62
	lbPerShortTon   = 2000.0
	lbPerLongTon    = 2240.0
	mtuPerMetricTon = 10.0
)

// lbPerTon resolves the pound-per-ton factor for a ton system, defaulting
// to metric when tonSystem is empty (the Copper advisory-assumption path).
func lbPerTon(tonSystem string) (factor float64, assumedMetric bool) {
	switch strings.ToLower(tonSystem) {
	case "short":
		return lbPerShortTon, false
	case "long":
		return lbPerLongTon, false
	case "metric", "":
		return lbPerMetricTon, tonSystem == ""
	default:
		return lbPerMetricTon, tonSystem == ""
	}
}

// rule is a material's canonical conversion target plus the parameters it
// requires; convert performs the arithmetic once those parameters validate.
type rule struct {
	material    string
	targetUnit  string
	targetBasis string
	convert     func(in Input) (Normalized, string, bool)
}

var rules = map[string]rule{
	"fecr":            feCrRule,
	"apt":             aptRule,
	"copper":          copperRule,
	"gold":            preciousRule("Gold"),
	"silver":          preciousRule("Silver"),
	"platinum":        preciousRule("Platinum"),
	"palladium":       preciousRule("Palladium"),
	"rhodium":         preciousRule("Rhodium"),
	"lithium":         passthroughOnlyRule("Lithium"),
	"cobalt":          passthroughOnlyRule("Cobalt"),
	"nickel":          passthroughOnlyRule("Nickel"),
	"ferromolybdenum": passthroughOnlyRule("Ferromolybdenum"),
	"ferrovanadium":   passthroughOnlyRule("Ferrovanadium"),
	"neodymium":       passthroughOnlyRule("Neodymium"),
	"dysprosium":      passthroughOnlyRule("Dysprosium"),
}

var feCrRule = rule{
	material:    "FeCr",
	targetUnit:  "USD/lb",
	targetBasis: "Cr contained",
	convert: func(in Input) (Normalized, string, bool) {
		if !validPct(in.Grade.CrPct) {
			return Normalized{}, missingParamsWarning("FeCr", "USD/lb Cr contained", []string{"Cr_pct"}), false
		}
		factor, _ := lbPerTon(in.TonSystem)
		valuePerLb := in.Value / factor
		valuePerLbContained := valuePerLb / (in.Grade.CrPct / 100.0)
		return Normalized{Value: valuePerLbContained, Unit: "USD/lb", Basis: "Cr contained"}, "", true
	},
}

var aptRule = rule{
	material:    "APT",
	targetUnit:  "USD/mtu",
	targetBasis: "WO3",
	convert: func(in Input) (Normalized, string, bool) {
		if !validPct(in.Grade.WO3Pct) {
			return Normalized{}, missingParamsWarning("APT", "USD/mtu WO3", []string{"WO3_pct"}), false
		}
		factor, _ := lbPerTon(in.TonSystem)
		valuePerMetricTon := in.Value * (lbPerMetricTon / factor)
		valuePerMTU := valuePerMetricTon / mtuPerMetricTon
		valuePerMTUContained := valuePerMTU / (in.Grade.WO3Pct / 100.0)
		return Normalized{Value: valuePerMTUContained, Unit: "USD/mtu", Basis: "WO3"}, "", true
	},
}

var copperRule = rule{
	material:    "Copper",
	targetUnit:  "USD/lb",
	targetBasis: "Cu contained",
	convert: func(in Input) (Normalized, string, bool) {
		if strings.HasSuffix(strings.ToLower(strings.TrimSpace(in.Unit)), "/lb") {
			return Normalized{Value: in.Value, Unit: "USD/lb", Basis: "Cu contained"}, "", true
		}
		factor, assumedMetric := lbPerTon(in.TonSystem)
		valuePerLb := in.Value / factor
		warning := ""
		if assumedMetric {
			warning = "Assumed metric ton for Copper conversion; ton_system was not specified"
		}
		return Normalized{Value: valuePerLb, Unit: "USD/lb", Basis: "Cu contained"}, warning, true
	},
}

// preciousRule builds the $/troy-oz passthrough-basis rule shared by gold,
// silver, and the PGMs: no grade or ton-system parameter is required.
func preciousRule(name string) rule {
	return rule{
		material:    name,
		targetUnit:  "USD/toz",
		targetBasis: name,
		convert: func(in Input) (Normalized, string, bool) {
			return Normalized{Value: in.Value, Unit: "USD/toz", Basis: name}, "", true
		},
	}
}

// passthroughOnlyRule covers the cluster_id-linked battery/REE/ferroalloy
// materials added by the domain-stack expansion: spec.md names no
// canonical basis for them, so they resolve without error but without a
// unit change either, distinct from an "unknown material" failure.
func passthroughOnlyRule(name string) rule {
	return rule{
		material:    name,
		targetUnit:  "",
		targetBasis: "",
		convert: func(in Input) (Normalized, string, bool) {
			return Normalized{Value: in.Value, Unit: in.Unit, Basis: in.Basis}, "", true
		},
	}
}
