package country

// aliases is the hand-curated colloquialism map: informal names, former
// names, and common abbreviations that don't appear verbatim in the
// registry's name/official-name/common-name columns. Keys are lowercase.
var aliases = map[string]string{
	"uk":                 "GB",
	"britain":            "GB",
	"great britain":      "GB",
	"england":            "GB",
	"scotland":           "GB",
	"wales":              "GB",
	"northern ireland":   "GB",
	"usa":                "US",
	"u.s.a.":             "US",
	"u.s.":               "US",
	"america":            "US",
	"holland":            "NL",
	"burma":              "MM",
	"ivory coast":        "CI",
	"congo-kinshasa":     "CD",
	"congo-brazzaville":  "CG",
	"drc":                "CD",
	"uae":                "AE",
	"south korea":        "KR",
	"north korea":        "KP",
	"czech republic":     "CZ",
	"macedonia":          "MK",
	"swaziland":          "SZ",
	"cape verde":         "CV",
	"russia":             "RU",
	"persia":             "IR",
	"siam":               "TH",
	"formosa":            "TW",
	"rhodesia":           "ZW",
	"kosovo":             "XK",
}

// xkCode is the user-assigned ISO-2 code for Kosovo. It is absent from the
// registry and only resolves when callers opt in.
const xkCode = "XK"
