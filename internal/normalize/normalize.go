// Package normalize implements the dual-layer name normalization shared by
// every entity domain: an aggressive match-normalized form used for blocking
// and fuzzy scoring, and a lighter display-canonical form used for
// human-readable identifiers.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var titleCaser = cases.Title(language.English)

// Domain selects the allow-set and legal-suffix behavior applied during
// normalization. Each entity kind gets its own allow-set per spec §4.1.
type Domain int

const (
	DomainCompany Domain = iota
	DomainMetal
	DomainPlace
	DomainBasket
	DomainInstrumentTicker
	DomainInstrumentName
	DomainCountry
)

// allowSets are regexes matching characters NOT in the domain's allow-set;
// matches are replaced with a space before whitespace collapse.
var allowSets = map[Domain]*regexp.Regexp{
	DomainCompany:          regexp.MustCompile(`[^a-z0-9&\-]+`),
	DomainMetal:            regexp.MustCompile(`[^a-z0-9 \-/()%]+`),
	DomainPlace:            regexp.MustCompile(`[^a-z0-9 \-()']+`),
	DomainBasket:           regexp.MustCompile(`[^a-z0-9 \-/()]+`),
	DomainInstrumentTicker: regexp.MustCompile(`[^a-z0-9\-_]+`),
	DomainInstrumentName:   regexp.MustCompile(`[^a-z0-9 \-/()%]+`),
	DomainCountry:          regexp.MustCompile(`[^a-z0-9 \-']+`),
}

// legalSuffixes is the fixed regex over common legal entity suffixes
// stripped only for DomainCompany, with an optional trailing period.
var legalSuffixes = regexp.MustCompile(`(?i)\b(inc|corp|co|ltd|limited|plc|sa|ag|gmbh|spa|oyj|kgaa|sarl|srl|pte|llc|lp|bv|nv|ab|as|oy|sas|jsc)\.?\s*$`)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// asciiFold drops combining marks after NFKD decomposition and transliterates
// to plain ASCII, e.g. "Societe" from "Société".
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

func toASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}

// MatchNormalize produces the aggressive form used for equality, prefix, and
// fuzzy comparison: NFKD fold to ASCII, lowercase, optional legal-suffix
// strip, allow-set filter, whitespace collapse. Idempotent; empty in yields
// empty out; never panics.
func MatchNormalize(domain Domain, s string) string {
	if s == "" {
		return ""
	}

	s = toASCII(s)
	s = strings.ToLower(s)

	if domain == DomainCompany {
		for {
			stripped := legalSuffixes.ReplaceAllString(s, "")
			stripped = strings.TrimRight(stripped, " ")
			if stripped == s {
				break
			}
			s = stripped
		}
	}

	allow := allowSets[domain]
	s = allow.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// commaBeforeSuffix matches a comma immediately preceding a legal suffix,
// e.g. "Acme, Inc." -> "Acme Inc.".
var commaBeforeSuffix = regexp.MustCompile(`(?i),\s+(Inc|Corp|Ltd|LLC|LP|PLC|Co)\b`)

// periodAfterSuffix matches the trailing period on a legal suffix token.
var periodAfterSuffix = regexp.MustCompile(`(?i)\b(Inc|Corp|Ltd|Co)\.`)

var displayKeep = regexp.MustCompile(`[^A-Za-z0-9 \-&]+`)

// DisplayCanonicalize produces the light-touch form used for human-readable
// identifiers: case is preserved. Companies additionally drop the comma
// before a legal suffix and the period inside one. Metals and places
// title-case the result after folding.
func DisplayCanonicalize(domain Domain, s string) string {
	if s == "" {
		return s
	}

	if domain == DomainCompany {
		s = commaBeforeSuffix.ReplaceAllString(s, " $1")
		s = periodAfterSuffix.ReplaceAllString(s, "$1")
	}

	s = toASCII(s)
	s = displayKeep.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if domain == DomainMetal || domain == DomainPlace {
		s = titleCaser.String(strings.ToLower(s))
	}
	return s
}

var slugNonAlnumHyphen = regexp.MustCompile(`[^a-z0-9\-]+`)
var slugWhitespaceUnderscore = regexp.MustCompile(`[\s_]+`)
var slugMultiHyphen = regexp.MustCompile(`-+`)

// Slugify produces a url-safe key: lowercase match-normalize, then replace
// whitespace/underscore runs with a hyphen, strip everything outside
// a-z0-9-, collapse hyphen runs, and trim leading/trailing hyphens.
func Slugify(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = toASCII(s)
	s = slugWhitespaceUnderscore.ReplaceAllString(s, "-")
	s = slugNonAlnumHyphen.ReplaceAllString(s, "")
	s = slugMultiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
