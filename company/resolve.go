package company

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/entityidentity/internal/blocking"
	"github.com/sells-group/entityidentity/internal/fuzzy"
	"github.com/sells-group/entityidentity/internal/normalize"
	"github.com/sells-group/entityidentity/internal/resolver"
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// Decision names the outcome of the company-specific confidence procedure,
// an extension of the generic resolver's threshold step for the company
// domain only.
type Decision string

const (
	DecisionAutoHighConf   Decision = "auto_high_conf"
	DecisionLLMTiebreak    Decision = "llm_tiebreak"
	DecisionNeedsHintOrLLM Decision = "needs_hint_or_llm"
	DecisionNoMatch        Decision = "no_match"
)

const (
	highConfThreshold  = 88.0
	highConfGap        = 6.0
	uncertainThreshold = 76.0
	defaultTopK        = 10
)

// Match pairs a candidate Company with its fuzzy score.
type Match struct {
	Company Company
	Score   int
}

// TieBreakFunc lets a caller (typically an LLM-backed disambiguator) pick a
// winner from the candidate list when the score falls in the uncertain
// band. Returning false means "no pick", falling back to DecisionNeedsHintOrLLM.
type TieBreakFunc func(matches []Match) (Company, bool)

// Result is the full disambiguation record returned by Resolve: every
// candidate considered, the final pick if any, and why.
type Result struct {
	Query    string
	Matches  []Match
	Final    *Company
	Decision Decision
}

// Resolver resolves company name references against a process-resident
// snapshot of golden records.
type Resolver struct {
	store *snapshot.Store[Company]
}

// NewResolver constructs a Resolver over the given snapshot store.
func NewResolver(store *snapshot.Store[Company]) *Resolver {
	return &Resolver{store: store}
}

// Resolve runs the blocking + scoring + decision procedure for a single
// query. country is an optional ISO-2 hint; tieBreak is an optional
// caller-supplied disambiguator invoked only in the uncertain band.
func (r *Resolver) Resolve(ctx context.Context, name, country string, tieBreak TieBreakFunc) (Result, error) {
	result := Result{Query: name, Decision: DecisionNoMatch}
	if resolver.IsBlank(name) {
		return result, nil
	}

	table, err := r.store.Get(ctx)
	if err != nil {
		return result, eris.Wrap(err, "company: load snapshot")
	}

	queryNorm := normalize.MatchNormalize(normalize.DomainCompany, name)
	country = strings.ToUpper(strings.TrimSpace(country))

	chain := blocking.NewChain(
		blocking.Equality("country", func(c Company) string { return c.Country }, country, country != ""),
		blocking.Prefix("name-prefix", func(c Company) string { return c.NameNorm }, Company.AliasNames, queryNorm),
	)
	blocked := chain.Run(table.Rows)

	zap.L().Debug("company blocking",
		zap.String("query_norm", queryNorm),
		zap.Int("pool_size", len(blocked.Pool)))

	scorer := func(c Company) int { return fuzzy.Score(queryNorm, c) }
	boost := func(c Company, base int) int {
		if country != "" && c.Country == country {
			base += 2
		}
		if c.HasLEI() {
			base += 1
		}
		return base
	}

	ranked := resolver.TopK(blocked.Pool, scorer, boost, defaultTopK)
	for _, m := range ranked {
		result.Matches = append(result.Matches, Match{Company: m.Row, Score: m.Score})
	}
	if len(result.Matches) == 0 {
		return result, nil
	}

	best := float64(result.Matches[0].Score)
	second := 0.0
	if len(result.Matches) > 1 {
		second = float64(result.Matches[1].Score)
	}
	gap := best - second

	switch {
	case best >= highConfThreshold && gap >= highConfGap:
		winner := result.Matches[0].Company
		result.Final = &winner
		result.Decision = DecisionAutoHighConf
	case best >= uncertainThreshold && best < highConfThreshold:
		if tieBreak != nil {
			if pick, ok := tieBreak(result.Matches); ok {
				result.Final = &pick
				result.Decision = DecisionLLMTiebreak
				return result, nil
			}
		}
		result.Decision = DecisionNeedsHintOrLLM
	default:
		result.Decision = DecisionNoMatch
	}

	return result, nil
}

// Match scores the full blocked pool and returns the top-k (company, score)
// pairs, skipping the decision procedure entirely. Used for disambiguation
// UIs.
func (r *Resolver) Match(ctx context.Context, name, country string, k int) ([]Match, error) {
	if k <= 0 {
		k = defaultTopK
	}
	result, err := r.Resolve(ctx, name, country, nil)
	if err != nil {
		return nil, err
	}
	if len(result.Matches) > k {
		return result.Matches[:k], nil
	}
	return result.Matches, nil
}

// List is a straight row filter on the snapshot: no scoring. An empty
// country or search string is treated as "no filter" for that field.
func (r *Resolver) List(ctx context.Context, country, search string, limit int) ([]Company, error) {
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "company: load snapshot")
	}

	country = strings.ToUpper(strings.TrimSpace(country))
	searchLower := strings.ToLower(strings.TrimSpace(search))

	var out []Company
	for _, c := range table.Rows {
		if country != "" && c.Country != country {
			continue
		}
		if searchLower != "" &&
			!strings.Contains(strings.ToLower(c.Name), searchLower) &&
			!strings.Contains(c.NameNorm, searchLower) {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
