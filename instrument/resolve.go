package instrument

import (
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/entityidentity/internal/blocking"
	"github.com/sells-group/entityidentity/internal/fuzzy"
	"github.com/sells-group/entityidentity/internal/normalize"
	"github.com/sells-group/entityidentity/internal/resolver"
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// Threshold is the generic resolver's acceptance threshold for instrument
// resolution.
const Threshold = 90

const defaultTopK = 10

// providerPatterns recognizes the raw ticker shape each provider uses,
// per §4.4's pattern-source blocker.
var providerPatterns = []blocking.NamedPattern{
	{Provider: string(ProviderFastmarkets), Regexp: regexp.MustCompile(`^MB-[A-Z0-9]+-\d+$`)},
	{Provider: string(ProviderLME), Regexp: regexp.MustCompile(`^LME[_-][A-Z]{2,3}[_-]\w+$`)},
	{Provider: string(ProviderArgus), Regexp: regexp.MustCompile(`^PA\d{7}$`)},
	{Provider: string(ProviderCME), Regexp: regexp.MustCompile(`^[A-Z]{1,3}\d*$`)},
	{Provider: string(ProviderBloomberg), Regexp: regexp.MustCompile(`^[A-Z]{2,6}(Y|\d)?$`)},
}

func providerBlocking(provider func(Instrument) string, rawQuery string) blocking.Step[Instrument] {
	return blocking.PatternSource("provider-pattern", provider, rawQuery, providerPatterns)
}

// Match pairs a candidate Instrument with its fuzzy score.
type Match struct {
	Instrument Instrument
	Score      int
}

// Resolver resolves price-instrument ticker references against a
// process-resident snapshot.
type Resolver struct {
	store *snapshot.Store[Instrument]
}

// NewResolver constructs a Resolver over the given snapshot store.
func NewResolver(store *snapshot.Store[Instrument]) *Resolver {
	return &Resolver{store: store}
}

// Identifier runs the blocking+scoring procedure for a single query.
// sourceHint and materialHint are optional caller-supplied disambiguators
// feeding the instrument-specific boosts of §4.5.
func (r *Resolver) Identifier(ctx context.Context, query, sourceHint, materialHint string) (Instrument, bool, error) {
	var zero Instrument
	if resolver.IsBlank(query) {
		return zero, false, nil
	}

	table, err := r.store.Get(ctx)
	if err != nil {
		return zero, false, eris.Wrap(err, "instrument: load snapshot")
	}

	raw := strings.TrimSpace(query)
	tickerNorm := normalize.MatchNormalize(normalize.DomainInstrumentTicker, raw)

	chain := blocking.NewChain(
		blocking.ExactNormalized("ticker", func(i Instrument) string { return i.TickerNorm }, tickerNorm, true),
		providerBlocking(func(i Instrument) string { return string(i.Provider) }, raw),
	)
	blocked := chain.Run(table.Rows)

	queryNorm := normalize.MatchNormalize(normalize.DomainInstrumentName, raw)
	scorer := func(i Instrument) int { return fuzzy.Score(queryNorm, i) }
	boost := func(i Instrument, base int) int {
		if sourceHint != "" && string(i.Provider) == sourceHint {
			base += 5
		}
		if materialHint != "" && strings.Contains(i.MaterialID, materialHint) {
			base += 2
		}
		return base
	}

	result, ok := resolver.Resolve(blocked.Pool, blocked.Exact, scorer, boost, Threshold)
	if !ok {
		return zero, false, nil
	}
	return result.Row, true, nil
}

// Match scores the full pool and returns the top-k (instrument, score)
// pairs without applying the acceptance threshold.
func (r *Resolver) Match(ctx context.Context, query, sourceHint, materialHint string, k int) ([]Match, error) {
	if k <= 0 {
		k = defaultTopK
	}
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "instrument: load snapshot")
	}

	queryNorm := normalize.MatchNormalize(normalize.DomainInstrumentName, query)
	scorer := func(i Instrument) int { return fuzzy.Score(queryNorm, i) }
	boost := func(i Instrument, base int) int {
		if sourceHint != "" && string(i.Provider) == sourceHint {
			base += 5
		}
		if materialHint != "" && strings.Contains(i.MaterialID, materialHint) {
			base += 2
		}
		return base
	}
	ranked := resolver.TopK(table.Rows, scorer, boost, k)

	out := make([]Match, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, Match{Instrument: m.Row, Score: m.Score})
	}
	return out, nil
}

// List is a straight row filter on the snapshot: no scoring.
func (r *Resolver) List(ctx context.Context, provider string, limit int) ([]Instrument, error) {
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "instrument: load snapshot")
	}

	var out []Instrument
	for _, i := range table.Rows {
		if provider != "" && string(i.Provider) != provider {
			continue
		}
		out = append(out, i)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
