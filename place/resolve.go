package place

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/entityidentity/internal/blocking"
	"github.com/sells-group/entityidentity/internal/fuzzy"
	"github.com/sells-group/entityidentity/internal/normalize"
	"github.com/sells-group/entityidentity/internal/resolver"
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// Threshold is the generic resolver's acceptance threshold for admin1
// resolution. Places carry no boosts (§4.5).
const Threshold = 90

const defaultTopK = 10

// Match pairs a candidate Place with its fuzzy score.
type Match struct {
	Place Place
	Score int
}

// Resolver resolves admin1 division references against a process-resident
// snapshot.
type Resolver struct {
	store *snapshot.Store[Place]
}

// NewResolver constructs a Resolver over the given snapshot store.
func NewResolver(store *snapshot.Store[Place]) *Resolver {
	return &Resolver{store: store}
}

// Identifier runs the generic blocking+scoring procedure for a single
// place query. countryHint narrows the pool to one ISO-2 country; an
// admin1_code exact match (e.g. "WA") short-circuits scoring once the
// country hint has disambiguated it, matching the worked example of "WA"
// resolving to different admin1 names depending on country.
func (r *Resolver) Identifier(ctx context.Context, query, countryHint string) (Place, bool, error) {
	var zero Place
	if resolver.IsBlank(query) {
		return zero, false, nil
	}

	table, err := r.store.Get(ctx)
	if err != nil {
		return zero, false, eris.Wrap(err, "place: load snapshot")
	}

	countryHint = strings.ToUpper(strings.TrimSpace(countryHint))
	code := strings.ToUpper(strings.TrimSpace(query))
	queryNorm := normalize.MatchNormalize(normalize.DomainPlace, query)

	chain := blocking.NewChain(
		blocking.Equality("country", func(p Place) string { return p.Country }, countryHint, countryHint != ""),
		blocking.ExactNormalized("admin1-code", func(p Place) string { return strings.ToUpper(p.Admin1Code) }, code, true),
	)
	blocked := chain.Run(table.Rows)
	if len(blocked.Pool) == 1 && blocked.Exact {
		return blocked.Pool[0], true, nil
	}

	scorer := func(p Place) int { return fuzzy.Score(queryNorm, p) }
	result, ok := resolver.Resolve(blocked.Pool, blocked.Exact, scorer, nil, Threshold)
	if !ok {
		return zero, false, nil
	}
	return result.Row, true, nil
}

// Match scores the full country-filtered pool and returns the top-k
// (place, score) pairs without applying the acceptance threshold.
func (r *Resolver) Match(ctx context.Context, query, countryHint string, k int) ([]Match, error) {
	if k <= 0 {
		k = defaultTopK
	}
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "place: load snapshot")
	}

	countryHint = strings.ToUpper(strings.TrimSpace(countryHint))
	queryNorm := normalize.MatchNormalize(normalize.DomainPlace, query)

	chain := blocking.NewChain(
		blocking.Equality("country", func(p Place) string { return p.Country }, countryHint, countryHint != ""),
	)
	blocked := chain.Run(table.Rows)

	scorer := func(p Place) int { return fuzzy.Score(queryNorm, p) }
	ranked := resolver.TopK(blocked.Pool, scorer, nil, k)

	out := make([]Match, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, Match{Place: m.Row, Score: m.Score})
	}
	return out, nil
}

// List is a straight row filter on the snapshot: no scoring.
func (r *Resolver) List(ctx context.Context, country string, limit int) ([]Place, error) {
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "place: load snapshot")
	}

	country = strings.ToUpper(strings.TrimSpace(country))
	var out []Place
	for _, p := range table.Rows {
		if country != "" && p.Country != country {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
