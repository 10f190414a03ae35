package basket

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

// Threshold is the generic resolver's acceptance threshold for basket
// resolution. Baskets carry no boosts (§4.5).
const Threshold = 90

const defaultTopK = 10

// Match pairs a candidate Basket with its fuzzy score.
type Match struct {
	Basket Basket
	Score  int
}

// Resolver resolves basket references against a process-resident
// snapshot.
type Resolver struct {
	store *snapshot.Store[Basket]
}

// NewResolver constructs a Resolver over the given snapshot store.
func NewResolver(store *snapshot.Store[Basket]) *Resolver {
	return &Resolver{store: store}
}

// Identifier runs the three-step blocking+scoring procedure: exact
// basket_id (high confidence, short-circuits), name prefix, then fuzzy
// scoring over the remaining pool. A query like "4e pgm" resolves via
// alias match even when word order differs from the canonical name.
func (r *Resolver) Identifier(ctx context.Context, query string) (Basket, bool, error) {
	var zero Basket
	if resolver.IsBlank(query) {
		return zero, false, nil
	}

	table, err := r.store.Get(ctx)
	if err != nil {
		return zero, false, eris.Wrap(err, "basket: load snapshot")
	}

	queryNorm := normalize.MatchNormalize(normalize.DomainBasket, query)
	idQuery := strings.ToUpper(strings.TrimSpace(query))

	chain := blocking.NewChain(
		blocking.ExactNormalized("basket-id", func(b Basket) string { return b.BasketID }, idQuery, true),
		blocking.Prefix("name-prefix", func(b Basket) string { return b.NameNorm }, Basket.AliasNames, queryNorm),
	)
	blocked := chain.Run(table.Rows)

	scorer := func(b Basket) int { return fuzzy.Score(queryNorm, b) }
	result, ok := resolver.Resolve(blocked.Pool, blocked.Exact, scorer, nil, Threshold)
	if !ok {
		return zero, false, nil
	}
	return result.Row, true, nil
}

// Match scores the full pool and returns the top-k (basket, score) pairs
// without applying the acceptance threshold.
func (r *Resolver) Match(ctx context.Context, query string, k int) ([]Match, error) {
	if k <= 0 {
		k = defaultTopK
	}
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "basket: load snapshot")
	}

	queryNorm := normalize.MatchNormalize(normalize.DomainBasket, query)
	scorer := func(b Basket) int { return fuzzy.Score(queryNorm, b) }
	ranked := resolver.TopK(table.Rows, scorer, nil, k)

	out := make([]Match, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, Match{Basket: m.Row, Score: m.Score})
	}
	return out, nil
}

// List is a straight row filter on the snapshot: no scoring.
func (r *Resolver) List(ctx context.Context, search string, limit int) ([]Basket, error) {
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "basket: load snapshot")
	}

	searchLower := strings.ToLower(strings.TrimSpace(search))
	var out []Basket
	for _, b := range table.Rows {
		if searchLower != "" &&
			!strings.Contains(strings.ToLower(b.Name), searchLower) &&
			!strings.Contains(b.NameNorm, searchLower) {
			continue
		}
		out = append(out, b)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
