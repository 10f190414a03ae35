package metal

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

// Threshold is the generic resolver's acceptance threshold for metal
// resolution. Metals carry no boosts (§4.5).
const Threshold = 90

const defaultTopK = 10

// Match pairs a candidate Metal with its fuzzy score.
type Match struct {
	Metal Metal
	Score int
}

// Resolver resolves metal name/symbol references against a
// process-resident snapshot.
type Resolver struct {
	store *snapshot.Store[Metal]
}

// NewResolver constructs a Resolver over the given snapshot store.
func NewResolver(store *snapshot.Store[Metal]) *Resolver {
	return &Resolver{store: store}
}

// Identifier runs the blocking+scoring procedure for a single query.
// query may carry a colon-qualified form hint ("tungsten:ammonium
// paratungstate"); the part after the colon becomes an additional
// "contains" blocker on name_norm, per §4.6 step 2. clusterHint, if
// non-empty, narrows the pool to one supply-chain cluster.
func (r *Resolver) Identifier(ctx context.Context, query, clusterHint string) (Metal, bool, error) {
	var zero Metal
	if resolver.IsBlank(query) {
		return zero, false, nil
	}

	table, err := r.store.Get(ctx)
	if err != nil {
		return zero, false, eris.Wrap(err, "metal: load snapshot")
	}

	left, formHint := resolver.ParseColonHint(query)
	queryNorm := normalize.MatchNormalize(normalize.DomainMetal, left)
	formHintNorm := normalize.MatchNormalize(normalize.DomainMetal, formHint)
	symbolQuery := strings.ToLower(strings.TrimSpace(left))

	chain := blocking.NewChain(
		blocking.ExactNormalized("symbol", func(m Metal) string { return strings.ToLower(m.Symbol) }, symbolQuery, true),
		blocking.Equality("cluster", func(m Metal) string { return m.ClusterID }, clusterHint, clusterHint != ""),
		blocking.Prefix("name-prefix", func(m Metal) string { return m.NameNorm }, Metal.AliasNames, queryNorm),
		blocking.Contains("form-hint", func(m Metal) string { return m.NameNorm }, formHintNorm),
	)
	blocked := chain.Run(table.Rows)

	scorer := func(m Metal) int { return fuzzy.Score(queryNorm, m) }
	result, ok := resolver.Resolve(blocked.Pool, blocked.Exact, scorer, nil, Threshold)
	if !ok {
		return zero, false, nil
	}
	return result.Row, true, nil
}

// Match scores the full (optionally cluster-filtered) pool and returns the
// top-k (metal, score) pairs without applying the acceptance threshold.
func (r *Resolver) Match(ctx context.Context, query, clusterHint string, k int) ([]Match, error) {
	if k <= 0 {
		k = defaultTopK
	}
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "metal: load snapshot")
	}

	left, _ := resolver.ParseColonHint(query)
	queryNorm := normalize.MatchNormalize(normalize.DomainMetal, left)

	chain := blocking.NewChain(
		blocking.Equality("cluster", func(m Metal) string { return m.ClusterID }, clusterHint, clusterHint != ""),
	)
	blocked := chain.Run(table.Rows)

	scorer := func(m Metal) int { return fuzzy.Score(queryNorm, m) }
	ranked := resolver.TopK(blocked.Pool, scorer, nil, k)

	out := make([]Match, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, Match{Metal: m.Row, Score: m.Score})
	}
	return out, nil
}

// List is a straight row filter on the snapshot: no scoring.
func (r *Resolver) List(ctx context.Context, categoryBucket, clusterID string, limit int) ([]Metal, error) {
	table, err := r.store.Get(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "metal: load snapshot")
	}

	var out []Metal
	for _, m := range table.Rows {
		if categoryBucket != "" && string(m.CategoryBucket) != categoryBucket {
			continue
		}
		if clusterID != "" && m.ClusterID != clusterID {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
