// Package resolver implements the generic per-domain resolution procedure
// shared by every domain except country and period (which use bespoke
// cascades): normalize, block, score, boost, decide.
package resolver

import (
	"sort"
	"strings"
)

// Scored pairs a candidate row with its final (post-boost, clamped) score.
type Scored[T any] struct {
	Row   T
	Score int
}

// IsBlank reports whether a raw query is empty or whitespace-only, in which
// case every domain resolver returns "no match" without further work.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// ParseColonHint splits a query on its first ':' into a left part (the
// entity name) and a right part (a form hint), per §4.6 step 2. If there is
// no colon, hint is empty and left is the query unchanged.
func ParseColonHint(query string) (left, hint string) {
	idx := strings.IndexByte(query, ':')
	if idx < 0 {
		return query, ""
	}
	return query[:idx], strings.TrimSpace(query[idx+1:])
}

// Score every candidate in pool with scorer, apply boost, clamp to 100, and
// sort descending by score. Stable for equal scores so callers get
// deterministic top-K ordering.
func ScoreAndSort[T any](pool []T, scorer func(T) int, boost func(T, int) int) []Scored[T] {
	out := make([]Scored[T], 0, len(pool))
	for _, row := range pool {
		s := scorer(row)
		if boost != nil {
			s = boost(row, s)
		}
		if s > 100 {
			s = 100
		}
		if s < 0 {
			s = 0
		}
		out = append(out, Scored[T]{Row: row, Score: s})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Resolve implements §4.6's generic per-domain procedure steps 5-8, given a
// pool already produced by the domain's blocker chain (§4.4). exact marks a
// pool that a high-confidence blocker (exact id/symbol) already reduced to
// a single candidate, in which case it is returned without scoring per
// step 6.
func Resolve[T any](pool []T, exact bool, scorer func(T) int, boost func(T, int) int, threshold int) (Scored[T], bool) {
	var zero Scored[T]
	if len(pool) == 0 {
		return zero, false
	}
	if exact && len(pool) == 1 {
		return Scored[T]{Row: pool[0], Score: 100}, true
	}

	ranked := ScoreAndSort(pool, scorer, boost)
	if len(ranked) == 0 || ranked[0].Score < threshold {
		return zero, false
	}
	return ranked[0], true
}

// TopK returns up to k of the highest-scoring candidates, descending.
func TopK[T any](pool []T, scorer func(T) int, boost func(T, int) int, k int) []Scored[T] {
	ranked := ScoreAndSort(pool, scorer, boost)
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
