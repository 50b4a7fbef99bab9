// Package rank orders run aggregates by relevance for display
package rank

import (
	"cmp"
	"slices"

	"sarifview/internal/core/runs"
)

// By returns a copy of items sorted by score descending; equal scores keep input order
func By[T any](items []T, score func(T) int) []T {
	type scored struct {
		item  T
		score int
	}
	tmp := make([]scored, len(items))
	for i, it := range items {
		tmp[i] = scored{item: it, score: score(it)}
	}
	slices.SortStableFunc(tmp, func(a, b scored) int { return cmp.Compare(b.score, a.score) })
	out := make([]T, len(tmp))
	for i := range tmp {
		out[i] = tmp[i].item
	}
	return out
}

// Rank orders aggregates by filtered count, highest first
func Rank(aggs []*runs.Aggregate) []*runs.Aggregate {
	return By(aggs, (*runs.Aggregate).FilteredCount)
}
