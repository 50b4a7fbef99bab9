// Package runs turns a raw log collection plus the live filter state into per-run
// aggregates
// The aggregate batch is built once per (collection identity, applied revision); the
// filtered count of each aggregate is derived on read from the current filter version
package runs

import (
	"strings"

	"sarifview/internal/core/filter"
	"sarifview/internal/core/keyword"
	"sarifview/internal/core/signal"
	"sarifview/internal/platform/logger"
)

// Aggregate is the derived per-run view used for ranking and display
type Aggregate struct {
	Index int    // encounter order across all supported logs
	Name  string // driver name, or "Run N"

	run      *Run
	surfaces []string // lower-cased search surface per finding
	src      filter.Source
	count    signal.Memo[uint64, int]
}

// Run returns the underlying run
func (a *Aggregate) Run() *Run { return a.run }

// Total returns the unfiltered finding count
func (a *Aggregate) Total() int { return len(a.run.Findings) }

// FilteredCount returns the number of findings that pass the current filter state
func (a *Aggregate) FilteredCount() int {
	return a.count.Get(a.src.Version(), func() int {
		return countMatching(a.run.Findings, a.surfaces, a.src.State())
	})
}

// Filtered returns the findings that pass the current filter state, in run order
func (a *Aggregate) Filtered() []Finding {
	st := a.src.State()
	toks := keyword.Tokens(st.Keywords())
	out := make([]Finding, 0, len(a.run.Findings))
	for i, f := range a.run.Findings {
		if passes(f, a.surfaces[i], toks, st) {
			out = append(out, f)
		}
	}
	return out
}

func countMatching(fs []Finding, surfaces []string, st filter.State) int {
	toks := keyword.Tokens(st.Keywords())
	n := 0
	for i, f := range fs {
		if passes(f, surfaces[i], toks, st) {
			n++
		}
	}
	return n
}

func passes(f Finding, surface string, toks []string, st filter.State) bool {
	return keyword.MatchesTokens(surface, toks) &&
		st.Allows(filter.Baseline, f.BaselineState) &&
		st.Allows(filter.Suppression, f.SuppressionOrDefault()) &&
		st.Allows(filter.Level, f.LevelOrDefault())
}

// searchSurface is what keyword queries are matched against for one finding
func searchSurface(driver string, f Finding) string {
	return keyword.Lower(strings.Join([]string{driver, f.RuleID, f.RuleName, f.Message, f.URI}, " "))
}

// Set is the result of one aggregation
type Set struct {
	Aggregates []*Aggregate
	// Loading is true when no collection is available yet; an empty Aggregates slice
	// then means "not loaded" rather than "zero results"
	Loading bool
	// LegacyOmitted is true when at least one log had an unsupported schema version
	LegacyOmitted bool
	Omitted       int
}

// Sum returns the total filtered count across the set
func (s Set) Sum() int {
	n := 0
	for _, a := range s.Aggregates {
		n += a.FilteredCount()
	}
	return n
}

type buildKey struct {
	col      *Collection
	revision uint64
}

// Aggregator builds and memoizes aggregate batches
type Aggregator struct {
	src        filter.Source
	log        *logger.Logger
	memo       signal.Memo[buildKey, Set]
	warnedOnce bool
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithLogger overrides the component logger
func WithLogger(l *logger.Logger) Option {
	return func(a *Aggregator) { a.log = l }
}

// New creates an Aggregator reading filter state from src
func New(src filter.Source, opts ...Option) *Aggregator {
	a := &Aggregator{src: src}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		a.log = logger.Named("runs")
	}
	return a
}

// Aggregates returns the aggregate set for col, rebuilding only when col's identity or
// revision differs from the previous call
func (a *Aggregator) Aggregates(col *Collection, revision uint64) Set {
	if col == nil {
		return Set{Loading: true}
	}
	return a.memo.Get(buildKey{col: col, revision: revision}, func() Set {
		return a.build(col, revision)
	})
}

// Generation reports how many batches have been built
func (a *Aggregator) Generation() int { return a.memo.Runs() }

func (a *Aggregator) build(col *Collection, revision uint64) Set {
	var set Set
	idx := 0
	for li := range col.Logs {
		lg := &col.Logs[li]
		if !lg.Supported() {
			set.LegacyOmitted = true
			set.Omitted++
			continue
		}
		for ri := range lg.Runs {
			r := &lg.Runs[ri]
			surfaces := make([]string, len(r.Findings))
			for fi, f := range r.Findings {
				surfaces[fi] = searchSurface(r.Driver, f)
			}
			set.Aggregates = append(set.Aggregates, &Aggregate{
				Index:    idx,
				Name:     displayName(r, idx),
				run:      r,
				surfaces: surfaces,
				src:      a.src,
			})
			idx++
		}
	}
	if set.LegacyOmitted && !a.warnedOnce {
		a.warnedOnce = true
		a.log.Warn().
			Int("omitted", set.Omitted).
			Str("supported_version", SupportedVersion).
			Msg("legacy logs omitted")
	}
	a.log.Debug().
		Int("runs", len(set.Aggregates)).
		Uint64("revision", revision).
		Msg("aggregates rebuilt")
	return set
}
