package service

import (
	"sarifview/internal/core/discuss"
	"sarifview/internal/core/filter"
	"sarifview/internal/core/invalidate"
	"sarifview/internal/core/rank"
	"sarifview/internal/core/runs"
	"sarifview/internal/core/signal"
	"sarifview/internal/platform/logger"

	"github.com/google/uuid"
)

// Session is one viewer: it owns the filter bar, the aggregate cache, the discussion
// store and the invalidation signal
// Every command is a synchronous state transition; a Session is not safe for
// concurrent use (Service serializes access)
type Session struct {
	ID string

	bar   *filter.Bar
	agg   *runs.Aggregator
	store *discuss.Store
	inval *invalidate.Signal

	logs  *runs.Collection
	draft string

	visible signal.Memo[visibleKey, []*discuss.Thread]
	unsub   func()
}

type visibleKey struct {
	store, filter, revision uint64
}

// SessionOption configures a Session
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	storeOpts []discuss.Option
	aggOpts   []runs.Option
}

// WithStoreOptions passes options to the discussion store
func WithStoreOptions(opts ...discuss.Option) SessionOption {
	return func(c *sessionConfig) { c.storeOpts = append(c.storeOpts, opts...) }
}

// WithAggregatorOptions passes options to the run aggregator
func WithAggregatorOptions(opts ...runs.Option) SessionOption {
	return func(c *sessionConfig) { c.aggOpts = append(c.aggOpts, opts...) }
}

// NewSession creates a session; review may be nil (staleness tracking is then inert)
func NewSession(review invalidate.Review, opts ...SessionOption) *Session {
	var cfg sessionConfig
	for _, o := range opts {
		o(&cfg)
	}
	bar := filter.NewBar()
	s := &Session{
		ID:    uuid.NewString(),
		bar:   bar,
		agg:   runs.New(bar, cfg.aggOpts...),
		store: discuss.New(cfg.storeOpts...),
		inval: invalidate.New(review),
	}
	// filter mutations clear staleness before Set returns
	s.unsub = bar.Subscribe(s.inval.FilterChanged)
	return s
}

// Close detaches the session from its filter bar
func (s *Session) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// Inputs

// SetLogs replaces the raw log collection; nil means not loaded yet
func (s *Session) SetLogs(col *runs.Collection) { s.logs = col }

// SetFilter updates one filter category
func (s *Session) SetFilter(cat filter.Category, v filter.Value) { s.bar.Set(cat, v) }

// Filter returns the current filter state
func (s *Session) Filter() filter.State { return s.bar.State() }

// ReviewUpdated forwards an external "results changed" event
func (s *Session) ReviewUpdated() { s.inval.ReviewUpdated() }

// AttachReview swaps the review collaborator
func (s *Session) AttachReview(r invalidate.Review) { s.inval.Attach(r) }

// SetDraft stores the pending comment input
func (s *Session) SetDraft(text string) { s.draft = text }

// Draft returns the pending comment input
func (s *Session) Draft() string { return s.draft }

// Views

// Aggregates returns the memoized aggregate set for the current logs and revision
func (s *Session) Aggregates() runs.Set {
	return s.agg.Aggregates(s.logs, s.inval.AppliedRevision())
}

// Generation reports how many aggregate batches have been built
func (s *Session) Generation() int { return s.agg.Generation() }

// Ranked returns the aggregates ordered by filtered count
func (s *Session) Ranked() []*runs.Aggregate { return rank.Rank(s.Aggregates().Aggregates) }

// Loading reports that no log collection is available yet
func (s *Session) Loading() bool { return s.Aggregates().Loading }

// LegacyOmitted reports that logs with an unsupported schema were dropped
func (s *Session) LegacyOmitted() bool { return s.Aggregates().LegacyOmitted }

// NoResults reports the "no results" placeholder: a keyword query is active and no
// finding in any run passes the filter
func (s *Session) NoResults() bool {
	if s.bar.State().Keywords() == "" {
		return false
	}
	set := s.Aggregates()
	return !set.Loading && set.Sum() == 0
}

// Stale reports that the review process changed since the last reapply
func (s *Session) Stale() bool { return s.inval.Stale() }

// Invalidation returns the invalidation state
func (s *Session) Invalidation() invalidate.State { return s.inval.State() }

// Threads returns the threads visible under the Discussion status set and keyword query
func (s *Session) Threads() []*discuss.Thread {
	key := visibleKey{store: s.store.Version(), filter: s.bar.Version(), revision: s.inval.AppliedRevision()}
	return s.visible.Get(key, func() []*discuss.Thread {
		st := s.bar.State()
		return s.store.Visible(st.Selected(filter.Discussion), st.Keywords())
	})
}

// ThreadCount returns the number of threads regardless of filters
func (s *Session) ThreadCount() int { return len(s.store.Threads()) }

// CanCreateDiscussion reports whether the UI should offer creating a thread for the query
func (s *Session) CanCreateDiscussion() bool {
	st := s.bar.State()
	return !s.store.HasExactMatch(st.Selected(filter.Discussion), st.Keywords())
}

// DiscussionView returns the selection state
func (s *Session) DiscussionView() discuss.View { return s.store.View() }

// Selected returns the selected thread or nil
func (s *Session) Selected() *discuss.Thread { return s.store.Selected() }

// Comments returns the disclosed comments of the selected thread
func (s *Session) Comments() []discuss.Comment { return s.store.Comments() }

// HiddenComments returns how many comments are behind "show all"
func (s *Session) HiddenComments() int { return s.store.HiddenComments() }

// ShowingAll reports whether the selected thread discloses every comment
func (s *Session) ShowingAll() bool { return s.store.ShowingAll() }

// Commands

// SelectDiscussion selects a thread by signature; "" returns to the list
func (s *Session) SelectDiscussion(signature string) error {
	if signature == "" {
		s.store.Back()
		return nil
	}
	return s.store.Select(signature)
}

// CreateDiscussion creates a thread with the default status and selects it
func (s *Session) CreateDiscussion(signature string) (*discuss.Thread, error) {
	return s.store.CreateThread(signature, discuss.Statuses[0])
}

// PostComment appends to the selected thread and clears the draft on success
func (s *Session) PostComment(author, text string) (discuss.Comment, error) {
	th := s.store.Selected()
	if th == nil {
		return discuss.Comment{}, errNoSelection
	}
	c, err := s.store.PostComment(th.Signature(), author, text)
	if err != nil {
		return discuss.Comment{}, err
	}
	s.draft = ""
	return c, nil
}

// ToggleShowAll discloses every comment of the selected thread
func (s *Session) ToggleShowAll() { s.store.ShowAll() }

// SetStatus sets a thread's status
func (s *Session) SetStatus(signature string, st discuss.Status) error {
	return s.store.SetStatus(signature, st)
}

// SetDisposition sets a thread's disposition
func (s *Session) SetDisposition(signature string, d discuss.Disposition) error {
	return s.store.SetDisposition(signature, d)
}

// ReapplyFilter acknowledges the review state and forces dependents to rebuild
func (s *Session) ReapplyFilter() uint64 {
	rev := s.inval.Reapply()
	logger.Named("viewer").Debug().Str("session_id", s.ID).Uint64("revision", rev).Msg("reapply")
	return rev
}
