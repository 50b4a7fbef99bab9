// Package invalidate tracks whether the displayed view is stale relative to an external
// review process, and implements the reapply protocol that acknowledges it
//
//	review update  -> dirty
//	filter change  -> clean, revision unchanged
//	reapply        -> clean, revision+1, dependents rebuild
//
// Without an available review collaborator the signal is inert and never dirty
package invalidate

import (
	"sarifview/internal/core/signal"
	"sarifview/internal/platform/logger"
)

// Review is the read/write contract of the external review collaborator
type Review interface {
	// Loaded reports whether review data is available; unloaded reviews keep the signal inert
	Loaded() bool
	Revision() int
	ShowUpdated() bool
	SetRevision(rev int)
	SetShowUpdated(v bool)
}

// State is a snapshot of the invalidation state
type State struct {
	AppliedRevision uint64 `json:"appliedRevision"`
	Dirty           bool   `json:"dirty"`
}

// Signal owns the invalidation state
type Signal struct {
	review  Review
	applied uint64
	dirty   bool
	sig     signal.Source
	log     *logger.Logger
}

// New creates a Signal over review, which may be nil
func New(review Review) *Signal {
	return &Signal{review: review, log: logger.Named("invalidate")}
}

func (s *Signal) available() bool { return s.review != nil && s.review.Loaded() }

// Attach replaces the review collaborator; a nil review makes the signal inert
func (s *Signal) Attach(review Review) {
	s.review = review
	if !s.available() && s.dirty {
		s.dirty = false
		s.sig.Bump()
	}
}

// Dirty reports whether results may be stale, either because an update was reported
// through ReviewUpdated or because the collaborator raised its own flag
func (s *Signal) Dirty() bool {
	if !s.available() {
		return false
	}
	return s.dirty || s.review.ShowUpdated()
}

// Stale is the prompt state shown to the user; nothing recomputes until Reapply
func (s *Signal) Stale() bool { return s.Dirty() }

// AppliedRevision returns the revision dependents key their caches on
func (s *Signal) AppliedRevision() uint64 { return s.applied }

// State returns a snapshot
func (s *Signal) State() State { return State{AppliedRevision: s.applied, Dirty: s.Dirty()} }

// Version advances whenever the state changes
func (s *Signal) Version() uint64 { return s.sig.Version() }

// Subscribe runs fn after every state change
func (s *Signal) Subscribe(fn func()) (cancel func()) { return s.sig.Subscribe(fn) }

// ReviewUpdated records that background review results changed
func (s *Signal) ReviewUpdated() {
	if !s.available() {
		return
	}
	s.review.SetShowUpdated(true)
	if s.dirty {
		return
	}
	s.dirty = true
	s.log.Debug().Uint64("applied_revision", s.applied).Msg("review updated; results may be stale")
	s.sig.Bump()
}

// FilterChanged clears staleness; a fresh filter already reflects current intent
func (s *Signal) FilterChanged() {
	if !s.available() {
		return
	}
	wasDirty := s.Dirty()
	s.dirty = false
	s.review.SetShowUpdated(false)
	if wasDirty {
		s.sig.Bump()
	}
}

// Reapply clears staleness and advances the applied revision, which forces every
// dependent keyed on it to rebuild; it returns the new revision
func (s *Signal) Reapply() uint64 {
	s.dirty = false
	s.applied++
	if s.available() {
		s.review.SetRevision(s.review.Revision() + 1)
		s.review.SetShowUpdated(false)
	}
	s.log.Info().Uint64("applied_revision", s.applied).Msg("filter reapplied")
	s.sig.Bump()
	return s.applied
}
