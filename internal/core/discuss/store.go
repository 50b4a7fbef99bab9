// Package discuss holds keyword-scoped discussion threads and the list/detail selection
// state that goes with them
package discuss

import (
	"slices"
	"strings"
	"time"

	"sarifview/internal/core/keyword"
	"sarifview/internal/core/signal"
	perr "sarifview/internal/platform/errors"

	"github.com/google/uuid"
)

// CommentLimit is how many comments a detail view discloses before "show all"
const CommentLimit = 3

// Store owns the thread collection and the selection state machine
// It is not safe for concurrent use
type Store struct {
	threads  map[string]*Thread
	order    []*Thread // creation order
	selected *Thread
	showAll  bool

	sig   signal.Source
	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the comment timestamp source
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDs overrides the comment id source
func WithIDs(fn func() uuid.UUID) Option { return func(s *Store) { s.newID = fn } }

// New creates an empty store in ListView
func New(opts ...Option) *Store {
	s := &Store{
		threads: map[string]*Thread{},
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Version advances on every mutation, selection changes included
func (s *Store) Version() uint64 { return s.sig.Version() }

// Subscribe runs fn after every mutation
func (s *Store) Subscribe(fn func()) (cancel func()) { return s.sig.Subscribe(fn) }

// Threads returns every thread in creation order
func (s *Store) Threads() []*Thread { return slices.Clone(s.order) }

// Get returns the thread for signature, compared case-insensitively
func (s *Store) Get(signature string) (*Thread, bool) {
	t, ok := s.threads[canonical(signature)]
	return t, ok
}

// canonical is the stored form of a signature: signatures are keyword groups, so they
// compare the way keyword queries do
func canonical(signature string) string { return keyword.Lower(signature) }

// View returns the current selection state
func (s *Store) View() View {
	if s.selected != nil {
		return DetailView
	}
	return ListView
}

// Selected returns the selected thread or nil in ListView
func (s *Store) Selected() *Thread { return s.selected }

// Select moves to DetailView of the thread; selecting resets "show all"
func (s *Store) Select(signature string) error {
	t, ok := s.threads[canonical(signature)]
	if !ok {
		return perr.NotFoundf("discussion %q not found", signature)
	}
	s.selected = t
	s.showAll = false
	s.sig.Bump()
	return nil
}

// Back returns to ListView
func (s *Store) Back() {
	if s.selected == nil {
		return
	}
	s.selected = nil
	s.showAll = false
	s.sig.Bump()
}

// Visible returns the threads passing the status set and keyword query, in creation order
// An empty status set allows every status; the query is matched against the signature only
// The result only matters in ListView; callers show the selected thread in DetailView
func (s *Store) Visible(statuses []string, query string) []*Thread {
	toks := keyword.Tokens(query)
	out := make([]*Thread, 0, len(s.order))
	for _, t := range s.order {
		if len(statuses) > 0 && !slices.Contains(statuses, string(t.status)) {
			continue
		}
		if !keyword.MatchesTokens(t.signature, toks) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// HasExactMatch reports whether creating a thread for query would be redundant: the query
// is blank, or a visible thread's signature equals the lower-cased query
func (s *Store) HasExactMatch(statuses []string, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	want := keyword.Lower(query)
	for _, t := range s.Visible(statuses, query) {
		if t.signature == want {
			return true
		}
	}
	return false
}

// CreateThread adds a thread for the lower-cased signature and selects it
// The store is unchanged when the signature already exists in any casing
func (s *Store) CreateThread(signature string, status Status) (*Thread, error) {
	if strings.TrimSpace(signature) == "" {
		return nil, perr.WithField(perr.Validationf("discussion signature is required"), "signature")
	}
	if !status.Valid() {
		return nil, perr.WithField(perr.InvalidArgf("unknown status %q", status), "status")
	}
	signature = canonical(signature)
	if _, ok := s.threads[signature]; ok {
		return nil, perr.DuplicateKeyf("discussion %q already exists", signature)
	}
	t := &Thread{
		signature:   signature,
		status:      status,
		disposition: Dispositions[0],
	}
	s.threads[signature] = t
	s.order = append(s.order, t)
	s.selected = t
	s.showAll = false
	s.sig.Bump()
	return t, nil
}

// PostComment appends a comment to the tail of the thread
func (s *Store) PostComment(signature, author, text string) (Comment, error) {
	t, ok := s.threads[canonical(signature)]
	if !ok {
		return Comment{}, perr.NotFoundf("discussion %q not found", signature)
	}
	if strings.TrimSpace(text) == "" {
		return Comment{}, perr.WithField(perr.Validationf("comment text is required"), "text")
	}
	c := Comment{ID: s.newID(), Author: author, At: s.now(), Text: text}
	t.comments = append(t.comments, c)
	s.sig.Bump()
	return c, nil
}

// ShowAll discloses every comment of the selected thread until the next selection
// It is a no-op in ListView or when already showing all
func (s *Store) ShowAll() {
	if s.selected == nil || s.showAll {
		return
	}
	s.showAll = true
	s.sig.Bump()
}

// ShowingAll reports whether the detail view discloses every comment
func (s *Store) ShowingAll() bool { return s.showAll }

// Comments returns the disclosed comments of the selected thread (nil in ListView)
func (s *Store) Comments() []Comment {
	if s.selected == nil {
		return nil
	}
	cs := s.selected.comments
	if !s.showAll && len(cs) > CommentLimit {
		cs = cs[:CommentLimit]
	}
	return slices.Clone(cs)
}

// HiddenComments returns how many comments of the selected thread are held back
func (s *Store) HiddenComments() int {
	if s.selected == nil || s.showAll {
		return 0
	}
	return max(0, len(s.selected.comments)-CommentLimit)
}

// SetStatus changes the status of a thread
func (s *Store) SetStatus(signature string, st Status) error {
	t, ok := s.threads[canonical(signature)]
	if !ok {
		return perr.NotFoundf("discussion %q not found", signature)
	}
	if !st.Valid() {
		return perr.WithField(perr.InvalidArgf("unknown status %q", st), "status")
	}
	t.status = st
	s.sig.Bump()
	return nil
}

// SetDisposition changes the disposition of a thread
func (s *Store) SetDisposition(signature string, d Disposition) error {
	t, ok := s.threads[canonical(signature)]
	if !ok {
		return perr.NotFoundf("discussion %q not found", signature)
	}
	if !d.Valid() {
		return perr.WithField(perr.InvalidArgf("unknown disposition %q", d), "disposition")
	}
	t.disposition = d
	s.sig.Bump()
	return nil
}
