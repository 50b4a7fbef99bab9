// Package filter defines the filter state contract the viewer core reads and an
// in-memory filter bar that owns it
package filter

import (
	"slices"
	"strings"

	"sarifview/internal/core/signal"
)

// Category names a filter bar category
type Category string

const (
	// Keywords is the free-text search box
	Keywords Category = "Keywords"
	// Discussion holds the selected discussion thread statuses
	Discussion Category = "Discussion"
	// Baseline holds the selected finding baseline states (new, unchanged, updated, absent)
	Baseline Category = "Baseline"
	// Suppression holds the selected finding suppression states (unsuppressed, suppressed)
	Suppression Category = "Suppression"
	// Level holds the selected finding levels (error, warning, note, none)
	Level Category = "Level"
)

// Categories lists every category the filter bar knows
var Categories = []Category{Keywords, Discussion, Baseline, Suppression, Level}

// Valid reports whether c is a member of Categories
func (c Category) Valid() bool { return slices.Contains(Categories, c) }

// Value is the current value of one category, either text or a set of strings
type Value struct {
	Text string   `json:"text,omitempty" yaml:"text,omitempty"`
	Set  []string `json:"set,omitempty" yaml:"set,omitempty"`
}

// State is a snapshot of every category that has a value
type State map[Category]Value

// Keywords returns the keyword query or ""
func (s State) Keywords() string { return s[Keywords].Text }

// Selected returns the selected set for cat; nil means the category does not constrain
func (s State) Selected(cat Category) []string { return s[cat].Set }

// Allows reports whether v passes the set filter for cat (an empty set allows everything)
func (s State) Allows(cat Category, v string) bool {
	set := s[cat].Set
	return len(set) == 0 || slices.Contains(set, v)
}

// Source is the read-only view the core consumes
type Source interface {
	State() State
	Version() uint64
}

// Bar is the in-memory filter bar; every Set bumps its version and notifies subscribers
// synchronously before returning
type Bar struct {
	state State
	sig   signal.Source
}

// NewBar creates an empty filter bar
func NewBar() *Bar { return &Bar{state: State{}} }

// State returns a copy of the current state
func (b *Bar) State() State {
	out := make(State, len(b.state))
	for k, v := range b.state {
		out[k] = Value{Text: v.Text, Set: slices.Clone(v.Set)}
	}
	return out
}

// Version returns the state version
func (b *Bar) Version() uint64 { return b.sig.Version() }

// Set replaces the value of cat; an empty value removes the category
func (b *Bar) Set(cat Category, v Value) {
	if strings.TrimSpace(v.Text) == "" && len(v.Set) == 0 {
		delete(b.state, cat)
	} else {
		b.state[cat] = Value{Text: v.Text, Set: slices.Clone(v.Set)}
	}
	b.sig.Bump()
}

// SetKeywords is Set(Keywords, Value{Text: q})
func (b *Bar) SetKeywords(q string) { b.Set(Keywords, Value{Text: q}) }

// Subscribe runs fn after every mutation
func (b *Bar) Subscribe(fn func()) (cancel func()) { return b.sig.Subscribe(fn) }
