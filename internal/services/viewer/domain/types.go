// Package domain defines the transport types and port of the viewer service
package domain

import (
	"sarifview/internal/core/discuss"
	"sarifview/internal/core/filter"
	"sarifview/internal/core/runs"
)

// Run is one ranked aggregate as shown in the result list
type Run struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	FilteredCount int    `json:"filteredCount"`
	Total         int    `json:"total"`
}

// View is the ranked result view plus the banner/prompt flags
type View struct {
	Loading         bool         `json:"loading"`
	LegacyOmitted   bool         `json:"legacyOmitted"`
	NoResults       bool         `json:"noResults"`
	Stale           bool         `json:"stale"`
	AppliedRevision uint64       `json:"appliedRevision"`
	Filter          filter.State `json:"filter"`
	Runs            []Run        `json:"runs"`
}

// Thread is a thread summary row
type Thread struct {
	Signature   string              `json:"signature"`
	Status      discuss.Status      `json:"status"`
	Disposition discuss.Disposition `json:"disposition"`
	Comments    int                 `json:"comments"`
}

// ThreadDetail is the selected thread with its disclosed comments
type ThreadDetail struct {
	Thread
	Disclosed  []discuss.Comment `json:"disclosed"`
	Hidden     int               `json:"hidden"`
	ShowingAll bool              `json:"showingAll"`
}

// Discussions is the discussion pane: list view rows or the selected thread
type Discussions struct {
	View      string        `json:"view"` // list | detail
	Threads   []Thread      `json:"threads"`
	CanCreate bool          `json:"canCreate"`
	Selected  *ThreadDetail `json:"selected,omitempty"`
	Draft     string        `json:"draft,omitempty"`
}

// LogsInput replaces the raw log collection
type LogsInput struct {
	Logs []runs.Log `json:"logs" validate:"dive"`
}

// FilterInput sets one filter category
type FilterInput struct {
	Category string   `json:"category" validate:"required,oneof=Keywords Discussion Baseline Suppression Level"`
	Text     string   `json:"text" validate:"max=1024"`
	Set      []string `json:"set" validate:"max=32,dive,max=64"`
}

// SignatureInput names a thread
type SignatureInput struct {
	Signature string `json:"signature" validate:"required,max=256"`
}

// CommentInput posts to the selected thread; blank text is rejected by the store
type CommentInput struct {
	Author string `json:"author" validate:"required,max=128"`
	Text   string `json:"text" validate:"max=10000"`
}

// DraftInput stores the pending comment input
type DraftInput struct {
	Text string `json:"text" validate:"max=10000"`
}

// StatusInput sets a thread status
type StatusInput struct {
	Signature string `json:"signature" validate:"required,max=256"`
	Status    string `json:"status" validate:"required,oneof=Open Closed"`
}

// DispositionInput sets a thread disposition
type DispositionInput struct {
	Signature   string `json:"signature" validate:"required,max=256"`
	Disposition string `json:"disposition" validate:"required,oneof=Untriaged Confirmed FalsePositive WontFix"`
}
