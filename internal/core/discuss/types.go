package discuss

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a thread
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// Statuses is the ordered status enumeration; the first value is the default
var Statuses = []Status{StatusOpen, StatusClosed}

// Valid reports whether s is a member of Statuses
func (s Status) Valid() bool { return slices.Contains(Statuses, s) }

// Disposition is the triage outcome recorded on a thread
type Disposition string

const (
	DispositionUntriaged     Disposition = "Untriaged"
	DispositionConfirmed     Disposition = "Confirmed"
	DispositionFalsePositive Disposition = "FalsePositive"
	DispositionWontFix       Disposition = "WontFix"
)

// Dispositions is the ordered disposition enumeration; the first value is the default
var Dispositions = []Disposition{
	DispositionUntriaged,
	DispositionConfirmed,
	DispositionFalsePositive,
	DispositionWontFix,
}

// Valid reports whether d is a member of Dispositions
func (d Disposition) Valid() bool { return slices.Contains(Dispositions, d) }

// Comment is immutable once posted
type Comment struct {
	ID     uuid.UUID `json:"id"`
	Author string    `json:"author"`
	At     time.Time `json:"at"`
	Text   string    `json:"text"`
}

// Thread is a keyword-scoped conversation
// Fields are only mutated through Store operations
type Thread struct {
	signature   string
	status      Status
	disposition Disposition
	comments    []Comment
}

// Signature returns the keyword signature the thread is keyed by
func (t *Thread) Signature() string { return t.signature }

// Status returns the thread status
func (t *Thread) Status() Status { return t.status }

// Disposition returns the thread disposition
func (t *Thread) Disposition() Disposition { return t.disposition }

// Comments returns a copy of the comments in post order
func (t *Thread) Comments() []Comment { return slices.Clone(t.comments) }

// Len returns the number of comments
func (t *Thread) Len() int { return len(t.comments) }

// View is the selection state of a Store
type View int

const (
	// ListView shows the filtered thread list; no thread is selected
	ListView View = iota
	// DetailView shows one selected thread
	DetailView
)

func (v View) String() string {
	if v == DetailView {
		return "detail"
	}
	return "list"
}
