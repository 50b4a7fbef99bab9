package discuss

import (
	"fmt"
	"testing"
	"time"

	perr "sarifview/internal/platform/errors"
	kit "sarifview/internal/platform/testkit"

	"github.com/google/uuid"
)

func fixedStore() *Store {
	return New(
		WithClock(kit.Clock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), time.Minute)),
		WithIDs(uuid.New),
	)
}

func TestCreateThread_AddsAndSelects(t *testing.T) {
	s := fixedStore()
	if s.View() != ListView {
		t.Fatalf("initial view = %v, want list", s.View())
	}

	th, err := s.CreateThread("rule01", Statuses[0])
	if err != nil {
		t.Fatalf("CreateThread: %v", err)
	}
	if len(s.Threads()) != 1 {
		t.Fatalf("threads = %d, want 1", len(s.Threads()))
	}
	if th.Signature() != "rule01" || th.Status() != StatusOpen || th.Len() != 0 {
		t.Fatalf("unexpected thread %+v", th)
	}
	if th.Disposition() != Dispositions[0] {
		t.Fatalf("disposition = %q, want default %q", th.Disposition(), Dispositions[0])
	}
	if s.View() != DetailView || s.Selected() != th {
		t.Fatalf("new thread not selected")
	}
}

func TestCreateThread_DuplicateLeavesStoreUnchanged(t *testing.T) {
	s := fixedStore()
	if _, err := s.CreateThread("rule01", StatusOpen); err != nil {
		t.Fatalf("CreateThread: %v", err)
	}
	s.Back()
	v := s.Version()

	_, err := s.CreateThread("rule01", StatusClosed)
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("err = %v, want duplicate key", err)
	}
	if s.Version() != v || len(s.Threads()) != 1 || s.View() != ListView {
		t.Fatalf("store mutated by failed create")
	}
	if th, _ := s.Get("rule01"); th.Status() != StatusOpen {
		t.Fatalf("existing thread mutated")
	}
}

func TestCreateThread_SignatureIgnoresCase(t *testing.T) {
	s := fixedStore()
	th, err := s.CreateThread("RULE01", StatusOpen)
	if err != nil || th.Signature() != "rule01" {
		t.Fatalf("CreateThread = %v, %v", th, err)
	}
	if _, err := s.CreateThread("Rule01", StatusOpen); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("mixed case duplicate err = %v", err)
	}
	if !s.HasExactMatch(nil, "RULE01") {
		t.Fatalf("upper-case query should match the stored thread")
	}
	if err := s.Select("RULE01"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := s.PostComment("Rule01", "ana", "hi"); err != nil {
		t.Fatalf("PostComment: %v", err)
	}
}

func TestCreateThread_Validation(t *testing.T) {
	s := fixedStore()
	if _, err := s.CreateThread("  ", StatusOpen); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("blank signature err = %v", err)
	}
	if _, err := s.CreateThread("x", Status("Pending")); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad status err = %v", err)
	}
	if len(s.Threads()) != 0 || s.Version() != 0 {
		t.Fatalf("store mutated by invalid create")
	}
}

func TestPostComment_OrderAndTimestamps(t *testing.T) {
	s := fixedStore()
	if _, err := s.CreateThread("rule01", StatusOpen); err != nil {
		t.Fatalf("CreateThread: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := s.PostComment("rule01", "ana", fmt.Sprintf("c%d", i)); err != nil {
			t.Fatalf("PostComment %d: %v", i, err)
		}
	}
	th, _ := s.Get("rule01")
	cs := th.Comments()
	if len(cs) != 5 {
		t.Fatalf("comments = %d, want 5", len(cs))
	}
	for i, c := range cs {
		if c.Text != fmt.Sprintf("c%d", i) || c.Author != "ana" {
			t.Fatalf("comment %d = %+v", i, c)
		}
		if i > 0 && !c.At.After(cs[i-1].At) {
			t.Fatalf("timestamps not increasing at %d", i)
		}
		if c.ID == uuid.Nil {
			t.Fatalf("comment %d has no id", i)
		}
	}
}

func TestPostComment_BlankTextRejected(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("rule01", StatusOpen)
	_, _ = s.PostComment("rule01", "ana", "first")
	v := s.Version()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := s.PostComment("rule01", "ana", text)
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("PostComment(%q) err = %v", text, err)
		}
	}
	th, _ := s.Get("rule01")
	if th.Len() != 1 || s.Version() != v {
		t.Fatalf("thread mutated by blank comment")
	}

	if _, err := s.PostComment("missing", "ana", "hi"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing thread err = %v", err)
	}
}

func TestSelection_StateMachine(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("a", StatusOpen)
	_, _ = s.CreateThread("b", StatusOpen)

	if s.Selected().Signature() != "b" {
		t.Fatalf("last created should be selected")
	}
	s.Back()
	if s.View() != ListView || s.Selected() != nil {
		t.Fatalf("Back() did not return to list")
	}
	v := s.Version()
	s.Back()
	if s.Version() != v {
		t.Fatalf("Back() in list view should be a no-op")
	}
	if err := s.Select("a"); err != nil || s.Selected().Signature() != "a" {
		t.Fatalf("Select(a) = %v", err)
	}
	if err := s.Select("zzz"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Select(missing) err = %v", err)
	}
	if s.Selected().Signature() != "a" {
		t.Fatalf("failed select changed selection")
	}
}

func TestDisclosure_ShowAllIsMonotonicPerSelection(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("rule01", StatusOpen)
	for i := 0; i < 5; i++ {
		_, _ = s.PostComment("rule01", "ana", fmt.Sprintf("c%d", i))
	}

	if got := s.Comments(); len(got) != CommentLimit || got[0].Text != "c0" {
		t.Fatalf("truncated comments = %+v", got)
	}
	if s.HiddenComments() != 2 {
		t.Fatalf("HiddenComments() = %d, want 2", s.HiddenComments())
	}

	s.ShowAll()
	s.ShowAll()
	if len(s.Comments()) != 5 || s.HiddenComments() != 0 || !s.ShowingAll() {
		t.Fatalf("show all did not disclose everything")
	}

	_, _ = s.PostComment("rule01", "bo", "c5")
	if len(s.Comments()) != 6 {
		t.Fatalf("show all must stay on while the thread is selected")
	}

	// re-selecting the thread starts a fresh view session
	_ = s.Select("rule01")
	if s.ShowingAll() || len(s.Comments()) != CommentLimit {
		t.Fatalf("re-selection did not reset show all")
	}

	s.Back()
	s.ShowAll()
	if s.ShowingAll() || s.Comments() != nil || s.HiddenComments() != 0 {
		t.Fatalf("show all in list view must be a no-op")
	}
}

func TestVisible_StatusAndKeyword(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("rule01 null", StatusOpen)
	_, _ = s.CreateThread("rule02", StatusClosed)
	_, _ = s.CreateThread("RULE03 null", StatusOpen)

	sigs := func(ts []*Thread) []string {
		out := make([]string, len(ts))
		for i, t := range ts {
			out[i] = t.Signature()
		}
		return out
	}

	cases := []struct {
		name     string
		statuses []string
		query    string
		want     []string
	}{
		{"all", nil, "", []string{"rule01 null", "rule02", "rule03 null"}},
		{"open only", []string{"Open"}, "", []string{"rule01 null", "rule03 null"}},
		{"closed only", []string{"Closed"}, "", []string{"rule02"}},
		{"keyword", nil, "null", []string{"rule01 null", "rule03 null"}},
		{"keyword case insensitive and unordered", nil, "NULL rule03", []string{"rule03 null"}},
		{"both", []string{"Closed"}, "null", []string{}},
	}
	for _, c := range cases {
		got := sigs(s.Visible(c.statuses, c.query))
		if fmt.Sprint(got) != fmt.Sprint(c.want) {
			t.Fatalf("%s: Visible = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestHasExactMatch(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("rule01", StatusOpen)
	_, _ = s.CreateThread("rule02", StatusClosed)

	cases := []struct {
		statuses []string
		query    string
		want     bool
	}{
		{nil, "", true},
		{nil, "  ", true},
		{nil, "RULE01", true},
		{nil, "rule0", false},
		{[]string{"Open"}, "rule02", false}, // exists but filtered out
		{[]string{"Closed"}, "rule02", true},
	}
	for _, c := range cases {
		if got := s.HasExactMatch(c.statuses, c.query); got != c.want {
			t.Fatalf("HasExactMatch(%v, %q) = %v, want %v", c.statuses, c.query, got, c.want)
		}
	}
}

func TestSetStatusAndDisposition(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("rule01", StatusOpen)

	if err := s.SetStatus("rule01", StatusClosed); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if err := s.SetDisposition("rule01", DispositionWontFix); err != nil {
		t.Fatalf("SetDisposition: %v", err)
	}
	th, _ := s.Get("rule01")
	if th.Status() != StatusClosed || th.Disposition() != DispositionWontFix {
		t.Fatalf("thread = %q/%q", th.Status(), th.Disposition())
	}

	if err := s.SetStatus("rule01", Status("Reopened")); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad status err = %v", err)
	}
	if err := s.SetDisposition("rule01", Disposition("Maybe")); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad disposition err = %v", err)
	}
	if err := s.SetStatus("nope", StatusOpen); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing thread err = %v", err)
	}
	if err := s.SetDisposition("nope", DispositionConfirmed); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing thread err = %v", err)
	}
}

func TestComments_ReturnsCopy(t *testing.T) {
	s := fixedStore()
	_, _ = s.CreateThread("rule01", StatusOpen)
	_, _ = s.PostComment("rule01", "ana", "hello")
	cs := s.Comments()
	cs[0].Text = "tampered"
	th, _ := s.Get("rule01")
	if th.Comments()[0].Text != "hello" {
		t.Fatalf("Comments() leaked internal storage")
	}
}

func TestPostComment_UsesInjectedSeams(t *testing.T) {
	id := uuid.MustParse("6f1c2a4e-0000-4000-8000-000000000001")
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithIDs(kit.Sequence(id)), WithClock(kit.Sequence(at)))
	_, _ = s.CreateThread("rule01", StatusOpen)

	c, err := s.PostComment("rule01", "ana", "hello")
	if err != nil || c.ID != id || !c.At.Equal(at) || c.Author != "ana" {
		t.Fatalf("PostComment = %+v, %v", c, err)
	}
}
