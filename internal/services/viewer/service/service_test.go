package service

import (
	"context"
	"testing"

	"sarifview/internal/core/invalidate"
	"sarifview/internal/core/runs"
	perr "sarifview/internal/platform/errors"
	"sarifview/internal/services/viewer/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newService(t *testing.T) (*Service, *Metrics) {
	t.Helper()
	m := NewMetrics(prometheus.NewRegistry())
	return New(NewSession(invalidate.NewPipeline()), m), m
}

func TestService_ViewAndRebuildMetrics(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	v, err := svc.View(ctx)
	if err != nil || !v.Loading {
		t.Fatalf("View() = %+v, %v", v, err)
	}

	v, _ = svc.LoadLogs(ctx, domain.LogsInput{Logs: fixture().Logs})
	if v.Loading || !v.LegacyOmitted || len(v.Runs) != 4 {
		t.Fatalf("LoadLogs view = %+v", v)
	}
	if v.Runs[0].Name != "alpha" || v.Runs[0].FilteredCount != 3 || v.Runs[0].Total != 3 {
		t.Fatalf("top run = %+v", v.Runs[0])
	}

	v, _ = svc.SetFilter(ctx, domain.FilterInput{Category: "Keywords", Text: "nothing-here"})
	if !v.NoResults || v.Filter.Keywords() != "nothing-here" {
		t.Fatalf("SetFilter view = %+v", v)
	}
	if got := testutil.ToFloat64(m.Rebuilds); got != 1 {
		t.Fatalf("rebuilds = %v, want 1", got)
	}

	if st, _ := svc.ReviewUpdated(ctx); !st.Dirty {
		t.Fatalf("ReviewUpdated state = %+v", st)
	}
	if got := testutil.ToFloat64(m.Stale); got != 1 {
		t.Fatalf("stale gauge = %v", got)
	}
	v, _ = svc.Reapply(ctx)
	if v.Stale || v.AppliedRevision != 1 {
		t.Fatalf("Reapply view = %+v", v)
	}
	if testutil.ToFloat64(m.Reapplies) != 1 || testutil.ToFloat64(m.Rebuilds) != 2 || testutil.ToFloat64(m.Stale) != 0 {
		t.Fatalf("metrics after reapply: reapplies=%v rebuilds=%v stale=%v",
			testutil.ToFloat64(m.Reapplies), testutil.ToFloat64(m.Rebuilds), testutil.ToFloat64(m.Stale))
	}
}

func TestService_DiscussionCommands(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	d, err := svc.CreateDiscussion(ctx, domain.SignatureInput{Signature: "rule01"})
	if err != nil || d.View != "detail" || d.Selected == nil || d.Selected.Signature != "rule01" {
		t.Fatalf("CreateDiscussion = %+v, %v", d, err)
	}
	if d.Threads != nil {
		t.Fatalf("detail view must not list threads: %+v", d.Threads)
	}
	_, err = svc.CreateDiscussion(ctx, domain.SignatureInput{Signature: "rule01"})
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate err = %v", err)
	}
	if e, _ := perr.As(err); e.Op() != "createDiscussion" {
		t.Fatalf("op = %q", e.Op())
	}
	if testutil.ToFloat64(m.Conflicts) != 1 || testutil.ToFloat64(m.Threads) != 1 {
		t.Fatalf("conflicts=%v threads=%v", testutil.ToFloat64(m.Conflicts), testutil.ToFloat64(m.Threads))
	}

	d, _ = svc.SetDraft(ctx, domain.DraftInput{Text: "wip"})
	if d.Draft != "wip" {
		t.Fatalf("draft = %q", d.Draft)
	}
	for _, txt := range []string{"one", "two", "three", "four"} {
		if d, err = svc.PostComment(ctx, domain.CommentInput{Author: "ana", Text: txt}); err != nil {
			t.Fatalf("PostComment(%q): %v", txt, err)
		}
	}
	if d.Draft != "" || len(d.Selected.Disclosed) != 3 || d.Selected.Hidden != 1 || d.Selected.Comments != 4 {
		t.Fatalf("after posts = %+v", d.Selected)
	}
	if _, err = svc.PostComment(ctx, domain.CommentInput{Author: "ana", Text: " "}); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("blank post err = %v", err)
	}
	if testutil.ToFloat64(m.Comments) != 4 {
		t.Fatalf("comments = %v", testutil.ToFloat64(m.Comments))
	}

	d, _ = svc.ShowAll(ctx)
	if !d.Selected.ShowingAll || len(d.Selected.Disclosed) != 4 {
		t.Fatalf("ShowAll = %+v", d.Selected)
	}

	if d, err = svc.SetStatus(ctx, domain.StatusInput{Signature: "rule01", Status: "Closed"}); err != nil || d.Selected.Status != "Closed" {
		t.Fatalf("SetStatus = %+v, %v", d.Selected, err)
	}
	if d, err = svc.SetDisposition(ctx, domain.DispositionInput{Signature: "rule01", Disposition: "WontFix"}); err != nil || d.Selected.Disposition != "WontFix" {
		t.Fatalf("SetDisposition = %+v, %v", d.Selected, err)
	}
	if _, err = svc.SetStatus(ctx, domain.StatusInput{Signature: "nope", Status: "Open"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("SetStatus(missing) err = %v", err)
	}

	d, _ = svc.Back(ctx)
	if d.View != "list" || d.Selected != nil || len(d.Threads) != 1 {
		t.Fatalf("Back = %+v", d)
	}
	if _, err = svc.SelectDiscussion(ctx, domain.SignatureInput{Signature: "missing"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("select missing err = %v", err)
	}
	d, _ = svc.SelectDiscussion(ctx, domain.SignatureInput{Signature: "rule01"})
	if d.Selected == nil || d.Selected.ShowingAll {
		t.Fatalf("re-select should reset show all: %+v", d.Selected)
	}
	if got, _ := svc.Discussions(ctx); got.View != "detail" {
		t.Fatalf("Discussions view = %q", got.View)
	}
}

func TestService_LoadLogsReplacesIdentity(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)
	logs := []runs.Log{{Version: runs.SupportedVersion, Runs: []runs.Run{{Driver: "x"}}}}

	_, _ = svc.LoadLogs(ctx, domain.LogsInput{Logs: logs})
	_, _ = svc.View(ctx)
	_, _ = svc.LoadLogs(ctx, domain.LogsInput{Logs: logs})
	if got := testutil.ToFloat64(m.Rebuilds); got != 2 {
		t.Fatalf("every load is a new collection, rebuilds = %v", got)
	}
	if svc.Session() == nil {
		t.Fatalf("Session() nil")
	}
}
