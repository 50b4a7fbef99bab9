package invalidate

import "testing"

func TestReapplyAfterDirty(t *testing.T) {
	p := NewPipeline()
	s := New(p)

	s.ReviewUpdated()
	if !s.Dirty() || !s.Stale() || !p.ShowUpdated() {
		t.Fatalf("review update should make the signal dirty")
	}
	before := s.AppliedRevision()

	got := s.Reapply()
	if s.Dirty() {
		t.Fatalf("dirty after reapply")
	}
	if got != before+1 || s.AppliedRevision() != before+1 {
		t.Fatalf("applied revision = %d, want %d", s.AppliedRevision(), before+1)
	}
	if p.Revision() != 1 || p.ShowUpdated() {
		t.Fatalf("collaborator not acknowledged: rev=%d show=%v", p.Revision(), p.ShowUpdated())
	}
}

func TestFilterChangeClearsDirtyWithoutRevision(t *testing.T) {
	p := NewPipeline()
	s := New(p)
	s.Reapply()
	s.ReviewUpdated()
	rev := s.AppliedRevision()

	s.FilterChanged()
	if s.Dirty() || p.ShowUpdated() {
		t.Fatalf("filter change should clear dirty")
	}
	if s.AppliedRevision() != rev {
		t.Fatalf("filter change moved the revision: %d -> %d", rev, s.AppliedRevision())
	}
}

func TestCollaboratorFlagDrivesDirty(t *testing.T) {
	p := NewPipeline()
	s := New(p)
	p.SetShowUpdated(true)
	if !s.Dirty() {
		t.Fatalf("collaborator flag should surface as dirty")
	}
	s.FilterChanged()
	if s.Dirty() {
		t.Fatalf("filter change should clear the collaborator flag too")
	}
}

func TestUnavailableCollaboratorIsInert(t *testing.T) {
	s := New(nil)
	s.ReviewUpdated()
	if s.Dirty() {
		t.Fatalf("nil review must never be dirty")
	}
	s.FilterChanged()
	if rev := s.Reapply(); rev != 1 {
		t.Fatalf("reapply without review still advances the revision, got %d", rev)
	}

	p := NewPipeline()
	p.SetLoaded(false)
	s2 := New(p)
	s2.ReviewUpdated()
	if s2.Dirty() || p.ShowUpdated() {
		t.Fatalf("unloaded review must stay inert")
	}
}

func TestAttachNilClearsDirty(t *testing.T) {
	p := NewPipeline()
	s := New(p)
	s.ReviewUpdated()
	s.Attach(nil)
	if s.Dirty() {
		t.Fatalf("detached review must not be dirty")
	}
	s.Attach(p)
	// the collaborator flag is still raised
	if !s.Dirty() {
		t.Fatalf("re-attached review flag should surface")
	}
}

func TestRevisionIsMonotonicAndVersionBumps(t *testing.T) {
	s := New(NewPipeline())
	v0 := s.Version()
	var last uint64
	for i := 0; i < 4; i++ {
		rev := s.Reapply()
		if rev <= last {
			t.Fatalf("revision went from %d to %d", last, rev)
		}
		last = rev
	}
	if s.Version() != v0+4 {
		t.Fatalf("version = %d, want %d", s.Version(), v0+4)
	}
	st := s.State()
	if st.AppliedRevision != 4 || st.Dirty {
		t.Fatalf("State() = %+v", st)
	}
}

func TestPipeline_RevisionNeverDecreases(t *testing.T) {
	p := NewPipeline()
	p.SetRevision(5)
	p.SetRevision(2)
	if p.Revision() != 5 {
		t.Fatalf("Revision() = %d, want 5", p.Revision())
	}
	var nilP *Pipeline
	if nilP.Loaded() {
		t.Fatalf("nil pipeline must not be loaded")
	}
}
