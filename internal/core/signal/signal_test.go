package signal

import "testing"

func TestSource_BumpNotifiesInOrder(t *testing.T) {
	var s Source
	var got []int
	s.Subscribe(func() { got = append(got, 1) })
	s.Subscribe(func() { got = append(got, 2) })

	if v := s.Bump(); v != 1 {
		t.Fatalf("Bump() = %d, want 1", v)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("subscriber order = %v", got)
	}
	if s.Version() != 1 {
		t.Fatalf("Version() = %d", s.Version())
	}
}

func TestSource_CancelStopsNotifications(t *testing.T) {
	var s Source
	calls := 0
	cancel := s.Subscribe(func() { calls++ })
	s.Bump()
	cancel()
	s.Bump()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	// cancelling twice is harmless
	cancel()
}

func TestSource_SubscriberMayCancelItself(t *testing.T) {
	var s Source
	calls := 0
	var cancel func()
	cancel = s.Subscribe(func() {
		calls++
		cancel()
	})
	s.Bump()
	s.Bump()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestMemo_RecomputesOnlyWhenKeyAdvances(t *testing.T) {
	var m Memo[uint64, string]
	n := 0
	compute := func() string { n++; return "v" }

	m.Get(1, compute)
	m.Get(1, compute)
	if n != 1 || m.Runs() != 1 {
		t.Fatalf("computed %d times, want 1", n)
	}
	m.Get(2, compute)
	if n != 2 {
		t.Fatalf("computed %d times after key change, want 2", n)
	}
	m.Reset()
	m.Get(2, compute)
	if n != 3 {
		t.Fatalf("computed %d times after reset, want 3", n)
	}
}
