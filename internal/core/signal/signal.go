// Package signal provides the explicit version model the viewer core uses in place of
// automatic dependency tracking
// A Source is a monotonic version counter with synchronous subscribers; a Memo caches a
// derived value together with the key (input versions) it was computed from
package signal

// Source is a mutable version counter; every Bump notifies subscribers before returning
type Source struct {
	version uint64
	nextID  int
	subs    []subscriber
}

type subscriber struct {
	id int
	fn func()
}

// Version returns the current version
func (s *Source) Version() uint64 { return s.version }

// Bump advances the version and runs every subscriber in registration order
func (s *Source) Bump() uint64 {
	s.version++
	// copy so a subscriber may cancel itself
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn()
	}
	return s.version
}

// Subscribe registers fn to run after every Bump and returns a cancel func
func (s *Source) Subscribe(fn func()) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Memo caches the last value computed for a key
// The zero value is empty and ready to use
type Memo[K comparable, T any] struct {
	key   K
	val   T
	valid bool
	runs  int
}

// Get returns the cached value when key matches the last computation, otherwise it
// runs compute, stores the result under key and returns it
func (m *Memo[K, T]) Get(key K, compute func() T) T {
	if m.valid && m.key == key {
		return m.val
	}
	m.val = compute()
	m.key = key
	m.valid = true
	m.runs++
	return m.val
}

// Reset drops the cached value
func (m *Memo[K, T]) Reset() {
	var zero T
	m.val = zero
	m.valid = false
}

// Runs reports how many times compute has been invoked
func (m *Memo[K, T]) Runs() int { return m.runs }
