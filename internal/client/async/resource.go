// Package async implements the shared loading lifecycle for server-derived
// data. A Resource is always in exactly one of four states (Idle, Loading,
// Ready, Failed) and guarantees that when operations overlap, only the most
// recently initiated one settles the visible state.
package async

import "sync"

// State enumerates the lifecycle states of a Resource.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a Resource at one point in time.
// Value is meaningful only in StateReady, Err only in StateFailed.
type Snapshot[T any] struct {
	State State
	Value T
	Err   error
}

// Resource wraps a value of type T with a loading lifecycle. The zero value
// is not usable; construct with New.
//
// Entering Loading discards the previous value or error immediately, so a
// consumer can never observe a stale Ready while a newer request is in
// flight. Each Run is tagged with a sequence number at initiation; a result
// whose sequence is no longer current is dropped (last writer by initiation
// order wins, regardless of completion order).
type Resource[T any] struct {
	mu       sync.Mutex
	seq      uint64
	snap     Snapshot[T]
	watchers []func(Snapshot[T])
}

func New[T any]() *Resource[T] {
	return &Resource[T]{snap: Snapshot[T]{State: StateIdle}}
}

// Snapshot returns the current state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Watch registers fn to be called after every state transition, including
// the transition into Loading. Watchers must not call back into the Resource.
func (r *Resource[T]) Watch(fn func(Snapshot[T])) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers = append(r.watchers, fn)
}

// Run transitions the resource to Loading, invokes op, and settles to Ready
// or Failed, unless a newer Run has started in the meantime, in which case
// the outcome is discarded and the then-current snapshot is returned.
func (r *Resource[T]) Run(op func() (T, error)) Snapshot[T] {
	token := r.begin()
	value, err := op()
	return r.settle(token, value, err)
}

// Reset returns the resource to Idle, discarding any held value or error.
// A later settle from an operation begun before the Reset is discarded.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	r.seq++
	r.snap = Snapshot[T]{State: StateIdle}
	snap, watchers := r.snap, r.watchers
	r.mu.Unlock()

	notify(watchers, snap)
}

func (r *Resource[T]) begin() uint64 {
	r.mu.Lock()
	r.seq++
	token := r.seq
	r.snap = Snapshot[T]{State: StateLoading}
	snap, watchers := r.snap, r.watchers
	r.mu.Unlock()

	notify(watchers, snap)
	return token
}

func (r *Resource[T]) settle(token uint64, value T, err error) Snapshot[T] {
	r.mu.Lock()
	if token != r.seq {
		// Superseded by a newer Run or a Reset; drop this outcome.
		snap := r.snap
		r.mu.Unlock()
		return snap
	}
	if err != nil {
		r.snap = Snapshot[T]{State: StateFailed, Err: err}
	} else {
		r.snap = Snapshot[T]{State: StateReady, Value: value}
	}
	snap, watchers := r.snap, r.watchers
	r.mu.Unlock()

	notify(watchers, snap)
	return snap
}

func notify[T any](watchers []func(Snapshot[T]), snap Snapshot[T]) {
	for _, fn := range watchers {
		fn(snap)
	}
}
