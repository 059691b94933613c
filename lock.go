package bitrwlock

import "sync/atomic"

// Lock guards a single value of type T behind the bitwise reader-writer
// spinlock described in SPEC_FULL.md. The zero value is an unlocked Lock
// holding T's zero value; New builds one holding a given value.
//
// A Lock must not be copied after first use — every ReadGuard/WriteGuard it
// vends borrows its atomic word directly.
type Lock[T any] struct {
	word  atomic.Uint64
	value T
}

// New constructs a Lock holding value, with its word in the IDLE state (all
// bits clear).
func New[T any](value T) *Lock[T] {
	return &Lock[T]{value: value}
}

// Read acquires the lock for reading under slot (reduced modulo
// ReaderCapacity), or under a randomly chosen other slot if another reader
// already holds that one, spinning until it succeeds. It never fails.
func (l *Lock[T]) Read(slot uint) *ReadGuard[T] {
	acquired := acquireReader(&l.word, slot)
	return &ReadGuard[T]{word: &l.word, value: &l.value, slot: acquired}
}

// Write acquires the lock for exclusive writing, spinning until it
// succeeds. It never fails.
func (l *Lock[T]) Write() *WriteGuard[T] {
	spurious := acquireWriter(&l.word)
	return &WriteGuard[T]{word: &l.word, value: &l.value, spurious: spurious}
}

// State returns an advisory, instant-in-time snapshot of the lock word. It
// exists for debugging and testing (spec.md §6); callers must not use it to
// make correctness decisions, since it can be stale the instant it is
// returned.
func (l *Lock[T]) State() uint64 {
	return loadWord(&l.word)
}
