//go:build !bitrwlock_debug

package bitrwlock

// debugMode mirrors debug_on.go's constant when built without the
// bitrwlock_debug tag: no per-call disjointness check, matching spec.md §7's
// default of treating overlapping LockMany input as undefined behavior
// rather than a checked error.
const debugMode = false

func assertDisjoint[T any](reads, writes []*Lock[T]) {}
