package bitrwlock

import "math/rand"

// RandomSlot returns a reader slot in [0, ReaderCapacity) with reasonable
// dispersion. It is the package's default slot picker, used by nothing
// internally — Lock.Read always takes an explicit slot — but offered for
// callers that have no natural thread-affinity to derive a slot from, the
// same role original_source/src/helpers.rs's random_reader_idx plays for the
// reference crate's examples.
//
// It is a package-level variable rather than a fixed function so a caller
// can swap in a different source of small integers (a thread-local counter,
// a different PRNG) without this package needing to know about it; the lock
// semantics never depend on the quality of this choice, only on throughput.
var RandomSlot = randomSlot

func randomSlot() uint {
	return uint(rand.Intn(ReaderCapacity))
}
