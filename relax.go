package bitrwlock

import "runtime"

// relax is the CPU-pause hint spec.md §4.7 asks every spin loop to call
// between failed attempts. Go has no portable PAUSE-instruction intrinsic in
// the standard library, so this follows the idiom other spin-based locks in
// the wild fall back to: yield the P to the scheduler instead of busy-spinning
// the core flat out (see other_examples/91637ebc_julienschmidt-spinlock, and
// twmb-dash/block/block.go's identical use of runtime.Gosched between CAS
// retries). It is a hint, not a blocking call: a goroutine can still be
// rescheduled immediately if nothing else is runnable.
func relax() {
	runtime.Gosched()
}
