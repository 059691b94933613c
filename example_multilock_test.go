package bitrwlock_test

import (
	"fmt"

	"github.com/noxf/bitrwlock"
)

// ExampleLockMany mirrors original_source/examples/many.rs: six locks, three
// held as reader and two as writer in one atomic acquisition, using an
// explicit reader slot (you may equally call bitrwlock.RandomSlot()).
func ExampleLockMany() {
	const totalLocks = 6
	const readCount = 3
	const writeCount = 2

	locks := make([]*bitrwlock.Lock[int], totalLocks)
	for i := range locks {
		locks[i] = bitrwlock.New(0)
	}

	// A reader slot must be less than bitrwlock.ReaderCapacity; an explicit
	// slot is supplied here instead of bitrwlock.RandomSlot() so the example
	// is deterministic.
	const readerSlot = 0

	reads := locks[:readCount]
	writes := locks[readCount : readCount+writeCount]

	mg := bitrwlock.LockMany(readerSlot, reads, writes)
	for _, g := range mg.Write {
		*g.Value()++
	}
	sum := 0
	for _, g := range mg.Read {
		sum += g.Value()
	}
	newWriteValues := make([]int, len(mg.Write))
	for i, g := range mg.Write {
		newWriteValues[i] = *g.Value()
	}
	mg.Release()

	fmt.Println("reads summed:", sum)
	fmt.Println("writes now:", newWriteValues)

	// Output:
	// reads summed: 0
	// writes now: [1 1]
}
