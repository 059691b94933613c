package bitrwlock

// MultiGuard is the result of LockMany: parallel guard sequences for the
// locks acquired as reader and as writer, coupled to a single lifetime.
type MultiGuard[T any] struct {
	Read  []*ReadGuard[T]
	Write []*WriteGuard[T]
}

// Release releases every guard MultiGuard holds, writers first. Order does
// not affect correctness (each guard only ever touches its own lock's
// word), but releasing writers first matches the intuition that exclusive
// access should be given up before shared access on the same call.
func (m *MultiGuard[T]) Release() {
	for _, g := range m.Write {
		g.Release()
	}
	for _, g := range m.Read {
		g.Release()
	}
}

// LockMany acquires every lock in reads as reader slot, and every lock in
// writes as writer, atomically: either the caller ends up holding all of
// them simultaneously, or none. reads and writes must be disjoint — no Lock
// may appear in both, or twice within either — which is only checked when
// built with -tags bitrwlock_debug (spec.md §7).
//
// The algorithm is single-phase and non-reserving (spec.md §4.6): on any
// conflict it unwinds everything acquired so far in this attempt and
// restarts from the top, rather than holding a partial set while waiting.
// This is what makes LockMany deadlock-free against other LockMany callers
// acquiring overlapping sets — no caller ever blocks while holding anything,
// so there is no cycle to form. It is still only obstruction-free, not
// wait-free: callers whose sets overlap heavily should use distinct reader
// slots or pre-sort their locks to break symmetry (spec.md §4.6, §5).
func LockMany[T any](slot uint, reads []*Lock[T], writes []*Lock[T]) *MultiGuard[T] {
	assertDisjoint(reads, writes)
	slot = slot % ReaderCapacity

restart:
	for {
		acquiredReads := make([]*ReadGuard[T], 0, len(reads))
		acquiredWrites := make([]*WriteGuard[T], 0, len(writes))

		for _, r := range reads {
			prev := setReader(&r.word, slot)
			ownSlotWasFree := prev&(1<<slot) == 0
			writerAbsent := prev&writerBitMask == 0

			if ownSlotWasFree && writerAbsent {
				acquiredReads = append(acquiredReads, &ReadGuard[T]{word: &r.word, value: &r.value, slot: slot})
				continue
			}

			// We only introduced a bit that wasn't there if it was free
			// before our OR; a bit already held by another reader must be
			// left alone.
			if ownSlotWasFree {
				clearReader(&r.word, slot)
			}
			unwindMulti(acquiredReads, acquiredWrites)
			relax()
			continue restart
		}

		for _, w := range writes {
			prev := setWriterAndBlockReaders(&w.word)
			spurious := (^prev) & readersMask
			gotWriterBit := prev&writerBitMask == 0
			noReadersPresent := prev&readersMask == 0

			if gotWriterBit && noReadersPresent {
				// As in acquireWriter, the writer bit alone keeps readers
				// out; drop the reader bits our OR lit up right away.
				clearBits(&w.word, spurious)
				acquiredWrites = append(acquiredWrites, &WriteGuard[T]{word: &w.word, value: &w.value})
				continue
			}

			// LockMany never waits out a conflict; back this lock fully
			// out. If we won the writer bit but readers were present, we
			// must release that bit too, not just the spurious reader
			// bits, since we are not keeping it.
			toClear := spurious
			if gotWriterBit {
				toClear |= writerBitMask
			}
			clearBits(&w.word, toClear)
			unwindMulti(acquiredReads, acquiredWrites)
			relax()
			continue restart
		}

		return &MultiGuard[T]{Read: acquiredReads, Write: acquiredWrites}
	}
}

// unwindMulti releases a partially-acquired attempt's guards directly
// (bypassing ReadGuard/WriteGuard.Release's double-release panic, since
// these guards were never handed to a caller).
func unwindMulti[T any](reads []*ReadGuard[T], writes []*WriteGuard[T]) {
	for _, g := range reads {
		clearReader(g.word, g.slot)
	}
	for _, g := range writes {
		releaseWriter(g.word, g.spurious)
	}
}
