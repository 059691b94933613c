package bitrwlock

import "sync/atomic"

// acquireReader spins until reader slot preferredSlot (or a substitute slot
// chosen on collision, see below) is held, returning the slot it actually
// acquired.
//
// Open question (spec.md §9): on a same-slot collision, this implementation
// re-picks a different random slot and retries rather than waiting for the
// same slot to free up — the spec states either is a correct choice, and
// this one avoids a reader sitting behind a possibly slow-moving peer when
// ReaderCapacity-1 other slots may be free. See DESIGN.md.
func acquireReader(w *atomic.Uint64, preferredSlot uint) uint {
	slot := preferredSlot % ReaderCapacity
	for {
		prev := setReader(w, slot)

		ownSlotWasFree := prev&(1<<slot) == 0
		writerAbsent := prev&writerBitMask == 0

		if ownSlotWasFree && writerAbsent {
			return slot
		}

		if !writerAbsent {
			// Announced into a writer-reserved word. Bit slot is ours to
			// clear only if our own OR just set it; if a writer's spurious
			// mark (or another reader) already held it, clearing it would
			// release a bit this call never acquired (DESIGN.md).
			if ownSlotWasFree {
				clearReader(w, slot)
			}
			for loadWord(w)&writerBitMask != 0 {
				relax()
			}
			continue
		}

		// Another reader already holds this slot; it is not ours to
		// release. Try a fresh slot instead of waiting for this one.
		relax()
		slot = randomSlot()
	}
}

// acquireWriter spins until the writer bit is held exclusively with no
// readers present. The reader bits this call spuriously set (via
// setWriterAndBlockReaders's unconditional OR of readersMask) are cleared as
// soon as the writer bit is won, so while the writer holds the lock the word
// is exactly writerBitMask; new readers are kept out by the writer bit
// alone. The returned mask of reader bits left for releaseWriter to clear is
// therefore always zero.
func acquireWriter(w *atomic.Uint64) (spuriousMask uint64) {
	for {
		prev := setWriterAndBlockReaders(w)
		spurious := (^prev) & readersMask

		if prev&writerBitMask != 0 {
			// Another writer already held bit R; our OR was a no-op there,
			// but we must undo every reader bit we just lit up before
			// retrying.
			clearBits(w, spurious)
			for loadWord(w)&writerBitMask != 0 {
				relax()
			}
			continue
		}

		// We now hold the writer bit, which alone turns new readers away,
		// so undo every reader bit our OR lit up. If real readers were
		// present, wait for exactly those to leave; writer preference
		// keeps bit R held the whole time, blocking new readers without
		// giving up ground to them.
		clearBits(w, spurious)
		held := prev & readersMask
		for held != 0 && loadWord(w)&held != 0 {
			relax()
		}

		return 0
	}
}

// releaseWriter undoes a successful writer acquisition: the writer bit and
// any reader bits named in spuriousMask are cleared together.
func releaseWriter(w *atomic.Uint64, spuriousMask uint64) {
	clearBits(w, writerBitMask|spuriousMask)
}
