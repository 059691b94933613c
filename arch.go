package bitrwlock

// wordBits is the width, in bits, of the atomic word backing every Lock.
// The package targets the 64-bit layout unconditionally (see SPEC_FULL.md
// §3): sizing ReaderCapacity to wordBits-1 is what lets a single fetch_or
// both announce the writer and observe every reader at once.
const wordBits = 64

// ReaderCapacity is R: the number of distinct reader slots a Lock supports.
// Slot identifiers passed to Lock.Read are reduced modulo this value.
const ReaderCapacity = wordBits - 1

// writerBit is the bit index of the writer-occupancy flag, i.e. R.
const writerBit = ReaderCapacity

// writerBitMask isolates the writer bit within the word.
const writerBitMask uint64 = 1 << writerBit

// readersMask has bits 0..R-1 set and bit R clear.
const readersMask uint64 = writerBitMask - 1
