// Package bitrwlock implements a bitwise reader-writer spinlock: a single
// machine-word atomic integer whose individual bits encode the identities of
// the readers and writer currently holding the lock.
//
// Bit i (for i in [0, ReaderCapacity)) is set iff reader slot i is held. Bit
// ReaderCapacity is set iff the writer holds the lock. Sizing the reader
// capacity to word-width minus one lets a single atomic fetch_or both
// announce a writer's intent and observe every reader in one instruction;
// see arch.go and acquire.go for the detail.
//
// Lock acquisition is a pure spin: there is no blocking primitive underneath
// it, no timeout, and no poisoning on panic. Callers that need to acquire
// several locks together without any observable partial ownership use
// LockMany, which acquires a disjoint set of read- and write-held locks
// all-or-nothing.
//
// The reader-slot picker offered to callers is replaceable: see RandomSlot.
// The CPU-relax hint used between spin attempts is internal. Neither affects
// correctness, only throughput under contention.
package bitrwlock
