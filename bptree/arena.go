package bptree

import "errors"

// ErrInvalidChunkSize is returned by newArena when a non-positive chunk
// size is requested.
var ErrInvalidChunkSize = errors.New("bptree: arena chunk size must be positive")

// arena is a bulk Node allocator, grounded on original_source's
// node_pool.hpp: nodes are allocated in fixed-size chunks and are never
// individually freed during a search. Each chunk, once allocated, never
// moves or grows — only the slice of chunks does — so a *Node handed out
// by allocate stays valid for the arena's entire lifetime, satisfying the
// "stable address per chunk" option spec.md's Design Notes §9 calls out.
//
// Because Tree assigns NodeIDs in strict allocation order starting at 0,
// NodeID doubles as a dense index: chunk = id/chunkSize, offset =
// id%chunkSize. This is the "vector indexed by id" alternative spec.md's
// Design Notes §9 also endorses, applied within each chunk instead of one
// single ever-growing slice.
type arena struct {
	chunkSize int
	chunks    [][]Node
	allocated int64
}

// newArena constructs an arena with the given chunk size and one chunk
// already allocated, mirroring node_pool.hpp's constructor behavior.
func newArena(chunkSize int) (*arena, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	a := &arena{chunkSize: chunkSize}
	a.growChunk()

	return a, nil
}

func (a *arena) growChunk() {
	a.chunks = append(a.chunks, make([]Node, a.chunkSize))
}

// allocate returns a pointer to the next free Node slot, growing the
// arena with a new chunk if the current one is exhausted.
func (a *arena) allocate() *Node {
	chunkIdx := int(a.allocated) / a.chunkSize
	offset := int(a.allocated) % a.chunkSize
	if chunkIdx >= len(a.chunks) {
		a.growChunk()
	}
	n := &a.chunks[chunkIdx][offset]
	a.allocated++

	return n
}

// at resolves a dense allocation index (equal to the NodeID it was
// assigned, since Tree allocates ids in strict order starting at 0) to
// its Node pointer, or nil if the index was never allocated.
func (a *arena) at(idx int64) *Node {
	if idx < 0 || idx >= a.allocated {
		return nil
	}
	chunkIdx := int(idx) / a.chunkSize
	offset := int(idx) % a.chunkSize

	return &a.chunks[chunkIdx][offset]
}

// size returns the total number of nodes allocated so far.
func (a *arena) size() int64 { return a.allocated }

// reset releases every chunk and reallocates a single fresh one, the way
// node_pool.hpp's clear() reinitializes the pool for reuse.
func (a *arena) reset() {
	a.chunks = nil
	a.allocated = 0
	a.growChunk()
}
