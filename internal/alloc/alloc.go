// Package alloc is a size-class block allocator for string payloads.
//
// Blocks live outside the Go heap on unix (anonymous private mappings);
// on other platforms they are carved from pinned Go-heap slabs. Either
// way a block's address stays valid until Free, and never moves, so it
// can be stored in non-pointer fields without the garbage collector
// reclaiming it underneath the holder.
//
// Freeing a block twice, or using it after Free, is undefined behavior:
// the freelist is intrusive and the allocator does not defend against
// caller mistakes.
package alloc

import (
	"math/bits"
	"sync"
	"sync/atomic"
	"unsafe"
)

const (
	// MinAlign is the minimum alignment of every block. The low bit of
	// a block address is always zero, so callers may use it as a tag.
	MinAlign = 16

	minClassBits = 4  // smallest class: 16 bytes
	maxClassBits = 12 // largest class: 4096 bytes
	numClasses   = maxClassBits - minClassBits + 1

	maxBlock = 1 << maxClassBits

	// slabSize is the unit the allocator reserves from the platform and
	// carves into class-sized blocks. Slabs are never returned.
	slabSize = 64 << 10
)

// classList is a freelist of blocks of a single size class. Free blocks
// link through their first word.
type classList struct {
	mu   sync.Mutex
	head uintptr
}

var (
	classes [numClasses]classList

	allocs atomic.Int64
	frees  atomic.Int64
)

// classFor maps a payload size to its class index. n must be in
// [1, maxBlock].
func classFor(n int) int {
	c := bits.Len(uint(n - 1))
	if c < minClassBits {
		c = minClassBits
	}
	return c - minClassBits
}

// classSize is the block size of class index c.
func classSize(c int) int {
	return 1 << (c + minClassBits)
}

// Alloc returns the address of a block holding at least n bytes. The
// block is uninitialized. Alloc panics when the platform cannot supply
// memory; running out of address space is not a recoverable condition
// for callers storing 16-byte handles.
func Alloc(n int) uintptr {
	if n <= 0 {
		panic("alloc: non-positive size")
	}
	allocs.Add(1)
	if n > maxBlock {
		return reserve(n)
	}
	cl := &classes[classFor(n)]
	cl.mu.Lock()
	if cl.head == 0 {
		cl.grow(classSize(classFor(n)))
	}
	p := cl.head
	cl.head = *(*uintptr)(unsafe.Pointer(p))
	cl.mu.Unlock()
	return p
}

// Free returns the block at p to the allocator. n must be the exact
// size passed to the Alloc call that produced p; the size class is
// derived from it, and a mismatch corrupts the freelists.
func Free(p uintptr, n int) {
	if p == 0 || n <= 0 {
		panic("alloc: free of invalid block")
	}
	frees.Add(1)
	if n > maxBlock {
		release(p, n)
		return
	}
	cl := &classes[classFor(n)]
	cl.mu.Lock()
	*(*uintptr)(unsafe.Pointer(p)) = cl.head
	cl.head = p
	cl.mu.Unlock()
}

// grow carves a fresh slab into blocks of size and threads them onto
// the freelist. Caller holds cl.mu.
func (cl *classList) grow(size int) {
	slab := reserve(slabSize)
	for off := 0; off+size <= slabSize; off += size {
		p := slab + uintptr(off)
		*(*uintptr)(unsafe.Pointer(p)) = cl.head
		cl.head = p
	}
}

// Bytes returns a view of the n payload bytes of the block at p. The
// view is valid until the block is freed.
func Bytes(p uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// Live reports the number of blocks currently allocated. Intended for
// tests asserting that lifecycles balance.
func Live() int64 {
	return allocs.Load() - frees.Load()
}
