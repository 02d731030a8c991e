package strpack

import "github.com/strpack/strpack/internal/alloc"

// Clone returns an independent copy. Inline values are a 16-byte copy;
// heap values get a fresh owned block with the payload copied in, so
// dropping either copy never affects the other.
func (s *Str) Clone() Str {
	if !s.IsHeapAllocated() {
		return *s
	}
	return newHeap(s.View())
}

// Drop ends this handle's lifetime. Owned heap values return their
// block to the allocator; inline and shared values free nothing. The
// handle resets to the empty value, so a second Drop is a no-op — but
// any view or alias taken from a freed block is dangling.
//
// The block is freed under the size derived from the length field, the
// same derivation used at allocation time.
func (s *Str) Drop() {
	if s.IsHeapAllocated() && !s.isShared() {
		alloc.Free(s.addr(), int(s.size))
	}
	*s = Str{}
}

// Share flips this handle to the shared ownership tag and returns a
// second handle aliasing the same block. Afterwards neither handle
// frees the block on Drop; exactly one of the aliases must eventually
// be passed through Release, and callers with many aliases of one
// block must track its identity (for example in a set keyed by the
// block address) to keep the free unique.
//
// On inline values there is nothing to share and Share is an ordinary
// copy.
func (s *Str) Share() Str {
	if !s.IsHeapAllocated() {
		return *s
	}
	s.setShared()
	return *s
}

// Release flips a shared handle back to owned and drops it, freeing
// the block. Precondition, enforced by the caller and not checked
// here: the value is heap-allocated and no other alias ever frees the
// same block. Releasing a block twice is undefined behavior, exactly
// like a double free.
func (s *Str) Release() {
	if s.IsHeapAllocated() {
		s.setOwned()
	}
	s.Drop()
}
