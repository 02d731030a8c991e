package strpack

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit xxHash of the logical payload. Values with
// equal content hash identically whether they are stored inline or on
// the heap, so the hash is fit for keying dictionaries and hash joins.
// The packed representation is never hashed.
func (s Str) Hash() uint64 {
	return xxhash.Sum64String(s.View())
}
