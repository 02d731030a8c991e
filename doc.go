// Package strpack implements a compact, immutable, 16-byte string value
// ("German-style string") for high-volume storage and comparison, of
// the kind used inside database engines and columnar formats.
//
// A Str packs a 4-byte length, a 4-byte prefix cache and an 8-byte tail
// into exactly 16 bytes. Payloads of 12 bytes or fewer live entirely
// inside the value and never allocate; longer payloads live in a block
// obtained from the package's own allocator, with the first four bytes
// duplicated in the prefix so comparisons start without an indirection.
//
// Heap-backed values have an explicit lifecycle: Clone produces an
// independent copy, Drop returns the block to the allocator. The
// opt-in shared mode (Share/Release) lets many handles alias one block
// without reference counting; the caller then owns the free-exactly-once
// discipline. See the method docs before using it.
//
// Values are immutable after construction and safe for concurrent
// reads. Nothing in the package writes to a published block.
package strpack
