package strpack

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/strpack/strpack/internal/alloc"
)

const (
	// MaxInlineBytes is the longest payload a Str holds without a heap
	// block.
	MaxInlineBytes = 12

	// MaxLen is the longest payload a Str can represent. The length
	// field is 32 bits wide; the bound is its largest representable
	// value, not the full 2^32 address space.
	MaxLen = 1<<32 - 1

	prefixSize = 4
)

// Str is a 16-byte immutable string value.
//
// Layout:
//
//	Offset  Size  Description
//	0x00    4     Payload byte length. Doubles as the variant
//	              discriminant: <= 12 means inline, > 12 means heap.
//	0x04    4     First up to 4 payload bytes, zero-padded. Raw bytes,
//	              never an integer, so ordering is endianness-free.
//	0x08    8     Inline: payload bytes 4..len, zero-padded.
//	              Heap: native-endian block address; bit 0 is the
//	              ownership tag (0 = owned, 1 = shared).
//
// The zero value is the empty string. Str is deliberately not
// comparable with ==: two heap values with equal content hold different
// block addresses, so == over the packed form would lie. Use Equal.
type Str struct {
	_ [0]chan int // make the type incomparable

	size   uint32
	prefix [prefixSize]byte
	tail   [8]byte
}

// sharedBit is the ownership tag stolen from the block address. Blocks
// are at least 16-byte aligned, so the low bit is otherwise always 0.
const sharedBit uintptr = 1

// New constructs a Str by copying s. Payloads of 12 bytes or fewer are
// stored inline without allocating. Fails with ErrTooLong past MaxLen
// and ErrInvalidUTF8 for byte sequences that are not UTF-8; Go strings
// carry no encoding guarantee, so the check cannot be skipped here.
func New(s string) (Str, error) {
	if uint64(len(s)) > MaxLen {
		return Str{}, ErrTooLong
	}
	if !utf8.ValidString(s) {
		return Str{}, ErrInvalidUTF8
	}
	if len(s) <= MaxInlineBytes {
		return newInline(s), nil
	}
	return newHeap(s), nil
}

// NewFromBytes constructs a Str by copying b, validating it as UTF-8.
func NewFromBytes(b []byte) (Str, error) {
	if uint64(len(b)) > MaxLen {
		return Str{}, ErrTooLong
	}
	if !utf8.Valid(b) {
		return Str{}, ErrInvalidUTF8
	}
	s := unsafe.String(unsafe.SliceData(b), len(b)) // copied below, never retained
	if len(b) <= MaxInlineBytes {
		return newInline(s), nil
	}
	return newHeap(s), nil
}

// MustNew is New for inputs known to be valid; it panics on error.
func MustNew(s string) Str {
	v, err := New(s)
	if err != nil {
		panic(err)
	}
	return v
}

// NewInline constructs a Str on the inline path only. The caller
// guarantees len(s) <= MaxInlineBytes and valid UTF-8; NewInline panics
// on either violation rather than corrupt the value.
func NewInline(s string) Str {
	if len(s) > MaxInlineBytes {
		panic("strpack: NewInline called with payload longer than 12 bytes")
	}
	if !utf8.ValidString(s) {
		panic("strpack: NewInline called with invalid UTF-8")
	}
	return newInline(s)
}

func newInline(s string) Str {
	var v Str
	v.size = uint32(len(s))
	copy(v.prefix[:], s)
	if len(s) > prefixSize {
		copy(v.tail[:], s[prefixSize:])
	}
	return v
}

func newHeap(s string) Str {
	p := alloc.Alloc(len(s))
	copy(alloc.Bytes(p, len(s)), s)
	var v Str
	v.size = uint32(len(s))
	// The first 4 bytes exist in the block too; the duplicate spends 4
	// bytes to keep the comparison fast path free of an indirection.
	copy(v.prefix[:], s[:prefixSize])
	v.setAddr(p)
	return v
}

func (s *Str) isInline() bool {
	return s.size <= MaxInlineBytes
}

// addr returns the heap block address with the ownership tag cleared.
// Only meaningful on heap values.
func (s *Str) addr() uintptr {
	return *(*uintptr)(unsafe.Pointer(&s.tail)) &^ sharedBit
}

func (s *Str) setAddr(p uintptr) {
	*(*uintptr)(unsafe.Pointer(&s.tail)) = p
}

func (s *Str) isShared() bool {
	return *(*uintptr)(unsafe.Pointer(&s.tail))&sharedBit != 0
}

func (s *Str) setShared() {
	*(*uintptr)(unsafe.Pointer(&s.tail)) |= sharedBit
}

func (s *Str) setOwned() {
	*(*uintptr)(unsafe.Pointer(&s.tail)) &^= sharedBit
}

// View returns the payload as a borrowed string. The view aliases the
// value's storage: for heap values it is valid only until Drop or
// Release frees the block. It never allocates.
func (s *Str) View() string {
	if s.size == 0 {
		return ""
	}
	if s.isInline() {
		// prefix and tail are contiguous, 12 bytes from &prefix[0].
		return unsafe.String((*byte)(unsafe.Pointer(&s.prefix[0])), int(s.size))
	}
	return unsafe.String((*byte)(unsafe.Pointer(s.addr())), int(s.size))
}

// String returns an owned copy of the payload. It satisfies
// fmt.Stringer on the value type, so formatting never exposes the
// packed layout.
func (s Str) String() string {
	return strings.Clone(s.View())
}

// Bytes returns the payload as a borrowed byte slice, with the same
// lifetime rules as View. Callers must not write through it.
func (s *Str) Bytes() []byte {
	if s.size == 0 {
		return nil
	}
	if s.isInline() {
		return unsafe.Slice((*byte)(unsafe.Pointer(&s.prefix[0])), int(s.size))
	}
	return alloc.Bytes(s.addr(), int(s.size))
}

// Len returns the payload length in bytes.
func (s *Str) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the payload is empty.
func (s *Str) IsEmpty() bool {
	return s.size == 0
}

// IsHeapAllocated reports whether the payload lives in a heap block.
func (s *Str) IsHeapAllocated() bool {
	return s.size > MaxInlineBytes
}

// Prefix returns the first min(len, 4) payload bytes, the raw split the
// comparator uses. Borrowed from the value.
func (s *Str) Prefix() []byte {
	return s.prefix[:min(int(s.size), prefixSize)]
}

// Suffix returns payload bytes 4..len, the part the prefix does not
// cover. Borrowed from the value; empty for payloads of 4 bytes or
// fewer.
func (s *Str) Suffix() []byte {
	n := int(s.size) - prefixSize
	if n <= 0 {
		return nil
	}
	if s.isInline() {
		return s.tail[:n]
	}
	return alloc.Bytes(s.addr()+prefixSize, n)
}
