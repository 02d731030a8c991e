package strpack

import (
	"bytes"
	"cmp"
	"unsafe"
)

// Compare orders a against b byte-wise, returning -1, 0 or +1. It
// agrees exactly with bytes.Compare over the two payloads.
//
// The cached prefixes are compared first; when they differ no other
// byte is touched. Equal prefixes with both lengths <= 4 need only a
// length tie-break: the prefix already covers both payloads entirely,
// and zero padding makes "a" and "a\x00" prefix-identical, so the
// shorter sorts first. Two inline values compare their tails directly
// instead of going through the heap-path slicing.
func (a *Str) Compare(b *Str) int {
	if c := bytes.Compare(a.prefix[:], b.prefix[:]); c != 0 {
		return c
	}
	an, bn := int(a.size), int(b.size)
	if an <= prefixSize && bn <= prefixSize {
		return cmp.Compare(an, bn)
	}
	var c int
	if an <= MaxInlineBytes && bn <= MaxInlineBytes {
		c = bytes.Compare(a.tail[:suffixLen(an)], b.tail[:suffixLen(bn)])
	} else {
		c = bytes.Compare(a.Suffix(), b.Suffix())
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(an, bn)
}

// Less reports whether a orders before b.
func (a *Str) Less(b *Str) bool {
	return a.Compare(b) < 0
}

// Equal reports whether a and b hold the same payload, regardless of
// storage variant. Equal(b) is equivalent to Compare(b) == 0 but
// short-circuits on the length first.
func (a *Str) Equal(b *Str) bool {
	if a.size != b.size || a.prefix != b.prefix {
		return false
	}
	if a.size <= prefixSize {
		return true
	}
	if a.isInline() {
		// Padding bytes are zero on both sides, so whole-array
		// equality is exact.
		return a.tail == b.tail
	}
	return bytes.Equal(a.Suffix(), b.Suffix())
}

// CompareString orders a against a plain string, computing the same
// prefix/suffix split on s so the result is identical to comparing two
// Str values.
func (a *Str) CompareString(s string) int {
	var p [prefixSize]byte
	copy(p[:], s)
	if c := bytes.Compare(a.prefix[:], p[:]); c != 0 {
		return c
	}
	an, bn := int(a.size), len(s)
	if an <= prefixSize && bn <= prefixSize {
		return cmp.Compare(an, bn)
	}
	if c := bytes.Compare(a.Suffix(), stringSuffix(s)); c != 0 {
		return c
	}
	return cmp.Compare(an, bn)
}

// EqualString reports whether a holds exactly s.
func (a *Str) EqualString(s string) bool {
	if int(a.size) != len(s) {
		return false
	}
	var p [prefixSize]byte
	copy(p[:], s)
	if a.prefix != p {
		return false
	}
	if a.size <= prefixSize {
		return true
	}
	return bytes.Equal(a.Suffix(), stringSuffix(s))
}

func suffixLen(n int) int {
	return max(n-prefixSize, 0)
}

// stringSuffix returns bytes 4..len of s without copying. Read-only.
func stringSuffix(s string) []byte {
	if len(s) <= prefixSize {
		return nil
	}
	t := s[prefixSize:]
	return unsafe.Slice(unsafe.StringData(t), len(t))
}
