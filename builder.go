package strpack

// Builder accumulates text fragments and yields a Str. It follows the
// same promotion rule as construction: while the running total stays
// within MaxInlineBytes the fragments land in a fixed array, and the
// first fragment that pushes the total past 12 bytes copies what was
// written so far into a grown byte buffer, where all further fragments
// append.
//
// The zero value is ready to use. Fragments may split multi-byte UTF-8
// sequences across calls; validation happens once, in Build.
type Builder struct {
	buf []byte
	arr [MaxInlineBytes]byte
	n   int // bytes used in arr while buf is nil
}

// WriteString appends s. The error is always nil; the signature
// matches strings.Builder.
func (b *Builder) WriteString(s string) (int, error) {
	if b.buf == nil {
		if b.n+len(s) <= MaxInlineBytes {
			copy(b.arr[b.n:], s)
			b.n += len(s)
			return len(s), nil
		}
		b.promote(len(s))
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Write appends p, implementing io.Writer. The error is always nil.
func (b *Builder) Write(p []byte) (int, error) {
	if b.buf == nil {
		if b.n+len(p) <= MaxInlineBytes {
			copy(b.arr[b.n:], p)
			b.n += len(p)
			return len(p), nil
		}
		b.promote(len(p))
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteByte appends a single byte, implementing io.ByteWriter.
func (b *Builder) WriteByte(c byte) error {
	if b.buf == nil {
		if b.n < MaxInlineBytes {
			b.arr[b.n] = c
			b.n++
			return nil
		}
		b.promote(1)
	}
	b.buf = append(b.buf, c)
	return nil
}

// promote moves the inline bytes into a heap buffer sized for at least
// grow more bytes.
func (b *Builder) promote(grow int) {
	b.buf = make([]byte, 0, max(2*MaxInlineBytes, b.n+grow))
	b.buf = append(b.buf, b.arr[:b.n]...)
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	if b.buf == nil {
		return b.n
	}
	return len(b.buf)
}

// Reset empties the builder, keeping a promoted buffer for reuse.
func (b *Builder) Reset() {
	b.n = 0
	if b.buf != nil {
		b.buf = b.buf[:0]
	}
}

// Build finalizes the accumulated fragments into a Str through the
// ordinary construction path. The builder stays usable and unchanged;
// call Reset to start over.
func (b *Builder) Build() (Str, error) {
	if b.buf == nil {
		return NewFromBytes(b.arr[:b.n])
	}
	return NewFromBytes(b.buf)
}
