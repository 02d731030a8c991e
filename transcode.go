package strpack

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Legacy-encoding constructors for ingest paths that receive payloads
// in pre-UTF-8 encodings. Both transcode to UTF-8 and then funnel
// through the ordinary construction path.

// utf16ASCIIThreshold is the first code unit value that needs real
// UTF-16 decoding; below it the low byte is the ASCII character.
const utf16ASCIIThreshold = 0x80

// NewFromUTF16LE constructs a Str from a UTF-16LE payload.
func NewFromUTF16LE(data []byte) (Str, error) {
	if len(data) == 0 {
		return Str{}, nil
	}
	if len(data)%2 != 0 {
		return Str{}, fmt.Errorf("strpack: utf-16le payload has odd length %d", len(data))
	}

	// Fast path: all ASCII, every unit is [byte, 0x00].
	allASCII := true
	for i := 0; i < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= utf16ASCIIThreshold {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return New(b.String())
	}

	// Slow path: full decode with surrogate pairing.
	var b strings.Builder
	b.Grow(len(data) / 2)
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8
		if r >= 0xD800 && r <= 0xDBFF && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00))
				i += 2
			}
		}
		b.WriteRune(r)
	}
	return New(b.String())
}

// NewFromWindows1252 constructs a Str from a Windows-1252 (Latin-1
// superset) payload.
func NewFromWindows1252(data []byte) (Str, error) {
	// Fast path: pure ASCII needs no transcoding.
	allASCII := true
	for _, c := range data {
		if c >= utf16ASCIIThreshold {
			allASCII = false
			break
		}
	}
	if allASCII {
		return NewFromBytes(data)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return Str{}, fmt.Errorf("strpack: decode windows-1252: %w", err)
	}
	return NewFromBytes(decoded)
}
