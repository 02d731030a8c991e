package strpack

import "errors"

var (
	// ErrTooLong indicates an input longer than MaxLen bytes.
	ErrTooLong = errors.New("strpack: string exceeds maximum representable length")
	// ErrInvalidUTF8 indicates an input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("strpack: payload is not valid UTF-8")
)
