package strpack

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Str serializes as a plain text scalar in every format below. The
// packed 16-byte layout is an in-memory optimization and never crosses
// a wire or file boundary. Deserialization funnels through the
// ordinary construction path, so ErrTooLong and ErrInvalidUTF8 surface
// as format errors.

// MarshalText implements encoding.TextMarshaler.
func (s Str) MarshalText() ([]byte, error) {
	return []byte(s.View()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Str) UnmarshalText(text []byte) error {
	v, err := NewFromBytes(text)
	if err != nil {
		return fmt.Errorf("strpack: unmarshal text: %w", err)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler, encoding a JSON string.
func (s Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.View())
}

// UnmarshalJSON implements json.Unmarshaler, accepting a JSON string.
func (s *Str) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("strpack: unmarshal json: %w", err)
	}
	v, err := New(raw)
	if err != nil {
		return fmt.Errorf("strpack: unmarshal json: %w", err)
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding a scalar.
func (s Str) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting a scalar.
func (s *Str) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("strpack: unmarshal yaml: %w", err)
	}
	v, err := New(raw)
	if err != nil {
		return fmt.Errorf("strpack: unmarshal yaml: %w", err)
	}
	*s = v
	return nil
}
