package bn254

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrCompactDecode is returned when a compact string fails to decode
// to the expected fixed-length byte representation.
var ErrCompactDecode = fmt.Errorf("bn254: malformed compact encoding")

// Compact renders a field element as the base58 encoding of its
// canonical 32-byte little-endian representation (§6).
func (e Element) Compact() string {
	b := e.Bytes()
	return base58.Encode(b[:])
}

// CompactUnwrap decodes a compact string back into a field element.
func CompactUnwrap(compacted string) (Element, error) {
	raw, err := base58.Decode(compacted)
	if err != nil {
		return Element{}, fmt.Errorf("%w: %v", ErrCompactDecode, err)
	}
	if len(raw) != 32 {
		return Element{}, fmt.Errorf("%w: expected 32 bytes, got %d", ErrCompactDecode, len(raw))
	}
	var buf [32]byte
	copy(buf[:], raw)
	return FromBytes(buf)
}

// CompactBytes renders an arbitrary byte string as base58, for
// endpoints, agent ids, or other opaque config values (§6).
func CompactBytes(b []byte) string {
	return base58.Encode(b)
}

// CompactBytesUnwrap decodes a base58 string of the expected length.
func CompactBytesUnwrap(compacted string, expectedLen int) ([]byte, error) {
	raw, err := base58.Decode(compacted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompactDecode, err)
	}
	if expectedLen > 0 && len(raw) != expectedLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCompactDecode, expectedLen, len(raw))
	}
	return raw, nil
}
