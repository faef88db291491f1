package components

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidBytes32 is returned when a Bytes32Component is built from
// a slice that is not exactly 32 bytes long.
var ErrInvalidBytes32 = errors.New("components: value must be exactly 32 bytes")

// Bytes32Component is a generic fixed-width 32-byte passthrough field,
// used by extension transaction schemas that attach opaque
// application data (memos, external references) to a fingerprint
// buffer without the core needing to understand their structure. It
// mirrors the original implementation's generic byte-array and
// address component types, which the distilled specification omits
// but which the wider transaction model still exposes.
type Bytes32Component struct {
	raw [32]byte
}

func NewBytes32Component(raw []byte) (Bytes32Component, error) {
	if len(raw) != 32 {
		return Bytes32Component{}, fmt.Errorf("%w: got %d bytes", ErrInvalidBytes32, len(raw))
	}
	var c Bytes32Component
	copy(c.raw[:], raw)
	return c, nil
}

func (Bytes32Component) Size() int { return 32 }

func (c Bytes32Component) Serialize(w io.Writer) error {
	_, err := w.Write(c.raw[:])
	return err
}

func (c Bytes32Component) Raw() [32]byte { return c.raw }

// AddressComponent is a Bytes32Component specialized for account or
// institution addresses; it carries no additional validation beyond
// the fixed width, matching the original's address wrapper, which
// exists purely to distinguish an address's call sites from an
// arbitrary memo's at the type level.
type AddressComponent struct {
	Bytes32Component
}

func NewAddressComponent(raw []byte) (AddressComponent, error) {
	inner, err := NewBytes32Component(raw)
	if err != nil {
		return AddressComponent{}, err
	}
	return AddressComponent{Bytes32Component: inner}, nil
}
