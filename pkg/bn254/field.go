// Package bn254 wraps the BN254 scalar field and G1 group for the
// fingerprinting core. All hashing, sponge state, and secret-sharing
// algebra operate on the Element type defined here.
package bn254

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrFieldDecode is returned when a 32-byte value does not represent a
// canonical element of the BN254 scalar field.
var ErrFieldDecode = errors.New("bn254: value is not a canonical field element")

// Element is a residue in the BN254 scalar field Fr (|Fr| ~ 2^254).
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// NewFromUint64 builds an Element from a small non-negative integer.
func NewFromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// Random draws a uniformly random element using a caller-supplied
// cryptographically secure source. io.Reader must behave like
// crypto/rand.Reader; callers never pass math/rand here.
func Random(rnd interface{ Read([]byte) (int, error) }) (Element, error) {
	var e Element
	buf := make([]byte, fr.Bytes)
	if _, err := rnd.Read(buf); err != nil {
		return Element{}, fmt.Errorf("bn254: failed to read randomness: %w", err)
	}
	// Rejection-free: reduce the wide read modulo r via SetBytes, which
	// gnark-crypto implements as a Montgomery-domain reduction.
	e.inner.SetBytes(buf)
	return e, nil
}

// FromBytes decodes the canonical 32-byte little-endian representation
// of a field element. It fails if the bytes encode a value greater
// than or equal to the field modulus.
func FromBytes(b [32]byte) (Element, error) {
	var le [32]byte
	reverse(&le, &b)
	var e Element
	if err := e.inner.SetBytesCanonical(le[:]); err != nil {
		return Element{}, fmt.Errorf("bn254: %w: %v", ErrFieldDecode, err)
	}
	return e, nil
}

// FromRawBytes decodes a 32-byte little-endian buffer via wide
// modular reduction rather than a canonical-range check, matching the
// upstream "from_raw" limb decoding used for values — like a Cantor
// pairing nonce — that routinely exceed the field modulus by
// construction.
func FromRawBytes(b [32]byte) Element {
	var be [32]byte
	reverse(&be, &b)
	var e Element
	e.inner.SetBytes(be[:])
	return e
}

// FromBytesOrZero behaves like FromBytes but substitutes Zero on
// failure, matching §4.4's limb-decoding fallback (a value built from
// only 16 raw bytes can never actually exceed the modulus, but the
// substitution keeps the assembly step infallible as specified).
func FromBytesOrZero(b [32]byte) Element {
	e, err := FromBytes(b)
	if err != nil {
		return Zero()
	}
	return e
}

// Bytes returns the canonical 32-byte little-endian encoding.
func (e Element) Bytes() [32]byte {
	be := e.inner.Bytes()
	var le [32]byte
	reverse(&le, &be)
	return le
}

func reverse(dst, src *[32]byte) {
	for i := 0; i < 32; i++ {
		dst[i] = src[31-i]
	}
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	var r Element
	r.inner.Add(&e.inner, &other.inner)
	return r
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	var r Element
	r.inner.Sub(&e.inner, &other.inner)
	return r
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	var r Element
	r.inner.Mul(&e.inner, &other.inner)
	return r
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.inner.Neg(&e.inner)
	return r
}

// Square returns e^2.
func (e Element) Square() Element {
	var r Element
	r.inner.Square(&e.inner)
	return r
}

// Pow5 returns e^5, the Poseidon S-box.
func (e Element) Pow5() Element {
	sq := e.Square()
	quad := sq.Square()
	return quad.Mul(e)
}

// Inverse returns e^-1. It panics if e is zero; callers must guarantee
// non-zero inputs (Lagrange coefficients rely on distinct non-zero
// evaluation points, enforced by AgentTopology and polynomial share
// indices).
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("bn254: inverse of zero")
	}
	var r Element
	r.inner.Inverse(&e.inner)
	return r
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// Equal reports whether e and other represent the same residue.
func (e Element) Equal(other Element) bool {
	return e.inner.Equal(&other.inner)
}

// String returns a decimal representation, useful for logs and tests.
func (e Element) String() string {
	return e.inner.String()
}
