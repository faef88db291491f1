// Package components implements the L2 typed serializers for the four
// transaction fields that make up a fingerprint buffer (§4.2): a
// bank identifier, an amount, a currency, and a date-time.
package components

import "io"

// Component is the common contract every transaction-field serializer
// implements: a fixed byte size, and a Serialize that writes exactly
// that many bytes unconditionally — no leading-zero truncation, since
// the fingerprint's collision resistance depends on fixed-width
// canonical encoding.
type Component interface {
	Size() int
	Serialize(w io.Writer) error
}
