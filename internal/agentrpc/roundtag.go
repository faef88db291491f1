package agentrpc

import (
	"github.com/zeebo/blake3"
)

// roundTagContext domain-separates the correlation tag from any other
// use of blake3.DeriveKey elsewhere in a deployment, the same way the
// threshold signing protocols key-separate their own nonce derivations
// by context string.
const roundTagContext = "github.com/luxfi/fingerprint agentrpc 2025-01-01T00:00+00:00 round tag"

// deriveRoundTag computes a short, deterministic correlation tag for a
// single cooperate call from its point and coefficient, so an agent's
// logs can be grep'd across a cooperative round without the
// coordinator needing to mint and thread a separate request id.
func deriveRoundTag(point, coefficient [32]byte) [16]byte {
	keyMaterial := make([]byte, 0, 64)
	keyMaterial = append(keyMaterial, point[:]...)
	keyMaterial = append(keyMaterial, coefficient[:]...)

	out := make([]byte, 16)
	blake3.DeriveKey(roundTagContext, keyMaterial, out)

	var tag [16]byte
	copy(tag[:], out)
	return tag
}
