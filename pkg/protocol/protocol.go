// Package protocol implements the L4 fingerprint protocol: the
// abstract capability that turns a date-time seed into the blinded
// field element folded into the final transaction digest, in either
// its single-secret or threshold-cooperative form (§4.5).
package protocol

import (
	"context"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/poseidon"
)

// FingerprintProtocol is the capability the L3 digest assembly
// depends on: turn a seed into a field element, asynchronously, since
// the collaborative variant suspends at agent RPC boundaries.
type FingerprintProtocol interface {
	Process(ctx context.Context, seed bn254.Element) (bn254.Element, error)
}

// Spec is the width-2, rate-1 Poseidon instance that folds a
// compressed curve point into a single field element (§3, "SPEC").
var Spec = poseidon.NewSpec(2, 1, 8, 57)

// foldPoint folds a curve point's compressed encoding into Spec, the
// H(Q) step shared by both protocol variants (§4.5).
func foldPoint(point bn254.Point) bn254.Element {
	limbs := point.FoldToField()
	state := poseidon.NewState(Spec)
	state.Update(limbs[:])
	return state.Squeeze()
}
