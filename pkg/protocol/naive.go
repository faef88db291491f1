package protocol

import (
	"context"

	"github.com/luxfi/fingerprint/pkg/bn254"
)

// NaiveProtocol computes H(G^(seed*secret)) directly from a single
// in-process scalar, with no agent cooperation (§4.5).
type NaiveProtocol struct {
	secret bn254.Element
}

// NewNaiveProtocol builds a NaiveProtocol holding secret in memory.
// Production deployments should prefer CollaborativeProtocol, whose
// whole purpose is to avoid any single process holding the master
// scalar; Naive exists for local testing and the reference vectors
// that pin the protocol's arithmetic.
func NewNaiveProtocol(secret bn254.Element) NaiveProtocol {
	return NaiveProtocol{secret: secret}
}

func (p NaiveProtocol) Process(ctx context.Context, seed bn254.Element) (bn254.Element, error) {
	if err := ctx.Err(); err != nil {
		return bn254.Element{}, err
	}
	point, err := bn254.HashToCurve(seed)
	if err != nil {
		return bn254.Element{}, err
	}
	blinded := point.ScalarMul(p.secret)
	return foldPoint(blinded), nil
}

var _ FingerprintProtocol = NaiveProtocol{}
