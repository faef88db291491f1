package agentrpc

import "github.com/luxfi/fingerprint/pkg/bn254"

// ShareCooperator is the straightforward Cooperator implementation:
// compute point^(coefficient * share) for a single fixed share held
// in memory by this agent process.
type ShareCooperator struct {
	Share bn254.Element
}

func (c ShareCooperator) Cooperate(point bn254.Point, coefficient bn254.Element) (bn254.Point, error) {
	return point.ScalarMul(coefficient.Mul(c.Share)), nil
}
