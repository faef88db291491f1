// Package secretsharing implements Shamir secret sharing over the
// BN254 scalar field, the substrate the cooperative fingerprinting
// protocol builds its t-of-n agent topology on (§4.6).
package secretsharing

import (
	"io"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/party"
)

// Polynomial is a degree t-1 polynomial over Fr, stored low-degree
// coefficient first; Coefficients[0] is always the shared secret.
type Polynomial struct {
	Coefficients []bn254.Element
}

// Split samples a fresh random degree-(threshold-1) polynomial with
// secret as its constant term and evaluates it at every id in ids,
// returning one share per id. threshold must be at least 1 and at
// most len(ids); Split does not itself enforce the caller's overall
// n/t invariants, which belong to the topology that calls it.
func Split(rnd io.Reader, secret bn254.Element, ids party.IDSlice, threshold int) (map[party.ID]bn254.Element, error) {
	poly := Polynomial{Coefficients: make([]bn254.Element, threshold)}
	poly.Coefficients[0] = secret
	for i := 1; i < threshold; i++ {
		coef, err := bn254.Random(rnd)
		if err != nil {
			return nil, err
		}
		poly.Coefficients[i] = coef
	}

	shares := make(map[party.ID]bn254.Element, len(ids))
	for _, id := range ids {
		x := bn254.NewFromUint64(uint64(ids.ScalarOf(id)))
		shares[id] = poly.evaluate(x)
	}
	return shares, nil
}

// evaluate computes the polynomial's value at x via Horner's method.
func (p Polynomial) evaluate(x bn254.Element) bn254.Element {
	acc := bn254.Zero()
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.Coefficients[i])
	}
	return acc
}

// Lagrange returns, for every id in quorum, the Lagrange coefficient
// that evaluates the unique degree-(len(quorum)-1) polynomial through
// the quorum's shares at x=0 — i.e. the weight each agent's
// partial result must be scaled by so that summing them reconstructs
// the shared secret (or, in the collaborative protocol, the secret's
// image under scalar multiplication, since scalar multiplication is
// linear in the exponent).
//
// Evaluation points come from topology, the full set of ids Split was
// originally called with, not from quorum itself: an id's x-coordinate
// is a fixed property of its place in the topology, so any t-subset
// must use the same points Split evaluated the polynomial at. Deriving
// the x-coordinate from quorum's own rank would shift it for every
// quorum that isn't a prefix of topology, and the Lagrange weights
// would reconstruct the wrong polynomial.
func Lagrange(topology party.IDSlice, quorum party.IDSlice) map[party.ID]bn254.Element {
	coefs := make(map[party.ID]bn254.Element, len(quorum))
	for _, i := range quorum {
		xi := bn254.NewFromUint64(uint64(topology.ScalarOf(i)))
		num := bn254.One()
		den := bn254.One()
		for _, j := range quorum {
			if i == j {
				continue
			}
			xj := bn254.NewFromUint64(uint64(topology.ScalarOf(j)))
			num = num.Mul(xj)
			den = den.Mul(xj.Sub(xi))
		}
		coefs[i] = num.Mul(den.Inverse())
	}
	return coefs
}

// Reconstruct recovers the secret at x=0 from a quorum of shares by
// summing each share scaled by its Lagrange coefficient. Only the
// tests call it; the cooperative protocol itself never reconstructs
// the secret in the clear, only the exponentiated curve point (§4.5).
//
// topology must be the same id set Split was called with, so the
// x-coordinates Lagrange derives match the ones each share was
// actually evaluated at.
func Reconstruct(shares map[party.ID]bn254.Element, topology party.IDSlice, quorum party.IDSlice) bn254.Element {
	coefs := Lagrange(topology, quorum)
	acc := bn254.Zero()
	for _, id := range quorum {
		acc = acc.Add(shares[id].Mul(coefs[id]))
	}
	return acc
}
