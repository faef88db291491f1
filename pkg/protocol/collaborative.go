package protocol

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/party"
	"github.com/luxfi/fingerprint/pkg/secretsharing"
)

// CollaborativeProtocol is the t-of-n threshold variant of Naive: the
// coordinator holds only its own share, and asks the rest of the
// selected quorum to contribute a partial exponentiation each over
// an agent RPC (§4.5).
type CollaborativeProtocol struct {
	self      party.ID
	selfShare bn254.Element
	topology  AgentTopology
	client    AgentClient
}

// NewCollaborativeProtocol builds a CollaborativeProtocol for the
// local agent self, holding its own Shamir share selfShare, aware of
// the full topology and able to reach peers through client.
func NewCollaborativeProtocol(self party.ID, selfShare bn254.Element, topology AgentTopology, client AgentClient) CollaborativeProtocol {
	return CollaborativeProtocol{self: self, selfShare: selfShare, topology: topology, client: client}
}

func (p CollaborativeProtocol) Process(ctx context.Context, seed bn254.Element) (bn254.Element, error) {
	if p.topology.N() < p.topology.Threshold() {
		return bn254.Element{}, ErrQuorumNotMet
	}

	point, err := bn254.HashToCurve(seed)
	if err != nil {
		return bn254.Element{}, err
	}

	quorum := p.topology.Quorum(p.self)
	coefficients := secretsharing.Lagrange(p.topology.IDs(), quorum)

	group, gctx := errgroup.WithContext(ctx)
	partials := make([]bn254.Point, len(quorum))
	for i, id := range quorum {
		i, id := i, id
		if id == p.self {
			partials[i] = point.ScalarMul(coefficients[id].Mul(p.selfShare))
			continue
		}
		group.Go(func() error {
			partial, err := p.client.Cooperate(gctx, id, point, coefficients[id])
			if err != nil {
				return &AgentUnavailableError{ID: id, Err: err}
			}
			partials[i] = partial
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return bn254.Element{}, err
	}

	aggregate := bn254.IdentityPoint()
	for _, partial := range partials {
		aggregate = aggregate.Add(partial)
	}
	return foldPoint(aggregate), nil
}

var _ FingerprintProtocol = CollaborativeProtocol{}
