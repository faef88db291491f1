package protocol

import (
	"context"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/party"
)

// AgentClient is the coordinator-side capability for reaching a single
// remote agent's cooperate RPC (§6, "AgentService::cooperate"). The
// transport (gRPC, HTTP, or an in-process stub for tests) implements
// this interface; the protocol layer never depends on a concrete
// transport.
type AgentClient interface {
	Cooperate(ctx context.Context, id party.ID, point bn254.Point, coefficient bn254.Element) (bn254.Point, error)
}
