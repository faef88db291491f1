package protocol

import (
	"errors"
	"fmt"

	"github.com/luxfi/fingerprint/pkg/party"
)

// ErrQuorumNotMet is returned when the topology holds fewer agents
// than its threshold. Agent reachability is not probed before a round;
// an agent whose RPC fails surfaces as an AgentUnavailableError.
var ErrQuorumNotMet = errors.New("protocol: quorum not met")

// AgentUnavailableError reports that a specific agent's RPC failed or
// timed out during a cooperative round (§7). The protocol does not
// retry or re-select on this error; the caller decides.
type AgentUnavailableError struct {
	ID  party.ID
	Err error
}

func (e *AgentUnavailableError) Error() string {
	return fmt.Sprintf("protocol: agent %q unavailable: %v", e.ID, e.Err)
}

func (e *AgentUnavailableError) Unwrap() error { return e.Err }
