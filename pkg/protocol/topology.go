package protocol

import (
	"fmt"

	"github.com/luxfi/fingerprint/pkg/party"
)

// AgentTopology is the immutable map of agent_id -> endpoint plus the
// (n, t) reconstruction parameters every agent in a cooperative
// deployment shares (§3, "AgentTopology").
type AgentTopology struct {
	endpoints map[party.ID]string
	ids       party.IDSlice
	threshold int
}

// NewAgentTopology validates and constructs a topology: 1 <= t <= n,
// and every agent id is distinct and non-empty.
func NewAgentTopology(endpoints map[party.ID]string, threshold int) (AgentTopology, error) {
	ids := make([]party.ID, 0, len(endpoints))
	for id := range endpoints {
		ids = append(ids, id)
	}
	sorted := party.NewIDSlice(ids)
	if err := sorted.Validate(); err != nil {
		return AgentTopology{}, fmt.Errorf("protocol: invalid topology: %w", err)
	}
	n := len(sorted)
	if threshold < 1 || threshold > n {
		return AgentTopology{}, fmt.Errorf("protocol: threshold %d must satisfy 1 <= t <= n (n=%d)", threshold, n)
	}

	copied := make(map[party.ID]string, len(endpoints))
	for id, endpoint := range endpoints {
		copied[id] = endpoint
	}
	return AgentTopology{endpoints: copied, ids: sorted, threshold: threshold}, nil
}

// N returns the total number of shares issued.
func (t AgentTopology) N() int { return len(t.ids) }

// Threshold returns the reconstruction threshold.
func (t AgentTopology) Threshold() int { return t.threshold }

// IDs returns every agent id in the topology, sorted.
func (t AgentTopology) IDs() party.IDSlice { return t.ids }

// Endpoint returns the transport endpoint registered for id.
func (t AgentTopology) Endpoint(id party.ID) (string, bool) {
	e, ok := t.endpoints[id]
	return e, ok
}

// Quorum selects the deterministic t-agent quorum for a cooperative
// request: the t smallest ids, with self substituted in if it would
// not otherwise be among them (§4.5 step 2).
func (t AgentTopology) Quorum(self party.ID) party.IDSlice {
	quorum := make(party.IDSlice, 0, t.threshold)
	selfIncluded := false
	for _, id := range t.ids {
		if len(quorum) == t.threshold {
			break
		}
		if id == self {
			selfIncluded = true
		}
		quorum = append(quorum, id)
	}
	if !selfIncluded {
		quorum[len(quorum)-1] = self
	}
	return party.NewIDSlice(quorum)
}
