// Package agentrpc implements the transport for AgentService::cooperate
// (§6): an HTTP server each agent runs, and an HTTP client the
// coordinator uses to reach its peers. The wire envelopes are
// CBOR-encoded; the protocol layer (pkg/protocol) depends only on the
// AgentClient interface, never on this package directly.
package agentrpc

// CooperateRequest is the wire form of a cooperate call: a compressed
// BN254 G1 point and the Lagrange coefficient the requester computed
// for the receiving agent (§6 on-wire encodings).
type CooperateRequest struct {
	Point       [32]byte `cbor:"point"`
	Coefficient [32]byte `cbor:"coefficient"`
	// RoundTag correlates this request with the coordinator's round in
	// agent-side logs; it is derived from Point and Coefficient, not
	// independently chosen, so the agent can recompute and verify it.
	RoundTag [16]byte `cbor:"round_tag"`
}

// CooperateResponse carries the agent's partial result, point raised
// to coefficient*share.
type CooperateResponse struct {
	Point [32]byte `cbor:"point"`
}

// ErrorResponse is returned with a non-2xx status when an agent cannot
// service a request (e.g. a body or point that fails to decode, or a
// Cooperator error).
type ErrorResponse struct {
	Error string `cbor:"error"`
}
