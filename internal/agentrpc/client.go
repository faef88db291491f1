package agentrpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/party"
)

// Client implements protocol.AgentClient over HTTP/CBOR, dialing each
// peer's endpoint from the deployment's AgentTopology.
type Client struct {
	endpoints map[party.ID]string
	http      *http.Client
}

// NewClient builds a Client for the given agent_id -> endpoint map,
// using timeout as the per-RPC upper bound (§5, "each agent RPC has
// an implementer-chosen upper bound; exceeding it is equivalent to
// AgentUnavailable").
func NewClient(endpoints map[party.ID]string, timeout time.Duration) *Client {
	return &Client{
		endpoints: endpoints,
		http:      &http.Client{Timeout: timeout},
	}
}

// Cooperate implements protocol.AgentClient.
func (c *Client) Cooperate(ctx context.Context, id party.ID, point bn254.Point, coefficient bn254.Element) (bn254.Point, error) {
	endpoint, ok := c.endpoints[id]
	if !ok {
		return bn254.Point{}, fmt.Errorf("agentrpc: no endpoint registered for agent %q", id)
	}

	pointBytes := point.Bytes()
	coefBytes := coefficient.Bytes()
	body, err := cbor.Marshal(CooperateRequest{
		Point:       pointBytes,
		Coefficient: coefBytes,
		RoundTag:    deriveRoundTag(pointBytes, coefBytes),
	})
	if err != nil {
		return bn254.Point{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/cooperate", bytes.NewReader(body))
	if err != nil {
		return bn254.Point{}, err
	}
	req.Header.Set("Content-Type", cborContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return bn254.Point{}, fmt.Errorf("agentrpc: calling agent %q: %w", id, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return bn254.Point{}, err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		_ = cbor.Unmarshal(respBody, &errResp)
		return bn254.Point{}, fmt.Errorf("agentrpc: agent %q returned %d: %s", id, resp.StatusCode, errResp.Error)
	}

	var out CooperateResponse
	if err := cbor.Unmarshal(respBody, &out); err != nil {
		return bn254.Point{}, err
	}
	return bn254.PointFromBytes(out.Point)
}
