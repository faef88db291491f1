// Package config loads the deployment-level configuration surface
// described in §6: which protocol mode a process runs in, and, for
// the cooperative mode, its agent topology. This package is an
// external collaborator to the core per §1 — the core never parses
// YAML itself, it only consumes the AgentTopology and secrets this
// package produces.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/party"
)

// Member is one entry of a cooperative topology's membership list: an
// agent id paired with its network endpoint.
type Member struct {
	AgentID  party.ID `yaml:"agent_id"`
	Endpoint string   `yaml:"endpoint"`
}

// NaiveMode configures a single-process NaiveProtocol from a compact-
// encoded master secret.
type NaiveMode struct {
	Secret string `yaml:"secret"`
}

// CooperativeMode configures a CollaborativeProtocol node: this
// agent's own id and secret shard, plus the full membership list and
// reconstruction threshold it participates in.
type CooperativeMode struct {
	AgentID     party.ID `yaml:"agent_id"`
	SecretShard string   `yaml:"secret_shard"`
	Threshold   int      `yaml:"threshold"`
	Members     []Member `yaml:"members"`
}

// Config is the top-level deployment configuration: exactly one of
// Naive or Cooperative must be set (§6, "Mode = Naive{...} or
// Cooperative{...}").
type Config struct {
	Naive       *NaiveMode       `yaml:"naive,omitempty"`
	Cooperative *CooperativeMode `yaml:"cooperative,omitempty"`
}

// Load reads and validates a Config from a YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &c, nil
}

// Validate enforces §6's mode and membership invariants: exactly one
// mode is configured; for Cooperative, threshold <= agents, and this
// node's own agent_id appears in members.
func (c *Config) Validate() error {
	if (c.Naive == nil) == (c.Cooperative == nil) {
		return fmt.Errorf("config: exactly one of naive or cooperative must be set")
	}
	if c.Naive != nil {
		if c.Naive.Secret == "" {
			return fmt.Errorf("config: naive mode requires a secret")
		}
		if _, err := bn254.CompactUnwrap(c.Naive.Secret); err != nil {
			return fmt.Errorf("config: naive secret: %w", err)
		}
		return nil
	}

	coop := c.Cooperative
	if coop.AgentID.Empty() {
		return fmt.Errorf("config: cooperative mode requires agent_id")
	}
	if coop.SecretShard == "" {
		return fmt.Errorf("config: cooperative mode requires secret_shard")
	}
	if _, err := bn254.CompactUnwrap(coop.SecretShard); err != nil {
		return fmt.Errorf("config: secret_shard: %w", err)
	}
	if coop.Threshold < 1 || coop.Threshold > len(coop.Members) {
		return fmt.Errorf("config: threshold %d must satisfy 1 <= t <= agents (%d)", coop.Threshold, len(coop.Members))
	}
	selfPresent := false
	for _, m := range coop.Members {
		if m.AgentID == coop.AgentID {
			selfPresent = true
			break
		}
	}
	if !selfPresent {
		return fmt.Errorf("config: this node's agent_id %q does not appear in members", coop.AgentID)
	}
	return nil
}

// DecodeSecret decodes the Naive mode's compact-encoded master secret.
func (m NaiveMode) DecodeSecret() (bn254.Element, error) {
	return bn254.CompactUnwrap(m.Secret)
}

// DecodeSecretShard decodes the Cooperative mode's compact-encoded
// secret shard.
func (m CooperativeMode) DecodeSecretShard() (bn254.Element, error) {
	return bn254.CompactUnwrap(m.SecretShard)
}

// Topology returns the agent_id -> endpoint map and the threshold from
// the configured membership list, the inputs from which the
// protocol-layer AgentTopology is built.
func (m CooperativeMode) Topology() (map[party.ID]string, int) {
	endpoints := make(map[party.ID]string, len(m.Members))
	for _, member := range m.Members {
		endpoints[member.AgentID] = member.Endpoint
	}
	return endpoints, m.Threshold
}
