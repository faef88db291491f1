package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/party"
	"github.com/luxfi/fingerprint/pkg/secretsharing"
)

var (
	dealerSecret    string
	dealerThreshold int
	dealerAgentIDs  []string

	dealerCmd = &cobra.Command{
		Use:   "dealer",
		Short: "Split a master secret into per-agent Shamir shares",
		Long: `dealer samples (or accepts) a master secret and splits it into one
Shamir share per agent id, printing each share's compact encoding so
it can be copied into that agent's deployment config.`,
		RunE: runDealer,
	}
)

func init() {
	dealerCmd.Flags().StringVar(&dealerSecret, "secret", "", "Compact-encoded master secret (random if omitted)")
	dealerCmd.Flags().IntVarP(&dealerThreshold, "threshold", "t", 0, "Reconstruction threshold (required)")
	dealerCmd.Flags().StringSliceVar(&dealerAgentIDs, "agent", nil, "Agent id to issue a share to (repeatable, required)")
	_ = dealerCmd.MarkFlagRequired("threshold")
	_ = dealerCmd.MarkFlagRequired("agent")
}

func runDealer(cmd *cobra.Command, args []string) error {
	var secret bn254.Element
	if dealerSecret == "" {
		sampled, err := bn254.Random(rand.Reader)
		if err != nil {
			return fmt.Errorf("sampling master secret: %w", err)
		}
		secret = sampled
	} else {
		decoded, err := bn254.CompactUnwrap(dealerSecret)
		if err != nil {
			return fmt.Errorf("decoding --secret: %w", err)
		}
		secret = decoded
	}

	ids := make([]party.ID, len(dealerAgentIDs))
	for i, id := range dealerAgentIDs {
		ids[i] = party.ID(id)
	}
	sorted := party.NewIDSlice(ids)
	if err := sorted.Validate(); err != nil {
		return fmt.Errorf("invalid agent ids: %w", err)
	}
	if dealerThreshold < 1 || dealerThreshold > len(sorted) {
		return fmt.Errorf("threshold %d must satisfy 1 <= t <= %d", dealerThreshold, len(sorted))
	}

	shares, err := secretsharing.Split(rand.Reader, secret, sorted, dealerThreshold)
	if err != nil {
		return fmt.Errorf("splitting secret: %w", err)
	}

	fmt.Printf("master secret (keep this out of production configs): %s\n", secret.Compact())
	for _, id := range sorted {
		fmt.Printf("  %s: %s\n", id, shares[id].Compact())
	}
	return nil
}
