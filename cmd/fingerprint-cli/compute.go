package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxfi/fingerprint/internal/agentrpc"
	"github.com/luxfi/fingerprint/internal/config"
	"github.com/luxfi/fingerprint/pkg/fingerprint"
	"github.com/luxfi/fingerprint/pkg/protocol"
)

var (
	computeBIC      string
	computeBase     uint64
	computeAtto     uint64
	computeCurrency string
	computeDateTime string
	computeWWD      string
	computeTimeout  time.Duration

	computeCmd = &cobra.Command{
		Use:   "compute",
		Short: "Compute a transaction fingerprint under a deployment config",
		Long: `compute loads a Naive or Cooperative mode config and runs the full
fingerprinting pipeline for a single transaction described on the
command line, printing the resulting field element's compact encoding.`,
		RunE: runCompute,
	}
)

func init() {
	computeCmd.Flags().StringVar(&computeBIC, "bic", "", "8-character bank identifier (required)")
	computeCmd.Flags().Uint64Var(&computeBase, "base", 0, "Amount base units")
	computeCmd.Flags().Uint64Var(&computeAtto, "atto", 0, "Amount atto units")
	computeCmd.Flags().StringVar(&computeCurrency, "currency", "", "ISO-4217 alphabetic currency code (required)")
	computeCmd.Flags().StringVar(&computeDateTime, "date-time", "", "RFC3339 transaction instant (required)")
	computeCmd.Flags().StringVar(&computeWWD, "wwd", "", "RFC3339 world-wide date (required)")
	computeCmd.Flags().DurationVar(&computeTimeout, "agent-timeout", 5*time.Second, "Per-agent RPC timeout in cooperative mode")
	_ = computeCmd.MarkFlagRequired("bic")
	_ = computeCmd.MarkFlagRequired("currency")
	_ = computeCmd.MarkFlagRequired("date-time")
	_ = computeCmd.MarkFlagRequired("wwd")
}

func runCompute(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dateTime, err := time.Parse(time.RFC3339, computeDateTime)
	if err != nil {
		return fmt.Errorf("parsing --date-time: %w", err)
	}
	wwd, err := time.Parse(time.RFC3339, computeWWD)
	if err != nil {
		return fmt.Errorf("parsing --wwd: %w", err)
	}

	tx := fingerprint.RawTransaction{
		BIC:      computeBIC,
		Base:     computeBase,
		Atto:     computeAtto,
		Currency: computeCurrency,
		DateTime: dateTime,
		WWD:      wwd,
	}

	proto, err := buildProtocol(cfg)
	if err != nil {
		return err
	}

	result, err := fingerprint.Compute(context.Background(), tx, proto)
	if err != nil {
		return fmt.Errorf("computing fingerprint: %w", err)
	}
	fmt.Println(result.Compact())
	return nil
}

func buildProtocol(cfg *config.Config) (protocol.FingerprintProtocol, error) {
	if cfg.Naive != nil {
		secret, err := cfg.Naive.DecodeSecret()
		if err != nil {
			return nil, fmt.Errorf("decoding naive secret: %w", err)
		}
		return protocol.NewNaiveProtocol(secret), nil
	}

	coop := cfg.Cooperative
	share, err := coop.DecodeSecretShard()
	if err != nil {
		return nil, fmt.Errorf("decoding secret_shard: %w", err)
	}

	endpoints, threshold := coop.Topology()
	topology, err := protocol.NewAgentTopology(endpoints, threshold)
	if err != nil {
		return nil, err
	}

	client := agentrpc.NewClient(endpoints, computeTimeout)
	return protocol.NewCollaborativeProtocol(coop.AgentID, share, topology, client), nil
}
