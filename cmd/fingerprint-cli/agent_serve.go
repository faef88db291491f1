package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/luxfi/fingerprint/internal/agentrpc"
	"github.com/luxfi/fingerprint/internal/config"
	"github.com/luxfi/fingerprint/internal/logging"
)

var (
	agentServeAddr string

	agentServeCmd = &cobra.Command{
		Use:   "agent-serve",
		Short: "Run this node's agent-side cooperate RPC server",
		Long: `agent-serve loads a Cooperative-mode config and starts the HTTP
server exposing POST /cooperate, the single RPC the coordinator calls
during a collaborative fingerprinting round.`,
		RunE: runAgentServe,
	}
)

func init() {
	agentServeCmd.Flags().StringVar(&agentServeAddr, "addr", ":8080", "Listen address")
}

func runAgentServe(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Cooperative == nil {
		return fmt.Errorf("agent-serve requires a cooperative mode config")
	}

	logger, err := logging.New(environment)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	share, err := cfg.Cooperative.DecodeSecretShard()
	if err != nil {
		return fmt.Errorf("decoding secret_shard: %w", err)
	}

	server := agentrpc.NewServer(agentrpc.ShareCooperator{Share: share}, logger)
	logger.Sugar().Infof("agent %s listening on %s", cfg.Cooperative.AgentID, agentServeAddr)
	return http.ListenAndServe(agentServeAddr, server)
}
