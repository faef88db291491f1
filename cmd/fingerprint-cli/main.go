// Command fingerprint-cli operates a CRA transaction-fingerprinting
// deployment: splitting a master secret into agent shares, serving the
// agent-side cooperate RPC, and computing fingerprints against either
// a Naive or Cooperative protocol configuration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	environment string

	rootCmd = &cobra.Command{
		Use:   "fingerprint-cli",
		Short: "Operate a CRA transaction-fingerprinting deployment",
		Long: `fingerprint-cli drives the transaction fingerprinting core: splitting
a master secret across a threshold agent topology, serving the
agent-side cooperate RPC, and computing fingerprints for transactions
against either a Naive or Cooperative protocol.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the deployment YAML config")
	rootCmd.PersistentFlags().StringVarP(&environment, "env", "e", "development", "Logging environment: production or development")

	rootCmd.AddCommand(dealerCmd, agentServeCmd, computeCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
