package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display fingerprinting deployment information",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	fmt.Println("CRA Transaction Fingerprinting CLI")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  dealer       Split a master secret into per-agent Shamir shares")
	fmt.Println("  agent-serve  Run this node's agent-side cooperate RPC server")
	fmt.Println("  compute      Compute a transaction fingerprint")
	fmt.Println()
	fmt.Println("Poseidon specs in use:")
	fmt.Println("  SPEC     T=2 R=1  r_f=8 r_p=57  (curve-point folding)")
	fmt.Println("  SPEC_BIG T=5 R=4  r_f=8 r_p=57  (transaction buffer)")
	fmt.Println("  SPEC_DC  T=4 R=3  r_f=8 r_p=57  (date-time triple)")
	return nil
}
