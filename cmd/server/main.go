// Package main is the entry point for the encounter budget server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-budget/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "encounter-budget",
	Short: "D&D encounter XP budget server",
	Long: `Encounter budget computes party XP budgets, totals monster XP and packs monsters
into a chart that shows where the low, moderate and high budgets fall.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
