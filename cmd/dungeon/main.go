// Package main provides the dungeon binary: a headless simulator and content
// tooling for the dungeon crawl engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "dungeon",
	Short:        "Dungeon crawl engine tools",
	Long:         `dungeon plays characters through simulated dungeon runs and validates content tables.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file; empty uses defaults and DUNGEON_ env overrides")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(contentCmd)
}
