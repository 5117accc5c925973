// SPDX-FileCopyrightText: Copyright 2025 jikime
// SPDX-License-Identifier: Apache-2.0

// Package app provides the command-line interface for inspecting the
// jikime-mem vector store.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jikime/jmem/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "jmem",
	Short: "Inspect the jikime-mem vector store",
	Long: `jmem is a read-only diagnostic tool for the jikime-mem vector store.

It inspects the persistent conversation memory under ~/.jikime-mem/vector-db
without ever modifying it.

Commands:
  status              Show all collections and document counts
  list [n]            List n sample documents (default 10)
  search "query" [n]  Semantic search for similar documents (default 10)
  types               Show document type and session statistics`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize()
	},
	DisableAutoGenTag: true,
}

// NewRootCmd creates a new root command for jmem.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(newVersionCmd())

	// Silence printing the usage on error
	rootCmd.SilenceUsage = true

	return rootCmd
}
