// Package commands implements the ariasnap CLI's subcommands using cobra.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with every subcommand registered.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ariasnap",
		Short: "Accessibility-tree snapshot builder and matcher",
		Long: `ariasnap builds an accessibility tree from an HTML fixture and either
renders it to canonical YAML or matches it against a template.

Examples:
  ariasnap snapshot page.html
  ariasnap snapshot page.html --mode regex --for-ai
  ariasnap match page.html template.aria.yaml`,
	}

	rootCmd.AddCommand(
		newSnapshotCmd(),
		newMatchCmd(),
	)

	return rootCmd
}
