// Package commands defines the termsocial command line.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// New returns the root command. Without a subcommand it starts the TUI.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termsocial",
		Short: "A mock social network in your terminal.",
		Long: `termsocial is a terminal social app backed by an in-memory mock.
Sign in with any email and password, publish posts, like them, comment on
them and pull fresh posts from randomly generated authors.

Configuration comes from TERMSOCIAL_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context())
		},
	}
	cmd.SetOut(color.Output)

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand on topLevel.
func AddCommands(topLevel *cobra.Command) {
	addFeed(topLevel)
	addVersion(topLevel)
}
