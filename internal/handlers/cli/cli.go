// Package cli is the operator command surface of solwatch.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/solwatch/internal/addressbook"
	"github.com/gabapcia/solwatch/internal/tracker"

	"github.com/urfave/cli/v3"
)

// newApp returns the root command with every subcommand registered.
func newApp(sup tracker.Supervisor, book addressbook.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solwatch",
		Description:           "Watches Solana addresses and notifies about their new transactions.",
		Usage:                 "solwatch [command] [flags]",
		Commands: []*cli.Command{
			startCommand(sup),
			trackCommand(book),
			untrackCommand(book),
			listCommand(book),
			activityCommand(book),
			notifySettingsCommand(book),
			showSettingsCommand(book),
		},
	}
}

// Run parses os.Args and executes the matching command.
func Run(ctx context.Context, sup tracker.Supervisor, book addressbook.Service) error {
	return newApp(sup, book).Run(ctx, os.Args)
}
