package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/solwatch/internal/tracker"

	"github.com/urfave/cli/v3"
)

// startCommand runs the supervisor until SIGINT, SIGTERM or ctx ends.
//
//	solwatch start
func startCommand(sup tracker.Supervisor) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts watching every active address until interrupted. Addresses tracked or untracked from another process are picked up on the next resync (SOLWATCH_POLL_RESYNC_INTERVAL).",
		Usage:       "Runs the address watchers. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := sup.Start(ctx); err != nil {
				return err
			}

			logger.Info(ctx, "solwatch started", "addresses", len(sup.Watched()))

			chflow.Receive(ctx, quit)

			logger.Info(ctx, "solwatch stopping")
			return sup.Stop()
		},
	}
}
