package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/solwatch/internal/addressbook"
	"github.com/gabapcia/solwatch/internal/notify"
	"github.com/gabapcia/solwatch/internal/txclass"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

const (
	defaultActivityLimit = 10
	defaultOrigin        = "cli"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

// listCommand prints the active addresses.
//
//	solwatch list
func listCommand(book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the tracked addresses.",
		Usage:       "Prints every active address with its nickname.",
		Action: func(ctx context.Context, c *cli.Command) error {
			addresses, err := book.List(ctx)
			if err != nil {
				return err
			}

			tw := newTable(c.Root().Writer)
			fmt.Fprintln(tw, "ADDRESS\tNICKNAME\tORIGIN\tSINCE")
			for _, a := range addresses {
				createdAt := a.CreatedAt
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Address, a.Nickname, a.Origin, formatTime(&createdAt))
			}
			return tw.Flush()
		},
	}
}

// activityCommand prints the latest recorded transactions.
//
//	solwatch activity --address 9WzD... --limit 20
func activityCommand(book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "activity",
		Description: "Show the latest recorded transactions, newest first.",
		Usage:       "Prints recorded transactions, optionally for one address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Only show this address",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of transactions (at most 50)",
				Value: defaultActivityLimit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			records, err := book.Activity(ctx, c.String("address"), int(c.Int("limit")))
			if err != nil {
				return err
			}

			tw := newTable(c.Root().Writer)
			fmt.Fprintln(tw, "OBSERVED\tADDRESS\tTYPE\tAMOUNT\tMINT\tSLOT\tSIGNATURE")
			for _, r := range records {
				amount := "-"
				if r.Amount != nil {
					amount = r.Amount.String()
				}
				observedAt := r.ObservedAt
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					formatTime(&observedAt), r.Address, r.Type, amount, r.Mint, r.Slot, r.Signature)
			}
			return tw.Flush()
		},
	}
}

// notifySettingsCommand replaces the notification settings of an address.
//
//	solwatch notify-settings --address 9WzD... --min-amount 100 --types dex_swap,token_transfer
func notifySettingsCommand(book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "notify-settings",
		Description: "Configure which transactions of an address are notified and where.",
		Usage:       "Replaces the notification settings of an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Base58 Solana address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "min-amount",
				Usage: "Suppress transactions without an amount or below this value",
			},
			&cli.StringFlag{
				Name:  "types",
				Usage: "Comma separated types to notify, or 'all'",
				Value: txclass.AllTypesTag,
			},
			&cli.StringFlag{
				Name:  "channel",
				Usage: "Destination handed to the subscribers (a Telegram chat id, for instance)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			settings, err := parseSettings(c.String("min-amount"), c.String("types"), c.String("channel"))
			if err != nil {
				return err
			}

			address := c.String("address")
			if err := book.ConfigureNotifications(ctx, address, settings); err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "notification settings updated for %s\n", address)
			return err
		},
	}
}

func parseSettings(minAmount, types, channel string) (notify.Settings, error) {
	settings := notify.Settings{Channel: channel}

	if minAmount != "" {
		value, err := decimal.NewFromString(minAmount)
		if err != nil {
			return notify.Settings{}, fmt.Errorf("invalid min-amount %q: %w", minAmount, err)
		}
		settings.MinAmount = &value
	}

	parsed, err := txclass.ParseTypes(types)
	if err != nil {
		return notify.Settings{}, err
	}
	settings.Types = parsed

	return settings, nil
}

// showSettingsCommand prints the notification settings of an address.
//
//	solwatch show-settings --address 9WzD...
func showSettingsCommand(book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "show-settings",
		Description: "Show the notification settings of an address.",
		Usage:       "Prints the effective notification settings of an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Base58 Solana address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			settings, err := book.NotificationSettings(ctx, c.String("address"))
			if err != nil {
				return err
			}

			minAmount := "none"
			if settings.MinAmount != nil {
				minAmount = settings.MinAmount.String()
			}
			channel := settings.Channel
			if channel == "" {
				channel = "-"
			}

			tw := newTable(c.Root().Writer)
			fmt.Fprintf(tw, "min amount:\t%s\n", minAmount)
			fmt.Fprintf(tw, "types:\t%s\n", txclass.JoinTypes(settings.Types))
			fmt.Fprintf(tw, "channel:\t%s\n", channel)
			return tw.Flush()
		},
	}
}

// trackCommand stores an address as active or updates its nickname. A
// running start process begins watching it on its next resync.
//
//	solwatch track --address 9WzD... --nickname treasury
func trackCommand(book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Start tracking a Solana address. Tracking an address again updates its nickname.",
		Usage:       "Tracks an address. Must provide the address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Base58 Solana address to track",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "nickname",
				Usage: "Name shown in notifications",
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "Who requested the tracking",
				Value: defaultOrigin,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				address  = c.String("address")
				nickname = c.String("nickname")
				origin   = c.String("origin")
			)

			if err := book.Track(ctx, address, nickname, origin); err != nil {
				return err
			}

			_, err := fmt.Fprintf(c.Root().Writer, "tracking %s\n", address)
			return err
		},
	}
}

// untrackCommand marks an address inactive. A running start process stops
// watching it on its next resync.
//
//	solwatch untrack --address 9WzD...
func untrackCommand(book addressbook.Service) *cli.Command {
	return &cli.Command{
		Name:        "untrack",
		Description: "Stop tracking a Solana address. Its history is kept.",
		Usage:       "Untracks an address. Must provide the address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Base58 Solana address to stop tracking",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("address")

			if err := book.Untrack(ctx, address); err != nil {
				return err
			}

			_, err := fmt.Fprintf(c.Root().Writer, "stopped tracking %s\n", address)
			return err
		},
	}
}
