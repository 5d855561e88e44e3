package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/facetcore/internal/feeledger"

	"github.com/urfave/cli/v3"
)

// developerCommand groups the developer registration lifecycle.
//
// Usage examples:
//
//	facetcore developer register --account 0xacc --caller 0xadmin --module lend.v1 --wallet 0xdev --share-bps 2000
//	facetcore developer rotate --caller 0xdev --module lend.v1 --wallet 0xdev2
func developerCommand(fl feeledger.Service) *cli.Command {
	moduleFlag := &cli.StringFlag{
		Name:     "module",
		Usage:    "Module the registration belongs to",
		Required: true,
	}

	return &cli.Command{
		Name:        "developer",
		Description: "Manage the developer fee registrations of modules.",
		Usage:       "Register, rotate, deactivate, and inspect developer wallets.",
		Commands: []*cli.Command{
			{
				Name:        "register",
				Description: "Record an active developer registration for a module. Admin-gated.",
				Usage:       "Registers a developer wallet and fee share for a module.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "account",
						Usage:    "Shared account the registration belongs to",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "caller",
						Usage:    "Identity performing the registration (must hold the admin capability)",
						Required: true,
					},
					moduleFlag,
					&cli.StringFlag{
						Name:     "wallet",
						Usage:    "Wallet collecting the developer fee share",
						Required: true,
					},
					&cli.UintFlag{
						Name:     "share-bps",
						Usage:    "Developer share of the post-executor remainder, in basis points (max 5000)",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return fl.RegisterDeveloper(ctx,
						c.String("account"),
						c.String("caller"),
						c.String("module"),
						c.String("wallet"),
						uint32(c.Uint("share-bps")),
					)
				},
			},
			{
				Name:        "rotate",
				Description: "Rotate the registered developer wallet. Only the current wallet may rotate itself.",
				Usage:       "Points an active registration at a new wallet.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "caller",
						Usage:    "Currently registered developer wallet",
						Required: true,
					},
					moduleFlag,
					&cli.StringFlag{
						Name:     "wallet",
						Usage:    "New wallet to collect the developer share",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return fl.UpdateDeveloperWallet(ctx, c.String("caller"), c.String("module"), c.String("wallet"))
				},
			},
			{
				Name:        "deactivate",
				Description: "Deactivate a module's developer registration. Admin-gated.",
				Usage:       "Stops the developer carve-out for a module.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "account",
						Usage:    "Shared account the registration belongs to",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "caller",
						Usage:    "Identity performing the deactivation (must hold the admin capability)",
						Required: true,
					},
					moduleFlag,
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return fl.DeactivateDeveloper(ctx, c.String("account"), c.String("caller"), c.String("module"))
				},
			},
			{
				Name:        "show",
				Description: "Print the developer registration recorded for a module, active or not.",
				Usage:       "Shows a module's developer registration.",
				Flags:       []cli.Flag{moduleFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					reg, err := fl.Developer(ctx, c.String("module"))
					if err != nil {
						return err
					}

					fmt.Printf("module=%s wallet=%s share_bps=%d active=%t registered_at=%s\n",
						reg.ModuleID, reg.Wallet, reg.ShareBps, reg.Active, reg.RegisteredAt.Format("2006-01-02T15:04:05Z07:00"))
					return nil
				},
			},
		},
	}
}
