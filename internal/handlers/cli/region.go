package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/facetcore/internal/modstore"

	"github.com/urfave/cli/v3"
)

// regionCommand groups module storage region operations.
//
// Usage example:
//
//	facetcore region init --module lend.v1
func regionCommand(ms modstore.Service) *cli.Command {
	moduleFlag := &cli.StringFlag{
		Name:     "module",
		Usage:    "Module identifier the region is derived from",
		Required: true,
	}

	return &cli.Command{
		Name:        "region",
		Description: "Manage module storage regions inside the shared account keyspace.",
		Usage:       "Initialize and inspect module storage regions.",
		Commands: []*cli.Command{
			{
				Name:        "init",
				Description: "Perform a module's one-time region initialization.",
				Usage:       "Initializes the storage region of a module.",
				Flags:       []cli.Flag{moduleFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ms.Initialize(ctx, c.String("module"))
				},
			},
			{
				Name:        "key",
				Description: "Print the derived base address of a module's region without touching storage.",
				Usage:       "Derives and prints a module's region key.",
				Flags:       []cli.Flag{moduleFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					region, err := ms.RegionFor(c.String("module"))
					if err != nil {
						return err
					}

					fmt.Println(region.Key())
					return nil
				},
			},
		},
	}
}
