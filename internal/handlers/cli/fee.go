package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/facetcore/internal/feeledger"

	"github.com/urfave/cli/v3"
)

// feeCommand previews fee splits without settling anything.
//
// Usage example:
//
//	facetcore fee split --module lend.v1 --value 10000
func feeCommand(fl feeledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "fee",
		Description: "Inspect the fee schedule applied to module calls.",
		Usage:       "Preview fee splits.",
		Commands: []*cli.Command{
			{
				Name:        "split",
				Description: "Compute the executor/developer/platform split for a value without transferring anything.",
				Usage:       "Previews the fee split of a hypothetical call.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "module",
						Usage:    "Module the value would move through",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "value",
						Usage:    "Transaction value in base units (decimal)",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					value, ok := new(big.Int).SetString(c.String("value"), 10)
					if !ok {
						return fmt.Errorf("malformed value: %q", c.String("value"))
					}

					split, err := fl.ComputeSplit(ctx, c.String("module"), value)
					if err != nil {
						return err
					}

					fmt.Printf("rate_bps=%d total=%s executor=%s developer=%s platform=%s\n",
						split.RateBps, split.TotalFee, split.ExecutorFee, split.DeveloperFee, split.PlatformFee)
					return nil
				},
			},
		},
	}
}
