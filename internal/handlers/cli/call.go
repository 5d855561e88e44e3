package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/facetcore/internal/dispatch"
	"github.com/gabapcia/facetcore/internal/modregistry"

	"github.com/urfave/cli/v3"
)

// callCommand executes one call through the full dispatch pipeline: registry
// resolution, capability check, reentrancy guard, module invocation, and fee
// settlement when the call carries value.
//
// Usage example:
//
//	facetcore call --account 0xacc --caller 0xauth --selector 0xa9059cbb \
//	    --value 10000 --token 0xtoken --executor 0xexec
func callCommand(ds dispatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "call",
		Description: "Execute one module call on the shared account.",
		Usage:       "Runs a call through resolution, authorization, the reentrancy guard, and fee settlement.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "account",
				Usage:    "Shared account the call executes against",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "caller",
				Usage:    "Identity performing the call (must hold at least the authenticator capability)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "selector",
				Usage:    "Operation selector to invoke",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "payload",
				Usage: "Hex-encoded operation arguments, e.g. 0x01ff",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Transaction value in base units (decimal), drives the fee split",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Token the fee legs settle in",
			},
			&cli.StringFlag{
				Name:     "executor",
				Usage:    "Wallet collecting the executor fee leg",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			selector, err := modregistry.ParseSelector(c.String("selector"))
			if err != nil {
				return err
			}

			var payload []byte
			if raw := c.String("payload"); raw != "" {
				payload, err = hex.DecodeString(strings.TrimPrefix(raw, "0x"))
				if err != nil {
					return fmt.Errorf("malformed payload: %w", err)
				}
			}

			var value *big.Int
			if raw := c.String("value"); raw != "" {
				var ok bool
				if value, ok = new(big.Int).SetString(raw, 10); !ok {
					return fmt.Errorf("malformed value: %q", raw)
				}
			}

			result, err := ds.Execute(ctx, dispatch.Call{
				Account:        c.String("account"),
				Caller:         c.String("caller"),
				Selector:       selector,
				Payload:        payload,
				Value:          value,
				Token:          c.String("token"),
				ExecutorWallet: c.String("executor"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("module=%s output=0x%s\n", result.ModuleRef, hex.EncodeToString(result.Output))
			if result.Split != nil {
				fmt.Printf("fee total=%s executor=%s developer=%s platform=%s\n",
					result.Split.TotalFee, result.Split.ExecutorFee, result.Split.DeveloperFee, result.Split.PlatformFee)
			}
			return nil
		},
	}
}
