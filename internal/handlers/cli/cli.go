// Package cli is the command-line surface of facetcore: module registry
// management, developer registrations, region initialization, and one-off
// call execution against the shared account.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/facetcore/internal/dispatch"
	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/modregistry"
	"github.com/gabapcia/facetcore/internal/modstore"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the facetcore CLI application.
//
// It registers all available command groups:
//
//   - `module`: add, replace, remove, resolve, and list selector mappings.
//   - `developer`: register, rotate, and deactivate developer fee wallets.
//   - `region`: initialize a module's storage region.
//   - `call`: execute one call through the full dispatch pipeline.
//   - `fee`: preview the fee split for a value without settling it.
func Run(ctx context.Context, ds dispatch.Service, mr modregistry.Service, fl feeledger.Service, ms modstore.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "facetcore",
		Description:           "Command-line interface for managing a facetcore smart account.",
		Usage:                 "facetcore [command] [flags]",
		Commands: []*cli.Command{
			moduleCommand(mr),
			developerCommand(fl),
			regionCommand(ms),
			callCommand(ds),
			feeCommand(fl),
		},
	}

	return app.Run(ctx, os.Args)
}
