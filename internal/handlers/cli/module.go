package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/facetcore/internal/modregistry"

	"github.com/urfave/cli/v3"
)

// parseSelectorFlags validates every --selector value up front, so a typo in
// one selector rejects the command before any service call.
func parseSelectorFlags(raw []string) ([]modregistry.Selector, error) {
	selectors := make([]modregistry.Selector, 0, len(raw))
	for _, s := range raw {
		selector, err := modregistry.ParseSelector(s)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, selector)
	}

	return selectors, nil
}

// moduleCommand groups the registry mutations and lookups.
//
// Usage examples:
//
//	facetcore module add --account 0xacc --caller 0xowner --module lend.v1 --selector 0xa9059cbb
//	facetcore module resolve --selector 0xa9059cbb
func moduleCommand(mr modregistry.Service) *cli.Command {
	accountFlag := &cli.StringFlag{
		Name:     "account",
		Usage:    "Shared account the registry belongs to",
		Required: true,
	}
	callerFlag := &cli.StringFlag{
		Name:     "caller",
		Usage:    "Identity performing the mutation (must hold the owner capability)",
		Required: true,
	}
	moduleFlag := &cli.StringFlag{
		Name:     "module",
		Usage:    "Module reference, e.g. lend.v1",
		Required: true,
	}
	selectorsFlag := &cli.StringSliceFlag{
		Name:     "selector",
		Usage:    "Operation selector (0x plus eight hex digits), repeatable",
		Required: true,
	}

	return &cli.Command{
		Name:        "module",
		Description: "Manage the selector-to-module indirection table.",
		Usage:       "Add, replace, remove, resolve, and list selector mappings.",
		Commands: []*cli.Command{
			{
				Name:        "add",
				Description: "Map a batch of selectors to a module. Fails whole if any selector is already mapped.",
				Usage:       "Adds selector mappings for a new module.",
				Flags:       []cli.Flag{accountFlag, callerFlag, moduleFlag, selectorsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					selectors, err := parseSelectorFlags(c.StringSlice("selector"))
					if err != nil {
						return err
					}

					return mr.AddModule(ctx, c.String("account"), c.String("caller"), c.String("module"), selectors)
				},
			},
			{
				Name:        "replace",
				Description: "Remap a batch of already-mapped selectors to a new module implementation.",
				Usage:       "Replaces the module behind existing selector mappings.",
				Flags:       []cli.Flag{accountFlag, callerFlag, moduleFlag, selectorsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					selectors, err := parseSelectorFlags(c.StringSlice("selector"))
					if err != nil {
						return err
					}

					return mr.ReplaceModule(ctx, c.String("account"), c.String("caller"), c.String("module"), selectors)
				},
			},
			{
				Name:        "remove",
				Description: "Clear a batch of selector mappings. Fails whole if any selector is unmapped.",
				Usage:       "Removes existing selector mappings.",
				Flags:       []cli.Flag{accountFlag, callerFlag, selectorsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					selectors, err := parseSelectorFlags(c.StringSlice("selector"))
					if err != nil {
						return err
					}

					return mr.RemoveModule(ctx, c.String("account"), c.String("caller"), selectors)
				},
			},
			{
				Name:        "resolve",
				Description: "Look up the module implementing a selector.",
				Usage:       "Resolves one selector to its module reference.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "selector",
						Usage:    "Operation selector to resolve",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					selector, err := modregistry.ParseSelector(c.String("selector"))
					if err != nil {
						return err
					}

					moduleRef, err := mr.Resolve(ctx, selector)
					if err != nil {
						return err
					}

					fmt.Println(moduleRef)
					return nil
				},
			},
			{
				Name:        "selectors",
				Description: "List every selector currently mapped to a module.",
				Usage:       "Lists the selectors of one module.",
				Flags:       []cli.Flag{moduleFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					selectors, err := mr.ModuleSelectors(ctx, c.String("module"))
					if err != nil {
						return err
					}

					for _, selector := range selectors {
						fmt.Println(selector)
					}
					return nil
				},
			},
		},
	}
}
