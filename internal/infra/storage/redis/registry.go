package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/facetcore/internal/modregistry"

	"github.com/redis/go-redis/v9"
)

// registryKeyPrefix is the namespace prefix for the selector indirection table.
const registryKeyPrefix = "modregistry"

// registrySelectorsKey is the hash mapping each selector to the module
// implementing it.
//
// Format: "modregistry:selectors"
const registrySelectorsKey = registryKeyPrefix + ":selectors"

// registryModuleKey returns the Redis set holding the selectors mapped to
// one module, the reverse direction of the selector hash.
//
// Format: "modregistry:module:{moduleRef}"
func registryModuleKey(moduleRef string) string {
	return fmt.Sprintf("%s:module:%s", registryKeyPrefix, moduleRef)
}

// ResolveSelector implements the modregistry.RegistryStorage interface.
func (c *client) ResolveSelector(ctx context.Context, selector modregistry.Selector) (string, error) {
	moduleRef, err := c.conn.HGet(ctx, registrySelectorsKey, string(selector)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = modregistry.ErrSelectorNotFound
		}

		return "", err
	}

	return moduleRef, nil
}

// ModuleSelectors implements the modregistry.RegistryStorage interface.
func (c *client) ModuleSelectors(ctx context.Context, moduleRef string) ([]modregistry.Selector, error) {
	members, err := c.conn.SMembers(ctx, registryModuleKey(moduleRef)).Result()
	if err != nil {
		return nil, err
	}

	selectors := make([]modregistry.Selector, len(members))
	for i, member := range members {
		selectors[i] = modregistry.Selector(member)
	}

	return selectors, nil
}

// InstallSelectors implements the modregistry.RegistryStorage interface.
//
// A WATCH transaction re-checks that every selector is still unmapped at
// commit time, so two concurrent installs of the same selector collapse to
// a single winner instead of landing in two modules' reverse sets. Both
// directions of every mapping go through one MULTI/EXEC pipeline, so a
// batch is either fully visible or not at all.
func (c *client) InstallSelectors(ctx context.Context, mappings []modregistry.SelectorMapping) error {
	txn := func(tx *redis.Tx) error {
		for _, mapping := range mappings {
			mapped, err := tx.HExists(ctx, registrySelectorsKey, string(mapping.Selector)).Result()
			if err != nil {
				return err
			}
			if mapped {
				return fmt.Errorf("%w: %s", modregistry.ErrSelectorCollision, mapping.Selector)
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, mapping := range mappings {
				pipe.HSet(ctx, registrySelectorsKey, string(mapping.Selector), mapping.ModuleRef)
				pipe.SAdd(ctx, registryModuleKey(mapping.ModuleRef), string(mapping.Selector))
			}
			return nil
		})
		return err
	}

	return c.conn.Watch(ctx, txn, registrySelectorsKey)
}

// ReplaceSelectors implements the modregistry.RegistryStorage interface.
//
// Old reverse entries are cleared and new mappings written in one MULTI/EXEC
// pipeline. The forward HSet overwrites the old module in place, so no
// selector is ever observable as unmapped mid-replace.
func (c *client) ReplaceSelectors(ctx context.Context, previous, next []modregistry.SelectorMapping) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, mapping := range previous {
			pipe.SRem(ctx, registryModuleKey(mapping.ModuleRef), string(mapping.Selector))
		}
		for _, mapping := range next {
			pipe.HSet(ctx, registrySelectorsKey, string(mapping.Selector), mapping.ModuleRef)
			pipe.SAdd(ctx, registryModuleKey(mapping.ModuleRef), string(mapping.Selector))
		}
		return nil
	})

	return err
}

// RemoveSelectors implements the modregistry.RegistryStorage interface.
func (c *client) RemoveSelectors(ctx context.Context, mappings []modregistry.SelectorMapping) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, mapping := range mappings {
			pipe.HDel(ctx, registrySelectorsKey, string(mapping.Selector))
			pipe.SRem(ctx, registryModuleKey(mapping.ModuleRef), string(mapping.Selector))
		}
		return nil
	})

	return err
}

// Compile-time assertion to ensure *client satisfies the modregistry.RegistryStorage interface
var _ modregistry.RegistryStorage = new(client)
