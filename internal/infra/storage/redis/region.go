package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/facetcore/internal/modstore"

	"github.com/redis/go-redis/v9"
)

// regionKeyPrefix is the namespace prefix for all module region keys.
const regionKeyPrefix = "region"

// regionFieldsKey returns the Redis key of the hash holding a region's
// fields. The key embeds the derived base address, so two modules can never
// share a hash.
//
// Format: "region:fields:{base}"
func regionFieldsKey(region modstore.Region) string {
	return fmt.Sprintf("%s:fields:%s", regionKeyPrefix, region.Key())
}

// regionInitializedKey returns the Redis key of a region's one-time
// initialization marker.
//
// Format: "region:initialized:{base}"
func regionInitializedKey(region modstore.Region) string {
	return fmt.Sprintf("%s:initialized:%s", regionKeyPrefix, region.Key())
}

// InitializeRegion implements the modstore.RegionStorage interface.
//
// The marker is written with SETNX so concurrent initializations of the same
// region collapse to a single winner; every other attempt observes the marker
// and fails with modstore.ErrAlreadyInitialized.
func (c *client) InitializeRegion(ctx context.Context, region modstore.Region) error {
	set, err := c.conn.SetNX(ctx, regionInitializedKey(region), region.ModuleID, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return modstore.ErrAlreadyInitialized
	}

	return nil
}

// IsRegionInitialized implements the modstore.RegionStorage interface.
func (c *client) IsRegionInitialized(ctx context.Context, region modstore.Region) (bool, error) {
	exists, err := c.conn.Exists(ctx, regionInitializedKey(region)).Result()
	if err != nil {
		return false, err
	}

	return exists > 0, nil
}

// SetField implements the modstore.RegionStorage interface using a Redis
// hash scoped to the region's base address.
func (c *client) SetField(ctx context.Context, region modstore.Region, field string, value []byte) error {
	return c.conn.HSet(ctx, regionFieldsKey(region), field, value).Err()
}

// GetField implements the modstore.RegionStorage interface.
func (c *client) GetField(ctx context.Context, region modstore.Region, field string) ([]byte, error) {
	val, err := c.conn.HGet(ctx, regionFieldsKey(region), field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = modstore.ErrFieldNotFound
		}

		return nil, err
	}

	return []byte(val), nil
}

// Compile-time assertion to ensure *client satisfies the modstore.RegionStorage interface
var _ modstore.RegionStorage = new(client)
