package redis

import (
	"context"
	"strconv"
	"strings"

	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/modregistry"
	"github.com/gabapcia/facetcore/internal/modstore"

	"github.com/redis/go-redis/v9"
)

// eventStreamKey is the Redis stream all domain events are appended to.
// Off-chain consumers read it with XREAD/consumer groups.
const eventStreamKey = "facetcore:events"

// publishEvent appends one event to the stream. The event name goes under
// the "event" field; everything else is payload.
func (c *client) publishEvent(ctx context.Context, event string, payload map[string]any) error {
	values := map[string]any{"event": event}
	for k, v := range payload {
		values[k] = v
	}

	return c.conn.XAdd(ctx, &redis.XAddArgs{
		Stream: eventStreamKey,
		Values: values,
	}).Err()
}

// joinSelectors flattens a selector list into one comma separated stream
// field value.
func joinSelectors(selectors []modregistry.Selector) string {
	parts := make([]string, len(selectors))
	for i, selector := range selectors {
		parts[i] = string(selector)
	}

	return strings.Join(parts, ",")
}

// NotifyRegionInitialized implements the modstore.EventNotifier interface.
func (c *client) NotifyRegionInitialized(ctx context.Context, moduleID, regionKey string) error {
	return c.publishEvent(ctx, "RegionInitialized", map[string]any{
		"module_id":  moduleID,
		"region_key": regionKey,
	})
}

// NotifyDeveloperRegistered implements the feeledger.EventNotifier interface.
func (c *client) NotifyDeveloperRegistered(ctx context.Context, moduleID, wallet string, shareBps uint32) error {
	return c.publishEvent(ctx, "DeveloperRegistered", map[string]any{
		"module_id": moduleID,
		"wallet":    wallet,
		"share_bps": strconv.FormatUint(uint64(shareBps), 10),
	})
}

// NotifyDeveloperWalletUpdated implements the feeledger.EventNotifier interface.
func (c *client) NotifyDeveloperWalletUpdated(ctx context.Context, moduleID, previousWallet, newWallet string) error {
	return c.publishEvent(ctx, "DeveloperWalletUpdated", map[string]any{
		"module_id":       moduleID,
		"previous_wallet": previousWallet,
		"new_wallet":      newWallet,
	})
}

// NotifyDeveloperDeactivated implements the feeledger.EventNotifier interface.
func (c *client) NotifyDeveloperDeactivated(ctx context.Context, moduleID, wallet string) error {
	return c.publishEvent(ctx, "DeveloperDeactivated", map[string]any{
		"module_id": moduleID,
		"wallet":    wallet,
	})
}

// NotifyFeeDistributed implements the feeledger.EventNotifier interface.
func (c *client) NotifyFeeDistributed(ctx context.Context, split feeledger.Split) error {
	return c.publishEvent(ctx, "FeeDistributed", map[string]any{
		"distribution_id":  split.DistributionID,
		"module_id":        split.ModuleID,
		"value":            split.Value.String(),
		"rate_bps":         strconv.FormatUint(uint64(split.RateBps), 10),
		"developer_wallet": split.DeveloperWallet,
		"total_fee":        split.TotalFee.String(),
		"executor_fee":     split.ExecutorFee.String(),
		"developer_fee":    split.DeveloperFee.String(),
		"platform_fee":     split.PlatformFee.String(),
	})
}

// NotifyModuleSelectorsChanged implements the modregistry.EventNotifier interface.
func (c *client) NotifyModuleSelectorsChanged(ctx context.Context, moduleRef string, added, removed []modregistry.Selector) error {
	return c.publishEvent(ctx, "ModuleSelectorsChanged", map[string]any{
		"module_ref": moduleRef,
		"added":      joinSelectors(added),
		"removed":    joinSelectors(removed),
	})
}

// Compile-time assertions to ensure *client satisfies every event notifier port
var (
	_ modstore.EventNotifier    = new(client)
	_ feeledger.EventNotifier   = new(client)
	_ modregistry.EventNotifier = new(client)
)
