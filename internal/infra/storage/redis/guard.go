package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/facetcore/internal/reentry"
)

// guardKeyPrefix is the namespace prefix for per-account reentrancy flags.
const guardKeyPrefix = "reentry"

// guardFlagTTL bounds how long an abandoned flag can block an account, e.g.
// after a process crash between enter and exit.
const guardFlagTTL = 5 * time.Minute

// guardFlagKey returns the Redis key of an account's reentrancy flag.
//
// Format: "reentry:flag:{account}"
func guardFlagKey(account string) string {
	return fmt.Sprintf("%s:flag:%s", guardKeyPrefix, account)
}

// TryEnter implements the reentry.FlagStore interface.
//
// SETNX makes acquisition atomic: the first caller sets the flag and enters,
// every concurrent or nested attempt sees it already set and is refused.
func (c *client) TryEnter(ctx context.Context, account string) (bool, error) {
	return c.conn.SetNX(ctx, guardFlagKey(account), "1", guardFlagTTL).Result()
}

// Exit implements the reentry.FlagStore interface.
func (c *client) Exit(ctx context.Context, account string) error {
	return c.conn.Del(ctx, guardFlagKey(account)).Err()
}

// Compile-time assertion to ensure *client satisfies the reentry.FlagStore interface
var _ reentry.FlagStore = new(client)
