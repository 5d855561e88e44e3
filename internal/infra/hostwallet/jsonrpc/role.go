package jsonrpc

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/facetcore/internal/authgate"
)

// capabilityOfMethod is the wallet node method returning the capability a
// caller holds on an account, as one of "owner", "admin", "authenticator",
// or "none".
const capabilityOfMethod = "wallet_capabilityOf"

// CapabilityOf implements the authgate.RoleStore interface.
//
// The lookup is read-only and safe to retry.
func (c *client) CapabilityOf(ctx context.Context, account, caller string) (authgate.Capability, error) {
	var raw json.RawMessage
	err := c.readRetry.Execute(ctx, func() (err error) {
		raw, err = c.conn.Fetch(ctx, capabilityOfMethod, account, caller)
		return err
	})
	if err != nil {
		return authgate.CapabilityNone, err
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return authgate.CapabilityNone, err
	}

	return authgate.ParseCapability(name)
}

// Compile-time assertion to ensure *client satisfies the authgate.RoleStore interface
var _ authgate.RoleStore = new(client)
