// Package jsonrpc implements the host wallet ports over the wallet node's
// JSON-RPC interface: capability lookups, token transfers, and module
// invocations.
package jsonrpc

import (
	"github.com/gabapcia/facetcore/internal/pkg/resilience/retry"
	"github.com/gabapcia/facetcore/internal/pkg/transport/jsonrpc"
)

// client talks to a host wallet node over JSON-RPC.
type client struct {
	conn jsonrpc.Client

	// readRetry wraps read-only lookups. Mutating calls are never retried
	// here; the wallet node owns transfer idempotency.
	readRetry retry.Retry
}

// NewClient creates a host wallet client on top of the given JSON-RPC
// connection. Read-only lookups are retried with exponential backoff.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn:      conn,
		readRetry: retry.New(),
	}
}
