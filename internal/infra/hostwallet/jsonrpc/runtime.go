package jsonrpc

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gabapcia/facetcore/internal/dispatch"
	"github.com/gabapcia/facetcore/internal/modregistry"
)

// invokeMethod is the wallet node method executing a module operation on an
// account. Payloads and outputs travel as hex-encoded byte strings.
const invokeMethod = "wallet_invoke"

// Invoke implements the dispatch.ModuleRuntime interface.
func (c *client) Invoke(ctx context.Context, moduleRef string, selector modregistry.Selector, account string, payload []byte) ([]byte, error) {
	raw, err := c.conn.Fetch(ctx, invokeMethod, moduleRef, selector, account, "0x"+hex.EncodeToString(payload))
	if err != nil {
		return nil, err
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}

	output, err := hex.DecodeString(strings.TrimPrefix(encoded, "0x"))
	if err != nil {
		return nil, fmt.Errorf("malformed module output: %w", err)
	}

	return output, nil
}

// Compile-time assertion to ensure *client satisfies the dispatch.ModuleRuntime interface
var _ dispatch.ModuleRuntime = new(client)
