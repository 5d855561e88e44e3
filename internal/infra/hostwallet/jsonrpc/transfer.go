package jsonrpc

import (
	"context"
	"math/big"

	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/pkg/types"
)

// transferMethod is the wallet node method moving tokens out of the shared
// account. Amounts travel as hex-encoded base units.
const transferMethod = "wallet_transfer"

// Transfer implements the feeledger.TokenTransferer interface.
//
// Transfers are never retried here: a timed-out transfer may have landed,
// and replaying it would double-pay the leg.
func (c *client) Transfer(ctx context.Context, token, to string, amount *big.Int) error {
	_, err := c.conn.Fetch(ctx, transferMethod, token, to, types.HexFromBig(amount))
	return err
}

// Compile-time assertion to ensure *client satisfies the feeledger.TokenTransferer interface
var _ feeledger.TokenTransferer = new(client)
