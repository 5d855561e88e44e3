package feeledger

import (
	"context"
	"errors"
	"math/big"
)

// ErrTransferFailed is returned when any leg of a fee distribution could
// not be delivered. The whole distribution fails with it: a failed leg is
// never skipped silently, and partial-retry bookkeeping is left to the
// caller or the host's transaction rollback.
var ErrTransferFailed = errors.New("fee transfer failed")

// TokenTransferer is the port through which fee legs are settled on the
// host account system.
type TokenTransferer interface {
	// Transfer moves amount of token from the shared account to the
	// given wallet.
	Transfer(ctx context.Context, token, to string, amount *big.Int) error
}
