package feeledger

import "context"

// EventNotifier publishes fee-ledger events for off-chain monitors and
// indexers. Each event is emitted exactly once, after the corresponding
// mutating operation succeeds, and never on failure.
type EventNotifier interface {
	// NotifyDeveloperRegistered reports a fresh active registration.
	NotifyDeveloperRegistered(ctx context.Context, moduleID, wallet string, shareBps uint32) error

	// NotifyDeveloperWalletUpdated reports a developer wallet rotation.
	NotifyDeveloperWalletUpdated(ctx context.Context, moduleID, previousWallet, newWallet string) error

	// NotifyDeveloperDeactivated reports an admin deactivation.
	NotifyDeveloperDeactivated(ctx context.Context, moduleID, wallet string) error

	// NotifyFeeDistributed reports a settled fee split, including every leg.
	NotifyFeeDistributed(ctx context.Context, split Split) error
}
