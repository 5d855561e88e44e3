package feeledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gabapcia/facetcore/internal/pkg/validator"
)

// maxDeveloperShareBps caps a developer's share of the post-executor
// remainder at 50%.
const maxDeveloperShareBps = 5_000

// ErrExcessiveShare is returned when a developer share exceeds the 5000 bps cap.
var ErrExcessiveShare = errors.New("developer share exceeds cap")

// ErrInvalidWallet is returned when a developer wallet is empty or the zero address.
var ErrInvalidWallet = errors.New("invalid developer wallet")

// ErrAlreadyRegistered is returned when a module already has an active
// developer registration. Use UpdateDeveloperWallet for rotation instead.
var ErrAlreadyRegistered = errors.New("developer already registered")

// ErrNotRegistered is returned when a module has no active developer registration.
var ErrNotRegistered = errors.New("developer not registered")

// ErrNotDeveloperWallet is returned when a wallet rotation is attempted by
// anyone other than the currently registered developer wallet.
var ErrNotDeveloperWallet = errors.New("caller is not the registered developer wallet")

// DeveloperRegistration binds a module to the wallet collecting its
// developer fee share. At most one registration is active per module.
type DeveloperRegistration struct {
	ModuleID     string    `validate:"required"` // module the registration belongs to
	Wallet       string    `validate:"required"` // wallet collecting the developer share
	ShareBps     uint32    // share of the post-executor remainder, in basis points
	Active       bool      // false once deactivated by an admin
	RegisteredAt time.Time // when the current record was created
	UpdatedAt    time.Time // last wallet rotation, equal to RegisteredAt initially
}

// isZeroWallet reports whether a wallet address is empty or the all-zero
// hex address.
func isZeroWallet(wallet string) bool {
	if wallet == "" {
		return true
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(wallet, "0x"), "0X")
	return strings.Trim(trimmed, "0") == ""
}

// newDeveloperRegistration constructs and validates a fresh active
// registration for moduleID.
func newDeveloperRegistration(moduleID, wallet string, shareBps uint32) (DeveloperRegistration, error) {
	if shareBps > maxDeveloperShareBps {
		return DeveloperRegistration{}, ErrExcessiveShare
	}
	if isZeroWallet(wallet) {
		return DeveloperRegistration{}, ErrInvalidWallet
	}

	now := time.Now().UTC()
	reg := DeveloperRegistration{
		ModuleID:     moduleID,
		Wallet:       wallet,
		ShareBps:     shareBps,
		Active:       true,
		RegisteredAt: now,
		UpdatedAt:    now,
	}

	return reg, validator.Validate(reg)
}

// DeveloperStorage is the persistence port for developer registrations,
// keyed per module.
type DeveloperStorage interface {
	// GetRegistration returns the registration for moduleID, active or
	// not. Returns ErrNotRegistered when none was ever recorded.
	GetRegistration(ctx context.Context, moduleID string) (DeveloperRegistration, error)

	// CreateRegistration stores a fresh registration. Returns
	// ErrAlreadyRegistered when an active registration already exists;
	// an inactive record may be replaced (re-registration).
	CreateRegistration(ctx context.Context, reg DeveloperRegistration) error

	// UpdateRegistration overwrites the existing registration for
	// reg.ModuleID. Returns ErrNotRegistered when none exists.
	UpdateRegistration(ctx context.Context, reg DeveloperRegistration) error
}
