// Package feeledger implements the fee accounting ledger: tiered base
// rates, the executor / developer / platform three-way split with exact
// conservation, and the per-module developer registration lifecycle.
package feeledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/facetcore/internal/authgate"
	"github.com/gabapcia/facetcore/internal/pkg/logger"
)

// Service exposes fee computation, distribution, and the developer
// registration lifecycle.
type Service interface {
	// ComputeSplit derives the fee split for a transaction of the given
	// value invoked through moduleID. The developer leg is zero when the
	// module has no active registration. Fails with ErrInvalidValue for
	// a nil or negative value.
	ComputeSplit(ctx context.Context, moduleID string, value *big.Int) (Split, error)

	// Distribute settles all legs of the split: executor, developer
	// (when present), and platform. Zero-amount legs are skipped. Any
	// failed leg fails the whole call with ErrTransferFailed; no leg is
	// retried or skipped silently. Emits a FeeDistributed event on
	// success; a failed emission is logged but does not fail the call,
	// since the legs have already settled.
	Distribute(ctx context.Context, split Split, executorWallet, platformWallet, token string) error

	// RegisterDeveloper records a fresh active registration for
	// moduleID. Admin-gated on the shared account. Fails with
	// ErrExcessiveShare above 5000 bps, ErrInvalidWallet for a zero
	// wallet, and ErrAlreadyRegistered when an active registration
	// exists.
	RegisterDeveloper(ctx context.Context, account, caller, moduleID, wallet string, shareBps uint32) error

	// UpdateDeveloperWallet rotates the registered wallet for moduleID.
	// Self-service: only the currently registered wallet may call it.
	// Fails with ErrNotRegistered when no active registration exists.
	UpdateDeveloperWallet(ctx context.Context, caller, moduleID, newWallet string) error

	// DeactivateDeveloper deactivates the registration for moduleID.
	// Admin-gated; terminal unless the module is re-registered.
	DeactivateDeveloper(ctx context.Context, account, caller, moduleID string) error

	// Developer returns the registration recorded for moduleID, active
	// or not. Fails with ErrNotRegistered when none exists.
	Developer(ctx context.Context, moduleID string) (DeveloperRegistration, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	schedule TierSchedule

	authorizer       authgate.Service
	developerStorage DeveloperStorage
	tokenTransferer  TokenTransferer
	eventNotifier    EventNotifier
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new feeledger service. The tier schedule is validated once
// here; an invalid schedule is a configuration error.
func New(schedule TierSchedule, ag authgate.Service, ds DeveloperStorage, tt TokenTransferer, en EventNotifier) (*service, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return &service{
		schedule:         schedule,
		authorizer:       ag,
		developerStorage: ds,
		tokenTransferer:  tt,
		eventNotifier:    en,
	}, nil
}

// ComputeSplit implements the Service interface.
func (s *service) ComputeSplit(ctx context.Context, moduleID string, value *big.Int) (Split, error) {
	if value == nil || value.Sign() < 0 {
		return Split{}, ErrInvalidValue
	}

	var (
		developerWallet   string
		developerShareBps uint32
	)

	reg, err := s.developerStorage.GetRegistration(ctx, moduleID)
	switch {
	case err == nil:
		if reg.Active {
			developerWallet = reg.Wallet
			developerShareBps = reg.ShareBps
		}
	case errors.Is(err, ErrNotRegistered):
		// No developer carve-out; the remainder goes to the platform.
	default:
		return Split{}, err
	}

	return computeSplit(s.schedule, moduleID, value, developerWallet, developerShareBps), nil
}

// transferLeg settles a single leg, skipping zero amounts and wrapping
// failures with ErrTransferFailed.
func (s *service) transferLeg(ctx context.Context, token, leg, to string, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}

	if err := s.tokenTransferer.Transfer(ctx, token, to, amount); err != nil {
		return fmt.Errorf("%w: %s leg: %v", ErrTransferFailed, leg, err)
	}

	return nil
}

// Distribute implements the Service interface.
func (s *service) Distribute(ctx context.Context, split Split, executorWallet, platformWallet, token string) error {
	if err := s.transferLeg(ctx, token, "executor", executorWallet, split.ExecutorFee); err != nil {
		return err
	}

	if err := s.transferLeg(ctx, token, "developer", split.DeveloperWallet, split.DeveloperFee); err != nil {
		return err
	}

	if err := s.transferLeg(ctx, token, "platform", platformWallet, split.PlatformFee); err != nil {
		return err
	}

	// All legs settled; reporting failure now would invite a retry that
	// pays every leg again. The event is best effort past this point.
	if err := s.eventNotifier.NotifyFeeDistributed(ctx, split); err != nil {
		logger.Error(ctx, "failed to publish fee distribution event",
			"distribution", split.DistributionID,
			"module", split.ModuleID,
			"error", err,
		)
	}

	return nil
}

// RegisterDeveloper implements the Service interface.
func (s *service) RegisterDeveloper(ctx context.Context, account, caller, moduleID, wallet string, shareBps uint32) error {
	if err := s.authorizer.Authorize(ctx, account, caller, authgate.CapabilityAdmin); err != nil {
		return err
	}

	reg, err := newDeveloperRegistration(moduleID, wallet, shareBps)
	if err != nil {
		return err
	}

	if err := s.developerStorage.CreateRegistration(ctx, reg); err != nil {
		return err
	}

	return s.eventNotifier.NotifyDeveloperRegistered(ctx, moduleID, wallet, shareBps)
}

// UpdateDeveloperWallet implements the Service interface.
func (s *service) UpdateDeveloperWallet(ctx context.Context, caller, moduleID, newWallet string) error {
	if isZeroWallet(newWallet) {
		return ErrInvalidWallet
	}

	reg, err := s.developerStorage.GetRegistration(ctx, moduleID)
	if err != nil {
		return err
	}
	if !reg.Active {
		return ErrNotRegistered
	}
	if reg.Wallet != caller {
		return ErrNotDeveloperWallet
	}

	previousWallet := reg.Wallet
	reg.Wallet = newWallet
	reg.UpdatedAt = time.Now().UTC()

	if err := s.developerStorage.UpdateRegistration(ctx, reg); err != nil {
		return err
	}

	return s.eventNotifier.NotifyDeveloperWalletUpdated(ctx, moduleID, previousWallet, newWallet)
}

// DeactivateDeveloper implements the Service interface.
func (s *service) DeactivateDeveloper(ctx context.Context, account, caller, moduleID string) error {
	if err := s.authorizer.Authorize(ctx, account, caller, authgate.CapabilityAdmin); err != nil {
		return err
	}

	reg, err := s.developerStorage.GetRegistration(ctx, moduleID)
	if err != nil {
		return err
	}
	if !reg.Active {
		return ErrNotRegistered
	}

	reg.Active = false
	reg.UpdatedAt = time.Now().UTC()

	if err := s.developerStorage.UpdateRegistration(ctx, reg); err != nil {
		return err
	}

	return s.eventNotifier.NotifyDeveloperDeactivated(ctx, moduleID, reg.Wallet)
}

// Developer implements the Service interface.
func (s *service) Developer(ctx context.Context, moduleID string) (DeveloperRegistration, error) {
	return s.developerStorage.GetRegistration(ctx, moduleID)
}
