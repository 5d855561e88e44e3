// Package modstore implements the namespaced storage registry: every
// pluggable module attached to a shared account owns a private,
// collision-free region of the account keyspace, derived deterministically
// from its module identifier.
package modstore

import "context"

// Service exposes region derivation and scoped field access for modules.
//
// Field access is gated on the region's one-time initialization, so a
// module cannot read or write state it never set up.
type Service interface {
	// RegionFor derives the storage region for the given module
	// identifier. Pure; returns ErrInvalidModuleID for an empty id.
	RegionFor(moduleID string) (Region, error)

	// Initialize performs the module's one-time region initialization.
	// The second and every subsequent call fails with
	// ErrAlreadyInitialized, leaving the first initialization untouched.
	Initialize(ctx context.Context, moduleID string) error

	// SetField writes a field inside the module's region. Fails with
	// ErrNotInitialized when the region was never initialized.
	SetField(ctx context.Context, moduleID, field string, value []byte) error

	// GetField reads a field inside the module's region. Fails with
	// ErrNotInitialized when the region was never initialized, or
	// ErrFieldNotFound when the field has never been written.
	GetField(ctx context.Context, moduleID, field string) ([]byte, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	regionStorage RegionStorage
	eventNotifier EventNotifier
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new modstore service using the provided storage and
// notifier implementations.
func New(rs RegionStorage, en EventNotifier) *service {
	return &service{
		regionStorage: rs,
		eventNotifier: en,
	}
}

// RegionFor derives the storage region for moduleID.
func (s *service) RegionFor(moduleID string) (Region, error) {
	return RegionFor(moduleID)
}

// Initialize marks the module's region as initialized, exactly once, and
// emits a RegionInitialized event on success.
func (s *service) Initialize(ctx context.Context, moduleID string) error {
	region, err := RegionFor(moduleID)
	if err != nil {
		return err
	}

	if err := s.regionStorage.InitializeRegion(ctx, region); err != nil {
		return err
	}

	return s.eventNotifier.NotifyRegionInitialized(ctx, moduleID, region.Key())
}

// initializedRegion resolves the region for moduleID and verifies its
// initialization marker before any field access.
func (s *service) initializedRegion(ctx context.Context, moduleID string) (Region, error) {
	region, err := RegionFor(moduleID)
	if err != nil {
		return Region{}, err
	}

	initialized, err := s.regionStorage.IsRegionInitialized(ctx, region)
	if err != nil {
		return Region{}, err
	}
	if !initialized {
		return Region{}, ErrNotInitialized
	}

	return region, nil
}

// SetField writes a field inside the module's initialized region.
func (s *service) SetField(ctx context.Context, moduleID, field string, value []byte) error {
	region, err := s.initializedRegion(ctx, moduleID)
	if err != nil {
		return err
	}

	return s.regionStorage.SetField(ctx, region, field, value)
}

// GetField reads a field from the module's initialized region.
func (s *service) GetField(ctx context.Context, moduleID, field string) ([]byte, error) {
	region, err := s.initializedRegion(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	return s.regionStorage.GetField(ctx, region, field)
}
