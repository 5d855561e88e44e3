package modstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// regionDerivationPrefix is prepended to the module identifier before
// hashing, so region base addresses can never collide with other key
// derivations sharing the account keyspace.
const regionDerivationPrefix = "facetcore:region:v1:"

// ErrInvalidModuleID is returned when a module identifier is empty.
var ErrInvalidModuleID = errors.New("invalid module id")

// ErrAlreadyInitialized is returned when a module attempts to initialize a
// region that has already been initialized.
var ErrAlreadyInitialized = errors.New("region already initialized")

// ErrNotInitialized is returned when a field is accessed before the owning
// module has initialized its region.
var ErrNotInitialized = errors.New("region not initialized")

// ErrFieldNotFound is returned when a region field has never been written.
var ErrFieldNotFound = errors.New("region field not found")

// Region identifies the private storage area owned by one module inside the
// shared account keyspace. The base address is a 256-bit hash of the module
// identifier, wide enough that overlap between distinct identifiers is
// treated as a configuration error rather than a runtime concern.
type Region struct {
	ModuleID string   // identifier the region was derived from
	Base     [32]byte // derived base address
}

// Key returns the hex-encoded base address, used by storage adapters to
// scope all field reads and writes of the owning module.
func (r Region) Key() string {
	return hex.EncodeToString(r.Base[:])
}

// RegionFor deterministically derives the storage region for a module
// identifier. It is a pure function: identical identifiers always yield the
// identical region, and it never allocates or mutates persistent state.
//
// Returns ErrInvalidModuleID when the identifier is empty.
func RegionFor(moduleID string) (Region, error) {
	if moduleID == "" {
		return Region{}, ErrInvalidModuleID
	}

	return Region{
		ModuleID: moduleID,
		Base:     sha256.Sum256([]byte(regionDerivationPrefix + moduleID)),
	}, nil
}

// RegionStorage is the persistence port for region fields. The shared
// account keyspace is partitioned purely by region base address; adapters
// must never let one region's fields leak into another's.
type RegionStorage interface {
	// InitializeRegion records the one-time initialization marker for the
	// region. Returns ErrAlreadyInitialized if the marker is already set.
	InitializeRegion(ctx context.Context, region Region) error

	// IsRegionInitialized reports whether the region's initialization
	// marker has been set.
	IsRegionInitialized(ctx context.Context, region Region) (bool, error)

	// SetField writes a single field inside the region.
	SetField(ctx context.Context, region Region, field string, value []byte) error

	// GetField reads a single field inside the region. Returns
	// ErrFieldNotFound when the field has never been written.
	GetField(ctx context.Context, region Region, field string) ([]byte, error)
}

// EventNotifier publishes region lifecycle events for off-chain consumers.
type EventNotifier interface {
	// NotifyRegionInitialized is invoked exactly once, after a region's
	// one-time initialization succeeds.
	NotifyRegionInitialized(ctx context.Context, moduleID string, regionKey string) error
}
