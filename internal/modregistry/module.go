package modregistry

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// selectorHexLen is the number of hex digits in a 4-byte operation selector.
const selectorHexLen = 8

// ErrInvalidSelector is returned when a selector is not "0x" followed by
// exactly eight hex digits.
var ErrInvalidSelector = errors.New("invalid selector")

// ErrInvalidModuleRef is returned when a module reference is empty.
var ErrInvalidModuleRef = errors.New("invalid module reference")

// ErrSelectorCollision is returned when any selector of an add batch is
// already mapped to a module. The whole batch is rejected.
var ErrSelectorCollision = errors.New("selector already mapped")

// ErrSelectorNotFound is returned when a selector of a replace or remove
// batch (or a lookup) is not mapped to any module.
var ErrSelectorNotFound = errors.New("selector not mapped")

// ErrEmptyBatch is returned when a mutating operation is called with no
// selectors.
var ErrEmptyBatch = errors.New("empty selector batch")

// ErrDuplicateSelector is returned when the same selector appears twice in
// one batch.
var ErrDuplicateSelector = errors.New("duplicate selector in batch")

// Selector is the stable 4-byte identifier of one operation exposed by a
// module, encoded as "0x" plus eight hex digits.
type Selector string

// ParseSelector validates the input string and returns a Selector if valid.
func ParseSelector(s string) (Selector, error) {
	trimmed, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok || len(trimmed) != selectorHexLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}

	for _, r := range trimmed {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("%w: %q", ErrInvalidSelector, s)
		}
	}

	return Selector("0x" + trimmed), nil
}

// SelectorMapping binds one selector to the module implementing it.
type SelectorMapping struct {
	Selector  Selector
	ModuleRef string
}

// RegistryStorage is the persistence port for the selector indirection
// table, maintained in both directions: selector to module and module to
// selectors.
type RegistryStorage interface {
	// ResolveSelector returns the module a selector maps to. Returns
	// ErrSelectorNotFound when the selector is unmapped.
	ResolveSelector(ctx context.Context, selector Selector) (string, error)

	// ModuleSelectors returns every selector currently mapped to the
	// given module, in no particular order.
	ModuleSelectors(ctx context.Context, moduleRef string) ([]Selector, error)

	// InstallSelectors writes the given mappings, forward and reverse,
	// as one atomic batch. Returns ErrSelectorCollision if any selector
	// gained a mapping between the caller's checks and the commit.
	InstallSelectors(ctx context.Context, mappings []SelectorMapping) error

	// ReplaceSelectors atomically swaps the previous mappings for the
	// next ones in one batch, so no selector is ever observable as
	// unmapped mid-replace. Both slices cover the same selectors.
	ReplaceSelectors(ctx context.Context, previous, next []SelectorMapping) error

	// RemoveSelectors clears the given mappings in both directions as
	// one atomic batch.
	RemoveSelectors(ctx context.Context, mappings []SelectorMapping) error
}

// EventNotifier publishes registry mutations for off-chain consumers,
// exactly once per successful mutating call and never on failure.
type EventNotifier interface {
	// NotifyModuleSelectorsChanged reports the selectors added to and
	// removed from one module by a registry mutation.
	NotifyModuleSelectorsChanged(ctx context.Context, moduleRef string, added, removed []Selector) error
}
