// Package modregistry implements the module registry: a versioned
// indirection table from operation selectors to module implementations,
// mutated only through atomic add/replace/remove batches. Registry
// mutations are the most privileged operations in the system, since they
// can redirect any selector's implementation, so every one of them is
// Owner-gated.
package modregistry

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/facetcore/internal/authgate"
	"github.com/gabapcia/facetcore/internal/pkg/types"
)

// Service exposes selector resolution and the registry mutation batches.
type Service interface {
	// AddModule maps every selector in the batch to moduleRef. The whole
	// batch fails with ErrSelectorCollision if any selector is already
	// mapped; nothing is installed in that case.
	AddModule(ctx context.Context, account, caller, moduleRef string, selectors []Selector) error

	// ReplaceModule remaps every selector in the batch to moduleRef.
	// Every selector must already be mapped; the whole batch fails with
	// ErrSelectorNotFound otherwise.
	ReplaceModule(ctx context.Context, account, caller, moduleRef string, selectors []Selector) error

	// RemoveModule clears the mapping of every selector in the batch,
	// in both directions. Every selector must be mapped; the whole batch
	// fails with ErrSelectorNotFound otherwise.
	RemoveModule(ctx context.Context, account, caller string, selectors []Selector) error

	// Resolve returns the module implementing the given selector. Pure
	// lookup; fails with ErrSelectorNotFound when unmapped.
	Resolve(ctx context.Context, selector Selector) (string, error)

	// ModuleSelectors returns every selector mapped to moduleRef, for
	// introspection.
	ModuleSelectors(ctx context.Context, moduleRef string) ([]Selector, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	authorizer      authgate.Service
	registryStorage RegistryStorage
	eventNotifier   EventNotifier
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new modregistry service.
func New(ag authgate.Service, rs RegistryStorage, en EventNotifier) *service {
	return &service{
		authorizer:      ag,
		registryStorage: rs,
		eventNotifier:   en,
	}
}

// validateBatch rejects empty batches and duplicate selectors before any
// storage lookups.
func validateBatch(selectors []Selector) error {
	if len(selectors) == 0 {
		return ErrEmptyBatch
	}

	seen := types.NewSet[Selector]()
	for _, selector := range selectors {
		if seen.Has(selector) {
			return fmt.Errorf("%w: %s", ErrDuplicateSelector, selector)
		}
		seen.Add(selector)
	}

	return nil
}

// AddModule implements the Service interface.
func (s *service) AddModule(ctx context.Context, account, caller, moduleRef string, selectors []Selector) error {
	if err := s.authorizer.Authorize(ctx, account, caller, authgate.CapabilityOwner); err != nil {
		return err
	}
	if moduleRef == "" {
		return ErrInvalidModuleRef
	}
	if err := validateBatch(selectors); err != nil {
		return err
	}

	// Precondition pass: every selector must be unmapped before anything
	// is written, so a collision leaves the registry untouched.
	mappings := make([]SelectorMapping, 0, len(selectors))
	for _, selector := range selectors {
		_, err := s.registryStorage.ResolveSelector(ctx, selector)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", ErrSelectorCollision, selector)
		case errors.Is(err, ErrSelectorNotFound):
			mappings = append(mappings, SelectorMapping{Selector: selector, ModuleRef: moduleRef})
		default:
			return err
		}
	}

	if err := s.registryStorage.InstallSelectors(ctx, mappings); err != nil {
		return err
	}

	return s.eventNotifier.NotifyModuleSelectorsChanged(ctx, moduleRef, selectors, nil)
}

// resolveBatch resolves every selector of a batch, failing with
// ErrSelectorNotFound if any of them is unmapped.
func (s *service) resolveBatch(ctx context.Context, selectors []Selector) ([]SelectorMapping, error) {
	mappings := make([]SelectorMapping, 0, len(selectors))
	for _, selector := range selectors {
		moduleRef, err := s.registryStorage.ResolveSelector(ctx, selector)
		if err != nil {
			if errors.Is(err, ErrSelectorNotFound) {
				err = fmt.Errorf("%w: %s", ErrSelectorNotFound, selector)
			}
			return nil, err
		}

		mappings = append(mappings, SelectorMapping{Selector: selector, ModuleRef: moduleRef})
	}

	return mappings, nil
}

// notifyRemovedByModule groups removed mappings by their previous module
// and emits one event per affected module.
func (s *service) notifyRemovedByModule(ctx context.Context, removed []SelectorMapping, skipModule string) error {
	removedByModule := types.NewDefaultMap[string](func() []Selector { return nil })
	for _, mapping := range removed {
		if mapping.ModuleRef == skipModule {
			continue
		}
		removedByModule.Set(mapping.ModuleRef, append(removedByModule.Get(mapping.ModuleRef), mapping.Selector))
	}

	for moduleRef, selectors := range removedByModule.ToMap() {
		if err := s.eventNotifier.NotifyModuleSelectorsChanged(ctx, moduleRef, nil, selectors); err != nil {
			return err
		}
	}

	return nil
}

// ReplaceModule implements the Service interface.
func (s *service) ReplaceModule(ctx context.Context, account, caller, moduleRef string, selectors []Selector) error {
	if err := s.authorizer.Authorize(ctx, account, caller, authgate.CapabilityOwner); err != nil {
		return err
	}
	if moduleRef == "" {
		return ErrInvalidModuleRef
	}
	if err := validateBatch(selectors); err != nil {
		return err
	}

	previous, err := s.resolveBatch(ctx, selectors)
	if err != nil {
		return err
	}

	next := make([]SelectorMapping, 0, len(selectors))
	for _, selector := range selectors {
		next = append(next, SelectorMapping{Selector: selector, ModuleRef: moduleRef})
	}

	// One storage batch: a failure mid-replace must never leave a selector
	// unmapped.
	if err := s.registryStorage.ReplaceSelectors(ctx, previous, next); err != nil {
		return err
	}

	if err := s.notifyRemovedByModule(ctx, previous, moduleRef); err != nil {
		return err
	}
	return s.eventNotifier.NotifyModuleSelectorsChanged(ctx, moduleRef, selectors, nil)
}

// RemoveModule implements the Service interface.
func (s *service) RemoveModule(ctx context.Context, account, caller string, selectors []Selector) error {
	if err := s.authorizer.Authorize(ctx, account, caller, authgate.CapabilityOwner); err != nil {
		return err
	}
	if err := validateBatch(selectors); err != nil {
		return err
	}

	mappings, err := s.resolveBatch(ctx, selectors)
	if err != nil {
		return err
	}

	if err := s.registryStorage.RemoveSelectors(ctx, mappings); err != nil {
		return err
	}

	return s.notifyRemovedByModule(ctx, mappings, "")
}

// Resolve implements the Service interface.
func (s *service) Resolve(ctx context.Context, selector Selector) (string, error) {
	return s.registryStorage.ResolveSelector(ctx, selector)
}

// ModuleSelectors implements the Service interface.
func (s *service) ModuleSelectors(ctx context.Context, moduleRef string) ([]Selector, error) {
	return s.registryStorage.ModuleSelectors(ctx, moduleRef)
}
