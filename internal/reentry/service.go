// Package reentry implements the account-wide reentrancy barrier: a single
// shared flag per account, acquired on entry to any guarded operation and
// released on every exit path.
package reentry

import (
	"context"
	"errors"
)

// Service wraps operations with the account's reentrancy guard.
type Service interface {
	// WithGuard runs operation under the account's reentrancy flag.
	//
	// If the flag is already set, it fails immediately with
	// ErrReentrantCall and operation is never invoked. Otherwise the flag
	// is set, operation runs, and the flag is cleared again regardless of
	// how operation exits. A flag-release failure is joined onto the
	// operation's error so it is never silently dropped.
	WithGuard(ctx context.Context, account string, operation func(ctx context.Context) error) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	flagStore FlagStore
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new reentry service backed by the given flag store.
func New(fs FlagStore) *service {
	return &service{
		flagStore: fs,
	}
}

// WithGuard implements the Service interface.
func (s *service) WithGuard(ctx context.Context, account string, operation func(ctx context.Context) error) (err error) {
	entered, err := s.flagStore.TryEnter(ctx, account)
	if err != nil {
		return err
	}
	if !entered {
		return ErrReentrantCall
	}

	defer func() {
		if exitErr := s.flagStore.Exit(ctx, account); exitErr != nil {
			err = errors.Join(err, exitErr)
		}
	}()

	return operation(ctx)
}
