package reentry

import (
	"context"
	"errors"
)

// ErrReentrantCall is returned when a guarded operation is entered while
// another guarded operation on the same account is still in flight. The
// nested call is aborted before producing any side effects; the outer
// call's outcome is unaffected by the rejection.
var ErrReentrantCall = errors.New("reentrant call")

// FlagStore is the persistence port for the per-account reentrancy flag.
// One flag guards the entire account: the barrier is deliberately shared
// across every module attached to it, so a module cannot be reentered
// through a different module's guarded call either.
type FlagStore interface {
	// TryEnter atomically sets the account's reentrancy flag. It returns
	// true when the flag was clear and is now held by this call, false
	// when another guarded call is already inside.
	TryEnter(ctx context.Context, account string) (bool, error)

	// Exit clears the account's reentrancy flag.
	Exit(ctx context.Context, account string) error
}
