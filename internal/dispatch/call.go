// Package dispatch implements the guarded call pipeline: every inbound
// module call is resolved through the registry, authorized, wrapped in the
// account's reentrancy barrier, executed, and fee-settled when it carries
// value.
package dispatch

import (
	"context"
	"errors"
	"math/big"

	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/modregistry"
)

// ErrInvalidCall is returned when a call is missing its account, caller, or
// executor wallet, or moves value without naming a settlement token.
var ErrInvalidCall = errors.New("invalid call")

// Call is one inbound module invocation on a shared account.
type Call struct {
	Account        string               // shared account the call executes against
	Caller         string               // identity performing the call
	Selector       modregistry.Selector // operation selector to resolve
	Payload        []byte               // opaque operation arguments, passed through untouched
	Value          *big.Int             // transaction value driving the fee split, nil means zero
	Token          string               // token the fee legs settle in
	ExecutorWallet string               // wallet collecting the executor fee leg
}

// Result carries the module output and, when the call moved value, the fee
// split that was settled for it.
type Result struct {
	ModuleRef string
	Output    []byte
	Split     *feeledger.Split
}

// ModuleRuntime is the execution port: it runs the resolved module's
// operation and returns its raw output.
type ModuleRuntime interface {
	Invoke(ctx context.Context, moduleRef string, selector modregistry.Selector, account string, payload []byte) ([]byte, error)
}
