package dispatch

import (
	"context"

	"github.com/gabapcia/facetcore/internal/authgate"
	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/modregistry"
	"github.com/gabapcia/facetcore/internal/pkg/logger"
	"github.com/gabapcia/facetcore/internal/reentry"
)

// Service runs calls through the full pipeline.
type Service interface {
	// Execute resolves, authorizes, guards, and runs one call. When the
	// call carries a positive value, the fee split is computed and settled
	// after the module returns; a failed module call settles nothing.
	Execute(ctx context.Context, call Call) (Result, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	platformWallet string

	registry      modregistry.Service
	authorizer    authgate.Service
	guard         reentry.Service
	fees          feeledger.Service
	moduleRuntime ModuleRuntime
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new dispatch service. platformWallet collects the residual
// fee leg of every settled call.
func New(platformWallet string, mr modregistry.Service, ag authgate.Service, rg reentry.Service, fl feeledger.Service, rt ModuleRuntime) *service {
	return &service{
		platformWallet: platformWallet,
		registry:       mr,
		authorizer:     ag,
		guard:          rg,
		fees:           fl,
		moduleRuntime:  rt,
	}
}

// Execute implements the Service interface.
func (s *service) Execute(ctx context.Context, call Call) (Result, error) {
	if call.Account == "" || call.Caller == "" || call.ExecutorWallet == "" {
		return Result{}, ErrInvalidCall
	}

	// A value-moving call needs a token to settle the fee legs against.
	if call.Value != nil && call.Value.Sign() > 0 && call.Token == "" {
		return Result{}, ErrInvalidCall
	}

	moduleRef, err := s.registry.Resolve(ctx, call.Selector)
	if err != nil {
		return Result{}, err
	}

	if err := s.authorizer.Authorize(ctx, call.Account, call.Caller, authgate.CapabilityAuthenticator); err != nil {
		return Result{}, err
	}

	result := Result{ModuleRef: moduleRef}

	err = s.guard.WithGuard(ctx, call.Account, func(ctx context.Context) error {
		output, err := s.moduleRuntime.Invoke(ctx, moduleRef, call.Selector, call.Account, call.Payload)
		if err != nil {
			return err
		}
		result.Output = output

		if call.Value == nil || call.Value.Sign() == 0 {
			return nil
		}

		split, err := s.fees.ComputeSplit(ctx, moduleRef, call.Value)
		if err != nil {
			return err
		}
		if err := s.fees.Distribute(ctx, split, call.ExecutorWallet, s.platformWallet, call.Token); err != nil {
			return err
		}
		result.Split = &split

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Debug(ctx, "call executed",
		"account", call.Account,
		"selector", call.Selector,
		"module", moduleRef,
	)

	return result, nil
}
