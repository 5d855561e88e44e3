// Package authgate implements the capability gate: a single authorization
// service consulted at the top of every mutating operation, replacing
// per-module permission checks with one explicit, typed decision point.
package authgate

import "context"

// Service answers whether a calling identity may perform an operation that
// requires a given capability.
type Service interface {
	// Authorize checks that caller's capability on account dominates
	// required. It has no side effects and never mutates role
	// assignments. Fails with ErrUnauthorized when the capability does
	// not dominate.
	Authorize(ctx context.Context, account, caller string, required Capability) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	roleStore RoleStore
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new authgate service backed by the given role store.
func New(rs RoleStore) *service {
	return &service{
		roleStore: rs,
	}
}

// Authorize looks up the caller's capability and checks dominance. The
// caller's capability is never silently upgraded or downgraded.
func (s *service) Authorize(ctx context.Context, account, caller string, required Capability) error {
	capability, err := s.roleStore.CapabilityOf(ctx, account, caller)
	if err != nil {
		return err
	}

	if !capability.Dominates(required) {
		return ErrUnauthorized
	}

	return nil
}
