package authgate

import (
	"context"
	"errors"
	"fmt"
)

// Capability is a named permission level assigned to a calling identity on
// the shared account. Levels are totally ordered:
// Owner > Admin > Authenticator > None.
type Capability uint8

const (
	CapabilityNone Capability = iota
	CapabilityAuthenticator
	CapabilityAdmin
	CapabilityOwner
)

// ErrUnauthorized is returned when a caller's capability does not dominate
// the required capability for an operation.
var ErrUnauthorized = errors.New("caller is not authorized")

// ErrUnknownCapability is returned when a capability string from the host
// role store cannot be parsed.
var ErrUnknownCapability = errors.New("unknown capability")

// String returns the canonical lowercase name of the capability.
func (c Capability) String() string {
	switch c {
	case CapabilityOwner:
		return "owner"
	case CapabilityAdmin:
		return "admin"
	case CapabilityAuthenticator:
		return "authenticator"
	default:
		return "none"
	}
}

// Dominates reports whether c grants at least the permissions of required.
func (c Capability) Dominates(required Capability) bool {
	return c >= required
}

// ParseCapability converts the host role store's string representation into
// a Capability. Fails with ErrUnknownCapability for any other value.
func ParseCapability(s string) (Capability, error) {
	switch s {
	case "owner":
		return CapabilityOwner, nil
	case "admin":
		return CapabilityAdmin, nil
	case "authenticator":
		return CapabilityAuthenticator, nil
	case "none", "":
		return CapabilityNone, nil
	default:
		return CapabilityNone, fmt.Errorf("%w: %q", ErrUnknownCapability, s)
	}
}

// RoleStore is the read-only port into the host account's key-management
// system. Role assignments are mutated exclusively by the host; this core
// only ever looks them up.
type RoleStore interface {
	// CapabilityOf returns the capability currently assigned to caller on
	// the given account. Identities with no assignment report
	// CapabilityNone, not an error.
	CapabilityOf(ctx context.Context, account, caller string) (Capability, error)
}
