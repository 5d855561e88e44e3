package authgate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// RoleStoreMock is a testify mock for the RoleStore port.
type RoleStoreMock struct {
	mock.Mock
}

func NewRoleStoreMock(t *testing.T) *RoleStoreMock {
	m := new(RoleStoreMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RoleStoreMock) CapabilityOf(ctx context.Context, account, caller string) (Capability, error) {
	args := m.Called(ctx, account, caller)
	return args.Get(0).(Capability), args.Error(1)
}

type RoleStoreMockExpecter struct {
	m *mock.Mock
}

func (m *RoleStoreMock) EXPECT() *RoleStoreMockExpecter {
	return &RoleStoreMockExpecter{m: &m.Mock}
}

func (e *RoleStoreMockExpecter) CapabilityOf(ctx, account, caller any) *mock.Call {
	return e.m.On("CapabilityOf", ctx, account, caller)
}
