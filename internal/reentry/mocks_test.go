package reentry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// FlagStoreMock is a testify mock for the FlagStore port.
type FlagStoreMock struct {
	mock.Mock
}

func NewFlagStoreMock(t *testing.T) *FlagStoreMock {
	m := new(FlagStoreMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FlagStoreMock) TryEnter(ctx context.Context, account string) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

func (m *FlagStoreMock) Exit(ctx context.Context, account string) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type FlagStoreMockExpecter struct {
	m *mock.Mock
}

func (m *FlagStoreMock) EXPECT() *FlagStoreMockExpecter {
	return &FlagStoreMockExpecter{m: &m.Mock}
}

func (e *FlagStoreMockExpecter) TryEnter(ctx, account any) *mock.Call {
	return e.m.On("TryEnter", ctx, account)
}

func (e *FlagStoreMockExpecter) Exit(ctx, account any) *mock.Call {
	return e.m.On("Exit", ctx, account)
}
