package modregistry

import (
	"context"
	"testing"

	"github.com/gabapcia/facetcore/internal/authgate"

	"github.com/stretchr/testify/mock"
)

// AuthorizerMock is a testify mock for the authgate.Service dependency.
type AuthorizerMock struct {
	mock.Mock
}

func NewAuthorizerMock(t *testing.T) *AuthorizerMock {
	m := new(AuthorizerMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthorizerMock) Authorize(ctx context.Context, account, caller string, required authgate.Capability) error {
	args := m.Called(ctx, account, caller, required)
	return args.Error(0)
}

type AuthorizerMockExpecter struct {
	m *mock.Mock
}

func (m *AuthorizerMock) EXPECT() *AuthorizerMockExpecter {
	return &AuthorizerMockExpecter{m: &m.Mock}
}

func (e *AuthorizerMockExpecter) Authorize(ctx, account, caller, required any) *mock.Call {
	return e.m.On("Authorize", ctx, account, caller, required)
}

// RegistryStorageMock is a testify mock for the RegistryStorage port.
type RegistryStorageMock struct {
	mock.Mock
}

func NewRegistryStorageMock(t *testing.T) *RegistryStorageMock {
	m := new(RegistryStorageMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RegistryStorageMock) ResolveSelector(ctx context.Context, selector Selector) (string, error) {
	args := m.Called(ctx, selector)
	return args.String(0), args.Error(1)
}

func (m *RegistryStorageMock) ModuleSelectors(ctx context.Context, moduleRef string) ([]Selector, error) {
	args := m.Called(ctx, moduleRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Selector), args.Error(1)
}

func (m *RegistryStorageMock) InstallSelectors(ctx context.Context, mappings []SelectorMapping) error {
	args := m.Called(ctx, mappings)
	return args.Error(0)
}

func (m *RegistryStorageMock) ReplaceSelectors(ctx context.Context, previous, next []SelectorMapping) error {
	args := m.Called(ctx, previous, next)
	return args.Error(0)
}

func (m *RegistryStorageMock) RemoveSelectors(ctx context.Context, mappings []SelectorMapping) error {
	args := m.Called(ctx, mappings)
	return args.Error(0)
}

type RegistryStorageMockExpecter struct {
	m *mock.Mock
}

func (m *RegistryStorageMock) EXPECT() *RegistryStorageMockExpecter {
	return &RegistryStorageMockExpecter{m: &m.Mock}
}

func (e *RegistryStorageMockExpecter) ResolveSelector(ctx, selector any) *mock.Call {
	return e.m.On("ResolveSelector", ctx, selector)
}

func (e *RegistryStorageMockExpecter) ModuleSelectors(ctx, moduleRef any) *mock.Call {
	return e.m.On("ModuleSelectors", ctx, moduleRef)
}

func (e *RegistryStorageMockExpecter) InstallSelectors(ctx, mappings any) *mock.Call {
	return e.m.On("InstallSelectors", ctx, mappings)
}

func (e *RegistryStorageMockExpecter) ReplaceSelectors(ctx, previous, next any) *mock.Call {
	return e.m.On("ReplaceSelectors", ctx, previous, next)
}

func (e *RegistryStorageMockExpecter) RemoveSelectors(ctx, mappings any) *mock.Call {
	return e.m.On("RemoveSelectors", ctx, mappings)
}

// EventNotifierMock is a testify mock for the EventNotifier port.
type EventNotifierMock struct {
	mock.Mock
}

func NewEventNotifierMock(t *testing.T) *EventNotifierMock {
	m := new(EventNotifierMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventNotifierMock) NotifyModuleSelectorsChanged(ctx context.Context, moduleRef string, added, removed []Selector) error {
	// Pass nil slices through as untyped nil so expectations written with a
	// bare nil argument match.
	var addedArg, removedArg any
	if added != nil {
		addedArg = added
	}
	if removed != nil {
		removedArg = removed
	}
	args := m.Called(ctx, moduleRef, addedArg, removedArg)
	return args.Error(0)
}

type EventNotifierMockExpecter struct {
	m *mock.Mock
}

func (m *EventNotifierMock) EXPECT() *EventNotifierMockExpecter {
	return &EventNotifierMockExpecter{m: &m.Mock}
}

func (e *EventNotifierMockExpecter) NotifyModuleSelectorsChanged(ctx, moduleRef, added, removed any) *mock.Call {
	return e.m.On("NotifyModuleSelectorsChanged", ctx, moduleRef, added, removed)
}
