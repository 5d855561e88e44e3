package feeledger

import (
	"context"
	"math/big"
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

// DeveloperStorageMock is a testify mock for the DeveloperStorage port.
type DeveloperStorageMock struct {
	mock.Mock
}

func NewDeveloperStorageMock(t *testing.T) *DeveloperStorageMock {
	m := new(DeveloperStorageMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DeveloperStorageMock) GetRegistration(ctx context.Context, moduleID string) (DeveloperRegistration, error) {
	args := m.Called(ctx, moduleID)
	return args.Get(0).(DeveloperRegistration), args.Error(1)
}

func (m *DeveloperStorageMock) CreateRegistration(ctx context.Context, reg DeveloperRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *DeveloperStorageMock) UpdateRegistration(ctx context.Context, reg DeveloperRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

type DeveloperStorageMockExpecter struct {
	m *mock.Mock
}

func (m *DeveloperStorageMock) EXPECT() *DeveloperStorageMockExpecter {
	return &DeveloperStorageMockExpecter{m: &m.Mock}
}

func (e *DeveloperStorageMockExpecter) GetRegistration(ctx, moduleID any) *mock.Call {
	return e.m.On("GetRegistration", ctx, moduleID)
}

func (e *DeveloperStorageMockExpecter) CreateRegistration(ctx, reg any) *mock.Call {
	return e.m.On("CreateRegistration", ctx, reg)
}

func (e *DeveloperStorageMockExpecter) UpdateRegistration(ctx, reg any) *mock.Call {
	return e.m.On("UpdateRegistration", ctx, reg)
}

// TokenTransfererMock is a testify mock for the TokenTransferer port.
type TokenTransfererMock struct {
	mock.Mock
}

func NewTokenTransfererMock(t *testing.T) *TokenTransfererMock {
	m := new(TokenTransfererMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenTransfererMock) Transfer(ctx context.Context, token, to string, amount *big.Int) error {
	args := m.Called(ctx, token, to, amount)
	return args.Error(0)
}

type TokenTransfererMockExpecter struct {
	m *mock.Mock
}

func (m *TokenTransfererMock) EXPECT() *TokenTransfererMockExpecter {
	return &TokenTransfererMockExpecter{m: &m.Mock}
}

func (e *TokenTransfererMockExpecter) Transfer(ctx, token, to, amount any) *mock.Call {
	return e.m.On("Transfer", ctx, token, to, amount)
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

func (m *EventNotifierMock) NotifyDeveloperRegistered(ctx context.Context, moduleID, wallet string, shareBps uint32) error {
	args := m.Called(ctx, moduleID, wallet, shareBps)
	return args.Error(0)
}

func (m *EventNotifierMock) NotifyDeveloperWalletUpdated(ctx context.Context, moduleID, previousWallet, newWallet string) error {
	args := m.Called(ctx, moduleID, previousWallet, newWallet)
	return args.Error(0)
}

func (m *EventNotifierMock) NotifyDeveloperDeactivated(ctx context.Context, moduleID, wallet string) error {
	args := m.Called(ctx, moduleID, wallet)
	return args.Error(0)
}

func (m *EventNotifierMock) NotifyFeeDistributed(ctx context.Context, split Split) error {
	args := m.Called(ctx, split)
	return args.Error(0)
}

type EventNotifierMockExpecter struct {
	m *mock.Mock
}

func (m *EventNotifierMock) EXPECT() *EventNotifierMockExpecter {
	return &EventNotifierMockExpecter{m: &m.Mock}
}

func (e *EventNotifierMockExpecter) NotifyDeveloperRegistered(ctx, moduleID, wallet, shareBps any) *mock.Call {
	return e.m.On("NotifyDeveloperRegistered", ctx, moduleID, wallet, shareBps)
}

func (e *EventNotifierMockExpecter) NotifyDeveloperWalletUpdated(ctx, moduleID, previousWallet, newWallet any) *mock.Call {
	return e.m.On("NotifyDeveloperWalletUpdated", ctx, moduleID, previousWallet, newWallet)
}

func (e *EventNotifierMockExpecter) NotifyDeveloperDeactivated(ctx, moduleID, wallet any) *mock.Call {
	return e.m.On("NotifyDeveloperDeactivated", ctx, moduleID, wallet)
}

func (e *EventNotifierMockExpecter) NotifyFeeDistributed(ctx, split any) *mock.Call {
	return e.m.On("NotifyFeeDistributed", ctx, split)
}
