package cli

import (
	"context"
	"math/big"
	"testing"

	"github.com/gabapcia/facetcore/internal/dispatch"
	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/modregistry"
	"github.com/gabapcia/facetcore/internal/modstore"

	"github.com/stretchr/testify/mock"
)

// DispatchMock is a testify mock for the dispatch.Service dependency.
type DispatchMock struct {
	mock.Mock
}

func NewDispatchMock(t *testing.T) *DispatchMock {
	m := new(DispatchMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DispatchMock) Execute(ctx context.Context, call dispatch.Call) (dispatch.Result, error) {
	args := m.Called(ctx, call)
	return args.Get(0).(dispatch.Result), args.Error(1)
}

type DispatchMockExpecter struct {
	m *mock.Mock
}

func (m *DispatchMock) EXPECT() *DispatchMockExpecter {
	return &DispatchMockExpecter{m: &m.Mock}
}

func (e *DispatchMockExpecter) Execute(ctx, call any) *mock.Call {
	return e.m.On("Execute", ctx, call)
}

// RegistryMock is a testify mock for the modregistry.Service dependency.
type RegistryMock struct {
	mock.Mock
}

func NewRegistryMock(t *testing.T) *RegistryMock {
	m := new(RegistryMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RegistryMock) AddModule(ctx context.Context, account, caller, moduleRef string, selectors []modregistry.Selector) error {
	args := m.Called(ctx, account, caller, moduleRef, selectors)
	return args.Error(0)
}

func (m *RegistryMock) ReplaceModule(ctx context.Context, account, caller, moduleRef string, selectors []modregistry.Selector) error {
	args := m.Called(ctx, account, caller, moduleRef, selectors)
	return args.Error(0)
}

func (m *RegistryMock) RemoveModule(ctx context.Context, account, caller string, selectors []modregistry.Selector) error {
	args := m.Called(ctx, account, caller, selectors)
	return args.Error(0)
}

func (m *RegistryMock) Resolve(ctx context.Context, selector modregistry.Selector) (string, error) {
	args := m.Called(ctx, selector)
	return args.String(0), args.Error(1)
}

func (m *RegistryMock) ModuleSelectors(ctx context.Context, moduleRef string) ([]modregistry.Selector, error) {
	args := m.Called(ctx, moduleRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]modregistry.Selector), args.Error(1)
}

type RegistryMockExpecter struct {
	m *mock.Mock
}

func (m *RegistryMock) EXPECT() *RegistryMockExpecter {
	return &RegistryMockExpecter{m: &m.Mock}
}

func (e *RegistryMockExpecter) AddModule(ctx, account, caller, moduleRef, selectors any) *mock.Call {
	return e.m.On("AddModule", ctx, account, caller, moduleRef, selectors)
}

func (e *RegistryMockExpecter) ReplaceModule(ctx, account, caller, moduleRef, selectors any) *mock.Call {
	return e.m.On("ReplaceModule", ctx, account, caller, moduleRef, selectors)
}

func (e *RegistryMockExpecter) RemoveModule(ctx, account, caller, selectors any) *mock.Call {
	return e.m.On("RemoveModule", ctx, account, caller, selectors)
}

func (e *RegistryMockExpecter) Resolve(ctx, selector any) *mock.Call {
	return e.m.On("Resolve", ctx, selector)
}

func (e *RegistryMockExpecter) ModuleSelectors(ctx, moduleRef any) *mock.Call {
	return e.m.On("ModuleSelectors", ctx, moduleRef)
}

// FeesMock is a testify mock for the feeledger.Service dependency.
type FeesMock struct {
	mock.Mock
}

func NewFeesMock(t *testing.T) *FeesMock {
	m := new(FeesMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FeesMock) ComputeSplit(ctx context.Context, moduleID string, value *big.Int) (feeledger.Split, error) {
	args := m.Called(ctx, moduleID, value)
	return args.Get(0).(feeledger.Split), args.Error(1)
}

func (m *FeesMock) Distribute(ctx context.Context, split feeledger.Split, executorWallet, platformWallet, token string) error {
	args := m.Called(ctx, split, executorWallet, platformWallet, token)
	return args.Error(0)
}

func (m *FeesMock) RegisterDeveloper(ctx context.Context, account, caller, moduleID, wallet string, shareBps uint32) error {
	args := m.Called(ctx, account, caller, moduleID, wallet, shareBps)
	return args.Error(0)
}

func (m *FeesMock) UpdateDeveloperWallet(ctx context.Context, caller, moduleID, newWallet string) error {
	args := m.Called(ctx, caller, moduleID, newWallet)
	return args.Error(0)
}

func (m *FeesMock) DeactivateDeveloper(ctx context.Context, account, caller, moduleID string) error {
	args := m.Called(ctx, account, caller, moduleID)
	return args.Error(0)
}

func (m *FeesMock) Developer(ctx context.Context, moduleID string) (feeledger.DeveloperRegistration, error) {
	args := m.Called(ctx, moduleID)
	return args.Get(0).(feeledger.DeveloperRegistration), args.Error(1)
}

type FeesMockExpecter struct {
	m *mock.Mock
}

func (m *FeesMock) EXPECT() *FeesMockExpecter {
	return &FeesMockExpecter{m: &m.Mock}
}

func (e *FeesMockExpecter) ComputeSplit(ctx, moduleID, value any) *mock.Call {
	return e.m.On("ComputeSplit", ctx, moduleID, value)
}

func (e *FeesMockExpecter) RegisterDeveloper(ctx, account, caller, moduleID, wallet, shareBps any) *mock.Call {
	return e.m.On("RegisterDeveloper", ctx, account, caller, moduleID, wallet, shareBps)
}

func (e *FeesMockExpecter) UpdateDeveloperWallet(ctx, caller, moduleID, newWallet any) *mock.Call {
	return e.m.On("UpdateDeveloperWallet", ctx, caller, moduleID, newWallet)
}

func (e *FeesMockExpecter) DeactivateDeveloper(ctx, account, caller, moduleID any) *mock.Call {
	return e.m.On("DeactivateDeveloper", ctx, account, caller, moduleID)
}

func (e *FeesMockExpecter) Developer(ctx, moduleID any) *mock.Call {
	return e.m.On("Developer", ctx, moduleID)
}

// StoreMock is a testify mock for the modstore.Service dependency.
type StoreMock struct {
	mock.Mock
}

func NewStoreMock(t *testing.T) *StoreMock {
	m := new(StoreMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreMock) RegionFor(moduleID string) (modstore.Region, error) {
	args := m.Called(moduleID)
	return args.Get(0).(modstore.Region), args.Error(1)
}

func (m *StoreMock) Initialize(ctx context.Context, moduleID string) error {
	args := m.Called(ctx, moduleID)
	return args.Error(0)
}

func (m *StoreMock) SetField(ctx context.Context, moduleID, field string, value []byte) error {
	args := m.Called(ctx, moduleID, field, value)
	return args.Error(0)
}

func (m *StoreMock) GetField(ctx context.Context, moduleID, field string) ([]byte, error) {
	args := m.Called(ctx, moduleID, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type StoreMockExpecter struct {
	m *mock.Mock
}

func (m *StoreMock) EXPECT() *StoreMockExpecter {
	return &StoreMockExpecter{m: &m.Mock}
}

func (e *StoreMockExpecter) RegionFor(moduleID any) *mock.Call {
	return e.m.On("RegionFor", moduleID)
}

func (e *StoreMockExpecter) Initialize(ctx, moduleID any) *mock.Call {
	return e.m.On("Initialize", ctx, moduleID)
}
