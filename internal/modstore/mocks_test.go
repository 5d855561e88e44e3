package modstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// RegionStorageMock is a testify mock for the RegionStorage port.
type RegionStorageMock struct {
	mock.Mock
}

func NewRegionStorageMock(t *testing.T) *RegionStorageMock {
	m := new(RegionStorageMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RegionStorageMock) InitializeRegion(ctx context.Context, region Region) error {
	args := m.Called(ctx, region)
	return args.Error(0)
}

func (m *RegionStorageMock) IsRegionInitialized(ctx context.Context, region Region) (bool, error) {
	args := m.Called(ctx, region)
	return args.Bool(0), args.Error(1)
}

func (m *RegionStorageMock) SetField(ctx context.Context, region Region, field string, value []byte) error {
	args := m.Called(ctx, region, field, value)
	return args.Error(0)
}

func (m *RegionStorageMock) GetField(ctx context.Context, region Region, field string) ([]byte, error) {
	args := m.Called(ctx, region, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type RegionStorageMockExpecter struct {
	m *mock.Mock
}

func (m *RegionStorageMock) EXPECT() *RegionStorageMockExpecter {
	return &RegionStorageMockExpecter{m: &m.Mock}
}

func (e *RegionStorageMockExpecter) InitializeRegion(ctx, region any) *mock.Call {
	return e.m.On("InitializeRegion", ctx, region)
}

func (e *RegionStorageMockExpecter) IsRegionInitialized(ctx, region any) *mock.Call {
	return e.m.On("IsRegionInitialized", ctx, region)
}

func (e *RegionStorageMockExpecter) SetField(ctx, region, field, value any) *mock.Call {
	return e.m.On("SetField", ctx, region, field, value)
}

func (e *RegionStorageMockExpecter) GetField(ctx, region, field any) *mock.Call {
	return e.m.On("GetField", ctx, region, field)
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

func (m *EventNotifierMock) NotifyRegionInitialized(ctx context.Context, moduleID, regionKey string) error {
	args := m.Called(ctx, moduleID, regionKey)
	return args.Error(0)
}

type EventNotifierMockExpecter struct {
	m *mock.Mock
}

func (m *EventNotifierMock) EXPECT() *EventNotifierMockExpecter {
	return &EventNotifierMockExpecter{m: &m.Mock}
}

func (e *EventNotifierMockExpecter) NotifyRegionInitialized(ctx, moduleID, regionKey any) *mock.Call {
	return e.m.On("NotifyRegionInitialized", ctx, moduleID, regionKey)
}
