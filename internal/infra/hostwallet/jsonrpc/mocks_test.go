package jsonrpc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
)

// ConnMock is a testify mock for the underlying JSON-RPC connection.
type ConnMock struct {
	mock.Mock
}

func NewConnMock(t *testing.T) *ConnMock {
	m := new(ConnMock)
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ConnMock) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	callArgs := append([]any{ctx, method}, params...)
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type ConnMockExpecter struct {
	m *mock.Mock
}

func (m *ConnMock) EXPECT() *ConnMockExpecter {
	return &ConnMockExpecter{m: &m.Mock}
}

func (e *ConnMockExpecter) Fetch(ctx, method any, params ...any) *mock.Call {
	return e.m.On("Fetch", append([]any{ctx, method}, params...)...)
}
