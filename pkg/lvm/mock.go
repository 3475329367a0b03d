package lvm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a Runner whose results are scripted with testify/mock.
type MockRunner struct {
	mock.Mock
}

// Run implements Runner. Expectations match on (ctx, name, args).
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ret := m.Called(ctx, name, args)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}
