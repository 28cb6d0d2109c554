package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// RefreshStoreMock is a testify/mock for tokenstore.Store.
type RefreshStoreMock struct{ mock.Mock }

func (m *RefreshStoreMock) Mint(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *RefreshStoreMock) Rotate(ctx context.Context, token string, ttl time.Duration) (uint, string, error) {
	args := m.Called(ctx, token, ttl)
	var id uint
	if v := args.Get(0); v != nil {
		id = v.(uint)
	}
	return id, args.String(1), args.Error(2)
}

func (m *RefreshStoreMock) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
