//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/set-game/internal/storage"
)

// MockScoreboard 成绩榜 mock
type MockScoreboard struct {
	mock.Mock
}

func (m *MockScoreboard) RecordResult(ctx context.Context, res storage.Result) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockScoreboard) Top(ctx context.Context, limit int) ([]storage.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.LeaderboardEntry), args.Error(1)
}
