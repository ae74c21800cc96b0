package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clanbot/models"
)

// MockStatsFetcher is a mock implementation of StatsFetcher
type MockStatsFetcher struct {
	mock.Mock
}

func (m *MockStatsFetcher) Fetch(ctx context.Context) ([]models.PlayerStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerStat), args.Error(1)
}

// MockSnapshotStore is a mock implementation of SnapshotStore
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Load(week int) (models.WeekSnapshot, error) {
	args := m.Called(week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.WeekSnapshot), args.Error(1)
}

func (m *MockSnapshotStore) Save(week int, snap models.WeekSnapshot) error {
	args := m.Called(week, snap)
	return args.Error(0)
}

// MockRenderer is a mock implementation of Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, week int) (string, error) {
	args := m.Called(ctx, week)
	return args.String(0), args.Error(1)
}

// MockLeaderboardService is a mock implementation of LeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Generate(ctx context.Context) (*models.LeaderboardResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaderboardResult), args.Error(1)
}
