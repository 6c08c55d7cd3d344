// Package testutil holds the shared mocks for the api service tests.
package testutil

import (
	"context"
	"time"

	"tilttracker/api/repositories"
	"tilttracker/pkg/database/models"
	"tilttracker/riot"

	"github.com/stretchr/testify/mock"
)

// Player mock implementations.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) CreatePlayer(ctx context.Context, player *models.PlayerInfo) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetLeaderboard(ctx context.Context, limit int) ([]repositories.RawLeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]repositories.RawLeaderboardEntry), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error) {
	args := m.Called(ctx, puuid)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerMatches(ctx context.Context, playerId uint, limit int) ([]repositories.RawPlayerMatch, error) {
	args := m.Called(ctx, playerId, limit)
	return args.Get(0).([]repositories.RawPlayerMatch), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerTotals(ctx context.Context, playerId uint) (*repositories.RawPlayerTotals, error) {
	args := m.Called(ctx, playerId)
	return args.Get(0).(*repositories.RawPlayerTotals), args.Error(1)
}

// Redis mock implementations.
type MockPlayerRedisClient struct {
	mock.Mock
}

func (m *MockPlayerRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockPlayerRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Account resolver mock implementations.
type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) GetAccountByRiotId(gameName string, tagLine string) (*riot.Account, error) {
	args := m.Called(gameName, tagLine)
	return args.Get(0).(*riot.Account), args.Error(1)
}
