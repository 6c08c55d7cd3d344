// Package testutil holds the shared mocks for the tracker service tests.
package testutil

import (
	"context"
	"time"

	"tilttracker/pkg/database/models"
	"tilttracker/publisher"
	"tilttracker/riot"

	"github.com/stretchr/testify/mock"
)

// Riot client mock implementations.
type MockRiotClient struct {
	mock.Mock
}

func (m *MockRiotClient) GetMatch(matchId string) (*riot.MatchData, error) {
	args := m.Called(matchId)
	return args.Get(0).(*riot.MatchData), args.Error(1)
}

func (m *MockRiotClient) GetRecentAramMatchIds(puuid string, count int) ([]string, error) {
	args := m.Called(puuid, count)
	return args.Get(0).([]string), args.Error(1)
}

// Publisher mock implementations.
type MockResultPublisher struct {
	mock.Mock
}

func (m *MockResultPublisher) PublishMatchResult(report publisher.MatchReport) error {
	args := m.Called(report)
	return args.Error(0)
}

// Marker store mock implementations.
type MockMarkerStore struct {
	mock.Mock
}

func (m *MockMarkerStore) SetIfAbsent(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}

// Player repository mock implementations.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) CreatePlayer(player *models.PlayerInfo) error {
	args := m.Called(player)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetPlayerByDiscordId(discordId string) (*models.PlayerInfo, error) {
	args := m.Called(discordId)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerByNameTag(gameName string, tagLine string) (*models.PlayerInfo, error) {
	args := m.Called(gameName, tagLine)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerByPuuid(puuid string) (*models.PlayerInfo, error) {
	args := m.Called(puuid)
	return args.Get(0).(*models.PlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) ListPlayers() ([]*models.PlayerInfo, error) {
	args := m.Called()
	return args.Get(0).([]*models.PlayerInfo), args.Error(1)
}

// Match repository mock implementations.
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) CreateMatch(match *models.MatchInfo) error {
	args := m.Called(match)
	return args.Error(0)
}

func (m *MockMatchRepository) CreateMatchStats(stats *models.MatchStats) error {
	args := m.Called(stats)
	return args.Error(0)
}

func (m *MockMatchRepository) GetMatchByRiotId(matchId string) (*models.MatchInfo, error) {
	args := m.Called(matchId)
	return args.Get(0).(*models.MatchInfo), args.Error(1)
}

func (m *MockMatchRepository) HasStatsForPlayer(matchId uint, playerId uint) (bool, error) {
	args := m.Called(matchId, playerId)
	return args.Bool(0), args.Error(1)
}

// Score repository mock implementations.
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) ApplyDelta(playerId uint, matchId uint, delta int) (int, error) {
	args := m.Called(playerId, matchId, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockScoreRepository) GetTotalScore(playerId uint) (int, error) {
	args := m.Called(playerId)
	return args.Int(0), args.Error(1)
}

// NoopLogger discards the trace output on tests.
type NoopLogger struct{}

func (NoopLogger) Infof(format string, v ...any)  {}
func (NoopLogger) Errorf(format string, v ...any) {}
