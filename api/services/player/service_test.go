package playerservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tilttracker/api/dto"
	"tilttracker/api/repositories"
	"tilttracker/pkg/database/models"
	"tilttracker/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errCacheMiss = errors.New("redis: nil")

func TestGetLeaderboard(t *testing.T) {
	service, mockRepo, mockRedis, _ := setupTestService()
	defer service.memCache.Close()

	raw := []repositories.RawLeaderboardEntry{
		{Name: "Faker", Tag: "KR1", Puuid: "puuid-1", TotalScore: 2400, Matches: 12, Wins: 8},
		{Name: "Chovy", Tag: "KR1", Puuid: "puuid-2", TotalScore: 1800, Matches: 10, Wins: 5},
	}

	mockRedis.On("Get", mock.Anything, "leaderboard:limit_20").Return("", errCacheMiss)
	mockRedis.On("Set", mock.Anything, "leaderboard:limit_20", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("GetLeaderboard", mock.Anything, 20).Return(raw, nil)

	result, err := service.GetLeaderboard(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, 1, result[0].Position)
	assert.Equal(t, "Faker", result[0].Name)
	assert.Equal(t, 2400, result[0].TotalScore)
	assert.Equal(t, 2, result[1].Position)
	assert.Equal(t, "Chovy", result[1].Name)

	// The second call must come from the memory cache.
	again, err := service.GetLeaderboard(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, result, again)
	mockRepo.AssertNumberOfCalls(t, "GetLeaderboard", 1)
}

func TestGetLeaderboardFromRedis(t *testing.T) {
	service, mockRepo, mockRedis, _ := setupTestService()
	defer service.memCache.Close()

	cached := []*dto.LeaderboardEntry{
		{Position: 1, Name: "Faker", Tag: "KR1", Puuid: "puuid-1", TotalScore: 2400},
	}
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	mockRedis.On("Get", mock.Anything, "leaderboard:limit_20").Return(string(encoded), nil)

	result, err := service.GetLeaderboard(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Faker", result[0].Name)

	mockRepo.AssertNotCalled(t, "GetLeaderboard", mock.Anything, mock.Anything)
}

func TestGetProfile(t *testing.T) {
	service, mockRepo, _, _ := setupTestService()
	defer service.memCache.Close()

	player := &models.PlayerInfo{
		ID:             3,
		DiscordId:      "discord-1",
		Puuid:          "puuid-1",
		RiotIdGameName: "Faker",
		RiotIdTagline:  "KR1",
		Region:         "euw1",
		TotalScore:     2400,
	}
	totals := &repositories.RawPlayerTotals{Matches: 10, Wins: 6, AvgScore: 61.5}

	mockRepo.On("GetPlayerByPuuid", mock.Anything, "puuid-1").Return(player, nil)
	mockRepo.On("GetPlayerTotals", mock.Anything, uint(3)).Return(totals, nil)

	profile, err := service.GetProfile(context.Background(), "puuid-1")
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "Faker", profile.Name)
	assert.Equal(t, "KR1", profile.Tag)
	assert.Equal(t, 2400, profile.TotalScore)
	assert.Equal(t, 10, profile.Matches)
	assert.Equal(t, 6, profile.Wins)
	assert.InDelta(t, 60.0, profile.WinRate, 1e-9)
	assert.InDelta(t, 61.5, profile.AvgScore, 1e-9)
}

func TestGetProfileNotFound(t *testing.T) {
	service, mockRepo, _, _ := setupTestService()
	defer service.memCache.Close()

	mockRepo.On("GetPlayerByPuuid", mock.Anything, "puuid-missing").
		Return((*models.PlayerInfo)(nil), nil)

	profile, err := service.GetProfile(context.Background(), "puuid-missing")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetMatches(t *testing.T) {
	service, mockRepo, mockRedis, _ := setupTestService()
	defer service.memCache.Close()

	player := &models.PlayerInfo{ID: 3, Puuid: "puuid-1"}
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	raw := []repositories.RawPlayerMatch{
		{
			MatchId: "EUW1_1", MatchStart: start, Duration: 1260,
			ChampionName: "Malphite", Archetype: "TANK",
			Kills: 10, Deaths: 4, Assists: 10,
			DamageDealt: 20000, DamageTaken: 50000,
			Win: true, BaseScore: 74.2, ScoreDelta: 400,
		},
	}

	mockRepo.On("GetPlayerByPuuid", mock.Anything, "puuid-1").Return(player, nil)
	mockRedis.On("Get", mock.Anything, "matches:puuid-1:limit_20").Return("", errCacheMiss)
	mockRedis.On("Set", mock.Anything, "matches:puuid-1:limit_20", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("GetPlayerMatches", mock.Anything, uint(3), 20).Return(raw, nil)

	matches, err := service.GetMatches(context.Background(), "puuid-1", 20)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, "EUW1_1", matches[0].MatchId)
	assert.Equal(t, "Malphite", matches[0].ChampionName)
	assert.Equal(t, "TANK", matches[0].Archetype)
	assert.Equal(t, 400, matches[0].ScoreDelta)
	assert.True(t, matches[0].Win)
}

func TestGetMatchesUnknownPlayer(t *testing.T) {
	service, mockRepo, _, _ := setupTestService()
	defer service.memCache.Close()

	mockRepo.On("GetPlayerByPuuid", mock.Anything, "puuid-missing").
		Return((*models.PlayerInfo)(nil), nil)

	matches, err := service.GetMatches(context.Background(), "puuid-missing", 20)
	require.NoError(t, err)
	assert.Nil(t, matches)
}

func TestRegisterPlayer(t *testing.T) {
	service, mockRepo, _, mockAccounts := setupTestService()
	defer service.memCache.Close()

	account := &riot.Account{Puuid: "puuid-new", GameName: "Faker", TagLine: "KR1"}
	mockAccounts.On("GetAccountByRiotId", "faker", "kr1").Return(account, nil)
	mockRepo.On("GetPlayerByPuuid", mock.Anything, "puuid-new").
		Return((*models.PlayerInfo)(nil), nil)
	mockRepo.On("CreatePlayer", mock.Anything, mock.AnythingOfType("*models.PlayerInfo")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.PlayerInfo).ID = 11
		}).
		Return(nil)

	result, err := service.RegisterPlayer(context.Background(), "discord-1", "faker", "kr1", "euw1")
	require.NoError(t, err)

	// The stored identity comes from the resolved account, not the input.
	assert.Equal(t, uint(11), result.Id)
	assert.Equal(t, "Faker", result.Name)
	assert.Equal(t, "KR1", result.Tag)
	assert.Equal(t, "puuid-new", result.Puuid)
	assert.Equal(t, "euw1", result.Region)
}

func TestRegisterPlayerAlreadyRegistered(t *testing.T) {
	service, mockRepo, _, mockAccounts := setupTestService()
	defer service.memCache.Close()

	account := &riot.Account{Puuid: "puuid-known", GameName: "Faker", TagLine: "KR1"}
	mockAccounts.On("GetAccountByRiotId", "Faker", "KR1").Return(account, nil)
	mockRepo.On("GetPlayerByPuuid", mock.Anything, "puuid-known").
		Return(&models.PlayerInfo{ID: 2, Puuid: "puuid-known"}, nil)

	_, err := service.RegisterPlayer(context.Background(), "discord-1", "Faker", "KR1", "euw1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	mockRepo.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
}

func TestRegisterPlayerUnknownAccount(t *testing.T) {
	service, _, _, mockAccounts := setupTestService()
	defer service.memCache.Close()

	mockAccounts.On("GetAccountByRiotId", "Nobody", "EUW").
		Return((*riot.Account)(nil), errors.New("not found"))

	_, err := service.RegisterPlayer(context.Background(), "discord-1", "Nobody", "EUW", "euw1")
	assert.Error(t, err)
}
