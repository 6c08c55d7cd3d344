// Package playerservice serves the leaderboard, player profiles and
// match histories, with a memory cache in front of Redis in front of
// the repository.
package playerservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tilttracker/api/cache"
	"tilttracker/api/dto"
	"tilttracker/api/repositories"
	"tilttracker/pkg/database/models"
	"tilttracker/pkg/messages"
	"tilttracker/riot"

	"gorm.io/gorm"
)

const (
	leaderboardMemoryCacheDuration = time.Minute
	leaderboardRedisCacheDuration  = 5 * time.Minute
	matchesMemoryCacheDuration     = time.Minute
	matchesRedisCacheDuration      = 5 * time.Minute
	redisTimeout                   = 200 * time.Millisecond
)

// ErrAlreadyRegistered is returned when the Riot account is already tracked.
var ErrAlreadyRegistered = errors.New("player is already registered")

// PlayerRedisClient lists the Redis calls used by the service.
type PlayerRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// AccountResolver resolves a Riot ID to an account.
type AccountResolver interface {
	GetAccountByRiotId(gameName string, tagLine string) (*riot.Account, error)
}

// PlayerService with its caches and repository.
type PlayerService struct {
	db               *gorm.DB
	memCache         *cache.MemCache
	redis            PlayerRedisClient
	accounts         AccountResolver
	PlayerRepository repositories.PlayerRepository
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	DB       *gorm.DB
	MemCache *cache.MemCache
	Redis    PlayerRedisClient
	Accounts AccountResolver
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		accounts:         deps.Accounts,
		PlayerRepository: repositories.NewPlayerRepository(deps.DB),
	}
}

// GetLeaderboard returns the players ordered by their running total.
func (ps *PlayerService) GetLeaderboard(ctx context.Context, limit int) ([]*dto.LeaderboardEntry, error) {
	key := "leaderboard:limit_" + strconv.Itoa(limit)

	if mem := ps.leaderboardFromMemCache(key); mem != nil {
		return mem, nil
	}

	if cached := ps.leaderboardFromRedis(key); cached != nil {
		ps.memCache.Set(key, cached, leaderboardMemoryCacheDuration)
		return cached, nil
	}

	raw, err := ps.PlayerRepository.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.LeaderboardEntry, len(raw))
	for i, row := range raw {
		entries[i] = &dto.LeaderboardEntry{
			Position:   i + 1,
			Name:       row.Name,
			Tag:        row.Tag,
			Puuid:      row.Puuid,
			TotalScore: row.TotalScore,
			Matches:    row.Matches,
			Wins:       row.Wins,
		}
	}

	ps.populateCaches(key, entries, leaderboardMemoryCacheDuration, leaderboardRedisCacheDuration)

	return entries, nil
}

// GetProfile returns the profile and totals of a given player.
func (ps *PlayerService) GetProfile(ctx context.Context, puuid string) (*dto.PlayerProfile, error) {
	player, err := ps.PlayerRepository.GetPlayerByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, nil
	}

	totals, err := ps.PlayerRepository.GetPlayerTotals(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	winRate := 0.0
	if totals.Matches > 0 {
		winRate = float64(totals.Wins) / float64(totals.Matches) * 100
	}

	return &dto.PlayerProfile{
		Id:         player.ID,
		DiscordId:  player.DiscordId,
		Name:       player.RiotIdGameName,
		Tag:        player.RiotIdTagline,
		Puuid:      player.Puuid,
		Region:     player.Region,
		TotalScore: player.TotalScore,
		Matches:    totals.Matches,
		Wins:       totals.Wins,
		WinRate:    winRate,
		AvgScore:   totals.AvgScore,
	}, nil
}

// GetMatches returns the latest scored matches of a given player.
func (ps *PlayerService) GetMatches(ctx context.Context, puuid string, limit int) ([]*dto.PlayerMatch, error) {
	player, err := ps.PlayerRepository.GetPlayerByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, nil
	}

	key := "matches:" + puuid + ":limit_" + strconv.Itoa(limit)

	if mem := ps.matchesFromMemCache(key); mem != nil {
		return mem, nil
	}

	if cached := ps.matchesFromRedis(key); cached != nil {
		ps.memCache.Set(key, cached, matchesMemoryCacheDuration)
		return cached, nil
	}

	raw, err := ps.PlayerRepository.GetPlayerMatches(ctx, player.ID, limit)
	if err != nil {
		return nil, err
	}

	matches := make([]*dto.PlayerMatch, len(raw))
	for i, row := range raw {
		matches[i] = &dto.PlayerMatch{
			MatchId:      row.MatchId,
			MatchStart:   row.MatchStart,
			Duration:     row.Duration,
			ChampionName: row.ChampionName,
			Archetype:    row.Archetype,
			Kills:        row.Kills,
			Deaths:       row.Deaths,
			Assists:      row.Assists,
			DamageDealt:  row.DamageDealt,
			DamageTaken:  row.DamageTaken,
			Win:          row.Win,
			BaseScore:    row.BaseScore,
			ScoreDelta:   row.ScoreDelta,
		}
	}

	ps.populateCaches(key, matches, matchesMemoryCacheDuration, matchesRedisCacheDuration)

	return matches, nil
}

// RegisterPlayer resolves the Riot ID and starts tracking the player.
func (ps *PlayerService) RegisterPlayer(ctx context.Context, discordId string, gameName string, tagLine string, region string) (*dto.RegisteredPlayer, error) {
	account, err := ps.accounts.GetAccountByRiotId(gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.CouldNotFindPlayer, err)
	}

	existing, err := ps.PlayerRepository.GetPlayerByPuuid(ctx, account.Puuid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	player := &models.PlayerInfo{
		DiscordId:      discordId,
		Puuid:          account.Puuid,
		RiotIdGameName: account.GameName,
		RiotIdTagline:  account.TagLine,
		Region:         region,
	}
	if err := ps.PlayerRepository.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	return &dto.RegisteredPlayer{
		Id:     player.ID,
		Name:   player.RiotIdGameName,
		Tag:    player.RiotIdTagline,
		Puuid:  player.Puuid,
		Region: player.Region,
	}, nil
}

// leaderboardFromMemCache retrieves the leaderboard from the memory cache.
func (ps *PlayerService) leaderboardFromMemCache(key string) []*dto.LeaderboardEntry {
	if memCachedData := ps.memCache.Get(key); memCachedData != nil {
		return memCachedData.([]*dto.LeaderboardEntry)
	}
	return nil
}

// leaderboardFromRedis retrieves the leaderboard from the redis.
func (ps *PlayerService) leaderboardFromRedis(key string) []*dto.LeaderboardEntry {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	redisCached, err := ps.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var entries []*dto.LeaderboardEntry
	if err := json.Unmarshal([]byte(redisCached), &entries); err != nil {
		return nil
	}

	return entries
}

// matchesFromMemCache retrieves a match history from the memory cache.
func (ps *PlayerService) matchesFromMemCache(key string) []*dto.PlayerMatch {
	if memCachedData := ps.memCache.Get(key); memCachedData != nil {
		return memCachedData.([]*dto.PlayerMatch)
	}
	return nil
}

// matchesFromRedis retrieves a match history from the redis.
func (ps *PlayerService) matchesFromRedis(key string) []*dto.PlayerMatch {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	redisCached, err := ps.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var matches []*dto.PlayerMatch
	if err := json.Unmarshal([]byte(redisCached), &matches); err != nil {
		return nil
	}

	return matches
}

// populateCaches saves the value on both the memory cache and the redis.
func (ps *PlayerService) populateCaches(key string, value any, memTTL time.Duration, redisTTL time.Duration) {
	ps.memCache.Set(key, value, memTTL)

	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	// A redis failure only costs a database hit later.
	_ = ps.redis.Set(ctx, key, encoded, redisTTL)
}
