package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tilttracker/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerRepository is the public interface for accessing the player repository.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *models.PlayerInfo) error
	GetLeaderboard(ctx context.Context, limit int) ([]RawLeaderboardEntry, error)
	GetPlayerByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error)
	GetPlayerMatches(ctx context.Context, playerId uint, limit int) ([]RawPlayerMatch, error)
	GetPlayerTotals(ctx context.Context, playerId uint) (*RawPlayerTotals, error)
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// RawLeaderboardEntry is the raw data of a single leaderboard row.
type RawLeaderboardEntry struct {
	Name       string `gorm:"column:riot_id_game_name"`
	Tag        string `gorm:"column:riot_id_tagline"`
	Puuid      string `gorm:"column:puuid"`
	TotalScore int    `gorm:"column:total_score"`
	Matches    int    `gorm:"column:matches"`
	Wins       int    `gorm:"column:wins"`
}

// RawPlayerMatch is the raw data of one scored match on the history.
type RawPlayerMatch struct {
	MatchId      string    `gorm:"column:match_id"`
	MatchStart   time.Time `gorm:"column:match_start"`
	Duration     int       `gorm:"column:match_duration"`
	ChampionName string    `gorm:"column:champion_name"`
	Archetype    string    `gorm:"column:archetype"`
	Kills        int       `gorm:"column:kills"`
	Deaths       int       `gorm:"column:deaths"`
	Assists      int       `gorm:"column:assists"`
	DamageDealt  int       `gorm:"column:total_damage_dealt_to_champions"`
	DamageTaken  int       `gorm:"column:total_damage_taken"`
	Win          bool      `gorm:"column:win"`
	BaseScore    float64   `gorm:"column:base_score"`
	ScoreDelta   int       `gorm:"column:score_delta"`
}

// RawPlayerTotals aggregates the scored matches of one player.
type RawPlayerTotals struct {
	Matches  int     `gorm:"column:matches"`
	Wins     int     `gorm:"column:wins"`
	AvgScore float64 `gorm:"column:avg_score"`
}

// CreatePlayer registers a new tracked player.
func (pr *playerRepository) CreatePlayer(ctx context.Context, player *models.PlayerInfo) error {
	return pr.db.WithContext(ctx).Create(player).Error
}

// GetLeaderboard returns the players ordered by their running total.
func (pr *playerRepository) GetLeaderboard(ctx context.Context, limit int) ([]RawLeaderboardEntry, error) {
	var entries []RawLeaderboardEntry

	err := pr.db.WithContext(ctx).
		Model(&models.PlayerInfo{}).
		Select(`player_infos.riot_id_game_name,
			player_infos.riot_id_tagline,
			player_infos.puuid,
			player_infos.total_score,
			COUNT(match_stats.id) AS matches,
			COUNT(match_stats.id) FILTER (WHERE match_stats.win) AS wins`).
		Joins("LEFT JOIN match_stats ON match_stats.player_id = player_infos.id").
		Group("player_infos.id").
		Order("player_infos.total_score DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// GetPlayerByPuuid returns a given player by his PUUID.
func (pr *playerRepository) GetPlayerByPuuid(ctx context.Context, puuid string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	if err := pr.db.WithContext(ctx).Where("puuid = ?", puuid).First(&player).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("player not found: %v", err)
	}

	return &player, nil
}

// GetPlayerMatches returns the latest scored matches of a player.
func (pr *playerRepository) GetPlayerMatches(ctx context.Context, playerId uint, limit int) ([]RawPlayerMatch, error) {
	var matches []RawPlayerMatch

	err := pr.db.WithContext(ctx).
		Model(&models.MatchStats{}).
		Select(`match_infos.match_id,
			match_infos.match_start,
			match_infos.match_duration,
			match_stats.champion_name,
			match_stats.archetype,
			match_stats.kills,
			match_stats.deaths,
			match_stats.assists,
			match_stats.total_damage_dealt_to_champions,
			match_stats.total_damage_taken,
			match_stats.win,
			match_stats.base_score,
			match_stats.score_delta`).
		Joins("JOIN match_infos ON match_infos.id = match_stats.match_id").
		Where("match_stats.player_id = ?", playerId).
		Order("match_infos.match_start DESC").
		Limit(limit).
		Scan(&matches).Error
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// GetPlayerTotals aggregates the match history of one player.
func (pr *playerRepository) GetPlayerTotals(ctx context.Context, playerId uint) (*RawPlayerTotals, error) {
	var totals RawPlayerTotals

	err := pr.db.WithContext(ctx).
		Model(&models.MatchStats{}).
		Select(`COUNT(id) AS matches,
			COUNT(id) FILTER (WHERE win) AS wins,
			COALESCE(AVG(base_score), 0) AS avg_score`).
		Where("player_id = ?", playerId).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return &totals, nil
}
