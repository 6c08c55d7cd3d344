package repositories

import (
	"errors"
	"fmt"
	"tilttracker/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository defines the public interface for handling match related data.
type MatchRepository interface {
	CreateMatch(match *models.MatchInfo) error
	CreateMatchStats(stats *models.MatchStats) error
	GetMatchByRiotId(matchId string) (*models.MatchInfo, error)
	HasStatsForPlayer(matchId uint, playerId uint) (bool, error)
}

// matchRepository is the repository instance.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates and return the match repository.
func NewMatchRepository(db *gorm.DB) (MatchRepository, error) {
	return &matchRepository{db: db}, nil
}

// CreateMatch saves the match metadata.
// Conflicts on the riot match id just reload the existing row.
func (mr *matchRepository) CreateMatch(match *models.MatchInfo) error {
	err := mr.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "match_id"}},
			DoNothing: true,
		}).
		Create(match).Error
	if err != nil {
		return err
	}

	// On conflict the id isn't filled, so fetch the winning row.
	if match.ID == 0 {
		existing, err := mr.GetMatchByRiotId(match.MatchId)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("match %s not found after insert", match.MatchId)
		}
		*match = *existing
	}

	return nil
}

// CreateMatchStats saves the stats of one player for one match.
func (mr *matchRepository) CreateMatchStats(stats *models.MatchStats) error {
	return mr.db.Create(stats).Error
}

// GetMatchByRiotId returns a given match by the riot match id.
func (mr *matchRepository) GetMatchByRiotId(matchId string) (*models.MatchInfo, error) {
	var match models.MatchInfo
	if err := mr.db.Where("match_id = ?", matchId).First(&match).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("match not found: %v", err)
	}

	return &match, nil
}

// HasStatsForPlayer verifies if a player was already scored for a given match.
func (mr *matchRepository) HasStatsForPlayer(matchId uint, playerId uint) (bool, error) {
	var count int64
	err := mr.db.
		Model(&models.MatchStats{}).
		Where("match_id = ? AND player_id = ?", matchId, playerId).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
