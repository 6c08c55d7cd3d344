package repositories

import (
	"tilttracker/pkg/database/models"

	"gorm.io/gorm"
)

// ScoreRepository defines the public interface for applying point changes.
type ScoreRepository interface {
	ApplyDelta(playerId uint, matchId uint, delta int) (int, error)
	GetTotalScore(playerId uint) (int, error)
}

// scoreRepository is the repository instance.
type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates and return the score repository.
func NewScoreRepository(db *gorm.DB) (ScoreRepository, error) {
	return &scoreRepository{db: db}, nil
}

// ApplyDelta applies a point change to a player and records the history entry.
// The total update and the history insert run in a single transaction.
// Returns the new running total.
func (sr *scoreRepository) ApplyDelta(playerId uint, matchId uint, delta int) (int, error) {
	var totalAfter int

	err := sr.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&models.PlayerInfo{}).
			Where("id = ?", playerId).
			UpdateColumn("total_score", gorm.Expr("total_score + ?", delta)).Error
		if err != nil {
			return err
		}

		var player models.PlayerInfo
		if err := tx.Select("total_score").Where("id = ?", playerId).First(&player).Error; err != nil {
			return err
		}
		totalAfter = player.TotalScore

		entry := &models.ScoreEntry{
			PlayerId:   playerId,
			MatchId:    matchId,
			Delta:      delta,
			TotalAfter: totalAfter,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return 0, err
	}

	return totalAfter, nil
}

// GetTotalScore returns the current running total of a player.
func (sr *scoreRepository) GetTotalScore(playerId uint) (int, error) {
	var player models.PlayerInfo
	err := sr.db.
		Select("total_score").
		Where("id = ?", playerId).
		First(&player).Error
	if err != nil {
		return 0, err
	}

	return player.TotalScore, nil
}
