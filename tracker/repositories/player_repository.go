package repositories

import (
	"errors"
	"fmt"
	"tilttracker/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerRepository defines the public interface for handling player related data.
type PlayerRepository interface {
	CreatePlayer(player *models.PlayerInfo) error
	GetPlayerByDiscordId(discordId string) (*models.PlayerInfo, error)
	GetPlayerByNameTag(gameName string, tagLine string) (*models.PlayerInfo, error)
	GetPlayerByPuuid(puuid string) (*models.PlayerInfo, error)
	ListPlayers() ([]*models.PlayerInfo, error)
}

// playerRepository is the repository instance.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates and return the player repository.
func NewPlayerRepository(db *gorm.DB) (PlayerRepository, error) {
	return &playerRepository{db: db}, nil
}

// CreatePlayer registers a single player for tracking.
func (pr *playerRepository) CreatePlayer(player *models.PlayerInfo) error {
	return pr.db.Create(player).Error
}

// GetPlayerByDiscordId returns a given player by his Discord id.
func (pr *playerRepository) GetPlayerByDiscordId(discordId string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	if err := pr.db.Where("discord_id = ?", discordId).First(&player).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("player not found: %v", err)
	}

	return &player, nil
}

// GetPlayerByNameTag returns a given player by his gamename and tag.
func (pr *playerRepository) GetPlayerByNameTag(gameName string, tagLine string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	if err := pr.db.
		Where("riot_id_game_name = ? AND riot_id_tagline = ?", gameName, tagLine).
		First(&player).Error; err != nil {

		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("player not found: %v", err)
	}

	return &player, nil
}

// GetPlayerByPuuid returns a given player by his PUUID.
func (pr *playerRepository) GetPlayerByPuuid(puuid string) (*models.PlayerInfo, error) {
	var player models.PlayerInfo
	if err := pr.db.Where("puuid = ?", puuid).First(&player).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("player not found: %v", err)
	}

	return &player, nil
}

// ListPlayers returns every registered player.
func (pr *playerRepository) ListPlayers() ([]*models.PlayerInfo, error) {
	var players []*models.PlayerInfo
	if err := pr.db.Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}

	return players, nil
}
