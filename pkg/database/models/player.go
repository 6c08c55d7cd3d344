package models

import (
	"time"
)

// PlayerInfo is a registered player being tracked.
type PlayerInfo struct {
	ID             uint   `gorm:"primaryKey"`
	DiscordId      string `gorm:"type:varchar(32);uniqueIndex"`
	Puuid          string `gorm:"uniqueIndex;type:char(78)"` // Unique identifier.
	RiotIdGameName string `gorm:"type:varchar(100);index:idx_name_tag"`
	RiotIdTagline  string `gorm:"type:varchar(5);index:idx_name_tag"`
	Region         string `gorm:"type:varchar(5)"`

	// Running point total, updated together with each new score entry.
	TotalScore int `gorm:"default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
