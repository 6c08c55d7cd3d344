package models

import (
	"time"
)

// ScoreEntry contains one point change applied to a player for one match.
// The history allows rebuilding the running total at any moment.
type ScoreEntry struct {
	ID uint `gorm:"primaryKey"`

	// Reference to the player that received the points.
	PlayerId uint       `gorm:"index:idx_player_time,priority:1"`
	Player   PlayerInfo `gorm:"PlayerId"`

	MatchId uint      `gorm:"index"`
	Match   MatchInfo `gorm:"MatchId"`

	Delta      int
	TotalAfter int
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_player_time,priority:2"`
}
