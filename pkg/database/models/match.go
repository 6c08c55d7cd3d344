package models

import (
	"time"
)

// Database model for the match information.
type MatchInfo struct {
	ID            uint   `gorm:"primaryKey"`
	MatchId       string `gorm:"type:varchar(20);uniqueIndex"`
	GameVersion   string `gorm:"type:varchar(20)"`
	MatchStart    time.Time
	MatchDuration int
	QueueId       int `gorm:"index"`
}

// Database model for saving a player performance in a given match.
// Carries the raw participant stats plus the scoring outcome.
type MatchStats struct {
	ID       uint64 `gorm:"primaryKey"`
	MatchId  uint   `gorm:"not null;index:idx_match_player,unique"`
	PlayerId uint   `gorm:"not null;index:idx_match_player,unique"`

	// Foreign keys.
	Match  MatchInfo  `gorm:"MatchId"`
	Player PlayerInfo `gorm:"PlayerId"`

	ChampionId   int
	ChampionName string `gorm:"type:varchar(30)"`
	TeamId       int
	Kills        int
	Deaths       int
	Assists      int

	TotalDamageDealtToChampions    int
	TotalDamageTaken               int
	DamageSelfMitigated            int
	TotalTimeCCDealt               int
	VisionScore                    int
	GoldEarned                     int
	TotalHeal                      int
	TotalDamageShieldedOnTeammates int
	Win                            bool

	// Scoring outcome.
	Archetype  string `gorm:"type:varchar(16)"`
	BaseScore  float64
	ScoreDelta int
}
