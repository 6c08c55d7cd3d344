package dto

import "time"

// LeaderboardEntry is a single row of the leaderboard.
type LeaderboardEntry struct {
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Tag        string `json:"tag"`
	Puuid      string `json:"puuid"`
	TotalScore int    `json:"totalScore"`
	Matches    int    `json:"matches"`
	Wins       int    `json:"wins"`
}

// PlayerProfile is the DTO of a given player profile.
type PlayerProfile struct {
	Id         uint    `json:"id"`
	DiscordId  string  `json:"discordId"`
	Name       string  `json:"name"`
	Tag        string  `json:"tag"`
	Puuid      string  `json:"puuid"`
	Region     string  `json:"region"`
	TotalScore int     `json:"totalScore"`
	Matches    int     `json:"matches"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"winRate"`
	AvgScore   float64 `json:"avgScore"`
}

// PlayerMatch is one scored match on the player history.
type PlayerMatch struct {
	MatchId      string    `json:"matchId"`
	MatchStart   time.Time `json:"matchStart"`
	Duration     int       `json:"duration"`
	ChampionName string    `json:"championName"`
	Archetype    string    `json:"archetype"`
	Kills        int       `json:"kills"`
	Deaths       int       `json:"deaths"`
	Assists      int       `json:"assists"`
	DamageDealt  int       `json:"damageDealt"`
	DamageTaken  int       `json:"damageTaken"`
	Win          bool      `json:"win"`
	BaseScore    float64   `json:"baseScore"`
	ScoreDelta   int       `json:"scoreDelta"`
}

// RegisteredPlayer is returned after a successful registration.
type RegisteredPlayer struct {
	Id     uint   `json:"id"`
	Name   string `json:"name"`
	Tag    string `json:"tag"`
	Puuid  string `json:"puuid"`
	Region string `json:"region"`
}
