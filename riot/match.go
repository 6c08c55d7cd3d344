package riot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tilttracker/pkg/messages"
	"tilttracker/riot/requests"
)

// AramQueueId is the queue identifier for ARAM matches on the match_v5 endpoint.
const AramQueueId = 450

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// Match metadata, holding the match id.
type MatchMetadata struct {
	MatchId string `json:"matchId"`
}

// Match information.
type MatchInfo struct {
	GameCreation RiotTime      `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"`
	GameMode     string        `json:"gameMode"`
	GameVersion  string        `json:"gameVersion"`
	Participants []MatchPlayer `json:"participants"`
	QueueId      int           `json:"queueId"`
}

// Player results for a given match.
// Only the stats relevant for scoring are kept.
type MatchPlayer struct {
	Assists                        int    `json:"assists"`
	ChampionId                     int    `json:"championId"`
	ChampionName                   string `json:"championName"`
	DamageSelfMitigated            int    `json:"damageSelfMitigated"`
	Deaths                         int    `json:"deaths"`
	GoldEarned                     int    `json:"goldEarned"`
	Kills                          int    `json:"kills"`
	Puuid                          string `json:"puuid"`
	RiotIdGameName                 string `json:"riotIdGameName"`
	RiotIdTagline                  string `json:"riotIdTagline"`
	TeamId                         int    `json:"teamId"`
	TotalDamageDealtToChampions    int    `json:"totalDamageDealtToChampions"`
	TotalDamageShieldedOnTeammates int    `json:"totalDamageShieldedOnTeammates"`
	TotalDamageTaken               int    `json:"totalDamageTaken"`
	TotalHeal                      int    `json:"totalHeal"`
	TotalTimeCCDealt               int    `json:"totalTimeCCDealt"`
	VisionScore                    int    `json:"visionScore"`
	Win                            bool   `json:"win"`
}

// Get the most recent ARAM match ids of a given player.
func (f *Fetcher) GetRecentAramMatchIds(puuid string, count int) ([]string, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?queue=%d&count=%d",
		f.region, puuid, AramQueueId, count)

	resp, err := f.authGet(url)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %d", messages.BadStatusCodeMsg, resp.StatusCode)
	}

	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return matchIds, nil
}

// Get a given match data.
func (f *Fetcher) GetMatch(matchId string) (*MatchData, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", f.region, matchId)

	resp, err := f.authGet(url)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %d", messages.BadStatusCodeMsg, resp.StatusCode)
	}

	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return &matchData, nil
}

// authGet waits for the rate limiter and does a authenticated GET.
// A 429 is retried once after honoring the Retry-After header.
func (f *Fetcher) authGet(url string) (*http.Response, error) {
	f.limiter.WaitApi()

	resp, err := requests.AuthRequest(url, "GET")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.RequestFailedMsg, err)
	}

	if resp.StatusCode != http.StatusTooManyRequests {
		return resp, nil
	}

	retryAfter := 1
	if header := resp.Header.Get("Retry-After"); header != "" {
		if parsed, err := strconv.Atoi(header); err == nil {
			retryAfter = parsed
		}
	}
	resp.Body.Close()
	time.Sleep(time.Duration(retryAfter) * time.Second)

	f.limiter.WaitApi()
	resp, err = requests.AuthRequest(url, "GET")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", messages.RequestFailedMsg, err)
	}

	return resp, nil
}
