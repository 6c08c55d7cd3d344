// Package watcher polls the Riot API for new ARAM matches of the
// registered players, scores them and publishes the results.
package watcher

import (
	"context"
	"fmt"
	"time"

	"tilttracker/pkg/config"
	"tilttracker/pkg/database/models"
	"tilttracker/pkg/messages"
	"tilttracker/publisher"
	"tilttracker/riot"
	"tilttracker/scoring"
	"tilttracker/tracker/repositories"
)

// Prefix for the Redis markers of already processed matches.
const processedKeyPrefix = "tracker:processed:"

// How long a processed marker stays alive. The database unique index
// is the real guarantee, the marker only saves API calls.
const processedMarkerTTL = 7 * 24 * time.Hour

// RiotClient lists the Riot API calls the watcher depends on.
type RiotClient interface {
	GetMatch(matchId string) (*riot.MatchData, error)
	GetRecentAramMatchIds(puuid string, count int) ([]string, error)
}

// ScoreEngine computes the score of a single match for a single player.
type ScoreEngine interface {
	ComputeMatchScore(targetPuuid string, teammates []scoring.ParticipantStats) scoring.MatchScore
}

// ResultPublisher publishes a scored match.
type ResultPublisher interface {
	PublishMatchResult(report publisher.MatchReport) error
}

// MarkerStore marks matches as processed so they aren't fetched twice.
type MarkerStore interface {
	SetIfAbsent(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
}

// Logger used for the per run trace.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// WatcherService handles one polling cycle over all registered players.
type WatcherService struct {
	client     RiotClient
	engine     ScoreEngine
	publisher  ResultPublisher
	markers    MarkerStore
	logger     Logger
	PlayerRepo repositories.PlayerRepository
	MatchRepo  repositories.MatchRepository
	ScoreRepo  repositories.ScoreRepository
}

// NewWatcherService creates a new watcher service.
func NewWatcherService(
	client RiotClient,
	engine ScoreEngine,
	resultPublisher ResultPublisher,
	markers MarkerStore,
	logger Logger,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	scoreRepo repositories.ScoreRepository,
) *WatcherService {
	return &WatcherService{
		client:     client,
		engine:     engine,
		publisher:  resultPublisher,
		markers:    markers,
		logger:     logger,
		PlayerRepo: playerRepo,
		MatchRepo:  matchRepo,
		ScoreRepo:  scoreRepo,
	}
}

// RunOnce polls every registered player for new matches.
// A failing player doesn't interrupt the others.
func (w *WatcherService) RunOnce(ctx context.Context) error {
	players, err := w.PlayerRepo.ListPlayers()
	if err != nil {
		return fmt.Errorf("couldn't list the players: %w", err)
	}

	for _, player := range players {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := w.pollPlayer(ctx, player); err != nil {
			w.logger.Errorf("Poll failed for %s#%s: %v", player.RiotIdGameName, player.RiotIdTagline, err)
		}
	}

	return nil
}

// pollPlayer fetches and processes the recent matches of one player.
func (w *WatcherService) pollPlayer(ctx context.Context, player *models.PlayerInfo) error {
	matchIds, err := w.client.GetRecentAramMatchIds(player.Puuid, config.Tracker.MatchesPerPoll)
	if err != nil {
		return err
	}

	for _, matchId := range matchIds {
		fresh, err := w.markers.SetIfAbsent(ctx, processedKey(matchId, player.Puuid), 1, processedMarkerTTL)
		if err != nil {
			// Redis being down shouldn't stop processing, the database
			// unique index still prevents double scoring.
			w.logger.Errorf("Couldn't set the processed marker for %s: %v", matchId, err)
		} else if !fresh {
			continue
		}

		if err := w.ProcessMatch(matchId, player); err != nil {
			w.logger.Errorf("Couldn't process the match %s: %v", matchId, err)
		}
	}

	return nil
}

// ProcessMatch scores and persists a single match for a single player.
func (w *WatcherService) ProcessMatch(matchId string, player *models.PlayerInfo) error {
	// The match may have been scored before the marker existed.
	existing, err := w.MatchRepo.GetMatchByRiotId(matchId)
	if err != nil {
		return err
	}
	if existing != nil {
		scored, err := w.MatchRepo.HasStatsForPlayer(existing.ID, player.ID)
		if err != nil {
			return err
		}
		if scored {
			return nil
		}
	}

	matchData, err := w.client.GetMatch(matchId)
	if err != nil {
		return err
	}

	if matchData.Info.QueueId != riot.AramQueueId {
		return fmt.Errorf("%s: queue %d", messages.MatchNotAram, matchData.Info.QueueId)
	}

	target, teammates := extractTeam(player.Puuid, matchData)
	if target == nil {
		return fmt.Errorf("%s: %s", messages.PlayerNotInMatch, player.Puuid)
	}

	result := w.engine.ComputeMatchScore(player.Puuid, teammates)
	if result.Failed {
		// Skip instead of persisting a wrong score. The marker keeps the
		// match from being refetched every poll.
		w.logger.Errorf("%s for %s on %s: %s", messages.ScoringFailedMsg, player.Puuid, matchId, result.Reason)
		return nil
	}

	match := existing
	if match == nil {
		match = &models.MatchInfo{
			MatchId:       matchId,
			GameVersion:   matchData.Info.GameVersion,
			MatchStart:    matchData.Info.GameCreation.Time(),
			MatchDuration: matchData.Info.GameDuration,
			QueueId:       matchData.Info.QueueId,
		}
		if err := w.MatchRepo.CreateMatch(match); err != nil {
			return err
		}
	}

	stats := buildMatchStats(match.ID, player.ID, target, result)
	if err := w.MatchRepo.CreateMatchStats(stats); err != nil {
		return err
	}

	totalAfter, err := w.ScoreRepo.ApplyDelta(player.ID, match.ID, result.Delta)
	if err != nil {
		return err
	}

	w.logger.Infof("Scored %s for %s#%s: %s base %.1f delta %d total %d",
		matchId, player.RiotIdGameName, player.RiotIdTagline,
		result.Summary.Archetype, result.Summary.BaseScore, result.Delta, totalAfter)

	report := publisher.MatchReport{
		GameName:     player.RiotIdGameName,
		TagLine:      player.RiotIdTagline,
		ChampionName: target.ChampionName,
		Kills:        target.Kills,
		Deaths:       target.Deaths,
		Assists:      target.Assists,
		DamageDealt:  target.TotalDamageDealtToChampions,
		DamageTaken:  target.TotalDamageTaken,
		Win:          target.Win,
		BaseScore:    result.Summary.BaseScore,
		Points:       result.Delta,
		TotalPoints:  totalAfter,
		MatchId:      matchId,
		GameDuration: matchData.Info.GameDuration,
		GameVersion:  matchData.Info.GameVersion,
	}
	if err := w.publisher.PublishMatchResult(report); err != nil {
		// The score is already persisted, only the announcement is lost.
		w.logger.Errorf("Couldn't publish the match %s: %v", matchId, err)
	}

	return nil
}

// extractTeam returns the target participant and his full team as scoring input.
func extractTeam(puuid string, matchData *riot.MatchData) (*riot.MatchPlayer, []scoring.ParticipantStats) {
	var target *riot.MatchPlayer
	for i := range matchData.Info.Participants {
		if matchData.Info.Participants[i].Puuid == puuid {
			target = &matchData.Info.Participants[i]
			break
		}
	}

	if target == nil {
		return nil, nil
	}

	var teammates []scoring.ParticipantStats
	for i := range matchData.Info.Participants {
		participant := &matchData.Info.Participants[i]
		if participant.TeamId != target.TeamId {
			continue
		}
		teammates = append(teammates, toParticipantStats(participant))
	}

	return target, teammates
}

// Convert the riot participant into the scoring input.
func toParticipantStats(p *riot.MatchPlayer) scoring.ParticipantStats {
	return scoring.ParticipantStats{
		Puuid:                          p.Puuid,
		ChampionId:                     p.ChampionId,
		ChampionName:                   p.ChampionName,
		TeamId:                         p.TeamId,
		Kills:                          p.Kills,
		Deaths:                         p.Deaths,
		Assists:                        p.Assists,
		TotalDamageDealtToChampions:    p.TotalDamageDealtToChampions,
		TotalDamageTaken:               p.TotalDamageTaken,
		DamageSelfMitigated:            p.DamageSelfMitigated,
		TotalTimeCCDealt:               p.TotalTimeCCDealt,
		VisionScore:                    p.VisionScore,
		GoldEarned:                     p.GoldEarned,
		TotalHeal:                      p.TotalHeal,
		TotalDamageShieldedOnTeammates: p.TotalDamageShieldedOnTeammates,
		Win:                            p.Win,
	}
}

// Build the database stats row from the participant and the scoring result.
func buildMatchStats(matchId uint, playerId uint, target *riot.MatchPlayer, result scoring.MatchScore) *models.MatchStats {
	return &models.MatchStats{
		MatchId:                        matchId,
		PlayerId:                       playerId,
		ChampionId:                     target.ChampionId,
		ChampionName:                   target.ChampionName,
		TeamId:                         target.TeamId,
		Kills:                          target.Kills,
		Deaths:                         target.Deaths,
		Assists:                        target.Assists,
		TotalDamageDealtToChampions:    target.TotalDamageDealtToChampions,
		TotalDamageTaken:               target.TotalDamageTaken,
		DamageSelfMitigated:            target.DamageSelfMitigated,
		TotalTimeCCDealt:               target.TotalTimeCCDealt,
		VisionScore:                    target.VisionScore,
		GoldEarned:                     target.GoldEarned,
		TotalHeal:                      target.TotalHeal,
		TotalDamageShieldedOnTeammates: target.TotalDamageShieldedOnTeammates,
		Win:                            target.Win,
		Archetype:                      string(result.Summary.Archetype),
		BaseScore:                      result.Summary.BaseScore,
		ScoreDelta:                     result.Delta,
	}
}

// Redis key for a processed match and player pair.
func processedKey(matchId string, puuid string) string {
	return processedKeyPrefix + matchId + ":" + puuid
}
