package scoring

import (
	"fmt"
)

// TraceLogger is the optional observability hook of the engine.
// The scoring path itself never writes to stdout.
type TraceLogger interface {
	Infof(format string, args ...interface{})
}

// Summary is the human readable breakdown handed to persistence and publishing.
// Its figures mirror the input record exactly.
type Summary struct {
	Puuid        string
	ChampionName string
	Archetype    Archetype

	Kills   int
	Deaths  int
	Assists int

	DamageDealt int
	DamageTaken int

	BaseScore float64
	Rank      int
	TeamSize  int
	Win       bool
	Delta     int
}

// MatchScore is the outcome of scoring one player on one match.
// A failed outcome carries delta 0 and the diagnostic reason; the error is
// kept wrapped so callers can still inspect the failure kind.
type MatchScore struct {
	Delta   int
	Summary Summary
	Failed  bool
	Reason  string
	Err     error
}

// Engine coordinates classification, per teammate scoring, ranking and
// point conversion. It is stateless and safe for concurrent use.
type Engine struct {
	classifier *Classifier
	converter  PointConverter
	trace      TraceLogger
}

// NewEngine creates the scoring engine.
// The trace logger is optional and may be nil.
func NewEngine(classifier *Classifier, converter PointConverter, trace TraceLogger) *Engine {
	return &Engine{
		classifier: classifier,
		converter:  converter,
		trace:      trace,
	}
}

// ComputeMatchScore scores the target player against its teammates.
// It never returns an error: any internal failure becomes a failed outcome
// with delta 0, so one player's bad data never aborts a batch.
func (e *Engine) ComputeMatchScore(targetPuuid string, teammates []ParticipantStats) MatchScore {
	delta, summary, err := e.computeMatchScore(targetPuuid, teammates)
	if err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrScoringFailed, err)
		return MatchScore{
			Delta:   0,
			Summary: Summary{Puuid: targetPuuid},
			Failed:  true,
			Reason:  wrapped.Error(),
			Err:     wrapped,
		}
	}

	return MatchScore{
		Delta:   delta,
		Summary: summary,
	}
}

// computeMatchScore runs the fallible pipeline behind the fail-soft boundary.
func (e *Engine) computeMatchScore(targetPuuid string, teammates []ParticipantStats) (int, Summary, error) {
	if len(teammates) == 0 || len(teammates) > MaxTeamSize {
		return 0, Summary{}, fmt.Errorf("%w: team size %d", ErrDegenerateTeam, len(teammates))
	}

	var target *ParticipantStats
	for i := range teammates {
		if err := teammates[i].Validate(); err != nil {
			return 0, Summary{}, err
		}
		if teammates[i].Puuid == targetPuuid {
			target = &teammates[i]
		}
	}

	if target == nil {
		return 0, Summary{}, fmt.Errorf("%w: player %s not in team", ErrDegenerateTeam, targetPuuid)
	}

	aggregate := ComputeTeamAggregate(teammates)

	// Score every teammate: the rank only means something relative to them.
	teamScores := make([]TeamScore, 0, len(teammates))
	var targetArchetype Archetype
	var targetBase float64

	for i := range teammates {
		archetype, err := e.classifier.Classify(teammates[i].ChampionId)
		if err != nil {
			return 0, Summary{}, err
		}

		strategy, ok := StrategyFor(archetype)
		if !ok {
			return 0, Summary{}, fmt.Errorf("%w: no strategy for archetype %s", ErrScoringFailed, archetype)
		}

		base := strategy.BaseScore(teammates[i], aggregate)
		teamScores = append(teamScores, TeamScore{
			Puuid:     teammates[i].Puuid,
			BaseScore: base,
		})

		if teammates[i].Puuid == targetPuuid {
			targetArchetype = archetype
			targetBase = base
		}
	}

	rank, err := RankInTeam(targetPuuid, teamScores)
	if err != nil {
		return 0, Summary{}, err
	}

	delta := e.converter.Points(rank, targetBase, target.Win)

	if e.trace != nil {
		e.trace.Infof("scored %s on %s: archetype=%s base=%.2f rank=%d/%d win=%t delta=%d",
			targetPuuid, target.ChampionName, targetArchetype, targetBase, rank, len(teammates), target.Win, delta)
	}

	summary := Summary{
		Puuid:        target.Puuid,
		ChampionName: target.ChampionName,
		Archetype:    targetArchetype,
		Kills:        target.Kills,
		Deaths:       target.Deaths,
		Assists:      target.Assists,
		DamageDealt:  target.TotalDamageDealtToChampions,
		DamageTaken:  target.TotalDamageTaken,
		BaseScore:    targetBase,
		Rank:         rank,
		TeamSize:     len(teammates),
		Win:          target.Win,
		Delta:        delta,
	}

	return delta, summary, nil
}
