package scoring

// PointConverter maps a scored match outcome to the signed point delta.
// The two implementations are the two scoring laws found in the system's
// history; exactly one is active at a time, selected by configuration.
type PointConverter interface {
	Points(rank int, baseScore float64, win bool) int
}

// Rank based fixed tables, monotonic in rank on both outcomes.
// A rank 1 loss still pays out and a rank 5 win still costs points.
var (
	victoryPointsByRank = map[int]int{
		1: 400,
		2: 300,
		3: 200,
		4: 100,
		5: -100,
	}

	defeatPointsByRank = map[int]int{
		1: 100,
		2: -100,
		3: -200,
		4: -300,
		5: -400,
	}
)

// RankTableConverter is the official scoring law: the point delta depends
// only on the rank within the team and the match result.
type RankTableConverter struct{}

// Points converts (rank, result) through the fixed tables.
// A rank outside the table resolves to 0 so partial data never faults.
func (RankTableConverter) Points(rank int, _ float64, win bool) int {
	table := victoryPointsByRank
	if !win {
		table = defeatPointsByRank
	}
	return table[rank]
}

// Multiplier steps of the legacy law, highest threshold first.
type multiplierStep struct {
	threshold  float64
	multiplier float64
}

var (
	winMultipliers = []multiplierStep{
		{90, 2.5},
		{75, 2.0},
		{60, 1.5},
		{45, 1.0},
		{30, 0.5},
		{0, 0.2},
	}

	loseMultipliers = []multiplierStep{
		{90, 3.0},
		{75, 2.0},
		{60, 1.0},
		{45, 0.5},
		{30, 0.3},
		{0, 0.1},
	}
)

// legacy base points, signed by the match result.
const multiplierBasePoints = 15

// MultiplierConverter is the legacy scoring law: the base score percentage
// selects a step multiplier applied to a fixed base, ignoring the team rank.
type MultiplierConverter struct{}

// Points applies final = base + base x multiplier with base = +-15.
func (MultiplierConverter) Points(_ int, baseScore float64, win bool) int {
	steps := winMultipliers
	base := float64(multiplierBasePoints)
	if !win {
		steps = loseMultipliers
		base = -base
	}

	multiplier := steps[len(steps)-1].multiplier
	for _, step := range steps {
		if baseScore >= step.threshold {
			multiplier = step.multiplier
			break
		}
	}

	return int(base + base*multiplier)
}

// ConverterForLaw resolves the configured scoring law name.
// Unknown names fall back to the rank table, the official law.
func ConverterForLaw(law string) PointConverter {
	if law == "multiplier" {
		return MultiplierConverter{}
	}
	return RankTableConverter{}
}
