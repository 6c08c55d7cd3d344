package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTagSource is a in-memory tag table for the tests.
type fakeTagSource struct {
	tags map[int][]string
}

func (f *fakeTagSource) GetTags(championId int) ([]string, bool) {
	tags, ok := f.tags[championId]
	return tags, ok
}

// newTestTagSource returns a tag table covering every archetype.
func newTestTagSource() *fakeTagSource {
	return &fakeTagSource{
		tags: map[int][]string{
			54:  {"Tank", "Fighter"},       // Malphite
			86:  {"Fighter"},               // Garen
			238: {"Assassin", "Mage"},      // Zed
			22:  {"Marksman"},              // Ashe
			103: {"Mage"},                  // Ahri
			89:  {"Support", "Tank"},       // Leona
			16:  {"Support", "Mage"},       // Soraka
			429: {"Marksman", "Assassin"},  // Kalista
			201: {"Tank", "Support"},       // Braum
			427: {"UnrecognizedTag"},       // No known tag.
		},
	}
}

func TestClassify(t *testing.T) {
	classifier := NewClassifier(newTestTagSource())

	tests := []struct {
		name       string
		championId int
		expected   Archetype
	}{
		{name: "tankBeforeFighter", championId: 54, expected: Tank},
		{name: "fighterOnly", championId: 86, expected: Fighter},
		{name: "assassinBeforeMage", championId: 238, expected: Assassin},
		{name: "marksman", championId: 22, expected: Marksman},
		{name: "mage", championId: 103, expected: Mage},
		{name: "supportWithTank", championId: 89, expected: SupportTank},
		{name: "supportWithoutTank", championId: 16, expected: SupportMage},
		{name: "marksmanBeforeAssassin", championId: 429, expected: Marksman},
		{name: "supportBeforeTankAnyTagOrder", championId: 201, expected: SupportTank},
		{name: "noRecognizedTagDefaultsToFighter", championId: 427, expected: Fighter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archetype, err := classifier.Classify(tt.championId)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, archetype)
		})
	}
}

func TestClassifyUnknownChampion(t *testing.T) {
	classifier := NewClassifier(newTestTagSource())

	_, err := classifier.Classify(99999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownChampion))
}

// Every archetype that the classifier can produce must have a strategy.
func TestEveryArchetypeHasStrategy(t *testing.T) {
	for _, archetype := range []Archetype{Tank, Fighter, Assassin, Marksman, Mage, SupportTank, SupportMage} {
		_, ok := StrategyFor(archetype)
		assert.True(t, ok, "missing strategy for %s", archetype)
	}
}
