package scoring

import (
	"fmt"
	"slices"
)

// Archetype is the gameplay role bucket driving the weighting scheme.
type Archetype string

const (
	Tank        Archetype = "TANK"
	Fighter     Archetype = "FIGHTER"
	Assassin    Archetype = "ASSASSIN"
	Marksman    Archetype = "MARKSMAN"
	Mage        Archetype = "MAGE"
	SupportTank Archetype = "SUPPORT_TANK"
	SupportMage Archetype = "SUPPORT_MAGE"
)

// TagSource resolves the declared tag set of a champion.
// Implementations must be safe for unsynchronized concurrent reads.
type TagSource interface {
	GetTags(championId int) ([]string, bool)
}

// Classifier maps a champion to its archetype through the declared tags.
type Classifier struct {
	tags TagSource
}

// NewClassifier creates a classifier over the given tag table.
func NewClassifier(tags TagSource) *Classifier {
	return &Classifier{tags: tags}
}

// Classify resolves the archetype for the champion.
// Many champions carry multiple tags, so a fixed priority resolves ambiguity
// in favor of the tag most predictive of the scoring profile:
// Marksman > Assassin > Support > Tank > Fighter > Mage.
// A champion with no recognized tag defaults to Fighter.
func (c *Classifier) Classify(championId int) (Archetype, error) {
	tags, found := c.tags.GetTags(championId)
	if !found {
		return "", fmt.Errorf("%w: champion %d", ErrUnknownChampion, championId)
	}

	switch {
	case slices.Contains(tags, "Marksman"):
		return Marksman, nil
	case slices.Contains(tags, "Assassin"):
		return Assassin, nil
	case slices.Contains(tags, "Support"):
		// Tanky supports soak damage, mage supports enable through utility.
		if slices.Contains(tags, "Tank") {
			return SupportTank, nil
		}
		return SupportMage, nil
	case slices.Contains(tags, "Tank"):
		return Tank, nil
	case slices.Contains(tags, "Fighter"):
		return Fighter, nil
	case slices.Contains(tags, "Mage"):
		return Mage, nil
	default:
		return Fighter, nil
	}
}
