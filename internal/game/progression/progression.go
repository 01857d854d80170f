// Package progression converts accumulated experience into level-ups along a
// growing experience curve.
package progression

import "math"

const (
	// StartingLevel is the level of a new or reset character.
	StartingLevel = 1
	// StartingRequiredExp is the experience needed for the first level-up.
	StartingRequiredExp = 100
	// RequiredExpGrowth multiplies the requirement after each level-up.
	RequiredExpGrowth = 1.2
)

// Track holds a character's experience counters.
type Track struct {
	Level        uint32
	CurrentExp   uint32
	RequiredExp  uint32
	TotalExp     uint32
	HighestLevel uint32
}

// NewTrack returns the counters of a fresh character.
func NewTrack() Track {
	return Track{
		Level:        StartingLevel,
		RequiredExp:  StartingRequiredExp,
		HighestLevel: StartingLevel,
	}
}

// NextRequired returns the requirement that follows r: r * 1.2 rounded to the
// nearest integer.
func NextRequired(r uint32) uint32 {
	return uint32(math.Round(float64(r) * RequiredExpGrowth))
}

// Gain adds exp to both the current and total counters, then levels up for as
// long as the current experience meets the requirement. One large gain can
// therefore produce several level-ups.
//
// Postcondition: CurrentExp < RequiredExp; returns the number of levels gained.
func (t *Track) Gain(exp uint32) uint32 {
	t.CurrentExp = satAdd(t.CurrentExp, exp)
	t.TotalExp = satAdd(t.TotalExp, exp)

	var gained uint32
	for t.RequiredExp > 0 && t.CurrentExp >= t.RequiredExp {
		t.levelUp()
		gained++
	}
	return gained
}

// levelUp carries the surplus experience into the next level.
func (t *Track) levelUp() {
	t.Level++
	t.CurrentExp -= t.RequiredExp
	t.RequiredExp = NextRequired(t.RequiredExp)
	if t.Level > t.HighestLevel {
		t.HighestLevel = t.Level
	}
}

// Reset restores the starting counters. HighestLevel is a record and survives.
func (t *Track) Reset() {
	highest := t.HighestLevel
	*t = NewTrack()
	if highest > t.HighestLevel {
		t.HighestLevel = highest
	}
}

func satAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
