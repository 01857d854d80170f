package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/dungeon/internal/game/skill"
)

func TestBossSkill_KnownNames(t *testing.T) {
	assert.Equal(t, skill.Smash, skill.BossSkill("Cyclops"))
	assert.Equal(t, skill.FireBreath, skill.BossSkill("Dragon"))
}

func TestBossSkill_UnknownNameFallsBack(t *testing.T) {
	assert.Equal(t, skill.Unknown, skill.BossSkill("Beholder"))
	assert.Equal(t, skill.Unknown, skill.BossSkill(""))
}

func TestManaCost(t *testing.T) {
	assert.Equal(t, uint32(10), skill.ManaCost(skill.ShieldWall))
	assert.Zero(t, skill.ManaCost(skill.FireBreath))
	assert.Zero(t, skill.ManaCost(skill.None))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Fire Breath", skill.FireBreath.String())
	assert.Equal(t, "ID(99)", skill.ID(99).String())
}
