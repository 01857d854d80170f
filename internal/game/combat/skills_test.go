package combat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

func TestUseEnemySkill_Smash(t *testing.T) {
	boss := newFighter("Cyclops", 10, 0, 500)
	player := newFighter("Knight", 10, 99, 200)

	res := combat.UseEnemySkill(skill.Smash, boss, player)

	require.NoError(t, res.Err)
	assert.Equal(t, uint32(40), res.Dealt)
	assert.Equal(t, uint32(160), player.Health())
	assert.Equal(t, "Cyclops smashes Knight for 40 damage!", res.Log)
}

func TestUseEnemySkill_FireBreath_StripsDefense(t *testing.T) {
	boss := newFighter("Dragon", 10, 0, 500)
	boss.level = 3
	player := newFighter("Knight", 10, 0, 100)
	player.defense = 4

	res := combat.UseEnemySkill(skill.FireBreath, boss, player)

	require.NoError(t, res.Err)
	assert.Equal(t, uint32(12), res.Dealt)
	assert.Equal(t, uint32(4), res.DefenseReduced) // wanted 6, saturated at 4
	assert.Zero(t, player.defense)
}

func TestUseEnemySkill_UnknownIsNoOp(t *testing.T) {
	boss := newFighter("Beholder", 10, 0, 500)
	player := newFighter("Knight", 10, 0, 100)

	var res combat.SkillResult
	require.NotPanics(t, func() { res = combat.UseEnemySkill(skill.Unknown, boss, player) })

	assert.True(t, errors.Is(res.Err, combat.ErrUnknownSkill))
	assert.Contains(t, res.Log, "error")
	assert.Equal(t, uint32(100), player.Health())
}

func TestUseEnemySkill_NoneIsNoOp(t *testing.T) {
	goblin := newFighter("Goblin", 10, 0, 50)
	player := newFighter("Knight", 10, 0, 100)

	res := combat.UseEnemySkill(skill.None, goblin, player)

	assert.ErrorIs(t, res.Err, combat.ErrNoSkill)
	assert.Equal(t, uint32(100), player.Health())
}

func TestUseEnemySkill_KillsTarget(t *testing.T) {
	boss := newFighter("Cyclops", 10, 0, 500)
	player := newFighter("Knight", 10, 0, 100)
	player.health = 5

	res := combat.UseEnemySkill(skill.Smash, boss, player)

	assert.True(t, res.Killed)
	assert.Equal(t, uint32(5), res.Dealt)
	assert.True(t, player.IsDead())
}

func TestUseClassSkill_ShieldWall(t *testing.T) {
	knight := newFighter("Knight", 10, 2, 100)
	knight.mana = 25
	knight.level = 4
	goblin := newFighter("Goblin", 5, 0, 30)

	res := combat.UseClassSkill(skill.ShieldWall, knight, goblin, dice.NewFixedSource(nil, nil))

	require.NoError(t, res.Err)
	assert.Equal(t, stats.Bonus{Defense: 9}, res.Bonus)
	assert.Equal(t, uint32(11), knight.Stats().Defense)
	assert.Equal(t, uint32(15), knight.Mana())
}

func TestUseClassSkill_ArcaneBolt(t *testing.T) {
	mage := newFighter("Mage", 8, 0, 60)
	mage.mana = 15
	goblin := newFighter("Goblin", 5, 3, 30)

	res := combat.UseClassSkill(skill.ArcaneBolt, mage, goblin, dice.NewFixedSource(nil, []float64{0.9}))

	require.NoError(t, res.Err)
	assert.Equal(t, uint32(13), res.Dealt) // 16 - 3
	assert.Zero(t, mage.Mana())
}

func TestUseClassSkill_MendReportsRestored(t *testing.T) {
	cleric := newFighter("Cleric", 6, 0, 100)
	cleric.mana = 12
	cleric.health = 90

	res := combat.UseClassSkill(skill.Mend, cleric, newFighter("Goblin", 1, 0, 10), dice.NewFixedSource(nil, nil))

	require.NoError(t, res.Err)
	assert.Equal(t, uint32(10), res.Restored)
	assert.Equal(t, uint32(100), cleric.Health())
}

func TestUseClassSkill_NotEnoughMana(t *testing.T) {
	mage := newFighter("Mage", 8, 0, 60)
	mage.mana = 14
	goblin := newFighter("Goblin", 5, 0, 30)

	res := combat.UseClassSkill(skill.ArcaneBolt, mage, goblin, dice.NewFixedSource(nil, nil))

	assert.ErrorIs(t, res.Err, combat.ErrNotEnoughMana)
	assert.Equal(t, uint32(14), mage.Mana())
	assert.Equal(t, uint32(30), goblin.Health())
}

func TestUseClassSkill_RejectsEnemySkill(t *testing.T) {
	mage := newFighter("Mage", 8, 0, 60)
	mage.mana = 100

	res := combat.UseClassSkill(skill.FireBreath, mage, newFighter("Goblin", 5, 0, 30), dice.NewFixedSource(nil, nil))

	assert.ErrorIs(t, res.Err, combat.ErrUnknownSkill)
	assert.Equal(t, uint32(100), mage.Mana())
}
