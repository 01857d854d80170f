package encounter

import (
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
)

// EnemyView is the read-only snapshot a SkillPolicy decides on.
type EnemyView struct {
	Name      string
	Level     uint32
	Health    uint32
	MaxHealth uint32
	Boss      bool
	Skill     skill.ID
}

// SkillPolicy decides whether an enemy uses its skill instead of a basic
// attack on its turn.
type SkillPolicy interface {
	UseSkill(v EnemyView) bool
}

// ChancePolicy uses the skill with a fixed probability whenever the enemy has
// one.
type ChancePolicy struct {
	Chance float64
	Source dice.Source
}

// UseSkill implements SkillPolicy.
func (p ChancePolicy) UseSkill(v EnemyView) bool {
	if v.Skill == skill.None {
		return false
	}
	return dice.Chance(p.Source, p.Chance)
}

// PolicyFunc adapts a plain function to SkillPolicy.
type PolicyFunc func(v EnemyView) bool

// UseSkill implements SkillPolicy.
func (f PolicyFunc) UseSkill(v EnemyView) bool { return f(v) }
