package enemy

import (
	"github.com/cory-johannsen/dungeon/internal/game/skill"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// BossLevelBonus is added to the dungeon floor to get a boss's level.
const BossLevelBonus = 2

// LevelFor returns the level of an enemy of kind k met on floor.
func LevelFor(k Kind, floor uint32) uint32 {
	level := max(floor, 1)
	if k == Boss {
		level += BossLevelBonus
	}
	return level
}

// Enemy is a live opponent built from a Template. It exists for the length of
// one encounter.
type Enemy struct {
	tmpl   *Template
	level  uint32
	base   stats.Base
	boosts stats.Boosts
	health uint32
	skill  skill.ID
}

// New creates an enemy from tmpl at powerLevel with full health and no boosts.
// Bosses carry the skill their name maps to; normal enemies have none.
//
// Precondition: tmpl must be non-nil and valid.
// Postcondition: Health() equals Stats().MaxHealth.
func New(tmpl *Template, powerLevel uint32) *Enemy {
	level := max(powerLevel, 1)
	e := &Enemy{
		tmpl:  tmpl,
		level: level,
		base:  tmpl.BaseAt(level),
		skill: skill.None,
	}
	if tmpl.Kind == Boss {
		e.skill = skill.BossSkill(tmpl.Name)
	}
	e.health = e.Stats().MaxHealth
	return e
}

func (e *Enemy) Name() string { return e.tmpl.Name }
func (e *Enemy) Template() *Template { return e.tmpl }
func (e *Enemy) Kind() Kind { return e.tmpl.Kind }
func (e *Enemy) IsBoss() bool { return e.tmpl.Kind == Boss }
func (e *Enemy) Level() uint32 { return e.level }
func (e *Enemy) Skill() skill.ID { return e.skill }
func (e *Enemy) Health() uint32 { return e.health }

// IsDead reports whether the enemy has zero health.
func (e *Enemy) IsDead() bool {
	return e.health == 0
}

// Stats returns the enemy's effective stats.
func (e *Enemy) Stats() stats.Effective {
	return stats.Compute(e.base, e.boosts)
}

// TakeDamage lowers health by amount, clamping at zero, and returns the amount
// removed.
func (e *Enemy) TakeDamage(amount uint32) uint32 {
	var dealt uint32
	e.health, dealt = stats.ApplyDamage(e.health, amount)
	return dealt
}

// ReduceDefense strips up to n from the enemy's temporary defense boost.
// Enemies start without boosts, so this only removes what was added during
// the fight.
func (e *Enemy) ReduceDefense(n uint32) uint32 {
	return e.boosts.DecreaseDefense(n)
}

// HealthDescription returns a visible health state string for display.
//
// Postcondition: Returns a non-empty string.
func (e *Enemy) HealthDescription() string {
	if e.health == 0 {
		return "dead"
	}
	pct := float64(e.health) / float64(e.Stats().MaxHealth)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.40:
		return "moderately wounded"
	case pct >= 0.20:
		return "heavily wounded"
	default:
		return "critically wounded"
	}
}
