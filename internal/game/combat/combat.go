// Package combat resolves one attack or skill exchange between combatants
// using their effective stats. It never decides turn order or which action a
// combatant takes.
package combat

import (
	"errors"

	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

var (
	// ErrUnknownSkill is reported when a combatant resolves a skill it cannot use.
	ErrUnknownSkill = errors.New("unknown skill")
	// ErrNoSkill is reported when a combatant without a skill is told to use one.
	ErrNoSkill = errors.New("combatant has no skill")
	// ErrNotEnoughMana is reported when a class skill costs more mana than the caster has.
	ErrNotEnoughMana = errors.New("not enough mana")
)

// Combatant represents one participant in a fight: the character or an enemy.
type Combatant interface {
	Name() string
	// Stats returns the effective stats: base plus all active boosts.
	Stats() stats.Effective
	// Health returns current health.
	Health() uint32
	// TakeDamage lowers current health by amount, clamping at zero, and
	// returns the amount actually removed.
	TakeDamage(amount uint32) uint32
	// IsDead reports whether current health is zero.
	IsDead() bool
}

// Target is a Combatant whose temporary defense boost a skill can strip.
type Target interface {
	Combatant
	// ReduceDefense lowers the temporary defense boost by n for the rest of
	// the encounter, saturating at zero, and returns the amount removed.
	ReduceDefense(n uint32) uint32
}

// EnemyCaster is a Combatant that uses enemy skills.
type EnemyCaster interface {
	Combatant
	Level() uint32
}

// Caster is a Combatant that uses class skills.
type Caster interface {
	Combatant
	Level() uint32
	Mana() uint32
	// SpendMana withdraws n mana and reports whether enough was available.
	// Nothing is withdrawn on failure.
	SpendMana(n uint32) bool
	// Heal restores up to n health and returns the amount actually restored.
	Heal(n uint32) uint32
	// AddEncounterBonus applies b until the encounter ends.
	AddEncounterBonus(b stats.Bonus)
}

// IsCritical reports whether an attack with the given crit rate is critical
// for a die roll in [0, 1).
func IsCritical(roll, critHitRate float64) bool {
	return roll < critHitRate
}

// DamageFor returns the outgoing damage of an attacker. A critical hit
// multiplies damage by the crit multiplier and truncates toward zero.
func DamageFor(eff stats.Effective, critical bool) uint32 {
	return scale(eff.Damage, eff.CritDamageMultiplier, critical)
}

func scale(damage uint32, multiplier float64, critical bool) uint32 {
	if !critical {
		return damage
	}
	v := float64(damage) * multiplier
	if v >= float64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}

// Mitigate reduces incoming damage by defense.
//
// Postcondition: returns max(0, incoming-defense); defense >= incoming yields 0.
func Mitigate(incoming, defense uint32) uint32 {
	return stats.SatSub(incoming, defense)
}

// PercentOf returns percent% of maxHealth, truncated.
func PercentOf(maxHealth, percent uint32) uint32 {
	return uint32(uint64(maxHealth) * uint64(percent) / 100)
}
