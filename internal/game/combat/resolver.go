package combat

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Outcome is the pure result of one basic attack before it is applied.
type Outcome struct {
	Critical bool
	// Incoming is the attacker's outgoing damage before mitigation.
	Incoming uint32
	// Mitigated is the damage left after the defender's defense.
	Mitigated uint32
}

// Resolve computes the outcome of a basic attack from the attacker's
// effective stats, a critical-hit die roll in [0, 1) and the defender's
// effective defense. It has no side effects.
func Resolve(attacker stats.Effective, defenderDefense uint32, roll float64) Outcome {
	crit := IsCritical(roll, attacker.CritHitRate)
	incoming := DamageFor(attacker, crit)
	return Outcome{
		Critical:  crit,
		Incoming:  incoming,
		Mitigated: Mitigate(incoming, defenderDefense),
	}
}

// AttackResult holds the outcome of a single basic attack after it was applied.
type AttackResult struct {
	// Attacker is the attacking combatant's name.
	Attacker string
	// Defender is the defending combatant's name.
	Defender string
	Outcome
	// Dealt is the health actually removed from the defender.
	Dealt uint32
	// DefenderHealth is the defender's health after the attack.
	DefenderHealth uint32
	// Killed is true when the attack reduced the defender to zero health.
	Killed bool
	// Log is a human-readable description of the attack.
	Log string
}

// ResolveAttack rolls for a critical hit and applies one basic attack from
// attacker to defender.
//
// Precondition: attacker, defender and src must be non-nil.
// Postcondition: defender health dropped by result.Dealt; never below zero.
func ResolveAttack(attacker, defender Combatant, src dice.Source) AttackResult {
	out := Resolve(attacker.Stats(), defender.Stats().Defense, src.Float64())
	dealt := defender.TakeDamage(out.Mitigated)

	res := AttackResult{
		Attacker:       attacker.Name(),
		Defender:       defender.Name(),
		Outcome:        out,
		Dealt:          dealt,
		DefenderHealth: defender.Health(),
		Killed:         defender.IsDead(),
	}
	res.Log = attackLog(res)
	return res
}

func attackLog(r AttackResult) string {
	var s string
	switch {
	case r.Mitigated == 0:
		s = fmt.Sprintf("%s's defense absorbs %s's attack.", r.Defender, r.Attacker)
	case r.Critical:
		s = fmt.Sprintf("%s lands a critical hit on %s for %d damage!", r.Attacker, r.Defender, r.Dealt)
	default:
		s = fmt.Sprintf("%s hits %s for %d damage.", r.Attacker, r.Defender, r.Dealt)
	}
	if r.Killed {
		s += fmt.Sprintf(" %s is slain.", r.Defender)
	}
	return s
}

// PureDamage deals percent% of the target's effective max health, bypassing
// defense, and returns the health actually removed.
func PureDamage(target Combatant, percent uint32) uint32 {
	return target.TakeDamage(PercentOf(target.Stats().MaxHealth, percent))
}
