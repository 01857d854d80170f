package combat

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

const (
	// SmashPercent is the share of target max health Smash removes.
	SmashPercent = 20
	// FireBreathPercent is the share of target max health Fire Breath removes.
	FireBreathPercent = 12
	// FireBreathDefensePerLevel scales Fire Breath's defense strip by caster level.
	FireBreathDefensePerLevel = 2
	// MendPercent is the share of max health Mend restores.
	MendPercent = 35
	// ShieldWallBaseDefense is the flat part of Shield Wall's defense bonus.
	ShieldWallBaseDefense = 5
	// ArcaneBoltMultiplier multiplies the caster's damage for Arcane Bolt.
	ArcaneBoltMultiplier = 2
)

// SkillResult describes one resolved skill use.
type SkillResult struct {
	Skill  skill.ID
	Caster string
	Target string
	// Dealt is the health removed from the target.
	Dealt uint32
	// Restored is the health restored to the caster.
	Restored uint32
	// DefenseReduced is the temporary defense removed from the target.
	DefenseReduced uint32
	// Bonus is the encounter bonus granted to the caster.
	Bonus    stats.Bonus
	Critical bool
	Killed   bool
	// Log is a human-readable description of the skill use. When Err is
	// non-nil it reports the error instead.
	Log string
	// Err is non-nil when the skill resolved to a no-op.
	Err error
}

// UseEnemySkill executes an enemy skill against target. An unknown skill or a
// missing skill resolves to a no-op with Err set; it never panics.
func UseEnemySkill(id skill.ID, user EnemyCaster, target Target) SkillResult {
	res := SkillResult{Skill: id, Caster: user.Name(), Target: target.Name()}

	switch id {
	case skill.Smash:
		res.Dealt = PureDamage(target, SmashPercent)
		res.Log = fmt.Sprintf("%s smashes %s for %d damage!", res.Caster, res.Target, res.Dealt)
	case skill.FireBreath:
		res.Dealt = PureDamage(target, FireBreathPercent)
		res.DefenseReduced = target.ReduceDefense(FireBreathDefensePerLevel * user.Level())
		res.Log = fmt.Sprintf("%s breathes fire on %s for %d damage, melting %d defense!",
			res.Caster, res.Target, res.Dealt, res.DefenseReduced)
	case skill.None:
		res.Err = ErrNoSkill
		res.Log = fmt.Sprintf("error: %s has no skill to use", res.Caster)
		return res
	default:
		res.Err = fmt.Errorf("%s cannot use %s: %w", res.Caster, id, ErrUnknownSkill)
		res.Log = fmt.Sprintf("error: %s tried to use an unknown skill", res.Caster)
		return res
	}

	res.Killed = target.IsDead()
	if res.Killed {
		res.Log += fmt.Sprintf(" %s is slain.", res.Target)
	}
	return res
}

// UseClassSkill executes a class skill. Mana is withdrawn only when the skill
// resolves; src supplies the critical-hit roll of damaging skills.
func UseClassSkill(id skill.ID, caster Caster, target Combatant, src dice.Source) SkillResult {
	res := SkillResult{Skill: id, Caster: caster.Name(), Target: target.Name()}

	switch id {
	case skill.ShieldWall, skill.ArcaneBolt, skill.Mend:
	default:
		res.Err = fmt.Errorf("%s cannot use %s: %w", res.Caster, id, ErrUnknownSkill)
		res.Log = fmt.Sprintf("error: %s tried to use an unknown skill", res.Caster)
		return res
	}

	cost := skill.ManaCost(id)
	if !caster.SpendMana(cost) {
		res.Err = fmt.Errorf("%s needs %d mana, has %d: %w", id, cost, caster.Mana(), ErrNotEnoughMana)
		res.Log = fmt.Sprintf("%s does not have enough mana for %s.", res.Caster, id)
		return res
	}

	switch id {
	case skill.ShieldWall:
		res.Target = res.Caster
		res.Bonus = stats.Bonus{Defense: ShieldWallBaseDefense + caster.Level()}
		caster.AddEncounterBonus(res.Bonus)
		res.Log = fmt.Sprintf("%s raises a shield wall, gaining %d defense.", res.Caster, res.Bonus.Defense)
	case skill.ArcaneBolt:
		eff := caster.Stats()
		res.Critical = IsCritical(src.Float64(), eff.CritHitRate)
		incoming := scale(eff.Damage*ArcaneBoltMultiplier, eff.CritDamageMultiplier, res.Critical)
		res.Dealt = target.TakeDamage(Mitigate(incoming, target.Stats().Defense))
		res.Killed = target.IsDead()
		res.Log = fmt.Sprintf("%s hurls an arcane bolt at %s for %d damage.", res.Caster, res.Target, res.Dealt)
		if res.Critical {
			res.Log = fmt.Sprintf("%s hurls a critical arcane bolt at %s for %d damage!", res.Caster, res.Target, res.Dealt)
		}
		if res.Killed {
			res.Log += fmt.Sprintf(" %s is slain.", res.Target)
		}
	case skill.Mend:
		res.Target = res.Caster
		res.Restored = caster.Heal(PercentOf(caster.Stats().MaxHealth, MendPercent))
		res.Log = fmt.Sprintf("%s mends their wounds, restoring %d health.", res.Caster, res.Restored)
	}
	return res
}
