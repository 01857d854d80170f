package encounter

import (
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
)

// Strategy tunes Autoplay.
type Strategy struct {
	// PotionBelow is the health fraction under which a potion is drunk.
	PotionBelow float64
	// MendBelow is the health fraction under which Mend is cast.
	MendBelow float64
	// MaxRounds bounds the fight; the player flees once it is reached.
	MaxRounds int
}

// DefaultStrategy returns the strategy the simulator uses.
func DefaultStrategy() Strategy {
	return Strategy{PotionBelow: 0.3, MendBelow: 0.6, MaxRounds: 100}
}

// Autoplay alternates player and enemy turns until the encounter ends.
//
// Postcondition: Status() is no longer InProgress.
func (e *Encounter) Autoplay(s Strategy) Status {
	shieldRaised := false
	for e.status == InProgress {
		if s.MaxRounds > 0 && e.rounds >= s.MaxRounds {
			_ = e.Flee()
			break
		}
		e.playerTurn(s, &shieldRaised)
		if e.status != InProgress {
			break
		}
		_, _ = e.EnemyTurn()
	}
	return e.status
}

func (e *Encounter) playerTurn(s Strategy, shieldRaised *bool) {
	p := e.player
	maxHealth := p.Stats().MaxHealth
	low := func(fraction float64) bool {
		return float64(p.Health()) < fraction*float64(maxHealth)
	}

	if low(s.PotionBelow) {
		if name, ok := e.cheapestPotion(); ok {
			if _, err := e.DrinkPotion(name); err == nil {
				return
			}
		}
	}

	if p.Mana() >= skill.ManaCost(p.Skill()) {
		cast := false
		switch p.Skill() {
		case skill.ShieldWall:
			cast = !*shieldRaised
		case skill.Mend:
			cast = low(s.MendBelow)
		case skill.ArcaneBolt:
			cast = true
		}
		if cast {
			if _, err := e.CastSkill(); err == nil {
				if p.Skill() == skill.ShieldWall {
					*shieldRaised = true
				}
				return
			}
		}
	}

	_, _ = e.Attack()
}

// cheapestPotion returns the lowest-rarity potion the player carries.
func (e *Encounter) cheapestPotion() (string, bool) {
	inv := e.player.Inventory()
	for _, r := range item.Rarities {
		name := item.HealthPotionName(r)
		if _, ok := inv.Consumable(name); ok {
			return name, true
		}
	}
	return "", false
}
