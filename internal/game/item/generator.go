package item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Options are explicit generation modes.
type Options struct {
	// DevMode forces every rolled rarity to Legendary.
	DevMode bool
}

// Generator produces random equipment and potions scaled by power level.
// Every call draws fresh values from the injected Source.
type Generator struct {
	tables Tables
	src    dice.Source
	opts   Options
	newID  func() string
}

// NewGenerator creates a Generator.
//
// Precondition: tables passes Validate; src must be non-nil.
func NewGenerator(tables Tables, src dice.Source, opts Options) *Generator {
	return &Generator{
		tables: tables,
		src:    src,
		opts:   opts,
		newID:  uuid.NewString,
	}
}

// Tables returns the tables the generator reads.
func (g *Generator) Tables() Tables {
	return g.tables
}

// RollRarity draws a rarity from the rarity table.
func (g *Generator) RollRarity() Rarity {
	if g.opts.DevMode {
		return Legendary
	}
	return g.tables.Rarity.Roll(g.src)
}

// Weapon generates a weapon at powerLevel.
//
// Postcondition: Damage == BaseDamage + DamagePerLevel*powerLevel, saturating,
// and
// len(Enchantments) == Rarity().EnchantmentSlots().
func (g *Generator) Weapon(powerLevel uint32) *Weapon {
	t := g.tables.Weapon
	return &Weapon{
		Gear:        g.gear(t.Names, powerLevel),
		Damage:      stats.Linear(t.BaseDamage, t.DamagePerLevel, powerLevel),
		CritHitRate: stats.Rate(stats.Linear(uint32(t.BaseCritHitRate), uint32(t.CritHitRatePerLevel), powerLevel)),
	}
}

// Armor generates an armor piece at powerLevel.
func (g *Generator) Armor(powerLevel uint32) *Armor {
	t := g.tables.Armor
	return &Armor{
		Gear:    g.gear(t.Names, powerLevel),
		Health:  stats.Linear(t.BaseHealth, t.HealthPerLevel, powerLevel),
		Defense: stats.Linear(t.BaseDefense, t.DefensePerLevel, powerLevel),
	}
}

// Ring generates a ring at powerLevel.
func (g *Generator) Ring(powerLevel uint32) *Ring {
	t := g.tables.Ring
	return &Ring{
		Gear: g.gear(t.Names, powerLevel),
		Mana: stats.Linear(t.BaseMana, t.ManaPerLevel, powerLevel),
	}
}

// Equipment generates a weapon, armor or ring, chosen uniformly.
func (g *Generator) Equipment(powerLevel uint32) Equippable {
	switch Slots[dice.Pick(g.src, len(Slots))] {
	case SlotWeapon:
		return g.Weapon(powerLevel)
	case SlotArmor:
		return g.Armor(powerLevel)
	case SlotRing:
		return g.Ring(powerLevel)
	default:
		panic("item: unhandled slot")
	}
}

// HealthPotion returns a stack of amount health potions of a rolled rarity.
func (g *Generator) HealthPotion(amount uint32) *Consumable {
	return NewHealthPotion(g.RollRarity(), amount)
}

func (g *Generator) gear(names []string, powerLevel uint32) Gear {
	r := g.RollRarity()
	base := names[dice.Pick(g.src, len(names))]
	return Gear{
		ID:           g.newID(),
		Name:         fmt.Sprintf("%s %s", r, base),
		Tier:         r,
		Level:        powerLevel,
		Enchantments: g.enchant(r, powerLevel),
	}
}

// enchant rolls one enchantment per slot of rarity r. Kinds are drawn with
// replacement, so duplicates are possible.
//
// Postcondition: len(result) == r.EnchantmentSlots() <= MaxEnchantments.
func (g *Generator) enchant(r Rarity, powerLevel uint32) []Enchantment {
	n := r.EnchantmentSlots()
	if n == 0 {
		return nil
	}
	out := make([]Enchantment, 0, n)
	for i := 0; i < n; i++ {
		kind := EnchantmentKinds[dice.Pick(g.src, len(EnchantmentKinds))]
		out = append(out, Enchantment{
			Kind:   kind,
			Amount: EnchantmentAmount(g.tables.Enchantments, kind, powerLevel, r),
		})
	}
	return out
}

// StarterWeapon returns the fixed Common weapon granted at character creation
// and reset. It never consults a randomness source.
func StarterWeapon() *Weapon {
	return &Weapon{
		Gear: Gear{
			ID:    uuid.NewString(),
			Name:  StarterWeaponName,
			Tier:  Common,
			Level: 1,
		},
		Damage:      StarterWeaponDamage,
		CritHitRate: StarterWeaponCritHitRate,
	}
}

// Starter weapon constants.
const (
	StarterWeaponName        = "Rusty Sword"
	StarterWeaponDamage      = 5
	StarterWeaponCritHitRate = 500
)
