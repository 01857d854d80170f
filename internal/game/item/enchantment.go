package item

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// EnchantmentKind tags the stat an Enchantment improves.
type EnchantmentKind int

const (
	EnchantDamage EnchantmentKind = iota
	EnchantCritHitRate
	EnchantHealth
	EnchantDefense
	EnchantMana
)

// EnchantmentKinds lists every kind in declaration order.
var EnchantmentKinds = []EnchantmentKind{EnchantDamage, EnchantCritHitRate, EnchantHealth, EnchantDefense, EnchantMana}

// String returns the display label of k.
func (k EnchantmentKind) String() string {
	switch k {
	case EnchantDamage:
		return "Damage"
	case EnchantCritHitRate:
		return "Crit Hit Rate"
	case EnchantHealth:
		return "Health"
	case EnchantDefense:
		return "Defense"
	case EnchantMana:
		return "Mana"
	default:
		return fmt.Sprintf("EnchantmentKind(%d)", int(k))
	}
}

// Enchantment is a tagged additive bonus attached to equipment. Amount is in
// stat points, except for EnchantCritHitRate where it is in basis points.
type Enchantment struct {
	Kind   EnchantmentKind
	Amount uint32
}

// Bonus returns the stat delta this enchantment contributes.
//
// Panics on an unknown kind: every kind must be handled here.
func (e Enchantment) Bonus() stats.Bonus {
	switch e.Kind {
	case EnchantDamage:
		return stats.Bonus{Damage: e.Amount}
	case EnchantCritHitRate:
		return stats.Bonus{CritHitRate: stats.Rate(e.Amount)}
	case EnchantHealth:
		return stats.Bonus{MaxHealth: e.Amount}
	case EnchantDefense:
		return stats.Bonus{Defense: e.Amount}
	case EnchantMana:
		return stats.Bonus{MaxMana: e.Amount}
	default:
		panic(fmt.Sprintf("item: unhandled enchantment kind %d", int(e.Kind)))
	}
}

// String returns a display string such as "+5 Damage" or "+1.25% Crit Hit Rate".
func (e Enchantment) String() string {
	if e.Kind == EnchantCritHitRate {
		return fmt.Sprintf("+%s %s", stats.Rate(e.Amount).Percent(), e.Kind)
	}
	return fmt.Sprintf("+%d %s", e.Amount, e.Kind)
}

// EnchantmentAmount returns the value of an enchantment of kind k rolled at
// powerLevel on an item of rarity r.
//
// Postcondition: result >= 1 for any valid kind; proportional to powerLevel
// and to the rarity tier.
func EnchantmentAmount(perLevel EnchantmentValues, k EnchantmentKind, powerLevel uint32, r Rarity) uint32 {
	tier := uint32(r.EnchantmentSlots())
	v := uint64(perLevel.For(k)) * uint64(powerLevel) * uint64(tier) / MaxEnchantments
	switch {
	case v < 1:
		return 1
	case v > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
