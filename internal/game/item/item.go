package item

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Category identifies which inventory collection an item belongs to.
type Category int

const (
	CategoryConsumable Category = iota
	CategoryWeapon
	CategoryArmor
	CategoryRing
)

// String returns the display label of c.
func (c Category) String() string {
	switch c {
	case CategoryConsumable:
		return "consumable"
	case CategoryWeapon:
		return "weapon"
	case CategoryArmor:
		return "armor"
	case CategoryRing:
		return "ring"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Slot identifies an equipment slot. Each slot holds at most one item.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotRing
)

// Slots lists every equipment slot.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotRing}

// String returns the display label of s.
func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	case SlotRing:
		return "ring"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Item is implemented by exactly the four variants in this package:
// *Consumable, *Weapon, *Armor and *Ring.
type Item interface {
	Category() Category
	DisplayName() string
	Rarity() Rarity
	SellValue() uint32
	sealed()
}

// Equippable is an Item that occupies an equipment slot and contributes stats.
type Equippable interface {
	Item
	// ItemID is the globally unique identity of the item.
	ItemID() string
	Slot() Slot
	// Bonus is the base contribution plus every enchantment.
	Bonus() stats.Bonus
	Enchants() []Enchantment
}

// Gear carries the fields shared by every equippable variant.
type Gear struct {
	ID           string
	Name         string
	Tier         Rarity
	Level        uint32
	Enchantments []Enchantment
}

func (g *Gear) ItemID() string { return g.ID }
func (g *Gear) DisplayName() string { return g.Name }
func (g *Gear) Rarity() Rarity { return g.Tier }
func (g *Gear) SellValue() uint32 { return g.Tier.SellValue() }
func (g *Gear) Enchants() []Enchantment { return g.Enchantments }
func (g *Gear) sealed() {}

// enchantmentBonus folds every enchantment into base.
func (g *Gear) enchantmentBonus(base stats.Bonus) stats.Bonus {
	for _, e := range g.Enchantments {
		base = base.Plus(e.Bonus())
	}
	return base
}

// Weapon raises damage and critical hit rate.
type Weapon struct {
	Gear
	Damage      uint32
	CritHitRate stats.Rate
}

func (w *Weapon) Category() Category { return CategoryWeapon }
func (w *Weapon) Slot() Slot { return SlotWeapon }

// Bonus returns damage and crit rate plus every enchantment.
func (w *Weapon) Bonus() stats.Bonus {
	return w.enchantmentBonus(stats.Bonus{Damage: w.Damage, CritHitRate: w.CritHitRate})
}

// Armor raises max health and defense.
type Armor struct {
	Gear
	Health  uint32
	Defense uint32
}

func (a *Armor) Category() Category { return CategoryArmor }
func (a *Armor) Slot() Slot { return SlotArmor }

// Bonus returns max health and defense plus every enchantment.
func (a *Armor) Bonus() stats.Bonus {
	return a.enchantmentBonus(stats.Bonus{MaxHealth: a.Health, Defense: a.Defense})
}

// Ring raises max mana.
type Ring struct {
	Gear
	Mana uint32
}

func (r *Ring) Category() Category { return CategoryRing }
func (r *Ring) Slot() Slot { return SlotRing }

// Bonus returns max mana plus every enchantment.
func (r *Ring) Bonus() stats.Bonus {
	return r.enchantmentBonus(stats.Bonus{MaxMana: r.Mana})
}

// Describe returns a one-line summary of an equippable item for display.
func Describe(e Equippable) string {
	var body string
	switch v := e.(type) {
	case *Weapon:
		body = fmt.Sprintf("damage %d, crit %s", v.Damage, v.CritHitRate.Percent())
	case *Armor:
		body = fmt.Sprintf("health %d, defense %d", v.Health, v.Defense)
	case *Ring:
		body = fmt.Sprintf("mana %d", v.Mana)
	default:
		panic(fmt.Sprintf("item: unhandled equippable %T", e))
	}
	s := fmt.Sprintf("%s [%s] (%s)", e.DisplayName(), e.Rarity(), body)
	for _, en := range e.Enchants() {
		s += ", " + en.String()
	}
	return s
}
