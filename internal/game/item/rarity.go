// Package item defines item categories, rarity tiers, enchantments and the
// procedural generation of equipment scaled by power level.
package item

import (
	"errors"
	"fmt"
	"math"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// Rarity is the tier of an item. Higher tiers carry more enchantments and are
// worth more.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

// Rarities lists every tier in ascending order.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary}

// MaxEnchantments is the enchantment slot count of the highest tier.
const MaxEnchantments = 4

// String returns the display label of r.
func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
}

// Valid reports whether r is one of the five defined tiers.
func (r Rarity) Valid() bool {
	return r >= Common && r <= Legendary
}

// EnchantmentSlots returns how many enchantments an item of this tier carries.
//
// Postcondition: 0 <= result <= MaxEnchantments.
func (r Rarity) EnchantmentSlots() int {
	if !r.Valid() {
		return 0
	}
	return int(r)
}

// SellValue returns the gold a merchant pays for an item of this tier.
func (r Rarity) SellValue() uint32 {
	switch r {
	case Common:
		return 10
	case Uncommon:
		return 25
	case Rare:
		return 60
	case Epic:
		return 150
	case Legendary:
		return 400
	default:
		return 0
	}
}

// RestorePercentage returns the share of max health a health potion of this
// tier restores.
func (r Rarity) RestorePercentage() uint32 {
	switch r {
	case Common:
		return 20
	case Uncommon:
		return 40
	case Rare:
		return 60
	case Epic:
		return 80
	case Legendary:
		return 100
	default:
		return 0
	}
}

// RarityTable holds the drop probability of each tier, indexed by Rarity.
type RarityTable [5]float64

// DefaultRarityTable is the standard item rarity drop distribution.
var DefaultRarityTable = RarityTable{0.50, 0.25, 0.15, 0.07, 0.03}

// rarityTolerance bounds the floating-point error allowed in the table sum.
const rarityTolerance = 1e-9

// Validate checks that every weight is non-negative, the weights sum to 1.0
// and they never increase from Common to Legendary.
//
// Postcondition: Returns nil iff the table is well-formed.
func (t RarityTable) Validate() error {
	var errs []error
	sum := 0.0
	for i, w := range t {
		if w < 0 {
			errs = append(errs, fmt.Errorf("%s weight must be >= 0, got %f", Rarity(i), w))
		}
		if i > 0 && w > t[i-1] {
			errs = append(errs, fmt.Errorf("%s weight %f exceeds %s weight %f", Rarity(i), w, Rarity(i-1), t[i-1]))
		}
		sum += w
	}
	if math.Abs(sum-1.0) > rarityTolerance {
		errs = append(errs, fmt.Errorf("weights must sum to 1.0, got %f", sum))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rarity table validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// Roll draws a rarity from the table.
//
// Precondition: t passes Validate.
// Postcondition: result is a valid Rarity.
func (t RarityTable) Roll(src dice.Source) Rarity {
	v := src.Float64()
	acc := 0.0
	for i, w := range t {
		acc += w
		if v < acc {
			return Rarity(i)
		}
	}
	// Rounding can leave v just above the accumulated sum; the last tier with
	// weight absorbs it.
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] > 0 {
			return Rarity(i)
		}
	}
	return Common
}
