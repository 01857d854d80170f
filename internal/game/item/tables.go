package item

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// WeaponScaling is the base value table for generated weapons.
type WeaponScaling struct {
	BaseDamage          uint32     `yaml:"base_damage"`
	DamagePerLevel      uint32     `yaml:"damage_per_level"`
	BaseCritHitRate     stats.Rate `yaml:"base_crit_hit_rate"`
	CritHitRatePerLevel stats.Rate `yaml:"crit_hit_rate_per_level"`
	Names               []string   `yaml:"names"`
}

// ArmorScaling is the base value table for generated armor.
type ArmorScaling struct {
	BaseHealth      uint32   `yaml:"base_health"`
	HealthPerLevel  uint32   `yaml:"health_per_level"`
	BaseDefense     uint32   `yaml:"base_defense"`
	DefensePerLevel uint32   `yaml:"defense_per_level"`
	Names           []string `yaml:"names"`
}

// RingScaling is the base value table for generated rings.
type RingScaling struct {
	BaseMana     uint32   `yaml:"base_mana"`
	ManaPerLevel uint32   `yaml:"mana_per_level"`
	Names        []string `yaml:"names"`
}

// EnchantmentValues holds the per-power-level value of each enchantment kind
// at the Legendary tier. CritHitRate is in basis points.
type EnchantmentValues struct {
	Damage      uint32 `yaml:"damage"`
	CritHitRate uint32 `yaml:"crit_hit_rate"`
	Health      uint32 `yaml:"health"`
	Defense     uint32 `yaml:"defense"`
	Mana        uint32 `yaml:"mana"`
}

// For returns the per-level value of kind k.
func (v EnchantmentValues) For(k EnchantmentKind) uint32 {
	switch k {
	case EnchantDamage:
		return v.Damage
	case EnchantCritHitRate:
		return v.CritHitRate
	case EnchantHealth:
		return v.Health
	case EnchantDefense:
		return v.Defense
	case EnchantMana:
		return v.Mana
	default:
		panic(fmt.Sprintf("item: unhandled enchantment kind %d", int(k)))
	}
}

// Tables bundles every value table item generation reads.
type Tables struct {
	Rarity       RarityTable       `yaml:"rarity"`
	Weapon       WeaponScaling     `yaml:"weapon"`
	Armor        ArmorScaling      `yaml:"armor"`
	Ring         RingScaling       `yaml:"ring"`
	Enchantments EnchantmentValues `yaml:"enchantments"`
}

// DefaultTables returns the built-in generation tables.
//
// Postcondition: the result passes Validate.
func DefaultTables() Tables {
	return Tables{
		Rarity: DefaultRarityTable,
		Weapon: WeaponScaling{
			BaseDamage:          5,
			DamagePerLevel:      2,
			BaseCritHitRate:     500,
			CritHitRatePerLevel: 25,
			Names:               []string{"Sword", "Axe", "Mace", "Spear", "Dagger"},
		},
		Armor: ArmorScaling{
			BaseHealth:      10,
			HealthPerLevel:  5,
			BaseDefense:     2,
			DefensePerLevel: 1,
			Names:           []string{"Chainmail", "Leather Armor", "Plate Armor", "Robe"},
		},
		Ring: RingScaling{
			BaseMana:     5,
			ManaPerLevel: 3,
			Names:        []string{"Ring", "Band", "Signet"},
		},
		Enchantments: EnchantmentValues{
			Damage:      1,
			CritHitRate: 25,
			Health:      4,
			Defense:     1,
			Mana:        3,
		},
	}
}

// Validate checks the rarity table and that every category has names.
//
// Postcondition: Returns nil iff the tables are usable for generation.
func (t Tables) Validate() error {
	var errs []error
	if err := t.Rarity.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(t.Weapon.Names) == 0 {
		errs = append(errs, errors.New("weapon.names must not be empty"))
	}
	if len(t.Armor.Names) == 0 {
		errs = append(errs, errors.New("armor.names must not be empty"))
	}
	if len(t.Ring.Names) == 0 {
		errs = append(errs, errors.New("ring.names must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item tables validation failed: %v", errs)
	}
	return nil
}

// LoadTablesFromBytes parses and validates item tables from raw YAML.
//
// Postcondition: Returns validated Tables or a non-nil error.
func LoadTablesFromBytes(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parsing item tables YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// LoadTables reads item tables from the YAML file at path.
//
// Precondition: path is a readable file.
// Postcondition: Returns validated Tables or a non-nil error.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("LoadTables: cannot read file %q: %w", path, err)
	}
	t, err := LoadTablesFromBytes(data)
	if err != nil {
		return Tables{}, fmt.Errorf("LoadTables: invalid tables in %q: %w", path, err)
	}
	return t, nil
}
