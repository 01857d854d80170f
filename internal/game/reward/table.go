// Package reward rolls and applies the gold, experience and loot a character
// earns from defeated enemies and treasure chests.
package reward

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// Range is an inclusive uniform roll range.
type Range struct {
	Min uint32 `yaml:"min"`
	Max uint32 `yaml:"max"`
}

// Roll draws a value in [Min, Max].
func (r Range) Roll(src dice.Source) uint32 {
	return uint32(dice.Range(src, int(r.Min), int(r.Max)))
}

// Table holds the base reward ranges and the multipliers per source.
type Table struct {
	Gold               Range  `yaml:"gold"`
	Exp                Range  `yaml:"exp"`
	NormalMultiplier   uint32 `yaml:"normal_multiplier"`
	BossMultiplier     uint32 `yaml:"boss_multiplier"`
	TreasureMultiplier uint32 `yaml:"treasure_multiplier"`
	// PotionMarkup multiplies a potion's sell value to get its shop price.
	PotionMarkup uint32 `yaml:"potion_markup"`
}

// DefaultTable returns the built-in reward table.
//
// Postcondition: the result passes Validate.
func DefaultTable() Table {
	return Table{
		Gold:               Range{Min: 10, Max: 30},
		Exp:                Range{Min: 20, Max: 40},
		NormalMultiplier:   1,
		BossMultiplier:     3,
		TreasureMultiplier: 2,
		PotionMarkup:       2,
	}
}

// Validate checks ranges and multipliers.
//
// Postcondition: Returns nil iff every range is ordered and every multiplier
// is at least 1; otherwise every violation is reported.
func (t Table) Validate() error {
	var errs []error
	if t.Gold.Min > t.Gold.Max {
		errs = append(errs, fmt.Errorf("gold min (%d) must be <= max (%d)", t.Gold.Min, t.Gold.Max))
	}
	if t.Exp.Min > t.Exp.Max {
		errs = append(errs, fmt.Errorf("exp min (%d) must be <= max (%d)", t.Exp.Min, t.Exp.Max))
	}
	for name, m := range map[string]uint32{
		"normal_multiplier":   t.NormalMultiplier,
		"boss_multiplier":     t.BossMultiplier,
		"treasure_multiplier": t.TreasureMultiplier,
		"potion_markup":       t.PotionMarkup,
	} {
		if m < 1 {
			errs = append(errs, fmt.Errorf("%s must be >= 1", name))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("reward table: %w", errors.Join(errs...))
	}
	return nil
}

// LoadTableFromBytes parses and validates a reward table from raw YAML.
// Fields absent from the YAML keep their default values.
func LoadTableFromBytes(data []byte) (Table, error) {
	t := DefaultTable()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("parsing reward table YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// LoadTable reads a reward table from the YAML file at path.
//
// Precondition: path is a readable file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("LoadTable: cannot read file %q: %w", path, err)
	}
	t, err := LoadTableFromBytes(data)
	if err != nil {
		return Table{}, fmt.Errorf("LoadTable: invalid table in %q: %w", path, err)
	}
	return t, nil
}

// Scale multiplies a rolled base amount, saturating at the maximum.
func Scale(base, multiplier uint32) uint32 {
	v := uint64(base) * uint64(multiplier)
	if v > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}

// ScaleExp returns base*multiplier + (base/4)*floor, saturating.
func ScaleExp(base, multiplier, floor uint32) uint32 {
	v := uint64(base)*uint64(multiplier) + uint64(base/4)*uint64(floor)
	if v > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
