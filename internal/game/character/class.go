package character

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/dungeon/internal/game/skill"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Class selects a character's starting stats and class skill.
type Class int

const (
	Knight Class = iota
	Mage
	Cleric
)

// Classes lists every playable class.
var Classes = []Class{Knight, Mage, Cleric}

// String returns the display name of c.
func (c Class) String() string {
	switch c {
	case Knight:
		return "Knight"
	case Mage:
		return "Mage"
	case Cleric:
		return "Cleric"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Valid reports whether c is one of the defined classes.
func (c Class) Valid() bool {
	return c >= Knight && c <= Cleric
}

// ParseClass resolves a case-insensitive class name.
func ParseClass(s string) (Class, error) {
	for _, c := range Classes {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", s)
}

// StartingStats returns the fixed base combat stats a new or reset character
// of class c starts with.
func (c Class) StartingStats() stats.Base {
	switch c {
	case Knight:
		return stats.Base{MaxHealth: 120, MaxMana: 20, Defense: 5, Damage: 8, CritHitRate: 500, CritDamageMultiplier: 15000}
	case Mage:
		return stats.Base{MaxHealth: 80, MaxMana: 60, Defense: 2, Damage: 10, CritHitRate: 800, CritDamageMultiplier: 17500}
	case Cleric:
		return stats.Base{MaxHealth: 100, MaxMana: 40, Defense: 3, Damage: 7, CritHitRate: 500, CritDamageMultiplier: 15000}
	default:
		panic(fmt.Sprintf("character: unhandled class %d", int(c)))
	}
}

// Skill returns the class skill of c.
func (c Class) Skill() skill.ID {
	switch c {
	case Knight:
		return skill.ShieldWall
	case Mage:
		return skill.ArcaneBolt
	case Cleric:
		return skill.Mend
	default:
		return skill.None
	}
}
