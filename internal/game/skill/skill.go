// Package skill names every skill a class or boss can use.
package skill

import "fmt"

// ID identifies a skill.
type ID int

const (
	// None is the skill of a normal enemy.
	None ID = iota
	// Unknown is the no-op fallback for a boss whose name has no skill.
	Unknown
	// Smash deals 20% of the target's max health as pure damage.
	Smash
	// FireBreath deals 12% of the target's max health as pure damage and
	// strips defense for the rest of the encounter.
	FireBreath
	// ShieldWall raises the caster's defense for the rest of the encounter.
	ShieldWall
	// ArcaneBolt deals twice the caster's damage.
	ArcaneBolt
	// Mend restores a share of the caster's max health.
	Mend
)

// String returns the display name of id.
func (id ID) String() string {
	switch id {
	case None:
		return "None"
	case Unknown:
		return "Unknown"
	case Smash:
		return "Smash"
	case FireBreath:
		return "Fire Breath"
	case ShieldWall:
		return "Shield Wall"
	case ArcaneBolt:
		return "Arcane Bolt"
	case Mend:
		return "Mend"
	default:
		return fmt.Sprintf("ID(%d)", int(id))
	}
}

// ManaCost returns the mana a class skill consumes. Enemy skills are free.
func ManaCost(id ID) uint32 {
	switch id {
	case ShieldWall:
		return 10
	case ArcaneBolt:
		return 15
	case Mend:
		return 12
	default:
		return 0
	}
}

// bossSkills maps boss names to their fixed skill.
var bossSkills = map[string]ID{
	"Cyclops": Smash,
	"Dragon":  FireBreath,
}

// BossSkill returns the fixed skill of the boss with the given name. Names
// without an entry map to Unknown rather than being rejected.
func BossSkill(name string) ID {
	if id, ok := bossSkills[name]; ok {
		return id
	}
	return Unknown
}
