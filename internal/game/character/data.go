// Package character owns the player character: its persistent data, the
// session state derived from it, and every operation that mutates either.
package character

import (
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/progression"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Metadata identifies a character.
type Metadata struct {
	Name  string
	Class Class
}

// General holds progression and dungeon depth.
type General struct {
	Progress     progression.Track
	DungeonFloor uint32
	HighestFloor uint32
}

// Equipped records the id of the item in each slot. An empty string means the
// slot is empty.
type Equipped struct {
	Weapon string
	Armor  string
	Ring   string
}

// Get returns the id equipped in slot s.
func (e Equipped) Get(s item.Slot) string {
	switch s {
	case item.SlotWeapon:
		return e.Weapon
	case item.SlotArmor:
		return e.Armor
	case item.SlotRing:
		return e.Ring
	default:
		panic("character: unhandled slot " + s.String())
	}
}

func (e *Equipped) set(s item.Slot, id string) {
	switch s {
	case item.SlotWeapon:
		e.Weapon = id
	case item.SlotArmor:
		e.Armor = id
	case item.SlotRing:
		e.Ring = id
	default:
		panic("character: unhandled slot " + s.String())
	}
}

// Data is the persistent shape of a character. It carries everything needed
// to rebuild the session state by replaying equip on load.
type Data struct {
	Metadata  Metadata
	General   General
	Combat    stats.Base
	Purse     inventory.Purse
	Inventory *inventory.Inventory
	Equipped  Equipped
}

// Temporary holds the session-only current values. They are reset to the
// effective maxima on load and on reset.
type Temporary struct {
	Health uint32
	Mana   uint32
}

// starting returns the data of a brand-new character of class c.
func starting(name string, c Class) Data {
	return Data{
		Metadata: Metadata{Name: name, Class: c},
		General: General{
			Progress:     progression.NewTrack(),
			DungeonFloor: StartingFloor,
			HighestFloor: StartingFloor,
		},
		Combat:    c.StartingStats(),
		Inventory: inventory.New(),
	}
}
