// Package inventory holds a character's owned items in keyed collections, one
// per item category, and the character's gold purse.
package inventory

import (
	"sort"

	"github.com/cory-johannsen/dungeon/internal/game/item"
)

// Inventory owns every item a character carries. Equippable items are keyed
// by item id; consumables are keyed by display name and stack by amount.
type Inventory struct {
	Weapons     map[string]*item.Weapon
	Armors      map[string]*item.Armor
	Rings       map[string]*item.Ring
	Consumables map[string]*item.Consumable
}

// New returns an empty Inventory.
//
// Postcondition: all collections are non-nil and empty.
func New() *Inventory {
	return &Inventory{
		Weapons:     make(map[string]*item.Weapon),
		Armors:      make(map[string]*item.Armor),
		Rings:       make(map[string]*item.Ring),
		Consumables: make(map[string]*item.Consumable),
	}
}

// Add places it into the collection for its category. Consumables merge into
// an existing stack with the same display name.
//
// Precondition: it must be non-nil.
// Postcondition: it (or its amount) is owned by exactly one collection.
func (inv *Inventory) Add(it item.Item) {
	switch v := it.(type) {
	case *item.Weapon:
		inv.Weapons[v.ItemID()] = v
	case *item.Armor:
		inv.Armors[v.ItemID()] = v
	case *item.Ring:
		inv.Rings[v.ItemID()] = v
	case *item.Consumable:
		if existing, ok := inv.Consumables[v.DisplayName()]; ok {
			existing.IncreaseAmount(v.Amount)
			return
		}
		stack := *v
		inv.Consumables[v.DisplayName()] = &stack
	default:
		panic("inventory: unhandled item variant")
	}
}

// Equippable returns the weapon, armor or ring with the given id.
//
// Postcondition: ok is true iff id is present in one of the equipment collections.
func (inv *Inventory) Equippable(id string) (item.Equippable, bool) {
	if w, ok := inv.Weapons[id]; ok {
		return w, true
	}
	if a, ok := inv.Armors[id]; ok {
		return a, true
	}
	if r, ok := inv.Rings[id]; ok {
		return r, true
	}
	return nil, false
}

// Consumable returns the consumable stack with the given display name.
func (inv *Inventory) Consumable(name string) (*item.Consumable, bool) {
	c, ok := inv.Consumables[name]
	return c, ok
}

// Remove deletes the equippable item with the given id.
//
// Postcondition: returns true iff an item was removed.
func (inv *Inventory) Remove(id string) bool {
	if _, ok := inv.Weapons[id]; ok {
		delete(inv.Weapons, id)
		return true
	}
	if _, ok := inv.Armors[id]; ok {
		delete(inv.Armors, id)
		return true
	}
	if _, ok := inv.Rings[id]; ok {
		delete(inv.Rings, id)
		return true
	}
	return false
}

// TakeConsumable removes n units from the named stack and deletes the stack
// when nothing remains.
//
// Postcondition: returns the number of units actually taken (<= n) and whether
// the stack existed.
func (inv *Inventory) TakeConsumable(name string, n uint32) (uint32, bool) {
	c, ok := inv.Consumables[name]
	if !ok {
		return 0, false
	}
	before := c.Amount
	if c.DecreaseAmount(n) == 0 {
		delete(inv.Consumables, name)
	}
	return before - c.Amount, true
}

// Clear empties every collection.
func (inv *Inventory) Clear() {
	clear(inv.Weapons)
	clear(inv.Armors)
	clear(inv.Rings)
	clear(inv.Consumables)
}

// Len returns the number of entries across all collections. A consumable
// stack counts once regardless of its amount.
func (inv *Inventory) Len() int {
	return len(inv.Weapons) + len(inv.Armors) + len(inv.Rings) + len(inv.Consumables)
}

// EquippableIDs returns the ids of every weapon, armor and ring, sorted.
//
// Postcondition: returned slice is a fresh copy.
func (inv *Inventory) EquippableIDs() []string {
	ids := make([]string, 0, len(inv.Weapons)+len(inv.Armors)+len(inv.Rings))
	for id := range inv.Weapons {
		ids = append(ids, id)
	}
	for id := range inv.Armors {
		ids = append(ids, id)
	}
	for id := range inv.Rings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ConsumableNames returns the display name of every consumable stack, sorted.
func (inv *Inventory) ConsumableNames() []string {
	names := make([]string, 0, len(inv.Consumables))
	for name := range inv.Consumables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
