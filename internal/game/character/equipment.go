package character

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Equipped returns the item in slot s.
func (c *Character) Equipped(s item.Slot) (item.Equippable, bool) {
	id := c.data.Equipped.Get(s)
	if id == "" {
		return nil, false
	}
	return c.data.Inventory.Equippable(id)
}

// IsEquipped reports whether the item with the given id occupies a slot.
func (c *Character) IsEquipped(id string) bool {
	if id == "" {
		return false
	}
	for _, s := range item.Slots {
		if c.data.Equipped.Get(s) == id {
			return true
		}
	}
	return false
}

// Equip places the inventory item with the given id into its slot. Any item
// already in that slot is unequipped first.
//
// Precondition: id must name a weapon, armor or ring in the inventory.
// Postcondition: on success the item's full contribution is part of the
// boosts and is stored for an exact unequip; on error nothing changed.
func (c *Character) Equip(id string) error {
	e, ok := c.data.Inventory.Equippable(id)
	if !ok {
		return fmt.Errorf("equipping %q: %w", id, ErrItemNotFound)
	}
	s := e.Slot()
	c.data.Equipped.set(s, id)
	c.applied[s] = e.Bonus()
	c.rebuildBoosts()
	c.clampTemporary()
	return nil
}

// Unequip empties slot s. An empty slot is a no-op.
//
// Postcondition: the contribution stored at equip time no longer counts
// towards the boosts; current health and mana are clamped to the new maxima.
func (c *Character) Unequip(s item.Slot) {
	if c.data.Equipped.Get(s) == "" {
		return
	}
	c.applied[s] = stats.Bonus{}
	c.data.Equipped.set(s, "")
	c.rebuildBoosts()
	c.clampTemporary()
}

// DeleteItem discards an equippable item by id, or a whole consumable stack by
// display name. Equipped items are unequipped first.
func (c *Character) DeleteItem(key string) error {
	if e, ok := c.data.Inventory.Equippable(key); ok {
		c.unequipIfEquipped(e)
		c.data.Inventory.Remove(key)
		return nil
	}
	if _, ok := c.data.Inventory.Consumable(key); ok {
		delete(c.data.Inventory.Consumables, key)
		return nil
	}
	return fmt.Errorf("deleting %q: %w", key, ErrItemNotFound)
}

// SellItem sells an equippable item by id, or one unit of a consumable stack
// by display name, and returns the gold received. Equipped items are
// unequipped first.
func (c *Character) SellItem(key string) (uint32, error) {
	if e, ok := c.data.Inventory.Equippable(key); ok {
		c.unequipIfEquipped(e)
		c.data.Inventory.Remove(key)
		gold := e.SellValue()
		c.data.Purse.Add(gold)
		return gold, nil
	}
	if p, ok := c.data.Inventory.Consumable(key); ok {
		gold := p.SellValue()
		c.data.Inventory.TakeConsumable(key, 1)
		c.data.Purse.Add(gold)
		return gold, nil
	}
	return 0, fmt.Errorf("selling %q: %w", key, ErrItemNotFound)
}

// UsePotion drinks one potion from the named stack and returns the health
// restored.
//
// Postcondition: on success exactly one unit was consumed; the stack is
// deleted when it runs out. A character at full health keeps the potion and
// gets ErrFullHealth.
func (c *Character) UsePotion(name string) (uint32, error) {
	p, ok := c.data.Inventory.Consumable(name)
	if !ok {
		return 0, fmt.Errorf("drinking %q: %w", name, ErrItemNotFound)
	}
	maxHealth := c.Stats().MaxHealth
	if c.temp.Health >= maxHealth {
		return 0, fmt.Errorf("drinking %q: %w", name, ErrFullHealth)
	}
	amount := p.RestoreAmount(maxHealth)
	c.data.Inventory.TakeConsumable(name, 1)
	return c.Heal(amount), nil
}

func (c *Character) unequipIfEquipped(e item.Equippable) {
	if c.data.Equipped.Get(e.Slot()) == e.ItemID() {
		c.Unequip(e.Slot())
	}
}
