package reward

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
)

// ErrInvalidQuantity is returned when a purchase asks for zero items.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Customer is a character that trades with the shop. *character.Character
// satisfies it.
type Customer interface {
	Purse() *inventory.Purse
	Inventory() *inventory.Inventory
	// SellItem removes an item by id, or one potion by display name, and
	// credits its sell value.
	SellItem(key string) (uint32, error)
}

// Shop sells health potions and buys back any item at its sell value.
type Shop struct {
	markup uint32
}

// NewShop creates a shop pricing potions at markup times their sell value.
func NewShop(markup uint32) Shop {
	return Shop{markup: max(markup, 1)}
}

// PotionPrice returns the price of one potion of rarity r.
func (s Shop) PotionPrice(r item.Rarity) uint32 {
	return Scale(r.SellValue(), s.markup)
}

// Buy sells qty potions of rarity r to c and returns the gold spent.
//
// Postcondition: on error neither the purse nor the inventory changed.
func (s Shop) Buy(c Customer, r item.Rarity, qty uint32) (uint32, error) {
	if qty == 0 {
		return 0, ErrInvalidQuantity
	}
	if !r.Valid() {
		return 0, fmt.Errorf("buying potion of rarity %d: invalid rarity", int(r))
	}
	cost := Scale(s.PotionPrice(r), qty)
	if err := c.Purse().Spend(cost); err != nil {
		return 0, fmt.Errorf("buying %d %s: %w", qty, item.HealthPotionName(r), err)
	}
	c.Inventory().Add(item.NewHealthPotion(r, qty))
	return cost, nil
}

// Sell buys back the item identified by key and returns the gold paid.
func (s Shop) Sell(c Customer, key string) (uint32, error) {
	return c.SellItem(key)
}
