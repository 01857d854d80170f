package item

import "fmt"

// Consumable is a stackable health potion. Its identity is its display name,
// which includes the rarity, so potions of different tiers are distinct
// inventory entries.
type Consumable struct {
	Tier   Rarity
	Amount uint32
}

// NewHealthPotion returns a stack of amount health potions of rarity r.
func NewHealthPotion(r Rarity, amount uint32) *Consumable {
	return &Consumable{Tier: r, Amount: amount}
}

// HealthPotionName returns the display name of a health potion of rarity r.
func HealthPotionName(r Rarity) string {
	return fmt.Sprintf("%s Health Potion", r)
}

func (c *Consumable) Category() Category { return CategoryConsumable }
func (c *Consumable) DisplayName() string { return HealthPotionName(c.Tier) }
func (c *Consumable) Rarity() Rarity { return c.Tier }
func (c *Consumable) SellValue() uint32 { return c.Tier.SellValue() }
func (c *Consumable) sealed() {}

// RestorePercentage returns the share of max health one potion restores.
func (c *Consumable) RestorePercentage() uint32 {
	return c.Tier.RestorePercentage()
}

// RestoreAmount returns the health one potion restores for a given max health.
func (c *Consumable) RestoreAmount(maxHealth uint32) uint32 {
	return uint32(uint64(maxHealth) * uint64(c.RestorePercentage()) / 100)
}

// IncreaseAmount adds n to the stack.
func (c *Consumable) IncreaseAmount(n uint32) {
	if c.Amount > ^uint32(0)-n {
		c.Amount = ^uint32(0)
		return
	}
	c.Amount += n
}

// DecreaseAmount removes n from the stack and returns the remaining amount.
//
// Postcondition: removing more than available leaves zero; the caller deletes
// the stack when the result is zero.
func (c *Consumable) DecreaseAmount(n uint32) uint32 {
	if n >= c.Amount {
		c.Amount = 0
	} else {
		c.Amount -= n
	}
	return c.Amount
}
