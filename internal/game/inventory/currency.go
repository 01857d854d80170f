package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// ErrInsufficientGold is returned when a purchase costs more than the purse holds.
var ErrInsufficientGold = errors.New("insufficient gold")

// Purse holds a character's gold.
type Purse struct {
	Gold uint32
}

// Add deposits n gold, saturating at the maximum representable amount.
func (p *Purse) Add(n uint32) {
	p.Gold = stats.SatAdd(p.Gold, n)
}

// Spend withdraws n gold.
//
// Postcondition: on error the purse is unchanged.
func (p *Purse) Spend(n uint32) error {
	if n > p.Gold {
		return fmt.Errorf("spending %d gold with %d available: %w", n, p.Gold, ErrInsufficientGold)
	}
	p.Gold -= n
	return nil
}

// Reset empties the purse.
func (p *Purse) Reset() {
	p.Gold = 0
}

// FormatGold returns a human-readable gold amount, e.g. "1 Gold Coin" or "12 Gold Coins".
func FormatGold(n uint32) string {
	return fmt.Sprintf("%d %s", n, plural(int(n), "Gold Coin"))
}

// plural returns the singular form if n == 1, otherwise appends "s".
func plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
