package reward

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
)

// NormalEnemyDrops reports the reward of a normal enemy.
type NormalEnemyDrops struct {
	Gold         uint32
	Exp          uint32
	LevelsGained uint32
	Item         item.Equippable
}

// Lines returns the report as display lines.
func (d NormalEnemyDrops) Lines() []string {
	lines := []string{goldLine(d.Gold), expLine(d.Exp, d.LevelsGained)}
	return append(lines, itemLine(d.Item))
}

// BossEnemyDrops reports the reward of a boss.
type BossEnemyDrops struct {
	Gold         uint32
	Exp          uint32
	LevelsGained uint32
	Items        [2]item.Equippable
	// Potion is the potion stack granted, with Amount == BossPotions.
	Potion *item.Consumable
}

// Lines returns the report as display lines.
func (d BossEnemyDrops) Lines() []string {
	lines := []string{goldLine(d.Gold), expLine(d.Exp, d.LevelsGained)}
	for _, it := range d.Items {
		lines = append(lines, itemLine(it))
	}
	return append(lines, fmt.Sprintf("Item: %d x %s", d.Potion.Amount, d.Potion.DisplayName()))
}

// TreasureChestDrops reports the contents of a treasure chest.
type TreasureChestDrops struct {
	Gold uint32
	Item item.Equippable
}

// Lines returns the report as display lines.
func (d TreasureChestDrops) Lines() []string {
	return []string{goldLine(d.Gold), itemLine(d.Item)}
}

func goldLine(gold uint32) string {
	return "Gold: " + inventory.FormatGold(gold)
}

func expLine(exp, levels uint32) string {
	if levels == 0 {
		return fmt.Sprintf("Exp: %d", exp)
	}
	return fmt.Sprintf("Exp: %d (level up x%d)", exp, levels)
}

func itemLine(e item.Equippable) string {
	return "Item: " + item.Describe(e)
}
