package reward

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
)

// BossPotions is the number of potions every boss drops.
const BossPotions = 2

// Recipient receives rewards. *character.Character satisfies it.
type Recipient interface {
	Purse() *inventory.Purse
	Inventory() *inventory.Inventory
	// GainExp adds experience and returns the number of levels gained.
	GainExp(exp uint32) uint32
	// Floor returns the current dungeon floor.
	Floor() uint32
}

// Generator rolls rewards and applies them to a Recipient.
type Generator struct {
	table  Table
	items  *item.Generator
	src    dice.Source
	logger *zap.Logger
}

// NewGenerator creates a Generator.
//
// Precondition: table passes Validate; items, src and logger must be non-nil.
func NewGenerator(table Table, items *item.Generator, src dice.Source, logger *zap.Logger) *Generator {
	return &Generator{table: table, items: items, src: src, logger: logger}
}

// Table returns the reward table the generator rolls against.
func (g *Generator) Table() Table {
	return g.table
}

// NormalEnemy rolls and applies the reward for a defeated normal enemy:
// gold and exp at the normal multiplier with no floor bonus, and one random
// equipment item at the enemy's level.
//
// Postcondition: gold, exp and the item are already applied to r.
func (g *Generator) NormalEnemy(r Recipient, enemyLevel uint32) NormalEnemyDrops {
	d := NormalEnemyDrops{
		Gold: Scale(g.table.Gold.Roll(g.src), g.table.NormalMultiplier),
		Exp:  Scale(g.table.Exp.Roll(g.src), g.table.NormalMultiplier),
		Item: g.items.Equipment(enemyLevel),
	}
	r.Purse().Add(d.Gold)
	d.LevelsGained = r.GainExp(d.Exp)
	r.Inventory().Add(d.Item)

	g.logger.Info("normal enemy reward",
		zap.Uint32("gold", d.Gold),
		zap.Uint32("exp", d.Exp),
		zap.Uint32("levels_gained", d.LevelsGained),
		zap.String("item", d.Item.DisplayName()),
	)
	return d
}

// BossEnemy rolls and applies the reward for a defeated boss: gold at the
// boss multiplier, exp at the boss multiplier plus the floor bonus, two
// equipment items and BossPotions potions of one rolled rarity.
//
// Postcondition: exactly two items and exactly BossPotions potions were added.
func (g *Generator) BossEnemy(r Recipient, enemyLevel uint32) BossEnemyDrops {
	d := BossEnemyDrops{
		Gold: Scale(g.table.Gold.Roll(g.src), g.table.BossMultiplier),
		Exp:  ScaleExp(g.table.Exp.Roll(g.src), g.table.BossMultiplier, r.Floor()),
	}
	for i := range d.Items {
		d.Items[i] = g.items.Equipment(enemyLevel)
	}
	d.Potion = g.items.HealthPotion(BossPotions)

	r.Purse().Add(d.Gold)
	d.LevelsGained = r.GainExp(d.Exp)
	for _, it := range d.Items {
		r.Inventory().Add(it)
	}
	r.Inventory().Add(d.Potion)

	g.logger.Info("boss enemy reward",
		zap.Uint32("gold", d.Gold),
		zap.Uint32("exp", d.Exp),
		zap.Uint32("levels_gained", d.LevelsGained),
		zap.Strings("items", []string{d.Items[0].DisplayName(), d.Items[1].DisplayName()}),
		zap.String("potion", d.Potion.DisplayName()),
	)
	return d
}

// TreasureChest rolls and applies a chest: gold at the treasure multiplier,
// no exp, and one equipment item scaled by the recipient's dungeon floor.
func (g *Generator) TreasureChest(r Recipient) TreasureChestDrops {
	d := TreasureChestDrops{
		Gold: Scale(g.table.Gold.Roll(g.src), g.table.TreasureMultiplier),
		Item: g.items.Equipment(r.Floor()),
	}
	r.Purse().Add(d.Gold)
	r.Inventory().Add(d.Item)

	g.logger.Info("treasure chest reward",
		zap.Uint32("gold", d.Gold),
		zap.String("item", d.Item.DisplayName()),
	)
	return d
}
