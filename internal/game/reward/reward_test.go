package reward_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
)

var _ reward.Recipient = (*character.Character)(nil)
var _ reward.Customer = (*character.Character)(nil)

func newHero(t testing.TB) *character.Character {
	t.Helper()
	c, err := character.New("Hero", character.Knight, character.Options{})
	require.NoError(t, err)
	return c
}

func newGenerator(src dice.Source, logger *zap.Logger) *reward.Generator {
	items := item.NewGenerator(item.DefaultTables(), dice.NewCryptoSource(), item.Options{})
	return reward.NewGenerator(reward.DefaultTable(), items, src, logger)
}

func TestScaleExp(t *testing.T) {
	assert.Equal(t, uint32(97), reward.ScaleExp(30, 3, 1))
	assert.Equal(t, uint32(30), reward.ScaleExp(30, 1, 0))
	assert.Equal(t, uint32(3*3+0*10), reward.ScaleExp(3, 3, 10), "base/4 truncates to zero")
	assert.Equal(t, ^uint32(0), reward.ScaleExp(^uint32(0), 3, 1))
}

func TestDefaultTable_IsValid(t *testing.T) {
	assert.NoError(t, reward.DefaultTable().Validate())
}

func TestTable_Validate_ReportsEveryViolation(t *testing.T) {
	tbl := reward.DefaultTable()
	tbl.Gold = reward.Range{Min: 9, Max: 3}
	tbl.BossMultiplier = 0

	err := tbl.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gold")
	assert.Contains(t, err.Error(), "boss_multiplier")
}

func TestNormalEnemy(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	g := newGenerator(dice.NewFixedSource([]int{5, 10}, nil), zap.New(core))
	c := newHero(t)

	d := g.NormalEnemy(c, 2)

	assert.Equal(t, uint32(15), d.Gold)
	assert.Equal(t, uint32(30), d.Exp)
	assert.Zero(t, d.LevelsGained)
	require.NotNil(t, d.Item)
	assert.Equal(t, uint32(15), c.Gold())
	assert.Equal(t, uint32(30), c.Progress().CurrentExp)
	_, ok := c.Inventory().Equippable(d.Item.ItemID())
	assert.True(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("normal enemy reward").Len())
	assert.Len(t, d.Lines(), 3)
	assert.Equal(t, "Gold: 15 Gold Coins", d.Lines()[0])
}

func TestBossEnemy_UsesFloorBonus(t *testing.T) {
	g := newGenerator(dice.NewFixedSource([]int{5, 10}, nil), zap.NewNop())
	c := newHero(t)

	d := g.BossEnemy(c, 3)

	assert.Equal(t, uint32(45), d.Gold)
	assert.Equal(t, uint32(97), d.Exp)
	assert.Equal(t, uint32(45), c.Gold())
	assert.Len(t, d.Lines(), 5)
}

func TestProperty_BossEnemy_AlwaysTwoItemsAndTwoPotions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		floats := rapid.SliceOfN(rapid.Float64Range(0, 0.999999), 1, 6).Draw(rt, "floats")
		ints := rapid.SliceOfN(rapid.IntRange(0, 1000), 1, 12).Draw(rt, "ints")
		src := dice.NewFixedSource(ints, floats)
		items := item.NewGenerator(item.DefaultTables(), src, item.Options{})
		g := reward.NewGenerator(reward.DefaultTable(), items, src, zap.NewNop())
		c := newHero(t)
		before := c.Inventory().Len()

		d := g.BossEnemy(c, rapid.Uint32Range(1, 20).Draw(rt, "level"))

		require.NotNil(rt, d.Items[0])
		require.NotNil(rt, d.Items[1])
		assert.NotEqual(rt, d.Items[0].ItemID(), d.Items[1].ItemID())
		assert.Equal(rt, uint32(reward.BossPotions), d.Potion.Amount)
		assert.Equal(rt, before+3, c.Inventory().Len())
		p, ok := c.Inventory().Consumable(d.Potion.DisplayName())
		require.True(rt, ok)
		assert.Equal(rt, uint32(reward.BossPotions), p.Amount)
	})
}

func TestTreasureChest_NoExpAndFloorScaledItem(t *testing.T) {
	g := newGenerator(dice.NewFixedSource([]int{5}, nil), zap.NewNop())
	c := newHero(t)
	c.NextFloor()
	c.NextFloor()

	d := g.TreasureChest(c)

	assert.Equal(t, uint32(30), d.Gold)
	assert.Zero(t, c.Progress().TotalExp)
	require.NotNil(t, d.Item)
	var level uint32
	switch v := d.Item.(type) {
	case *item.Weapon:
		level = v.Level
	case *item.Armor:
		level = v.Level
	case *item.Ring:
		level = v.Level
	}
	assert.Equal(t, uint32(3), level)
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gold:\n  min: 1\n  max: 2\nboss_multiplier: 5\n"), 0o644))

	tbl, err := reward.LoadTable(path)

	require.NoError(t, err)
	assert.Equal(t, reward.Range{Min: 1, Max: 2}, tbl.Gold)
	assert.Equal(t, uint32(5), tbl.BossMultiplier)
	assert.Equal(t, reward.DefaultTable().Exp, tbl.Exp, "absent fields keep defaults")
}

func TestLoadTable_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("normal_multiplier: 0\n"), 0o644))

	_, err := reward.LoadTable(path)
	assert.Error(t, err)
}

func TestShop_BuyAndSell(t *testing.T) {
	shop := reward.NewShop(2)
	c := newHero(t)
	c.Purse().Add(100)

	assert.Equal(t, uint32(50), shop.PotionPrice(item.Uncommon))

	cost, err := shop.Buy(c, item.Uncommon, 3)
	require.ErrorIs(t, err, inventory.ErrInsufficientGold)
	assert.Zero(t, cost)
	assert.Equal(t, uint32(100), c.Gold())

	cost, err = shop.Buy(c, item.Common, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(60), cost)
	assert.Equal(t, uint32(40), c.Gold())
	p, ok := c.Inventory().Consumable(item.HealthPotionName(item.Common))
	require.True(t, ok)
	assert.Equal(t, uint32(3), p.Amount)

	gold, err := shop.Sell(c, item.HealthPotionName(item.Common))
	require.NoError(t, err)
	assert.Equal(t, item.Common.SellValue(), gold)
	assert.Equal(t, uint32(50), c.Gold())

	_, err = shop.Buy(c, item.Common, 0)
	assert.ErrorIs(t, err, reward.ErrInvalidQuantity)
}
