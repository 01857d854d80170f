package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

var never = encounter.PolicyFunc(func(encounter.EnemyView) bool { return false })

func template(id string, kind enemy.Kind, health, damage uint32) *enemy.Template {
	return &enemy.Template{
		ID: id, Name: id, Kind: kind,
		Health:               enemy.Scaling{Base: health},
		Damage:               enemy.Scaling{Base: damage},
		CritDamageMultiplier: 1,
	}
}

func newSession(t *testing.T, templates ...*enemy.Template) *session.Session {
	t.Helper()
	ch, err := character.New("Aria", character.Knight, character.Options{})
	require.NoError(t, err)
	roster, err := enemy.NewRoster(templates)
	require.NoError(t, err)

	src := dice.NewFixedSource([]int{0}, []float64{0.99})
	items := item.NewGenerator(item.DefaultTables(), src, item.Options{})
	return session.New(ch, session.Deps{
		Roster:  roster,
		Rewards: reward.NewGenerator(reward.DefaultTable(), items, src, zap.NewNop()),
		Shop:    reward.NewShop(reward.DefaultTable().PotionMarkup),
		Policy:  never,
		Source:  src,
		Logger:  zap.NewNop(),
	})
}

func TestExplore_VictoryClosesEncounter(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))

	_, err := s.Explore()
	require.NoError(t, err)
	_, inFight := s.Encounter()
	require.True(t, inFight)

	turn, err := s.Attack()
	require.NoError(t, err)

	assert.Equal(t, encounter.Victory, turn.Status)
	assert.Contains(t, turn.Lines, "Aria defeats the dummy!")
	_, inFight = s.Encounter()
	assert.False(t, inFight)
	assert.False(t, s.BossDefeated(), "a normal enemy does not unlock the stairs")
	assert.Equal(t, uint32(10), s.Character().Gold())
}

func TestExplore_RejectsSecondEncounter(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))
	_, err := s.Explore()
	require.NoError(t, err)

	_, err = s.Explore()
	assert.ErrorIs(t, err, session.ErrInCombat)
	_, err = s.ChallengeBoss()
	assert.ErrorIs(t, err, session.ErrInCombat)
}

func TestCombatActionsNeedAnEncounter(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))

	_, err := s.Attack()
	assert.ErrorIs(t, err, session.ErrNotInCombat)
	_, err = s.CastSkill()
	assert.ErrorIs(t, err, session.ErrNotInCombat)
	_, err = s.Flee()
	assert.ErrorIs(t, err, session.ErrNotInCombat)
}

func TestChallengeBoss_NoBossTemplates(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))

	_, err := s.ChallengeBoss()

	assert.ErrorIs(t, err, enemy.ErrNoTemplates)
	_, inFight := s.Encounter()
	assert.False(t, inFight)
}

func TestDescend_RequiresBossVictory(t *testing.T) {
	s := newSession(t,
		template("dummy", enemy.Normal, 1, 0),
		template("strawman", enemy.Boss, 1, 0),
	)

	_, err := s.Descend()
	require.ErrorIs(t, err, session.ErrBossNotDefeated)

	_, err = s.ChallengeBoss()
	require.NoError(t, err)
	_, err = s.Descend()
	require.ErrorIs(t, err, session.ErrInCombat)

	turn, err := s.Attack()
	require.NoError(t, err)
	require.Equal(t, encounter.Victory, turn.Status)
	assert.True(t, s.BossDefeated())

	drops, err := s.Descend()
	require.NoError(t, err)
	assert.NotNil(t, drops.Item)
	assert.Equal(t, uint32(2), s.Character().Floor())
	assert.False(t, s.BossDefeated(), "the new floor has its own boss")
}

func TestAttack_DefeatResetsCharacter(t *testing.T) {
	s := newSession(t, template("titan", enemy.Normal, 1000, 10000))
	s.Character().NextFloor()

	_, err := s.Explore()
	require.NoError(t, err)
	turn, err := s.Attack()
	require.NoError(t, err)

	assert.Equal(t, encounter.Defeat, turn.Status)
	assert.Equal(t, uint32(character.StartingFloor), s.Character().Floor())
	assert.Equal(t, uint32(2), s.Character().HighestFloor())
	_, inFight := s.Encounter()
	assert.False(t, inFight)
}

func TestFlee_EndsEncounterWithoutRewards(t *testing.T) {
	s := newSession(t, template("titan", enemy.Normal, 1000, 0))
	_, err := s.Explore()
	require.NoError(t, err)

	turn, err := s.Flee()
	require.NoError(t, err)

	assert.Equal(t, encounter.Fled, turn.Status)
	assert.Equal(t, []string{"Aria flees from the titan."}, turn.Lines)
	assert.Zero(t, s.Character().Gold())
}

func TestCastSkill_ShieldWallGivesTheEnemyATurn(t *testing.T) {
	s := newSession(t, template("titan", enemy.Normal, 1000, 0))
	_, err := s.Explore()
	require.NoError(t, err)

	turn, err := s.CastSkill()
	require.NoError(t, err)

	assert.Equal(t, encounter.InProgress, turn.Status)
	assert.Len(t, turn.Lines, 2)
}

func TestDrinkPotion_OutOfCombat(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))
	ch := s.Character()
	ch.Inventory().Add(item.NewHealthPotion(item.Common, 1))

	_, err := s.DrinkPotion(item.HealthPotionName(item.Common))
	assert.ErrorIs(t, err, character.ErrFullHealth)

	ch.TakeDamage(50)
	turn, err := s.DrinkPotion(item.HealthPotionName(item.Common))
	require.NoError(t, err)
	assert.Len(t, turn.Lines, 1)
	assert.Greater(t, ch.Health(), ch.Stats().MaxHealth-50)
}

func TestShop_ClosedDuringCombat(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))
	s.Character().Purse().Add(100)
	_, err := s.Explore()
	require.NoError(t, err)

	_, err = s.Buy(item.Common, 1)
	assert.ErrorIs(t, err, session.ErrInCombat)
	_, err = s.Sell("anything")
	assert.ErrorIs(t, err, session.ErrInCombat)
}

func TestShop_BuyAndSell(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))
	s.Character().Purse().Add(100)

	cost, err := s.Buy(item.Common, 2)
	require.NoError(t, err)
	assert.Equal(t, 2*s.Shop().PotionPrice(item.Common), cost)

	gold, err := s.Sell(item.HealthPotionName(item.Common))
	require.NoError(t, err)
	assert.Equal(t, item.Common.SellValue(), gold)
	assert.Equal(t, 100-cost+gold, s.Character().Gold())
}

func TestEquipment_LockedDuringCombat(t *testing.T) {
	s := newSession(t, template("dummy", enemy.Normal, 1, 0))
	ch := s.Character()
	w, ok := ch.Equipped(item.SlotWeapon)
	require.True(t, ok)
	before := ch.Boosts()
	_, err := s.Explore()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Equip(w.ItemID()), session.ErrInCombat)
	assert.ErrorIs(t, s.Unequip(item.SlotWeapon), session.ErrInCombat)
	assert.ErrorIs(t, s.Delete(w.ItemID()), session.ErrInCombat)
	assert.True(t, ch.IsEquipped(w.ItemID()))
	assert.Equal(t, before, ch.Boosts())

	_, err = s.Attack()
	require.NoError(t, err)
	require.NoError(t, s.Unequip(item.SlotWeapon))
	assert.False(t, ch.IsEquipped(w.ItemID()))
}
