// Package simulation plays a character through a sequence of encounters
// without a player: the headless driver behind the dungeon CLI.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
	"github.com/cory-johannsen/dungeon/internal/observability"
)

// Options configures a run.
type Options struct {
	Name       string
	Class      character.Class
	DevMode    bool
	Fights     int
	BossEvery  int
	ChestEvery int
	// StartFloor descends the character before the first fight. Values
	// below the starting floor are ignored.
	StartFloor uint32
	Strategy   encounter.Strategy
}

// Summary is the outcome of a run.
type Summary struct {
	Fights        int
	Victories     int
	Defeats       int
	Fled          int
	Bosses        int
	Chests        int
	PotionsBought int
	ItemsSold     int
	Level         uint32
	HighestLevel  uint32
	Floor         uint32
	HighestFloor  uint32
	Gold          uint32
}

// Simulator owns the collaborators of a run.
type Simulator struct {
	roster  *enemy.Roster
	items   *item.Generator
	rewards *reward.Generator
	shop    reward.Shop
	policy  encounter.SkillPolicy
	src     dice.Source
	logger  *zap.Logger
	opts    Options
}

// New wires a simulator from content.
//
// Precondition: policy, src and logger must be non-nil; opts.Class must be
// valid; opts.BossEvery and opts.ChestEvery must be >= 1.
// Postcondition: Returns a ready simulator or a non-nil error.
func New(content Content, policy encounter.SkillPolicy, src dice.Source, logger *zap.Logger, opts Options) (*Simulator, error) {
	if !opts.Class.Valid() {
		return nil, fmt.Errorf("simulation: invalid class %d", int(opts.Class))
	}
	if opts.BossEvery < 1 || opts.ChestEvery < 1 {
		return nil, errors.New("simulation: boss and chest intervals must be >= 1")
	}
	if err := content.Items.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: item tables: %w", err)
	}
	if err := content.Rewards.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: reward table: %w", err)
	}
	roster, err := enemy.NewRoster(content.Enemies)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	items := item.NewGenerator(content.Items, src, item.Options{DevMode: opts.DevMode})
	return &Simulator{
		roster:  roster,
		items:   items,
		rewards: reward.NewGenerator(content.Rewards, items, src, logger),
		shop:    reward.NewShop(content.Rewards.PotionMarkup),
		policy:  policy,
		src:     src,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Run creates a fresh character and plays opts.Fights encounters. Every
// BossEvery-th fight is against a boss; every ChestEvery-th victory opens a
// treasure chest and descends one floor.
//
// Postcondition: Returns the summary of the fights played; a cancelled ctx
// stops the run between fights and returns ctx.Err() with the partial summary.
func (s *Simulator) Run(ctx context.Context) (Summary, error) {
	ch, err := character.New(s.opts.Name, s.opts.Class, character.Options{DevMode: s.opts.DevMode})
	if err != nil {
		return Summary{}, fmt.Errorf("simulation: %w", err)
	}
	for ch.Floor() < s.opts.StartFloor {
		ch.NextFloor()
	}

	var sum Summary
	for fight := 1; fight <= s.opts.Fights; fight++ {
		if err := ctx.Err(); err != nil {
			s.finish(&sum, ch)
			return sum, err
		}
		if err := s.fight(fight, ch, &sum); err != nil {
			s.finish(&sum, ch)
			return sum, err
		}
		s.restock(ch, &sum)
	}
	s.finish(&sum, ch)
	return sum, nil
}

func (s *Simulator) fight(n int, ch *character.Character, sum *Summary) error {
	kind := enemy.Normal
	if n%s.opts.BossEvery == 0 {
		kind = enemy.Boss
	}
	foe, err := s.roster.Spawn(kind, ch.Floor(), s.src)
	if err != nil {
		return fmt.Errorf("simulation: spawning %s for fight %d: %w", kind, n, err)
	}

	logger := observability.EncounterLogger(s.logger, n, ch.Name(), foe.Name(), ch.Floor())
	enc := encounter.New(ch, foe, encounter.Deps{
		Source:  s.src,
		Policy:  s.policy,
		Rewards: s.rewards,
		Logger:  logger,
	})
	status := enc.Autoplay(s.opts.Strategy)

	sum.Fights++
	if foe.IsBoss() {
		sum.Bosses++
	}
	switch status {
	case encounter.Victory:
		sum.Victories++
		if sum.Victories%s.opts.ChestEvery == 0 {
			chest := s.rewards.TreasureChest(ch)
			sum.Chests++
			floor := ch.NextFloor()
			logger.Info("treasure chest opened",
				zap.Strings("drops", chest.Lines()),
				zap.Uint32("next_floor", floor),
			)
		}
	case encounter.Defeat:
		sum.Defeats++
	case encounter.Fled:
		sum.Fled++
	}
	logger.Info("encounter finished",
		zap.Stringer("status", status),
		zap.Int("rounds", enc.Rounds()),
		zap.Uint32("level", ch.Level()),
		zap.Uint32("gold", ch.Gold()),
	)
	for _, line := range enc.Log() {
		logger.Debug(line)
	}
	return nil
}

// restock equips every upgrade the character found, sells what it replaced
// and buys a potion when it carries none.
func (s *Simulator) restock(ch *character.Character, sum *Summary) {
	inv := ch.Inventory()
	for _, id := range inv.EquippableIDs() {
		candidate, ok := inv.Equippable(id)
		if !ok || ch.IsEquipped(id) {
			continue
		}
		current, worn := ch.Equipped(candidate.Slot())
		if worn && candidate.Rarity() <= current.Rarity() {
			continue
		}
		if err := ch.Equip(id); err != nil {
			s.logger.Warn("equipping upgrade", zap.String("item", id), zap.Error(err))
		}
	}
	for _, id := range inv.EquippableIDs() {
		if ch.IsEquipped(id) {
			continue
		}
		if _, err := s.shop.Sell(ch, id); err == nil {
			sum.ItemsSold++
		}
	}

	if len(inv.ConsumableNames()) > 0 {
		return
	}
	if _, err := s.shop.Buy(ch, item.Common, 1); err == nil {
		sum.PotionsBought++
	}
}

func (s *Simulator) finish(sum *Summary, ch *character.Character) {
	sum.Level = ch.Level()
	sum.HighestLevel = ch.Progress().HighestLevel
	sum.Floor = ch.Floor()
	sum.HighestFloor = ch.HighestFloor()
	sum.Gold = ch.Gold()
}
