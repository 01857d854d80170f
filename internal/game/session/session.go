// Package session tracks one character's progress through the dungeon: the
// encounter in progress, whether the floor boss has fallen, and the shop.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
)

var (
	// ErrInCombat is returned when an action needs the character out of combat.
	ErrInCombat = errors.New("already in an encounter")
	// ErrNotInCombat is returned when a combat action is taken outside an
	// encounter.
	ErrNotInCombat = errors.New("not in an encounter")
	// ErrBossNotDefeated is returned when descending before the floor boss
	// has been beaten.
	ErrBossNotDefeated = errors.New("the floor boss still stands")
)

// Deps are the collaborators a Session needs.
type Deps struct {
	Roster  *enemy.Roster
	Rewards *reward.Generator
	Shop    reward.Shop
	Policy  encounter.SkillPolicy
	Source  dice.Source
	Logger  *zap.Logger
}

// Turn is the outcome of one player command during an encounter.
type Turn struct {
	// Lines are the combat log lines the command produced.
	Lines []string
	// Status is the encounter status after the command.
	Status encounter.Status
}

// Session is one character's run. It is not safe for concurrent use.
type Session struct {
	ch           *character.Character
	deps         Deps
	current      *encounter.Encounter
	bossDefeated bool
}

// New creates a session for ch.
//
// Precondition: ch must be non-nil; every pointer field of deps must be non-nil.
func New(ch *character.Character, deps Deps) *Session {
	return &Session{ch: ch, deps: deps}
}

func (s *Session) Character() *character.Character { return s.ch }
func (s *Session) Shop() reward.Shop { return s.deps.Shop }
func (s *Session) BossDefeated() bool { return s.bossDefeated }

// Encounter returns the encounter in progress, if any.
func (s *Session) Encounter() (*encounter.Encounter, bool) {
	return s.current, s.current != nil
}

// Explore starts a fight with a normal enemy of the current floor.
func (s *Session) Explore() (*encounter.Encounter, error) {
	return s.start(enemy.Normal)
}

// ChallengeBoss starts a fight with a boss of the current floor.
func (s *Session) ChallengeBoss() (*encounter.Encounter, error) {
	return s.start(enemy.Boss)
}

func (s *Session) start(k enemy.Kind) (*encounter.Encounter, error) {
	if s.current != nil {
		return nil, ErrInCombat
	}
	foe, err := s.deps.Roster.Spawn(k, s.ch.Floor(), s.deps.Source)
	if err != nil {
		return nil, fmt.Errorf("spawning %s: %w", k, err)
	}
	s.current = encounter.New(s.ch, foe, encounter.Deps{
		Source:  s.deps.Source,
		Policy:  s.deps.Policy,
		Rewards: s.deps.Rewards,
		Logger:  s.deps.Logger,
	})
	return s.current, nil
}

// Attack makes a basic attack and, if the fight goes on, lets the enemy act.
func (s *Session) Attack() (Turn, error) {
	return s.act(func(e *encounter.Encounter) error {
		_, err := e.Attack()
		return err
	})
}

// CastSkill uses the class skill and, if the fight goes on, lets the enemy
// act. A failed cast costs no turn.
func (s *Session) CastSkill() (Turn, error) {
	return s.act(func(e *encounter.Encounter) error {
		_, err := e.CastSkill()
		return err
	})
}

// DrinkPotion drinks one potion from the named stack. In combat it costs a
// turn; out of combat it does not.
func (s *Session) DrinkPotion(name string) (Turn, error) {
	if s.current == nil {
		restored, err := s.ch.UsePotion(name)
		if err != nil {
			return Turn{}, err
		}
		return Turn{
			Lines:  []string{fmt.Sprintf("%s drinks a %s and restores %d health.", s.ch.Name(), name, restored)},
			Status: encounter.InProgress,
		}, nil
	}
	return s.act(func(e *encounter.Encounter) error {
		_, err := e.DrinkPotion(name)
		return err
	})
}

// Flee leaves the encounter without rewards.
func (s *Session) Flee() (Turn, error) {
	if s.current == nil {
		return Turn{}, ErrNotInCombat
	}
	e := s.current
	seen := len(e.Log())
	if err := e.Flee(); err != nil {
		return Turn{}, err
	}
	return s.finish(e, seen), nil
}

// act runs the player's action, then the enemy's turn while the fight lasts.
//
// Postcondition: on error from the player action no enemy turn was taken.
func (s *Session) act(player func(*encounter.Encounter) error) (Turn, error) {
	if s.current == nil {
		return Turn{}, ErrNotInCombat
	}
	e := s.current
	seen := len(e.Log())
	if err := player(e); err != nil {
		return Turn{Lines: e.Log()[seen:], Status: e.Status()}, err
	}
	if e.Status() == encounter.InProgress {
		if _, err := e.EnemyTurn(); err != nil {
			return Turn{}, err
		}
	}
	return s.finish(e, seen), nil
}

// finish collects the new log lines and closes the encounter once it is over.
func (s *Session) finish(e *encounter.Encounter, seen int) Turn {
	t := Turn{Lines: e.Log()[seen:], Status: e.Status()}
	switch t.Status {
	case encounter.InProgress:
		return t
	case encounter.Victory:
		if e.Enemy().IsBoss() {
			s.bossDefeated = true
		}
	case encounter.Defeat:
		s.bossDefeated = false
	}
	s.current = nil
	return t
}

// Descend opens the floor's treasure chest and moves one floor down.
//
// Precondition: no encounter is in progress and the floor boss was defeated.
// Postcondition: on success the boss flag is cleared for the new floor.
func (s *Session) Descend() (reward.TreasureChestDrops, error) {
	if s.current != nil {
		return reward.TreasureChestDrops{}, ErrInCombat
	}
	if !s.bossDefeated {
		return reward.TreasureChestDrops{}, ErrBossNotDefeated
	}
	drops := s.deps.Rewards.TreasureChest(s.ch)
	floor := s.ch.NextFloor()
	s.bossDefeated = false
	s.deps.Logger.Info("descended",
		zap.String("player", s.ch.Name()),
		zap.Uint32("floor", floor),
	)
	return drops, nil
}

// Buy purchases qty potions of rarity r from the shop.
func (s *Session) Buy(r item.Rarity, qty uint32) (uint32, error) {
	if s.current != nil {
		return 0, ErrInCombat
	}
	return s.deps.Shop.Buy(s.ch, r, qty)
}

// Sell sells an item by id, or one potion by name, to the shop.
func (s *Session) Sell(key string) (uint32, error) {
	if s.current != nil {
		return 0, ErrInCombat
	}
	return s.deps.Shop.Sell(s.ch, key)
}

// Equip equips the inventory item with the given id.
//
// Precondition: no encounter is in progress.
func (s *Session) Equip(id string) error {
	if s.current != nil {
		return ErrInCombat
	}
	return s.ch.Equip(id)
}

// Unequip empties slot sl.
//
// Precondition: no encounter is in progress.
func (s *Session) Unequip(sl item.Slot) error {
	if s.current != nil {
		return ErrInCombat
	}
	s.ch.Unequip(sl)
	return nil
}

// Delete discards an item by id, or a potion stack by name.
//
// Precondition: no encounter is in progress.
func (s *Session) Delete(key string) error {
	if s.current != nil {
		return ErrInCombat
	}
	return s.ch.DeleteItem(key)
}
