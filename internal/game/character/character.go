package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/progression"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

const (
	// StartingFloor is the dungeon floor of a new or reset character.
	StartingFloor = 1
	// HealthPerLevel is added to base max health on every level-up.
	HealthPerLevel = 5
	// DamagePerLevel is added to base damage on every level-up.
	DamagePerLevel = 2
	// DevModeGold is the purse of a character created in dev mode.
	DevModeGold = 9999
	// DevModePotions is the number of Legendary potions granted in dev mode.
	DevModePotions = 5

	numSlots = int(item.SlotRing) + 1
)

var (
	// ErrItemNotFound is returned when an item id or consumable name is not in
	// the inventory.
	ErrItemNotFound = errors.New("item not found")
	// ErrFullHealth is returned when a potion would restore nothing.
	ErrFullHealth = errors.New("already at full health")
)

// Options controls character creation.
type Options struct {
	// DevMode grants a large purse and Legendary potions at creation.
	DevMode bool
}

// encounterEffects tracks what in-fight skills changed so EndEncounter can
// revert exactly that.
type encounterEffects struct {
	bonus          stats.Bonus
	defenseRemoved uint32
}

// Character is the session entity for the player character.
//
// Invariant: boosts equals the sum of applied over every slot, plus the
// encounter bonus, minus the defense removed during the encounter. Equipment
// changes and EndEncounter rebuild boosts from those parts rather than
// patching the running total.
type Character struct {
	data      Data
	temp      Temporary
	boosts    stats.Boosts
	applied   [numSlots]stats.Bonus
	encounter encounterEffects
	opts      Options
}

// New creates a character of class c with the starter weapon equipped and
// full health and mana.
//
// Precondition: name must be non-empty; c must be a valid class.
// Postcondition: returns a character at level 1 on the starting floor, or a
// non-nil error.
func New(name string, c Class, opts Options) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if !c.Valid() {
		return nil, fmt.Errorf("invalid class %d", int(c))
	}
	ch := &Character{data: starting(name, c), opts: opts}
	ch.grantStarterKit()
	return ch, nil
}

// Load rebuilds a session from persisted data by replaying equip for every
// equipped id.
//
// Precondition: every id in data.Equipped must be present in data.Inventory.
// Postcondition: temporary health and mana are at their effective maxima.
func Load(data Data, opts Options) (*Character, error) {
	if data.Metadata.Name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if !data.Metadata.Class.Valid() {
		return nil, fmt.Errorf("invalid class %d", int(data.Metadata.Class))
	}
	if data.Inventory == nil {
		data.Inventory = inventory.New()
	}
	equipped := data.Equipped
	data.Equipped = Equipped{}
	ch := &Character{data: data, opts: opts}
	for _, s := range item.Slots {
		id := equipped.Get(s)
		if id == "" {
			continue
		}
		if err := ch.Equip(id); err != nil {
			return nil, fmt.Errorf("loading %s: %w", s, err)
		}
	}
	ch.fill()
	return ch, nil
}

// Data returns the persistent shape of the character. The inventory is shared,
// not copied.
func (c *Character) Data() Data { return c.data }

func (c *Character) Name() string { return c.data.Metadata.Name }
func (c *Character) Class() Class { return c.data.Metadata.Class }
func (c *Character) Skill() skill.ID { return c.data.Metadata.Class.Skill() }
func (c *Character) Base() stats.Base { return c.data.Combat }
func (c *Character) Boosts() stats.Bonus { return c.boosts.Bonus() }
func (c *Character) Temporary() Temporary { return c.temp }
func (c *Character) Health() uint32 { return c.temp.Health }
func (c *Character) Mana() uint32 { return c.temp.Mana }
func (c *Character) IsDead() bool { return c.temp.Health == 0 }
func (c *Character) Progress() progression.Track { return c.data.General.Progress }
func (c *Character) Level() uint32 { return c.data.General.Progress.Level }
func (c *Character) Floor() uint32 { return c.data.General.DungeonFloor }
func (c *Character) HighestFloor() uint32 { return c.data.General.HighestFloor }
func (c *Character) Inventory() *inventory.Inventory { return c.data.Inventory }
func (c *Character) Purse() *inventory.Purse { return &c.data.Purse }
func (c *Character) Gold() uint32 { return c.data.Purse.Gold }
func (c *Character) DevMode() bool { return c.opts.DevMode }

// Stats returns the effective stats: base plus every active boost.
func (c *Character) Stats() stats.Effective {
	return stats.Compute(c.data.Combat, c.boosts)
}

// TakeDamage lowers current health by amount and returns the amount removed.
//
// Postcondition: health never drops below zero.
func (c *Character) TakeDamage(amount uint32) uint32 {
	var dealt uint32
	c.temp.Health, dealt = stats.ApplyDamage(c.temp.Health, amount)
	return dealt
}

// Heal restores up to amount health and returns the amount restored.
//
// Postcondition: health never exceeds effective max health.
func (c *Character) Heal(amount uint32) uint32 {
	var restored uint32
	c.temp.Health, restored = stats.Restore(c.temp.Health, c.Stats().MaxHealth, amount)
	return restored
}

// SpendMana withdraws n mana. Nothing is withdrawn when less than n remains.
func (c *Character) SpendMana(n uint32) bool {
	if n > c.temp.Mana {
		return false
	}
	c.temp.Mana -= n
	return true
}

// RestoreMana restores up to amount mana and returns the amount restored.
func (c *Character) RestoreMana(amount uint32) uint32 {
	var restored uint32
	c.temp.Mana, restored = stats.Restore(c.temp.Mana, c.Stats().MaxMana, amount)
	return restored
}

// ReduceDefense strips up to n from the temporary defense boost until the
// encounter ends and returns the amount removed.
func (c *Character) ReduceDefense(n uint32) uint32 {
	removed := c.boosts.DecreaseDefense(n)
	c.encounter.defenseRemoved = stats.SatAdd(c.encounter.defenseRemoved, removed)
	return removed
}

// AddEncounterBonus applies b until EndEncounter.
func (c *Character) AddEncounterBonus(b stats.Bonus) {
	c.boosts.Add(b)
	c.encounter.bonus = c.encounter.bonus.Plus(b)
}

// EndEncounter reverts every encounter effect.
//
// Postcondition: boosts equal the sum of the equipped items' contributions.
func (c *Character) EndEncounter() {
	c.encounter = encounterEffects{}
	c.rebuildBoosts()
	c.clampTemporary()
}

// GainExp adds exp and applies per-level base stat growth for every level
// gained. It returns the number of levels gained.
func (c *Character) GainExp(exp uint32) uint32 {
	levels := c.data.General.Progress.Gain(exp)
	for i := uint32(0); i < levels; i++ {
		c.data.Combat = c.data.Combat.AddLevelGrowth(HealthPerLevel, DamagePerLevel)
	}
	return levels
}

// NextFloor descends one dungeon floor and returns the new floor.
func (c *Character) NextFloor() uint32 {
	g := &c.data.General
	g.DungeonFloor++
	if g.DungeonFloor > g.HighestFloor {
		g.HighestFloor = g.DungeonFloor
	}
	return g.DungeonFloor
}

// Reset rolls the character back to its starting state after death. Records
// (highest level, highest floor) survive; everything else is restored.
//
// Postcondition: the inventory holds exactly one weapon, the starter weapon,
// and it is equipped.
func (c *Character) Reset() {
	g := &c.data.General
	g.Progress.Reset()
	g.DungeonFloor = StartingFloor
	c.data.Combat = c.data.Metadata.Class.StartingStats()
	c.data.Purse.Reset()
	c.data.Inventory.Clear()
	c.data.Equipped = Equipped{}

	c.boosts.Reset()
	c.applied = [numSlots]stats.Bonus{}
	c.encounter = encounterEffects{}
	c.grantStarterKit()
}

// grantStarterKit equips the starter weapon, applies dev mode grants and fills
// health and mana.
func (c *Character) grantStarterKit() {
	w := item.StarterWeapon()
	c.data.Inventory.Add(w)
	if err := c.Equip(w.ItemID()); err != nil {
		panic(fmt.Sprintf("character: equipping starter weapon: %v", err))
	}
	if c.opts.DevMode {
		c.data.Purse.Add(DevModeGold)
		c.data.Inventory.Add(item.NewHealthPotion(item.Legendary, DevModePotions))
	}
	c.fill()
}

func (c *Character) fill() {
	eff := c.Stats()
	c.temp = Temporary{Health: eff.MaxHealth, Mana: eff.MaxMana}
}

// rebuildBoosts recomputes boosts from the equipped contributions and the
// encounter effects. Stripped defense that no longer has a source to come
// from is forgotten.
func (c *Character) rebuildBoosts() {
	c.boosts.Reset()
	for _, b := range c.applied {
		c.boosts.Add(b)
	}
	c.boosts.Add(c.encounter.bonus)
	c.encounter.defenseRemoved = c.boosts.DecreaseDefense(c.encounter.defenseRemoved)
}

// clampTemporary lowers current health and mana to the effective maxima after
// a boost was removed.
func (c *Character) clampTemporary() {
	eff := c.Stats()
	c.temp.Health = min(c.temp.Health, eff.MaxHealth)
	c.temp.Mana = min(c.temp.Mana, eff.MaxMana)
}
