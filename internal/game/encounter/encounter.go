// Package encounter drives one fight between the player character and a
// single enemy. The caller decides turn order; the encounter resolves each
// action, settles victory and defeat, and keeps the combat log.
package encounter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
)

// ErrEncounterOver is returned by any action taken after the encounter ended.
var ErrEncounterOver = errors.New("encounter is over")

// VictoryManaPercent of the player's effective max mana is recovered after
// every won fight.
const VictoryManaPercent = 25

// Status is the state of an encounter.
type Status int

const (
	InProgress Status = iota
	Victory
	Defeat
	Fled
)

// String returns the display name of s.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Fled:
		return "fled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Player is the character side of an encounter. *character.Character
// satisfies it.
type Player interface {
	combat.Caster
	combat.Target
	reward.Recipient
	Skill() skill.ID
	// UsePotion drinks one potion from the named stack.
	UsePotion(name string) (uint32, error)
	// RestoreMana restores up to n mana and returns the amount restored.
	RestoreMana(n uint32) uint32
	// EndEncounter reverts every in-fight effect.
	EndEncounter()
	// Reset rolls the character back after death.
	Reset()
}

// Report is a reward report with display lines.
type Report interface {
	Lines() []string
}

// Deps are the collaborators an Encounter needs.
type Deps struct {
	Source  dice.Source
	Policy  SkillPolicy
	Rewards *reward.Generator
	Logger  *zap.Logger
}

// EnemyAction is the outcome of one enemy turn. Exactly one of Attack and
// Skill is set.
type EnemyAction struct {
	Attack *combat.AttackResult
	Skill  *combat.SkillResult
}

// Log returns the log line of the action.
func (a EnemyAction) Log() string {
	if a.Skill != nil {
		return a.Skill.Log
	}
	return a.Attack.Log
}

// Encounter is one fight. It is not safe for concurrent use.
type Encounter struct {
	player Player
	foe    *enemy.Enemy
	deps   Deps
	status Status
	report Report
	log    []string
	rounds int
}

// New starts an encounter between player and foe.
//
// Precondition: player and foe must be non-nil and alive; every field of deps
// must be non-nil.
func New(player Player, foe *enemy.Enemy, deps Deps) *Encounter {
	e := &Encounter{player: player, foe: foe, deps: deps}
	e.record(fmt.Sprintf("A level %d %s appears!", foe.Level(), foe.Name()))
	deps.Logger.Debug("encounter started",
		zap.String("player", player.Name()),
		zap.String("enemy", foe.Name()),
		zap.Uint32("enemy_level", foe.Level()),
		zap.Bool("boss", foe.IsBoss()),
	)
	return e
}

func (e *Encounter) Status() Status { return e.status }
func (e *Encounter) Enemy() *enemy.Enemy { return e.foe }
func (e *Encounter) Player() Player { return e.player }

// Rounds returns the number of completed enemy turns.
func (e *Encounter) Rounds() int { return e.rounds }

// Report returns the reward report of a won encounter, or nil.
func (e *Encounter) Report() Report { return e.report }

// Log returns every log line so far.
//
// Postcondition: returned slice is a fresh copy.
func (e *Encounter) Log() []string {
	out := make([]string, len(e.log))
	copy(out, e.log)
	return out
}

// View returns the enemy snapshot a SkillPolicy sees.
func (e *Encounter) View() EnemyView {
	return EnemyView{
		Name:      e.foe.Name(),
		Level:     e.foe.Level(),
		Health:    e.foe.Health(),
		MaxHealth: e.foe.Stats().MaxHealth,
		Boss:      e.foe.IsBoss(),
		Skill:     e.foe.Skill(),
	}
}

// Attack makes a basic attack on the enemy.
func (e *Encounter) Attack() (combat.AttackResult, error) {
	if e.status != InProgress {
		return combat.AttackResult{}, ErrEncounterOver
	}
	res := combat.ResolveAttack(e.player, e.foe, e.deps.Source)
	e.record(res.Log)
	e.settleEnemy()
	return res, nil
}

// CastSkill uses the player's class skill on the enemy. A failed cast (for
// example not enough mana) returns the result with its error and changes
// nothing.
func (e *Encounter) CastSkill() (combat.SkillResult, error) {
	if e.status != InProgress {
		return combat.SkillResult{}, ErrEncounterOver
	}
	res := combat.UseClassSkill(e.player.Skill(), e.player, e.foe, e.deps.Source)
	e.record(res.Log)
	if res.Err != nil {
		return res, res.Err
	}
	e.settleEnemy()
	return res, nil
}

// DrinkPotion drinks one potion from the named stack.
func (e *Encounter) DrinkPotion(name string) (uint32, error) {
	if e.status != InProgress {
		return 0, ErrEncounterOver
	}
	restored, err := e.player.UsePotion(name)
	if err != nil {
		return 0, err
	}
	e.record(fmt.Sprintf("%s drinks a %s and restores %d health.", e.player.Name(), name, restored))
	return restored, nil
}

// EnemyTurn lets the enemy act: its skill when the policy says so, otherwise
// a basic attack.
func (e *Encounter) EnemyTurn() (EnemyAction, error) {
	if e.status != InProgress {
		return EnemyAction{}, ErrEncounterOver
	}
	var act EnemyAction
	if e.foe.Skill() != skill.None && e.deps.Policy.UseSkill(e.View()) {
		res := combat.UseEnemySkill(e.foe.Skill(), e.foe, e.player)
		if res.Err != nil {
			e.deps.Logger.Warn("enemy skill failed",
				zap.String("enemy", e.foe.Name()),
				zap.Stringer("skill", res.Skill),
				zap.Error(res.Err),
			)
		}
		act.Skill = &res
	} else {
		res := combat.ResolveAttack(e.foe, e.player, e.deps.Source)
		act.Attack = &res
	}
	e.rounds++
	e.record(act.Log())
	e.settlePlayer()
	return act, nil
}

// Flee ends the encounter without rewards.
func (e *Encounter) Flee() error {
	if e.status != InProgress {
		return ErrEncounterOver
	}
	e.player.EndEncounter()
	e.status = Fled
	e.record(fmt.Sprintf("%s flees from the %s.", e.player.Name(), e.foe.Name()))
	e.deps.Logger.Info("encounter fled", zap.String("enemy", e.foe.Name()), zap.Int("rounds", e.rounds))
	return nil
}

// settleEnemy pays the rewards and ends the encounter when the enemy died.
func (e *Encounter) settleEnemy() {
	if !e.foe.IsDead() {
		return
	}
	e.player.EndEncounter()
	regained := e.player.RestoreMana(uint32(uint64(e.player.Stats().MaxMana) * VictoryManaPercent / 100))
	if e.foe.IsBoss() {
		e.report = e.deps.Rewards.BossEnemy(e.player, e.foe.Level())
	} else {
		e.report = e.deps.Rewards.NormalEnemy(e.player, e.foe.Level())
	}
	e.status = Victory
	e.record(fmt.Sprintf("%s defeats the %s!", e.player.Name(), e.foe.Name()))
	for _, line := range e.report.Lines() {
		e.record(line)
	}
	e.deps.Logger.Info("encounter won",
		zap.String("enemy", e.foe.Name()),
		zap.Bool("boss", e.foe.IsBoss()),
		zap.Int("rounds", e.rounds),
		zap.Uint32("mana_regained", regained),
	)
}

// settlePlayer resets the character and ends the encounter when the player died.
func (e *Encounter) settlePlayer() {
	if !e.player.IsDead() {
		return
	}
	e.status = Defeat
	e.record(fmt.Sprintf("%s has fallen. Everything is lost.", e.player.Name()))
	e.deps.Logger.Info("encounter lost",
		zap.String("enemy", e.foe.Name()),
		zap.Uint32("level", e.player.Level()),
		zap.Uint32("floor", e.player.Floor()),
		zap.Int("rounds", e.rounds),
	)
	e.player.Reset()
}

func (e *Encounter) record(line string) {
	e.log = append(e.log, line)
	e.deps.Logger.Debug("combat log", zap.String("line", line))
}
