package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// HandleAttack processes the "attack" command.
//
// Precondition: sess must not be nil.
// Postcondition: Returns the combat log of the player's attack and the
// enemy's reply, or an explanation when no fight is in progress.
func HandleAttack(sess *session.Session) string {
	return turnText(sess.Attack())
}

// HandleSkill processes the "skill" command.
func HandleSkill(sess *session.Session) string {
	return turnText(sess.CastSkill())
}

// HandleFlee processes the "flee" command.
func HandleFlee(sess *session.Session) string {
	return turnText(sess.Flee())
}

// HandlePotion processes the "potion" command. arg is a rarity ("rare") or a
// full potion name; empty picks the cheapest potion carried.
//
// Precondition: sess must not be nil.
// Postcondition: On success exactly one potion was consumed.
func HandlePotion(sess *session.Session, arg string) string {
	name, ok := resolvePotion(sess.Character().Inventory(), arg)
	if !ok {
		if arg == "" {
			return "You have no potions."
		}
		return fmt.Sprintf("%s: not found in your pack", arg)
	}
	return turnText(sess.DrinkPotion(name))
}

// HandleLook processes the "look" command.
func HandleLook(sess *session.Session) string {
	e, ok := sess.Encounter()
	if !ok {
		return fmt.Sprintf("Floor %d. Nothing stirs.", sess.Character().Floor())
	}
	foe := e.Enemy()
	kind := "enemy"
	if foe.IsBoss() {
		kind = "boss"
	}
	return fmt.Sprintf("A level %d %s (%s) stands before you. It looks %s.", foe.Level(), foe.Name(), kind, foe.HealthDescription())
}

// turnText renders a session turn, mapping session errors to player-facing
// messages.
func turnText(t session.Turn, err error) string {
	if err != nil {
		if len(t.Lines) > 0 {
			return strings.Join(t.Lines, "\n")
		}
		return errorText(err)
	}
	lines := t.Lines
	switch t.Status {
	case encounter.Victory:
		lines = append(lines, "The fight is won.")
	case encounter.Defeat:
		lines = append(lines, "You wake at the dungeon entrance with nothing but your starting gear.")
	}
	return strings.Join(lines, "\n")
}

func errorText(err error) string {
	switch {
	case errors.Is(err, session.ErrNotInCombat):
		return "You are not fighting anything."
	case errors.Is(err, session.ErrInCombat):
		return "Not while you are fighting."
	case errors.Is(err, session.ErrBossNotDefeated):
		return "The stairs are guarded. Defeat the floor boss first."
	case errors.Is(err, character.ErrFullHealth):
		return "You are already at full health."
	case errors.Is(err, character.ErrItemNotFound):
		return "You do not have that."
	case errors.Is(err, inventory.ErrInsufficientGold):
		return "You cannot afford that."
	default:
		return err.Error()
	}
}

// resolvePotion maps a rarity word or potion name to a carried stack name.
func resolvePotion(inv *inventory.Inventory, arg string) (string, bool) {
	for _, r := range item.Rarities {
		name := item.HealthPotionName(r)
		if _, ok := inv.Consumable(name); !ok {
			continue
		}
		if arg == "" || strings.EqualFold(arg, r.String()) || strings.EqualFold(arg, name) {
			return name, true
		}
	}
	return "", false
}
