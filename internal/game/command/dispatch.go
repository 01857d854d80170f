package command

import (
	"fmt"

	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// Dispatch parses line, resolves it against reg and runs it on sess.
//
// Precondition: reg and sess must not be nil.
// Postcondition: Returns the text to show the player and whether the player
// asked to quit. A blank line yields empty output.
func Dispatch(reg *Registry, sess *session.Session, line string) (string, bool) {
	parsed := Parse(line)
	if parsed.Command == "" {
		return "", false
	}
	cmd, ok := reg.Resolve(parsed.Command)
	if !ok {
		return fmt.Sprintf("Unknown command %q. Type help for a list.", parsed.Command), false
	}

	switch cmd.Handler {
	case HandlerAttack:
		return HandleAttack(sess), false
	case HandlerSkill:
		return HandleSkill(sess), false
	case HandlerPotion:
		return HandlePotion(sess, parsed.RawArgs), false
	case HandlerFlee:
		return HandleFlee(sess), false
	case HandlerExplore:
		return HandleExplore(sess), false
	case HandlerBoss:
		return HandleBoss(sess), false
	case HandlerDescend:
		return HandleDescend(sess), false
	case HandlerLook:
		return HandleLook(sess), false
	case HandlerStatus:
		return HandleStatus(sess), false
	case HandlerInventory:
		return HandleInventory(sess), false
	case HandlerEquipment:
		return HandleEquipment(sess), false
	case HandlerEquip:
		return HandleEquip(sess, parsed.RawArgs), false
	case HandlerUnequip:
		return HandleUnequip(sess, parsed.RawArgs), false
	case HandlerDelete:
		return HandleDelete(sess, parsed.RawArgs), false
	case HandlerBuy:
		return HandleBuy(sess, parsed.Args), false
	case HandlerSell:
		return HandleSell(sess, parsed.RawArgs), false
	case HandlerPrices:
		return HandlePrices(sess), false
	case HandlerHelp:
		return reg.HelpText(), false
	case HandlerQuit:
		return "You leave the dungeon.", true
	default:
		return fmt.Sprintf("%s: not implemented", cmd.Name), false
	}
}
