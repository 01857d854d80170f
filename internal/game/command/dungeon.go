package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// HandleExplore processes the "explore" command.
func HandleExplore(sess *session.Session) string {
	e, err := sess.Explore()
	if err != nil {
		return errorText(err)
	}
	return strings.Join(e.Log(), "\n")
}

// HandleBoss processes the "boss" command.
func HandleBoss(sess *session.Session) string {
	if sess.BossDefeated() {
		return "The floor boss is already dead. Descend when you are ready."
	}
	e, err := sess.ChallengeBoss()
	if err != nil {
		return errorText(err)
	}
	return strings.Join(e.Log(), "\n")
}

// HandleDescend processes the "descend" command.
//
// Postcondition: On success the treasure chest was looted and the character
// is one floor deeper.
func HandleDescend(sess *session.Session) string {
	drops, err := sess.Descend()
	if err != nil {
		return errorText(err)
	}
	lines := append([]string{"You open the treasure chest."}, drops.Lines()...)
	lines = append(lines, fmt.Sprintf("You descend to floor %d.", sess.Character().Floor()))
	return strings.Join(lines, "\n")
}
