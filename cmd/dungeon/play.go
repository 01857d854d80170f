package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/command"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

var (
	playName  string
	playClass string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the dungeon interactively",
	RunE:  runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playName, "name", "Adventurer", "character name")
	f.StringVar(&playClass, "class", "knight", "character class: knight, mage or cleric")
	f.Bool("dev", false, "dev mode (overrides game.dev_mode)")
	f.String("policy", "", "Lua boss skill policy file or directory (overrides game.policy_script)")
	f.Uint64("seed", 0, "seed for reproducible randomness (overrides game.seed)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	class, err := character.ParseClass(playClass)
	if err != nil {
		return err
	}
	ge, err := newGameEnv(cmd)
	if err != nil {
		return err
	}
	defer ge.close()

	roster, err := enemy.NewRoster(ge.content.Enemies)
	if err != nil {
		return err
	}
	ch, err := character.New(playName, class, character.Options{DevMode: ge.cfg.Game.DevMode})
	if err != nil {
		return err
	}
	items := item.NewGenerator(ge.content.Items, ge.roller, item.Options{DevMode: ge.cfg.Game.DevMode})
	sess := session.New(ch, session.Deps{
		Roster:  roster,
		Rewards: reward.NewGenerator(ge.content.Rewards, items, ge.roller, ge.logger),
		Shop:    reward.NewShop(ge.content.Rewards.PotionMarkup),
		Policy:  ge.policy,
		Source:  ge.roller,
		Logger:  ge.logger,
	})
	reg := command.DefaultRegistry()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s the %s enters the dungeon. Type help for commands.\n", ch.Name(), ch.Class())
	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintf(out, "[floor %d | %d hp]> ", ch.Floor(), ch.Health())
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		text, quit := command.Dispatch(reg, sess, in.Text())
		if text = strings.TrimSpace(text); text != "" {
			fmt.Fprintln(out, text)
		}
		if quit {
			return nil
		}
	}
}
