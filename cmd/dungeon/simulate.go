package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/simulation"
)

var (
	simName  string
	simClass string
	simFloor uint32
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a character through a run of encounters",
	RunE:  runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVar(&simName, "name", "Adventurer", "character name")
	f.StringVar(&simClass, "class", "knight", "character class: knight, mage or cleric")
	f.Uint32Var(&simFloor, "floor", 1, "dungeon floor to start on")
	f.Int("fights", 0, "number of encounters (overrides simulation.fights)")
	f.Bool("dev", false, "dev mode (overrides game.dev_mode)")
	f.String("policy", "", "Lua boss skill policy file or directory (overrides game.policy_script)")
	f.Uint64("seed", 0, "seed for reproducible randomness (overrides game.seed)")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	class, err := character.ParseClass(simClass)
	if err != nil {
		return err
	}
	ge, err := newGameEnv(cmd)
	if err != nil {
		return err
	}
	defer ge.close()
	cfg, logger := ge.cfg, ge.logger

	sim, err := simulation.New(ge.content, ge.policy, ge.roller, logger, simulation.Options{
		Name:       simName,
		Class:      class,
		DevMode:    cfg.Game.DevMode,
		Fights:     cfg.Simulation.Fights,
		BossEvery:  cfg.Simulation.BossEvery,
		ChestEvery: cfg.Simulation.ChestEvery,
		StartFloor: simFloor,
		Strategy: encounter.Strategy{
			PotionBelow: cfg.Simulation.PotionBelow,
			MendBelow:   cfg.Simulation.MendBelow,
			MaxRounds:   cfg.Simulation.MaxRounds,
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting simulation",
		zap.String("name", simName),
		zap.Stringer("class", class),
		zap.Int("fights", cfg.Simulation.Fights),
		zap.Bool("dev_mode", cfg.Game.DevMode),
		zap.Int("enemy_templates", len(ge.content.Enemies)),
	)
	sum, err := sim.Run(ctx)
	logger.Info("simulation complete",
		zap.Int("fights", sum.Fights),
		zap.Int("victories", sum.Victories),
		zap.Int("defeats", sum.Defeats),
		zap.Int("fled", sum.Fled),
		zap.Int("bosses", sum.Bosses),
		zap.Int("chests", sum.Chests),
		zap.Int("items_sold", sum.ItemsSold),
		zap.Int("potions_bought", sum.PotionsBought),
		zap.Uint32("level", sum.Level),
		zap.Uint32("highest_level", sum.HighestLevel),
		zap.Uint32("floor", sum.Floor),
		zap.Uint32("highest_floor", sum.HighestFloor),
		zap.Uint32("gold", sum.Gold),
		zap.Duration("elapsed", time.Since(start)),
	)
	return err
}
