package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/observability"
	"github.com/cory-johannsen/dungeon/internal/scripting"
	"github.com/cory-johannsen/dungeon/internal/simulation"
)

// gameEnv is what every game command needs: configuration, logging,
// randomness, content and the boss skill policy.
type gameEnv struct {
	cfg     config.Config
	logger  *zap.Logger
	roller  *dice.Roller
	content simulation.Content
	policy  encounter.SkillPolicy
	closers []func()
}

// newGameEnv loads configuration (file, env, then changed flags), builds the
// logger and loads content.
//
// Postcondition: on success the caller must call close.
func newGameEnv(cmd *cobra.Command) (*gameEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	ge := &gameEnv{
		cfg:     cfg,
		logger:  logger,
		roller:  dice.NewLoggedRoller(source(cfg.Game.Seed), logger),
		closers: []func(){func() { _ = logger.Sync() }},
	}

	if ge.content, err = simulation.LoadContent(cfg.Game.ContentDir); err != nil {
		ge.close()
		return nil, fmt.Errorf("loading content: %w", err)
	}

	ge.policy = encounter.ChancePolicy{Chance: cfg.Game.SkillChance, Source: ge.roller}
	if cfg.Game.PolicyScript != "" {
		scripted, err := scripting.LoadPolicy(cfg.Game.PolicyScript, scripting.PolicyOptions{
			InstructionLimit: cfg.Scripting.InstructionLimit,
			Source:           ge.roller,
			Fallback:         ge.policy,
			Logger:           logger,
		})
		if err != nil {
			ge.close()
			return nil, fmt.Errorf("loading skill policy: %w", err)
		}
		ge.closers = append(ge.closers, scripted.Close)
		ge.policy = scripted
		logger.Info("lua skill policy loaded", zap.String("path", cfg.Game.PolicyScript))
	}
	return ge, nil
}

// source returns the seeded source for a non-zero seed, otherwise the crypto
// source.
func source(seed uint64) dice.Source {
	if seed == 0 {
		return dice.NewCryptoSource()
	}
	return dice.NewSeededSource(seed)
}

// close releases resources in reverse order of acquisition.
func (ge *gameEnv) close() {
	for i := len(ge.closers) - 1; i >= 0; i-- {
		ge.closers[i]()
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.NewViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}
	return config.LoadFromViper(v)
}

// flagKeys maps config keys to the flag names that may override them.
var flagKeys = map[string]string{
	"simulation.fights":  "fights",
	"game.dev_mode":      "dev",
	"game.policy_script": "policy",
	"game.seed":          "seed",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, flag := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}
