// Package config provides Viper-based configuration loading for the dungeon
// engine and its simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig holds the game-rule settings passed explicitly into character
// creation and item generation.
type GameConfig struct {
	// DevMode forces Legendary item rolls and grants a dev starting kit.
	DevMode bool `mapstructure:"dev_mode"`
	// ContentDir holds items.yaml, rewards.yaml and enemies/*.yaml. Empty
	// means the built-in tables.
	ContentDir string `mapstructure:"content_dir"`
	// SkillChance is the probability a boss uses its skill on its turn when
	// no policy script decides.
	SkillChance float64 `mapstructure:"skill_chance"`
	// PolicyScript is a Lua file or directory defining use_skill. Empty
	// means the chance policy alone.
	PolicyScript string `mapstructure:"policy_script"`
	// Seed makes every random draw reproducible. 0 means crypto randomness.
	Seed uint64 `mapstructure:"seed"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output lists zap sink URLs or file paths, e.g. "stderr".
	Output []string `mapstructure:"output"`
}

// ScriptingConfig holds Lua sandbox settings.
type ScriptingConfig struct {
	// InstructionLimit is the opcode budget per script call; 0 uses the
	// sandbox default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// SimulationConfig tunes the headless simulator.
type SimulationConfig struct {
	// Fights is the number of encounters to play.
	Fights int `mapstructure:"fights"`
	// BossEvery makes every n-th fight a boss fight.
	BossEvery int `mapstructure:"boss_every"`
	// ChestEvery opens a chest and descends a floor after every n-th victory.
	ChestEvery int `mapstructure:"chest_every"`
	// PotionBelow is the health fraction under which a potion is drunk.
	PotionBelow float64 `mapstructure:"potion_below"`
	// MendBelow is the health fraction under which Mend is cast.
	MendBelow float64 `mapstructure:"mend_below"`
	// MaxRounds bounds every fight; the player flees once it is reached.
	MaxRounds int `mapstructure:"max_rounds"`
}

// Config is the top-level application configuration.
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Scripting  ScriptingConfig  `mapstructure:"scripting"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Scripting.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scripting.instruction_limit must be >= 0, got %d", c.Scripting.InstructionLimit))
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	if g.SkillChance < 0 || g.SkillChance > 1 {
		return fmt.Errorf("game.skill_chance must be in [0, 1], got %g", g.SkillChance)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Fights < 0 {
		errs = append(errs, fmt.Sprintf("simulation.fights must be >= 0, got %d", s.Fights))
	}
	if s.BossEvery < 1 {
		errs = append(errs, fmt.Sprintf("simulation.boss_every must be >= 1, got %d", s.BossEvery))
	}
	if s.ChestEvery < 1 {
		errs = append(errs, fmt.Sprintf("simulation.chest_every must be >= 1, got %d", s.ChestEvery))
	}
	if s.PotionBelow < 0 || s.PotionBelow > 1 {
		errs = append(errs, fmt.Sprintf("simulation.potion_below must be in [0, 1], got %g", s.PotionBelow))
	}
	if s.MendBelow < 0 || s.MendBelow > 1 {
		errs = append(errs, fmt.Sprintf("simulation.mend_below must be in [0, 1], got %g", s.MendBelow))
	}
	if s.MaxRounds < 1 {
		errs = append(errs, fmt.Sprintf("simulation.max_rounds must be >= 1, got %d", s.MaxRounds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path loads defaults
// and environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and DUNGEON_ environment
// overrides applied, ready for flag binding.
func NewViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with DUNGEON_ prefix, e.g. DUNGEON_GAME_DEV_MODE.
	v.SetEnvPrefix("DUNGEON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.dev_mode", false)
	v.SetDefault("game.content_dir", "")
	v.SetDefault("game.skill_chance", 0.35)
	v.SetDefault("game.policy_script", "")
	v.SetDefault("game.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", []string{"stderr"})

	v.SetDefault("scripting.instruction_limit", 100_000)

	v.SetDefault("simulation.fights", 20)
	v.SetDefault("simulation.boss_every", 5)
	v.SetDefault("simulation.chest_every", 3)
	v.SetDefault("simulation.potion_below", 0.3)
	v.SetDefault("simulation.mend_below", 0.6)
	v.SetDefault("simulation.max_rounds", 100)
}
