// Package enemy provides enemy templates and the live enemies built from them.
package enemy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dungeon/internal/game/stats"
)

// Kind separates regular enemies from floor bosses.
type Kind int

const (
	Normal Kind = iota
	Boss
)

// String returns the YAML spelling of k.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Boss:
		return "boss"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// UnmarshalYAML accepts "normal" or "boss".
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "normal", "":
		*k = Normal
	case "boss":
		*k = Boss
	default:
		return fmt.Errorf("unknown enemy kind %q", s)
	}
	return nil
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Scaling is a linear stat curve: Base at level 1, plus PerLevel for each
// level above it.
type Scaling struct {
	Base     uint32 `yaml:"base"`
	PerLevel uint32 `yaml:"per_level"`
}

// At returns the value at level. Levels below 1 are treated as 1.
func (s Scaling) At(level uint32) uint32 {
	if level <= 1 {
		return s.Base
	}
	growth := uint64(s.PerLevel) * uint64(level-1)
	if growth > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return stats.SatAdd(s.Base, uint32(growth))
}

// Template defines a reusable enemy archetype loaded from YAML.
type Template struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Kind        Kind    `yaml:"kind"`
	Health      Scaling `yaml:"health"`
	Damage      Scaling `yaml:"damage"`
	Defense     Scaling `yaml:"defense"`
	// CritHitRate is the critical hit chance as a fraction in [0, 1].
	CritHitRate float64 `yaml:"crit_hit_rate"`
	// CritDamageMultiplier is at least 1.0.
	CritDamageMultiplier float64 `yaml:"crit_damage_multiplier"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff every field is in range; otherwise returns
// every violation joined into one error.
func (t *Template) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.Kind != Normal && t.Kind != Boss {
		errs = append(errs, fmt.Errorf("kind %d is invalid", int(t.Kind)))
	}
	if t.Health.Base < 1 {
		errs = append(errs, errors.New("health.base must be >= 1"))
	}
	if t.CritHitRate < 0 || t.CritHitRate > 1 {
		errs = append(errs, fmt.Errorf("crit_hit_rate must be in [0, 1], got %g", t.CritHitRate))
	}
	if t.CritDamageMultiplier < 1 {
		errs = append(errs, fmt.Errorf("crit_damage_multiplier must be >= 1, got %g", t.CritDamageMultiplier))
	}
	if len(errs) > 0 {
		return fmt.Errorf("enemy template %q: %w", t.ID, errors.Join(errs...))
	}
	return nil
}

// BaseAt returns the template's base combat stats at level.
func (t *Template) BaseAt(level uint32) stats.Base {
	return stats.Base{
		MaxHealth:            t.Health.At(level),
		Defense:              t.Defense.At(level),
		Damage:               t.Damage.At(level),
		CritHitRate:          stats.RateFromFloat(t.CritHitRate),
		CritDamageMultiplier: stats.RateFromFloat(t.CritDamageMultiplier),
	}
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading enemy dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// DefaultTemplates returns the built-in bestiary used when no content
// directory is configured.
func DefaultTemplates() []*Template {
	return []*Template{
		{ID: "goblin", Name: "Goblin", Kind: Normal,
			Health: Scaling{30, 8}, Damage: Scaling{5, 2}, Defense: Scaling{1, 1},
			CritHitRate: 0.05, CritDamageMultiplier: 1.5},
		{ID: "skeleton", Name: "Skeleton", Kind: Normal,
			Health: Scaling{40, 10}, Damage: Scaling{6, 2}, Defense: Scaling{2, 1},
			CritHitRate: 0.05, CritDamageMultiplier: 1.5},
		{ID: "giant_rat", Name: "Giant Rat", Kind: Normal,
			Health: Scaling{20, 6}, Damage: Scaling{4, 1}, Defense: Scaling{0, 1},
			CritHitRate: 0.10, CritDamageMultiplier: 1.5},
		{ID: "bandit", Name: "Bandit", Kind: Normal,
			Health: Scaling{35, 9}, Damage: Scaling{7, 2}, Defense: Scaling{1, 1},
			CritHitRate: 0.10, CritDamageMultiplier: 1.75},
		{ID: "cyclops", Name: "Cyclops", Kind: Boss,
			Health: Scaling{150, 30}, Damage: Scaling{12, 3}, Defense: Scaling{4, 2},
			CritHitRate: 0.10, CritDamageMultiplier: 2.0},
		{ID: "dragon", Name: "Dragon", Kind: Boss,
			Health: Scaling{200, 40}, Damage: Scaling{14, 4}, Defense: Scaling{6, 2},
			CritHitRate: 0.15, CritDamageMultiplier: 2.0},
	}
}
