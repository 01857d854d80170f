package simulation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/item"
	"github.com/cory-johannsen/dungeon/internal/game/reward"
)

const (
	itemsFile   = "items.yaml"
	rewardsFile = "rewards.yaml"
	enemiesDir  = "enemies"
)

// Content is every data table a run needs.
type Content struct {
	Items   item.Tables
	Enemies []*enemy.Template
	Rewards reward.Table
}

// DefaultContent returns the built-in tables.
func DefaultContent() Content {
	return Content{
		Items:   item.DefaultTables(),
		Enemies: enemy.DefaultTemplates(),
		Rewards: reward.DefaultTable(),
	}
}

// LoadContent reads items.yaml, rewards.yaml and enemies/*.yaml from dir.
// A missing file or directory keeps the built-in table for that part; an
// empty dir returns DefaultContent.
//
// Postcondition: Returns validated content or a non-nil error.
func LoadContent(dir string) (Content, error) {
	c := DefaultContent()
	if dir == "" {
		return c, nil
	}

	itemsPath := filepath.Join(dir, itemsFile)
	if exists, err := present(itemsPath); err != nil {
		return Content{}, err
	} else if exists {
		if c.Items, err = item.LoadTables(itemsPath); err != nil {
			return Content{}, err
		}
	}

	rewardsPath := filepath.Join(dir, rewardsFile)
	if exists, err := present(rewardsPath); err != nil {
		return Content{}, err
	} else if exists {
		if c.Rewards, err = reward.LoadTable(rewardsPath); err != nil {
			return Content{}, err
		}
	}

	enemyPath := filepath.Join(dir, enemiesDir)
	if exists, err := present(enemyPath); err != nil {
		return Content{}, err
	} else if exists {
		if c.Enemies, err = enemy.LoadTemplates(enemyPath); err != nil {
			return Content{}, err
		}
	}
	return c, nil
}

func present(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking %q: %w", path, err)
	}
}
