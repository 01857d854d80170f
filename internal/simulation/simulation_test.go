package simulation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/character"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/simulation"
)

func options(class character.Class, fights int) simulation.Options {
	return simulation.Options{
		Name:       "Aria",
		Class:      class,
		Fights:     fights,
		BossEvery:  5,
		ChestEvery: 3,
		Strategy:   encounter.DefaultStrategy(),
	}
}

func newSimulator(t *testing.T, opts simulation.Options) *simulation.Simulator {
	t.Helper()
	src := dice.NewCryptoSource()
	sim, err := simulation.New(simulation.DefaultContent(), encounter.ChancePolicy{Chance: 0.35, Source: src}, src, zap.NewNop(), opts)
	require.NoError(t, err)
	return sim
}

func TestRun_TalliesEveryFight(t *testing.T) {
	for _, class := range character.Classes {
		t.Run(class.String(), func(t *testing.T) {
			sum, err := newSimulator(t, options(class, 10)).Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 10, sum.Fights)
			assert.Equal(t, sum.Fights, sum.Victories+sum.Defeats+sum.Fled)
			assert.Equal(t, 2, sum.Bosses)
			assert.Equal(t, sum.Victories/3, sum.Chests)
			assert.GreaterOrEqual(t, sum.HighestFloor, sum.Floor)
			assert.GreaterOrEqual(t, sum.HighestLevel, sum.Level)
		})
	}
}

func TestRun_DevModeKnightClearsFirstFloor(t *testing.T) {
	opts := options(character.Knight, 3)
	opts.DevMode = true

	sum, err := newSimulator(t, opts).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Victories)
	assert.Equal(t, 1, sum.Chests)
	assert.Equal(t, uint32(2), sum.Floor)
}

func TestRun_StartFloor(t *testing.T) {
	opts := options(character.Mage, 0)
	opts.StartFloor = 4

	sum, err := newSimulator(t, opts).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Fights)
	assert.Equal(t, uint32(4), sum.Floor)
	assert.Equal(t, uint32(4), sum.HighestFloor)
}

func TestRun_CancelledContextStopsBeforeFighting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := newSimulator(t, options(character.Cleric, 5)).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Fights)
	assert.Equal(t, uint32(1), sum.Level)
}

func TestRun_LogsEveryEncounter(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	src := dice.NewCryptoSource()
	sim, err := simulation.New(simulation.DefaultContent(), encounter.ChancePolicy{Chance: 1, Source: src}, src, zap.New(core), options(character.Knight, 4))
	require.NoError(t, err)

	_, err = sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, logs.FilterMessage("encounter finished").Len())
}

func TestNew_RejectsBadOptions(t *testing.T) {
	src := dice.NewCryptoSource()
	policy := encounter.ChancePolicy{Source: src}

	opts := options(character.Class(99), 1)
	_, err := simulation.New(simulation.DefaultContent(), policy, src, zap.NewNop(), opts)
	assert.Error(t, err)

	opts = options(character.Knight, 1)
	opts.BossEvery = 0
	_, err = simulation.New(simulation.DefaultContent(), policy, src, zap.NewNop(), opts)
	assert.Error(t, err)

	content := simulation.DefaultContent()
	content.Rewards.BossMultiplier = 0
	_, err = simulation.New(content, policy, src, zap.NewNop(), options(character.Knight, 1))
	assert.Error(t, err)
}

func TestNew_MissingBossTemplatesFailsOnBossFight(t *testing.T) {
	src := dice.NewCryptoSource()
	content := simulation.DefaultContent()
	var normals []*enemy.Template
	for _, tmpl := range content.Enemies {
		if tmpl.Kind == enemy.Normal {
			normals = append(normals, tmpl)
		}
	}
	content.Enemies = normals
	opts := options(character.Knight, 5)
	opts.DevMode = true
	opts.BossEvery = 1

	sim, err := simulation.New(content, encounter.ChancePolicy{Source: src}, src, zap.NewNop(), opts)
	require.NoError(t, err)
	_, err = sim.Run(context.Background())

	assert.ErrorIs(t, err, enemy.ErrNoTemplates)
}

func TestProperty_OutcomesAlwaysAddUp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		class := rapid.SampledFrom(character.Classes).Draw(t, "class")
		fights := rapid.IntRange(0, 8).Draw(t, "fights")
		opts := options(class, fights)
		opts.BossEvery = rapid.IntRange(1, 4).Draw(t, "boss_every")
		opts.ChestEvery = rapid.IntRange(1, 4).Draw(t, "chest_every")

		src := dice.NewCryptoSource()
		sim, err := simulation.New(simulation.DefaultContent(), encounter.ChancePolicy{Chance: 0.5, Source: src}, src, zap.NewNop(), opts)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := sim.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if sum.Victories+sum.Defeats+sum.Fled != fights {
			t.Fatalf("outcomes %d+%d+%d != %d fights", sum.Victories, sum.Defeats, sum.Fled, fights)
		}
		if sum.Bosses != fights/opts.BossEvery {
			t.Fatalf("bosses = %d, want %d", sum.Bosses, fights/opts.BossEvery)
		}
	})
}

func TestLoadContent_EmptyDirUsesDefaults(t *testing.T) {
	c, err := simulation.LoadContent("")
	require.NoError(t, err)
	assert.Equal(t, simulation.DefaultContent(), c)

	c, err = simulation.LoadContent(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, simulation.DefaultContent(), c)
}

func TestLoadContent_ReadsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rewards.yaml"), []byte("gold:\n  min: 50\n  max: 60\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "enemies"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies", "orc.yaml"), []byte(`id: orc
name: Orc
kind: normal
health: {base: 40, per_level: 6}
damage: {base: 7, per_level: 2}
crit_damage_multiplier: 1.5
`), 0o644))

	c, err := simulation.LoadContent(dir)
	require.NoError(t, err)

	assert.Equal(t, uint32(50), c.Rewards.Gold.Min)
	require.Len(t, c.Enemies, 1)
	assert.Equal(t, "Orc", c.Enemies[0].Name)
	assert.Equal(t, simulation.DefaultContent().Items, c.Items)
}

func TestLoadContent_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rewards.yaml"), []byte("gold:\n  min: 60\n  max: 50\n"), 0o644))

	_, err := simulation.LoadContent(dir)
	assert.Error(t, err)
}

func TestLoadContent_ShippedTables(t *testing.T) {
	c, err := simulation.LoadContent(filepath.Join("..", "..", "content"))
	require.NoError(t, err)

	roster, err := enemy.NewRoster(c.Enemies)
	require.NoError(t, err)
	assert.NotEmpty(t, roster.Templates(enemy.Normal))
	assert.NotEmpty(t, roster.Templates(enemy.Boss))
	assert.Equal(t, simulation.DefaultContent().Rewards, c.Rewards)
}
