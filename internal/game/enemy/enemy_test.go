package enemy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/game/skill"
)

var (
	_ combat.Target      = (*enemy.Enemy)(nil)
	_ combat.EnemyCaster = (*enemy.Enemy)(nil)
)

func defaultRoster(t *testing.T) *enemy.Roster {
	t.Helper()
	r, err := enemy.NewRoster(enemy.DefaultTemplates())
	require.NoError(t, err)
	return r
}

func TestScaling_At(t *testing.T) {
	s := enemy.Scaling{Base: 30, PerLevel: 8}
	assert.Equal(t, uint32(30), s.At(0))
	assert.Equal(t, uint32(30), s.At(1))
	assert.Equal(t, uint32(54), s.At(4))
	assert.Equal(t, ^uint32(0), enemy.Scaling{Base: 1, PerLevel: ^uint32(0)}.At(5))
}

func TestDefaultTemplates_AreValid(t *testing.T) {
	for _, tmpl := range enemy.DefaultTemplates() {
		assert.NoError(t, tmpl.Validate(), tmpl.ID)
	}
}

func TestTemplate_Validate_CollectsEveryViolation(t *testing.T) {
	tmpl := &enemy.Template{CritHitRate: 2, CritDamageMultiplier: 0.5}
	err := tmpl.Validate()
	require.Error(t, err)
	for _, want := range []string{"id", "name", "health.base", "crit_hit_rate", "crit_damage_multiplier"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNew_Normal(t *testing.T) {
	r := defaultRoster(t)
	tmpl, ok := r.Get("goblin")
	require.True(t, ok)

	e := enemy.New(tmpl, 3)

	eff := e.Stats()
	assert.Equal(t, uint32(46), eff.MaxHealth)
	assert.Equal(t, uint32(9), eff.Damage)
	assert.Equal(t, uint32(3), eff.Defense)
	assert.Zero(t, eff.MaxMana)
	assert.InDelta(t, 0.05, eff.CritHitRate, 1e-9)
	assert.InDelta(t, 1.5, eff.CritDamageMultiplier, 1e-9)
	assert.Equal(t, eff.MaxHealth, e.Health())
	assert.Equal(t, skill.None, e.Skill())
	assert.False(t, e.IsBoss())
}

func TestNew_BossSkills(t *testing.T) {
	r := defaultRoster(t)
	cyclops, _ := r.ByName("cyclops")
	dragon, _ := r.ByName("Dragon")

	assert.Equal(t, skill.Smash, enemy.New(cyclops, 1).Skill())
	assert.Equal(t, skill.FireBreath, enemy.New(dragon, 1).Skill())

	beholder := &enemy.Template{ID: "beholder", Name: "Beholder", Kind: enemy.Boss,
		Health: enemy.Scaling{Base: 100}, CritDamageMultiplier: 1}
	assert.Equal(t, skill.Unknown, enemy.New(beholder, 1).Skill())
}

func TestEnemy_TakeDamageAndDescription(t *testing.T) {
	tmpl := &enemy.Template{ID: "dummy", Name: "Dummy", Health: enemy.Scaling{Base: 100}, CritDamageMultiplier: 1}
	e := enemy.New(tmpl, 1)

	assert.Equal(t, "unharmed", e.HealthDescription())
	e.TakeDamage(50)
	assert.Equal(t, "moderately wounded", e.HealthDescription())
	assert.Equal(t, uint32(50), e.TakeDamage(500))
	assert.True(t, e.IsDead())
	assert.Equal(t, "dead", e.HealthDescription())
}

func TestEnemy_ReduceDefenseWithoutBoostsIsZero(t *testing.T) {
	r := defaultRoster(t)
	tmpl, _ := r.Get("skeleton")
	e := enemy.New(tmpl, 2)
	before := e.Stats().Defense

	assert.Zero(t, e.ReduceDefense(10))
	assert.Equal(t, before, e.Stats().Defense)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, uint32(1), enemy.LevelFor(enemy.Normal, 0))
	assert.Equal(t, uint32(4), enemy.LevelFor(enemy.Normal, 4))
	assert.Equal(t, uint32(4+enemy.BossLevelBonus), enemy.LevelFor(enemy.Boss, 4))
}

func TestRoster_RejectsDuplicates(t *testing.T) {
	templates := append(enemy.DefaultTemplates(), enemy.DefaultTemplates()[0])
	_, err := enemy.NewRoster(templates)
	assert.Error(t, err)
}

func TestRoster_RandomByKind(t *testing.T) {
	r := defaultRoster(t)

	bosses := r.Templates(enemy.Boss)
	require.Len(t, bosses, 2)
	assert.Equal(t, "cyclops", bosses[0].ID)

	tmpl, err := r.Random(enemy.Boss, dice.NewFixedSource([]int{1}, nil))
	require.NoError(t, err)
	assert.Equal(t, "dragon", tmpl.ID)

	empty, err := enemy.NewRoster(nil)
	require.NoError(t, err)
	_, err = empty.Random(enemy.Normal, dice.NewCryptoSource())
	assert.ErrorIs(t, err, enemy.ErrNoTemplates)
}

func TestRoster_Spawn(t *testing.T) {
	r := defaultRoster(t)

	e, err := r.Spawn(enemy.Boss, 3, dice.NewFixedSource([]int{0}, nil))
	require.NoError(t, err)

	assert.Equal(t, "Cyclops", e.Name())
	assert.Equal(t, uint32(5), e.Level())
}

func TestProperty_RandomAlwaysReturnsRequestedKind(t *testing.T) {
	r, err := enemy.NewRoster(enemy.DefaultTemplates())
	require.NoError(t, err)
	rapid.Check(t, func(rt *rapid.T) {
		k := enemy.Kind(rapid.IntRange(0, 1).Draw(rt, "kind"))
		n := rapid.IntRange(0, 1000).Draw(rt, "n")
		tmpl, err := r.Random(k, dice.NewFixedSource([]int{n}, nil))
		require.NoError(rt, err)
		assert.Equal(rt, k, tmpl.Kind)
	})
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	yml := `id: ogre
name: Ogre
kind: boss
health:
  base: 120
  per_level: 20
damage:
  base: 10
  per_level: 3
defense:
  base: 3
  per_level: 1
crit_hit_rate: 0.1
crit_damage_multiplier: 1.75
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ogre.yaml"), []byte(yml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	templates, err := enemy.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	ogre := templates[0]
	assert.Equal(t, enemy.Boss, ogre.Kind)
	assert.Equal(t, enemy.Scaling{Base: 120, PerLevel: 20}, ogre.Health)
	assert.InDelta(t, 1.75, ogre.CritDamageMultiplier, 1e-9)
}

func TestLoadTemplateFromBytes_RejectsUnknownKind(t *testing.T) {
	_, err := enemy.LoadTemplateFromBytes([]byte("id: x\nname: X\nkind: minion\nhealth: {base: 1}\ncrit_damage_multiplier: 1\n"))
	assert.Error(t, err)
}

func TestLoadTemplates_MissingDir(t *testing.T) {
	_, err := enemy.LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
