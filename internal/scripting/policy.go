package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
	"github.com/cory-johannsen/dungeon/internal/game/encounter"
)

// HookName is the Lua global a policy script defines. It receives the enemy
// table and returns true to use the enemy's skill.
const HookName = "use_skill"

// PolicyOptions configures a Policy.
type PolicyOptions struct {
	// InstructionLimit is the opcode budget per call; 0 uses the default.
	InstructionLimit int
	// Source backs engine.chance and engine.roll.
	Source dice.Source
	// Fallback decides when the script has no hook, fails, or returns a
	// non-boolean. nil means never use the skill.
	Fallback encounter.SkillPolicy
	Logger   *zap.Logger
}

// Policy is an encounter.SkillPolicy backed by a Lua script.
// All methods are safe for concurrent use.
type Policy struct {
	mu       sync.Mutex
	box      *Sandbox
	fallback encounter.SkillPolicy
	logger   *zap.Logger
}

// NewPolicy creates a policy from Lua source.
//
// Precondition: o.Source and o.Logger must be non-nil.
// Postcondition: the caller must Close the policy.
func NewPolicy(code string, o PolicyOptions) (*Policy, error) {
	p := newPolicy(o)
	if err := p.box.DoString(code); err != nil {
		p.Close()
		return nil, fmt.Errorf("scripting: loading policy: %w", err)
	}
	return p, nil
}

// LoadPolicy creates a policy from path: a single .lua file, or a directory
// whose *.lua files are executed in lexicographic order.
//
// Precondition: o.Source and o.Logger must be non-nil.
// Postcondition: the caller must Close the policy.
func LoadPolicy(path string, o PolicyOptions) (*Policy, error) {
	files, err := luaFiles(path)
	if err != nil {
		return nil, err
	}
	p := newPolicy(o)
	for _, f := range files {
		if err := p.box.DoFile(f); err != nil {
			p.Close()
			return nil, fmt.Errorf("scripting: loading %q: %w", f, err)
		}
	}
	return p, nil
}

func newPolicy(o PolicyOptions) *Policy {
	box := NewSandbox(o.InstructionLimit)
	RegisterModules(box, o.Source, o.Logger)
	return &Policy{box: box, fallback: o.Fallback, logger: o.Logger}
}

func luaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading policy %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading policy dir %q: %w", path, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// UseSkill implements encounter.SkillPolicy by calling the use_skill hook with
// a table {name, level, health, max_health, boss, skill}. A missing hook, a
// Lua runtime error or a non-boolean result defers to the fallback; errors are
// logged at warn level and never propagated.
func (p *Policy) UseSkill(v encounter.EnemyView) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	L := p.box.L
	fn := L.GetGlobal(HookName)
	if fn == lua.LNil {
		return p.fallbackFor(v)
	}

	t := L.NewTable()
	t.RawSetString("name", lua.LString(v.Name))
	t.RawSetString("level", lua.LNumber(v.Level))
	t.RawSetString("health", lua.LNumber(v.Health))
	t.RawSetString("max_health", lua.LNumber(v.MaxHealth))
	t.RawSetString("boss", lua.LBool(v.Boss))
	t.RawSetString("skill", lua.LString(v.Skill.String()))

	ret, err := p.box.Call(fn, t)
	if err != nil {
		p.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", HookName),
			zap.String("enemy", v.Name),
			zap.Error(err),
		)
		return p.fallbackFor(v)
	}
	b, ok := ret.(lua.LBool)
	if !ok {
		if ret != lua.LNil {
			p.logger.Warn("scripting: hook returned a non-boolean",
				zap.String("hook", HookName),
				zap.String("type", ret.Type().String()),
			)
		}
		return p.fallbackFor(v)
	}
	return bool(b)
}

func (p *Policy) fallbackFor(v encounter.EnemyView) bool {
	if p.fallback == nil {
		return false
	}
	return p.fallback.UseSkill(v)
}

// Close releases the Lua state.
func (p *Policy) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.box.Close()
}
