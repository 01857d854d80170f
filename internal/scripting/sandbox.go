// Package scripting runs enemy skill policies written in Lua inside a
// sandboxed GopherLua state. Game state reaches a script only as plain Lua
// tables; scripts cannot touch the character or the enemy directly.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed per
// script execution when no limit is configured.
const DefaultInstructionLimit = 100_000

// countingContext is a context.Context that cancels itself after Done() has
// been called limit times. GopherLua's mainLoopWithContext calls Done() once
// per opcode, making this an exact instruction-count limit.
type countingContext struct {
	context.Context
	cancel    context.CancelFunc
	remaining *atomic.Int64
}

// Done returns the underlying cancellation channel. Each call decrements the
// remaining counter; when it reaches zero the cancel function fires,
// terminating the Lua VM on the next opcode boundary.
func (c *countingContext) Done() <-chan struct{} {
	if c.remaining.Add(-1) <= 0 {
		c.cancel()
	}
	return c.Context.Done()
}

// newCountingContext returns a context that cancels after limit calls to Done().
// Precondition: limit > 0.
func newCountingContext(limit int) (context.Context, context.CancelFunc) {
	base, cancel := context.WithCancel(context.Background())
	rem := &atomic.Int64{}
	rem.Store(int64(limit))
	return &countingContext{
		Context:   base,
		cancel:    cancel,
		remaining: rem,
	}, cancel
}

// Sandbox is a GopherLua state with:
//   - Only safe stdlib loaded: base, table, string, math
//   - Dangerous globals removed: dofile, loadfile, load, collectgarbage, require
//   - Every execution limited to at most limit Lua opcodes (deterministic)
//
// A Sandbox is not safe for concurrent use.
type Sandbox struct {
	L     *lua.LState
	limit int
}

// NewSandbox creates a Sandbox.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: the caller owns the Sandbox and must call Close when done.
func NewSandbox(instLimit int) *Sandbox {
	limit := instLimit
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open only safe standard libraries.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	return &Sandbox{L: L, limit: limit}
}

// Limit returns the per-execution opcode budget.
func (s *Sandbox) Limit() int { return s.limit }

// budget installs a fresh opcode budget and returns a function that removes it.
// Each execution gets the whole budget; nothing carries over between calls.
func (s *Sandbox) budget() func() {
	ctx, cancel := newCountingContext(s.limit)
	s.L.SetContext(ctx)
	return func() {
		s.L.RemoveContext()
		cancel()
	}
}

// DoString executes src under the opcode budget.
func (s *Sandbox) DoString(src string) error {
	done := s.budget()
	defer done()
	return s.L.DoString(src)
}

// DoFile executes the script at path under the opcode budget.
func (s *Sandbox) DoFile(path string) error {
	done := s.budget()
	defer done()
	return s.L.DoFile(path)
}

// Call invokes fn with args under the opcode budget and returns its first
// result. Runtime errors, including an exhausted budget, are returned, never
// raised.
func (s *Sandbox) Call(fn lua.LValue, args ...lua.LValue) (lua.LValue, error) {
	done := s.budget()
	defer done()
	if err := s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, err
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// Close releases the Lua state.
func (s *Sandbox) Close() {
	s.L.Close()
}
