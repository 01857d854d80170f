package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// RegisterModules registers the engine Lua table into s:
//
//	engine.log(msg)        logs msg at info level
//	engine.chance(p)       true with probability p
//	engine.roll(min, max)  uniform integer in [min, max]
//
// Precondition: src and logger must be non-nil.
// Postcondition: engine global is defined in s.
func RegisterModules(s *Sandbox, src dice.Source, logger *zap.Logger) {
	L := s.L
	engine := L.NewTable()
	L.SetField(engine, "log", L.NewFunction(func(L *lua.LState) int {
		logger.Info("lua", zap.String("msg", L.CheckString(1)))
		return 0
	}))
	L.SetField(engine, "chance", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(dice.Chance(src, float64(L.CheckNumber(1)))))
		return 1
	}))
	L.SetField(engine, "roll", L.NewFunction(func(L *lua.LState) int {
		lo, hi := L.CheckInt(1), L.CheckInt(2)
		L.Push(lua.LNumber(dice.Range(src, lo, hi)))
		return 1
	}))
	L.SetGlobal("engine", engine)
}
