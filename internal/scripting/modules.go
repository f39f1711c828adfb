package scripting

import (
	lua "github.com/yuin/gopher-lua"
)

// RegisterModules registers the dice.* and log.* Lua tables into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: dice and log globals are defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	diceTbl := L.NewTable()
	L.SetField(diceTbl, "roll", L.NewFunction(m.luaRoll))
	L.SetGlobal("dice", diceTbl)

	logTbl := L.NewTable()
	L.SetField(logTbl, "debug", m.luaLog(L, "debug"))
	L.SetField(logTbl, "info", m.luaLog(L, "info"))
	L.SetField(logTbl, "warn", m.luaLog(L, "warn"))
	L.SetField(logTbl, "error", m.luaLog(L, "error"))
	L.SetGlobal("log", logTbl)
}

// luaRoll implements dice.roll(expr). On success it returns a table with
// result, sum, rolls, and formula fields; on failure it returns nil plus the
// error message, the conventional Lua error protocol.
func (m *Manager) luaRoll(L *lua.LState) int {
	expr := L.CheckString(1)

	res, err := m.roller.Roll(expr)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	t := L.NewTable()
	L.SetField(t, "result", lua.LNumber(res.Value()))
	L.SetField(t, "sum", lua.LNumber(res.Sum()))
	L.SetField(t, "rolls", lua.LString(res.RollsString()))
	L.SetField(t, "formula", lua.LString(res.FormulaInfix()))
	L.SetField(t, "notation", lua.LString(res.RollsFormulaInfix()))
	L.Push(t)
	return 1
}

// luaLog returns a Lua function logging its string argument at the given
// level through the Manager's zap logger.
func (m *Manager) luaLog(L *lua.LState, level string) *lua.LFunction {
	return L.NewFunction(func(ls *lua.LState) int {
		msg := ls.CheckString(1)
		switch level {
		case "debug":
			m.logger.Debug(msg)
		case "info":
			m.logger.Info(msg)
		case "warn":
			m.logger.Warn(msg)
		default:
			m.logger.Error(msg)
		}
		return 0
	})
}
