package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// RegisterModules registers the engine table into L:
//
//	engine.narrate(text)
//	engine.flag(name) -> bool | number | string | nil
//	engine.set_flag(name, value)
//	engine.unlock(direction) -> bool
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetFuncs(engine, map[string]lua.LGFunction{
		"narrate":  m.luaNarrate,
		"flag":     m.luaFlag,
		"set_flag": m.luaSetFlag,
		"unlock":   m.luaUnlock,
	})
	L.SetGlobal("engine", engine)
}

func (m *Manager) luaNarrate(L *lua.LState) int {
	text := L.CheckString(1)
	if m.Narrate != nil {
		m.Narrate(text)
	}
	return 0
}

func (m *Manager) luaFlag(L *lua.LState) int {
	name := L.CheckString(1)
	if m.GetFlag == nil {
		L.Push(lua.LNil)
		return 1
	}
	v, ok := m.GetFlag(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(toLua(v))
	return 1
}

func (m *Manager) luaSetFlag(L *lua.LState) int {
	name := L.CheckString(1)
	value, err := fromLua(L.Get(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	if m.SetFlag != nil {
		if err := m.SetFlag(name, value); err != nil {
			L.RaiseError("set_flag %q: %s", name, err.Error())
		}
	}
	return 0
}

func (m *Manager) luaUnlock(L *lua.LState) int {
	dir := L.CheckString(1)
	ok := false
	if m.Unlock != nil {
		ok = m.Unlock(dir)
	}
	L.Push(lua.LBool(ok))
	return 1
}

// toLua converts a Go flag value to its Lua counterpart.
func toLua(v any) lua.LValue {
	switch x := v.(type) {
	case bool:
		return lua.LBool(x)
	case int:
		return lua.LNumber(x)
	case string:
		return lua.LString(x)
	default:
		return lua.LNil
	}
}

// fromLua converts a Lua flag value to bool, int or string.
func fromLua(v lua.LValue) (any, error) {
	switch x := v.(type) {
	case lua.LBool:
		return bool(x), nil
	case lua.LNumber:
		return int(x), nil
	case lua.LString:
		return string(x), nil
	default:
		return nil, fmt.Errorf("unsupported flag value of type %s", v.Type().String())
	}
}
