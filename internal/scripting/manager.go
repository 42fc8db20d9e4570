package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Hook names called by the session.
const (
	HookOnEnter = "on_enter"
	HookOnOpen  = "on_open"
	HookOnYell  = "on_yell"
)

// Manager owns one sandboxed LState and exposes hook dispatch.
//
// Manager is not safe for concurrent use; the session calls it from its
// single command goroutine.
type Manager struct {
	L         *lua.LState
	cancel    context.CancelFunc
	instLimit int
	logger    *zap.Logger

	// Injected after construction. nil = no-op in engine.* functions.
	Narrate func(text string)
	// GetFlag returns a bool, int or string flag value.
	GetFlag func(name string) (any, bool)
	SetFlag func(name string, value any) error
	// Unlock unlocks the exit in dir of the current room when the player
	// carries a fitting key, and reports whether it did.
	Unlock func(dir string) bool
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: logger must be non-nil.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Load creates a sandboxed VM, registers the engine.* functions, then
// executes every *.lua file in scriptDir in lexicographic order. A previously
// loaded VM is replaced.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: returns error on read or Lua load failure, leaving any
// previous VM in place.
func (m *Manager) Load(scriptDir string, instLimit int) error {
	L, cancel := NewSandboxedState(instLimit)
	m.RegisterModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.Close()
	m.L = L
	m.cancel = cancel
	m.instLimit = normalizeLimit(instLimit)
	m.logger.Info("scripts loaded", zap.String("dir", scriptDir), zap.Int("files", len(luaFiles)))
	return nil
}

// Loaded reports whether a VM is present.
func (m *Manager) Loaded() bool {
	return m.L != nil
}

// CallHook calls the named Lua global function with string arguments.
// Returns (LNil, nil) if no VM is loaded or the hook is not defined. Lua
// runtime errors are logged at Warn level and never propagated. Each call
// gets a fresh instruction budget.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(hook string, args ...string) (lua.LValue, error) {
	if m.L == nil {
		m.logger.Debug("scripting: no VM loaded", zap.String("hook", hook))
		return lua.LNil, nil
	}

	fn := m.L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := newCountingContext(m.instLimit)
	m.L.SetContext(ctx)
	m.cancel = cancel

	largs := make([]lua.LValue, len(args))
	for i, a := range args {
		largs[i] = lua.LString(a)
	}
	if err := m.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, largs...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := m.L.Get(-1)
	m.L.Pop(1)
	return ret, nil
}

// Close releases the VM. It is safe to call on an empty Manager.
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.L != nil {
		m.L.Close()
		m.L = nil
	}
}
