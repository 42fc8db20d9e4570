package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/textquest/internal/scripting"
)

func newTestManager(t testing.TB) (*scripting.Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	mgr := scripting.NewManager(zap.New(core))
	t.Cleanup(mgr.Close)
	return mgr, logs
}

func writeTempLua(t testing.TB, filename, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(src), 0644))
	return dir
}

func TestManager_Load_CallsHook(t *testing.T) {
	mgr, _ := newTestManager(t)
	dir := writeTempLua(t, "hooks.lua", `
		function on_yell(text)
			return text .. "!"
		end
	`)
	require.NoError(t, mgr.Load(dir, 0))
	ret, err := mgr.CallHook(scripting.HookOnYell, "hey")
	require.NoError(t, err)
	assert.Equal(t, lua.LString("hey!"), ret)
}

func TestManager_CallHook_NoVM_NoOp(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.False(t, mgr.Loaded())
	ret, err := mgr.CallHook(scripting.HookOnEnter, "a")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestManager_CallHook_MissingHook_NoOp(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "empty.lua", `-- nothing`), 0))
	ret, err := mgr.CallHook("nonexistent_hook")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
}

func TestManager_CallHook_RuntimeError_WarnLogNoPanic(t *testing.T) {
	mgr, logs := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "bad.lua", `
		function on_open(item)
			error("intentional error")
		end
	`), 0))
	ret, err := mgr.CallHook(scripting.HookOnOpen, "box")
	require.NoError(t, err)
	assert.Equal(t, lua.LNil, ret)
	assert.NotEmpty(t, logs.FilterLevelExact(zap.WarnLevel).All())
}

func TestManager_Load_InvalidLua_ReturnsError(t *testing.T) {
	mgr, _ := newTestManager(t)
	assert.Error(t, mgr.Load(writeTempLua(t, "bad.lua", `this is not valid lua @@@@`), 0))
	assert.False(t, mgr.Loaded())
	assert.Error(t, mgr.Load(filepath.Join(t.TempDir(), "missing"), 0))
}

func TestManager_BudgetResetsPerCall(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load(writeTempLua(t, "loop.lua", `
		function on_enter(room)
			local n = 0
			for i = 1, 200 do n = n + i end
			return n
		end
	`), 5000))
	for i := 0; i < 20; i++ {
		ret, err := mgr.CallHook(scripting.HookOnEnter, "a")
		require.NoError(t, err)
		assert.Equal(t, lua.LNumber(20100), ret, "call %d", i)
	}
}

func TestManager_EngineFunctions(t *testing.T) {
	mgr, _ := newTestManager(t)
	var narrated []string
	flags := map[string]any{"opened_vault": false, "trial_index": 0}
	var unlocked []string
	mgr.Narrate = func(text string) { narrated = append(narrated, text) }
	mgr.GetFlag = func(name string) (any, bool) {
		v, ok := flags[name]
		return v, ok
	}
	mgr.SetFlag = func(name string, value any) error {
		flags[name] = value
		return nil
	}
	mgr.Unlock = func(dir string) bool {
		unlocked = append(unlocked, dir)
		return true
	}
	require.NoError(t, mgr.Load(writeTempLua(t, "hooks.lua", `
		function on_enter(room)
			if not engine.flag("opened_vault") then
				engine.set_flag("opened_vault", true)
				engine.set_flag("trial_index", engine.flag("trial_index") + 1)
				engine.narrate("entered " .. room)
			end
			assert(engine.flag("no_such_flag") == nil)
			return engine.unlock("north")
		end
	`), 0))

	ret, err := mgr.CallHook(scripting.HookOnEnter, "vault")
	require.NoError(t, err)
	assert.Equal(t, lua.LTrue, ret)
	assert.Equal(t, []string{"entered vault"}, narrated)
	assert.Equal(t, true, flags["opened_vault"])
	assert.Equal(t, 1, flags["trial_index"])
	assert.Equal(t, []string{"north"}, unlocked)

	_, err = mgr.CallHook(scripting.HookOnEnter, "vault")
	require.NoError(t, err)
	assert.Len(t, narrated, 1, "second entry must not narrate again")
}

func TestManager_ShippedHooks(t *testing.T) {
	mgr, _ := newTestManager(t)
	flags := map[string]any{
		"in_trial": false, "trial_index": 0, "answered_news": false,
		"opened_vault": false, "support_check": false,
	}
	mgr.GetFlag = func(name string) (any, bool) { v, ok := flags[name]; return v, ok }
	mgr.SetFlag = func(name string, value any) error { flags[name] = value; return nil }
	require.NoError(t, mgr.Load(filepath.Join("..", "..", "content", "scripts"), 0))

	_, err := mgr.CallHook(scripting.HookOnEnter, "cave")
	require.NoError(t, err)
	assert.Equal(t, true, flags["in_trial"])
	assert.Equal(t, 1, flags["trial_index"])

	_, err = mgr.CallHook(scripting.HookOnYell, "HELP ME!")
	require.NoError(t, err)
	assert.Equal(t, true, flags["support_check"])
}
