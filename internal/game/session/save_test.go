package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/textquest/internal/game/session"
	"github.com/cory-johannsen/textquest/internal/game/world"
)

var moves = []string{
	"go north", "go south", "use key", "take coin", "drop coin", "take box",
	"drop box", "take bread", "use bread", "yell hi", "look", "inventory",
	"music start", "music stop", "hit volume-down", "dance",
}

// encode renders a save without its identity so two saves of the same state compare equal.
func encode(t require.TestingT, sv *session.Save) string {
	cp := *sv
	cp.ID = ""
	cp.CreatedAt = cp.CreatedAt.UTC()
	out, err := yaml.Marshal(&cp)
	require.NoError(t, err)
	return string(out)
}

func TestSnapshot_IndependentOfLiveState(t *testing.T) {
	f := newFixture(t, abFactory(t))
	require.NoError(t, f.step("go north"))
	sv := f.s.Snapshot()

	require.NoError(t, f.step("use key"))
	require.NoError(t, f.step("go south"))
	require.NoError(t, f.step("take coin"))

	roomB, _ := sv.World.Room("b")
	assert.True(t, roomB.IsLocked(world.South), "save must keep the exit locked")
	assert.Equal(t, "b", sv.CurrentRoom)
	_, carried := sv.Inventory.FindByName("coin")
	assert.False(t, carried)
}

func TestRestore_ReplacesEverything(t *testing.T) {
	f := newFixture(t, abFactory(t))
	sv := f.s.Snapshot()

	require.NoError(t, f.step("take coin"))
	require.NoError(t, f.step("go north"))
	require.NoError(t, f.step("use key"))
	require.NoError(t, f.s.Restore(sv))

	assert.Equal(t, "a", f.s.CurrentRoom())
	assert.Equal(t, "rusty key", f.s.Inventory().Describe())
	roomB, _ := f.s.World().Room("b")
	assert.True(t, roomB.IsLocked(world.South))

	// Mutating the restored session must not reach back into the save.
	require.NoError(t, f.step("take coin"))
	roomA, _ := sv.World.Room("a")
	_, ok := roomA.FindItem("coin")
	assert.True(t, ok)
}

func TestRestore_RejectsInvalidSave(t *testing.T) {
	f := newFixture(t, abFactory(t))
	assert.Error(t, f.s.Restore(nil))
	bad := f.s.Snapshot()
	bad.CurrentRoom = "nowhere"
	assert.Error(t, f.s.Restore(bad))
	assert.Equal(t, "a", f.s.CurrentRoom())
}

func TestRestore_SyncsAudio(t *testing.T) {
	f := newFixture(t, abFactory(t))
	require.NoError(t, f.step("music start"))
	sv := f.s.Snapshot()
	require.NoError(t, f.step("music stop"))
	require.NoError(t, f.s.Restore(sv))
	assert.Equal(t, "calm", f.s.ActiveTrack())
	assert.True(t, f.audio.Playing)
}

// TestProperty_SnapshotRestoreRoundTrip: for any command history, a save never
// changes after capture, and restoring it reproduces the captured state.
func TestProperty_SnapshotRestoreRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t, abFactory(t))
		for _, line := range rapid.SliceOfN(rapid.SampledFrom(moves), 0, 12).Draw(rt, "before") {
			_ = f.s.Step(line)
		}
		sv := f.s.Snapshot()
		captured := encode(rt, sv)

		for _, line := range rapid.SliceOfN(rapid.SampledFrom(moves), 0, 12).Draw(rt, "after") {
			_ = f.s.Step(line)
		}
		assert.Equal(rt, captured, encode(rt, sv), "save changed after capture")

		require.NoError(rt, f.s.Restore(sv))
		assert.Equal(rt, captured, encode(rt, f.s.Snapshot()), "restore did not reproduce the save")
	})
}

func TestSave_YAMLRoundTrip(t *testing.T) {
	f := newFixture(t, lairFactory(t, true))
	require.NoError(t, f.step("go east"))
	sv := f.s.Snapshot()

	data, err := yaml.Marshal(sv)
	require.NoError(t, err)
	var decoded session.Save
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.NoError(t, decoded.Validate())

	require.NoError(t, f.s.Restore(&decoded))
	assert.Equal(t, "lair", f.s.CurrentRoom())
	assert.True(t, f.s.InEncounter())
	assert.Equal(t, "sword, stick", f.s.Inventory().Describe())
}
