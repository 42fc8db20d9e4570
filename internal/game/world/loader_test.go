package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRoomsYAML = `
start_room: room_a
rooms:
  - id: room_a
    name: "Room A"
    description: |
      This is room A.
      It has two lines.
    exits:
      - direction: north
        target: room_b
      - direction: E
        target: room_c
    track: theme_a
  - id: room_b
    name: "Room B"
    description: "This is room B."
    exits:
      - direction: south
        target: room_a
        key_id: k1
        locked: true
  - id: room_c
    name: "Room C"
    description: "This is room C."
    encounter: troll
    exits:
      - direction: west
        target: room_a
        open: true
`

func requireLoadError(t *testing.T, err error, contains string) {
	t.Helper()
	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le), "expected *LoadError, got %T", err)
	assert.Contains(t, err.Error(), contains)
}

func TestLoadRoomsFromBytes_Valid(t *testing.T) {
	w, err := LoadRoomsFromBytes([]byte(validRoomsYAML))
	require.NoError(t, err)

	assert.Equal(t, "room_a", w.StartRoom)
	assert.Equal(t, 3, w.RoomCount())

	roomA, ok := w.Room("room_a")
	require.True(t, ok)
	assert.Equal(t, "Room A", roomA.Name)
	assert.Equal(t, "This is room A.\nIt has two lines.", roomA.Description)
	assert.Equal(t, "theme_a", roomA.Track)

	// Abbreviated directions are normalized at load time.
	target, ok := roomA.ExitTo(East)
	assert.True(t, ok)
	assert.Equal(t, "room_c", target)

	roomB, _ := w.Room("room_b")
	assert.True(t, roomB.IsLocked(South))

	roomC, _ := w.Room("room_c")
	assert.Equal(t, "troll", roomC.Encounter)
	exit, ok := roomC.ExitForDirection(West)
	require.True(t, ok)
	assert.True(t, exit.Open)
}

func TestLoadRoomsFromBytes_DefaultStartRoomIsFirst(t *testing.T) {
	data := `
rooms:
  - id: first
    name: First
    description: The first room.
    exits: []
  - id: second
    name: Second
    description: The second room.
    exits: []
`
	w, err := LoadRoomsFromBytes([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "first", w.StartRoom)
}

func TestLoadRoomsFromBytes_InvalidYAML(t *testing.T) {
	_, err := LoadRoomsFromBytes([]byte("rooms: [valid yaml"))
	requireLoadError(t, err, "parsing rooms YAML")
}

func TestLoadRoomsFromBytes_NoRooms(t *testing.T) {
	_, err := LoadRoomsFromBytes([]byte("start_room: a\n"))
	requireLoadError(t, err, "no rooms defined")
}

func TestLoadRoomsFromBytes_MissingFields(t *testing.T) {
	cases := map[string]string{
		"room ID must not be empty": `
rooms:
  - name: Nameless
    description: No id.
    exits: []
`,
		"name must not be empty": `
rooms:
  - id: a
    description: No name.
    exits: []
`,
		"description must not be empty": `
rooms:
  - id: a
    name: A
    exits: []
`,
		"exits must be present": `
rooms:
  - id: a
    name: A
    description: No exits key.
`,
	}
	for want, data := range cases {
		t.Run(want, func(t *testing.T) {
			_, err := LoadRoomsFromBytes([]byte(data))
			requireLoadError(t, err, want)
		})
	}
}

func TestLoadRoomsFromBytes_DuplicateRoomID(t *testing.T) {
	data := `
rooms:
  - id: a
    name: A
    description: First.
    exits: []
  - id: a
    name: A again
    description: Second.
    exits: []
`
	_, err := LoadRoomsFromBytes([]byte(data))
	requireLoadError(t, err, "duplicate room ID")
}

func TestLoadRoomsFromBytes_DuplicateDirectionCaseInsensitive(t *testing.T) {
	data := `
rooms:
  - id: a
    name: A
    description: Two norths.
    exits:
      - direction: north
        target: a
      - direction: NORTH
        target: a
`
	_, err := LoadRoomsFromBytes([]byte(data))
	requireLoadError(t, err, "duplicate exit direction")
}

func TestLoadRoomsFromBytes_UnknownExitTarget(t *testing.T) {
	data := `
rooms:
  - id: a
    name: A
    description: Leads nowhere.
    exits:
      - direction: north
        target: nowhere
`
	_, err := LoadRoomsFromBytes([]byte(data))
	requireLoadError(t, err, `targets unknown room "nowhere"`)
}

func TestLoadRoomsFromBytes_UnknownStartRoom(t *testing.T) {
	data := `
start_room: missing
rooms:
  - id: a
    name: A
    description: Alone.
    exits: []
`
	_, err := LoadRoomsFromBytes([]byte(data))
	requireLoadError(t, err, "start_room")
}

func TestLoadRoomsFromBytes_LockedWithoutKey(t *testing.T) {
	data := `
rooms:
  - id: a
    name: A
    description: Sealed.
    exits:
      - direction: north
        target: a
        locked: true
`
	_, err := LoadRoomsFromBytes([]byte(data))
	requireLoadError(t, err, "no key_id")
}

func TestLoadRoomsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validRoomsYAML), 0644))

	w, err := LoadRoomsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, w.RoomCount())
}

func TestLoadRoomsFromFile_NotFound(t *testing.T) {
	_, err := LoadRoomsFromFile("/nonexistent/rooms.yaml")
	requireLoadError(t, err, "/nonexistent/rooms.yaml")
}

func TestLoadRoomsFromFile_InvalidContentNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rooms: []"), 0644))
	_, err := LoadRoomsFromFile(path)
	requireLoadError(t, err, path)
}
