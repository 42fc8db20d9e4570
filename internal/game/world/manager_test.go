package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/textquest/internal/game/inventory"
)

// twoRoomWorld builds rooms A (north→B) and B (south→A, locked with k1).
func twoRoomWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld([]*Room{
		{ID: "A", Name: "Room A", Description: "A.", Exits: []Exit{{Direction: North, Target: "B"}}},
		{ID: "B", Name: "Room B", Description: "B.", Exits: []Exit{{Direction: South, Target: "A", KeyID: "k1", Locked: true}}},
	}, "A")
	require.NoError(t, err)
	return w
}

func TestNewWorld(t *testing.T) {
	w := twoRoomWorld(t)
	assert.Equal(t, 2, w.RoomCount())
	assert.Equal(t, "A", w.Start().ID)
	assert.Equal(t, []string{"A", "B"}, w.RoomIDs())
}

func TestNewWorld_DuplicateRoom(t *testing.T) {
	_, err := NewWorld([]*Room{
		{ID: "A", Name: "A", Description: "A.", Exits: []Exit{}},
		{ID: "A", Name: "A2", Description: "A2.", Exits: []Exit{}},
	}, "A")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate room ID")
}

func TestNewWorld_DanglingExit(t *testing.T) {
	_, err := NewWorld([]*Room{
		{ID: "A", Name: "A", Description: "A.", Exits: []Exit{{Direction: Up, Target: "attic"}}},
	}, "A")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "targets unknown room")
}

func TestWorld_Navigate(t *testing.T) {
	w := twoRoomWorld(t)

	room, err := w.Navigate("A", North)
	require.NoError(t, err)
	assert.Equal(t, "B", room.ID)

	_, err = w.Navigate("A", West)
	assert.True(t, errors.Is(err, ErrInvalidDirection))

	_, err = w.Navigate("B", South)
	assert.True(t, errors.Is(err, ErrExitLocked))

	b, _ := w.Room("B")
	require.NoError(t, b.Unlock(South, "k1"))
	room, err = w.Navigate("B", South)
	require.NoError(t, err)
	assert.Equal(t, "A", room.ID)

	_, err = w.Navigate("nowhere", North)
	assert.Error(t, err)
}

func TestWorld_Clone_Independent(t *testing.T) {
	w := twoRoomWorld(t)
	a, _ := w.Room("A")
	a.AddItem(&inventory.Item{Name: "lamp", Kind: inventory.KindJunk})

	c := w.Clone()

	b, _ := w.Room("B")
	require.NoError(t, b.Unlock(South, "k1"))
	_, err := a.RemoveItem("lamp")
	require.NoError(t, err)

	cb, _ := c.Room("B")
	assert.True(t, cb.IsLocked(South), "clone must not observe unlocks on the original")
	ca, _ := c.Room("A")
	assert.Len(t, ca.Items, 1, "clone must not observe item removal on the original")
}

func TestPropertyCloneMatchesOriginal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "rooms")
		rooms := make([]*Room, n)
		for i := range rooms {
			rooms[i] = &Room{
				ID:          string(rune('a' + i)),
				Name:        "Room",
				Description: "Desc.",
				Exits:       []Exit{{Direction: North, Target: string(rune('a' + (i+1)%n))}},
			}
		}
		w, err := NewWorld(rooms, "a")
		require.NoError(rt, err)
		c := w.Clone()
		assert.Equal(rt, w, c)
		for id := range w.Rooms {
			assert.NotSame(rt, w.Rooms[id], c.Rooms[id])
		}
	})
}
