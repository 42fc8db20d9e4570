package world

import (
	"fmt"
	"sort"
)

// World is the room graph of one play-through. It is owned by a single
// session goroutine and is not safe for concurrent use.
type World struct {
	// Rooms indexes every room by ID.
	Rooms map[string]*Room `yaml:"rooms"`
	// StartRoom is the ID of the room a new game begins in.
	StartRoom string `yaml:"start_room"`
}

// NewWorld indexes rooms by ID and validates the resulting graph.
//
// Precondition: rooms must be non-empty.
// Postcondition: Returns a validated World, or an error on a duplicate room ID,
// an invalid room, an unknown start room or a dangling exit.
func NewWorld(rooms []*Room, startRoom string) (*World, error) {
	w := &World{
		Rooms:     make(map[string]*Room, len(rooms)),
		StartRoom: startRoom,
	}
	for _, r := range rooms {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, exists := w.Rooms[r.ID]; exists {
			return nil, fmt.Errorf("duplicate room ID %q", r.ID)
		}
		w.Rooms[r.ID] = r
	}
	if w.StartRoom == "" && len(rooms) > 0 {
		w.StartRoom = rooms[0].ID
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks that the world is non-empty, the start room exists and
// every exit target resolves to a known room.
//
// Postcondition: Returns nil if all exits resolve, or an error naming the first dangling target.
func (w *World) Validate() error {
	if len(w.Rooms) == 0 {
		return fmt.Errorf("world must contain at least one room")
	}
	if _, ok := w.Rooms[w.StartRoom]; !ok {
		return fmt.Errorf("start_room %q not found in rooms", w.StartRoom)
	}
	for _, id := range w.RoomIDs() {
		room := w.Rooms[id]
		for _, exit := range room.Exits {
			if _, ok := w.Rooms[exit.Target]; !ok {
				return fmt.Errorf("room %q: exit %q targets unknown room %q", id, exit.Direction, exit.Target)
			}
		}
	}
	return nil
}

// Room returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) Room(id string) (*Room, bool) {
	r, ok := w.Rooms[id]
	return r, ok
}

// Start returns the start room.
func (w *World) Start() *Room {
	return w.Rooms[w.StartRoom]
}

// Navigate resolves movement from a room in a direction.
//
// Precondition: fromRoomID must exist in the world.
// Postcondition: Returns the destination room, or an error wrapping
// ErrInvalidDirection or ErrExitLocked.
func (w *World) Navigate(fromRoomID string, dir Direction) (*Room, error) {
	from, ok := w.Rooms[fromRoomID]
	if !ok {
		return nil, fmt.Errorf("room %q not found", fromRoomID)
	}

	exit, ok := from.ExitForDirection(dir)
	if !ok {
		return nil, fmt.Errorf("no exit %q from %q: %w", dir, fromRoomID, ErrInvalidDirection)
	}

	if exit.Locked {
		return nil, fmt.Errorf("the way %s is locked: %w", dir, ErrExitLocked)
	}

	target, ok := w.Rooms[exit.Target]
	if !ok {
		return nil, fmt.Errorf("exit %q from %q targets unknown room %q", dir, fromRoomID, exit.Target)
	}

	return target, nil
}

// RoomCount returns the total number of rooms.
func (w *World) RoomCount() int {
	return len(w.Rooms)
}

// RoomIDs returns all room IDs in sorted order.
func (w *World) RoomIDs() []string {
	ids := make([]string, 0, len(w.Rooms))
	for id := range w.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the world: exits and item sets are copied so
// that mutating either world never affects the other.
func (w *World) Clone() *World {
	c := &World{
		Rooms:     make(map[string]*Room, len(w.Rooms)),
		StartRoom: w.StartRoom,
	}
	for id, r := range w.Rooms {
		c.Rooms[id] = r.clone()
	}
	return c
}
