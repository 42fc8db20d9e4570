// Package world provides the game world model: rooms, exits, directions and
// the room graph.
package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/textquest/internal/game/inventory"
)

var (
	// ErrInvalidDirection is returned when a room has no exit in the requested direction.
	ErrInvalidDirection = errors.New("world: no exit in that direction")
	// ErrExitLocked is returned when traversing a locked exit.
	ErrExitLocked = errors.New("world: exit is locked")
	// ErrItemNotFound is returned when a named item is not present.
	ErrItemNotFound = errors.New("world: item not found")
	// ErrWrongKey is returned when a key does not fit an exit's lock.
	ErrWrongKey = errors.New("world: key does not fit")
)

// Direction is an exit token. Directions compare case-insensitively.
type Direction string

// Standard compass directions and vertical movements.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
)

// abbreviations maps short forms to standard directions.
var abbreviations = map[string]Direction{
	"n": North, "s": South, "e": East, "w": West,
	"ne": Northeast, "nw": Northwest, "se": Southeast, "sw": Southwest,
	"u": Up, "d": Down,
}

// NormalizeDirection lowercases raw and expands compass abbreviations.
// Named exits ("stairs", "door") pass through lowercased.
func NormalizeDirection(raw string) Direction {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if d, ok := abbreviations[lower]; ok {
		return d
	}
	return Direction(lower)
}

// Equal reports whether d and other name the same direction, ignoring case.
func (d Direction) Equal(other Direction) bool {
	return strings.EqualFold(string(d), string(other))
}

// Exit is a directed, possibly key-locked passage from one room to another.
type Exit struct {
	// Direction is the compass direction or named exit (e.g., "stairs").
	Direction Direction `yaml:"direction"`
	// Target is the ID of the destination room.
	Target string `yaml:"target"`
	// KeyID names the key that fits this exit's lock. Empty means the exit
	// can never be lock-gated.
	KeyID string `yaml:"key_id,omitempty"`
	// Locked blocks traversal until the matching key is used.
	Locked bool `yaml:"locked,omitempty"`
	// Open marks a door standing open; informational only.
	Open bool `yaml:"open,omitempty"`
}

// Room is a location in the game world.
type Room struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Exits       []Exit `yaml:"exits"`
	// Items are the objects currently lying in the room.
	Items []*inventory.Item `yaml:"items,omitempty"`
	// Encounter names the enemy that confronts the player on arrival. Empty = none.
	Encounter string `yaml:"encounter,omitempty"`
	// Track is the music track associated with the room. Empty = none.
	Track string `yaml:"track,omitempty"`
}

// ExitForDirection returns the exit in the given direction, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (nil, false) otherwise.
// The returned pointer aliases the room's exit.
func (r *Room) ExitForDirection(dir Direction) (*Exit, bool) {
	for i := range r.Exits {
		if r.Exits[i].Direction.Equal(dir) {
			return &r.Exits[i], true
		}
	}
	return nil, false
}

// ExitTo returns the destination room ID in the given direction.
func (r *Room) ExitTo(dir Direction) (string, bool) {
	e, ok := r.ExitForDirection(dir)
	if !ok {
		return "", false
	}
	return e.Target, true
}

// IsLocked reports whether the exit in dir exists and is locked.
func (r *Room) IsLocked(dir Direction) bool {
	e, ok := r.ExitForDirection(dir)
	return ok && e.Locked
}

// Unlock unlocks the exit in dir with the key identified by keyID.
//
// Postcondition: returns nil and the exit is unlocked, or ErrInvalidDirection /
// ErrWrongKey with the room unchanged.
func (r *Room) Unlock(dir Direction, keyID string) error {
	e, ok := r.ExitForDirection(dir)
	if !ok {
		return fmt.Errorf("room %q: %q: %w", r.ID, dir, ErrInvalidDirection)
	}
	if e.KeyID == "" || e.KeyID != keyID {
		return fmt.Errorf("room %q: %q: %w", r.ID, dir, ErrWrongKey)
	}
	e.Locked = false
	return nil
}

// UnlockWith unlocks every locked exit of the room whose lock fits keyID and
// returns the directions that were unlocked.
func (r *Room) UnlockWith(keyID string) []Direction {
	var unlocked []Direction
	for i := range r.Exits {
		e := &r.Exits[i]
		if e.Locked && e.KeyID != "" && e.KeyID == keyID {
			e.Locked = false
			unlocked = append(unlocked, e.Direction)
		}
	}
	return unlocked
}

// AddItem places it in the room.
func (r *Room) AddItem(it *inventory.Item) {
	r.Items = append(r.Items, it)
}

// FindItem returns the first item matching name by name or alias, ignoring case.
func (r *Room) FindItem(name string) (*inventory.Item, bool) {
	for _, it := range r.Items {
		if it.Matches(name) {
			return it, true
		}
	}
	return nil, false
}

// RemoveItem takes the first item matching name (by name or alias) out of the room.
//
// Postcondition: returns the item, or ErrItemNotFound with the room unchanged.
func (r *Room) RemoveItem(name string) (*inventory.Item, error) {
	for i, it := range r.Items {
		if it.Matches(name) {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return it, nil
		}
	}
	return nil, fmt.Errorf("room %q: %q: %w", r.ID, name, ErrItemNotFound)
}

// ExitNames returns the directions of all exits in declaration order.
func (r *Room) ExitNames() []string {
	names := make([]string, len(r.Exits))
	for i, e := range r.Exits {
		names[i] = string(e.Direction)
	}
	return names
}

// clone returns a deep copy of the room. Items are shared because they are immutable.
func (r *Room) clone() *Room {
	c := *r
	if r.Exits != nil {
		c.Exits = make([]Exit, len(r.Exits))
		copy(c.Exits, r.Exits)
	}
	if r.Items != nil {
		c.Items = make([]*inventory.Item, len(r.Items))
		copy(c.Items, r.Items)
	}
	return &c
}

// validate checks the room's own invariants; exit targets are checked by World.Validate.
func (r *Room) validate() error {
	if r.ID == "" {
		return fmt.Errorf("room ID must not be empty")
	}
	if r.Name == "" {
		return fmt.Errorf("room %q: name must not be empty", r.ID)
	}
	if r.Description == "" {
		return fmt.Errorf("room %q: description must not be empty", r.ID)
	}
	if r.Exits == nil {
		return fmt.Errorf("room %q: exits must be present", r.ID)
	}
	seen := make(map[string]bool, len(r.Exits))
	for _, e := range r.Exits {
		if e.Direction == "" {
			return fmt.Errorf("room %q: exit has empty direction", r.ID)
		}
		key := strings.ToLower(string(e.Direction))
		if seen[key] {
			return fmt.Errorf("room %q: duplicate exit direction %q", r.ID, e.Direction)
		}
		seen[key] = true
		if e.Target == "" {
			return fmt.Errorf("room %q: exit %q has empty target", r.ID, e.Direction)
		}
		if e.Locked && e.KeyID == "" {
			return fmt.Errorf("room %q: exit %q is locked but has no key_id", r.ID, e.Direction)
		}
	}
	return nil
}
