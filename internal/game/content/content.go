// Package content loads a content directory into a validated Bundle: the
// world graph with items placed in their rooms, the item registry, and the
// enemy and character registries.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/textquest/internal/game/inventory"
	"github.com/cory-johannsen/textquest/internal/game/npc"
	"github.com/cory-johannsen/textquest/internal/game/world"
)

// File names inside a content directory. Only RoomsFile is required.
const (
	RoomsFile      = "rooms.yaml"
	ItemsFile      = "items.yaml"
	EnemiesFile    = "enemies.yaml"
	CharactersFile = "characters.yaml"
	ScriptsDir     = "scripts"
)

// Bundle is everything needed to start a fresh play-through.
type Bundle struct {
	World *world.World
	// Items holds every item definition.
	Items *inventory.Registry
	// StartingItems are the items the player begins with, in file order.
	StartingItems []*inventory.Item
	Enemies       *npc.Registry
	Characters    *npc.Registry
	// ScriptsDir is the directory of Lua hook scripts, or "" when absent.
	ScriptsDir string
}

// LoadDir reads and cross-validates the content directory dir.
//
// Precondition: dir must contain RoomsFile.
// Postcondition: Returns a fully validated Bundle, or a *world.LoadError and
// no partial state.
func LoadDir(dir string) (*Bundle, error) {
	w, err := world.LoadRoomsFromFile(filepath.Join(dir, RoomsFile))
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		World:      w,
		Items:      inventory.NewRegistry(),
		Enemies:    npc.NewRegistry(),
		Characters: npc.NewRegistry(),
	}

	itemsPath := filepath.Join(dir, ItemsFile)
	if exists(itemsPath) {
		items, err := inventory.LoadItems(itemsPath)
		if err != nil {
			return nil, &world.LoadError{Source: itemsPath, Err: err}
		}
		if err := b.placeItems(items); err != nil {
			return nil, &world.LoadError{Source: itemsPath, Err: err}
		}
	}

	for _, name := range []string{EnemiesFile, CharactersFile} {
		path := filepath.Join(dir, name)
		if !exists(path) {
			continue
		}
		chars, enemies, err := npc.LoadFile(path)
		if err != nil {
			return nil, &world.LoadError{Source: path, Err: err}
		}
		if err := b.registerCharacters(chars, enemies); err != nil {
			return nil, &world.LoadError{Source: path, Err: err}
		}
	}

	if err := b.Validate(); err != nil {
		return nil, &world.LoadError{Source: dir, Err: err}
	}

	scripts := filepath.Join(dir, ScriptsDir)
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		b.ScriptsDir = scripts
	}
	return b, nil
}

// placeItems registers items and puts each in its starting room, or in the
// starting inventory when it names no room.
func (b *Bundle) placeItems(items []*inventory.Item) error {
	for _, it := range items {
		if err := b.Items.Register(it); err != nil {
			return err
		}
		if it.Room == "" {
			b.StartingItems = append(b.StartingItems, it)
			continue
		}
		room, ok := b.World.Room(it.Room)
		if !ok {
			return fmt.Errorf("item %q: room %q not found", it.Name, it.Room)
		}
		room.AddItem(it)
	}
	return nil
}

func (b *Bundle) registerCharacters(chars, enemies []*npc.Character) error {
	for _, c := range chars {
		if err := b.checkNameFree(c.Name); err != nil {
			return err
		}
		if err := b.Characters.Register(c); err != nil {
			return err
		}
	}
	for _, e := range enemies {
		if err := b.checkNameFree(e.Name); err != nil {
			return err
		}
		if err := b.Enemies.Register(e); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bundle) checkNameFree(name string) error {
	if _, ok := b.Enemies.Get(name); ok {
		return fmt.Errorf("duplicate character name %q", name)
	}
	if _, ok := b.Characters.Get(name); ok {
		return fmt.Errorf("duplicate character name %q", name)
	}
	return nil
}

// Validate checks cross references between the world and the registries.
//
// Postcondition: Returns nil iff every encounter names a known enemy, every
// character stands in a known room, and every key fits at least one exit.
func (b *Bundle) Validate() error {
	var errs []error
	keyIDs := make(map[string]bool)
	for _, id := range b.World.RoomIDs() {
		room, _ := b.World.Room(id)
		if room.Encounter != "" {
			if _, ok := b.Enemies.Get(room.Encounter); !ok {
				errs = append(errs, fmt.Errorf("room %q: encounter %q is not a known enemy", id, room.Encounter))
			}
		}
		for _, e := range room.Exits {
			if e.KeyID != "" {
				keyIDs[e.KeyID] = true
			}
		}
	}
	for _, c := range b.Characters.All() {
		if c.Room == "" {
			continue
		}
		if _, ok := b.World.Room(c.Room); !ok {
			errs = append(errs, fmt.Errorf("character %q: room %q not found", c.Name, c.Room))
		}
	}
	for _, it := range b.Items.All() {
		if it.IsKey() && !keyIDs[it.KeyID] {
			errs = append(errs, fmt.Errorf("key %q: key_id %q fits no exit", it.Name, it.KeyID))
		}
	}
	return errors.Join(errs...)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
