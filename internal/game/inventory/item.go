// Package inventory provides item definitions, the item loader, and the
// weight-bounded player inventory.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/textquest/internal/game/dice"
)

// Kind constants for Item.Kind.
const (
	KindJunk       = "junk"
	KindKey        = "key"
	KindWeapon     = "weapon"
	KindConsumable = "consumable"
)

// validKinds is the set of valid Item kinds.
var validKinds = map[string]bool{
	KindJunk:       true,
	KindKey:        true,
	KindWeapon:     true,
	KindConsumable: true,
}

// Item is a carryable object. Items are never mutated after loading; moving
// one between a room and the inventory moves the pointer.
type Item struct {
	Name        string     `yaml:"name"`
	Aliases     []string   `yaml:"aliases,omitempty"`
	Kind        string     `yaml:"kind"`
	Description string     `yaml:"description"`
	Weight      float64    `yaml:"weight"`
	Openable    bool       `yaml:"openable,omitempty"`
	KeyID       string     `yaml:"key_id,omitempty"`
	Damage      dice.Range `yaml:"damage,omitempty"`
	Heal        int        `yaml:"heal,omitempty"`
	// Room is the ID of the room the item starts in. Empty means the player
	// starts with it.
	Room string `yaml:"room,omitempty"`
}

// IsKey reports whether the item can unlock exits.
func (it *Item) IsKey() bool { return it.Kind == KindKey }

// IsWeapon reports whether the item can be wielded in an attack round.
func (it *Item) IsWeapon() bool { return it.Kind == KindWeapon }

// IsConsumable reports whether using the item restores health.
func (it *Item) IsConsumable() bool { return it.Kind == KindConsumable }

// Matches reports whether name equals the item's name or one of its aliases,
// ignoring case.
func (it *Item) Matches(name string) bool {
	if strings.EqualFold(it.Name, name) {
		return true
	}
	for _, a := range it.Aliases {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

// Validate checks that the Item satisfies its invariants.
//
// Precondition: it is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (it *Item) Validate() error {
	var errs []error
	if it.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !validKinds[it.Kind] {
		errs = append(errs, fmt.Errorf("kind must be one of junk, key, weapon, consumable; got %q", it.Kind))
	}
	if it.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if it.Kind == KindKey && it.KeyID == "" {
		errs = append(errs, errors.New("key_id is required when kind is key"))
	}
	if it.Kind == KindWeapon {
		if err := it.Damage.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("damage: %w", err))
		} else if it.Damage.Max == 0 {
			errs = append(errs, errors.New("damage is required when kind is weapon"))
		}
	}
	if it.Kind == KindConsumable && it.Heal <= 0 {
		errs = append(errs, errors.New("heal must be > 0 when kind is consumable"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %v", it.Name, errs)
	}
	return nil
}

// yamlItemFile is the top-level structure of items.yaml.
type yamlItemFile struct {
	Items []*Item `yaml:"items"`
}

// LoadItemsFromBytes parses and validates a list of items.
//
// Postcondition: returns all valid Items in file order or the first error.
func LoadItemsFromBytes(data []byte) ([]*Item, error) {
	var file yamlItemFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing items YAML: %w", err)
	}
	for _, it := range file.Items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}
	return file.Items, nil
}

// LoadItems reads and validates the item file at path.
//
// Precondition: path is a readable YAML file.
// Postcondition: returns all valid Items or the first encountered error.
func LoadItems(path string) ([]*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
	}
	items, err := LoadItemsFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: %q: %w", path, err)
	}
	return items, nil
}
