package inventory

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrCapacityExceeded is returned when an item would push the inventory over
// its weight limit.
var ErrCapacityExceeded = errors.New("inventory: capacity exceeded")

// Inventory is the player's insertion-ordered, weight-bounded container.
//
// Invariant: CurrentWeight() <= MaxWeight.
type Inventory struct {
	MaxWeight float64
	items     []*Item
}

// New creates an empty Inventory with the given weight limit.
//
// Precondition: maxWeight >= 0.
// Postcondition: returned Inventory has zero items.
func New(maxWeight float64) *Inventory {
	return &Inventory{MaxWeight: maxWeight}
}

// Add places item at the end of the inventory.
// It is atomic: if the weight limit would be exceeded, no state is modified.
//
// Precondition: item is non-nil.
// Postcondition: on success CurrentWeight() grows by item.Weight; on error the
// inventory is unchanged and the error wraps ErrCapacityExceeded.
func (inv *Inventory) Add(item *Item) error {
	current := inv.CurrentWeight()
	if current+item.Weight > inv.MaxWeight {
		return fmt.Errorf("adding %q would exceed weight limit (%.2f + %.2f > %.2f): %w",
			item.Name, current, item.Weight, inv.MaxWeight, ErrCapacityExceeded)
	}
	inv.items = append(inv.items, item)
	return nil
}

// Remove takes the first item whose name equals name exactly out of the inventory.
//
// Postcondition: returns (item, true) and the item is gone, or (nil, false) with
// the inventory unchanged.
func (inv *Inventory) Remove(name string) (*Item, bool) {
	for i, it := range inv.items {
		if it.Name == name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it, true
		}
	}
	return nil, false
}

// FindByName returns the first item, in insertion order, whose name equals
// name exactly. Aliases are not consulted.
func (inv *Inventory) FindByName(name string) (*Item, bool) {
	for _, it := range inv.items {
		if it.Name == name {
			return it, true
		}
	}
	return nil, false
}

// Items returns a copy of the held items in insertion order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// CurrentWeight returns the sum of all held item weights.
//
// Postcondition: result >= 0.
func (inv *Inventory) CurrentWeight() float64 {
	var total float64
	for _, it := range inv.items {
		total += it.Weight
	}
	return total
}

// Describe returns the held item names joined by ", " in insertion order.
func (inv *Inventory) Describe() string {
	names := make([]string, len(inv.items))
	for i, it := range inv.items {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}

// Clone returns an independent Inventory holding the same items.
// Items are immutable, so sharing the pointers is safe.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{MaxWeight: inv.MaxWeight, items: inv.Items()}
}

// yamlInventory is the persisted form of an Inventory.
type yamlInventory struct {
	MaxWeight float64 `yaml:"max_weight"`
	Items     []*Item `yaml:"items"`
}

// MarshalYAML implements yaml.Marshaler.
func (inv *Inventory) MarshalYAML() (interface{}, error) {
	return yamlInventory{MaxWeight: inv.MaxWeight, Items: inv.items}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (inv *Inventory) UnmarshalYAML(node *yaml.Node) error {
	var y yamlInventory
	if err := node.Decode(&y); err != nil {
		return err
	}
	inv.MaxWeight = y.MaxWeight
	inv.items = y.Items
	return nil
}
