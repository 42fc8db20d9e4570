package inventory

import "fmt"

// Registry holds every loaded item definition indexed by name.
type Registry struct {
	items map[string]*Item
	order []string
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*Item),
	}
}

// Register adds it to the registry.
//
// Precondition:  it must not be nil.
// Postcondition: Item(it.Name) returns (it, true); returns error if the name
// is already registered.
func (r *Registry) Register(it *Item) error {
	if _, exists := r.items[it.Name]; exists {
		return fmt.Errorf("inventory: Registry.Register: item %q already registered", it.Name)
	}
	r.items[it.Name] = it
	r.order = append(r.order, it.Name)
	return nil
}

// Item returns the Item for the given name and whether it was found.
//
// Postcondition: ok is true iff the name is registered.
func (r *Registry) Item(name string) (*Item, bool) {
	it, ok := r.items[name]
	return it, ok
}

// All returns every registered item in registration order.
func (r *Registry) All() []*Item {
	out := make([]*Item, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name])
	}
	return out
}
