package npc

import (
	"fmt"
	"strings"
)

// Registry indexes characters by name. Lookups ignore case.
type Registry struct {
	byName map[string]*Character
	order  []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Character)}
}

// Register adds c; names must be unique ignoring case.
func (r *Registry) Register(c *Character) error {
	key := strings.ToLower(c.Name)
	if _, exists := r.byName[key]; exists {
		return fmt.Errorf("npc: character %q already registered", c.Name)
	}
	r.byName[key] = c
	r.order = append(r.order, key)
	return nil
}

// Get returns the character named name.
func (r *Registry) Get(name string) (*Character, bool) {
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// All returns every character in registration order.
func (r *Registry) All() []*Character {
	out := make([]*Character, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byName[k])
	}
	return out
}

// CloneMap returns independent copies of every character keyed by name.
func (r *Registry) CloneMap() map[string]*Character {
	out := make(map[string]*Character, len(r.order))
	for _, c := range r.All() {
		out[c.Name] = c.Clone()
	}
	return out
}
