package command

import (
	"fmt"
	"sort"
)

// Registry is the fixed verb vocabulary. It maps verbs and aliases to their
// Definition.
type Registry struct {
	commands map[string]*Definition // canonical name → definition
	aliases  map[string]string      // alias → canonical name
	order    []string
}

// NewRegistry creates a Registry populated with the given definitions.
//
// Precondition: No two definitions may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Definition, len(defs)),
		aliases:  make(map[string]string),
	}

	for i := range defs {
		def := &defs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("command at index %d has empty name", i)
		}
		if _, exists := r.commands[def.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", def.Name)
		}
		if _, exists := r.aliases[def.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", def.Name)
		}
		r.commands[def.Name] = def
		r.order = append(r.order, def.Name)

		for _, alias := range def.Aliases {
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, def.Name)
			}
			r.aliases[alias] = def.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a definition by exact name or alias.
//
// Postcondition: Returns (definition, true) if found, or (nil, false).
func (r *Registry) Resolve(verb string) (*Definition, bool) {
	if def, ok := r.commands[verb]; ok {
		return def, true
	}
	if canonical, ok := r.aliases[verb]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// Commands returns all definitions in registration order.
func (r *Registry) Commands() []*Definition {
	result := make([]*Definition, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.commands[name])
	}
	return result
}

// CommandsByCategory returns definitions grouped by category.
func (r *Registry) CommandsByCategory() map[string][]*Definition {
	categories := make(map[string][]*Definition)
	for _, def := range r.Commands() {
		categories[def.Category] = append(categories[def.Category], def)
	}
	return categories
}

// Categories returns the category names in sorted order.
func (r *Registry) Categories() []string {
	var cats []string
	for cat := range r.CommandsByCategory() {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
