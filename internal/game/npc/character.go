// Package npc provides character and enemy records and their YAML loader.
package npc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/textquest/internal/game/dice"
)

// HurtLines is the number of alternate "hurt" narrations every enemy carries.
const HurtLines = 3

// Character is a named non-player actor. Enemies are Characters that fight:
// they carry a damage range and exactly HurtLines hurt narrations.
//
// Health may go negative; a character is dead iff Health <= 0.
type Character struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Catchphrase string     `yaml:"catchphrase"`
	Health      int        `yaml:"health"`
	Damage      dice.Range `yaml:"damage,omitempty"`
	Hurt        []string   `yaml:"hurt,omitempty"`
	// Room is where a non-hostile character stands. Enemies are placed by the
	// room's encounter field instead.
	Room string `yaml:"room,omitempty"`
}

// IsDead reports whether the character's health has dropped to zero or below.
func (c *Character) IsDead() bool {
	return c.Health <= 0
}

// TakeDamage subtracts amount from Health.
//
// Precondition: amount >= 0.
// Postcondition: Health is reduced by exactly amount; it is not floored.
func (c *Character) TakeDamage(amount int) {
	c.Health -= amount
}

// DisplayHealth returns Health clamped at zero for narration.
func (c *Character) DisplayHealth() int {
	if c.Health < 0 {
		return 0
	}
	return c.Health
}

// Clone returns an independent copy.
func (c *Character) Clone() *Character {
	cp := *c
	if c.Hurt != nil {
		cp.Hurt = make([]string, len(c.Hurt))
		copy(cp.Hurt, c.Hurt)
	}
	return &cp
}

// Validate checks that the character satisfies basic invariants. Hostile
// characters additionally need a damage range and HurtLines hurt lines.
//
// Precondition: c must not be nil.
// Postcondition: Returns nil iff all invariants hold; otherwise the first violation.
func (c *Character) Validate(hostile bool) error {
	if c.Name == "" {
		return fmt.Errorf("character: name must not be empty")
	}
	if c.Catchphrase == "" {
		return fmt.Errorf("character %q: catchphrase must not be empty", c.Name)
	}
	if !hostile {
		return nil
	}
	if c.Health < 1 {
		return fmt.Errorf("enemy %q: health must be >= 1", c.Name)
	}
	if err := c.Damage.Validate(); err != nil {
		return fmt.Errorf("enemy %q: damage: %w", c.Name, err)
	}
	if len(c.Hurt) != HurtLines {
		return fmt.Errorf("enemy %q: exactly %d hurt lines required, got %d", c.Name, HurtLines, len(c.Hurt))
	}
	return nil
}

// yamlCharacterFile is the top-level structure of characters.yaml and enemies.yaml.
type yamlCharacterFile struct {
	Characters []*Character `yaml:"characters"`
	Enemies    []*Character `yaml:"enemies"`
}

// LoadFromBytes parses a character file. Records under "enemies" are
// validated as hostile, records under "characters" as friendly.
//
// Postcondition: Returns validated characters and enemies in file order, or
// an error on the first parse or validate failure.
func LoadFromBytes(data []byte) (characters, enemies []*Character, err error) {
	var file yamlCharacterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing character YAML: %w", err)
	}
	for _, c := range file.Characters {
		if err := c.Validate(false); err != nil {
			return nil, nil, err
		}
	}
	for _, e := range file.Enemies {
		if err := e.Validate(true); err != nil {
			return nil, nil, err
		}
	}
	return file.Characters, file.Enemies, nil
}

// LoadFile reads and parses the character file at path.
//
// Precondition: path must be a readable file.
// Postcondition: on error, the partial result is discarded.
func LoadFile(path string) (characters, enemies []*Character, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %q: %w", path, err)
	}
	characters, enemies, err = LoadFromBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return characters, enemies, nil
}
