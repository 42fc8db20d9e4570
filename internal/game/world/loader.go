package world

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError is the fatal error raised when content cannot be turned into a
// playable world. Nothing partially loaded is ever returned alongside it.
type LoadError struct {
	// Source names the file or content unit that failed.
	Source string
	Err    error
}

// Error implements error.
func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("world load: %v", e.Err)
	}
	return fmt.Sprintf("world load: %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// yamlWorldFile is the top-level YAML structure of rooms.yaml.
type yamlWorldFile struct {
	StartRoom string     `yaml:"start_room"`
	Rooms     []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Exits       []yamlExit `yaml:"exits"`
	Encounter   string     `yaml:"encounter"`
	Track       string     `yaml:"track"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction"`
	Target    string `yaml:"target"`
	KeyID     string `yaml:"key_id"`
	Locked    bool   `yaml:"locked"`
	Open      bool   `yaml:"open"`
}

// LoadRoomsFromFile reads and validates a room file.
//
// Precondition: path must point to a YAML room file.
// Postcondition: Returns a validated World or a *LoadError.
func LoadRoomsFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	w, err := LoadRoomsFromBytes(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
		}
		return nil, err
	}
	return w, nil
}

// LoadRoomsFromBytes parses and validates a world from YAML bytes.
//
// Precondition: data must be YAML conforming to the room schema.
// Postcondition: Returns a validated World or a *LoadError.
func LoadRoomsFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("parsing rooms YAML: %w", err)}
	}
	if len(file.Rooms) == 0 {
		return nil, &LoadError{Err: fmt.Errorf("no rooms defined")}
	}

	w, err := NewWorld(convertYAMLRooms(file.Rooms), file.StartRoom)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("validating rooms: %w", err)}
	}
	return w, nil
}

// convertYAMLRooms converts the parsed YAML structures into domain types.
// A missing exits key stays nil so validation can reject it.
func convertYAMLRooms(yrs []yamlRoom) []*Room {
	rooms := make([]*Room, 0, len(yrs))
	for _, yr := range yrs {
		room := &Room{
			ID:          yr.ID,
			Name:        yr.Name,
			Description: strings.TrimSpace(yr.Description),
			Encounter:   yr.Encounter,
			Track:       yr.Track,
		}
		if yr.Exits != nil {
			room.Exits = make([]Exit, 0, len(yr.Exits))
		}
		for _, ye := range yr.Exits {
			room.Exits = append(room.Exits, Exit{
				Direction: NormalizeDirection(ye.Direction),
				Target:    ye.Target,
				KeyID:     ye.KeyID,
				Locked:    ye.Locked,
				Open:      ye.Open,
			})
		}
		rooms = append(rooms, room)
	}
	return rooms
}
