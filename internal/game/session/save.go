package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/game/inventory"
	"github.com/cory-johannsen/textquest/internal/game/npc"
	"github.com/cory-johannsen/textquest/internal/game/world"
)

// Save is a snapshot of all mutable session state. A Save shares no mutable
// data with the session that produced it or with any session restored from
// it; callers must treat its fields as read-only.
type Save struct {
	ID           string                    `yaml:"id"`
	CreatedAt    time.Time                 `yaml:"created_at"`
	World        *world.World              `yaml:"world"`
	Inventory    *inventory.Inventory      `yaml:"inventory"`
	CurrentRoom  string                    `yaml:"current_room"`
	PreviousRoom string                    `yaml:"previous_room"`
	Player       Player                    `yaml:"player"`
	Enemies      map[string]*npc.Character `yaml:"enemies"`
	ActiveTrack  string                    `yaml:"active_track"`
	Flags        Flags                     `yaml:"flags"`
}

// Validate checks that the save can be restored.
func (sv *Save) Validate() error {
	if sv == nil {
		return errors.New("save is nil")
	}
	if sv.World == nil || sv.Inventory == nil {
		return errors.New("save is missing world or inventory")
	}
	if _, ok := sv.World.Room(sv.CurrentRoom); !ok {
		return fmt.Errorf("save current room %q not in world", sv.CurrentRoom)
	}
	return nil
}

func cloneEnemies(in map[string]*npc.Character) map[string]*npc.Character {
	out := make(map[string]*npc.Character, len(in))
	for k, v := range in {
		out[k] = v.Clone()
	}
	return out
}

// Snapshot captures the session's state.
//
// Postcondition: later mutation of the session never changes the returned Save.
func (s *Session) Snapshot() *Save {
	return &Save{
		ID:           uuid.NewString(),
		CreatedAt:    s.now(),
		World:        s.world.Clone(),
		Inventory:    s.inv.Clone(),
		CurrentRoom:  s.currentRoom,
		PreviousRoom: s.previousRoom,
		Player:       s.player,
		Enemies:      cloneEnemies(s.enemies),
		ActiveTrack:  s.activeTrack,
		Flags:        s.flags,
	}
}

// Restore replaces all session-owned state with a copy of sv. Audio is
// brought in line with the saved track.
//
// Precondition: sv.Validate() == nil.
// Postcondition: on error the session is unchanged; otherwise its state is
// wholly the save's and shares nothing mutable with sv.
func (s *Session) Restore(sv *Save) error {
	if err := sv.Validate(); err != nil {
		return fmt.Errorf("restoring save: %w", err)
	}
	s.world = sv.World.Clone()
	s.inv = sv.Inventory.Clone()
	s.currentRoom = sv.CurrentRoom
	s.previousRoom = sv.PreviousRoom
	s.player = sv.Player
	s.enemies = cloneEnemies(sv.Enemies)
	s.flags = sv.Flags
	s.state = Running
	s.pending = ConfirmNone
	s.switchTrack(sv.ActiveTrack)
	s.logger.Info("save restored", zap.String("save_id", sv.ID), zap.String("room", s.currentRoom))
	return nil
}
