package session

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/game/world"
)

// wireScripts points the script engine's callbacks at this session.
func (s *Session) wireScripts() {
	s.scripts.Narrate = func(text string) { s.say(text) }
	s.scripts.GetFlag = func(name string) (any, bool) { return s.flags.Get(name) }
	s.scripts.SetFlag = func(name string, value any) error {
		return s.flags.Set(name, value)
	}
	s.scripts.Unlock = func(dir string) bool { return s.scriptUnlock(dir) }
}

// scriptUnlock unlocks the exit in dir of the current room with a carried
// key whose id fits it. A script cannot open a lock the player has no key for.
func (s *Session) scriptUnlock(dir string) bool {
	room := s.room()
	d := world.NormalizeDirection(dir)
	if !room.IsLocked(d) {
		return false
	}
	for _, it := range s.inv.Items() {
		if !it.IsKey() {
			continue
		}
		if err := room.Unlock(d, it.KeyID); err == nil {
			s.logger.Info("exit unlocked by script",
				zap.String("room", s.currentRoom),
				zap.String("direction", string(d)),
				zap.String("key", it.KeyID),
			)
			return true
		}
	}
	return false
}

// hook calls a script hook; failures are logged and never interrupt play.
func (s *Session) hook(name, arg string) {
	if s.scripts == nil || !s.scripts.Loaded() {
		return
	}
	if _, err := s.scripts.CallHook(name, arg); err != nil {
		s.logger.Warn("hook failed", zap.String("hook", name), zap.Error(err))
	}
}
