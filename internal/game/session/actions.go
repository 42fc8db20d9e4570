package session

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cory-johannsen/textquest/internal/game/inventory"
	"github.com/cory-johannsen/textquest/internal/game/world"
	"github.com/cory-johannsen/textquest/internal/scripting"
)

// DefaultYell is narrated by a yell with no text.
const DefaultYell = "AAAAAAARGH!"

var upper = cases.Upper(language.Und)

func (s *Session) move(raw string) error {
	dir := world.NormalizeDirection(raw)
	dest, err := s.world.Navigate(s.currentRoom, dir)
	switch {
	case errors.Is(err, world.ErrInvalidDirection):
		s.say("You cannot go that way.")
		return err
	case errors.Is(err, world.ErrExitLocked):
		s.say(fmt.Sprintf("The way %s is locked.", dir))
		return err
	case err != nil:
		s.logger.Error("navigation failed", zap.Error(err))
		s.say("You cannot go that way.")
		return err
	}

	s.previousRoom = s.currentRoom
	s.currentRoom = dest.ID
	s.logger.Info("player moved",
		zap.String("from", s.previousRoom),
		zap.String("to", s.currentRoom),
	)
	if s.activeTrack != "" && dest.Track != "" {
		s.switchTrack(dest.Track)
	}
	s.arrive()
	return nil
}

// arrive describes the current room, runs the enter hook and announces an
// encounter.
func (s *Session) arrive() {
	s.describe()
	s.hook(scripting.HookOnEnter, s.currentRoom)
	if s.state == Terminated {
		return
	}
	if enemy := s.activeEnemy(); enemy != nil {
		s.say(
			fmt.Sprintf("The %s bellows: %q", enemy.Name, enemy.Catchphrase),
			fmt.Sprintf("You are in an encounter! You can: %s.", strings.Join(EncounterCommands(), ", ")),
		)
	}
}

func (s *Session) describe() {
	r := s.room()
	lines := []string{r.Name, r.Description}
	if len(r.Items) > 0 {
		names := make([]string, len(r.Items))
		for i, it := range r.Items {
			names[i] = it.Name
		}
		lines = append(lines, fmt.Sprintf("You see: %s.", strings.Join(names, ", ")))
	}
	if s.characters != nil {
		for _, c := range s.characters.All() {
			if c.Room == r.ID {
				lines = append(lines, fmt.Sprintf("The %s is here.", c.Name))
			}
		}
	}
	if r.Encounter != "" {
		if e, ok := s.Enemy(r.Encounter); ok {
			if e.IsDead() {
				lines = append(lines, fmt.Sprintf("The body of the %s lies here.", e.Name))
			} else {
				lines = append(lines, fmt.Sprintf("A %s blocks your way.", e.Name))
			}
		}
	}
	if len(r.Exits) == 0 {
		lines = append(lines, "There are no exits.")
	} else {
		lines = append(lines, fmt.Sprintf("Exits: %s.", strings.Join(r.ExitNames(), ", ")))
	}
	s.say(lines...)
}

func (s *Session) take(name string) error {
	r := s.room()
	it, ok := r.FindItem(name)
	if !ok {
		s.say(fmt.Sprintf("There is no %s here.", name))
		return fmt.Errorf("take %q: %w", name, world.ErrItemNotFound)
	}
	if s.inv.CurrentWeight()+it.Weight > s.inv.MaxWeight {
		s.say(fmt.Sprintf("The %s is too heavy to carry.", it.Name))
		return fmt.Errorf("take %q: %w", it.Name, inventory.ErrCapacityExceeded)
	}
	if _, err := r.RemoveItem(it.Name); err != nil {
		return err
	}
	if err := s.inv.Add(it); err != nil {
		r.AddItem(it)
		s.say(fmt.Sprintf("The %s is too heavy to carry.", it.Name))
		return err
	}
	s.say(fmt.Sprintf("You take the %s.", it.Name))
	return nil
}

// carried resolves name against the inventory: exact name first, then
// case-insensitive name or alias.
func (s *Session) carried(name string) (*inventory.Item, bool) {
	if it, ok := s.inv.FindByName(name); ok {
		return it, true
	}
	for _, it := range s.inv.Items() {
		if it.Matches(name) {
			return it, true
		}
	}
	return nil, false
}

func (s *Session) drop(name string) error {
	it, ok := s.carried(name)
	if !ok {
		s.say(fmt.Sprintf("You don't have a %s.", name))
		return fmt.Errorf("drop %q: %w", name, world.ErrItemNotFound)
	}
	s.inv.Remove(it.Name)
	s.room().AddItem(it)
	s.say(fmt.Sprintf("You drop the %s.", it.Name))
	return nil
}

func (s *Session) showInventory() {
	desc := s.inv.Describe()
	if desc == "" {
		desc = "nothing"
	}
	s.say(
		fmt.Sprintf("You are carrying: %s (%.1f/%.1f).", desc, s.inv.CurrentWeight(), s.inv.MaxWeight),
		fmt.Sprintf("Health: %d.", s.player.Health),
	)
}

func (s *Session) use(name string) error {
	it, ok := s.carried(name)
	if !ok {
		s.say(fmt.Sprintf("You don't have a %s.", name))
		return fmt.Errorf("use %q: %w", name, world.ErrItemNotFound)
	}
	switch {
	case it.IsKey():
		dirs := s.room().UnlockWith(it.KeyID)
		if len(dirs) == 0 {
			s.say(fmt.Sprintf("The %s doesn't fit any lock here.", it.Name))
			return fmt.Errorf("use %q: %w", it.Name, world.ErrWrongKey)
		}
		for _, d := range dirs {
			s.say(fmt.Sprintf("You unlock the way %s with the %s.", d, it.Name))
		}
		s.logger.Info("exit unlocked", zap.String("room", s.currentRoom), zap.String("key", it.KeyID))
		return nil
	case it.IsConsumable():
		s.inv.Remove(it.Name)
		s.player.Heal(it.Heal)
		s.say(fmt.Sprintf("You consume the %s. Health: %d.", it.Name, s.player.Health))
		return nil
	}
	s.say(fmt.Sprintf("You can't use the %s.", it.Name))
	return ErrNotUsable
}

func (s *Session) open(name string) error {
	it, ok := s.room().FindItem(name)
	if !ok {
		it, ok = s.carried(name)
	}
	if !ok {
		s.say(fmt.Sprintf("There is no %s here.", name))
		return fmt.Errorf("open %q: %w", name, world.ErrItemNotFound)
	}
	if !it.Openable {
		s.say(fmt.Sprintf("You can't open the %s.", it.Name))
		return ErrNotUsable
	}
	s.say(fmt.Sprintf("You open the %s.", it.Name))
	s.hook(scripting.HookOnOpen, it.Name)
	return nil
}

func (s *Session) talk(name string) error {
	if s.characters != nil {
		if c, ok := s.characters.Get(name); ok && c.Room == s.currentRoom {
			s.say(fmt.Sprintf("The %s says: %q", c.Name, c.Catchphrase))
			return nil
		}
	}
	if e := s.activeEnemy(); e != nil && strings.EqualFold(e.Name, name) {
		s.say(fmt.Sprintf("The %s growls: %q", e.Name, e.Catchphrase))
		return nil
	}
	s.say(fmt.Sprintf("There is no one called %s here.", name))
	return ErrInvalidTarget
}

func (s *Session) yell(text string) {
	shout := DefaultYell
	if text != "" {
		shout = upper.String(text) + "!"
	}
	s.say(shout)
	s.hook(scripting.HookOnYell, shout)
}

func (s *Session) help() {
	lines := []string{"Available commands:"}
	byCat := s.registry.CommandsByCategory()
	for _, cat := range s.registry.Categories() {
		names := make([]string, 0, len(byCat[cat]))
		for _, def := range byCat[cat] {
			names = append(names, def.Name)
		}
		lines = append(lines, fmt.Sprintf("  %s: %s", cat, strings.Join(names, ", ")))
	}
	s.say(lines...)
}

func (s *Session) slot(name string) string {
	if name != "" {
		return name
	}
	return s.opts.DefaultSlot
}

func (s *Session) saveSlot(name string) error {
	if s.store == nil {
		s.say("Saving is not available.")
		return ErrNoSaveStore
	}
	slot := s.slot(name)
	sv := s.Snapshot()
	if err := s.store.Put(slot, sv); err != nil {
		s.logger.Error("save failed", zap.String("slot", slot), zap.Error(err))
		s.say("The game could not be saved.")
		return err
	}
	s.logger.Info("game saved", zap.String("slot", slot), zap.String("save_id", sv.ID))
	s.say(fmt.Sprintf("Game saved to slot %q.", slot))
	return nil
}

func (s *Session) listSlots() error {
	if s.store == nil {
		s.say("Saving is not available.")
		return ErrNoSaveStore
	}
	slots, err := s.store.List()
	if err != nil {
		s.logger.Error("listing saves failed", zap.Error(err))
		s.say("The saved games could not be read.")
		return err
	}
	if len(slots) == 0 {
		s.say("There are no saved games.")
		return nil
	}
	s.say(fmt.Sprintf("Saved games: %s.", strings.Join(slots, ", ")))
	return nil
}

func (s *Session) loadSlot(name string) error {
	if s.store == nil {
		s.say("Saving is not available.")
		return ErrNoSaveStore
	}
	slot := s.slot(name)
	sv, err := s.store.Get(slot)
	if err != nil {
		s.logger.Warn("load failed", zap.String("slot", slot), zap.Error(err))
		s.say(fmt.Sprintf("There is no saved game in slot %q.", slot))
		return err
	}
	if err := s.Restore(sv); err != nil {
		s.logger.Error("restore failed", zap.String("slot", slot), zap.Error(err))
		s.say(fmt.Sprintf("The save in slot %q is damaged.", slot))
		return err
	}
	s.say(fmt.Sprintf("Game loaded from slot %q.", slot))
	s.describe()
	return nil
}
