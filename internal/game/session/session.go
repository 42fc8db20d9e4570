// Package session implements the game state machine: it consumes classified
// commands, mutates the world, inventory, player and enemies, and narrates
// the results through an injected display.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/game/command"
	"github.com/cory-johannsen/textquest/internal/game/content"
	"github.com/cory-johannsen/textquest/internal/game/dice"
	"github.com/cory-johannsen/textquest/internal/game/inventory"
	"github.com/cory-johannsen/textquest/internal/game/npc"
	"github.com/cory-johannsen/textquest/internal/game/world"
	"github.com/cory-johannsen/textquest/internal/scripting"
)

var (
	// ErrInvalidConfirmation is returned when a yes/no prompt gets any other answer.
	ErrInvalidConfirmation = errors.New("session: answer yes or no")
	// ErrInvalidTarget is returned when hit names nothing that can be fought.
	ErrInvalidTarget = errors.New("session: not a valid target")
	// ErrBlocked is returned for commands refused during an encounter.
	ErrBlocked = errors.New("session: blocked by an enemy")
	// ErrTerminated is returned when a command arrives after the session ended.
	ErrTerminated = errors.New("session: terminated")
	// ErrNotUsable is returned when an item cannot be used or opened.
	ErrNotUsable = errors.New("session: item cannot be used that way")
	// ErrNoSaveStore is returned by save and load when no store is configured.
	ErrNoSaveStore = errors.New("session: saving is not available")
)

// Display is the narration sink.
type Display interface {
	Narrate(line string)
}

// Audio controls background music. Volumes are in dB within [MinVolume, MaxVolume].
type Audio interface {
	Play(track string) error
	Stop()
	SetVolume(db float64) error
	Volume() float64
}

// SaveStore persists saves under named slots.
type SaveStore interface {
	Put(slot string, sv *Save) error
	Get(slot string) (*Save, error)
	List() ([]string, error)
}

// Factory builds a fresh content bundle for a new play-through.
type Factory func() (*content.Bundle, error)

// State is the top-level state of the session.
type State int

// Session states.
const (
	Running State = iota
	AwaitingConfirmation
	Terminated
)

// String returns the state name.
func (st State) String() string {
	switch st {
	case Running:
		return "running"
	case AwaitingConfirmation:
		return "awaiting_confirmation"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(st))
}

// Confirmation is the action awaiting a yes/no answer.
type Confirmation int

// Confirmation kinds.
const (
	ConfirmNone Confirmation = iota
	ConfirmQuit
	ConfirmRestart
)

// Options are the tunables of a session.
type Options struct {
	MaxWeight     float64
	PlayerHealth  int
	BareHands     dice.Range
	LineDelay     time.Duration
	FarewellDelay time.Duration
	DefaultSlot   string
	// ScriptLimit is the Lua instruction budget per hook call; 0 uses the default.
	ScriptLimit int
}

// Deps are the collaborators injected into a session.
type Deps struct {
	Options  Options
	Factory  Factory
	Display  Display
	Audio    Audio
	Roller   *dice.Roller
	Registry *command.Registry
	Logger   *zap.Logger
	// Scripts runs narrative hooks. Optional.
	Scripts *scripting.Manager
	// Store persists save slots. Optional.
	Store SaveStore
	// Sleep paces narration. nil uses time.Sleep.
	Sleep func(time.Duration)
	// Now stamps saves. nil uses time.Now.
	Now func() time.Time
}

// Session is one play-through. It is driven by a single goroutine and is not
// safe for concurrent use.
type Session struct {
	opts     Options
	factory  Factory
	display  Display
	audio    Audio
	roller   *dice.Roller
	registry *command.Registry
	logger   *zap.Logger
	scripts  *scripting.Manager
	store    SaveStore
	sleep    func(time.Duration)
	now      func() time.Time

	world        *world.World
	inv          *inventory.Inventory
	currentRoom  string
	previousRoom string
	player       Player
	enemies      map[string]*npc.Character
	characters   *npc.Registry
	activeTrack  string
	flags        Flags

	state   State
	pending Confirmation
	// fatal is the error that terminated the session abnormally.
	fatal error
}

// New builds a session from a fresh bundle produced by deps.Factory.
//
// Precondition: Factory, Display, Audio, Roller, Registry and Logger must be non-nil.
// Postcondition: Returns a Running session in the start room, or the
// factory's error with nothing constructed.
func New(deps Deps) (*Session, error) {
	s := &Session{
		opts:     deps.Options,
		factory:  deps.Factory,
		display:  deps.Display,
		audio:    deps.Audio,
		roller:   deps.Roller,
		registry: deps.Registry,
		logger:   deps.Logger,
		scripts:  deps.Scripts,
		store:    deps.Store,
		sleep:    deps.Sleep,
		now:      deps.Now,
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.scripts != nil {
		s.wireScripts()
	}
	bundle, err := s.factory()
	if err != nil {
		return nil, err
	}
	if err := s.reset(bundle); err != nil {
		return nil, err
	}
	return s, nil
}

// reset replaces all session state with a new play-through of bundle.
func (s *Session) reset(bundle *content.Bundle) error {
	inv := inventory.New(s.opts.MaxWeight)
	for _, it := range bundle.StartingItems {
		if err := inv.Add(it); err != nil {
			return &world.LoadError{Source: "starting inventory", Err: err}
		}
	}
	if s.scripts != nil && bundle.ScriptsDir != "" {
		if err := s.scripts.Load(bundle.ScriptsDir, s.opts.ScriptLimit); err != nil {
			return &world.LoadError{Source: bundle.ScriptsDir, Err: err}
		}
	}

	s.world = bundle.World
	s.inv = inv
	s.currentRoom = bundle.World.Start().ID
	s.previousRoom = ""
	s.player = Player{Health: s.opts.PlayerHealth}
	s.enemies = bundle.Enemies.CloneMap()
	s.characters = bundle.Characters
	s.flags = Flags{}
	s.state = Running
	s.pending = ConfirmNone
	s.switchTrack("")
	return nil
}

// State returns the current top-level state.
func (s *Session) State() State { return s.state }

// Pending returns the action awaiting confirmation.
func (s *Session) Pending() Confirmation { return s.pending }

// Err returns the error that ended the session abnormally, if any.
func (s *Session) Err() error { return s.fatal }

// CurrentRoom returns the ID of the room the player is in.
func (s *Session) CurrentRoom() string { return s.currentRoom }

// PreviousRoom returns the ID of the room the player last left.
func (s *Session) PreviousRoom() string { return s.previousRoom }

// Player returns a copy of the player state.
func (s *Session) Player() Player { return s.player }

// Flags returns a copy of the narrative flags.
func (s *Session) Flags() Flags { return s.flags }

// ActiveTrack returns the playing track, or "" when stopped.
func (s *Session) ActiveTrack() string { return s.activeTrack }

// World returns the live world graph.
func (s *Session) World() *world.World { return s.world }

// Inventory returns the live inventory.
func (s *Session) Inventory() *inventory.Inventory { return s.inv }

// Enemy returns the live enemy record named name, ignoring case.
func (s *Session) Enemy(name string) (*npc.Character, bool) {
	for k, e := range s.enemies {
		if strings.EqualFold(k, name) {
			return e, true
		}
	}
	return nil, false
}

// InEncounter reports whether a living enemy blocks the current room.
func (s *Session) InEncounter() bool {
	return s.activeEnemy() != nil
}

func (s *Session) room() *world.Room {
	r, _ := s.world.Room(s.currentRoom)
	return r
}

func (s *Session) activeEnemy() *npc.Character {
	r := s.room()
	if r == nil || r.Encounter == "" {
		return nil
	}
	e, ok := s.Enemy(r.Encounter)
	if !ok || e.IsDead() {
		return nil
	}
	return e
}

// say narrates lines with the configured pause between them.
func (s *Session) say(lines ...string) {
	for i, l := range lines {
		if i > 0 && s.opts.LineDelay > 0 {
			s.sleep(s.opts.LineDelay)
		}
		s.display.Narrate(l)
	}
}

// Start narrates the opening room. Run calls it once before reading input.
func (s *Session) Start() {
	s.say("Welcome, adventurer. Type 'help' for a list of commands.")
	s.arrive()
}

// Step feeds one raw input line to the session: an answer while a
// confirmation is pending, otherwise a command.
func (s *Session) Step(line string) error {
	switch s.state {
	case Terminated:
		return ErrTerminated
	case AwaitingConfirmation:
		return s.confirm(line)
	}
	return s.Dispatch(s.registry.Parse(line))
}

// Run reads lines from parser and steps the session until it terminates or
// ctx is cancelled.
//
// Postcondition: returns nil after a normal quit, the fatal error after an
// abnormal termination, or ctx.Err().
func (s *Session) Run(ctx context.Context, parser *command.Parser) error {
	s.Start()
	for s.state != Terminated {
		cmd, err := parser.Next(ctx)
		if err != nil {
			return err
		}
		if err := s.Dispatch(cmd); err != nil {
			s.logger.Debug("command refused",
				zap.String("verb", cmd.Verb),
				zap.Strings("args", cmd.Args()),
				zap.Error(err),
			)
		}
	}
	return s.fatal
}

// Dispatch applies cmd to the session.
//
// Postcondition: recoverable failures are narrated, leave state unchanged,
// and are returned so callers can inspect them.
func (s *Session) Dispatch(cmd command.Command) error {
	switch s.state {
	case Terminated:
		return ErrTerminated
	case AwaitingConfirmation:
		tokens := cmd.Args()
		if cmd.Recognized {
			tokens = append([]string{cmd.Verb}, tokens...)
		}
		return s.confirm(strings.Join(tokens, " "))
	}

	in := s.intentOf(cmd)
	s.logger.Debug("dispatch", zap.String("intent", in.Kind.String()), zap.String("target", in.Target))

	if enemy := s.activeEnemy(); enemy != nil && !allowedInEncounter(in.Kind) {
		s.say(fmt.Sprintf("You can't do that while the %s blocks your way!", enemy.Name))
		return ErrBlocked
	}

	switch in.Kind {
	case command.Unknown, command.Empty:
		s.say("I don't know what you mean.")
		return command.ErrUnknownCommand
	case command.Invalid:
		s.say(in.Reason)
		return ErrInvalidTarget
	case command.Move:
		return s.move(in.Target)
	case command.Attack:
		return s.attack(in.Target, in.With)
	case command.Music:
		return s.music(in.Music)
	case command.Yell:
		s.yell(in.Text)
		return nil
	case command.Help:
		s.help()
		return nil
	case command.Quit:
		s.ask(ConfirmQuit, "Are you sure you want to quit? (yes/no)")
		return nil
	case command.Restart:
		s.ask(ConfirmRestart, "Are you sure you want to start over? (yes/no)")
		return nil
	case command.Look:
		s.describe()
		return nil
	case command.Take:
		return s.take(in.Target)
	case command.Drop:
		return s.drop(in.Target)
	case command.Inventory:
		s.showInventory()
		return nil
	case command.Use:
		return s.use(in.Target)
	case command.Open:
		return s.open(in.Target)
	case command.Talk:
		return s.talk(in.Target)
	case command.Save:
		return s.saveSlot(in.Text)
	case command.Load:
		return s.loadSlot(in.Text)
	case command.Saves:
		return s.listSlots()
	}
	s.say("I don't know what you mean.")
	return command.ErrUnknownCommand
}

// intentOf derives the intent of cmd. A hit whose argument names the enemy
// blocking the way is an attack even when that name is also a music operation.
func (s *Session) intentOf(cmd command.Command) command.Intent {
	in := command.IntentOf(cmd)
	if in.Kind != command.Music || cmd.Handler != command.HandlerHit {
		return in
	}
	if enemy := s.activeEnemy(); enemy != nil && strings.EqualFold(enemy.Name, cmd.Text()) {
		return command.Intent{Kind: command.Attack, Target: enemy.Name}
	}
	return in
}

// encounterKinds are the intents accepted while an enemy blocks the way.
var encounterKinds = map[command.Kind]bool{
	command.Attack:    true,
	command.Music:     true,
	command.Yell:      true,
	command.Help:      true,
	command.Inventory: true,
	command.Use:       true,
	command.Quit:      true,
	command.Restart:   true,
	command.Unknown:   true,
	command.Invalid:   true,
	command.Empty:     true,
}

func allowedInEncounter(k command.Kind) bool {
	return encounterKinds[k]
}

// EncounterCommands lists the verbs accepted during an encounter.
func EncounterCommands() []string {
	return []string{"hit", "music", "yell", "help", "inventory", "use", "quit", "restart"}
}

func (s *Session) ask(c Confirmation, prompt string) {
	s.state = AwaitingConfirmation
	s.pending = c
	s.say(prompt)
}

// confirm resolves a pending confirmation from a raw answer.
func (s *Session) confirm(line string) error {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
	case "no", "n":
		s.state = Running
		s.pending = ConfirmNone
		s.say("Very well, carry on.")
		return nil
	default:
		s.say("Please answer yes or no.")
		return ErrInvalidConfirmation
	}

	pending := s.pending
	s.pending = ConfirmNone
	if pending == ConfirmRestart {
		return s.restart()
	}
	s.terminate(nil, "Farewell, adventurer.")
	return nil
}

// terminate ends the session after the farewell narration and delay.
func (s *Session) terminate(cause error, farewell ...string) {
	s.say(farewell...)
	if s.opts.FarewellDelay > 0 {
		s.sleep(s.opts.FarewellDelay)
	}
	s.audio.Stop()
	s.activeTrack = ""
	s.state = Terminated
	s.fatal = cause
	s.logger.Info("session terminated", zap.Bool("abnormal", cause != nil))
}

// restart rebuilds the world synchronously and starts over.
func (s *Session) restart() error {
	bundle, err := s.factory()
	if err == nil {
		err = s.reset(bundle)
	}
	if err != nil {
		s.logger.Error("restart failed", zap.Error(err))
		s.terminate(err, fmt.Sprintf("The world could not be rebuilt: %v", err))
		return err
	}
	s.logger.Info("session restarted", zap.String("room", s.currentRoom))
	s.say("The world shimmers and reforms around you.")
	s.arrive()
	return nil
}
