package command

import (
	"strings"
)

// Kind tags what a command asks the session to do.
type Kind int

// Intent kinds.
const (
	Unknown Kind = iota
	Invalid
	Move
	Attack
	Music
	Yell
	Help
	Quit
	Restart
	Look
	Take
	Drop
	Inventory
	Use
	Open
	Talk
	Save
	Load
	Saves
	Empty
)

var kindNames = map[Kind]string{
	Unknown: "unknown", Invalid: "invalid", Move: "move", Attack: "attack",
	Music: "music", Yell: "yell", Help: "help", Quit: "quit", Restart: "restart",
	Look: "look", Take: "take", Drop: "drop", Inventory: "inventory", Use: "use",
	Open: "open", Talk: "talk", Save: "save", Load: "load",
	Saves: "saves", Empty: "empty",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// MusicOp is a music-control operation.
type MusicOp int

// Music operations.
const (
	MusicNone MusicOp = iota
	MusicStart
	MusicStop
	MusicPlay
	MusicVolumeUp
	MusicVolumeDown
)

var musicOps = map[string]MusicOp{
	"start":       MusicStart,
	"stop":        MusicStop,
	"play":        MusicPlay,
	"volume-up":   MusicVolumeUp,
	"volume up":   MusicVolumeUp,
	"volume-down": MusicVolumeDown,
	"volume down": MusicVolumeDown,
}

// ParseMusicOp recognizes a music-control argument. Both "volume-up" and
// "volume up" forms are accepted.
//
// Postcondition: Returns (op, true) on a match, or (MusicNone, false).
func ParseMusicOp(args []string) (MusicOp, bool) {
	op, ok := musicOps[strings.Join(args, " ")]
	return op, ok
}

// Intent is the explicit action derived from a Command.
type Intent struct {
	Kind Kind
	// Target is the direction, item, enemy or character named by the command.
	Target string
	// With names the weapon in "hit <enemy> with <weapon>".
	With string
	// Music is set when Kind is Music.
	Music MusicOp
	// Text is the free text of yell or the slot of save and load.
	Text string
	// Reason is the narration for an Invalid intent.
	Reason string
}

// IntentOf derives the Intent for cmd. A hit whose argument is a music
// operation becomes a Music intent; any other hit argument is an Attack whose
// target the session validates against the enemy present.
func IntentOf(cmd Command) Intent {
	if !cmd.Recognized {
		if len(cmd.args) == 0 {
			return Intent{Kind: Empty}
		}
		return Intent{Kind: Unknown, Target: cmd.args[0]}
	}
	args := cmd.args
	text := strings.Join(args, " ")

	switch cmd.Handler {
	case HandlerMove:
		if cmd.Verb != "go" {
			return Intent{Kind: Move, Target: cmd.Verb}
		}
		if text == "" {
			return Intent{Kind: Invalid, Reason: "Go where?"}
		}
		return Intent{Kind: Move, Target: text}
	case HandlerHit:
		if op, ok := ParseMusicOp(args); ok {
			return Intent{Kind: Music, Music: op}
		}
		if text == "" {
			return Intent{Kind: Invalid, Reason: "Hit what?"}
		}
		target, with := splitWith(args)
		return Intent{Kind: Attack, Target: target, With: with}
	case HandlerMusic:
		if op, ok := ParseMusicOp(args); ok {
			return Intent{Kind: Music, Music: op}
		}
		return Intent{Kind: Invalid, Reason: "That is not a valid music command."}
	case HandlerYell:
		return Intent{Kind: Yell, Text: text}
	case HandlerHelp:
		return Intent{Kind: Help}
	case HandlerQuit:
		return Intent{Kind: Quit}
	case HandlerRestart:
		return Intent{Kind: Restart}
	case HandlerLook:
		return Intent{Kind: Look}
	case HandlerInventory:
		return Intent{Kind: Inventory}
	case HandlerSave:
		return Intent{Kind: Save, Text: text}
	case HandlerLoad:
		return Intent{Kind: Load, Text: text}
	case HandlerSaves:
		return Intent{Kind: Saves}
	case HandlerTake:
		return targeted(Take, "Take what?", text)
	case HandlerDrop:
		return targeted(Drop, "Drop what?", text)
	case HandlerUse:
		return targeted(Use, "Use what?", text)
	case HandlerOpen:
		return targeted(Open, "Open what?", text)
	case HandlerTalk:
		return targeted(Talk, "Talk to whom?", text)
	}
	return Intent{Kind: Unknown, Target: cmd.Verb}
}

func targeted(k Kind, reason, target string) Intent {
	if target == "" {
		return Intent{Kind: Invalid, Reason: reason}
	}
	return Intent{Kind: k, Target: target}
}

// splitWith splits "troll with sword" into ("troll", "sword").
func splitWith(args []string) (target, with string) {
	for i, a := range args {
		if strings.EqualFold(a, "with") && i > 0 {
			return strings.Join(args[:i], " "), strings.Join(args[i+1:], " ")
		}
	}
	return strings.Join(args, " "), ""
}
