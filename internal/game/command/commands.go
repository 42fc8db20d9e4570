// Package command provides the verb vocabulary, the tokenizer and classifier,
// intent derivation, and the single-slot queue that feeds input to the session.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryCombat   = "combat"
	CategoryMusic    = "music"
	CategorySystem   = "system"
)

// Handler identifiers mapping verbs to session behaviour.
const (
	HandlerMove      = "move"
	HandlerLook      = "look"
	HandlerTake      = "take"
	HandlerDrop      = "drop"
	HandlerInventory = "inventory"
	HandlerUse       = "use"
	HandlerOpen      = "open"
	HandlerTalk      = "talk"
	HandlerHit       = "hit"
	HandlerMusic     = "music"
	HandlerYell      = "yell"
	HandlerHelp      = "help"
	HandlerSave      = "save"
	HandlerLoad      = "load"
	HandlerSaves     = "saves"
	HandlerQuit      = "quit"
	HandlerRestart   = "restart"
)

// Definition describes a player-invocable verb.
type Definition struct {
	// Name is the canonical verb.
	Name string
	// Aliases are alternate verbs. Matching is exact and case-sensitive.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the verb for help output.
	Category string
	// Handler selects the session behaviour.
	Handler string
}

// BuiltinCommands returns the full verb vocabulary.
func BuiltinCommands() []Definition {
	return []Definition{
		// Movement
		{Name: "go", Help: "Move through an exit (go <direction>)", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "up", Aliases: []string{"u"}, Help: "Move up", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "down", Aliases: []string{"d"}, Help: "Move down", Category: CategoryMovement, Handler: HandlerMove},

		// World
		{Name: "look", Aliases: []string{"l"}, Help: "Describe the current room", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "take", Aliases: []string{"get"}, Help: "Pick up an item (take <item>)", Category: CategoryWorld, Handler: HandlerTake},
		{Name: "drop", Help: "Put down an item (drop <item>)", Category: CategoryWorld, Handler: HandlerDrop},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "List what you carry", Category: CategoryWorld, Handler: HandlerInventory},
		{Name: "use", Help: "Use a key or consumable (use <item>)", Category: CategoryWorld, Handler: HandlerUse},
		{Name: "open", Help: "Open something (open <item>)", Category: CategoryWorld, Handler: HandlerOpen},
		{Name: "talk", Help: "Talk to someone (talk <name>)", Category: CategoryWorld, Handler: HandlerTalk},

		// Combat
		{Name: "hit", Help: "Attack an enemy (hit <enemy> [with <weapon>])", Category: CategoryCombat, Handler: HandlerHit},

		// Music
		{Name: "music", Help: "Control music (music start|stop|play|volume-up|volume-down)", Category: CategoryMusic, Handler: HandlerMusic},

		// System
		{Name: "yell", Help: "Shout something (yell [text])", Category: CategorySystem, Handler: HandlerYell},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "save", Help: "Save the game (save [slot])", Category: CategorySystem, Handler: HandlerSave},
		{Name: "load", Help: "Load a saved game (load [slot])", Category: CategorySystem, Handler: HandlerLoad},
		{Name: "saves", Help: "List saved games", Category: CategorySystem, Handler: HandlerSaves},
		{Name: "quit", Help: "Leave the game", Category: CategorySystem, Handler: HandlerQuit},
		{Name: "restart", Help: "Start over from the beginning", Category: CategorySystem, Handler: HandlerRestart},
	}
}
