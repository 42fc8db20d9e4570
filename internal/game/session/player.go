package session

import "fmt"

// MaxHealth caps player health restored by Heal.
const MaxHealth = 100

// Player is the player character's mutable state.
type Player struct {
	Health int `yaml:"health"`
}

// IsDead reports whether health has dropped to zero or below.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// TakeDamage subtracts amount from Health.
//
// Precondition: amount >= 0.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
}

// Heal adds amount to Health, capped at MaxHealth.
//
// Precondition: amount >= 0.
// Postcondition: Health <= MaxHealth, unless it already exceeded it.
func (p *Player) Heal(amount int) {
	if p.Health >= MaxHealth {
		return
	}
	p.Health += amount
	if p.Health > MaxHealth {
		p.Health = MaxHealth
	}
}

// Flag names as seen by hook scripts.
const (
	FlagInTrial      = "in_trial"
	FlagTrialIndex   = "trial_index"
	FlagAnsweredNews = "answered_news"
	FlagOpenedVault  = "opened_vault"
	FlagSupportCheck = "support_check"
)

// Flags records narrative progress.
type Flags struct {
	InTrial      bool `yaml:"in_trial"`
	TrialIndex   int  `yaml:"trial_index"`
	AnsweredNews bool `yaml:"answered_news"`
	OpenedVault  bool `yaml:"opened_vault"`
	SupportCheck bool `yaml:"support_check"`
}

// Get returns the flag called name.
//
// Postcondition: value is a bool, or an int for FlagTrialIndex; ok is false
// for an unknown name.
func (f *Flags) Get(name string) (any, bool) {
	switch name {
	case FlagInTrial:
		return f.InTrial, true
	case FlagTrialIndex:
		return f.TrialIndex, true
	case FlagAnsweredNews:
		return f.AnsweredNews, true
	case FlagOpenedVault:
		return f.OpenedVault, true
	case FlagSupportCheck:
		return f.SupportCheck, true
	}
	return nil, false
}

// Set assigns value to the flag called name.
//
// Postcondition: returns an error and leaves f unchanged on an unknown name
// or a value of the wrong type.
func (f *Flags) Set(name string, value any) error {
	if name == FlagTrialIndex {
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("flag %q wants a number, got %T", name, value)
		}
		f.TrialIndex = n
		return nil
	}
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("flag %q wants a boolean, got %T", name, value)
	}
	switch name {
	case FlagInTrial:
		f.InTrial = b
	case FlagAnsweredNews:
		f.AnsweredNews = b
	case FlagOpenedVault:
		f.OpenedVault = b
	case FlagSupportCheck:
		f.SupportCheck = b
	default:
		return fmt.Errorf("unknown flag %q", name)
	}
	return nil
}
