package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/textquest/internal/game/session"
)

func TestPlayer_HealCapped(t *testing.T) {
	p := session.Player{Health: 90}
	p.Heal(30)
	assert.Equal(t, session.MaxHealth, p.Health)
}

func TestProperty_HealNeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := session.Player{Health: rapid.IntRange(-50, session.MaxHealth).Draw(rt, "health")}
		before := p.Health
		amount := rapid.IntRange(0, 500).Draw(rt, "amount")
		p.Heal(amount)
		assert.LessOrEqual(rt, p.Health, session.MaxHealth)
		assert.GreaterOrEqual(rt, p.Health, before)
	})
}

func TestPlayer_DeadAtZero(t *testing.T) {
	p := session.Player{Health: 5}
	p.TakeDamage(5)
	assert.True(t, p.IsDead())
}

func TestFlags_GetSet(t *testing.T) {
	var f session.Flags
	assert.NoError(t, f.Set(session.FlagOpenedVault, true))
	assert.NoError(t, f.Set(session.FlagTrialIndex, 3))
	assert.True(t, f.OpenedVault)
	assert.Equal(t, 3, f.TrialIndex)

	v, ok := f.Get(session.FlagTrialIndex)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Error(t, f.Set(session.FlagInTrial, 1), "wrong type")
	assert.Error(t, f.Set(session.FlagTrialIndex, true), "wrong type")
	assert.Error(t, f.Set("no_such_flag", true))
	_, ok = f.Get("no_such_flag")
	assert.False(t, ok)
	assert.False(t, f.InTrial)
}
