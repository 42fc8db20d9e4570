package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intentOf(line string) Intent {
	return IntentOf(DefaultRegistry().Parse(line))
}

func TestIntentOf_HitMusicTokens(t *testing.T) {
	cases := map[string]MusicOp{
		"hit start":       MusicStart,
		"hit stop":        MusicStop,
		"hit play":        MusicPlay,
		"hit volume-up":   MusicVolumeUp,
		"hit volume up":   MusicVolumeUp,
		"hit volume-down": MusicVolumeDown,
		"hit volume down": MusicVolumeDown,
		"music play":      MusicPlay,
	}
	for line, op := range cases {
		in := intentOf(line)
		assert.Equal(t, Music, in.Kind, line)
		assert.Equal(t, op, in.Music, line)
	}
}

func TestIntentOf_HitTarget(t *testing.T) {
	in := intentOf("hit troll")
	assert.Equal(t, Attack, in.Kind)
	assert.Equal(t, "troll", in.Target)
	assert.Empty(t, in.With)

	in = intentOf("hit cave troll with rusty sword")
	assert.Equal(t, "cave troll", in.Target)
	assert.Equal(t, "rusty sword", in.With)
}

func TestIntentOf_Invalid(t *testing.T) {
	assert.Equal(t, Invalid, intentOf("hit").Kind)
	assert.Equal(t, Invalid, intentOf("music dance").Kind)
	assert.Equal(t, Invalid, intentOf("go").Kind)
	assert.Equal(t, Invalid, intentOf("take").Kind)
}

func TestIntentOf_Move(t *testing.T) {
	assert.Equal(t, Intent{Kind: Move, Target: "north"}, intentOf("go north"))
	assert.Equal(t, Intent{Kind: Move, Target: "north"}, intentOf("n"))
}

func TestIntentOf_Misc(t *testing.T) {
	assert.Equal(t, Intent{Kind: Yell, Text: "hello there"}, intentOf("yell hello there"))
	assert.Equal(t, Yell, intentOf("yell").Kind)
	assert.Equal(t, Intent{Kind: Save, Text: "slot1"}, intentOf("save slot1"))
	assert.Equal(t, Unknown, intentOf("dance").Kind)
	assert.Equal(t, Empty, intentOf("").Kind)
	assert.Equal(t, "attack", Attack.String())
}
