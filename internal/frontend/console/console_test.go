package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/frontend/console"
	"github.com/cory-johannsen/textquest/internal/game/command"
)

func TestDisplay_WrapsPlainText(t *testing.T) {
	var buf bytes.Buffer
	d := console.NewDisplay(&buf, 20, false)
	d.Narrate("The quick brown fox jumps over the lazy dog.")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20)
	}
}

func TestDisplay_NoColorIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	d := console.NewDisplay(&buf, 0, false)
	d.Narrate("Exits: north.")
	assert.Equal(t, "Exits: north.\n", buf.String())
}

func TestDisplay_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	d := console.NewDisplay(&buf, 80, true)
	d.Narrate("HELLO!")
	assert.Contains(t, buf.String(), "HELLO!")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestReader_PushesLines(t *testing.T) {
	q := command.NewQueue()
	in := strings.NewReader("go north\n\n  look  \n")
	r := console.NewReader(in, q, nil, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	line, err := q.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "go north", line)
	line, err = q.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", line, "blank lines reach the session")
	line, err = q.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "look", line)
	assert.NoError(t, <-done)
}

func TestReader_CancelWhileBlocked(t *testing.T) {
	q := command.NewQueue()
	r := console.NewReader(strings.NewReader("one\ntwo\n"), q, nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	// "one" fills the slot; "two" blocks until cancellation.
	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestDisplay_ZeroWidthDoesNotWrap(t *testing.T) {
	var buf bytes.Buffer
	d := console.NewDisplay(&buf, 0, false)
	long := strings.Repeat("word ", 40)
	d.Narrate(long)
	assert.Equal(t, long+"\n", buf.String())
}
