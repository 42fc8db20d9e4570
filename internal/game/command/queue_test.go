package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PushThenNext(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()
	require.NoError(t, q.Push(ctx, "look"))
	line, err := q.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "look", line)
}

func TestQueue_NextBlocksUntilPush(t *testing.T) {
	q := NewQueue()
	got := make(chan string, 1)
	go func() {
		line, _ := q.Next(context.Background())
		got <- line
	}()
	select {
	case <-got:
		t.Fatal("Next returned before any line was pushed")
	case <-time.After(20 * time.Millisecond):
	}
	require.NoError(t, q.Push(context.Background(), "go north"))
	assert.Equal(t, "go north", <-got)
}

func TestQueue_SingleSlot(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Push(context.Background(), "one"))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Push(ctx, "two"), context.DeadlineExceeded)
}

func TestQueue_NextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewQueue().Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParser_Next(t *testing.T) {
	q := NewQueue()
	p := NewParser(DefaultRegistry(), q)
	require.NoError(t, q.Push(context.Background(), "dance wildly"))
	cmd, err := p.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, cmd.Recognized)
	assert.Equal(t, []string{"dance", "wildly"}, cmd.Args())
}
