package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/game/command"
)

// Reader reads lines from an input stream and pushes them onto a command queue.
type Reader struct {
	in      io.Reader
	queue   *command.Queue
	display *Display
	logger  *zap.Logger
}

// NewReader creates a Reader. display may be nil, in which case no prompt is shown.
//
// Precondition: in, queue and logger must be non-nil.
func NewReader(in io.Reader, queue *command.Queue, display *Display, logger *zap.Logger) *Reader {
	return &Reader{in: in, queue: queue, display: display, logger: logger}
}

// Run pushes each input line, trimmed, onto the queue until input ends or
// ctx is cancelled.
//
// Postcondition: returns nil at end of input, ctx.Err() on cancellation, or
// the read error.
func (r *Reader) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	for {
		if r.display != nil {
			r.display.Prompt()
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		r.logger.Debug("input line", zap.String("line", line))
		if err := r.queue.Push(ctx, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console: reading input: %w", err)
	}
	r.logger.Info("input closed")
	return nil
}
