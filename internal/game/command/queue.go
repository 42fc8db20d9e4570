package command

import (
	"context"
)

// Queue is a single-slot hand-off between the input collaborator and the
// session. Push blocks while a line is pending; Next blocks until one arrives.
type Queue struct {
	ch chan string
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{ch: make(chan string, 1)}
}

// Push hands line to the reader.
//
// Postcondition: returns nil once the line is queued, or ctx.Err() if ctx
// is cancelled first.
func (q *Queue) Push(ctx context.Context, line string) error {
	select {
	case q.ch <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next blocks until a line is available. It has no timeout; only ctx
// cancellation ends the wait early.
func (q *Queue) Next(ctx context.Context) (string, error) {
	select {
	case line := <-q.ch:
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Parser reads lines from a Queue and classifies them against a Registry.
type Parser struct {
	registry *Registry
	queue    *Queue
}

// NewParser creates a Parser.
//
// Precondition: registry and queue must be non-nil.
func NewParser(registry *Registry, queue *Queue) *Parser {
	return &Parser{registry: registry, queue: queue}
}

// Next blocks until the next line arrives and returns it classified.
// An empty line classifies as an unrecognized command with no arguments.
func (p *Parser) Next(ctx context.Context) (Command, error) {
	line, err := p.queue.Next(ctx)
	if err != nil {
		return Command{}, err
	}
	return p.registry.Parse(line), nil
}
