package testutil

import (
	"strings"
	"sync"
)

// RecordingDisplay captures narration lines in order.
type RecordingDisplay struct {
	mu    sync.Mutex
	lines []string
}

// NewRecordingDisplay returns an empty RecordingDisplay.
func NewRecordingDisplay() *RecordingDisplay {
	return &RecordingDisplay{}
}

// Narrate records line.
func (d *RecordingDisplay) Narrate(line string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = append(d.lines, line)
}

// Lines returns a copy of every recorded line.
func (d *RecordingDisplay) Lines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Last returns the most recent line, or "" when nothing was narrated.
func (d *RecordingDisplay) Last() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.lines) == 0 {
		return ""
	}
	return d.lines[len(d.lines)-1]
}

// Contains reports whether any recorded line contains substr.
func (d *RecordingDisplay) Contains(substr string) bool {
	for _, l := range d.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// Reset discards all recorded lines.
func (d *RecordingDisplay) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = nil
}
