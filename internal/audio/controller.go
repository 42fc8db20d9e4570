// Package audio provides the in-process music controller. It tracks the
// playing track and volume and logs every change; it produces no sound.
package audio

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Volume bounds in dB.
const (
	MinVolume = -80.0
	MaxVolume = 0.0
)

// Controller is a state-tracking audio controller safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	logger  *zap.Logger
	track   string
	playing bool
	volume  float64
}

// NewController returns a stopped Controller at volume db.
//
// Precondition: logger must be non-nil; MinVolume <= db <= MaxVolume.
func NewController(logger *zap.Logger, db float64) (*Controller, error) {
	if err := checkVolume(db); err != nil {
		return nil, err
	}
	return &Controller{logger: logger, volume: db}, nil
}

func checkVolume(db float64) error {
	if db < MinVolume || db > MaxVolume {
		return fmt.Errorf("audio: volume %.1f dB outside [%.0f, %.0f]", db, MinVolume, MaxVolume)
	}
	return nil
}

// Play starts track, replacing whatever was playing.
func (c *Controller) Play(track string) error {
	if track == "" {
		return fmt.Errorf("audio: empty track name")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.track = track
	c.playing = true
	c.logger.Info("audio play", zap.String("track", track), zap.Float64("volume_db", c.volume))
	return nil
}

// Stop halts playback. Stopping while stopped is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.logger.Info("audio stop", zap.String("track", c.track))
	c.playing = false
	c.track = ""
}

// SetVolume sets the volume.
//
// Postcondition: returns an error and leaves the volume unchanged when db is
// outside [MinVolume, MaxVolume].
func (c *Controller) SetVolume(db float64) error {
	if err := checkVolume(db); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("audio volume", zap.Float64("from_db", c.volume), zap.Float64("to_db", db))
	c.volume = db
	return nil
}

// Volume returns the current volume in dB.
func (c *Controller) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}
