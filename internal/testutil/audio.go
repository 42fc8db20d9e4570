package testutil

import "fmt"

// FakeAudio is an in-memory audio controller that records calls.
type FakeAudio struct {
	Track   string
	Playing bool
	Plays   []string
	Stops   int
	volume  float64
}

// NewFakeAudio returns a stopped FakeAudio at volume db.
func NewFakeAudio(db float64) *FakeAudio {
	return &FakeAudio{volume: db}
}

// Play starts track.
func (a *FakeAudio) Play(track string) error {
	if track == "" {
		return fmt.Errorf("fake audio: empty track")
	}
	a.Track = track
	a.Playing = true
	a.Plays = append(a.Plays, track)
	return nil
}

// Stop halts playback.
func (a *FakeAudio) Stop() {
	a.Playing = false
	a.Stops++
}

// SetVolume sets the volume in dB.
//
// Precondition: -80 <= db <= 0.
func (a *FakeAudio) SetVolume(db float64) error {
	if db < -80 || db > 0 {
		return fmt.Errorf("fake audio: volume %.1f dB out of range", db)
	}
	a.volume = db
	return nil
}

// Volume returns the current volume in dB.
func (a *FakeAudio) Volume() float64 {
	return a.volume
}
