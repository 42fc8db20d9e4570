package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/game/command"
)

// Volume bounds and step in dB.
const (
	MinVolume  = -80.0
	MaxVolume  = 0.0
	VolumeStep = 5.0
)

// ErrVolumeBound is returned when a volume step would leave [MinVolume, MaxVolume].
var ErrVolumeBound = errors.New("session: volume at limit")

// ErrNoTrack is returned when music is requested where none is available.
var ErrNoTrack = errors.New("session: no music here")

func (s *Session) music(op command.MusicOp) error {
	switch op {
	case command.MusicStart:
		track := s.activeTrack
		if track == "" {
			track = s.room().Track
		}
		return s.startTrack(track)
	case command.MusicPlay:
		track := s.room().Track
		if track == "" {
			track = s.activeTrack
		}
		return s.startTrack(track)
	case command.MusicStop:
		s.switchTrack("")
		s.say("The music stops.")
		return nil
	case command.MusicVolumeUp:
		return s.stepVolume(VolumeStep)
	case command.MusicVolumeDown:
		return s.stepVolume(-VolumeStep)
	}
	s.say("That is not a valid music command.")
	return ErrInvalidTarget
}

func (s *Session) startTrack(track string) error {
	if track == "" {
		s.say("There is no music here.")
		return ErrNoTrack
	}
	s.switchTrack(track)
	if s.activeTrack == "" {
		s.say("The music will not play.")
		return ErrNoTrack
	}
	s.say(fmt.Sprintf("Music: %s.", track))
	return nil
}

// stepVolume moves the volume by delta, refusing a step past either bound.
func (s *Session) stepVolume(delta float64) error {
	next := s.audio.Volume() + delta
	if next > MaxVolume {
		s.say("The music is already as loud as it goes.")
		return ErrVolumeBound
	}
	if next < MinVolume {
		s.say("The music is already as quiet as it goes.")
		return ErrVolumeBound
	}
	if err := s.audio.SetVolume(next); err != nil {
		s.logger.Warn("set volume failed", zap.Float64("db", next), zap.Error(err))
		s.say("The volume will not change.")
		return err
	}
	s.say(fmt.Sprintf("Volume: %.0f dB.", next))
	return nil
}

// switchTrack plays track, or stops the music when track is empty.
func (s *Session) switchTrack(track string) {
	if track == "" {
		s.audio.Stop()
		s.activeTrack = ""
		return
	}
	if track == s.activeTrack {
		return
	}
	if err := s.audio.Play(track); err != nil {
		s.logger.Warn("play failed", zap.String("track", track), zap.Error(err))
		s.audio.Stop()
		s.activeTrack = ""
		return
	}
	s.activeTrack = track
}
