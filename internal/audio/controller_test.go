package audio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/textquest/internal/audio"
)

func TestNewController_RejectsOutOfRange(t *testing.T) {
	_, err := audio.NewController(zap.NewNop(), 3)
	assert.Error(t, err)
	_, err = audio.NewController(zap.NewNop(), -81)
	assert.Error(t, err)
}

func TestController_PlayStop(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c, err := audio.NewController(zap.New(core), -20)
	require.NoError(t, err)

	require.NoError(t, c.Play("meadow"))
	plays := logs.FilterMessage("audio play").All()
	require.Len(t, plays, 1)
	assert.Equal(t, "meadow", plays[0].ContextMap()["track"])

	c.Stop()
	c.Stop()
	stops := logs.FilterMessage("audio stop").All()
	require.Len(t, stops, 1, "stopping while stopped is a no-op")
	assert.Equal(t, "meadow", stops[0].ContextMap()["track"])

	assert.Error(t, c.Play(""))
}

func TestProperty_VolumeStaysInRange(t *testing.T) {
	c, err := audio.NewController(zap.NewNop(), 0)
	require.NoError(t, err)
	rapid.Check(t, func(rt *rapid.T) {
		db := rapid.Float64Range(-200, 200).Draw(rt, "db")
		err := c.SetVolume(db)
		v := c.Volume()
		assert.GreaterOrEqual(rt, v, audio.MinVolume)
		assert.LessOrEqual(rt, v, audio.MaxVolume)
		if err == nil {
			assert.Equal(rt, db, v)
		}
	})
}
