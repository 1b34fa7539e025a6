package stats

import (
	"testing"

	"github.com/jsphweid/midiseq/model"
	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	seq := &model.Sequence{
		Tracks: []model.Track{
			{
				Name: "lead",
				Notes: []model.Note{
					{Pitch: 60, Start: 0, Duration: 1, Velocity: 80},
					{Pitch: 72, Start: 1, Duration: 2, Velocity: 80},
				},
				Controls: map[uint8][]model.ControlChange{
					11: {{Time: 0, Value: 100}, {Time: 1, Value: 50}},
				},
			},
			{
				Name:    "kick",
				Channel: 9,
				IsDrum:  true,
				Notes: []model.Note{
					{Pitch: 36, Start: 0, Duration: 0.25, Velocity: 127},
				},
			},
		},
		Tempos: []model.Tempo{{Time: 0, QPM: 120}},
	}

	fs := Collect(seq)

	assert := assert.New(t)
	assert.Equal(2, fs.TrackCount)
	assert.Equal(3, fs.NoteCount)
	assert.Equal(1, fs.Tempos)
	assert.Equal(3.0, fs.Beats)

	lead := fs.Tracks[0]
	assert.Equal("lead", lead.Name)
	assert.Equal(2, lead.NoteCount)
	assert.Equal(uint8(60), lead.MinPitch)
	assert.Equal(uint8(72), lead.MaxPitch)
	assert.Equal(2, lead.ControlCount)

	kick := fs.Tracks[1]
	assert.True(kick.IsDrum)
	assert.Equal(uint8(36), kick.MinPitch)
	assert.Equal(uint8(36), kick.MaxPitch)
}

func TestCollectEmptyTrack(t *testing.T) {
	fs := Collect(&model.Sequence{Tracks: []model.Track{{Name: "pad"}}})

	assert := assert.New(t)
	assert.Equal(1, fs.TrackCount)
	assert.Equal(0, fs.NoteCount)
	assert.Equal(uint8(0), fs.Tracks[0].MinPitch)
	assert.Equal(uint8(0), fs.Tracks[0].MaxPitch)
}
