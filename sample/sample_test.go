package sample

import (
	"testing"

	"github.com/jsphweid/midiseq/midi"
	"github.com/jsphweid/midiseq/model"
	"github.com/stretchr/testify/assert"
)

// The sample bytes come from an independent encoder, so decoding them
// cross-checks the decoder against something other than itself.
func TestSampleDecodes(t *testing.T) {
	dat, err := Bytes()
	assert := assert.New(t)
	assert.NoError(err)

	seq, err := midi.Decode(dat)
	assert.NoError(err)

	// the meta track has no notes and is dropped
	assert.Equal(1, len(seq.Tracks))
	tr := seq.Tracks[0]
	assert.Equal("piano", tr.Name)
	assert.Equal(uint8(0), tr.Program)
	assert.False(tr.IsDrum)

	assert.Equal(len(scale), len(tr.Notes))
	for i, note := range tr.Notes {
		assert.Equal(scale[i], note.Pitch)
		assert.InDelta(float64(i), note.Start, 1e-9)
		assert.InDelta(1.0, note.Duration, 1e-9)
		assert.Equal(uint8(96), note.Velocity)
	}

	assert.Equal([]model.Tempo{{Time: 0, QPM: 120}}, seq.Tempos)
	assert.Equal([]model.TimeSignature{
		{Time: 0, Numerator: 4, Denominator: 4},
	}, seq.TimeSignatures)
	assert.Equal(2, len(tr.Controls[11]))
}
