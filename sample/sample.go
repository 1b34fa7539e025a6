// Package sample writes small deterministic SMF files. They exist to
// exercise the decoder (the sample command, the e2e test) with bytes
// produced by an independent encoder.
package sample

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 480

var scale = []uint8{60, 62, 64, 65, 67, 69, 71, 72}

// Create builds a two-track SMF: a meta track carrying tempo and time
// signature, and a piano track playing a C major scale in quarter notes
// with a short expression curve.
func Create() *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName("meta"))
	meta.Add(0, smf.MetaTempo(120))
	meta.Add(0, smf.MetaMeter(4, 4))
	meta.Close(0)
	s.Add(meta)

	var piano smf.Track
	piano.Add(0, smf.MetaTrackSequenceName("piano"))
	piano.Add(0, midi.ProgramChange(0, 0))
	piano.Add(0, midi.ControlChange(0, 11, 100))
	for _, pitch := range scale {
		piano.Add(0, midi.NoteOn(0, pitch, 96))
		piano.Add(ticksPerQuarter, midi.NoteOff(0, pitch))
	}
	piano.Add(0, midi.ControlChange(0, 11, 64))
	piano.Close(0)
	s.Add(piano)

	return s
}

// Bytes renders the sample file into a buffer.
func Bytes() ([]byte, error) {
	var buf bytes.Buffer
	_, err := Create().WriteTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to write sample midi: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes the sample file to path.
func WriteFile(path string) error {
	dat, err := Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, dat, 0666)
}
