// Package midi is the public entry point: it composes the chunk reader,
// the per-track message scanners and the sequence builder into a single
// decode call.
package midi

import (
	"fmt"
	"os"

	"github.com/jsphweid/midiseq/model"
	"github.com/jsphweid/midiseq/sequence"
	"github.com/jsphweid/midiseq/smf"
)

// Decode parses a whole SMF byte buffer into a Sequence. Container,
// timing and message-stream problems are fatal and return a nil
// Sequence; malformed meta payloads and orphaned note-offs are absorbed
// with documented defaults.
func Decode(buf []byte) (*model.Sequence, error) {
	return DecodeWithOptions(buf, sequence.Options{})
}

func DecodeWithOptions(buf []byte, opts sequence.Options) (*model.Sequence, error) {
	f, err := smf.Parse(buf)
	if err != nil {
		return nil, err
	}
	return sequence.FromFile(f, opts)
}

func ReadMidiFile(filepath string) (*model.Sequence, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := Decode(dat)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}
