package model

import "math"

// Note is one played note, in fractional quarter notes.
type Note struct {
	Pitch    uint8   `json:"pitch"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Velocity uint8   `json:"velocity"`
}

// End is the note's release time, start + duration.
func (n Note) End() float64 {
	return n.Start + n.Duration
}

// ControlChange is one point of a controller curve.
type ControlChange struct {
	Time  float64 `json:"time"`
	Value uint8   `json:"value"`
}

type Tempo struct {
	Time float64 `json:"time"`
	QPM  float64 `json:"qpm"`
}

type TimeSignature struct {
	Time        float64 `json:"time"`
	Numerator   uint8   `json:"numerator"`
	Denominator uint8   `json:"denominator"`
}

// KeySignature holds the raw SMF encoding: a signed count of sharps
// (positive) or flats (negative) and a major/minor flag.
type KeySignature struct {
	Time        float64 `json:"time"`
	SharpsFlats int8    `json:"sharps_flats"`
	Minor       bool    `json:"minor"`
}

var majorKeyNames = [15]string{
	"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F",
	"C", "G", "D", "A", "E", "B", "F#", "C#",
}

var minorKeyNames = [15]string{
	"Abm", "Ebm", "Bbm", "Fm", "Cm", "Gm", "Dm",
	"Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m", "A#m",
}

// Name returns the conventional key name, e.g. "Eb" or "F#m". Counts
// outside the valid -7..7 range fall back to C / Am.
func (k KeySignature) Name() string {
	i := int(k.SharpsFlats) + 7
	if i < 0 || i >= len(majorKeyNames) {
		i = 7
	}
	if k.Minor {
		return minorKeyNames[i]
	}
	return majorKeyNames[i]
}

// Track is the decoded activity of one (source track, channel) pair.
// Controls groups control-change curves by controller number.
type Track struct {
	Name     string                    `json:"name"`
	Program  uint8                     `json:"program"`
	Channel  uint8                     `json:"channel"`
	IsDrum   bool                      `json:"is_drum"`
	Notes    []Note                    `json:"notes"`
	Controls map[uint8][]ControlChange `json:"controls"`
}

// Sequence is the root decode output. Each timeline is sorted by time
// and Tempos always has an entry at time 0. A Sequence owns all of its
// data; nothing references the source byte buffer.
type Sequence struct {
	Tracks         []Track         `json:"tracks"`
	Tempos         []Tempo         `json:"tempos"`
	TimeSignatures []TimeSignature `json:"time_signatures"`
	KeySignatures  []KeySignature  `json:"key_signatures"`
}

// BeatInMeasure buckets a time (in quarter notes) into its position
// within the measure of the governing time signature, by scanning the
// sorted timeline for the last signature at or before t and folding the
// elapsed quarters by the numerator. Useful for downstream quantization.
func (s *Sequence) BeatInMeasure(t float64) float64 {
	sig := TimeSignature{Numerator: 4, Denominator: 4}
	for _, ts := range s.TimeSignatures {
		if ts.Time > t {
			break
		}
		sig = ts
	}
	if sig.Numerator == 0 {
		return 0
	}
	return math.Mod(t-sig.Time, float64(sig.Numerator))
}
