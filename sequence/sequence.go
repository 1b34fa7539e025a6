// Package sequence turns decoded SMF message streams into the musical
// model: correlated notes, controller curves and the global tempo /
// time-signature / key-signature timelines, all in fractional quarter
// notes.
package sequence

import (
	"fmt"
	"sort"

	"github.com/jsphweid/midiseq/constants"
	"github.com/jsphweid/midiseq/model"
	"github.com/jsphweid/midiseq/smf"
	"github.com/jsphweid/midiseq/util"
)

// defaultTempo is the fallback microseconds-per-quarter value used when
// a SetTempo payload is too short to carry one, per SMF convention.
const defaultTempo = 500000

// DefaultQPM is the tempo assumed before the first SetTempo event.
const DefaultQPM = 120.0

// QPMFromMicros converts microseconds per quarter note to quarter notes
// per minute.
func QPMFromMicros(us uint32) float64 {
	return 6e7 / float64(us)
}

// Options controls sequence assembly.
type Options struct {
	// KeepEmptyTracks retains (track,channel) tracks that carry control
	// changes but no notes. The default drops them.
	KeepEmptyTracks bool
}

// openNote records an unclosed note-on for one (channel, pitch) slot.
// A zero velocity means the slot is empty.
type openNote struct {
	tick     uint32
	velocity uint8
}

// trackKey orders (source track, channel) pairs: track index in the
// high bits, channel in the low byte.
func trackKey(trackIdx int, channel uint8) uint32 {
	return uint32(trackIdx)<<8 | uint32(channel)
}

// FromFile builds a Sequence from a chunk-level File. Tracks are
// scanned independently in file order; the timelines are merged and
// sorted once every track has been drained. The result owns all of its
// data and can outlive the source buffer.
func FromFile(f *smf.File, opts Options) (*model.Sequence, error) {
	if f.Division&0x8000 != 0 {
		return nil, fmt.Errorf("%w: division 0x%04X", smf.ErrSMPTETiming, f.Division)
	}
	if f.Division == 0 {
		return nil, fmt.Errorf("%w: zero time division", smf.ErrUnsupportedFormat)
	}
	tpq := float64(f.Division)

	var tempos []model.Tempo
	var timeSigs []model.TimeSignature
	var keySigs []model.KeySignature
	tracks := make(map[uint32]*model.Track)
	names := make([]string, len(f.Tracks))

	for trackIdx, payload := range f.Tracks {
		// scratch state local to this track's scan
		var curProgram [constants.NumChannels]uint8
		var open [constants.NumChannels][constants.NumPitches]openNote

		sc := smf.NewTrackScanner(payload)
		for sc.Scan() {
			switch msg := sc.Msg().(type) {
			case smf.Event:
				time := float64(msg.Tick) / tpq
				switch msg.Status {
				case smf.ProgramChange:
					curProgram[msg.Channel] = msg.Program()
				case smf.ControlChange:
					tr := ensureTrack(tracks, trackIdx, msg.Channel, curProgram[msg.Channel])
					tr.Controls[msg.Controller()] = append(tr.Controls[msg.Controller()],
						model.ControlChange{Time: time, Value: msg.Value()})
				case smf.NoteOn, smf.NoteOff:
					pitch := msg.Key()
					slot := &open[msg.Channel][pitch]
					if msg.Status == smf.NoteOn && msg.Velocity() > 0 {
						// last note-on wins when the same pitch re-fires
						// without an intervening off
						*slot = openNote{tick: msg.Tick, velocity: msg.Velocity()}
						continue
					}
					// note-off, or note-on with velocity 0; orphans are
					// dropped silently
					if slot.velocity == 0 {
						continue
					}
					tr := ensureTrack(tracks, trackIdx, msg.Channel, curProgram[msg.Channel])
					tr.Notes = append(tr.Notes, model.Note{
						Pitch:    pitch,
						Start:    float64(slot.tick) / tpq,
						Duration: float64(msg.Tick-slot.tick) / tpq,
						Velocity: slot.velocity,
					})
					slot.velocity = 0
				}
			case smf.Meta:
				time := float64(msg.Tick) / tpq
				switch msg.Type {
				case smf.MetaSetTempo:
					us, ok := msg.Tempo()
					if !ok {
						us = defaultTempo
					}
					tempos = append(tempos, model.Tempo{Time: time, QPM: QPMFromMicros(us)})
				case smf.MetaTimeSignature:
					num, den, ok := msg.TimeSignature()
					if !ok {
						num, den = 4, 4
					}
					timeSigs = append(timeSigs, model.TimeSignature{
						Time: time, Numerator: num, Denominator: den,
					})
				case smf.MetaKeySignature:
					sf, minor, ok := msg.KeySignature()
					if !ok {
						sf, minor = 0, false
					}
					keySigs = append(keySigs, model.KeySignature{
						Time: time, SharpsFlats: sf, Minor: minor,
					})
				case smf.MetaTrackName:
					names[trackIdx] = msg.Text()
				}
				// every other meta type is recognized but ignored
			case smf.SysEx:
				// framing only, nothing musical to keep
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("track %d: %w", trackIdx, err)
		}
	}

	sortTimeline(tempos, func(t model.Tempo) float64 { return t.Time })
	sortTimeline(timeSigs, func(t model.TimeSignature) float64 { return t.Time })
	sortTimeline(keySigs, func(t model.KeySignature) float64 { return t.Time })

	if len(tempos) == 0 || tempos[0].Time > 0 {
		tempos = append([]model.Tempo{{Time: 0, QPM: DefaultQPM}}, tempos...)
	}

	seq := &model.Sequence{
		Tracks:         flatten(tracks, names, opts),
		Tempos:         tempos,
		TimeSignatures: timeSigs,
		KeySignatures:  keySigs,
	}
	return seq, nil
}

func ensureTrack(tracks map[uint32]*model.Track, trackIdx int, channel uint8, program uint8) *model.Track {
	key := trackKey(trackIdx, channel)
	tr, ok := tracks[key]
	if !ok {
		tr = &model.Track{
			Program:  program,
			Channel:  channel,
			IsDrum:   channel == constants.DrumChannel,
			Controls: make(map[uint8][]model.ControlChange),
		}
		tracks[key] = tr
	}
	return tr
}

func sortTimeline[T any](entries []T, time func(T) float64) {
	sort.SliceStable(entries, func(i, j int) bool {
		return time(entries[i]) < time(entries[j])
	})
}

// flatten turns the (track,channel) map into a list, iterating keys in
// sorted order so the output track ordering is reproducible for a given
// input.
func flatten(tracks map[uint32]*model.Track, names []string, opts Options) []model.Track {
	var res []model.Track
	for _, key := range util.SortedKeys(tracks) {
		tr := tracks[key]
		if len(tr.Notes) == 0 && !opts.KeepEmptyTracks {
			continue
		}
		tr.Name = names[key>>8]
		res = append(res, *tr)
	}
	return res
}
