package smf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// payload concatenates byte runs into one track payload.
func payload(runs ...[]byte) []byte {
	var res []byte
	for _, r := range runs {
		res = append(res, r...)
	}
	return res
}

func drain(t *testing.T, data []byte) ([]Message, error) {
	t.Helper()
	var msgs []Message
	sc := NewTrackScanner(data)
	for sc.Scan() {
		msgs = append(msgs, sc.Msg())
	}
	return msgs, sc.Err()
}

func TestScanChannelEvents(t *testing.T) {
	data := payload(
		[]byte{0x00, 0x90, 60, 100},
		[]byte{0x60, 0x80, 60, 0x40},
		[]byte{0x00, 0xC1, 0x05},
		[]byte{0x00, 0xB0, 11, 127},
		[]byte{0x00, 0xE2, 0x00, 0x40},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Message{
		Event{Tick: 0, Status: NoteOn, Channel: 0, Data: [2]uint8{60, 100}},
		Event{Tick: 0x60, Status: NoteOff, Channel: 0, Data: [2]uint8{60, 0x40}},
		Event{Tick: 0x60, Status: ProgramChange, Channel: 1, Data: [2]uint8{5, 0}},
		Event{Tick: 0x60, Status: ControlChange, Channel: 0, Data: [2]uint8{11, 127}},
		Event{Tick: 0x60, Status: PitchBend, Channel: 2, Data: [2]uint8{0x00, 0x40}},
	}, msgs)
}

func TestScanRunningStatus(t *testing.T) {
	// second message omits the 0x90 status byte entirely
	data := payload(
		[]byte{0x00, 0x90, 60, 100},
		[]byte{0x60, 62, 100},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Message{
		Event{Tick: 0, Status: NoteOn, Channel: 0, Data: [2]uint8{60, 100}},
		Event{Tick: 0x60, Status: NoteOn, Channel: 0, Data: [2]uint8{62, 100}},
	}, msgs)
}

func TestScanRunningStatusTwoByteEvent(t *testing.T) {
	data := payload(
		[]byte{0x00, 0xC5, 10},
		[]byte{0x00, 11},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]Message{
		Event{Tick: 0, Status: ProgramChange, Channel: 5, Data: [2]uint8{10, 0}},
		Event{Tick: 0, Status: ProgramChange, Channel: 5, Data: [2]uint8{11, 0}},
	}, msgs)
}

func TestScanRealTimeDoesNotTouchRunningStatus(t *testing.T) {
	// a timing clock between two running-status note-ons must not change
	// the implied message length
	data := payload(
		[]byte{0x00, 0x90, 60, 100},
		[]byte{0x00, 0xF8},
		[]byte{0x00, 62, 100},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(3, len(msgs))
	assert.Equal(Event{Tick: 0, Status: TimingClock}, msgs[1])
	assert.Equal(Event{Tick: 0, Status: NoteOn, Channel: 0, Data: [2]uint8{62, 100}}, msgs[2])
}

func TestScanMeta(t *testing.T) {
	data := payload(
		[]byte{0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20},
		[]byte{0x00, 0xFF, 0x58, 0x04, 0x06, 0x03, 0x24, 0x08},
		[]byte{0x00, 0xFF, 0x59, 0x02, 0xFD, 0x00},
		[]byte{0x00, 0xFF, 0x03, 0x05, 'p', 'i', 'a', 'n', 'o'},
		[]byte{0x00, 0xFF, 0x2F, 0x00},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(5, len(msgs))

	tempo := msgs[0].(Meta)
	us, ok := tempo.Tempo()
	assert.True(ok)
	assert.Equal(uint32(500000), us)

	num, den, ok := msgs[1].(Meta).TimeSignature()
	assert.True(ok)
	assert.Equal(uint8(6), num)
	assert.Equal(uint8(8), den)

	sf, minor, ok := msgs[2].(Meta).KeySignature()
	assert.True(ok)
	assert.Equal(int8(-3), sf)
	assert.False(minor)

	name := msgs[3].(Meta)
	assert.Equal(MetaTrackName, name.Type)
	assert.Equal("piano", name.Text())

	assert.Equal(MetaEndOfTrack, msgs[4].(Meta).Type)
}

func TestScanMetaShortPayloads(t *testing.T) {
	data := payload(
		[]byte{0x00, 0xFF, 0x51, 0x01, 0x07},
		[]byte{0x00, 0xFF, 0x58, 0x01, 0x04},
		[]byte{0x00, 0xFF, 0x59, 0x00},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(3, len(msgs))

	_, ok := msgs[0].(Meta).Tempo()
	assert.False(ok)
	_, _, ok = msgs[1].(Meta).TimeSignature()
	assert.False(ok)
	_, _, ok = msgs[2].(Meta).KeySignature()
	assert.False(ok)
}

func TestScanSysEx(t *testing.T) {
	data := payload(
		[]byte{0x00, 0xF0, 0x04, 0x7E, 0x01, 0x02, 0xF7},
		[]byte{0x00, 0x90, 60, 100},
	)
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(2, len(msgs))
	sys := msgs[0].(SysEx)
	assert.Equal([]byte{0x7E, 0x01, 0x02, 0xF7}, sys.Data)
}

func TestScanSysExUnterminated(t *testing.T) {
	data := payload([]byte{0x00, 0xF0, 0x03, 0x7E, 0x01, 0x02})
	msgs, err := drain(t, data)

	assert := assert.New(t)
	assert.ErrorIs(err, ErrUnterminatedSysEx)
	assert.Empty(msgs)
}

func TestScanRunningStatusWithoutPrior(t *testing.T) {
	_, err := drain(t, []byte{0x00, 60, 100})
	assert.ErrorIs(t, err, ErrRunningStatus)
}

func TestScanUnknownStatus(t *testing.T) {
	_, err := drain(t, []byte{0x00, 0xF4})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestScanTruncated(t *testing.T) {
	cases := map[string][]byte{
		"mid-event":        {0x00, 0x90, 60},
		"status missing":   {0x00},
		"delta unfinished": {0x81},
		"meta payload":     {0x00, 0xFF, 0x51, 0x03, 0x07},
		"sysex payload":    {0x00, 0xF0, 0x10, 0x01},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := drain(t, data)
			assert.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestScanEmptyPayload(t *testing.T) {
	msgs, err := drain(t, nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(msgs)
}

func TestScanStopsAfterError(t *testing.T) {
	sc := NewTrackScanner([]byte{0x00, 60, 100})
	assert := assert.New(t)
	assert.False(sc.Scan())
	assert.False(sc.Scan())
	assert.ErrorIs(sc.Err(), ErrRunningStatus)
}
