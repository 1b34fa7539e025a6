package smf

import "fmt"

// TrackScanner is a resumable cursor over one MTrk payload. It produces
// one fully-resolved message per Scan call, expanding running status and
// accumulating delta times into absolute ticks, in the style of
// bufio.Scanner:
//
//	sc := smf.NewTrackScanner(payload)
//	for sc.Scan() {
//		msg := sc.Msg()
//		...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// A scanner is single-pass and not restartable. Errors are fatal: once
// Err is non-nil the track is considered corrupt and Scan keeps
// returning false (SMF has no reliable resynchronization point).
type TrackScanner struct {
	data []byte
	off  int
	tick uint32

	// running status: last channel-voice status byte seen and the total
	// length (status included) of the message it implies. Zero status
	// means none established yet.
	runStatus byte
	runLen    int

	msg Message
	err error
}

func NewTrackScanner(payload []byte) *TrackScanner {
	return &TrackScanner{data: payload}
}

// Scan advances to the next message. It returns false at the end of the
// payload or on the first malformed byte run; the two cases are told
// apart by Err.
func (s *TrackScanner) Scan() bool {
	if s.err != nil || s.off >= len(s.data) {
		return false
	}

	n, delta := ReadVarLen(s.data[s.off:])
	if n == 0 {
		s.err = fmt.Errorf("%w: delta time at offset %d", ErrTruncated, s.off)
		return false
	}
	s.off += n
	s.tick += delta

	if s.off >= len(s.data) {
		s.err = fmt.Errorf("%w: status byte at offset %d", ErrTruncated, s.off)
		return false
	}

	status := s.data[s.off]
	switch {
	case status < 0x80:
		return s.scanRunning()
	case status <= 0xEF:
		return s.scanChannel(status)
	case status == 0xF0 || status == 0xF7:
		return s.scanSysEx()
	case status == 0xFF:
		return s.scanMeta()
	default:
		return s.scanSystem(status)
	}
}

// Msg returns the message produced by the last successful Scan.
func (s *TrackScanner) Msg() Message { return s.msg }

func (s *TrackScanner) Err() error { return s.err }

// scanRunning handles a data byte in status position: the previous
// channel status is implied and the message is one byte shorter than
// the run it reuses.
func (s *TrackScanner) scanRunning() bool {
	if s.runStatus == 0 {
		s.err = fmt.Errorf("%w: data byte 0x%02X at offset %d",
			ErrRunningStatus, s.data[s.off], s.off)
		return false
	}
	dataLen := s.runLen - 1
	if s.off+dataLen > len(s.data) {
		s.err = fmt.Errorf("%w: running-status message at offset %d", ErrTruncated, s.off)
		return false
	}
	cls, _, _ := statusLen(s.runStatus)
	s.msg = makeEvent(s.tick, cls, s.runStatus&0x0F, s.data[s.off:s.off+dataLen])
	s.off += dataLen
	return true
}

// scanChannel handles a channel voice/mode status byte, which is the
// only kind that establishes running status.
func (s *TrackScanner) scanChannel(status byte) bool {
	cls, length, _ := statusLen(status)
	if s.off+length > len(s.data) {
		s.err = fmt.Errorf("%w: %v at offset %d", ErrTruncated, cls, s.off)
		return false
	}
	s.runStatus = status
	s.runLen = length
	s.msg = makeEvent(s.tick, cls, status&0x0F, s.data[s.off+1:s.off+length])
	s.off += length
	return true
}

// scanSystem handles system common and real-time bytes in the 0xF1-0xFE
// range. These have fixed lengths and must not touch running status, or
// a later running-status message would be sized off the wrong event.
func (s *TrackScanner) scanSystem(status byte) bool {
	cls, length, err := statusLen(status)
	if err != nil {
		s.err = err
		return false
	}
	if s.off+length > len(s.data) {
		s.err = fmt.Errorf("%w: %v at offset %d", ErrTruncated, cls, s.off)
		return false
	}
	s.msg = makeEvent(s.tick, cls, 0, s.data[s.off+1:s.off+length])
	s.off += length
	return true
}

func (s *TrackScanner) scanSysEx() bool {
	n, length := ReadVarLen(s.data[s.off+1:])
	if n == 0 {
		s.err = fmt.Errorf("%w: sysex length at offset %d", ErrTruncated, s.off)
		return false
	}
	total := 1 + n + int(length)
	if s.off+total > len(s.data) {
		s.err = fmt.Errorf("%w: sysex payload at offset %d", ErrTruncated, s.off)
		return false
	}
	if length == 0 || s.data[s.off+total-1] != 0xF7 {
		s.err = fmt.Errorf("%w: at offset %d", ErrUnterminatedSysEx, s.off)
		return false
	}
	s.msg = SysEx{Tick: s.tick, Data: s.data[s.off+1+n : s.off+total]}
	s.off += total
	return true
}

func (s *TrackScanner) scanMeta() bool {
	if s.off+2 > len(s.data) {
		s.err = fmt.Errorf("%w: meta type at offset %d", ErrTruncated, s.off)
		return false
	}
	n, length := ReadVarLen(s.data[s.off+2:])
	if n == 0 {
		s.err = fmt.Errorf("%w: meta length at offset %d", ErrTruncated, s.off)
		return false
	}
	total := 2 + n + int(length)
	if s.off+total > len(s.data) {
		s.err = fmt.Errorf("%w: meta payload at offset %d", ErrTruncated, s.off)
		return false
	}
	s.msg = Meta{
		Tick: s.tick,
		Type: MetaType(s.data[s.off+1]),
		Data: s.data[s.off+2+n : s.off+total],
	}
	s.off += total
	return true
}

func makeEvent(tick uint32, cls EventStatus, channel uint8, data []byte) Event {
	e := Event{Tick: tick, Status: cls, Channel: channel}
	copy(e.Data[:], data)
	return e
}
