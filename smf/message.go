package smf

import "fmt"

// EventStatus is the class of a channel voice or system message, i.e.
// the status byte with the channel nibble zeroed for channel messages.
type EventStatus uint8

const (
	NoteOff           EventStatus = 0x80
	NoteOn            EventStatus = 0x90
	PolyAftertouch    EventStatus = 0xA0
	ControlChange     EventStatus = 0xB0
	ProgramChange     EventStatus = 0xC0
	ChannelAftertouch EventStatus = 0xD0
	PitchBend         EventStatus = 0xE0

	SongPosition  EventStatus = 0xF2
	SongSelect    EventStatus = 0xF3
	TuneRequest   EventStatus = 0xF6
	TimingClock   EventStatus = 0xF8
	StartSeq      EventStatus = 0xFA
	ContinueSeq   EventStatus = 0xFB
	StopSeq       EventStatus = 0xFC
	ActiveSensing EventStatus = 0xFE
)

func (s EventStatus) String() string {
	switch s {
	case NoteOff:
		return "NoteOff"
	case NoteOn:
		return "NoteOn"
	case PolyAftertouch:
		return "PolyAftertouch"
	case ControlChange:
		return "ControlChange"
	case ProgramChange:
		return "ProgramChange"
	case ChannelAftertouch:
		return "ChannelAftertouch"
	case PitchBend:
		return "PitchBend"
	case SongPosition:
		return "SongPosition"
	case SongSelect:
		return "SongSelect"
	case TuneRequest:
		return "TuneRequest"
	case TimingClock:
		return "TimingClock"
	case StartSeq:
		return "StartSequence"
	case ContinueSeq:
		return "ContinueSequence"
	case StopSeq:
		return "StopSequence"
	case ActiveSensing:
		return "ActiveSensing"
	}
	return fmt.Sprintf("EventStatus(0x%02X)", uint8(s))
}

// statusLen returns the status class and total message length (status
// byte included) for a status byte. Sysex (0xF0/0xF7) and meta (0xFF)
// have variable lengths and are framed by the scanner itself, so they
// never reach here.
func statusLen(status byte) (EventStatus, int, error) {
	switch {
	case status >= 0x80 && status <= 0x8F:
		return NoteOff, 3, nil
	case status <= 0x9F:
		return NoteOn, 3, nil
	case status <= 0xAF:
		return PolyAftertouch, 3, nil
	case status <= 0xBF:
		return ControlChange, 3, nil
	case status <= 0xCF:
		return ProgramChange, 2, nil
	case status <= 0xDF:
		return ChannelAftertouch, 2, nil
	case status <= 0xEF:
		return PitchBend, 3, nil
	case status == 0xF2:
		return SongPosition, 3, nil
	case status == 0xF3:
		return SongSelect, 2, nil
	case status == 0xF6:
		return TuneRequest, 1, nil
	case status == 0xF8:
		return TimingClock, 1, nil
	case status == 0xFA:
		return StartSeq, 1, nil
	case status == 0xFB:
		return ContinueSeq, 1, nil
	case status == 0xFC:
		return StopSeq, 1, nil
	case status == 0xFE:
		return ActiveSensing, 1, nil
	}
	return 0, 0, fmt.Errorf("%w: 0x%02X", ErrUnknownStatus, status)
}

// MetaType is the type code byte of a meta event.
type MetaType uint8

const (
	MetaSequenceNumber MetaType = 0x00
	MetaText           MetaType = 0x01
	MetaCopyright      MetaType = 0x02
	MetaTrackName      MetaType = 0x03
	MetaInstrument     MetaType = 0x04
	MetaLyric          MetaType = 0x05
	MetaMarker         MetaType = 0x06
	MetaCuePoint       MetaType = 0x07
	MetaChannelPrefix  MetaType = 0x20
	MetaEndOfTrack     MetaType = 0x2F
	MetaSetTempo       MetaType = 0x51
	MetaSMPTEOffset    MetaType = 0x54
	MetaTimeSignature  MetaType = 0x58
	MetaKeySignature   MetaType = 0x59
	MetaSequencerData  MetaType = 0x7F
)

// Message is one decoded track message, tagged with its absolute tick
// time. The three concrete kinds are Event (channel voice/mode and
// system common), Meta and SysEx; consumers type-switch over them.
type Message interface {
	Time() uint32
	message()
}

// Event is a channel voice/mode or system common message. Data holds up
// to two data bytes; how many are meaningful follows from Status.
type Event struct {
	Tick    uint32
	Status  EventStatus
	Channel uint8
	Data    [2]uint8
}

func (e Event) Time() uint32 { return e.Tick }
func (e Event) message()     {}

// Key returns the note number of a NoteOn/NoteOff/PolyAftertouch event.
func (e Event) Key() uint8 { return e.Data[0] }

// Velocity returns the velocity of a NoteOn/NoteOff/PolyAftertouch event.
func (e Event) Velocity() uint8 { return e.Data[1] }

// Controller and Value decompose a ControlChange event.
func (e Event) Controller() uint8 { return e.Data[0] }
func (e Event) Value() uint8      { return e.Data[1] }

// Program returns the patch number of a ProgramChange event.
func (e Event) Program() uint8 { return e.Data[0] }

// Meta is an SMF meta event; Data is the payload after the VLQ length.
type Meta struct {
	Tick uint32
	Type MetaType
	Data []byte
}

func (m Meta) Time() uint32 { return m.Tick }
func (m Meta) message()     {}

// Tempo returns the microseconds-per-quarter value of a SetTempo meta,
// or ok=false when the payload is too short to carry one.
func (m Meta) Tempo() (uint32, bool) {
	if m.Type != MetaSetTempo || len(m.Data) < 3 {
		return 0, false
	}
	return uint32(m.Data[0])<<16 | uint32(m.Data[1])<<8 | uint32(m.Data[2]), true
}

// TimeSignature returns numerator and denominator, the denominator
// decoded from its power-of-two encoding.
func (m Meta) TimeSignature() (uint8, uint8, bool) {
	if m.Type != MetaTimeSignature || len(m.Data) < 2 {
		return 0, 0, false
	}
	return m.Data[0], 1 << m.Data[1], true
}

// KeySignature returns the signed sharps/flats count and the minor flag.
func (m Meta) KeySignature() (int8, bool, bool) {
	if m.Type != MetaKeySignature || len(m.Data) < 2 {
		return 0, false, false
	}
	return int8(m.Data[0]), m.Data[1] != 0, true
}

// Text returns the payload as a string, for the text-carrying metas.
func (m Meta) Text() string { return string(m.Data) }

// SysEx is a system-exclusive run (0xF0 start or 0xF7 continuation).
// The content is framing-only here: it is carried but not interpreted.
type SysEx struct {
	Tick uint32
	Data []byte
}

func (s SysEx) Time() uint32 { return s.Tick }
func (s SysEx) message()     {}
