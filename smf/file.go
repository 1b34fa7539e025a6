package smf

import (
	"encoding/binary"
	"fmt"
)

var (
	headerTag = [4]byte{'M', 'T', 'h', 'd'}
	trackTag  = [4]byte{'M', 'T', 'r', 'k'}
)

// Format is the SMF format field from the header chunk.
type Format uint16

const (
	SingleTrack Format = 0
	MultiTrack  Format = 1
	MultiSong   Format = 2
)

func (f Format) String() string {
	switch f {
	case SingleTrack:
		return "single-track"
	case MultiTrack:
		return "multi-track"
	case MultiSong:
		return "multi-song"
	}
	return fmt.Sprintf("Format(%d)", uint16(f))
}

// File is a chunk-level view of one SMF byte buffer: the parsed header
// fields plus the raw payload of each MTrk chunk, in file order. Track
// payloads are not decoded yet; feed them to a TrackScanner.
type File struct {
	Format    Format
	NumTracks uint16
	Division  uint16
	Tracks    [][]byte
}

// TicksPerQuarter returns the division as ticks per quarter note, or 0
// when the division selects SMPTE frame timing instead.
func (f *File) TicksPerQuarter() uint16 {
	if f.Division&0x8000 != 0 {
		return 0
	}
	return f.Division
}

// Parse splits a whole-file buffer into the header and its track chunk
// payloads. Chunks with unrecognized tags between the tracks are skipped
// by their declared length, which tolerates vendor chunks without
// failing the file. Scanning stops after NumTracks MTrk chunks; anything
// beyond them is ignored.
func Parse(buf []byte) (*File, error) {
	if len(buf) < 14 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(buf))
	}
	if [4]byte{buf[0], buf[1], buf[2], buf[3]} != headerTag {
		return nil, ErrNoHeader
	}
	headerLen := binary.BigEndian.Uint32(buf[4:8])
	if headerLen < 6 || int(8+headerLen) > len(buf) {
		return nil, fmt.Errorf("%w: MThd body", ErrTruncated)
	}

	f := &File{
		Format:    Format(binary.BigEndian.Uint16(buf[8:10])),
		NumTracks: binary.BigEndian.Uint16(buf[10:12]),
		Division:  binary.BigEndian.Uint16(buf[12:14]),
	}
	if f.Format > MultiSong {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, uint16(f.Format))
	}

	off := int(8 + headerLen)
	for uint16(len(f.Tracks)) < f.NumTracks {
		if off+8 > len(buf) {
			return nil, fmt.Errorf("%w: chunk header at offset %d", ErrTruncated, off)
		}
		tag := [4]byte{buf[off], buf[off+1], buf[off+2], buf[off+3]}
		length := int(binary.BigEndian.Uint32(buf[off+4 : off+8]))
		if off+8+length > len(buf) {
			return nil, fmt.Errorf("%w: chunk at offset %d declares %d bytes",
				ErrTruncated, off, length)
		}
		if tag == trackTag {
			f.Tracks = append(f.Tracks, buf[off+8:off+8+length])
		}
		off += 8 + length
	}
	return f, nil
}
