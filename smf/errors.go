package smf

import "errors"

var (
	// ErrNoHeader means the buffer doesn't start with an MThd chunk.
	ErrNoHeader = errors.New("smf: missing MThd header")

	// ErrUnsupportedFormat means the header format field isn't 0, 1 or 2.
	ErrUnsupportedFormat = errors.New("smf: unsupported format")

	// ErrTruncated means a chunk or message ran past the end of the buffer.
	ErrTruncated = errors.New("smf: truncated data")

	// ErrSMPTETiming means the division field selects SMPTE frame timing,
	// which this decoder doesn't handle. Reported distinctly from
	// ErrTruncated/ErrNoHeader so callers can message it specifically.
	ErrSMPTETiming = errors.New("smf: SMPTE time division not supported")

	// ErrRunningStatus means a data byte appeared before any status byte
	// established running status.
	ErrRunningStatus = errors.New("smf: running status with no prior status byte")

	// ErrUnterminatedSysEx means a sysex payload didn't end with 0xF7.
	ErrUnterminatedSysEx = errors.New("smf: sysex not terminated with 0xF7")

	// ErrUnknownStatus means a status byte outside every recognized range.
	ErrUnknownStatus = errors.New("smf: status byte not implemented")
)
