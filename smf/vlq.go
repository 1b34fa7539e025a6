package smf

// ReadVarLen decodes a MIDI variable-length quantity from the front of
// data. MIDI VLQs carry 7 bits per byte, high bit set on every byte but
// the last, and never exceed 4 bytes. It returns the number of bytes
// consumed and the decoded value. If no terminating byte (high bit
// clear) appears within the first 4 available bytes, it returns (0, 0);
// callers near the end of a buffer can pass a short slice and treat a
// zero byte count as truncation.
func ReadVarLen(data []byte) (int, uint32) {
	var value uint32
	limit := len(data)
	if limit > 4 {
		limit = 4
	}
	for i := 0; i < limit; i++ {
		b := data[i]
		value = value<<7 | uint32(b&0x7f)
		if b&0x80 == 0 {
			return i + 1, value
		}
	}
	return 0, 0
}
