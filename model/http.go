package model

// DecodeResponse is what the serve endpoint returns for one uploaded
// file: the decoded sequence plus catalog metadata when available.
type DecodeResponse struct {
	Id       string        `json:"id"`
	Filename string        `json:"filename,omitempty"`
	Sequence *Sequence     `json:"sequence"`
	Metadata *MidiMetadata `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
