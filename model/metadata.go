package model

// MidiMetadata is catalog information about a source file, keyed by
// filename in the catalog table. All fields are optional.
type MidiMetadata struct {
	Artist  string `json:"artist"`
	Title   string `json:"title"`
	Release string `json:"release"`
	Year    uint   `json:"year"`
}

// FileNumToMidiPath numbers a set of midi paths for reports/exports.
type FileNumToMidiPath = map[uint32]string
