package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

// GetCatalogEndpoint returns the DynamoDB endpoint for catalog metadata
// lookups, or "" when no catalog is configured.
func GetCatalogEndpoint() string {
	return os.Getenv("CATALOG_DB")
}

// Channel 10 (0-based 9) carries percussion by General MIDI convention.
const DrumChannel = 9

const NumChannels = 16
const NumPitches = 128
