package model

// ChunkInfo describes one chunk encountered while scanning a container.
// Offset is the position of the chunk's FourCC within the file.
type ChunkInfo struct {
	FourCC string
	Length uint32
	Offset int64
}

// FileResult summarizes the outcome of processing one container file.
// Skipped holds files left untouched because they already existed and
// overwriting was not allowed.
type FileResult struct {
	Container string   `json:"container"`
	Processed bool     `json:"processed"`
	Saved     []string `json:"saved,omitempty"`
	Skipped   []string `json:"skipped,omitempty"`
}
