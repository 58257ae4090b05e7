package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cgarz/WSMExtract/model"
	"github.com/google/uuid"
)

// Filename is the name of the manifest written into the output root.
const Filename = "wsme-manifest.json"

// Manifest records the outcome of one extraction run.
type Manifest struct {
	RunID     string             `json:"runId"`
	CreatedAt time.Time          `json:"createdAt"`
	Sections  []string           `json:"sections"`
	Files     []model.FileResult `json:"files"`
}

// New starts a manifest for a run saving the given sections.
func New(sections []string) *Manifest {
	return &Manifest{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Sections:  sections,
	}
}

// Add appends one container's result.
func (m *Manifest) Add(res model.FileResult) {
	m.Files = append(m.Files, res)
}

// Write saves the manifest as indented JSON into dir and returns the path.
func (m *Manifest) Write(dir string) (string, error) {
	path := filepath.Join(dir, Filename)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
