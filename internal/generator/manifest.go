package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

const (
	manifestFileName    = ".questions-manifest.json"
	manifestFileVersion = 1
)

// buildManifest stores metadata about the last successful build so repeated
// runs can be audited and Clean knows what it wrote.
type buildManifest struct {
	Version     int                         `json:"version"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Documents   map[string]manifestDocument `json:"documents"`
}

type manifestDocument struct {
	Day        int       `json:"day"`
	Topic      string    `json:"topic"`
	Slug       string    `json:"slug"`
	Output     string    `json:"output"`
	Checksum   string    `json:"checksum"`
	RenderedAt time.Time `json:"rendered_at"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version:   manifestFileVersion,
		Documents: map[string]manifestDocument{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	if manifest.Documents == nil {
		manifest.Documents = map[string]manifestDocument{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("generator: marshal manifest: %w", err)
	}
	return data, nil
}

func (m *buildManifest) documentKey(day int) string {
	return "day-" + strconv.Itoa(day)
}

func (m *buildManifest) setDocument(doc manifestDocument) {
	if m == nil {
		return
	}
	m.Documents[m.documentKey(doc.Day)] = doc
}

func (m *buildManifest) outputs() []string {
	if m == nil {
		return nil
	}
	paths := make([]string, 0, len(m.Documents))
	for _, doc := range m.Documents {
		if doc.Output != "" {
			paths = append(paths, doc.Output)
		}
	}
	sort.Strings(paths)
	return paths
}
