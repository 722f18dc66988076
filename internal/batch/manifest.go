package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one exported level in manifest.json.
type ManifestEntry struct {
	Level     int    `json:"level"`
	Triangles int    `json:"triangles"`
	Vertices  int    `json:"vertices"`
	Format    string `json:"format"`
	File      string `json:"file"`
	Preview   string `json:"preview,omitempty"`
}

// WriteManifest writes the successful results as indented JSON to path.
func WriteManifest(path, format string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Level:     r.Level,
			Triangles: r.Triangles,
			Vertices:  r.Vertices,
			Format:    format,
			File:      r.File,
			Preview:   r.Preview,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
