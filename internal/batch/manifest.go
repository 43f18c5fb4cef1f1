package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Image    string `json:"image"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	RenderMS int64  `json:"render_ms"`
}

// WriteManifest writes the successful results as JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:     r.Name,
			Source:   r.Source,
			Image:    r.Image,
			Width:    r.Width,
			Height:   r.Height,
			RenderMS: r.Duration.Milliseconds(),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest: %w", err)
	}
	return nil
}
