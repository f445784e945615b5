package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emncan/jolly-scraper/models"
)

// JSONWriter persists a run's ranked result set as a destination-keyed,
// pretty-printed UTF-8 JSON file. Turkish characters are written literally,
// not escaped.
type JSONWriter struct {
	dir string
}

// NewJSONWriter ensures the output directory exists and returns a writer
// rooted there.
func NewJSONWriter(dir string) (*JSONWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("json: create output dir: %w", err)
	}
	return &JSONWriter{dir: dir}, nil
}

// Path returns the output file path for a destination.
func (w *JSONWriter) Path(destination string) string {
	return filepath.Join(w.dir, destination+"_scored.json")
}

// Write truncates and rewrites the destination's result file. Each run
// rebuilds the artifact from scratch; nothing is merged with prior runs.
func (w *JSONWriter) Write(destination string, hotels []*models.ScoredHotel) (string, error) {
	if hotels == nil {
		hotels = []*models.ScoredHotel{}
	}

	path := w.Path(destination)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("json: create file %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(hotels); err != nil {
		return "", fmt.Errorf("json: encode results: %w", err)
	}

	return path, nil
}
