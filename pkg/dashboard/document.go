// Package dashboard loads, edits and persists Grafana dashboard documents.
// Only the top-level panel sequence is interpreted; every other key of the
// document round-trips untouched.
package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/moby/sys/atomicwriter"
)

var (
	// ErrAnchorNotFound is returned when no row panel carries the requested title.
	ErrAnchorNotFound = errors.New("anchor row not found")

	// ErrDuplicateID is returned when an insertion would introduce a panel ID
	// that is already in use.
	ErrDuplicateID = errors.New("duplicate panel id")

	// ErrMalformed is returned when the document does not have the expected shape.
	ErrMalformed = errors.New("malformed dashboard")
)

// defaultFileMode is used when saving a dashboard that does not exist yet.
const defaultFileMode = 0644

// Document is a decoded dashboard.
type Document struct {
	raw    map[string]any
	source []byte
	Panels []Panel
}

// Load reads and decodes the dashboard at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a dashboard from raw JSON. Numbers are kept as json.Number so
// integer fields are written back exactly as they were read.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformed)
	}

	list, ok := raw["panels"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing panels array", ErrMalformed)
	}

	panels := make([]Panel, 0, len(list))

	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: panel at index %d is not an object", ErrMalformed, i)
		}

		panels = append(panels, Panel(obj))
	}

	return &Document{raw: raw, source: data, Panels: panels}, nil
}

// Bytes encodes the document as indented JSON with a trailing newline.
func (d *Document) Bytes() ([]byte, error) {
	out := make(map[string]any, len(d.raw)+1)
	for k, v := range d.raw {
		out[k] = v
	}

	out["panels"] = d.Panels

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode dashboard: %w", err)
	}

	return append(data, '\n'), nil
}

// Save writes the document to path, replacing any existing file atomically.
// The file mode of an existing file is preserved.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if err := atomicwriter.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write dashboard: %w", err)
	}

	return nil
}

// Source returns the bytes the document was parsed from.
func (d *Document) Source() []byte {
	return d.source
}

// Title returns the dashboard title, if any.
func (d *Document) Title() string {
	title, _ := d.raw["title"].(string)

	return title
}
