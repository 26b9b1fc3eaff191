package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, data string) *Document {
	t.Helper()

	doc, err := Parse([]byte(data))
	require.NoError(t, err)

	return doc
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		panelCount  int
	}{
		{
			name:       "empty panel list",
			input:      `{"panels": []}`,
			panelCount: 0,
		},
		{
			name:       "panels with extra keys",
			input:      `{"title": "x", "panels": [{"id": 1, "type": "row"}, {"id": 2}]}`,
			panelCount: 2,
		},
		{
			name:        "invalid json",
			input:       `{"panels": [`,
			expectError: true,
		},
		{
			name:        "missing panels",
			input:       `{"title": "x"}`,
			expectError: true,
		},
		{
			name:        "panels not an array",
			input:       `{"panels": {"id": 1}}`,
			expectError: true,
		},
		{
			name:        "panel not an object",
			input:       `{"panels": [1, 2]}`,
			expectError: true,
		},
		{
			name:        "document not an object",
			input:       `null`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformed)

				return
			}

			require.NoError(t, err)
			assert.Len(t, doc.Panels, tt.panelCount)
		})
	}
}

func TestBytesPreservesUnknownFields(t *testing.T) {
	doc := mustParse(t, `{
		"title": "Overview",
		"schemaVersion": 39,
		"refresh": "5s",
		"panels": [{"id": 7, "type": "stat", "custom": {"nested": [1, 2.5]}, "gridPos": {"h": 4, "w": 6, "x": 0, "y": 3}}]
	}`)

	data, err := doc.Bytes()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "Overview", again.Title())
	require.Len(t, again.Panels, 1)

	id, ok := again.Panels[0].ID()
	require.True(t, ok)
	assert.Equal(t, 7, id)

	assert.Contains(t, string(data), `"schemaVersion": 39`)
	assert.Contains(t, string(data), `2.5`)
	assert.Contains(t, string(data), `"refresh": "5s"`)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overview.json")

	original := []byte(`{"panels": [{"id": 1, "type": "row", "title": "A", "gridPos": {"h": 1, "w": 24, "x": 0, "y": 0}}]}`)
	require.NoError(t, os.WriteFile(path, original, 0600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, doc.Source())

	doc.Panels = append(doc.Panels, Panel{"id": 2, "type": "stat", "gridPos": GridPos{Y: 1, W: 6, H: 4}.Map()})
	require.NoError(t, doc.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, reloaded.Panels, 2)

	g, ok := reloaded.Panels[1].GridPos()
	require.True(t, ok)
	assert.Equal(t, GridPos{X: 0, Y: 1, W: 6, H: 4}, g)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPanelGridPos(t *testing.T) {
	tests := []struct {
		name     string
		panel    Panel
		expected GridPos
		ok       bool
	}{
		{
			name:     "full rectangle",
			panel:    Panel{"gridPos": map[string]any{"x": 1, "y": 2, "w": 3, "h": 4}},
			expected: GridPos{X: 1, Y: 2, W: 3, H: 4},
			ok:       true,
		},
		{
			name:     "row without height",
			panel:    Panel{"type": "row", "gridPos": map[string]any{"y": 10}},
			expected: GridPos{Y: 10, H: 1},
			ok:       true,
		},
		{
			name:     "row with zero height",
			panel:    Panel{"type": "row", "gridPos": map[string]any{"h": 0, "w": 24, "x": 0, "y": 10}},
			expected: GridPos{W: 24, Y: 10, H: 1},
			ok:       true,
		},
		{
			name:     "zero height panel stays zero",
			panel:    Panel{"type": "text", "gridPos": map[string]any{"h": 0, "y": 3}},
			expected: GridPos{Y: 3},
			ok:       true,
		},
		{
			name:  "missing grid position",
			panel: Panel{"type": "text"},
		},
		{
			name:  "missing y",
			panel: Panel{"gridPos": map[string]any{"x": 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := tt.panel.GridPos()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, g)
		})
	}
}
