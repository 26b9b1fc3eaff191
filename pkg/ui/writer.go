package ui

import (
	"io"
)

// ConditionalWriter forwards writes to the underlying writer only while
// enabled. Disabled writes are dropped but still report success, so a logger
// pointed at it stays silent without erroring.
type ConditionalWriter struct {
	out     io.Writer
	enabled bool
}

// NewConditionalWriter creates a writer that only writes when enabled.
func NewConditionalWriter(out io.Writer, enabled bool) *ConditionalWriter {
	return &ConditionalWriter{out: out, enabled: enabled}
}

// Write implements io.Writer.
func (w *ConditionalWriter) Write(p []byte) (int, error) {
	if !w.enabled {
		return len(p), nil
	}

	return w.out.Write(p)
}

// SetEnabled toggles forwarding.
func (w *ConditionalWriter) SetEnabled(enabled bool) {
	w.enabled = enabled
}
