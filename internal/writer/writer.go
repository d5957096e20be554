// Package writer serializes the converted program.
package writer

import (
	"fmt"
	"io"
)

// Writer writes program lines to an output stream.
type Writer struct {
	writer io.Writer
}

// New creates a new program writer.
func New(w io.Writer) *Writer {
	return &Writer{
		writer: w,
	}
}

// Write writes all lines, each terminated with a newline, so the
// output always ends with a trailing newline.
func (w *Writer) Write(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
