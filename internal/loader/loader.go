// Package loader handles input program loading.
package loader

import (
	"fmt"
	"os"
	"strings"
)

// Loader reads BASIC program text files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the whole input file into memory and returns its lines.
// The file is read permissively: invalid UTF-8 bytes are dropped and
// CRLF and bare CR line endings are accepted. Only the file read
// itself can fail.
func (l *Loader) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	text := strings.ToValidUTF8(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return splitLines(text), nil
}

// splitLines splits text into lines, dropping the empty segment after a
// trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	return lines
}
