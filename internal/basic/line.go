// Package basic implements line and statement handling for line-numbered
// BASIC program text.
package basic

import (
	"strconv"
	"strings"
)

// Line is a single line of a BASIC program. A numbered line carries an
// integer line number and a body; an unnumbered line is opaque
// passthrough text kept in Body.
type Line struct {
	Number   int
	Body     string
	Numbered bool
}

// ParseLine parses a raw text line. Leading whitespace before the line
// number is tolerated, the body is trimmed. Lines without a leading
// number are kept as-is with trailing whitespace removed.
func ParseLine(raw string) Line {
	s := strings.TrimLeft(raw, " \t")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 {
		if number, err := strconv.Atoi(s[:i]); err == nil {
			return Line{
				Number:   number,
				Body:     strings.TrimSpace(s[i:]),
				Numbered: true,
			}
		}
	}
	return Line{Body: strings.TrimRight(raw, " \t")}
}

// String serializes the line back to program text. A numbered line with
// an empty body serializes as the bare line number.
func (l Line) String() string {
	if !l.Numbered {
		return l.Body
	}
	if strings.TrimSpace(l.Body) == "" {
		return strconv.Itoa(l.Number)
	}
	return strconv.Itoa(l.Number) + " " + l.Body
}
