package rewriter

import (
	"strconv"
	"strings"
)

const ansiEscape = "\x1b"

// ansiControlCodes maps PETSCII control codes to ANSI terminal escape
// sequences, best effort for common cursor movement, screen clearing
// and a few colors.
var ansiControlCodes = map[int]string{
	147: ansiEscape + "[2J" + ansiEscape + "[H", // clear screen + home
	19:  ansiEscape + "[H",                      // home cursor
	17:  ansiEscape + "[B",                      // cursor down
	145: ansiEscape + "[A",                      // cursor up
	157: ansiEscape + "[D",                      // cursor left
	29:  ansiEscape + "[C",                      // cursor right
	5:   ansiEscape + "[37m",                    // white
	28:  ansiEscape + "[31m",                    // red
	30:  ansiEscape + "[32m",                    // green
	31:  ansiEscape + "[34m",                    // blue
	144: ansiEscape + "[30m",                    // black
	18:  ansiEscape + "[0m",                     // reverse off, approximated as reset
}

// controlCodes returns the substitution table for the given screen
// profile, or nil when the profile disables the mapping.
func controlCodes(profile string) map[int]string {
	if profile == "ansi" {
		return ansiControlCodes
	}
	return nil
}

// mapScreenCodes replaces every `CHR$(<int>)` call whose code is in the
// selected profile table with a quoted string literal holding the
// terminal escape sequence. Unmapped codes and non-literal arguments
// pass through verbatim.
func (r *Rewriter) mapScreenCodes(statement string) string {
	table := controlCodes(r.opts.ScreenProfile)
	if table == nil {
		return statement
	}

	var out strings.Builder
	i := 0
	for i < len(statement) {
		if replacement, length, ok := matchChrCall(statement[i:], table); ok {
			out.WriteString(replacement)
			i += length
			continue
		}
		out.WriteByte(statement[i])
		i++
	}
	return out.String()
}

// matchChrCall matches `CHR$(<digits>)` at the start of s, whitespace
// tolerated around the digits, and looks the code up in the table. It
// returns the quoted replacement and the length of the matched call.
func matchChrCall(s string, table map[int]string) (string, int, bool) {
	const call = "CHR$("
	if len(s) < len(call) || !strings.EqualFold(s[:len(call)], call) {
		return "", 0, false
	}

	i := len(call)
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return "", 0, false
	}
	digits := s[start:i]
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i >= len(s) || s[i] != ')' {
		return "", 0, false
	}

	code, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, false
	}
	sequence, ok := table[code]
	if !ok {
		return "", 0, false
	}
	return `"` + sequence + `"`, i + 1, true
}
