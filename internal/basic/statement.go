package basic

import "strings"

// Delimiter separates statements within a line body.
const Delimiter = ":"

// SplitStatements splits a line body into colon-separated statements
// using a linear scan. Each delimiter flushes the accumulated buffer as
// a trimmed statement, so consecutive delimiters yield empty internal
// statements; only an empty trailing segment is dropped. The scan has
// no string literal awareness, a delimiter inside a quoted string is
// treated as a statement separator.
func SplitStatements(body string) []string {
	var statements []string
	var buf strings.Builder

	for i := range len(body) {
		if body[i] == Delimiter[0] {
			statements = append(statements, strings.TrimSpace(buf.String()))
			buf.Reset()
			continue
		}
		buf.WriteByte(body[i])
	}

	if tail := strings.TrimSpace(buf.String()); tail != "" {
		statements = append(statements, tail)
	}
	return statements
}

// JoinStatements reassembles statements into a line body.
func JoinStatements(statements []string) string {
	return strings.Join(statements, Delimiter)
}

// ScanName matches a variable name at the start of s: the entire
// leading run of alphanumerics must be 1 or 2 characters long and start
// with a letter. The name is returned in its original case together
// with the remainder of the string.
func ScanName(s string) (name, rest string, ok bool) {
	i := 0
	for i < len(s) && isAlphanumeric(s[i]) {
		i++
	}
	if i < 1 || i > 2 || !isLetter(s[0]) {
		return "", s, false
	}
	return s[:i], s[i:], true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isAlphanumeric(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}
