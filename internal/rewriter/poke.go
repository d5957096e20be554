package rewriter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/retroenv/sidgoconv/internal/basic"
)

// Valid SID register offset range, offsets outside it address no
// register on the chip.
const (
	registerMin = 0
	registerMax = 24
)

// rewritePoke translates a `POKE <addr>,<val>` statement that targets
// the SID register range into an OUT statement pair: the register
// offset is written to the register select port, the value to the data
// port. POKEs to any other address and malformed POKE statements are
// not matched and pass through untouched.
func (r *Rewriter) rewritePoke(statement string) ([]string, bool) {
	rest, ok := matchKeyword(strings.TrimSpace(statement), "POKE")
	if !ok {
		return nil, false
	}

	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, false
	}
	addr := strings.TrimSpace(rest[:comma])
	value := strings.TrimSpace(rest[comma+1:])
	if addr == "" || value == "" {
		return nil, false
	}

	offset, ok := r.matchSIDAddress(addr)
	if !ok {
		return nil, false
	}

	var warning string
	if r.opts.WarnOutOfRange {
		// Only literal offsets can be range checked, expressions are
		// silently skipped.
		if n, err := strconv.Atoi(offset); err == nil && (n < registerMin || n > registerMax) {
			warning = fmt.Sprintf(" : REM WARN: SID reg %d out of %d-%d", n, registerMin, registerMax)
		}
	}

	return []string{
		"OUT REG," + offset,
		"OUT DAT," + value + warning,
	}, true
}

// matchSIDAddress matches an address expression denoting the SID base
// plus an optional offset. Whitespace inside the expression is ignored
// for matching. Recognized forms in priority order: `54272+<rest>`,
// `54272`, `<alias>+<rest>` and `<alias>`, where the alias must be the
// entire leading variable name followed by end of string or a plus.
func (r *Rewriter) matchSIDAddress(addr string) (string, bool) {
	stripped := stripWhitespace(addr)

	switch {
	case strings.HasPrefix(stripped, sidBase+"+"):
		return stripped[len(sidBase)+1:], true
	case stripped == sidBase:
		return "0", true
	}

	name, rest, ok := basic.ScanName(stripped)
	if !ok || !r.aliases.Contains(name) {
		return "", false
	}
	switch {
	case rest == "":
		return "0", true
	case rest[0] == '+' && len(rest) > 1:
		return rest[1:], true
	}
	return "", false
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
