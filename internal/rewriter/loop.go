package rewriter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/sidgoconv/internal/basic"
)

// scaleLoopBound multiplies the bound of a simple timing loop of the
// exact form `FOR <var> = 1 TO <int>` by the configured factor. Only
// loops over allowlisted variables are scaled and only this form is
// recognized, a different start value, a step clause or a non-literal
// bound leaves the statement untouched. The matching NEXT statement is
// not inspected.
func (r *Rewriter) scaleLoopBound(statement string) string {
	if r.opts.ScaleFactor <= 1 {
		return statement
	}

	rest, ok := matchKeyword(strings.TrimSpace(statement), "FOR")
	if !ok {
		return statement
	}
	name, rest, ok := basic.ScanName(rest)
	if !ok {
		return statement
	}

	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "=") {
		return statement
	}
	rest = strings.TrimLeft(rest[1:], " \t")
	if !strings.HasPrefix(rest, "1") {
		return statement
	}

	// whitespace is required between the start value and TO, but not
	// between TO and the bound
	after := rest[1:]
	rest = strings.TrimLeft(after, " \t")
	if len(rest) == len(after) || len(rest) < 2 || !strings.EqualFold(rest[:2], "TO") {
		return statement
	}
	bound, ok := parseBound(strings.TrimLeft(rest[2:], " \t"))
	if !ok {
		return statement
	}

	if _, eligible := r.opts.ScaleVars[strings.ToUpper(name)]; !eligible {
		return statement
	}

	return fmt.Sprintf("FOR %s=1 TO %d", name, bound*r.opts.ScaleFactor)
}

// parseBound matches a bare integer literal followed only by optional
// trailing whitespace.
func parseBound(s string) (int, bool) {
	s = strings.TrimRight(s, " \t")
	if s == "" {
		return 0, false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	bound, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return bound, true
}
