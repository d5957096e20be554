package rewriter

import (
	"strings"

	"github.com/retroenv/sidgoconv/internal/basic"
)

// rewriteKeyRead replaces a whole `GET <var>[$]` statement with a
// `<VAR>$=INKEY$` assignment, forcing the variable to string type. MS
// BASIC has no GET for keyboard polling, INKEY$ is the equivalent. Any
// other form of GET is left untouched.
func (r *Rewriter) rewriteKeyRead(statement string) (string, bool) {
	if !r.opts.MapGetToInkey {
		return "", false
	}

	rest, ok := matchKeyword(strings.TrimSpace(statement), "GET")
	if !ok {
		return "", false
	}
	name, rest, ok := basic.ScanName(rest)
	if !ok {
		return "", false
	}
	rest = strings.TrimPrefix(rest, "$")
	if strings.TrimSpace(rest) != "" {
		return "", false
	}

	return strings.ToUpper(name) + "$=INKEY$", true
}
