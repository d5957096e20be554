// Package rewriter implements the statement level rewrite rules that
// translate C64 BASIC dialect constructs to their RC2014 MS BASIC
// equivalents.
package rewriter

import (
	"strings"

	"github.com/retroenv/sidgoconv/internal/options"
)

// Rewriter applies the statement rewrite chain. The alias set is
// computed once by the caller before any rewriting starts and is
// read-only afterwards.
type Rewriter struct {
	opts    options.Converter
	aliases Aliases
}

// New creates a new statement rewriter.
func New(opts options.Converter, aliases Aliases) *Rewriter {
	return &Rewriter{
		opts:    opts,
		aliases: aliases,
	}
}

// RewriteStatement runs a single statement through the rewrite chain:
// delay loop scaling transforms the statement in place, key read and
// POKE rewrites are terminal, every other statement gets the screen
// control code mapping applied. A POKE rewrite expands the statement
// into two OUT statements, all other rules keep a one to one mapping.
func (r *Rewriter) RewriteStatement(statement string) []string {
	statement = r.scaleLoopBound(statement)

	if replaced, ok := r.rewriteKeyRead(statement); ok {
		return []string{replaced}
	}
	if replaced, ok := r.rewritePoke(statement); ok {
		return replaced
	}
	return []string{r.mapScreenCodes(statement)}
}

// matchKeyword matches a case-insensitive keyword at the start of s
// that is followed by at least one whitespace character. It returns the
// remainder after the whitespace.
func matchKeyword(s, keyword string) (string, bool) {
	if len(s) <= len(keyword) || !strings.EqualFold(s[:len(keyword)], keyword) {
		return s, false
	}
	rest := s[len(keyword):]
	trimmed := strings.TrimLeft(rest, " \t")
	if len(trimmed) == len(rest) {
		return s, false
	}
	return trimmed, true
}
