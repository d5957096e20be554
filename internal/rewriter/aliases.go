package rewriter

import (
	"strings"

	"github.com/retroenv/sidgoconv/internal/basic"
)

// sidBase is the decimal literal of the SID register base address on the C64.
const sidBase = "54272"

// Aliases is the set of variable names known to have been assigned the
// SID base address anywhere in the program. An assignment anywhere
// makes the alias valid everywhere, including before the assignment
// appears in the program text. Names are stored uppercased.
type Aliases map[string]struct{}

// NewAliases creates an empty alias set.
func NewAliases() Aliases {
	return Aliases{}
}

// Add adds a variable name to the set.
func (a Aliases) Add(name string) {
	a[strings.ToUpper(name)] = struct{}{}
}

// Contains reports whether the name is a known base address alias.
func (a Aliases) Contains(name string) bool {
	_, ok := a[strings.ToUpper(name)]
	return ok
}

// MatchBaseAssign matches a statement of the form `[LET] <name> = 54272`
// with a case-insensitive optional LET keyword and arbitrary surrounding
// whitespace. The variable name is returned in its original case.
func MatchBaseAssign(statement string) (string, bool) {
	s := strings.TrimSpace(statement)
	if rest, ok := matchKeyword(s, "LET"); ok {
		if name, ok := matchBaseAssignTail(rest); ok {
			return name, true
		}
	}
	return matchBaseAssignTail(s)
}

func matchBaseAssignTail(s string) (string, bool) {
	name, rest, ok := basic.ScanName(s)
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	rest = strings.TrimLeft(rest[1:], " \t")
	if !strings.HasPrefix(rest, sidBase) {
		return "", false
	}
	if strings.TrimSpace(rest[len(sidBase):]) != "" {
		return "", false
	}
	return name, true
}
