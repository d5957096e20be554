// Package converter assembles the converted program using two passes
// over the input: the first pass parses all lines and collects the SID
// base address aliases, the second pass rewrites every numbered line
// statement by statement. Running the converter on its own output is
// unsupported, a second run would duplicate the header line.
package converter

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/sidgoconv/internal/basic"
	"github.com/retroenv/sidgoconv/internal/options"
	"github.com/retroenv/sidgoconv/internal/rewriter"
)

const (
	// headerBaseVar is assigned 0 in the synthesized header so programs
	// consulting the base variable stay consistent with the zero based
	// register offset convention.
	headerBaseVar = "B"

	// headerNumberGap is subtracted from the first numbered line to
	// place the header, floored at line 0.
	headerNumberGap = 5

	// headerFallbackNumber numbers the header when no input line
	// carries a line number.
	headerFallbackNumber = 5
)

// Converter converts a C64 BASIC program to RC2014 MS BASIC.
type Converter struct {
	logger *log.Logger
	opts   options.Converter
}

// New creates a new program converter.
func New(logger *log.Logger, opts options.Converter) *Converter {
	return &Converter{
		logger: logger,
		opts:   opts,
	}
}

// Convert converts the raw input lines and returns the output lines.
// Unnumbered lines pass through untouched in their original relative
// order, the synthesized header is always the first output line.
func (c *Converter) Convert(rawLines []string) []string {
	lines, aliases, first := c.scanProgram(rawLines)
	rw := rewriter.New(c.opts, aliases)

	output := make([]string, 0, len(lines)+1)
	output = append(output, c.headerLine(first))

	for _, line := range lines {
		if !line.Numbered {
			output = append(output, line.Body)
			continue
		}
		line.Body = c.convertBody(rw, aliases, line.Body)
		output = append(output, line.String())
	}
	return output
}

// scanProgram parses all raw lines and collects the base address
// aliases, making forward references visible to the rewrite pass.
func (c *Converter) scanProgram(rawLines []string) ([]basic.Line, rewriter.Aliases, *int) {
	lines := make([]basic.Line, 0, len(rawLines))
	aliases := rewriter.NewAliases()
	var first *int

	for _, raw := range rawLines {
		line := basic.ParseLine(raw)
		lines = append(lines, line)
		if !line.Numbered {
			continue
		}
		if first == nil {
			number := line.Number
			first = &number
		}
		for _, statement := range basic.SplitStatements(line.Body) {
			if name, ok := rewriter.MatchBaseAssign(statement); ok {
				aliases.Add(name)
				c.logger.Debug("Tracking SID base alias",
					log.String("name", strings.ToUpper(name)),
					log.Int("line", line.Number))
			}
		}
	}
	return lines, aliases, first
}

// convertBody runs every statement of a line body through the rewrite
// chain and then applies a distinct post step: an assignment of a known
// alias is rewritten to assign 0 instead of the SID base address.
func (c *Converter) convertBody(rw *rewriter.Rewriter, aliases rewriter.Aliases, body string) string {
	var rewritten []string
	for _, statement := range basic.SplitStatements(body) {
		rewritten = append(rewritten, rw.RewriteStatement(statement)...)
	}
	newBody := basic.JoinStatements(rewritten)

	statements := basic.SplitStatements(newBody)
	replaced := false
	for i, statement := range statements {
		if name, ok := rewriter.MatchBaseAssign(statement); ok && aliases.Contains(name) {
			statements[i] = strings.ToUpper(name) + "=0"
			replaced = true
		}
	}
	if replaced {
		newBody = basic.JoinStatements(statements)
	}
	return newBody
}

// headerLine synthesizes the header setting the base variable to 0 and
// defining the register select and data ports.
func (c *Converter) headerLine(firstNumber *int) string {
	number := headerFallbackNumber
	if firstNumber != nil {
		number = max(0, *firstNumber-headerNumberGap)
	}
	return fmt.Sprintf("%d %s=0:REG=%d:DAT=%d", number, headerBaseVar, c.opts.RegPort, c.opts.DatPort)
}
