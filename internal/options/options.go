// Package options contains the program options.
package options

import "strings"

// DefaultScaleVars is the comma-separated default allowlist of loop
// variables that are treated as timing loops when delay scaling is enabled.
const DefaultScaleVars = "T,W,DELAY,D"

// Default output port numbers of the SID emulation board.
const (
	DefaultRegPort = 212
	DefaultDatPort = 213
)

// Program options of the converter tool.
type Program struct {
	Input  string // input .bas file in C64 BASIC
	Output string // output .bas file in RC2014 MS BASIC

	Debug bool
	Quiet bool
}

// Converter defines options to control the conversion.
type Converter struct {
	RegPort int // register select port written into the header and OUT statements
	DatPort int // data port written into the header and OUT statements

	WarnOutOfRange bool // append a REM warning for literal offsets outside 0-24

	ScaleFactor int                 // delay loop bound multiplier, values <= 1 disable scaling
	ScaleVars   map[string]struct{} // uppercased loop variable names eligible for scaling

	ScreenProfile string // CHR$ control code mapping profile: ansi or none
	MapGetToInkey bool   // replace GET X$ with X$=INKEY$
}

// NewConverter returns a new options instance with default options.
func NewConverter() Converter {
	return Converter{
		RegPort:       DefaultRegPort,
		DatPort:       DefaultDatPort,
		ScaleVars:     ParseScaleVars(DefaultScaleVars),
		ScreenProfile: "ansi",
	}
}

// ParseScaleVars parses a comma-separated variable name list into a
// normalized uppercase set. Empty entries are skipped.
func ParseScaleVars(s string) map[string]struct{} {
	vars := map[string]struct{}{}
	for _, name := range strings.Split(s, ",") {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name != "" {
			vars[name] = struct{}{}
		}
	}
	return vars
}
