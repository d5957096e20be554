// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/sidgoconv/internal/options"
)

// ParseFlags parses command line flags and returns program and converter options
func ParseFlags() (options.Program, options.Converter, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	convOpts := options.NewConverter()
	scaleVars := readOptionFlags(flags, &opts, &convOpts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) < 2 {
		return opts, convOpts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, convOpts, err
	}

	opts.Input = args[0]
	opts.Output = args[1]
	convOpts.ScaleVars = options.ParseScaleVars(*scaleVars)

	if err := normalizeOptions(&convOpts); err != nil {
		return opts, convOpts, err
	}

	return opts, convOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: sidgoconv [options] <input.bas> <output.bas>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 1 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the file arguments, please pass flags before the input and output files", arg),
			}
		}
	}
	if len(args) > 2 {
		return &UsageError{
			msg: fmt.Sprintf("unexpected extra argument: %s", args[2]),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(convOpts *options.Converter) error {
	convOpts.ScreenProfile = strings.ToLower(convOpts.ScreenProfile)

	validProfiles := []string{"ansi", "none"}
	valid := false
	for _, profile := range validProfiles {
		if convOpts.ScreenProfile == profile {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported screen profile: %s. Valid options: %s",
			convOpts.ScreenProfile, strings.Join(validProfiles, ", "))
	}

	if convOpts.ScaleFactor < 0 {
		return fmt.Errorf("scale factor must not be negative: %d", convOpts.ScaleFactor)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, convOpts *options.Converter) *string {
	flags.IntVar(&convOpts.RegPort, "reg", options.DefaultRegPort, "SID emulation register select port")
	flags.IntVar(&convOpts.DatPort, "dat", options.DefaultDatPort, "SID emulation data port")
	flags.BoolVar(&convOpts.WarnOutOfRange, "warn-out-of-range", false, "append a REM warning when a register offset is outside 0-24")
	flags.IntVar(&convOpts.ScaleFactor, "scale-for", 0, "scale simple FOR var=1 TO N delay loops by this factor (0 disables)")
	scaleVars := flags.String("scale-for-vars", options.DefaultScaleVars, "comma-separated variable names for delay loop scaling")
	flags.StringVar(&convOpts.ScreenProfile, "screen-profile", "ansi", "map C64 PETSCII CHR$() controls to terminal sequences (ansi/none)")
	flags.BoolVar(&convOpts.MapGetToInkey, "map-get-to-inkey", false, "replace GET X$ with X$=INKEY$ for keypress handling")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	return scaleVars
}
