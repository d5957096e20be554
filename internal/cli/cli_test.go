package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/sidgoconv/internal/options"
)

func parseWithArgs(t *testing.T, args ...string) (options.Program, options.Converter, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"sidgoconv"}, args...)
	return ParseFlags()
}

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, convOpts, err := parseWithArgs(t, "in.bas", "out.bas")
		assert.NoError(t, err)

		assert.Equal(t, "in.bas", opts.Input)
		assert.Equal(t, "out.bas", opts.Output)
		assert.Equal(t, options.DefaultRegPort, convOpts.RegPort)
		assert.Equal(t, options.DefaultDatPort, convOpts.DatPort)
		assert.Equal(t, "ansi", convOpts.ScreenProfile)
		assert.False(t, convOpts.WarnOutOfRange)
		assert.False(t, convOpts.MapGetToInkey)
		assert.Equal(t, 0, convOpts.ScaleFactor)

		_, ok := convOpts.ScaleVars["DELAY"]
		assert.True(t, ok)
	})

	t.Run("all converter flags", func(t *testing.T) {
		_, convOpts, err := parseWithArgs(t,
			"-reg", "100", "-dat", "101",
			"-warn-out-of-range",
			"-scale-for", "3", "-scale-for-vars", "t, w",
			"-screen-profile", "NONE",
			"-map-get-to-inkey",
			"in.bas", "out.bas")
		assert.NoError(t, err)

		assert.Equal(t, 100, convOpts.RegPort)
		assert.Equal(t, 101, convOpts.DatPort)
		assert.True(t, convOpts.WarnOutOfRange)
		assert.Equal(t, 3, convOpts.ScaleFactor)
		assert.Equal(t, "none", convOpts.ScreenProfile)
		assert.True(t, convOpts.MapGetToInkey)

		assert.Equal(t, 2, len(convOpts.ScaleVars))
		_, ok := convOpts.ScaleVars["T"]
		assert.True(t, ok)
		_, ok = convOpts.ScaleVars["W"]
		assert.True(t, ok)
	})

	t.Run("missing arguments", func(t *testing.T) {
		_, _, err := parseWithArgs(t, "in.bas")
		assert.Error(t, err)

		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	})

	t.Run("flag after file arguments", func(t *testing.T) {
		_, _, err := parseWithArgs(t, "in.bas", "out.bas", "-q")
		assert.Error(t, err)

		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	})

	t.Run("invalid screen profile", func(t *testing.T) {
		_, _, err := parseWithArgs(t, "-screen-profile", "vt52", "in.bas", "out.bas")
		assert.Error(t, err)
		assert.ErrorContains(t, err, "unsupported screen profile")
	})

	t.Run("negative scale factor", func(t *testing.T) {
		_, _, err := parseWithArgs(t, "-scale-for", "-1", "in.bas", "out.bas")
		assert.Error(t, err)
		assert.ErrorContains(t, err, "scale factor")
	})
}
