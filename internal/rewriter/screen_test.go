package rewriter

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/sidgoconv/internal/options"
)

func TestMapScreenCodes(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		profile   string
		want      string
	}{
		{
			name:      "clear screen code",
			statement: "PRINT CHR$(147)",
			profile:   "ansi",
			want:      "PRINT \"\x1b[2J\x1b[H\"",
		},
		{
			name:      "home cursor with whitespace",
			statement: "PRINT CHR$( 19 )",
			profile:   "ansi",
			want:      "PRINT \"\x1b[H\"",
		},
		{
			name:      "lowercase call",
			statement: "print chr$(145)",
			profile:   "ansi",
			want:      "print \"\x1b[A\"",
		},
		{
			name:      "multiple occurrences substituted independently",
			statement: "PRINT CHR$(147);CHR$(17)",
			profile:   "ansi",
			want:      "PRINT \"\x1b[2J\x1b[H\";\"\x1b[B\"",
		},
		{
			name:      "unmapped code passes through",
			statement: "PRINT CHR$(65)",
			profile:   "ansi",
			want:      "PRINT CHR$(65)",
		},
		{
			name:      "non-literal argument passes through",
			statement: "PRINT CHR$(C)",
			profile:   "ansi",
			want:      "PRINT CHR$(C)",
		},
		{
			name:      "mixed mapped and unmapped",
			statement: "PRINT CHR$(65);CHR$(28)",
			profile:   "ansi",
			want:      "PRINT CHR$(65);\"\x1b[31m\"",
		},
		{
			name:      "none profile is a no-op",
			statement: "PRINT CHR$(147)",
			profile:   "none",
			want:      "PRINT CHR$(147)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.NewConverter()
			opts.ScreenProfile = tt.profile
			r := newTestRewriter(opts)

			assert.Equal(t, tt.want, r.mapScreenCodes(tt.statement))
		})
	}
}
