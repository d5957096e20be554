package rewriter

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/sidgoconv/internal/options"
)

func TestScaleLoopBound(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		factor    int
		vars      string
		want      string
	}{
		{
			name:      "simple delay loop scaled",
			statement: "FOR T=1 TO 50",
			factor:    3,
			vars:      "T",
			want:      "FOR T=1 TO 150",
		},
		{
			name:      "whitespace tolerated and normalized",
			statement: "for t = 1 TO  200",
			factor:    2,
			vars:      "T",
			want:      "FOR t=1 TO 400",
		},
		{
			name:      "no whitespace after TO",
			statement: "FOR W=1 TO50",
			factor:    2,
			vars:      "W",
			want:      "FOR W=1 TO 100",
		},
		{
			name:      "variable not in allowlist",
			statement: "FOR T=1 TO 50",
			factor:    3,
			vars:      "W,D",
			want:      "FOR T=1 TO 50",
		},
		{
			name:      "scaling disabled",
			statement: "FOR T=1 TO 50",
			factor:    0,
			vars:      "T",
			want:      "FOR T=1 TO 50",
		},
		{
			name:      "factor one is a no-op",
			statement: "FOR T = 1 TO 50",
			factor:    1,
			vars:      "T",
			want:      "FOR T = 1 TO 50",
		},
		{
			name:      "different start value untouched",
			statement: "FOR T=0 TO 50",
			factor:    3,
			vars:      "T",
			want:      "FOR T=0 TO 50",
		},
		{
			name:      "step clause untouched",
			statement: "FOR T=1 TO 50 STEP 2",
			factor:    3,
			vars:      "T",
			want:      "FOR T=1 TO 50 STEP 2",
		},
		{
			name:      "non-literal bound untouched",
			statement: "FOR T=1 TO N",
			factor:    3,
			vars:      "T",
			want:      "FOR T=1 TO N",
		},
		{
			name:      "missing whitespace before TO untouched",
			statement: "FOR T=1TO50",
			factor:    3,
			vars:      "T",
			want:      "FOR T=1TO50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.NewConverter()
			opts.ScaleFactor = tt.factor
			opts.ScaleVars = options.ParseScaleVars(tt.vars)
			r := newTestRewriter(opts)

			assert.Equal(t, tt.want, r.scaleLoopBound(tt.statement))
		})
	}
}
