package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		width  int
		filled int
		label  string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 50, 10, 5, " 50%"},
		{"full", 100, 10, 10, "100%"},
		{"over 100 clamps", 150, 10, 10, "100%"},
		{"negative clamps", -20, 10, 0, "  0%"},
		{"tiny width clamps to 2", 50, 1, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			width := max(tt.width, 2)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, width-tt.filled, strings.Count(got, emptyBlock))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestRenderLevel(t *testing.T) {
	got := RenderLevel(3.2, 4)
	assert.Equal(t, 3, strings.Count(got, "●"))
	assert.Equal(t, 2, strings.Count(got, "○"))
	assert.Contains(t, got, "3.2/4")

	got = RenderLevel(4.8, 5)
	assert.Equal(t, 5, strings.Count(got, "●"))
	assert.Contains(t, got, "4.8/5")
}
