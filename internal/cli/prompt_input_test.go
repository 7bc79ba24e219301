package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y with lf", input: "y\n", want: true},
		{name: "yes with lf", input: "yes\n", want: true},
		{name: "mixed case", input: "YeS\n", want: true},
		{name: "y with cr", input: "y\r", want: true},
		{name: "padded yes", input: "  yes  \n", want: true},
		{name: "empty declines", input: "\n", want: false},
		{name: "explicit no", input: "n\r", want: false},
		{name: "other word", input: "sure\n", want: false},
		{name: "eof declines", input: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := confirm(strings.NewReader(tc.input), &out, "Overwrite snapshot.db?")
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Overwrite snapshot.db? [y/N]: ", out.String())
		})
	}
}

func TestReadAnswer_EOFWithoutNewline(t *testing.T) {
	t.Parallel()

	got, err := readAnswer(strings.NewReader("yes"))
	assert.NoError(t, err)
	assert.Equal(t, "yes", got)
}

func TestReadAnswer_StopsAtFirstLine(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("y\nleftover\n")
	got, err := readAnswer(r)
	assert.NoError(t, err)
	assert.Equal(t, "y", got)
	assert.Equal(t, 9, r.Len())
}
