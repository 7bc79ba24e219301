package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirm asks a y/N question on out and reads the answer from in. Anything
// other than y or yes, including EOF, declines.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := readAnswer(in)
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readAnswer reads one line ending at LF or CR. A terminal in raw mode
// sends CR for Enter.
func readAnswer(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}
	var line strings.Builder
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n == 1 {
			if b[0] == '\n' || b[0] == '\r' {
				return line.String(), nil
			}
			line.WriteByte(b[0])
		}
		if errors.Is(err, io.EOF) && line.Len() > 0 {
			return line.String(), nil
		}
		if err != nil {
			return line.String(), err
		}
	}
}
