package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumFlag is a string flag restricted to a fixed set of values. Matching
// is case-insensitive and the stored value uses the canonical spelling.
type enumFlag[T ~string] struct {
	target  *T
	allowed []T
}

var _ pflag.Value = (*enumFlag[string])(nil)

func newEnumFlag[T ~string](target *T, allowed ...T) *enumFlag[T] {
	return &enumFlag[T]{target: target, allowed: allowed}
}

func (f *enumFlag[T]) Set(s string) error {
	v, ok := matchEnum(s, f.allowed)
	if !ok {
		return fmt.Errorf("want one of %s", f.choices())
	}
	*f.target = v
	return nil
}

func (f *enumFlag[T]) String() string { return string(*f.target) }

func (f *enumFlag[T]) Type() string { return "string" }

func (f *enumFlag[T]) choices() string {
	names := make([]string, len(f.allowed))
	for i, v := range f.allowed {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
