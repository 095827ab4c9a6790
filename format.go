package spof

import (
	"fmt"
	"strings"
)

type formatKind uint8

const (
	formatFixed formatKind = iota
	formatUnbounded
	formatRange
)

// Format is the expected token count shape of a line body, i.e. the tokens
// following the keyword. The template is shown to users to describe the
// expected tokens, e.g. "R G B".
type Format struct {
	template string
	kind     formatKind
	min, max int
}

// Fixed expects exactly as many tokens as the template has.
func Fixed(template string) Format {
	n := len(strings.Fields(template))
	return Format{template: template, kind: formatFixed, min: n, max: n}
}

// Unbounded accepts any number of tokens, even none.
func Unbounded(template string) Format {
	return Format{template: template, kind: formatUnbounded}
}

// Range expects between min and max tokens, both inclusive. Optional
// tokens need no special markup in the template.
func Range(template string, min, max int) Format {
	return Format{template: template, kind: formatRange, min: min, max: max}
}

func (f Format) Template() string { return f.template }

// Bounds returns the inclusive token count bounds. Unbounded formats report
// ok == false.
func (f Format) Bounds() (min, max int, ok bool) {
	if f.kind == formatUnbounded {
		return 0, 0, false
	}
	return f.min, f.max, true
}

// Accepts reports whether a line body with n tokens matches f.
func (f Format) Accepts(n int) bool {
	switch f.kind {
	case formatFixed:
		return n == f.min
	case formatUnbounded:
		return true
	}
	return n >= f.min && n <= f.max
}

// String describes the expected token count as used in diagnostics: the
// fixed count, "undefined" or "min-max".
func (f Format) String() string {
	switch f.kind {
	case formatFixed:
		return fmt.Sprint(f.min)
	case formatUnbounded:
		return "undefined"
	}
	return fmt.Sprintf("%d-%d", f.min, f.max)
}

// GoString is handy when debugging schemas.
func (f Format) GoString() string {
	switch f.kind {
	case formatFixed:
		return fmt.Sprintf("Fixed(%d)", f.min)
	case formatUnbounded:
		return "Unbounded"
	}
	return fmt.Sprintf("Range(%d, %d)", f.min, f.max)
}

func (f Format) validate() error {
	if f.kind == formatRange && (f.min < 0 || f.min > f.max) {
		return fmt.Errorf("invalid token range %d-%d", f.min, f.max)
	}
	return nil
}
