// Package diag provides the structured, renderer-agnostic diagnostics
// produced when a file does not follow its schema.
//
// A Diagnostic carries a headline message and optionally a help text, the
// file and line it refers to, an excerpt of the offending line with the
// regions that shall be highlighted and a causing error. Diagnostics never
// contain terminal escape sequences. Presentation is left to the caller.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a stable category for programmatic error handling. Callers should
// branch on Kind rather than matching error strings.
type Kind string

const (
	KindIO              Kind = "IO"
	KindUnknownKeyword  Kind = "UnknownKeyword"
	KindFormat          Kind = "FormatMismatch"
	KindOccurrence      Kind = "OccurrenceViolation"
	KindTokenConversion Kind = "TokenConversion"
	KindSchema          Kind = "Schema"
	KindDefinition      Kind = "Definition"
)

// NoLine is the line index of diagnostics that are not bound to a line.
const NoLine = -1

type Diagnostic struct {
	Kind    Kind
	Message string
	Help    string
	// File is the display name of the file the diagnostic refers to, if any.
	File string
	// Line is the 0-based index of the offending line or NoLine.
	Line    int
	Excerpt *Excerpt
	// Expected and Got describe the violated requirement and what was found
	// instead. Both are empty if the kind has no such notion.
	Expected string
	Got      string
	// Suggest lists valid alternatives, e.g. the known keywords.
	Suggest []string
	Cause   error
}

// Excerpt is the verbatim text of the offending line together with the
// regions to highlight.
type Excerpt struct {
	Text  string
	Marks []Region
}

// Spans returns the sorted and merged highlight spans of the excerpt.
func (x *Excerpt) Spans() []Span { return Spans(x.Text, x.Marks) }

// New creates a diagnostic that is neither bound to a file nor to a line.
func New(kind Kind, msg string) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: msg, Line: NoLine}
}

func Newf(kind Kind, format string, args ...any) *Diagnostic {
	return New(kind, fmt.Sprintf(format, args...))
}

// InFile binds d to file without a specific line.
func (d *Diagnostic) InFile(file string) *Diagnostic {
	d.File = file
	return d
}

// At binds d to line index idx of file.
func (d *Diagnostic) At(file string, idx int) *Diagnostic {
	d.File = file
	d.Line = idx
	return d
}

func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// WithExcerpt attaches the verbatim line text with the regions that caused
// the diagnostic.
func (d *Diagnostic) WithExcerpt(text string, marks ...Region) *Diagnostic {
	d.Excerpt = &Excerpt{Text: text, Marks: marks}
	return d
}

func (d *Diagnostic) Want(expected, got string) *Diagnostic {
	d.Expected = expected
	d.Got = got
	return d
}

func (d *Diagnostic) WithSuggestions(s ...string) *Diagnostic {
	d.Suggest = s
	return d
}

func (d *Diagnostic) WithCause(err error) *Diagnostic {
	d.Cause = err
	return d
}

// HasLine reports whether d refers to a specific line.
func (d *Diagnostic) HasLine() bool { return d.Line >= 0 }

// Location returns "file:line" with a 1-based line number, only "file" for
// file-scoped diagnostics or "" if d is not bound to a file.
func (d *Diagnostic) Location() string {
	switch {
	case d.File == "" && !d.HasLine():
		return ""
	case !d.HasLine():
		return d.File
	}
	return fmt.Sprintf("%s:%d", d.File, d.Line+1)
}

func (d *Diagnostic) Error() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	if loc := d.Location(); loc != "" {
		sb.WriteString(loc)
		sb.WriteString(": ")
	}
	sb.WriteString(d.Message)
	if d.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(d.Cause.Error())
	}
	return sb.String()
}

func (d *Diagnostic) Unwrap() error {
	if d == nil {
		return nil
	}
	return d.Cause
}

// List is returned when more than one diagnostic was collected.
type List []*Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%d diagnostics, first: %s", len(l), l[0].Error())
}

func (l List) Unwrap() []error {
	res := make([]error, len(l))
	for i, d := range l {
		res[i] = d
	}
	return res
}

// As returns the first *Diagnostic in err's chain.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if !errors.As(err, &d) {
		return nil, false
	}
	return d, true
}

// KindOf returns the Kind of the first diagnostic in err's chain or "".
func KindOf(err error) Kind {
	if d, ok := As(err); ok {
		return d.Kind
	}
	return ""
}

// IsKind reports whether err is (or wraps) a *Diagnostic with the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
