package spof

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/fractalqb/spof/diag"
)

// Keyword identifies a line type by the first token of the line.
type Keyword struct {
	Name string
	// Desc is a human readable description shown in help texts.
	Desc string
}

// ExpectedLine is the rule for all lines that start with one keyword.
type ExpectedLine struct {
	Keyword    Keyword
	Format     Format
	Occurrence Occurrence
}

// Line declares an ExpectedLine for use with NewSchema.
func Line(keyword, desc string, format Format, occ Occurrence) ExpectedLine {
	return ExpectedLine{
		Keyword:    Keyword{Name: keyword, Desc: desc},
		Format:     format,
		Occurrence: occ,
	}
}

// Help describes what the line means and how it has to look.
func (el *ExpectedLine) Help() string {
	return fmt.Sprintf("%s define %s\nthe line must follow the format: `%s`",
		el.Keyword.Name,
		el.Keyword.Desc,
		el.Template(),
	)
}

// Template renders a complete example line, keyword included.
func (el *ExpectedLine) Template() string {
	if t := strings.TrimSpace(el.Format.Template()); t != "" {
		return el.Keyword.Name + " " + t
	}
	return el.Keyword.Name
}

func (el *ExpectedLine) validate() error {
	kw := el.Keyword.Name
	switch {
	case kw == "":
		return diag.New(diag.KindSchema, "empty keyword")
	case strings.IndexFunc(kw, unicode.IsSpace) >= 0:
		return diag.Newf(diag.KindSchema, "keyword %q contains whitespace", kw)
	}
	if err := el.Format.validate(); err != nil {
		return diag.Newf(diag.KindSchema, "keyword %s: %s", kw, err)
	}
	if err := el.Occurrence.validate(); err != nil {
		return diag.Newf(diag.KindSchema, "keyword %s: %s", kw, err)
	}
	return nil
}

// Schema maps keywords to their expected lines. A Schema is immutable and
// can be shared by any number of validations, also concurrently.
type Schema struct {
	lines []ExpectedLine
	index map[string]int
}

// NewSchema creates a schema from the given rules. The declaration order
// is kept for help texts and the order of occurrence checks.
func NewSchema(lines ...ExpectedLine) (*Schema, error) {
	s := &Schema{
		lines: make([]ExpectedLine, 0, len(lines)),
		index: make(map[string]int, len(lines)),
	}
	for _, el := range lines {
		if err := el.validate(); err != nil {
			return nil, err
		}
		if _, dup := s.index[el.Keyword.Name]; dup {
			return nil, diag.Newf(diag.KindSchema, "duplicate keyword %s", el.Keyword.Name)
		}
		s.index[el.Keyword.Name] = len(s.lines)
		s.lines = append(s.lines, el)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on invalid rules. It is meant for
// package level schema variables.
func MustSchema(lines ...ExpectedLine) *Schema {
	s, err := NewSchema(lines...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Len() int { return len(s.lines) }

// Lookup returns the rule for keyword.
func (s *Schema) Lookup(keyword string) (*ExpectedLine, bool) {
	i, ok := s.index[keyword]
	if !ok {
		return nil, false
	}
	return &s.lines[i], true
}

// Lines returns a copy of all rules in declaration order.
func (s *Schema) Lines() []ExpectedLine { return slices.Clone(s.lines) }

func (s *Schema) Keywords() []Keyword {
	res := make([]Keyword, len(s.lines))
	for i := range s.lines {
		res[i] = s.lines[i].Keyword
	}
	return res
}

// KeywordList renders one "\t- keyword: description" line per keyword.
func (s *Schema) KeywordList() string {
	var sb strings.Builder
	for i, kw := range s.Keywords() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "\t- %s: %s", kw.Name, kw.Desc)
	}
	return sb.String()
}
