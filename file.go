package spof

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fractalqb/spof/diag"
)

// File is the result of a successful validation. It holds the lines found
// for each keyword of its schema.
type File struct {
	// Path is the display name the file was validated with.
	Path   string
	schema *Schema
	found  map[string]FoundLine
}

func (f *File) Schema() *Schema { return f.schema }

// Lines returns a copy of the lines found for keyword in file order.
func (f *File) Lines(keyword string) FoundLine {
	fl := f.found[keyword]
	if fl == nil {
		return nil
	}
	res := make(FoundLine, len(fl))
	for i, pl := range fl {
		res[i] = ParsedLine{Tokens: slices.Clone(pl.Tokens), Index: pl.Index}
	}
	return res
}

func (f *File) Count(keyword string) int { return len(f.found[keyword]) }

// Keywords returns the keywords that were found at least once, in schema
// order.
func (f *File) Keywords() []string {
	var res []string
	for _, kw := range f.schema.Keywords() {
		if len(f.found[kw.Name]) > 0 {
			res = append(res, kw.Name)
		}
	}
	return res
}

// Dump writes a table of all found lines grouped by keyword with their
// 0-based line index.
func (f *File) Dump(w io.Writer) error {
	for _, kw := range f.schema.Keywords() {
		if _, err := fmt.Fprintf(w, "     ├%s\n", kw.Name); err != nil {
			return err
		}
		for _, pl := range f.found[kw.Name] {
			_, err := fmt.Fprintf(w, "%5d│ %s\n", pl.Index, strings.Join(pl.Tokens, " "))
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "     ┆\n"); err != nil {
			return err
		}
	}
	return nil
}

// Parse converts the tokens of all lines of keyword with conv. The first
// token that fails to convert is reported as diagnostic of kind
// diag.KindTokenConversion.
func Parse[T any](f *File, keyword string, conv func(string) (T, error)) ([][]T, error) {
	el, ok := f.schema.Lookup(keyword)
	if !ok {
		return nil, diag.Newf(diag.KindUnknownKeyword, "no rule for keyword %s", keyword).
			InFile(f.Path).
			WithSuggestions(keywordNames(f.schema)...)
	}
	fl := f.found[keyword]
	res := make([][]T, len(fl))
	for i, pl := range fl {
		vals := make([]T, len(pl.Tokens))
		for j, tok := range pl.Tokens {
			v, err := conv(tok)
			if err != nil {
				var zero T
				typ := fmt.Sprintf("%T", zero)
				return nil, diag.Newf(diag.KindTokenConversion,
					"could not parse token %d of %s for type %s",
					j+1, keyword, typ,
				).
					At(f.Path, pl.Index).
					WithHelp(el.Help()).
					Want(typ, tok).
					WithCause(err)
			}
			vals[j] = v
		}
		res[i] = vals
	}
	return res, nil
}

// ParseOnce is Parse for the first line of keyword. It fails if keyword was
// not found.
func ParseOnce[T any](f *File, keyword string, conv func(string) (T, error)) ([]T, error) {
	all, err := Parse(f, keyword, conv)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		el, _ := f.schema.Lookup(keyword)
		return nil, diag.Newf(diag.KindOccurrence, "no line with keyword %s", keyword).
			InFile(f.Path).
			WithHelp(el.Help()).
			Want("once", "0")
	}
	return all[0], nil
}

func keywordNames(s *Schema) []string {
	res := make([]string, s.Len())
	for i := range s.lines {
		res[i] = s.lines[i].Keyword.Name
	}
	return res
}
