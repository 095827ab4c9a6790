package spof

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fractalqb/spof/diag"
)

// Spof validates files against a schema. A zero value is valid for use and
// can be reused for more than one file. It must not be used concurrently.
type Spof struct {
	// Comment is the marker that starts a comment up to the end of the line.
	// If Comment is empty, lines are not stripped of comments.
	Comment string
	// ErrorLimit is the number of diagnostics after which validation stops.
	// 0 and 1 stop at the first error, a negative limit collects all.
	// More than one diagnostic is returned as diag.List.
	ErrorLimit int
}

// Lines validates the lines of a file that is displayed as name.
func (sp *Spof) Lines(name string, lines []string, sch *Schema) (*File, error) {
	scn := sp.newScan(name, sch)
	for i, l := range lines {
		if scn.line(i, l) {
			break
		}
	}
	return scn.finish()
}

// Read validates all lines from r. Reading errors are reported as diagnostic
// of kind diag.KindIO.
func (sp *Spof) Read(name string, r io.Reader, sch *Schema) (*File, error) {
	scn := sp.newScan(name, sch)
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for i := 0; lines.Scan(); i++ {
		if scn.line(i, lines.Text()) {
			break
		}
	}
	if err := lines.Err(); err != nil {
		return nil, diag.New(diag.KindIO, "cannot read file").
			InFile(name).
			WithCause(err)
	}
	return scn.finish()
}

func (sp *Spof) OpenFile(path string, sch *Schema) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, diag.New(diag.KindIO, "cannot open file").
			InFile(path).
			WithCause(err)
	}
	defer r.Close()
	return sp.Read(path, r, sch)
}

type scan struct {
	name    string
	comment string
	limit   int
	schema  *Schema
	found   map[string]FoundLine
	diags   diag.List
}

func (sp *Spof) newScan(name string, sch *Schema) *scan {
	limit := sp.ErrorLimit
	if limit == 0 {
		limit = 1
	}
	return &scan{
		name:    name,
		comment: sp.Comment,
		limit:   limit,
		schema:  sch,
		found:   make(map[string]FoundLine, sch.Len()),
	}
}

func (sc *scan) report(d *diag.Diagnostic) (abort bool) {
	sc.diags = append(sc.diags, d)
	return sc.limit > 0 && len(sc.diags) >= sc.limit
}

// line processes the line with index idx and reports whether scanning has to
// stop.
func (sc *scan) line(idx int, raw string) (abort bool) {
	content, at := locate(raw, sc.comment)
	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return false
	}
	kw, body := tokens[0], tokens[1:]
	el, ok := sc.schema.Lookup(kw)
	if !ok {
		return sc.report(sc.unknownKeyword(idx, raw, kw, at))
	}
	if !el.Format.Accepts(len(body)) {
		kwEnd := at + len(kw)
		return sc.report(sc.formatMismatch(el, idx, raw, len(body), kwEnd, at+len(content)))
	}
	sc.found[kw] = append(sc.found[kw], ParsedLine{Tokens: body, Index: idx})
	return false
}

func (sc *scan) unknownKeyword(idx int, raw, kw string, at int) *diag.Diagnostic {
	return diag.Newf(diag.KindUnknownKeyword, "unsupported keyword %s", kw).
		At(sc.name, idx).
		WithExcerpt(raw, diag.Bit(at, len(kw))).
		WithHelp("no rule for keyword " + kw +
			"\nhere is a list of valid keywords:\n" +
			sc.schema.KeywordList(),
		).
		WithSuggestions(keywordNames(sc.schema)...)
}

// formatMismatch highlights the line body. A line without body gets its
// keyword highlighted instead.
func (sc *scan) formatMismatch(el *ExpectedLine, idx int, raw string, got, kwEnd, end int) *diag.Diagnostic {
	mark := diag.Bit(kwEnd, end-kwEnd)
	if end <= kwEnd {
		kwLen := len(el.Keyword.Name)
		mark = diag.Bit(kwEnd-kwLen, kwLen)
	}
	return diag.Newf(diag.KindFormat, "expected %s token after %s, got %d",
		el.Format,
		el.Keyword.Name,
		got,
	).
		At(sc.name, idx).
		WithExcerpt(raw, mark).
		WithHelp(el.Help()).
		Want(el.Format.String(), strconv.Itoa(got))
}

func (sc *scan) occurrence(el *ExpectedLine, n int) *diag.Diagnostic {
	return diag.Newf(diag.KindOccurrence, "%s expected to be %s (%s), but it occurred %d times",
		el.Keyword.Name,
		el.Occurrence,
		el.Occurrence.Condition(),
		n,
	).
		InFile(sc.name).
		WithHelp(el.Help()).
		Want(el.Occurrence.String(), strconv.Itoa(n))
}

// finish checks occurrences once all lines were scanned without error.
func (sc *scan) finish() (*File, error) {
	if len(sc.diags) == 0 {
		for i := range sc.schema.lines {
			el := &sc.schema.lines[i]
			n := len(sc.found[el.Keyword.Name])
			if el.Occurrence.Allows(n) {
				continue
			}
			if sc.report(sc.occurrence(el, n)) {
				break
			}
		}
	}
	switch len(sc.diags) {
	case 0:
		return &File{Path: sc.name, schema: sc.schema, found: sc.found}, nil
	case 1:
		return nil, sc.diags[0]
	}
	return nil, sc.diags
}
