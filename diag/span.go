package diag

import (
	"slices"
	"strings"
)

// Region describes a part of a line that shall be highlighted. It either
// is an explicit byte range or a substring of which every occurrence is
// highlighted.
type Region struct {
	start, length int
	str           string
	isStr         bool
}

// Bit highlights length bytes starting at byte offset start.
func Bit(start, length int) Region { return Region{start: start, length: length} }

// Str highlights every non-overlapping occurrence of s.
func Str(s string) Region { return Region{str: s, isStr: true} }

// Span is a half-open byte range [Start, End) of a line.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

// Spans resolves regions against line. The result is sorted by start offset
// and touching or overlapping spans are merged. Spans are clipped to the
// line, empty spans are dropped.
func Spans(line string, regions []Region) []Span {
	var res []Span
	add := func(start, end int) {
		start, end = max(start, 0), min(end, len(line))
		if start >= end {
			return
		}
		res = append(res, Span{Start: start, End: end})
	}
	for _, r := range regions {
		if !r.isStr {
			add(r.start, r.start+r.length)
			continue
		}
		if r.str == "" {
			continue
		}
		for off := 0; off < len(line); {
			i := strings.Index(line[off:], r.str)
			if i < 0 {
				break
			}
			off += i
			add(off, off+len(r.str))
			off += len(r.str)
		}
	}
	return merge(res)
}

func merge(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	slices.SortStableFunc(spans, func(a, b Span) int { return a.Start - b.Start })
	res := spans[:1]
	for _, s := range spans[1:] {
		last := &res[len(res)-1]
		if last.End >= s.Start {
			last.End = max(last.End, s.End)
		} else {
			res = append(res, s)
		}
	}
	return res
}

// Underline renders a string that puts mark under each highlighted byte of
// line. Tabs in front of highlighted bytes are kept to stay aligned.
// Trailing unhighlighted bytes are not padded. Spans are clipped to line.
func Underline(line string, spans []Span, mark rune) string {
	if len(spans) == 0 {
		return ""
	}
	var sb strings.Builder
	pos := 0
	for _, s := range spans {
		start, end := min(s.Start, len(line)), min(s.End, len(line))
		for ; pos < start; pos++ {
			if line[pos] == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		for ; pos < end; pos++ {
			sb.WriteRune(mark)
		}
	}
	return sb.String()
}
