package spof

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Strip removes a trailing comment that starts with the first occurrence of
// the comment marker and trims surrounding whitespace. An empty marker
// disables comment removal.
func Strip(line, comment string) string {
	content, _ := locate(line, comment)
	return content
}

// Tokenize splits a stripped line into whitespace separated tokens.
func Tokenize(line string) []string { return strings.Fields(line) }

// locate is Strip that also reports the byte offset of the remaining
// content in line.
func locate(line, comment string) (content string, at int) {
	if comment != "" {
		if i := strings.Index(line, comment); i >= 0 {
			line = line[:i]
		}
	}
	at = strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if at < 0 {
		return "", len(line)
	}
	return strings.TrimRightFunc(line[at:], unicode.IsSpace), at
}

// Skeleton writes an example file for a schema that has one template line
// for each keyword. The result is a starting point for writing files of
// that schema, not necessarily a valid file.
type Skeleton struct {
	// Comment is the comment marker used for description lines. Without
	// a marker only the template lines are written.
	Comment string
}

func (sk Skeleton) Write(w io.Writer, s *Schema) (err error) {
	for i := range s.lines {
		el := &s.lines[i]
		if sk.Comment != "" {
			_, err = fmt.Fprintf(w, "%s %s: %s (%s)\n",
				sk.Comment,
				el.Keyword.Name,
				el.Keyword.Desc,
				el.Occurrence,
			)
			if err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w, el.Template()); err != nil {
			return err
		}
	}
	return nil
}
