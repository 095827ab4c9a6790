package spof

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fractalqb/spof/diag"
)

// Definition is the declarative form of a schema together with the comment
// marker of its files, e.g.:
//
//	comment: "#"
//	lines:
//	  - keyword: color
//	    desc: the color of the object
//	    format: R G B
//	  - keyword: position
//	    desc: the position of the object
//	    format: X Y Z W
//	    size: [3, 4]
//	  - keyword: name
//	    desc: the name of the object
//	    format: string
//	    size: undefined
//	    occurrence: optional
//
// Size defaults to fixed and occurrence defaults to once.
type Definition struct {
	Comment string    `yaml:"comment"`
	Lines   []LineDef `yaml:"lines"`
}

type LineDef struct {
	Keyword    string        `yaml:"keyword"`
	Desc       string        `yaml:"desc"`
	Format     string        `yaml:"format"`
	Size       SizeDef       `yaml:"size"`
	Occurrence OccurrenceDef `yaml:"occurrence"`
}

// SizeDef is "fixed", "undefined" or a sequence [min, max].
type SizeDef struct {
	kind     formatKind
	min, max int
}

func (s *SizeDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}
		switch strings.ToLower(str) {
		case "fixed", "":
			*s = SizeDef{kind: formatFixed}
		case "undefined", "unbounded":
			*s = SizeDef{kind: formatUnbounded}
		default:
			return fmt.Errorf("line %d: unknown size '%s'", node.Line, str)
		}
		return nil
	case yaml.SequenceNode:
		min, max, err := decodeBounds(node)
		if err != nil {
			return err
		}
		*s = SizeDef{kind: formatRange, min: min, max: max}
		return nil
	}
	return fmt.Errorf("line %d: size must be a string or [min, max]", node.Line)
}

func (s SizeDef) format(template string) Format {
	switch s.kind {
	case formatUnbounded:
		return Unbounded(template)
	case formatRange:
		return Range(template, s.min, s.max)
	}
	return Fixed(template)
}

// OccurrenceDef is one of "once", "optional", "zero-or-more",
// "one-or-more", a number n for exactly n or a sequence [min, max].
type OccurrenceDef struct {
	Occurrence
}

func (o *OccurrenceDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}
		switch strings.ToLower(str) {
		case "once", "":
			o.Occurrence = Once
		case "optional":
			o.Occurrence = Optional
		case "zero-or-more":
			o.Occurrence = ZeroOrMore
		case "one-or-more":
			o.Occurrence = OneOrMore
		default:
			n, err := strconv.Atoi(str)
			if err != nil {
				return fmt.Errorf("line %d: unknown occurrence '%s'", node.Line, str)
			}
			o.Occurrence = Exactly(n)
		}
		return nil
	case yaml.SequenceNode:
		min, max, err := decodeBounds(node)
		if err != nil {
			return err
		}
		o.Occurrence = Between(min, max)
		return nil
	}
	return fmt.Errorf("line %d: occurrence must be a string, a number or [min, max]", node.Line)
}

func decodeBounds(node *yaml.Node) (min, max int, err error) {
	var bounds []int
	if err = node.Decode(&bounds); err != nil {
		return 0, 0, err
	}
	if len(bounds) != 2 {
		return 0, 0, fmt.Errorf("line %d: expect [min, max], got %d values", node.Line, len(bounds))
	}
	return bounds[0], bounds[1], nil
}

// ReadDefinition decodes a YAML schema definition. Unknown fields are
// rejected.
func ReadDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, diag.New(diag.KindDefinition, "empty schema definition")
		}
		return nil, diag.New(diag.KindDefinition, "invalid schema definition").WithCause(err)
	}
	return &def, nil
}

func LoadDefinition(path string) (*Definition, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, diag.New(diag.KindIO, "cannot open schema definition").
			InFile(path).
			WithCause(err)
	}
	defer r.Close()
	def, err := ReadDefinition(r)
	if d, ok := diag.As(err); ok {
		d.InFile(path)
	}
	return def, err
}

// Schema builds the schema of the definition.
func (def *Definition) Schema() (*Schema, error) {
	if len(def.Lines) == 0 {
		return nil, diag.New(diag.KindDefinition, "schema definition has no lines")
	}
	lines := make([]ExpectedLine, len(def.Lines))
	for i, ld := range def.Lines {
		lines[i] = Line(ld.Keyword, ld.Desc, ld.Size.format(ld.Format), ld.Occurrence.Occurrence)
	}
	return NewSchema(lines...)
}

// Spof returns a validator configured with the definition's comment marker.
func (def *Definition) Spof() *Spof { return &Spof{Comment: def.Comment} }
