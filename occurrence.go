package spof

import "fmt"

type occurrenceKind uint8

const (
	occOnce occurrenceKind = iota
	occOptional
	occZeroOrMore
	occOneOrMore
	occExactly
	occBetween
)

// Occurrence declares how often a keyword may appear in a file. The zero
// value is Once.
type Occurrence struct {
	kind     occurrenceKind
	min, max int
}

var (
	Once       = Occurrence{kind: occOnce}
	Optional   = Occurrence{kind: occOptional}
	ZeroOrMore = Occurrence{kind: occZeroOrMore}
	OneOrMore  = Occurrence{kind: occOneOrMore}
)

func Exactly(n int) Occurrence { return Occurrence{kind: occExactly, min: n, max: n} }

// Between allows min up to max occurrences, both inclusive.
func Between(min, max int) Occurrence { return Occurrence{kind: occBetween, min: min, max: max} }

// Allows reports whether a keyword that was found n times satisfies o.
func (o Occurrence) Allows(n int) bool {
	switch o.kind {
	case occOnce:
		return n == 1
	case occOptional:
		return n <= 1
	case occZeroOrMore:
		return true
	case occOneOrMore:
		return n >= 1
	case occExactly:
		return n == o.min
	}
	return n >= o.min && n <= o.max
}

// String is the prose form used in messages, e.g. "one or more".
func (o Occurrence) String() string {
	switch o.kind {
	case occOnce:
		return "once"
	case occOptional:
		return "optional"
	case occZeroOrMore:
		return "zero or more"
	case occOneOrMore:
		return "one or more"
	case occExactly:
		return fmt.Sprintf("exactly %d", o.min)
	}
	return fmt.Sprintf("between %d and %d", o.min, o.max)
}

// Condition is the symbolic form of o in terms of the count n, e.g.
// "n >= 1".
func (o Occurrence) Condition() string {
	switch o.kind {
	case occOnce:
		return "n == 1"
	case occOptional:
		return "n <= 1"
	case occZeroOrMore:
		return "n >= 0"
	case occOneOrMore:
		return "n >= 1"
	case occExactly:
		return fmt.Sprintf("n == %d", o.min)
	}
	return fmt.Sprintf("n >= %d && n <= %d", o.min, o.max)
}

func (o Occurrence) validate() error {
	switch o.kind {
	case occExactly:
		if o.min < 0 {
			return fmt.Errorf("negative occurrence %d", o.min)
		}
	case occBetween:
		if o.min < 0 || o.min > o.max {
			return fmt.Errorf("invalid occurrence range %d-%d", o.min, o.max)
		}
	}
	return nil
}
