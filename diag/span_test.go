package diag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleUnderline() {
	line := "color 255 0 42 255"
	spans := Spans(line, []Region{Str("255"), Bit(0, 5)})
	fmt.Println(line)
	fmt.Println(Underline(line, spans, '^'))
	// Output:
	// color 255 0 42 255
	// ^^^^^ ^^^      ^^^
}

func TestSpans_merge(t *testing.T) {
	t.Run("touching", func(t *testing.T) {
		spans := Spans("abcdefgh", []Region{Bit(0, 2), Bit(2, 3)})
		assert.Equal(t, []Span{{0, 5}}, spans)
		assert.Equal(t, "^^^^^", Underline("abcdefgh", spans, '^'))
	})
	t.Run("overlapping", func(t *testing.T) {
		spans := Spans("abcdefgh", []Region{Bit(1, 3), Bit(2, 1)})
		assert.Equal(t, []Span{{1, 4}}, spans)
	})
	t.Run("unsorted", func(t *testing.T) {
		spans := Spans("abcdefgh", []Region{Bit(6, 1), Bit(0, 1), Bit(3, 2)})
		assert.Equal(t, []Span{{0, 1}, {3, 5}, {6, 7}}, spans)
		assert.Equal(t, "^  ^^ ^", Underline("abcdefgh", spans, '^'))
	})
	t.Run("gap of one", func(t *testing.T) {
		spans := Spans("abcdefgh", []Region{Bit(0, 2), Bit(3, 2)})
		assert.Equal(t, []Span{{0, 2}, {3, 5}}, spans)
	})
}

func TestSpans_str(t *testing.T) {
	t.Run("every occurrence", func(t *testing.T) {
		spans := Spans("a b a b a", []Region{Str("a")})
		assert.Equal(t, []Span{{0, 1}, {4, 5}, {8, 9}}, spans)
	})
	t.Run("non overlapping", func(t *testing.T) {
		spans := Spans("aaaa", []Region{Str("aa")})
		assert.Equal(t, []Span{{0, 4}}, spans)
		spans = Spans("aaaaa", []Region{Str("aa")})
		assert.Equal(t, []Span{{0, 4}}, spans)
	})
	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, Spans("color", []Region{Str("name")}))
	})
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Spans("color", []Region{Str("")}))
	})
}

func TestSpans_clip(t *testing.T) {
	assert.Equal(t, []Span{{3, 5}}, Spans("abcde", []Region{Bit(3, 10)}))
	assert.Empty(t, Spans("abcde", []Region{Bit(5, 1)}))
	assert.Equal(t, []Span{{0, 2}}, Spans("abcde", []Region{Bit(-1, 3)}))
	assert.Empty(t, Spans("abcde", []Region{Bit(-3, 2)}))
	assert.Empty(t, Spans("abcde", []Region{Bit(2, 0)}))
}

func TestUnderline_tabs(t *testing.T) {
	line := "\tcolor\t1"
	spans := Spans(line, []Region{Str("1")})
	assert.Equal(t, "\t     \t^", Underline(line, spans, '^'))
}

func TestUnderline_clip(t *testing.T) {
	assert.Equal(t, "", Underline("abc", []Span{{5, 6}}, '^'))
	assert.Equal(t, " ^^", Underline("abc", []Span{{1, 9}}, '^'))
}

func TestUnderline_none(t *testing.T) {
	assert.Equal(t, "", Underline("abc", nil, '^'))
}
