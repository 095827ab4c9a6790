package diag

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_Error(t *testing.T) {
	t.Run("line scoped", func(t *testing.T) {
		d := New(KindFormat, "expected 3 token after color, got 2").At("obj.spof", 0)
		assert.Equal(t, "obj.spof:1: expected 3 token after color, got 2", d.Error())
		assert.True(t, d.HasLine())
	})
	t.Run("file scoped", func(t *testing.T) {
		d := New(KindOccurrence, "color occurred 2 times").InFile("obj.spof")
		assert.Equal(t, "obj.spof: color occurred 2 times", d.Error())
		assert.False(t, d.HasLine())
	})
	t.Run("unbound", func(t *testing.T) {
		d := Newf(KindSchema, "duplicate keyword %q", "color")
		assert.Equal(t, `duplicate keyword "color"`, d.Error())
		assert.Equal(t, "", d.Location())
	})
	t.Run("cause", func(t *testing.T) {
		d := New(KindIO, "cannot read").InFile("x").WithCause(io.ErrUnexpectedEOF)
		assert.Equal(t, "x: cannot read: unexpected EOF", d.Error())
		assert.ErrorIs(t, d, io.ErrUnexpectedEOF)
	})
}

func TestKindOf(t *testing.T) {
	d := New(KindUnknownKeyword, "unsupported keyword position")
	wrapped := fmt.Errorf("check: %w", d)
	assert.True(t, IsKind(wrapped, KindUnknownKeyword))
	assert.False(t, IsKind(wrapped, KindFormat))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, d, got)
}

func TestList(t *testing.T) {
	l := List{
		New(KindFormat, "first").At("f", 2),
		New(KindUnknownKeyword, "second").At("f", 5),
	}
	assert.Equal(t, "2 diagnostics, first: f:3: first", l.Error())
	assert.True(t, IsKind(l, KindFormat))
	var err error = l
	assert.Len(t, err.(interface{ Unwrap() []error }).Unwrap(), 2)
	assert.Equal(t, "f:3: first", List{l[0]}.Error())
}

func TestExcerpt_Spans(t *testing.T) {
	d := New(KindFormat, "x").WithExcerpt("color 1 2", Bit(5, 4), Str("color"))
	assert.Equal(t, []Span{{0, 9}}, d.Excerpt.Spans())
}
