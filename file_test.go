package spof_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/spof"
	"github.com/fractalqb/spof/diag"
	"github.com/fractalqb/spof/spoftest"
)

func TestParse(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{}, objectSchema,
		"color 255 0 42",
		"position 1.5 2 -3",
	)
	rgb, err := spof.Parse(f, "color", strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{255, 0, 42}}, rgb)

	pos, err := spof.ParseOnce(f, "position", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, -3}, pos)

	names, err := spof.Parse(f, "name", strconv.Atoi)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestParse_conversion(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{}, objectSchema,
		"name x",
		"color 255 zero 42",
	)
	_, err := spof.Parse(f, "color", strconv.Atoi)
	d, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, diag.KindTokenConversion, d.Kind)
	assert.Equal(t, "could not parse token 2 of color for type int", d.Message)
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, "int", d.Expected)
	assert.Equal(t, "zero", d.Got)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParse_unknown(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{}, colorSchema, "color 1 2 3")
	_, err := spof.Parse(f, "size", strconv.Atoi)
	assert.Equal(t, diag.KindUnknownKeyword, diag.KindOf(err))
}

func TestParseOnce_missing(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{}, objectSchema, "color 1 2 3")
	_, err := spof.ParseOnce(f, "position", strconv.Atoi)
	require.Error(t, err)
	assert.Equal(t, diag.KindOccurrence, diag.KindOf(err))
	assert.Equal(t, "TestParseOnce_missing: no line with keyword position", err.Error())
}

func TestFoundLine(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{}, objectSchema, "color 1 2 3")
	tok, ok := f.Lines("color").FirstToken()
	assert.True(t, ok)
	assert.Equal(t, "1", tok)
	_, ok = f.Lines("name").FirstToken()
	assert.False(t, ok)
	pl, _ := f.Lines("color").Once()
	_, ok = pl.Token(3)
	assert.False(t, ok)
}

func TestFile_Lines_copy(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{}, objectSchema, "color 1 2 3")
	fl := f.Lines("color")
	fl[0].Tokens[0] = "9"
	fl[0].Index = 7
	assert.Equal(t, spof.FoundLine{{Tokens: []string{"1", "2", "3"}, Index: 0}}, f.Lines("color"))
}

func TestFile_Dump(t *testing.T) {
	f := spoftest.Valid(t, &spof.Spof{Comment: "#"}, objectSchema,
		"color 255 0 42",
		"# comment",
		"name my object",
		"name other",
	)
	var sb strings.Builder
	require.NoError(t, f.Dump(&sb))
	spoftest.Golden(t, "", sb.String())
}
