package spoftest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/spof"
	"github.com/fractalqb/spof/diag"
)

func TestRepo_Filename(t *testing.T) {
	r := Repo{Dir: "td"}
	assert.Equal(t, filepath.Join("td", "TestRepo_Filename.golden"), r.Filename(t, ""))
	assert.Equal(t, filepath.Join("td", "TestRepo_Filename", "x.golden"), r.Filename(t, "x"))
	assert.Equal(t, filepath.Join("td", "TestRepo_Filename", "x.golden"), r.Filename(t, "x.golden"))
	r.Suffix = ".txt"
	assert.Equal(t, filepath.Join("td", "TestRepo_Filename.txt"), r.Filename(t, ""))
}

func TestGolden(t *testing.T) {
	Golden(t, "", "color 255 0 42\n")
}

func TestGolden_hint(t *testing.T) {
	Golden(t, "second", "name x\n")
}

type recordT struct {
	testing.TB
	errs []string
}

func (t *recordT) Errorf(format string, args ...any) {
	t.errs = append(t.errs, fmt.Sprintf(format, args...))
}

func TestConfig_Record(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{GoldenFile: Repo{Dir: dir}.Filename}
	rec := &recordT{TB: t}
	cfg.Record(rec, "", "recorded\n")
	data, err := os.ReadFile(filepath.Join(dir, t.Name()+StdSuffix))
	require.NoError(t, err)
	assert.Equal(t, "recorded\n", string(data))
	require.Len(t, rec.errs, 1)
	assert.Contains(t, rec.errs[0], "spoftest recorder wrote")
}

func TestValid(t *testing.T) {
	sch := spof.MustSchema(spof.Line("size", "the size", spof.Fixed("N"), spof.OneOrMore))
	f := Valid(t, &spof.Spof{}, sch, "size 1", "size 2")
	assert.Equal(t, 2, f.Count("size"))
	d := Fails(t, &spof.Spof{}, sch, diag.KindFormat, "size")
	assert.Equal(t, "1", d.Expected)
}
