// Package spoftest supports testing code that uses spof.
//
// Besides assertions for valid and invalid input it manages golden files,
// i.e. files with the expected output of a test. Example compares output
// with testdata/TestRender.golden:
//
//	func TestRender(t *testing.T) {
//		var buf bytes.Buffer
//		render(&buf, diagnostic)
//		spoftest.Golden(t, "", buf.String())
//	}
package spoftest

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/spof"
	"github.com/fractalqb/spof/diag"
)

// When this environment variable is set to a regexp and the name of the
// current test matches, calls to Golden record the output as new golden file
// instead of comparing it. E.g.
//
//	SPOFTEST_RECORD=TestRender go test .
const RecordEnv = "SPOFTEST_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

const StdSuffix = ".golden"

// Repo locates golden files in Dir.
type Repo struct {
	Dir    string
	Suffix string
}

func (r Repo) Filename(t testing.TB, hint string) string {
	suffix := r.Suffix
	if suffix == "" {
		suffix = StdSuffix
	}
	if hint == "" {
		return filepath.Join(r.Dir, t.Name()+suffix)
	}
	if strings.HasSuffix(hint, suffix) {
		return filepath.Join(r.Dir, t.Name(), hint)
	}
	return filepath.Join(r.Dir, t.Name(), hint+suffix)
}

type Config struct {
	GoldenFile      func(t testing.TB, hint string) string
	RecordOverwrite bool
}

var defaultConfig = Config{
	GoldenFile: Repo{Dir: GoTestdataDir}.Filename,
}

// Golden compares got to the content of the test's golden file.
func Golden(t testing.TB, hint, got string) {
	t.Helper()
	defaultConfig.Golden(t, hint, got)
}

func (cfg Config) Golden(t testing.TB, hint, got string) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, got)
		return
	}
	file := cfg.GoldenFile(t, hint)
	want, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		t.Logf("to record a golden file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		t.Fatalf("golden file %s does not exist", file)
	}
	require.NoError(t, err)
	assert.Equal(t, string(want), got, "golden file %s", file)
}

// Record writes got as new golden file. It always fails the test to make
// sure recording is not left switched on.
func (cfg Config) Record(t testing.TB, hint, got string) {
	t.Helper()
	file := cfg.GoldenFile(t, hint)
	if _, err := os.Stat(file); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("golden file '%s' already exists", file)
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0777))
	require.NoError(t, os.WriteFile(file, []byte(got), 0666))
	t.Errorf("spoftest recorder wrote: %s", file)
}

func recordTest(t testing.TB) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("spoftest: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

// Valid validates lines and fails the test if they are not valid.
func Valid(t testing.TB, sp *spof.Spof, sch *spof.Schema, lines ...string) *spof.File {
	t.Helper()
	f, err := sp.Lines(t.Name(), lines, sch)
	require.NoError(t, err)
	return f
}

// Fails validates lines and fails the test unless validation fails with a
// single diagnostic of the given kind.
func Fails(t testing.TB, sp *spof.Spof, sch *spof.Schema, kind diag.Kind, lines ...string) *diag.Diagnostic {
	t.Helper()
	f, err := sp.Lines(t.Name(), lines, sch)
	require.Error(t, err)
	assert.Nil(t, f)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok, "expected single *diag.Diagnostic, got %T", err)
	require.Equal(t, kind, d.Kind, d.Error())
	return d
}
