package cssmodules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocatorLoadSimpleClasses(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "button.css", `.button { color: red; }
:global(.icon) { color: blue; }`)

	loc := New(Options{})
	result, err := loc.Load(path)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 1)
	require.Equal(t, "button", result.Tokens[0].Name)
	require.Empty(t, result.Dependencies)
}

func TestLocatorLoadImportChain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.css", `.base { color: black; }`)
	entry := writeFile(t, dir, "entry.css", `@import "./base.css";
.entry { color: red; }`)

	loc := New(Options{})
	result, err := loc.Load(entry)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		names = append(names, tok.Name)
	}
	require.ElementsMatch(t, []string{"base", "entry"}, names)
	require.Len(t, result.Dependencies, 1)
}

func TestLocatorLoadValueImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.css", `@value primary: #f00;`)
	entry := writeFile(t, dir, "entry.css", `@value primary as accent from "./colors.css";
.button { color: accent; }`)

	loc := New(Options{})
	result, err := loc.Load(entry)
	require.NoError(t, err)

	var accent *Token
	for i := range result.Tokens {
		if result.Tokens[i].Name == "accent" {
			accent = &result.Tokens[i]
		}
	}
	require.NotNil(t, accent)
	require.Equal(t, "primary", accent.ImportedName)
	require.Equal(t, "colors.css", filepath.Base(accent.OriginalLocation.FilePath))
}

func TestLocatorLoadSelfImportCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cycle.css")
	require.NoError(t, os.WriteFile(path, []byte(`@import "./cycle.css";
.a { color: red; }`), 0o644))

	loc := New(Options{})
	result, err := loc.Load(path)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 1)
	require.Equal(t, "a", result.Tokens[0].Name)
}

func TestLocatorLoadCachesSecondCall(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "button.css", `.button { color: red; }`)

	loc := New(Options{})
	reads := 0
	loc.readFn = func(p string) ([]byte, error) {
		reads++
		return os.ReadFile(p)
	}

	_, err := loc.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, reads)

	_, err = loc.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, reads, "second load of an unchanged file must not re-read it")
}

func TestLocatorLoadInvalidatesOnMTimeChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "button.css", `.button { color: red; }`)

	loc := New(Options{})
	first, err := loc.Load(path)
	require.NoError(t, err)
	require.Equal(t, "button", first.Tokens[0].Name)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`.renamed { color: red; }`), 0o644))
	mtime := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	second, err := loc.Load(path)
	require.NoError(t, err)
	require.Equal(t, "renamed", second.Tokens[0].Name)
}

func TestLocatorLoadInvalidatesOnDependencyMTimeChange(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.css", `.base { color: black; }`)
	entry := writeFile(t, dir, "entry.css", `@import "./base.css";`)

	loc := New(Options{})
	first, err := loc.Load(entry)
	require.NoError(t, err)
	require.Len(t, first.Tokens, 1)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(base, []byte(`.changed { color: black; }`), 0o644))
	mtime := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes(base, mtime, mtime))

	second, err := loc.Load(entry)
	require.NoError(t, err)
	require.Equal(t, "changed", second.Tokens[0].Name)
}

func TestLocatorLoadConcurrentRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "button.css", `.button { color: red; }`)

	loc := New(Options{})
	loc.inFlight = true
	_, err := loc.Load(path)
	require.Error(t, err)
	var cerr *ConcurrentLoadError
	require.ErrorAs(t, err, &cerr)
}

func TestLocatorLoadMissingFileIsIOError(t *testing.T) {
	loc := New(Options{})
	_, err := loc.Load("/no/such/file.css")
	require.Error(t, err)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "stat", ioErr.Op)
}

func TestLocatorLoadUnresolvableImportIsResolutionError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "entry.css", `@import "./missing.css";`)

	loc := New(Options{})
	_, err := loc.Load(path)
	require.Error(t, err)
	var rerr *ResolutionError
	require.ErrorAs(t, err, &rerr)
}

func TestLocatorLoadRemoteImportIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "entry.css", `@import "https://example.com/reset.css";
.entry { color: red; }`)

	loc := New(Options{})
	result, err := loc.Load(path)
	require.NoError(t, err)
	require.Len(t, result.Tokens, 1)
	require.Empty(t, result.Dependencies)
}

func TestExtractImportSpecifier(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantOK  bool
	}{
		{raw: ` "./a.css"`, want: "./a.css", wantOK: true},
		{raw: ` url(./a.css)`, want: "./a.css", wantOK: true},
		{raw: ` url("./a.css")`, want: "./a.css", wantOK: true},
		{raw: "   ", want: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := extractImportSpecifier(tt.raw)
		require.Equal(t, tt.wantOK, ok)
		if ok {
			require.Equal(t, tt.want, got)
		}
	}
}
