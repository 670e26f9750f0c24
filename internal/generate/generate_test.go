package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(src, out string) Options {
	return Options{
		Source: src,
		Out:    out,
		Ext:    ".clj",
		Marker: ";;",
		Jobs:   1,
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRunGeneratesPages(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeTree(t, src, map[string]string{
		"core.clj": ";; Core namespace\n(ns example.core)\n  ;; inline note\n(defn f [] 1)\n",
		filepath.Join("src", "util.clj"): ";; Utilities\n(defn g [] 2)\n",
		"ignored.txt":                    "not a source file\n",
	})

	gen := New(testOptions(src, out), zerolog.Nop())
	stats, err := gen.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Positive(t, stats.Chunks)

	data, err := os.ReadFile(filepath.Join(out, "core.clj.html"))
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>core.clj</title>")
	assert.Contains(t, html, "Core namespace")
	assert.Contains(t, html, "<pre class=\"brush: lisp\">")
	assert.Contains(t, html, "<div class=\"inline-comment\">")

	_, err = os.Stat(filepath.Join(out, "src_util.clj.html"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "ignored.txt.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunEmptySourceFile(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeTree(t, src, map[string]string{"empty.clj": ""})

	stats, err := New(testOptions(src, out), zerolog.Nop()).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Zero(t, stats.Chunks)

	data, err := os.ReadFile(filepath.Join(out, "empty.clj.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<div class=\"container\">\n</div>")
}

func TestRunIdempotent(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeTree(t, src, map[string]string{
		"core.clj": ";; Prose with a link https://example.com\n(defn f [] :ok)\n",
	})

	opts := testOptions(src, out)
	_, err := New(opts, zerolog.Nop()).Run()
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(out, "core.clj.html"))
	require.NoError(t, err)

	_, err = New(opts, zerolog.Nop()).Run()
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(out, "core.clj.html"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunOverwritesStaleOutput(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeTree(t, src, map[string]string{"core.clj": ";; fresh\n"})

	stale := filepath.Join(out, "core.clj.html")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	_, err := New(testOptions(src, out), zerolog.Nop()).Run()
	require.NoError(t, err)

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fresh")
	assert.NotContains(t, string(data), "stale")
}

func TestRunParallelMatchesSerial(t *testing.T) {
	src := t.TempDir()
	out1 := t.TempDir()
	out2 := t.TempDir()
	writeTree(t, src, map[string]string{
		"a.clj": ";; a\n(a)\n",
		"b.clj": ";; b\n(b)\n",
		"c.clj": ";; c\n(c)\n",
		"d.clj": ";; d\n(d)\n",
	})

	_, err := New(testOptions(src, out1), zerolog.Nop()).Run()
	require.NoError(t, err)

	opts := testOptions(src, out2)
	opts.Jobs = 4
	_, err = New(opts, zerolog.Nop()).Run()
	require.NoError(t, err)

	entries, err := os.ReadDir(out1)
	require.NoError(t, err)
	for _, entry := range entries {
		serial, err := os.ReadFile(filepath.Join(out1, entry.Name()))
		require.NoError(t, err)
		parallel, err := os.ReadFile(filepath.Join(out2, entry.Name()))
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, entry.Name())
	}
}

func TestRunTitlePrefix(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeTree(t, src, map[string]string{"core.clj": ";; x\n"})

	opts := testOptions(src, out)
	opts.Title = "example"
	_, err := New(opts, zerolog.Nop()).Run()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "core.clj.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>example: core.clj</title>")
}

func TestRunMissingDirsFatal(t *testing.T) {
	dir := t.TempDir()

	_, err := New(testOptions(filepath.Join(dir, "missing"), dir), zerolog.Nop()).Run()
	assert.Error(t, err)

	_, err = New(testOptions(dir, filepath.Join(dir, "missing")), zerolog.Nop()).Run()
	assert.Error(t, err)
}
