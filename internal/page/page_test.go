package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf strings.Builder
	fragments := []string{"<p>one</p>\n", "<pre class=\"brush: lisp\">x\n</pre>\n"}

	require.NoError(t, Write(&buf, "src/core.clj", fragments))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>src/core.clj</title>")
	assert.Contains(t, out, Stylesheet)
	assert.Contains(t, out, fragments[0]+fragments[1])
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestWriteEscapesTitle(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Write(&buf, "a<b>.clj", nil))
	assert.Contains(t, buf.String(), "<title>a&lt;b&gt;.clj</title>")
}

func TestWriteEmptyBody(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Write(&buf, "empty.clj", nil))
	assert.Contains(t, buf.String(), "<div class=\"container\">\n</div>")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsError(t *testing.T) {
	err := Write(failWriter{}, "t", []string{"<p>x</p>"})
	assert.ErrorContains(t, err, "disk full")
}
