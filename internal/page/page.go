package page

import (
	"fmt"
	"html"
	"io"
)

// errWriter remembers the first write error so a page can be emitted
// with a single error check at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(data []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(data)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Write emits one complete HTML document: fixed head with the escaped
// title and the embedded stylesheet, then the fragments concatenated in
// order with no separators between them.
func Write(w io.Writer, title string, fragments []string) error {
	ew := &errWriter{w: w}

	fmt.Fprintf(ew, top, html.EscapeString(title), Stylesheet)
	for _, fragment := range fragments {
		io.WriteString(ew, fragment)
	}
	fmt.Fprint(ew, bottom)

	return ew.err
}

const top = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
<div class="container">
`

const bottom = `</div>
</body>
</html>
`

// Stylesheet is the literal page style. It is embedded in every output
// document and printed verbatim by the css subcommand.
const Stylesheet = `body {
  margin: 0;
  font-family: Georgia, serif;
  font-size: 16px;
  line-height: 1.5;
  color: #252519;
  background: #fdfdfb;
}
.container {
  max-width: 46rem;
  margin: 0 auto;
  padding: 2rem 1rem 4rem;
}
pre {
  font-family: Menlo, Consolas, monospace;
  font-size: 13px;
  line-height: 1.4;
  padding: 0.6rem 0.8rem;
  overflow-x: auto;
  background: #f5f5f0;
  border-left: 3px solid #d8d8cc;
}
code {
  font-family: Menlo, Consolas, monospace;
  font-size: 0.85em;
  background: #f0f0ea;
  padding: 0 0.2em;
}
a { color: #261a3b; }
.inline-comment {
  margin-left: 2.5rem;
  color: #555;
  border-left: 3px solid #e8e8df;
  padding-left: 0.8rem;
}
`
