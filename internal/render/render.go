package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gubarz/lispdoc/internal/chunk"
)

// Renderer converts chunks into HTML fragments. Code becomes an escaped
// preformatted block; comments go through the markup converter, with
// inline comments wrapped in a styled container.
type Renderer struct {
	conv   *Converter
	marker string
}

// NewRenderer creates a renderer using the given converter and the
// two-character comment marker to strip from comment lines.
func NewRenderer(conv *Converter, marker string) *Renderer {
	return &Renderer{conv: conv, marker: marker}
}

// Render produces the HTML fragment for a chunk. Empty chunks render
// to the empty string.
func (r *Renderer) Render(ch chunk.Chunk) (string, error) {
	if len(ch.Lines) == 0 {
		return "", nil
	}
	if ch.Kind == chunk.Code {
		return r.renderCode(ch), nil
	}
	if ch.Inline {
		return r.renderInlineComment(ch)
	}
	return r.renderComment(ch)
}

func (r *Renderer) renderCode(ch chunk.Chunk) string {
	var text strings.Builder
	for _, line := range ch.Lines {
		text.WriteString(line.Text)
		text.WriteByte('\n')
	}
	return fmt.Sprintf("<pre class=\"brush: lisp\">%s</pre>\n", html.EscapeString(text.String()))
}

// commentLine strips the marker from one comment line. A single space
// after the marker is eaten too; a comment with nothing left becomes a
// bare newline so blank comment lines keep paragraphs apart in the markup.
func (r *Renderer) commentLine(text string) string {
	trimmed := strings.TrimSpace(text)
	stripped := ""
	if len(trimmed) > len(r.marker) && trimmed[len(r.marker)] == ' ' {
		stripped = trimmed[len(r.marker)+1:]
	} else if len(trimmed) >= len(r.marker) {
		stripped = trimmed[len(r.marker):]
	}
	if stripped == "" {
		return "\n"
	}
	return stripped + "\n"
}

func (r *Renderer) renderComment(ch chunk.Chunk) (string, error) {
	var text strings.Builder
	for _, line := range ch.Lines {
		text.WriteString(r.commentLine(line.Text))
	}
	return r.conv.Convert(text.String())
}

func (r *Renderer) renderInlineComment(ch chunk.Chunk) (string, error) {
	fragment, err := r.renderComment(ch)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<div class=\"inline-comment\">\n%s</div>\n", fragment), nil
}
