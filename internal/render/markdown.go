package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Converter turns comment markup into HTML. Construction is the expensive
// part, so one instance is built at startup and injected into the renderer;
// its configuration is immutable and safe to share across files.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds the converter with smart punctuation and
// auto-linking of bare URLs enabled.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Typographer,
				extension.Linkify,
			),
		),
	}
}

// Convert renders markup text to an HTML fragment.
func (c *Converter) Convert(text string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
