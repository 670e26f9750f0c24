package source

import (
	"bufio"
	"os"
	"strings"
)

// Line is a single source line with its 1-based position in the file.
// The text carries no trailing line terminator.
type Line struct {
	Number int
	Text   string
}

// ReadLines reads a file into its ordered sequence of lines.
// An empty file yields a nil slice.
func ReadLines(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []Line
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, Line{Number: len(lines) + 1, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Classifier decides whether a line is a comment, based on a fixed
// two-character marker (the language's line-comment token doubled).
type Classifier struct {
	marker string
}

// DefaultMarker is the doubled line-comment token of the lisp family.
const DefaultMarker = ";;"

// NewClassifier creates a classifier for the given marker. An empty
// marker falls back to DefaultMarker.
func NewClassifier(marker string) *Classifier {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Classifier{marker: marker}
}

// Marker returns the comment marker this classifier matches.
func (c *Classifier) Marker() string {
	return c.marker
}

// IsComment reports whether the line is a comment: after trimming
// surrounding whitespace it must be longer than one character and start
// with the marker. Empty and all-whitespace lines are not comments, so
// a blank line inside a comment run terminates that run.
func (c *Classifier) IsComment(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 1 {
		return false
	}
	return strings.HasPrefix(trimmed, c.marker)
}

// IsInline reports whether a comment line is interleaved with code:
// it must be a comment and the untrimmed line must start with a space.
// A comment starting at column zero is a standalone block comment.
func (c *Classifier) IsInline(text string) bool {
	if !c.IsComment(text) {
		return false
	}
	return strings.HasPrefix(text, " ")
}
