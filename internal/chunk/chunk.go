package chunk

import (
	"github.com/gubarz/lispdoc/internal/source"
)

// Kind distinguishes the two classifications a chunk can have.
type Kind int

const (
	Code Kind = iota
	Comment
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k == Comment {
		return "comment"
	}
	return "code"
}

// Chunk is a maximal contiguous run of lines sharing one classification.
// Inline is meaningful only for Comment chunks: it is computed from the
// chunk's first line and marks a comment indented into surrounding code.
type Chunk struct {
	Kind   Kind
	Lines  []source.Line
	Inline bool
}

// Parser groups a classified line sequence into ordered chunks.
type Parser struct {
	classifier *source.Classifier
}

// NewParser creates a parser using the given classifier.
func NewParser(classifier *source.Classifier) *Parser {
	return &Parser{classifier: classifier}
}

// parser state: before any line, inside a code run, inside a comment run.
type state int

const (
	stateNone state = iota
	stateCode
	stateComment
)

// Parse partitions lines into chunks. Transitions are driven by the
// comment-vs-code classification alone; whether a comment line is inline
// never forces a boundary, so adjacent comment lines always share a chunk
// and the chunk's Inline flag comes from its first line only. The chunks
// cover every input line exactly once, in order; no two adjacent chunks
// share a kind. A zero-line input yields no chunks.
func (p *Parser) Parse(lines []source.Line) []Chunk {
	var chunks []Chunk
	var buffer []source.Line
	current := stateNone

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		chunks = append(chunks, p.seal(current, buffer))
		buffer = nil
	}

	for _, line := range lines {
		next := stateCode
		if p.classifier.IsComment(line.Text) {
			next = stateComment
		}
		if next != current {
			flush()
			current = next
		}
		buffer = append(buffer, line)
	}
	flush()

	return chunks
}

func (p *Parser) seal(s state, lines []source.Line) Chunk {
	if s == stateComment {
		return Chunk{
			Kind:   Comment,
			Lines:  lines,
			Inline: p.classifier.IsInline(lines[0].Text),
		}
	}
	return Chunk{Kind: Code, Lines: lines}
}
