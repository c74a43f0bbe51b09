package hymn

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Token is a contiguous run of text sharing one color and semantic kind.
// Kind is preserved for forward compatibility but not used for rendering.
type Token struct {
	Kind  string
	Text  string
	Color string // "#RRGGBB"
}

// UnmarshalJSON decodes the wire form, a 3-element array [kind, text, color]
func (t *Token) UnmarshalJSON(data []byte) error {
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("token: expected 3 elements, got %d", len(tuple))
	}
	t.Kind, t.Text, t.Color = tuple[0], tuple[1], tuple[2]
	return nil
}

// TokenLine is one source line as an ordered sequence of colored runs.
// An empty slice is a blank line and still occupies one display row.
type TokenLine []Token

// Plain reconstructs the original source line by concatenating token texts
func (l TokenLine) Plain() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Metadata describes the whole classified document
type Metadata struct {
	Filename    string `json:"filename"`
	LineCount   int    `json:"line_count"`
	Temperature string `json:"temperature"`
	Mood        string `json:"mood"`
}

// Document is the fully classified representation of one input file.
// It is immutable once parsed; renderers only read it.
type Document struct {
	Metadata Metadata    `json:"metadata"`
	Lines    []TokenLine `json:"lines"`
}

// Len returns the actual number of lines. Metadata.LineCount is the
// classifier's claim and may disagree; layout always uses Len.
func (d *Document) Len() int {
	return len(d.Lines)
}

// Line returns the token line at index (0-based)
func (d *Document) Line(i int) TokenLine {
	return d.Lines[i]
}
