package render

import (
	"bufio"
	"io"

	"github.com/colorhymn/hymnless/internal/hymn"
	"github.com/colorhymn/hymnless/internal/palette"
)

// Static writes a complete formatted transcript of a document, suitable for
// piping to less or redirecting to a file.
type Static struct {
	backend  Backend
	resolver *palette.Resolver
	numWidth int
}

// NewStatic creates a static renderer bound to a backend
func NewStatic(b Backend, p *palette.Resolver, numWidth int) *Static {
	if numWidth <= 0 {
		numWidth = 5
	}
	return &Static{backend: b, resolver: p, numWidth: numWidth}
}

// WriteDocument emits the banner, a blank line, then every line in order.
// Lines are written one at a time; the document is never buffered whole.
func (s *Static) WriteDocument(w io.Writer, doc *hymn.Document) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Banner(doc.Metadata, s.backend, s.resolver)); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n\n"); err != nil {
		return err
	}

	for i := 0; i < doc.Len(); i++ {
		if _, err := bw.WriteString(Line(i+1, s.numWidth, doc.Line(i), s.backend)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
