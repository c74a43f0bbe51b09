package view

import (
	"strings"

	"github.com/colorhymn/hymnless/internal/hymn"
	"github.com/colorhymn/hymnless/internal/render"
)

// LineProvider supplies token lines to the viewport. The viewport knows
// nothing about where documents come from; it only displays lines.
type LineProvider interface {
	Len() int
	Line(i int) hymn.TokenLine
}

// Viewport manages the visible window of a document: a scroll offset and a
// height, with all navigation clamped to valid positions.
type Viewport struct {
	provider LineProvider
	backend  render.Backend

	width  int
	height int

	scrollOffset int

	numWidth int
}

// NewViewport creates a viewport with the given dimensions
func NewViewport(width, height int, backend render.Backend) *Viewport {
	return &Viewport{
		width:    width,
		height:   height,
		backend:  backend,
		numWidth: 5,
	}
}

// SetProvider sets the line provider and resets scroll position
func (v *Viewport) SetProvider(p LineProvider) {
	v.provider = p
	v.scrollOffset = 0
}

// SetSize updates viewport dimensions
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	if height < 1 {
		height = 1
	}
	v.height = height
	v.clampScroll()
}

// Height returns the viewport height in rows
func (v *Viewport) Height() int {
	return v.height
}

// ScrollDown scrolls down by n lines
func (v *Viewport) ScrollDown(n int) {
	v.scrollOffset += n
	v.clampScroll()
}

// ScrollUp scrolls up by n lines
func (v *Viewport) ScrollUp(n int) {
	v.scrollOffset -= n
	v.clampScroll()
}

// PageDown scrolls down by one full viewport height
func (v *Viewport) PageDown() {
	v.ScrollDown(v.height)
}

// PageUp scrolls up by one full viewport height
func (v *Viewport) PageUp() {
	v.ScrollUp(v.height)
}

// GotoTop scrolls to the beginning
func (v *Viewport) GotoTop() {
	v.scrollOffset = 0
}

// GotoBottom scrolls so the last line is on the final row
func (v *Viewport) GotoBottom() {
	if v.provider == nil {
		return
	}
	v.scrollOffset = v.provider.Len() - v.height
	v.clampScroll()
}

// CurrentLine returns the current top line index (0-based)
func (v *Viewport) CurrentLine() int {
	return v.scrollOffset
}

// clampScroll keeps the offset within [0, max]
func (v *Viewport) clampScroll() {
	if v.provider == nil {
		v.scrollOffset = 0
		return
	}

	maxScroll := v.provider.Len() - v.height
	if maxScroll < 0 {
		maxScroll = 0
	}

	if v.scrollOffset > maxScroll {
		v.scrollOffset = maxScroll
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// Render returns the visible rows as a single string. Rows past the end of
// the document show a "~" marker.
func (v *Viewport) Render() string {
	if v.provider == nil {
		return ""
	}

	var builder strings.Builder
	total := v.provider.Len()

	for row := 0; row < v.height; row++ {
		if row > 0 {
			builder.WriteString("\n")
		}

		idx := v.scrollOffset + row
		if idx >= total {
			builder.WriteString("~")
			continue
		}

		builder.WriteString(render.Line(idx+1, v.numWidth, v.provider.Line(idx), v.backend))
	}

	return builder.String()
}

// PercentScrolled returns how far through the document the viewport is
func (v *Viewport) PercentScrolled() float64 {
	if v.provider == nil || v.provider.Len() == 0 {
		return 0
	}

	total := v.provider.Len()
	if total <= v.height {
		return 100
	}

	return float64(v.scrollOffset) / float64(total-v.height) * 100
}
