// Package render turns classified documents into terminal output. The same
// formatting rules feed both the static transcript and the interactive
// viewport so the two stay visually consistent.
package render

import (
	"fmt"
	"strings"

	"github.com/colorhymn/hymnless/internal/hymn"
	"github.com/colorhymn/hymnless/internal/palette"
)

// Banner formats the box-drawing header line for the static transcript
func Banner(meta hymn.Metadata, b Backend, p *palette.Resolver) string {
	var sb strings.Builder
	sb.WriteString(b.Bold(fmt.Sprintf("━━━ %s ", meta.Filename)))
	sb.WriteString(b.Dim(fmt.Sprintf("│ %d lines ", meta.LineCount)))
	sb.WriteString(b.Dim("│ temp: "))
	sb.WriteString(b.Token(meta.Temperature, p.Resolve(meta.Temperature)))
	sb.WriteString(b.Dim(" │ mood: "))
	sb.WriteString(b.Token(meta.Mood, p.Resolve(meta.Mood)))
	sb.WriteString(" ━━━")
	return sb.String()
}

// InfoBar formats the persistent metadata line for the interactive viewer,
// using the same coloring rule as the banner.
func InfoBar(meta hymn.Metadata, b Backend, p *palette.Resolver) string {
	var sb strings.Builder
	sb.WriteString(b.Bold(fmt.Sprintf(" %s ", meta.Filename)))
	sb.WriteString(b.Dim(fmt.Sprintf("│ %d lines ", meta.LineCount)))
	sb.WriteString(b.Dim("│ temp: "))
	sb.WriteString(b.Token(meta.Temperature, p.Resolve(meta.Temperature)))
	sb.WriteString(b.Dim(" │ mood: "))
	sb.WriteString(b.Token(meta.Mood, p.Resolve(meta.Mood)))
	return sb.String()
}

// Line formats one display row: a right-aligned dim line number, a space
// outside the dim run, then each token in its own color with no separators.
// A blank source line is just the number prefix.
func Line(num, numWidth int, line hymn.TokenLine, b Backend) string {
	var sb strings.Builder
	sb.WriteString(b.Dim(fmt.Sprintf("%*d", numWidth, num)))
	sb.WriteString(" ")
	for _, tok := range line {
		sb.WriteString(b.Token(tok.Text, tok.Color))
	}
	return sb.String()
}
