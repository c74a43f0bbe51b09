package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Backend applies color and attributes to text runs. It is chosen once at
// startup; rendering code never branches on capabilities itself.
type Backend interface {
	// Token styles a token run in its 24-bit color ("#RRGGBB")
	Token(text, hex string) string
	// Dim renders text in the terminal's faint style
	Dim(text string) string
	// Bold renders text in the terminal's bold style
	Bold(text string) string
}

// Probe inspects the output's color capability and binds a backend.
// A true-color terminal gets the lipgloss backend; anything else falls back
// to literal ANSI escapes, with a one-line note on the error stream.
func Probe(out *os.File, logger *log.Logger) Backend {
	profile := termenv.NewOutput(out).ColorProfile()
	if profile == termenv.TrueColor {
		return NewStyled()
	}
	if logger != nil {
		logger.Warn("styled rendering unavailable, using raw ANSI output")
	}
	return ANSI{}
}

// Styled renders through lipgloss
type Styled struct {
	dim  lipgloss.Style
	bold lipgloss.Style
}

// NewStyled creates the lipgloss-backed backend
func NewStyled() *Styled {
	return &Styled{
		dim:  lipgloss.NewStyle().Faint(true),
		bold: lipgloss.NewStyle().Bold(true),
	}
}

func (s *Styled) Token(text, hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

func (s *Styled) Dim(text string) string {
	return s.dim.Render(text)
}

func (s *Styled) Bold(text string) string {
	return s.bold.Render(text)
}

// ANSI emits literal escape sequences with full 24-bit color. It is the
// fallback backend and also what lands in pipes for `less -R`.
type ANSI struct{}

func (ANSI) Token(text, hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

func (ANSI) Dim(text string) string {
	return "\x1b[2m" + text + "\x1b[0m"
}

func (ANSI) Bold(text string) string {
	return "\x1b[1m" + text + "\x1b[0m"
}

// parseHex decodes "#RRGGBB". Bad values render unstyled rather than failing.
func parseHex(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
