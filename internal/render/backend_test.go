package render

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeNonTTYFallsBackWithDiagnostic(t *testing.T) {
	// a non-terminal output has no styled capability: the raw backend is
	// bound and a single-line note goes to the given logger
	f, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer f.Close()

	var buf bytes.Buffer
	b := Probe(f, log.New(&buf))

	_, isANSI := b.(ANSI)
	assert.True(t, isANSI)
	assert.Contains(t, buf.String(), "raw ANSI")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestANSIToken(t *testing.T) {
	b := ANSI{}

	assert.Equal(t, "\x1b[38;2;255;0;0mboom\x1b[0m", b.Token("boom", "#FF0000"))
	assert.Equal(t, "\x1b[38;2;0;255;255mchill\x1b[0m", b.Token("chill", "#00FFFF"))
	assert.Equal(t, "\x1b[38;2;18;52;86mx\x1b[0m", b.Token("x", "#123456"))
}

func TestANSITokenBadHexLeftUnstyled(t *testing.T) {
	b := ANSI{}

	assert.Equal(t, "plain", b.Token("plain", "red"))
	assert.Equal(t, "plain", b.Token("plain", "#GGGGGG"))
	assert.Equal(t, "plain", b.Token("plain", ""))
}

func TestANSIDimAndBold(t *testing.T) {
	b := ANSI{}

	assert.Equal(t, "\x1b[2m    1 \x1b[0m", b.Dim("    1 "))
	assert.Equal(t, "\x1b[1mtitle\x1b[0m", b.Bold("title"))
}

func TestParseHex(t *testing.T) {
	r, g, bl, ok := parseHex("#FF8700")
	assert.True(t, ok)
	assert.Equal(t, uint8(0xFF), r)
	assert.Equal(t, uint8(0x87), g)
	assert.Equal(t, uint8(0x00), bl)

	_, _, _, ok = parseHex("FF8700")
	assert.False(t, ok)
}
