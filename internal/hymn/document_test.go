package hymn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "metadata": {"filename": "app.log", "line_count": 3, "temperature": "critical", "mood": "cool"},
  "lines": [
    [["timestamp", "12:00:01 ", "#888888"], ["message", "server started", "#00FF00"]],
    [],
    [["error", "connection refused", "#FF0000"]]
  ]
}`

func TestDocumentUnmarshal(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &doc))

	assert.Equal(t, "app.log", doc.Metadata.Filename)
	assert.Equal(t, 3, doc.Metadata.LineCount)
	assert.Equal(t, "critical", doc.Metadata.Temperature)
	assert.Equal(t, "cool", doc.Metadata.Mood)

	require.Equal(t, 3, doc.Len())
	require.Len(t, doc.Line(0), 2)
	assert.Equal(t, "timestamp", doc.Line(0)[0].Kind)
	assert.Equal(t, "12:00:01 ", doc.Line(0)[0].Text)
	assert.Equal(t, "#888888", doc.Line(0)[0].Color)

	// blank source line decodes to an empty token line, still one row
	assert.Len(t, doc.Line(1), 0)
}

func TestTokenLinePlainIsLossless(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &doc))

	assert.Equal(t, "12:00:01 server started", doc.Line(0).Plain())
	assert.Equal(t, "", doc.Line(1).Plain())
	assert.Equal(t, "connection refused", doc.Line(2).Plain())
}

func TestTokenUnmarshalRejectsWrongArity(t *testing.T) {
	var tok Token
	assert.Error(t, json.Unmarshal([]byte(`["kind", "text"]`), &tok))
	assert.Error(t, json.Unmarshal([]byte(`"not an array"`), &tok))
}

func TestLineCountMismatchIsTolerated(t *testing.T) {
	// the classifier claims 10 lines but delivers 2; layout uses Len()
	doc, err := ParseDocument([]byte(`{
	  "metadata": {"filename": "x.log", "line_count": 10, "temperature": "neutral", "mood": "neutral"},
	  "lines": [[["w", "a", "#FFFFFF"]], [["w", "b", "#FFFFFF"]]]
	}`))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, 10, doc.Metadata.LineCount)
}
