package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	records := testRecords()
	index := ComputeOffsets(records, "proj", testPrompt, true, true)

	var buf strings.Builder
	total, err := WriteDocument(&buf, records, testPrompt, index, true)
	require.NoError(t, err)

	doc := buf.String()
	assert.True(t, strings.HasSuffix(doc, "</merged_code>\n"))

	// The reported line count matches the document.
	assert.Equal(t, total, CountLines(doc))

	// ML offsets address the right lines, as sed would read them.
	lines := strings.Split(doc, "\n")
	assert.Equal(t, "one", lines[records[0].MLStart-1])
	assert.Equal(t, "three", lines[records[0].MLEnd-1])
	assert.Equal(t, "x", lines[records[1].MLStart-1])
	assert.Equal(t, "y", lines[records[1].MLEnd-1])

	assert.Contains(t, doc, "# FILE: a.txt [OL: 1-3 | ML: 14-16 | 12.0B]\n````\n")
	assert.Contains(t, doc, "<code_index>\n"+index+"</code_index>\n")
}

func TestWriteDocumentNoHeader(t *testing.T) {
	records := testRecords()
	index := ComputeOffsets(records, "proj", testPrompt, false, true)

	var buf strings.Builder
	total, err := WriteDocument(&buf, records, testPrompt, index, false)
	require.NoError(t, err)

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, "<merged_code>\n"))
	assert.NotContains(t, doc, "<code_index>")
	assert.Equal(t, total, CountLines(doc))

	lines := strings.Split(doc, "\n")
	assert.Equal(t, "one", lines[records[0].MLStart-1])
	assert.Equal(t, "y", lines[records[1].MLEnd-1])
}

func TestWriteDocumentSkippedContent(t *testing.T) {
	records := testRecords()
	records[1].SkipContent = true
	records[1].Content = ""
	records[1].LineCount = 0
	index := ComputeOffsets(records, "proj", testPrompt, true, true)

	var buf strings.Builder
	total, err := WriteDocument(&buf, records, testPrompt, index, true)
	require.NoError(t, err)

	doc := buf.String()
	assert.Equal(t, total, CountLines(doc))

	lines := strings.Split(doc, "\n")
	assert.Equal(t, "(Content omitted - file size: 8.0B)", lines[records[1].MLStart-1])
}

func TestWriteDocumentAddsMissingTrailingNewline(t *testing.T) {
	records := []*FileRecord{
		{RelPath: "a.txt", Content: "no newline", LineCount: 1, FormattedSize: "10.0B"},
	}
	index := ComputeOffsets(records, "proj", testPrompt, false, true)

	var buf strings.Builder
	total, err := WriteDocument(&buf, records, testPrompt, index, false)
	require.NoError(t, err)

	doc := buf.String()
	assert.Contains(t, doc, "````\nno newline\n````\n")
	assert.Equal(t, total, CountLines(doc))
}
