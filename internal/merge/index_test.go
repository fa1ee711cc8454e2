package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaurelions/combicode/internal/parser"
)

func TestRenderIndexTreeShape(t *testing.T) {
	records := []*FileRecord{
		{RelPath: "src/main.py", LineCount: 10, MLStart: 5, MLEnd: 14, FormattedSize: "1.0KB"},
		{RelPath: "src/util.py", LineCount: 4, MLStart: 20, MLEnd: 23, FormattedSize: "100.0B"},
		{RelPath: "README.md", LineCount: 2, MLStart: 30, MLEnd: 31, FormattedSize: "20.0B"},
	}

	index := RenderIndex(records, "proj", true)
	lines := strings.Split(strings.TrimRight(index, "\n"), "\n")

	require.Equal(t, []string{
		"proj/",
		"├── README.md [OL: 1-2 | ML: 30-31 | 20.0B]",
		"└── src/",
		"    ├── main.py [OL: 1-10 | ML: 5-14 | 1.0KB]",
		"    └── util.py [OL: 1-4 | ML: 20-23 | 100.0B]",
	}, lines)
}

func TestRenderIndexElements(t *testing.T) {
	records := []*FileRecord{
		{
			RelPath:       "server.py",
			LineCount:     20,
			MLStart:       10,
			MLEnd:         29,
			FormattedSize: "500.0B",
			Elements: []*parser.Element{
				{
					Kind:      parser.KindClass,
					Label:     "class Server",
					StartLine: 1,
					EndLine:   20,
					Size:      500,
					Children: []*parser.Element{
						{Kind: parser.KindCtor, Label: "ctor __init__(self)", StartLine: 2, EndLine: 5, Size: 80},
					},
				},
			},
		},
	}

	index := RenderIndex(records, "proj", false)
	lines := strings.Split(strings.TrimRight(index, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "└── server.py [OL: 1-20 | ML: 10-29 | 500.0B]", lines[1])
	// Element MLs are the file's ML origin plus the element's OL offset.
	assert.Equal(t, "    └── class Server [OL: 1-20 | ML: 10-29 | 500.0B]", lines[2])
	assert.Equal(t, "        └── ctor __init__(self) [OL: 2-5 | ML: 11-14 | 80.0B]", lines[3])
}

func TestRenderIndexNoParseHidesElements(t *testing.T) {
	records := []*FileRecord{
		{
			RelPath:       "a.py",
			LineCount:     3,
			FormattedSize: "10.0B",
			Elements: []*parser.Element{
				{Kind: parser.KindFunction, Label: "fn a()", StartLine: 1, EndLine: 3, Size: 10},
			},
		},
	}

	index := RenderIndex(records, "proj", true)

	assert.NotContains(t, index, "fn a()")
}
