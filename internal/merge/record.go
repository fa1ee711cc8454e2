// Package merge assembles scanned files into a single document: it computes
// where each file's content lands in the merged output, renders the code
// index tree, and writes the final artifact.
package merge

import (
	"strings"

	"github.com/aaurelions/combicode/internal/parser"
)

// FileRecord carries one file through the merge pipeline. MLStart and
// MLEnd are 1-indexed line numbers of the file's content inside the merged
// document; OL numbering always starts at 1 within the file itself.
type FileRecord struct {
	AbsPath       string
	RelPath       string
	Size          int64
	FormattedSize string

	Content     string
	LineCount   int
	SkipContent bool
	Elements    []*parser.Element

	MLStart int
	MLEnd   int
}

// CountLines counts the lines of a content string the way the merged
// document stores it: a missing trailing newline still closes a line, and
// empty content is one line.
func CountLines(content string) int {
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
