package merge

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const fence = "````"

// WriteDocument writes the merged artifact and returns the number of lines
// written. The index must already carry final ML offsets.
func WriteDocument(w io.Writer, files []*FileRecord, prompt, index string, includeHeader bool) (int, error) {
	bw := bufio.NewWriter(w)
	total := 0

	if includeHeader {
		fmt.Fprintf(bw, "%s\n\n", prompt)
		total += strings.Count(prompt, "\n") + 2

		bw.WriteString("<code_index>\n")
		bw.WriteString(index)
		bw.WriteString("</code_index>\n\n")
		total += CountLines(index) + 3
	}

	bw.WriteString("<merged_code>\n")
	total++

	for _, f := range files {
		fmt.Fprintf(bw, "# FILE: %s [OL: 1-%d | ML: %d-%d | %s]\n", f.RelPath, f.LineCount, f.MLStart, f.MLEnd, f.FormattedSize)
		bw.WriteString(fence + "\n")
		total += 2

		if f.SkipContent {
			fmt.Fprintf(bw, "(Content omitted - file size: %s)\n", f.FormattedSize)
			total++
		} else {
			bw.WriteString(f.Content)
			if !strings.HasSuffix(f.Content, "\n") {
				bw.WriteString("\n")
			}
			total += f.LineCount
		}

		bw.WriteString(fence + "\n\n")
		total += 2
	}

	bw.WriteString("</merged_code>\n")
	total++

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("writing merged output: %w", err)
	}
	return total, nil
}
