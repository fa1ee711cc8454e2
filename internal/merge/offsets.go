package merge

import "strings"

// ComputeOffsets assigns merged-line ranges to every record and returns the
// final code index. The index itself appears above the merged code, and its
// height depends on the ML numbers printed inside it, so offsets are found
// by fixed point: a provisional numbering produces an index whose line
// count fixes the header height, and a second numbering pass shifts every
// file below it. The index height never changes between passes because ML
// digits do not add lines.
func ComputeOffsets(files []*FileRecord, rootName, prompt string, includeHeader, noParse bool) string {
	cursor := 1
	for _, f := range files {
		f.MLStart = cursor
		if f.SkipContent {
			f.MLEnd = cursor + 1
			cursor += 4 + 1
		} else {
			f.MLEnd = cursor + f.LineCount - 1
			cursor += 4 + f.LineCount
		}
	}

	index := RenderIndex(files, rootName, noParse)
	indexLines := CountLines(index)

	headerLines := 1
	if includeHeader {
		headerLines = strings.Count(prompt, "\n") + 2 // prompt + blank line
		headerLines += 1                              // <code_index>
		headerLines += indexLines
		headerLines += 1 // </code_index>
		headerLines += 1 // blank line
		headerLines += 1 // <merged_code>
	}

	// Each file contributes a header line, an opening fence, its content
	// (one placeholder line when omitted), a closing fence and a blank.
	cursor = headerLines + 1
	for _, f := range files {
		f.MLStart = cursor + 2
		if f.SkipContent {
			f.MLEnd = f.MLStart
			cursor += 2 + 1 + 2
		} else {
			f.MLEnd = f.MLStart + f.LineCount - 1
			cursor += 2 + f.LineCount + 2
		}
	}

	return RenderIndex(files, rootName, noParse)
}
