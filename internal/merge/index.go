package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aaurelions/combicode/internal/parser"
	"github.com/aaurelions/combicode/internal/utils"
)

type indexNode struct {
	children map[string]*indexNode
	file     *FileRecord
}

func newIndexNode() *indexNode {
	return &indexNode{children: make(map[string]*indexNode)}
}

// RenderIndex renders the code index tree: directories and files in
// box-drawing layout, each file annotated with its OL and ML ranges and
// size, with the file's element forest nested beneath it.
func RenderIndex(files []*FileRecord, rootName string, noParse bool) string {
	root := newIndexNode()
	for _, f := range files {
		parts := strings.Split(f.RelPath, "/")
		node := root
		for i, part := range parts {
			if i == len(parts)-1 {
				leaf := newIndexNode()
				leaf.file = f
				node.children[part] = leaf
				break
			}
			next, ok := node.children[part]
			if !ok {
				next = newIndexNode()
				node.children[part] = next
			}
			node = next
		}
	}

	lines := []string{rootName + "/"}
	lines = renderLevel(lines, root, "", noParse)
	return strings.Join(lines, "\n") + "\n"
}

func renderLevel(lines []string, level *indexNode, prefix string, noParse bool) []string {
	keys := make([]string, 0, len(level.children))
	for k := range level.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for idx, key := range keys {
		isLast := idx == len(keys)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		node := level.children[key]
		if node.file != nil {
			f := node.file
			lines = append(lines, fmt.Sprintf("%s%s%s [OL: 1-%d | ML: %d-%d | %s]",
				prefix, connector, key, f.LineCount, f.MLStart, f.MLEnd, f.FormattedSize))

			if f.SkipContent {
				lines = append(lines, fmt.Sprintf("%s(Content omitted - file size: %s)", childPrefix, f.FormattedSize))
			} else if !noParse && len(f.Elements) > 0 {
				lines = renderElements(lines, f.Elements, childPrefix, f.MLStart)
			}
		} else {
			lines = append(lines, prefix+connector+key+"/")
			lines = renderLevel(lines, node, childPrefix, noParse)
		}
	}
	return lines
}

func renderElements(lines []string, elements []*parser.Element, prefix string, mlOffset int) []string {
	for idx, el := range elements {
		isLast := idx == len(elements)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		mlStart := mlOffset + el.StartLine - 1
		mlEnd := mlOffset + el.EndLine - 1
		lines = append(lines, fmt.Sprintf("%s%s%s [OL: %d-%d | ML: %d-%d | %s]",
			prefix, connector, el.Label, el.StartLine, el.EndLine, mlStart, mlEnd, utils.FormatBytes(int64(el.Size))))

		if len(el.Children) > 0 {
			lines = renderElements(lines, el.Children, childPrefix, mlOffset)
		}
	}
	return lines
}
