package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	pyClassRe    = regexp.MustCompile(`^class\s+(\w+)(\(.*?\))?\s*:`)
	pyAsyncDefRe = regexp.MustCompile(`^async\s+def\s+(\w+)\s*\((.*?)\)(\s*->.*?)?\s*:`)
	pyDefRe      = regexp.MustCompile(`^def\s+(\w+)\s*\((.*?)\)(\s*->.*?)?\s*:`)
	pyLoopRe     = regexp.MustCompile(`^(for|while)\s+(.+):\s*$`)
)

// newPythonRecognizer recognizes Python classes, functions and loops from
// indentation-delimited blocks.
func newPythonRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "python",
		exts: []string{".py"},
		rules: []rule{
			{
				re: pyClassRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfIndentBlock(lines, i)
					return NewElement(KindClass, "class "+m[1], i, end, lines)
				},
			},
			{
				re: pyAsyncDefRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfIndentBlock(lines, i)
					kind := KindAsync
					if m[1] == "__init__" {
						kind = KindCtor
					}
					sig := fmt.Sprintf("%s(%s)%s", m[1], m[2], m[3])
					return NewElement(kind, fmt.Sprintf("%s %s", kind, sig), i, end, lines)
				},
			},
			{
				re: pyDefRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfIndentBlock(lines, i)
					kind := KindFunction
					switch {
					case m[1] == "__init__":
						kind = KindCtor
					case strings.HasPrefix(m[1], "test_"):
						kind = KindTest
					}
					sig := fmt.Sprintf("%s(%s)%s", m[1], m[2], m[3])
					return NewElement(kind, fmt.Sprintf("%s %s", kind, sig), i, end, lines)
				},
			},
			loopRule(pyLoopRe, endOfIndentBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
