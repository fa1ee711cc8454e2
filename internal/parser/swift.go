package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	swiftTypeRe = regexp.MustCompile(`^(public\s+|private\s+|internal\s+|open\s+|fileprivate\s+)?(final\s+)?(class|struct|enum|protocol)\s+(\w+)`)
	swiftFuncRe = regexp.MustCompile(`^(public\s+|private\s+|internal\s+|open\s+)?(static\s+|class\s+)?(override\s+)?func\s+(\w+)\s*\((.*?)\)`)
	swiftLoopRe = regexp.MustCompile(`^(for|while)\s+(.+)\s*\{`)
)

func newSwiftRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "swift",
		exts: []string{".swift"},
		rules: []rule{
			{
				re: swiftTypeRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, fmt.Sprintf("%s %s", m[3], m[4]), i, end, lines)
				},
			},
			{
				re: swiftFuncRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindFunction
					switch {
					case m[4] == "init":
						kind = KindCtor
					case strings.HasPrefix(m[4], "test"):
						kind = KindTest
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[4], m[5]), i, end, lines)
				},
			},
			loopRule(swiftLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
