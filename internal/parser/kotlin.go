package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	ktTypeRe = regexp.MustCompile(`^(open\s+|abstract\s+|data\s+|sealed\s+)?(class|interface|object)\s+(\w+)`)
	ktFunRe  = regexp.MustCompile(`^(public\s+|private\s+|protected\s+|internal\s+)?(override\s+)?(suspend\s+)?fun\s+(\w+)\s*\((.*?)\)`)
	ktLoopRe = regexp.MustCompile(`^(for|while)\s*\((.+)\)\s*\{?`)
)

func newKotlinRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "kotlin",
		exts: []string{".kt", ".kts"},
		rules: []rule{
			{
				re: ktTypeRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, fmt.Sprintf("%s %s", m[2], m[3]), i, end, lines)
				},
			},
			{
				re: ktFunRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindFunction
					switch {
					case strings.HasPrefix(m[4], "test"):
						kind = KindTest
					case m[3] != "":
						kind = KindAsync
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[4], m[5]), i, end, lines)
				},
			},
			loopRule(ktLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
