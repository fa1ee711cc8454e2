package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	phpTypeRe = regexp.MustCompile(`^(abstract\s+)?(final\s+)?(class|interface|trait)\s+(\w+)`)
	phpFnRe   = regexp.MustCompile(`^(public\s+|private\s+|protected\s+)?(static\s+)?function\s+(\w+)\s*\((.*?)\)`)
	phpLoopRe = regexp.MustCompile(`^(for|foreach|while)\s*\((.+)\)\s*\{?`)
)

// newPHPRecognizer recognizes PHP classes, traits, functions and loops.
func newPHPRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "php",
		exts: []string{".php"},
		rules: []rule{
			{
				re: phpTypeRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, fmt.Sprintf("%s %s", m[3], m[4]), i, end, lines)
				},
			},
			{
				re: phpFnRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindFunction
					switch {
					case m[3] == "__construct":
						kind = KindCtor
					case strings.HasPrefix(m[3], "test"):
						kind = KindTest
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[3], m[4]), i, end, lines)
				},
			},
			loopRule(phpLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
