package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	scalaTypeRe = regexp.MustCompile(`^(case\s+)?(class|object|trait)\s+(\w+)`)
	scalaDefRe  = regexp.MustCompile(`^(override\s+)?def\s+(\w+)\s*(\(.*?\))?`)
)

func newScalaRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "scala",
		exts: []string{".scala", ".sc"},
		rules: []rule{
			{
				re: scalaTypeRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, fmt.Sprintf("%s%s %s", m[1], m[2], m[3]), i, end, lines)
				},
			},
			{
				re: scalaDefRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindFunction
					if strings.HasPrefix(m[2], "test") {
						kind = KindTest
					}
					return NewElement(kind, fmt.Sprintf("%s %s%s", kind, m[2], m[3]), i, end, lines)
				},
			},
		},
	}
}
