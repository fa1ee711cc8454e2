package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	javaClassRe     = regexp.MustCompile(`^(public\s+|private\s+|protected\s+)?(static\s+)?(abstract\s+)?(final\s+)?class\s+(\w+)`)
	javaInterfaceRe = regexp.MustCompile(`^(public\s+|private\s+|protected\s+)?interface\s+(\w+)`)
	javaEnumRe      = regexp.MustCompile(`^(public\s+|private\s+|protected\s+)?enum\s+(\w+)`)
	javaMethodRe    = regexp.MustCompile(`^(public\s+|private\s+|protected\s+)?(static\s+)?(abstract\s+)?(final\s+)?(synchronized\s+)?(\w+\s+)?(\w+)\s*\((.*?)\)\s*(\{|throws)`)
	javaLoopRe      = regexp.MustCompile(`^(for|while)\s*\((.+)\)\s*\{?`)
)

var javaNonMethodNames = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true, "return": true,
}

// newJavaRecognizer recognizes Java types and methods. A method with no
// return type group is taken to be a constructor.
func newJavaRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "java",
		exts: []string{".java"},
		rules: []rule{
			{
				re: javaClassRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "class "+m[5], i, end, lines)
				},
			},
			{
				re: javaInterfaceRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "interface "+m[2], i, end, lines)
				},
			},
			{
				re: javaEnumRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "enum "+m[2], i, end, lines)
				},
			},
			{
				re: javaMethodRe,
				when: func(m []string, trimmed string) bool {
					return !javaNonMethodNames[m[7]]
				},
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindCtor
					if strings.TrimSpace(m[6]) != "" {
						kind = KindFunction
						if strings.HasPrefix(m[7], "test") {
							kind = KindTest
						}
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[7], m[8]), i, end, lines)
				},
			},
			loopRule(javaLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
