package parser

import (
	"fmt"
	"regexp"
)

var (
	csTypeRe   = regexp.MustCompile(`^(public\s+|private\s+|protected\s+|internal\s+)?(static\s+)?(abstract\s+|sealed\s+)?(partial\s+)?(class|struct|interface|enum|record)\s+(\w+)`)
	csMethodRe = regexp.MustCompile(`^(public\s+|private\s+|protected\s+|internal\s+)?(static\s+)?(async\s+)?(virtual\s+|override\s+|abstract\s+)?(\w[\w<>\[\],\s]*?)\s+(\w+)\s*\((.*?)\)\s*\{?`)
	csLoopRe   = regexp.MustCompile(`^(for|foreach|while)\s*\((.+)\)\s*\{?`)
)

var csNonMethodNames = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true, "return": true,
	"class": true, "struct": true, "interface": true, "enum": true,
}

// newCSharpRecognizer recognizes C# type declarations and methods.
func newCSharpRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "csharp",
		exts: []string{".cs"},
		rules: []rule{
			{
				re: csTypeRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, fmt.Sprintf("%s %s", m[5], m[6]), i, end, lines)
				},
			},
			{
				re: csMethodRe,
				when: func(m []string, trimmed string) bool {
					return !csNonMethodNames[m[6]]
				},
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindFunction
					if m[3] != "" {
						kind = KindAsync
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[6], m[7]), i, end, lines)
				},
			},
			loopRule(csLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
