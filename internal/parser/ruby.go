package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rbClassRe  = regexp.MustCompile(`^class\s+(\w+)`)
	rbModuleRe = regexp.MustCompile(`^module\s+(\w+)`)
	rbDefRe    = regexp.MustCompile(`^def\s+(self\.)?(\w+[?!=]?)\s*(\(.*?\))?`)
)

// newRubyRecognizer recognizes Ruby classes, modules and methods delimited
// by end keywords. Ruby loops are left unindexed; the block tracker cannot
// tell a loop do..end from an iterator block.
func newRubyRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "ruby",
		exts: []string{".rb"},
		rules: []rule{
			{
				re: rbClassRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfRubyBlock(lines, i)
					return NewElement(KindClass, "class "+m[1], i, end, lines)
				},
			},
			{
				re: rbModuleRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfRubyBlock(lines, i)
					return NewElement(KindClass, "module "+m[1], i, end, lines)
				},
			},
			{
				re: rbDefRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfRubyBlock(lines, i)
					kind := KindFunction
					switch {
					case m[2] == "initialize":
						kind = KindCtor
					case strings.HasPrefix(m[2], "test_"):
						kind = KindTest
					}
					return NewElement(kind, fmt.Sprintf("%s %s%s%s", kind, m[1], m[2], m[3]), i, end, lines)
				},
			},
		},
	}
}
