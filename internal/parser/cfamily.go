package parser

import (
	"fmt"
	"regexp"
)

var (
	cClassRe  = regexp.MustCompile(`^class\s+(\w+)`)
	cStructRe = regexp.MustCompile(`^(typedef\s+)?struct\s+(\w+)`)
	cFnRe     = regexp.MustCompile(`^(\w[\w\s*&]+?)\s+(\w+)\s*\(([^)]*)\)\s*(\{|$)`)
	cLoopRe   = regexp.MustCompile(`^(for|while)\s*\((.+)\)\s*\{?`)
)

var cNonFnNames = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "return": true,
	"typedef": true, "struct": true, "class": true, "enum": true,
}

// newCFamilyRecognizer covers C and C++. The function rule is deliberately
// loose: anything shaped like `type name(args)` that is not a control
// keyword counts.
func newCFamilyRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "c_cpp",
		exts: []string{".c", ".h", ".cpp", ".hpp", ".cc", ".cxx"},
		rules: []rule{
			{
				re: cClassRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "class "+m[1], i, end, lines)
				},
			},
			{
				re: cStructRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "struct "+m[2], i, end, lines)
				},
			},
			{
				re: cFnRe,
				when: func(m []string, trimmed string) bool {
					return !cNonFnNames[m[2]]
				},
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindFunction, fmt.Sprintf("fn %s(%s)", m[2], m[3]), i, end, lines)
				},
			},
			loopRule(cLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
