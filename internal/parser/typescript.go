package parser

import (
	"fmt"
	"regexp"
)

var (
	tsInterfaceRe = regexp.MustCompile(`^(export\s+)?(default\s+)?interface\s+(\w+)`)
	tsClassRe     = regexp.MustCompile(`^(export\s+)?(default\s+)?(abstract\s+)?class\s+(\w+)`)
)

// newTypeScriptRecognizer extends the JavaScript rules with interfaces and
// abstract classes. TypeScript has no constructor function form, so plain
// functions are always fn.
func newTypeScriptRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "typescript",
		exts: []string{".ts", ".tsx", ".mts", ".cts"},
		rules: []rule{
			{
				re: tsInterfaceRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "interface "+m[3], i, end, lines)
				},
			},
			{
				re: tsClassRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "class "+m[4], i, end, lines)
				},
			},
			describeRule(),
			itTestRule(),
			{
				re: jsAsyncFnRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindAsync, fmt.Sprintf("async %s(%s)", m[3], m[4]), i, end, lines)
				},
			},
			{
				re: jsFnRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindFunction, fmt.Sprintf("fn %s(%s)", m[3], m[4]), i, end, lines)
				},
			},
			arrowRule(),
			loopRule(jsLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
