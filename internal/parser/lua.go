package parser

import (
	"fmt"
	"regexp"
)

var (
	luaFnRe   = regexp.MustCompile(`^(local\s+)?function\s+([\w.:]+)\s*\((.*?)\)`)
	luaLoopRe = regexp.MustCompile(`^(for|while)\s+(.+)\s+do`)
)

func newLuaRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "lua",
		exts: []string{".lua"},
		rules: []rule{
			{
				re: luaFnRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfLuaBlock(lines, i)
					return NewElement(KindFunction, fmt.Sprintf("fn %s(%s)", m[2], m[3]), i, end, lines)
				},
			},
			loopRule(luaLoopRe, endOfLuaBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
