package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	bashFunctionRe = regexp.MustCompile(`^function\s+(\w+)`)
	bashFnParenRe  = regexp.MustCompile(`^(\w+)\s*\(\s*\)\s*\{?`)
	bashLoopDoRe   = regexp.MustCompile(`^(for|while)\s+(.+?);\s*do`)
	bashLoopRe     = regexp.MustCompile(`^(for|while)\s+(.+)`)
)

// endOfDoneBlock ends a shell loop at the next line that is exactly "done",
// or at the loop head itself when none follows.
func endOfDoneBlock(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "done" {
			return j
		}
	}
	return start
}

func newBashRecognizer() *ruleRecognizer {
	bashLoopLabel := func(m []string) string {
		return fmt.Sprintf("loop %s %s", m[1], m[2])
	}
	return &ruleRecognizer{
		name: "bash",
		exts: []string{".sh", ".bash", ".zsh"},
		rules: []rule{
			{
				re: bashFunctionRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindFunction, "fn "+m[1], i, end, lines)
				},
			},
			{
				re: bashFnParenRe,
				when: func(m []string, trimmed string) bool {
					return strings.Contains(trimmed, "()")
				},
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindFunction, "fn "+m[1], i, end, lines)
				},
			},
			loopRule(bashLoopDoRe, endOfDoneBlock, bashLoopLabel),
			loopRule(bashLoopRe, endOfDoneBlock, bashLoopLabel),
		},
	}
}
