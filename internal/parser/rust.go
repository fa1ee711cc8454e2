package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rustStructRe = regexp.MustCompile(`^(pub\s+)?struct\s+(\w+)`)
	rustEnumRe   = regexp.MustCompile(`^(pub\s+)?enum\s+(\w+)`)
	rustTraitRe  = regexp.MustCompile(`^(pub\s+)?trait\s+(\w+)`)
	rustImplRe   = regexp.MustCompile(`^impl\s+(.+?)\s*\{`)
	rustFnRe     = regexp.MustCompile(`^(pub\s+)?(async\s+)?fn\s+(\w+)\s*\((.*?)\)`)
	rustLoopRe   = regexp.MustCompile(`^(for|while|loop)\b(.*)?\{`)
)

func rustTypeRule(re *regexp.Regexp, keyword string) rule {
	return rule{
		re: re,
		emit: func(m []string, i int, lines []string) *Element {
			end := endOfBraceBlock(lines, i)
			return NewElement(KindClass, keyword+" "+m[2], i, end, lines)
		},
	}
}

// newRustRecognizer recognizes Rust types, impl blocks, functions and loops.
func newRustRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "rust",
		exts: []string{".rs"},
		rules: []rule{
			rustTypeRule(rustStructRe, "struct"),
			rustTypeRule(rustEnumRe, "enum"),
			rustTypeRule(rustTraitRe, "trait"),
			{
				re: rustImplRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindImpl, "impl "+m[1], i, end, lines)
				},
			},
			{
				re: rustFnRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					kind := KindFunction
					switch {
					case strings.HasPrefix(m[3], "test_"):
						kind = KindTest
					case m[2] != "":
						kind = KindAsync
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[3], m[4]), i, end, lines)
				},
			},
			loopRule(rustLoopRe, endOfBraceBlock, func(m []string) string {
				rest := strings.TrimSpace(m[2])
				if rest != "" {
					return fmt.Sprintf("loop %s %s", m[1], rest)
				}
				return "loop " + m[1]
			}),
		},
	}
}
