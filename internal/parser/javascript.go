package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	jsClassRe    = regexp.MustCompile(`^(export\s+)?(default\s+)?class\s+(\w+)`)
	jsDescribeRe = regexp.MustCompile("^describe\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]")
	jsItTestRe   = regexp.MustCompile("^(it|test)\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]")
	jsAsyncFnRe  = regexp.MustCompile(`^(export\s+)?(default\s+)?async\s+function\s+(\w+)\s*\((.*?)\)`)
	jsFnRe       = regexp.MustCompile(`^(export\s+)?(default\s+)?function\s+(\w+)\s*\((.*?)\)`)
	jsArrowRe    = regexp.MustCompile(`^(export\s+)?(const|let|var)\s+(\w+)\s*=\s*(async\s+)?\(?(.*?)\)?\s*=>`)
	jsLoopRe     = regexp.MustCompile(`^(for|while)\s*\((.+)\)\s*\{?`)
)

// describeRule matches describe("...") test-framework blocks.
func describeRule() rule {
	return rule{
		re: jsDescribeRe,
		emit: func(m []string, i int, lines []string) *Element {
			end := endOfBraceBlock(lines, i)
			return NewElement(KindDescribe, "describe "+m[1], i, end, lines)
		},
	}
}

// itTestRule matches it("...") and test("...") call-style test cases.
func itTestRule() rule {
	return rule{
		re: jsItTestRe,
		emit: func(m []string, i int, lines []string) *Element {
			end := endOfBraceBlock(lines, i)
			return NewElement(KindTest, "test "+m[2], i, end, lines)
		},
	}
}

// arrowRule matches const/let/var arrow-function bindings. Only arrow
// functions with a braced body on the same line form a block worth
// indexing; expression bodies fall through to later rules.
func arrowRule() rule {
	return rule{
		re: jsArrowRe,
		when: func(m []string, trimmed string) bool {
			return strings.Contains(trimmed, "{")
		},
		emit: func(m []string, i int, lines []string) *Element {
			end := endOfBraceBlock(lines, i)
			if end <= i {
				return nil
			}
			kind := KindFunction
			if m[4] != "" {
				kind = KindAsync
			}
			return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[3], m[5]), i, end, lines)
		},
	}
}

// newJavaScriptRecognizer recognizes JavaScript classes, functions, arrow
// functions, test blocks and loops from brace-delimited blocks.
func newJavaScriptRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "javascript",
		exts: []string{".js", ".jsx", ".mjs", ".cjs"},
		rules: []rule{
			{
				re: jsClassRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindClass, "class "+m[3], i, end, lines)
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
					kind := KindFunction
					if m[3] == "constructor" {
						kind = KindCtor
					}
					return NewElement(kind, fmt.Sprintf("%s %s(%s)", kind, m[3], m[4]), i, end, lines)
				},
			},
			arrowRule(),
			loopRule(jsLoopRe, endOfBraceBlock, func(m []string) string {
				return fmt.Sprintf("loop %s %s", m[1], m[2])
			}),
		},
	}
}
