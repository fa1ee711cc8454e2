package parser

import "regexp"

var (
	perlPackageRe = regexp.MustCompile(`^package\s+([\w:]+)`)
	perlSubRe     = regexp.MustCompile(`^sub\s+(\w+)`)
)

// newPerlRecognizer indexes package declarations as single-line markers and
// subs as brace blocks.
func newPerlRecognizer() *ruleRecognizer {
	return &ruleRecognizer{
		name: "perl",
		exts: []string{".pl", ".pm"},
		rules: []rule{
			{
				re: perlPackageRe,
				emit: func(m []string, i int, lines []string) *Element {
					return NewElement(KindClass, "package "+m[1], i, i, lines)
				},
			},
			{
				re: perlSubRe,
				emit: func(m []string, i int, lines []string) *Element {
					end := endOfBraceBlock(lines, i)
					return NewElement(KindFunction, "fn "+m[1], i, end, lines)
				},
			},
		},
	}
}
