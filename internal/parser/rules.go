package parser

import (
	"regexp"
	"strings"
)

// rule couples a line pattern with an element constructor. Each recognizer
// owns an ordered rule list; the first rule whose pattern (and optional
// guard) matches a line wins, and that line is not offered to later rules.
// emit may return nil to consume a line without producing an element.
type rule struct {
	re   *regexp.Regexp
	when func(m []string, trimmed string) bool
	emit func(m []string, i int, lines []string) *Element
}

// scanRules applies an ordered rule list to every line, top to bottom.
func scanRules(lines []string, rules []rule) []*Element {
	var elements []*Element
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, r := range rules {
			m := r.re.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			if r.when != nil && !r.when(m, trimmed) {
				continue
			}
			if el := r.emit(m, i, lines); el != nil {
				elements = append(elements, el)
			}
			break
		}
	}
	return elements
}

// ruleRecognizer is a Recognizer backed purely by a rule table. Most
// languages are handled this way; languages with a real grammar get a
// dedicated recognizer that falls back to one of these.
type ruleRecognizer struct {
	name  string
	exts  []string
	rules []rule
}

func (r *ruleRecognizer) Name() string { return r.name }

func (r *ruleRecognizer) CanHandle(ext string) bool {
	for _, e := range r.exts {
		if e == ext {
			return true
		}
	}
	return false
}

func (r *ruleRecognizer) Scan(content string, lines []string) []*Element {
	return scanRules(lines, r.rules)
}

// loopRule builds the shared "emit a loop only when its span exceeds five
// lines" rule from a pattern and a span locator. labelOf receives the
// regex groups and returns the loop label.
func loopRule(re *regexp.Regexp, span func(lines []string, start int) int, labelOf func(m []string) string) rule {
	return rule{
		re: re,
		emit: func(m []string, i int, lines []string) *Element {
			end := span(lines, i)
			if end-i+1 <= 5 {
				return nil
			}
			return NewElement(KindLoop, labelOf(m), i, end, lines)
		},
	}
}
