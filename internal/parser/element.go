// Package parser provides lightweight code-structure extraction for the
// combicode application: per-language recognizers locate classes, functions
// and loops in source text, and a nesting pass turns the flat matches into
// a containment forest.
package parser

// Kind classifies a structural element.
type Kind string

// Element kinds shared across all language recognizers.
const (
	KindClass    Kind = "class"
	KindFunction Kind = "fn"
	KindCtor     Kind = "ctor"
	KindAsync    Kind = "async"
	KindTest     Kind = "test"
	KindLoop     Kind = "loop"
	KindImpl     Kind = "impl"
	KindDescribe Kind = "describe"
)

// Element is one recognized structural construct within a source file.
// Line numbers are 1-indexed and inclusive. Size is the UTF-8 byte count of
// the spanned lines with one newline byte per line, matching what the merge
// step writes.
type Element struct {
	Kind      Kind
	Label     string
	StartLine int
	EndLine   int
	Size      int
	Children  []*Element
}

// NewElement builds an element from a 0-indexed inclusive line span.
func NewElement(kind Kind, label string, start, end int, lines []string) *Element {
	return &Element{
		Kind:      kind,
		Label:     label,
		StartLine: start + 1,
		EndLine:   end + 1,
		Size:      spanSize(lines, start, end),
	}
}

// spanSize computes the byte size of lines[start..end], 0-indexed inclusive,
// counting one newline byte per line.
func spanSize(lines []string, start, end int) int {
	if end >= len(lines) {
		end = len(lines) - 1
	}

	size := 0
	for i := start; i <= end; i++ {
		size += len(lines[i]) + 1
	}
	return size
}
