package parser

import "sort"

// Nest turns a flat element list into a containment forest. Elements are
// ordered by start line, with the longer span first on ties so that a
// block and the construct opening it nest outer-first. An element becomes
// a child of the nearest enclosing span and a root otherwise.
func Nest(elements []*Element) []*Element {
	if len(elements) == 0 {
		return nil
	}

	sorted := make([]*Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartLine != sorted[j].StartLine {
			return sorted[i].StartLine < sorted[j].StartLine
		}
		return sorted[i].EndLine-sorted[i].StartLine > sorted[j].EndLine-sorted[j].StartLine
	})

	var roots []*Element
	var stack []*Element

	for _, el := range sorted {
		el.Children = nil

		for len(stack) > 0 {
			parent := stack[len(stack)-1]
			if el.StartLine >= parent.StartLine && el.EndLine <= parent.EndLine {
				break
			}
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, el)
		} else {
			roots = append(roots, el)
		}

		stack = append(stack, el)
	}

	return roots
}
