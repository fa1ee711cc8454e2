package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndOfIndentBlock(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start int
		want  int
	}{
		{
			name: "simple block",
			src: strings.Join([]string{
				"def foo():",
				"    a = 1",
				"    return a",
				"x = 2",
			}, "\n"),
			start: 0,
			want:  2,
		},
		{
			name: "blank lines do not terminate",
			src: strings.Join([]string{
				"def foo():",
				"    a = 1",
				"",
				"    return a",
				"x = 2",
			}, "\n"),
			start: 0,
			want:  3,
		},
		{
			name: "runs to end of file",
			src: strings.Join([]string{
				"def foo():",
				"    a = 1",
				"    return a",
			}, "\n"),
			start: 0,
			want:  2,
		},
		{
			name: "sibling at same indent terminates",
			src: strings.Join([]string{
				"    def foo():",
				"        pass",
				"    def bar():",
				"        pass",
			}, "\n"),
			start: 0,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(tt.src, "\n")
			assert.Equal(t, tt.want, endOfIndentBlock(lines, tt.start))
		})
	}
}

func TestEndOfBraceBlock(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start int
		want  int
	}{
		{
			name: "single level",
			src: strings.Join([]string{
				"function foo() {",
				"  return 1;",
				"}",
			}, "\n"),
			start: 0,
			want:  2,
		},
		{
			name: "nested braces",
			src: strings.Join([]string{
				"class A {",
				"  method() {",
				"    if (x) {}",
				"  }",
				"}",
				"done",
			}, "\n"),
			start: 0,
			want:  4,
		},
		{
			name: "brace opens on a later line",
			src: strings.Join([]string{
				"int main()",
				"{",
				"  return 0;",
				"}",
			}, "\n"),
			start: 0,
			want:  3,
		},
		{
			name:  "unbalanced runs to end of file",
			src:   "void f() {\n  x();",
			start: 0,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(tt.src, "\n")
			assert.Equal(t, tt.want, endOfBraceBlock(lines, tt.start))
		})
	}
}

func TestEndOfRubyBlock(t *testing.T) {
	src := strings.Join([]string{
		"class Foo",
		"  def bar",
		"    if x",
		"      y",
		"    end",
		"  end",
		"end",
		"puts 1",
	}, "\n")
	lines := strings.Split(src, "\n")

	assert.Equal(t, 6, endOfRubyBlock(lines, 0))
	assert.Equal(t, 5, endOfRubyBlock(lines, 1))
}

func TestEndOfLuaBlock(t *testing.T) {
	src := strings.Join([]string{
		"function foo()",
		"  if x then",
		"    y()",
		"  end",
		"end",
		"print(1)",
	}, "\n")
	lines := strings.Split(src, "\n")

	assert.Equal(t, 4, endOfLuaBlock(lines, 0))
}

func TestEndOfDoneBlock(t *testing.T) {
	src := strings.Join([]string{
		"for f in *.txt",
		"do",
		"  echo $f",
		"done",
	}, "\n")
	lines := strings.Split(src, "\n")

	assert.Equal(t, 3, endOfDoneBlock(lines, 0))

	// No done keyword leaves the loop at its head.
	assert.Equal(t, 2, endOfDoneBlock([]string{"x", "y", "while true"}, 2))
}
