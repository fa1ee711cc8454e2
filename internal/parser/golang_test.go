package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoRecognizerAST(t *testing.T) {
	rec := newGoRecognizer()

	t.Run("types and funcs", func(t *testing.T) {
		src := strings.Join([]string{
			"package demo",
			"",
			"type Server struct {",
			"	port int",
			"}",
			"",
			"type Handler interface {",
			"	Handle() error",
			"}",
			"",
			"func (s *Server) Start(addr string) error {",
			"	return nil",
			"}",
			"",
			"func TestStart(t *testing.T) {",
			"}",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 4)

		assert.Equal(t, KindClass, els[0].Kind)
		assert.Equal(t, "struct Server", els[0].Label)
		assert.Equal(t, 3, els[0].StartLine)
		assert.Equal(t, 5, els[0].EndLine)

		assert.Equal(t, "interface Handler", els[1].Label)

		assert.Equal(t, KindFunction, els[2].Kind)
		assert.Equal(t, "fn (s *Server) Start(addr: string) -> error", els[2].Label)
		assert.Equal(t, 11, els[2].StartLine)
		assert.Equal(t, 13, els[2].EndLine)

		assert.Equal(t, KindTest, els[3].Kind)
		assert.Equal(t, "test TestStart(t)", els[3].Label)
	})

	t.Run("signature rendering", func(t *testing.T) {
		src := strings.Join([]string{
			"package demo",
			"",
			"func add(a, b int) int {",
			"	return a + b",
			"}",
			"",
			"func split(s string) (string, string) {",
			"	return s, s",
			"}",
			"",
			"func apply(xs []int, f func(int) int) []int {",
			"	return xs",
			"}",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 3)
		// Shared names each carry their type; a single simple result is
		// rendered, multiple results are not.
		assert.Equal(t, "fn add(a: int, b: int) -> int", els[0].Label)
		assert.Equal(t, "fn split(s: string)", els[1].Label)
		// Composite parameter types keep the bare name.
		assert.Equal(t, "fn apply(xs, f)", els[2].Label)
	})

	t.Run("long range loop", func(t *testing.T) {
		src := strings.Join([]string{
			"package demo",
			"",
			"func sum(xs []int) int {",
			"	total := 0",
			"	for _, x := range xs {",
			"		total += x",
			"		total += x",
			"		total += x",
			"		total += x",
			"	}",
			"	return total",
			"}",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 2)
		assert.Equal(t, KindLoop, els[1].Kind)
		assert.Equal(t, "loop for _, x := range xs", els[1].Label)
		assert.Equal(t, 5, els[1].StartLine)
		assert.Equal(t, 10, els[1].EndLine)
	})

	t.Run("short loop suppressed", func(t *testing.T) {
		src := strings.Join([]string{
			"package demo",
			"",
			"func f() {",
			"	for i := 0; i < 3; i++ {",
			"		g(i)",
			"	}",
			"}",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 1)
		assert.Equal(t, KindFunction, els[0].Kind)
	})
}

func TestGoRecognizerFallback(t *testing.T) {
	rec := newGoRecognizer()

	// Missing package clause makes go/parser fail; the rule table takes
	// over.
	src := strings.Join([]string{
		"type Config struct {",
		"	Name string",
		"}",
		"",
		"func (c Config) Valid() bool {",
		"	return c.Name != \"\"",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 2)
	assert.Equal(t, "struct Config", els[0].Label)
	assert.Equal(t, "fn (c Config) Valid()", els[1].Label)
}
