package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaurelions/combicode/internal/loggy"
)

func TestServiceStructure(t *testing.T) {
	svc := NewService(loggy.NewNoopLogger())

	t.Run("dispatches by extension", func(t *testing.T) {
		src := strings.Join([]string{
			"class Server:",
			"    def __init__(self):",
			"        pass",
			"",
			"    def start(self):",
			"        pass",
		}, "\n")

		roots := svc.Structure("app/server.py", src)

		require.Len(t, roots, 1)
		assert.Equal(t, "class Server", roots[0].Label)
		require.Len(t, roots[0].Children, 2)
		assert.Equal(t, KindCtor, roots[0].Children[0].Kind)
		assert.Equal(t, "fn start(self)", roots[0].Children[1].Label)
	})

	t.Run("extension matching is case insensitive", func(t *testing.T) {
		roots := svc.Structure("Main.PY", "def run():\n    pass")
		require.Len(t, roots, 1)
	})

	t.Run("unknown extension yields no structure", func(t *testing.T) {
		assert.Nil(t, svc.Structure("notes.txt", "for x in y:"))
	})

	t.Run("no elements yields nil", func(t *testing.T) {
		assert.Nil(t, svc.Structure("empty.py", "x = 1\n"))
	})
}

type stubRecognizer struct{}

func (stubRecognizer) Name() string              { return "stub" }
func (stubRecognizer) CanHandle(ext string) bool { return ext == ".stub" }
func (stubRecognizer) Scan(content string, lines []string) []*Element {
	return []*Element{NewElement(KindClass, "class Stub", 0, len(lines)-1, lines)}
}

func TestServiceRegisterRecognizer(t *testing.T) {
	svc := NewService(loggy.NewNoopLogger())

	require.Nil(t, svc.Structure("thing.stub", "line one\nline two"))

	svc.RegisterRecognizer(stubRecognizer{})

	roots := svc.Structure("thing.stub", "line one\nline two")
	require.Len(t, roots, 1)
	assert.Equal(t, "class Stub", roots[0].Label)
}

func TestRegistryForExtension(t *testing.T) {
	reg := NewRegistry(loggy.NewNoopLogger())
	reg.Register(newLuaRecognizer())

	rec, err := reg.ForExtension(".lua")
	require.NoError(t, err)
	assert.Equal(t, "lua", rec.Name())

	_, err = reg.ForExtension(".zig")
	assert.Error(t, err)
}
