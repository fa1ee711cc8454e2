package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaurelions/combicode/internal/loggy"
)

func TestDetectLanguage(t *testing.T) {
	det := NewLanguageDetector(loggy.NewNoopLogger())

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{"go source", "cmd/main.go", "package main\n\nfunc main() {}\n", "Go"},
		{"python source", "scripts/run.py", "def main():\n    pass\n", "Python"},
		{"well-known filename", "Dockerfile", "FROM alpine\n", "Dockerfile"},
		{"binary content", "blob.dat", "PK\x00\x00\x03\x04", "Binary"},
		{"plain text fallback", "notes.qqq", "just some words\n", "Text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := det.DetectLanguage(tt.path, []byte(tt.content))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBinaryFile(t *testing.T) {
	det := NewLanguageDetector(loggy.NewNoopLogger())
	dir := t.TempDir()

	textPath := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("hello\nworld\n"), 0o644))
	assert.False(t, det.IsBinaryFile(textPath))

	binPath := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(binPath, []byte{0x00, 0x01, 0x02, 0xff}, 0o644))
	assert.True(t, det.IsBinaryFile(binPath))

	// Unreadable files are not classified as binary so the read failure
	// can surface when the content is loaded.
	assert.False(t, det.IsBinaryFile(filepath.Join(dir, "missing.txt")))
}
