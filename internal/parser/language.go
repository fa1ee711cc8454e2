package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aaurelions/combicode/internal/loggy"
	"github.com/go-enry/go-enry/v2"
)

// LanguageDetector classifies files by language and spots binaries.
type LanguageDetector struct {
	logger *loggy.Logger
}

// NewLanguageDetector creates a new language detector
func NewLanguageDetector(logger *loggy.Logger) *LanguageDetector {
	return &LanguageDetector{
		logger: logger,
	}
}

// DetectLanguage classifies already-loaded file content by language,
// falling back to "Binary" or "Text" when no language matches.
func (d *LanguageDetector) DetectLanguage(filePath string, content []byte) string {
	fileName := filepath.Base(filePath)

	if language := enry.GetLanguage(fileName, content); language != "" {
		return language
	}
	if language, _ := enry.GetLanguageByExtension(filePath); language != "" {
		return language
	}
	if language, _ := enry.GetLanguageByFilename(fileName); language != "" {
		return language
	}
	if enry.IsBinary(content) {
		return "Binary"
	}
	return "Text"
}

// IsBinaryFile reports whether a file looks binary, judged from an 8KB
// sample the way git does. Unreadable files are not treated as binary;
// the read error surfaces later when the content is loaded.
func (d *LanguageDetector) IsBinaryFile(filePath string) bool {
	data, err := readFileSample(filePath, 8*1024)
	if err != nil {
		d.logger.Debug("Error sampling file for binary check", "path", filePath, "error", err)
		return false
	}
	return enry.IsBinary(data)
}

// readFileSample reads a sample of a file up to maxSize bytes
func readFileSample(filePath string, maxSize int64) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("getting file info: %w", err)
	}

	size := fileInfo.Size()
	if size > maxSize {
		size = maxSize
	}

	sample := make([]byte, size)
	n, err := file.Read(sample)
	if err != nil && n == 0 && size > 0 {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sample[:n], nil
}
