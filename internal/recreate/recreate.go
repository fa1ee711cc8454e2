// Package recreate restores a project tree from a previously merged
// document by extracting every file block and writing it back to disk.
package recreate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aaurelions/combicode/internal/loggy"
)

var (
	fileBlockRe       = regexp.MustCompile("# FILE:\\s*(.+?)\\s*\\[.*?\\]\n````\n((?s:.*?))\n````")
	legacyFileBlockRe = regexp.MustCompile("### \\*\\*FILE:\\*\\*\\s*`(.+?)`\n````\n((?s:.*?))\n````")
)

// ExtractedFile is one file block pulled out of a merged document.
type ExtractedFile struct {
	Path    string
	Content string
}

// FileResult reports the outcome for one recreated file.
type FileResult struct {
	Path    string
	Size    int64
	Skipped bool
}

// Report summarizes a recreate run.
type Report struct {
	Files     []FileResult
	TotalSize int64
}

// Options control a recreate run.
type Options struct {
	InputPath string
	OutputDir string
	DryRun    bool
	Overwrite bool
}

// Service restores project trees from merged documents.
type Service struct {
	logger *loggy.Logger
}

// NewService creates a new recreate service
func NewService(logger *loggy.Logger) *Service {
	return &Service{logger: logger}
}

// Extract pulls every file block out of a merged document. Blocks whose
// content was omitted during merging are dropped. The legacy block format
// is tried when the current one yields nothing.
func Extract(content string) []ExtractedFile {
	files := extractWith(fileBlockRe, content)
	if len(files) == 0 {
		files = extractWith(legacyFileBlockRe, content)
	}
	return files
}

func extractWith(re *regexp.Regexp, content string) []ExtractedFile {
	var files []ExtractedFile
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		path := strings.TrimSpace(m[1])
		body := m[2]
		if strings.HasPrefix(strings.TrimSpace(body), "(Content omitted") {
			continue
		}
		files = append(files, ExtractedFile{Path: path, Content: body})
	}
	return files
}

// Run extracts the file blocks from the input document and writes them
// under the output directory. Existing files are skipped unless Overwrite
// is set; a dry run reports without touching disk.
func (s *Service) Run(opts Options) (*Report, error) {
	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	files := Extract(string(data))
	if len(files) == 0 {
		return nil, fmt.Errorf("no files found in %s", opts.InputPath)
	}

	report := &Report{}
	for _, f := range files {
		result := FileResult{Path: f.Path, Size: int64(len(f.Content))}
		report.TotalSize += result.Size

		if !opts.DryRun {
			fullPath := filepath.Join(opts.OutputDir, f.Path)
			if _, err := os.Stat(fullPath); err == nil && !opts.Overwrite {
				result.Skipped = true
				report.Files = append(report.Files, result)
				continue
			}
			if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
				return nil, fmt.Errorf("creating directory for %s: %w", f.Path, err)
			}
			if err := os.WriteFile(fullPath, []byte(f.Content), 0o644); err != nil {
				return nil, fmt.Errorf("writing %s: %w", f.Path, err)
			}
			s.logger.Debug("Recreated file", "path", fullPath, "size", result.Size)
		}

		report.Files = append(report.Files, result)
	}

	return report, nil
}
