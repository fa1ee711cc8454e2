// Package scanner walks a project tree and selects the files to merge,
// honoring layered .gitignore files, extra exclude patterns, submodule
// paths and binary detection.
package scanner

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/aaurelions/combicode/internal/loggy"
	"github.com/aaurelions/combicode/internal/parser"
	"github.com/aaurelions/combicode/internal/utils"
)

// safetyIgnores are always excluded regardless of gitignore settings.
var safetyIgnores = []string{".git", ".DS_Store"}

// File is one file selected for inclusion. RelPath is slash-separated and
// relative to the scan root.
type File struct {
	AbsPath       string
	RelPath       string
	Size          int64
	FormattedSize string
}

// Result is the outcome of a project scan.
type Result struct {
	Files   []File
	Ignored int
}

// Options control a scan.
type Options struct {
	Root          string
	OutputPath    string
	ExtraExcludes []string
	IncludeExts   []string
	UseGitignore  bool
}

// Service walks project trees.
type Service struct {
	logger   *loggy.Logger
	detector *parser.LanguageDetector
}

// NewService creates a new scanner service
func NewService(logger *loggy.Logger, detector *parser.LanguageDetector) *Service {
	return &Service{
		logger:   logger,
		detector: detector,
	}
}

// Scan walks the tree under opts.Root and returns the files to include,
// sorted by path, along with the count of ignored entries.
func (s *Service) Scan(opts Options) (*Result, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, err
	}

	opts.OutputPath = resolvePath(opts.OutputPath)

	patterns := s.rootPatterns(root, opts.ExtraExcludes)

	allowedExts := map[string]bool{}
	for _, ext := range opts.IncludeExts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		allowedExts["."+strings.ToLower(strings.Trim(ext, "."))] = true
	}

	res := &Result{}
	s.scanDir(root, root, patterns, opts, allowedExts, res)

	sort.Slice(res.Files, func(i, j int) bool {
		return res.Files[i].AbsPath < res.Files[j].AbsPath
	})

	return res, nil
}

// rootPatterns builds the always-on exclusion set: safety ignores, user
// excludes and git submodule paths from .gitmodules.
func (s *Service) rootPatterns(root string, extraExcludes []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, p := range safetyIgnores {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}
	for _, p := range extraExcludes {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, gitignore.ParsePattern(p, nil))
		}
	}
	patterns = append(patterns, s.submodulePatterns(root)...)
	return patterns
}

// submodulePatterns reads submodule paths from .gitmodules so their
// contents are never merged.
func (s *Service) submodulePatterns(root string) []gitignore.Pattern {
	f, err := os.Open(filepath.Join(root, ".gitmodules"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "path") || !strings.Contains(line, "=") {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		if strings.TrimSpace(key) == "path" {
			patterns = append(patterns, gitignore.ParsePattern(strings.TrimSpace(value), nil))
		}
	}
	return patterns
}

// scanDir recurses through dir carrying the gitignore pattern chain built
// up from ancestor directories.
func (s *Service) scanDir(root, dir string, patterns []gitignore.Pattern, opts Options, allowedExts map[string]bool, res *Result) {
	if opts.UseGitignore {
		patterns = append(patterns, s.gitignorePatterns(root, dir)...)
	}
	matcher := gitignore.NewMatcher(patterns)

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("Skipping unreadable directory", "path", dir, "error", err)
		return
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		rel, err := filepath.Rel(root, fullPath)
		if err != nil {
			continue
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")

		if entry.IsDir() {
			if matcher.Match(segments, true) {
				res.Ignored++
				continue
			}
			s.scanDir(root, fullPath, patterns, opts, allowedExts, res)
			continue
		}

		if opts.OutputPath != "" && (fullPath == opts.OutputPath || resolvePath(fullPath) == opts.OutputPath) {
			continue
		}
		if matcher.Match(segments, false) {
			res.Ignored++
			continue
		}
		if s.detector.IsBinaryFile(fullPath) {
			res.Ignored++
			continue
		}
		if len(allowedExts) > 0 && !allowedExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			res.Ignored++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		res.Files = append(res.Files, File{
			AbsPath:       fullPath,
			RelPath:       filepath.ToSlash(rel),
			Size:          info.Size(),
			FormattedSize: utils.FormatBytes(info.Size()),
		})
	}
}

// resolvePath follows symlinks so the output artifact is recognized even
// when it is reached through a link. Paths that do not exist yet are
// returned as given.
func resolvePath(path string) string {
	if path == "" {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// gitignorePatterns loads the .gitignore in dir, if any, with its pattern
// domain set to the directory so patterns match relative to it.
func (s *Service) gitignorePatterns(root, dir string) []gitignore.Pattern {
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}

	var domain []string
	if dir != root {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return nil
		}
		domain = strings.Split(filepath.ToSlash(rel), "/")
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}
