package scanner

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// GlobSet matches slash-separated relative paths against a set of glob
// patterns. A bare pattern like *.lock matches at any depth, mirroring
// gitignore wildmatch; a pattern containing a slash is anchored.
type GlobSet struct {
	globs []glob.Glob
}

// CompileGlobSet compiles comma-separated glob patterns.
func CompileGlobSet(patterns []string) (*GlobSet, error) {
	gs := &GlobSet{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling glob %q: %w", p, err)
		}
		gs.globs = append(gs.globs, g)

		if !strings.Contains(p, "/") {
			g, err := glob.Compile("**/"+p, '/')
			if err != nil {
				return nil, fmt.Errorf("compiling glob %q: %w", p, err)
			}
			gs.globs = append(gs.globs, g)
		}
	}
	return gs, nil
}

// Match reports whether the relative path matches any pattern in the set.
func (gs *GlobSet) Match(relPath string) bool {
	if gs == nil {
		return false
	}
	for _, g := range gs.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}

// Empty reports whether the set has no patterns.
func (gs *GlobSet) Empty() bool {
	return gs == nil || len(gs.globs) == 0
}
