package entities

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultIgnorePatterns excludes VCS internals, build output, IDE metadata and
// VCS attribute files. Patterns use gitignore syntax and are matched against
// every component of a path.
//
//nolint:gochecknoglobals // default configuration value, copied into Settings
var DefaultIgnorePatterns = []string{
	".git",
	".svn",
	".hg",
	".bzr",
	"build",
	"target",
	"node_modules",
	"dist",
	"out",
	".idea",
	".vscode",
	".gradle",
	".settings",
	".metadata",
	".history",
	".cache",
	".classpath",
	".project",
	"*.iml",
	"*.ipr",
	"*.iws",
	".DS_Store",
	".gitignore",
	".gitattributes",
	".gitmodules",
	".gitkeep",
}

// PathFilter decides whether a path may be inspected at all. It performs no I/O.
type PathFilter struct {
	matcher gitignore.Matcher
}

// NewPathFilter compiles the given exclusion patterns. Blank lines and
// comment lines ("# ...") are ignored, as in a .gitignore file.
func NewPathFilter(patterns []string) *PathFilter {
	compiled := make([]gitignore.Pattern, 0, len(patterns))
	for _, raw := range patterns {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		compiled = append(compiled, gitignore.ParsePattern(trimmed, nil))
	}
	return &PathFilter{matcher: gitignore.NewMatcher(compiled)}
}

// IsEligible returns false when any exclusion pattern matches the path.
func (f *PathFilter) IsEligible(path string) bool {
	components := splitPath(path)
	if len(components) == 0 {
		return false
	}
	return !f.matcher.Match(components, false)
}

func splitPath(path string) []string {
	normalized := strings.ReplaceAll(filepath.ToSlash(path), "\\", "/")
	parts := strings.Split(normalized, "/")
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		components = append(components, part)
	}
	return components
}
