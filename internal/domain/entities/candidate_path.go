package entities

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned when a path does not live under its repository root.
var ErrOutsideRoot = errors.New("path is outside the repository root")

// RepositoryRoot is the top-level working directory of a Git repository.
type RepositoryRoot string

// String returns the root as a plain path.
func (r RepositoryRoot) String() string { return string(r) }

// CandidatePath identifies one working-tree file by its absolute form and by
// its form relative to the owning repository root (always slash separated,
// as Git expects).
type CandidatePath struct {
	Absolute string
	Relative string
}

// NewCandidatePath resolves path against root. Symlinked directories on
// either side are resolved before comparing, since backends may report the
// root in its physical form. The final path component is kept as is so a
// tracked symlink stays itself.
func NewCandidatePath(path string, root RepositoryRoot) (CandidatePath, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return CandidatePath{}, fmt.Errorf("invalid path %q: %w", path, err)
	}
	absRoot, err := filepath.Abs(root.String())
	if err != nil {
		return CandidatePath{}, fmt.Errorf("invalid repository root %q: %w", root, err)
	}

	physical := filepath.Join(evalExisting(filepath.Dir(absolute)), filepath.Base(absolute))
	relative, err := filepath.Rel(evalExisting(absRoot), physical)
	if err != nil {
		return CandidatePath{}, fmt.Errorf("%w: %s", ErrOutsideRoot, absolute)
	}
	if relative == "." || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return CandidatePath{}, fmt.Errorf("%w: %s", ErrOutsideRoot, absolute)
	}

	return CandidatePath{
		Absolute: absolute,
		Relative: filepath.ToSlash(relative),
	}, nil
}

// evalExisting resolves symlinks in the longest existing prefix of path and
// appends the missing remainder unchanged.
func evalExisting(path string) string {
	var missing []string
	current := path
	for {
		if resolved, err := filepath.EvalSymlinks(current); err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return path
		}
		missing = append([]string{filepath.Base(current)}, missing...)
		current = parent
	}
}

func (p CandidatePath) String() string { return p.Absolute }
