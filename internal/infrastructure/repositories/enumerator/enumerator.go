// Package enumerator produces the candidate paths of one invocation lazily.
package enumerator

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

const gitDirName = ".git"

// PathEnumerator yields user-selected paths, walking directories on demand.
type PathEnumerator struct {
	paths []string
}

// NewPathEnumerator creates a PathEnumerator over the given selection.
func NewPathEnumerator(paths []string) *PathEnumerator {
	return &PathEnumerator{paths: paths}
}

// Total is the number of selected paths, or UnknownTotal when a directory has
// to be walked.
func (it *PathEnumerator) Total() int {
	for _, path := range it.paths {
		if isDir(path) {
			return domainRepos.UnknownTotal
		}
	}
	return len(it.paths)
}

// Paths yields files in selection order. Directories are expanded in lexical
// order without descending into .git.
func (it *PathEnumerator) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, path := range it.paths {
			if !isDir(path) {
				if !yield(path) {
					return
				}
				continue
			}
			if !walk(path, yield) {
				return
			}
		}
	}
}

// walk reports false once the consumer stopped the iteration.
func walk(root string, yield func(string) bool) bool {
	stopped := false
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Warnf("Cannot walk %s: %v", path, err)
			return nil
		}
		if entry.IsDir() {
			if entry.Name() == gitDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		if !yield(path) {
			stopped = true
			return filepath.SkipAll
		}
		return nil
	})
	if walkErr != nil {
		logger.Warnf("Failed to walk %s: %v", root, walkErr)
	}
	return !stopped
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RootedEnumerator yields repository-relative paths joined onto their root.
type RootedEnumerator struct {
	root  entities.RepositoryRoot
	files []string
}

// NewRootedEnumerator creates a RootedEnumerator.
func NewRootedEnumerator(root entities.RepositoryRoot, files []string) *RootedEnumerator {
	return &RootedEnumerator{root: root, files: files}
}

// Total is the number of files.
func (it *RootedEnumerator) Total() int {
	return len(it.files)
}

// Paths yields absolute paths in the given order.
func (it *RootedEnumerator) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, rel := range it.files {
			if !yield(filepath.Join(it.root.String(), filepath.FromSlash(rel))) {
				return
			}
		}
	}
}
