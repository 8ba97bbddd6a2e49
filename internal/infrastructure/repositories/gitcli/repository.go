package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// exitNotRepository is what git exits with when run outside a repository.
const exitNotRepository = 128

// Resolver asks git for the top-level directory owning a path.
type Resolver struct {
	runner *Runner
}

// NewResolver creates a Resolver.
func NewResolver(runner *Runner) *Resolver {
	return &Resolver{runner: runner}
}

// Resolve runs `git rev-parse --show-toplevel` next to path.
func (it *Resolver) Resolve(ctx context.Context, path string) (entities.RepositoryRoot, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	dir := absolute
	if info, statErr := os.Stat(absolute); statErr != nil || !info.IsDir() {
		dir = filepath.Dir(absolute)
	}

	output, err := it.runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode() == exitNotRepository {
			return "", fmt.Errorf("%w: %s", domainRepos.ErrNotUnderVersionControl, absolute)
		}
		return "", fmt.Errorf("%w: %w", domainRepos.ErrBackend, err)
	}

	return entities.RepositoryRoot(filepath.FromSlash(strings.TrimSpace(string(output)))), nil
}

// Reader reads committed content with `git cat-file`.
type Reader struct {
	runner *Runner
}

// NewReader creates a Reader.
func NewReader(runner *Runner) *Reader {
	return &Reader{runner: runner}
}

// ReadCommitted returns the raw blob of relativePath at ref. Presence is
// checked with ls-tree first so that a missing file is told apart from a
// failing backend by exit status, not by parsing messages.
func (it *Reader) ReadCommitted(
	ctx context.Context,
	root entities.RepositoryRoot,
	relativePath, ref string,
) ([]byte, error) {
	if _, err := it.runner.Run(ctx, root.String(), "rev-parse", "--verify", "--quiet", ref+"^{commit}"); err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode() > 0 {
			return nil, fmt.Errorf("%w: %s cannot be resolved in %s", domainRepos.ErrNotInHistory, ref, root)
		}
		return nil, fmt.Errorf("%w: %w", domainRepos.ErrBackend, err)
	}

	listing, err := it.runner.Run(ctx, root.String(), "ls-tree", "-z", "--name-only", "--full-name", ref, "--", relativePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainRepos.ErrBackend, err)
	}
	if !containsRecord(splitNul(listing), relativePath) {
		return nil, fmt.Errorf("%w: %s exists on disk, but not in %s", domainRepos.ErrNotInHistory, relativePath, ref)
	}

	content, err := it.runner.Run(ctx, root.String(), "cat-file", "blob", ref+":"+relativePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainRepos.ErrBackend, err)
	}
	return content, nil
}

func containsRecord(records []string, want string) bool {
	for _, record := range records {
		if record == want {
			return true
		}
	}
	return false
}

// Writer restores files with `git checkout <ref> -- <path>`.
type Writer struct {
	runner *Runner
}

// NewWriter creates a Writer.
func NewWriter(runner *Runner) *Writer {
	return &Writer{runner: runner}
}

// Checkout restores relativePath to its content at ref.
func (it *Writer) Checkout(
	ctx context.Context,
	root entities.RepositoryRoot,
	ref, relativePath string,
) error {
	if _, err := it.runner.Run(ctx, root.String(), "checkout", ref, "--", relativePath); err != nil {
		return err
	}
	logger.Debugf("[git] Checked out %s from %s", relativePath, ref)
	return nil
}

// ModifiedLister lists modified tracked files with `git diff --name-only`.
type ModifiedLister struct {
	runner *Runner
}

// NewModifiedLister creates a ModifiedLister.
func NewModifiedLister(runner *Runner) *ModifiedLister {
	return &ModifiedLister{runner: runner}
}

// ListModified returns slash-separated paths relative to root.
func (it *ModifiedLister) ListModified(
	ctx context.Context,
	root entities.RepositoryRoot,
	ref string,
) ([]string, error) {
	output, err := it.runner.Run(ctx, root.String(), "diff", "--name-only", "-z", "--diff-filter=M", ref, "--")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainRepos.ErrBackend, err)
	}
	return splitNul(output), nil
}
