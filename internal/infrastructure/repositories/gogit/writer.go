package gogit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5/plumbing/filemode"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

const (
	regularPerm    os.FileMode = 0o644
	executablePerm os.FileMode = 0o755
)

// Writer restores a file by writing the committed blob over the working copy
// and staging it again, the in-process equivalent of `git checkout <ref> -- <path>`.
type Writer struct {
	cache *RepositoryCache
}

// NewWriter creates a Writer.
func NewWriter(cache *RepositoryCache) *Writer {
	return &Writer{cache: cache}
}

// Checkout restores relativePath to its content at ref.
func (it *Writer) Checkout(
	ctx context.Context,
	root entities.RepositoryRoot,
	ref, relativePath string,
) error {
	repo, err := it.cache.Open(root)
	if err != nil {
		return err
	}
	file, err := committedFile(ctx, repo, relativePath, ref)
	if err != nil {
		return err
	}

	perm := regularPerm
	switch file.Mode {
	case filemode.Regular, filemode.Deprecated:
	case filemode.Executable:
		perm = executablePerm
	default:
		return fmt.Errorf("cannot restore %s: unsupported file mode %s", relativePath, file.Mode)
	}

	content, err := readBlob(file)
	if err != nil {
		return err
	}

	target := filepath.Join(root.String(), filepath.FromSlash(relativePath))
	if writeErr := os.WriteFile(target, content, perm); writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", target, writeErr)
	}
	if chmodErr := os.Chmod(target, perm); chmodErr != nil {
		return fmt.Errorf("failed to restore mode of %s: %w", target, chmodErr)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree of %s: %w", root, err)
	}
	if _, addErr := worktree.Add(relativePath); addErr != nil {
		return fmt.Errorf("failed to update index entry of %s: %w", relativePath, addErr)
	}

	logger.Debugf("[gogit] Restored %s from %s (%d bytes)", relativePath, ref, len(content))
	return nil
}
