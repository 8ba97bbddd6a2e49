package gogit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// StatusNotifier collects reverted paths and recomputes their status once per batch.
type StatusNotifier struct {
	cache   *RepositoryCache
	mu      sync.Mutex
	pending map[entities.RepositoryRoot][]string
	dirty   []string
}

// NewStatusNotifier creates a StatusNotifier.
func NewStatusNotifier(cache *RepositoryCache) *StatusNotifier {
	return &StatusNotifier{
		cache:   cache,
		pending: make(map[entities.RepositoryRoot][]string),
	}
}

// MarkRefreshNeeded queues path for the next Refresh.
func (it *StatusNotifier) MarkRefreshNeeded(
	_ context.Context,
	root entities.RepositoryRoot,
	path entities.CandidatePath,
) error {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.pending[root] = append(it.pending[root], path.Relative)
	return nil
}

// Refresh recomputes the status of every queued path and warns about the ones
// Git still reports as modified.
func (it *StatusNotifier) Refresh(ctx context.Context) error {
	it.mu.Lock()
	pending := it.pending
	it.pending = make(map[entities.RepositoryRoot][]string)
	it.mu.Unlock()

	var errs []error
	for root, paths := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		status, err := worktreeStatus(it.cache, root)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, rel := range paths {
			fileStatus, ok := status[rel]
			if !ok || (fileStatus.Worktree == git.Unmodified && fileStatus.Staging == git.Unmodified) {
				logger.Debugf("[gogit] %s is clean", rel)
				continue
			}
			logger.Warnf("[gogit] %s is still reported as modified after revert", rel)
			it.mu.Lock()
			it.dirty = append(it.dirty, rel)
			it.mu.Unlock()
		}
	}
	return errors.Join(errs...)
}

// StillDirty returns the paths the last refreshes found modified.
func (it *StatusNotifier) StillDirty() []string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return append([]string(nil), it.dirty...)
}

func worktreeStatus(cache *RepositoryCache, root entities.RepositoryRoot) (git.Status, error) {
	repo, err := cache.Open(root)
	if err != nil {
		return nil, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree of %s: %w", root, err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to compute status of %s: %w", root, err)
	}
	return status, nil
}

// ModifiedLister lists tracked files whose working copy or index differs from HEAD.
type ModifiedLister struct {
	cache *RepositoryCache
}

// NewModifiedLister creates a ModifiedLister.
func NewModifiedLister(cache *RepositoryCache) *ModifiedLister {
	return &ModifiedLister{cache: cache}
}

// ListModified returns slash-separated paths relative to root, sorted.
// go-git computes status against HEAD only, so other refs are reported and ignored.
func (it *ModifiedLister) ListModified(
	ctx context.Context,
	root entities.RepositoryRoot,
	ref string,
) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref != entities.DefaultRef {
		logger.Warnf("[gogit] Modified files are listed against HEAD, not %s", ref)
	}

	status, err := worktreeStatus(it.cache, root)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(status))
	for path, fileStatus := range status {
		if fileStatus.Worktree == git.Modified || fileStatus.Staging == git.Modified {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}
