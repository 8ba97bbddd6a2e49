// Package gogit implements the version-control backend in-process with go-git.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// BackendName is the registry key of this backend.
const BackendName = "gogit"

// NewBackend wires every go-git collaborator into a backend sharing one
// repository cache.
func NewBackend() domainRepos.Backend {
	cache := NewRepositoryCache()
	return domainRepos.Backend{
		Name:     BackendName,
		Resolver: NewResolver(cache),
		Reader:   NewReader(cache),
		Writer:   NewWriter(cache),
		Notifier: NewStatusNotifier(cache),
		Lister:   NewModifiedLister(cache),
	}
}

// RepositoryCache keeps one opened repository per root for the lifetime of a backend.
type RepositoryCache struct {
	mu    sync.Mutex
	repos map[entities.RepositoryRoot]*git.Repository
}

// NewRepositoryCache creates an empty RepositoryCache.
func NewRepositoryCache() *RepositoryCache {
	return &RepositoryCache{repos: make(map[entities.RepositoryRoot]*git.Repository)}
}

// Open returns the cached repository of root, opening it on first use.
func (c *RepositoryCache) Open(root entities.RepositoryRoot) (*git.Repository, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if repo, ok := c.repos[root]; ok {
		return repo, nil
	}
	repo, err := git.PlainOpen(root.String())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open repository %s: %w", domainRepos.ErrBackend, root, err)
	}
	c.repos[root] = repo
	return repo, nil
}

func (c *RepositoryCache) store(root entities.RepositoryRoot, repo *git.Repository) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.repos[root]; !ok {
		c.repos[root] = repo
	}
}

// committedFile looks up relativePath in the commit ref points to.
func committedFile(
	ctx context.Context,
	repo *git.Repository,
	relativePath, ref string,
) (*object.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, fmt.Errorf("%w: %s cannot be resolved", domainRepos.ErrNotInHistory, ref)
		}
		return nil, fmt.Errorf("%w: failed to resolve %s: %w", domainRepos.ErrBackend, ref, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load commit %s: %w", domainRepos.ErrBackend, hash, err)
	}

	file, err := commit.File(relativePath)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s exists on disk, but not in %s", domainRepos.ErrNotInHistory, relativePath, ref)
		}
		return nil, fmt.Errorf("%w: failed to look up %s in %s: %w", domainRepos.ErrBackend, relativePath, ref, err)
	}
	return file, nil
}

func readBlob(file *object.File) ([]byte, error) {
	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open blob %s: %w", domainRepos.ErrBackend, file.Hash, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read blob %s: %w", domainRepos.ErrBackend, file.Hash, err)
	}
	return content, nil
}

// Resolver finds the repository owning a path by walking up to the nearest .git.
type Resolver struct {
	cache *RepositoryCache
}

// NewResolver creates a Resolver.
func NewResolver(cache *RepositoryCache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve returns the working-tree root of the repository that owns path.
func (it *Resolver) Resolve(ctx context.Context, path string) (entities.RepositoryRoot, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	dir := absolute
	if info, statErr := os.Stat(absolute); statErr != nil || !info.IsDir() {
		dir = filepath.Dir(absolute)
	}

	//nolint:exhaustruct // only dot-git detection is needed
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", domainRepos.ErrNotUnderVersionControl, absolute)
		}
		return "", fmt.Errorf("%w: failed to open repository for %s: %w", domainRepos.ErrBackend, absolute, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", fmt.Errorf("%w: %s belongs to a bare repository", domainRepos.ErrNotUnderVersionControl, absolute)
		}
		return "", fmt.Errorf("%w: %w", domainRepos.ErrBackend, err)
	}

	root := entities.RepositoryRoot(worktree.Filesystem.Root())
	it.cache.store(root, repo)
	return root, nil
}

// Reader reads committed blobs straight from the object database.
type Reader struct {
	cache *RepositoryCache
}

// NewReader creates a Reader.
func NewReader(cache *RepositoryCache) *Reader {
	return &Reader{cache: cache}
}

// ReadCommitted returns the raw blob of relativePath at ref.
func (it *Reader) ReadCommitted(
	ctx context.Context,
	root entities.RepositoryRoot,
	relativePath, ref string,
) ([]byte, error) {
	repo, err := it.cache.Open(root)
	if err != nil {
		return nil, err
	}
	file, err := committedFile(ctx, repo, relativePath, ref)
	if err != nil {
		return nil, err
	}
	return readBlob(file)
}
