package repositories

import (
	"context"
	"iter"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// UnknownTotal is returned by FileEnumerator.Total when the size is not known upfront.
const UnknownTotal = -1

// FileEnumerator supplies the ordered candidate paths of one invocation.
type FileEnumerator interface {
	Paths() iter.Seq[string]
	Total() int
}

// ModifiedFilesLister lists the tracked files of a repository that differ from ref.
type ModifiedFilesLister interface {
	ListModified(ctx context.Context, root entities.RepositoryRoot, ref string) ([]string, error)
}
