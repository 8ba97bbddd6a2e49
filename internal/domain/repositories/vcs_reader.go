package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

var (
	// ErrNotInHistory means the file does not exist at the requested revision.
	ErrNotInHistory = errors.New("file does not exist in the committed history")
	// ErrBackend covers every other failure of the version-control backend.
	ErrBackend = errors.New("version control backend error")
)

// VCSReader reads committed file content.
type VCSReader interface {
	// ReadCommitted returns the content of relativePath at ref. Failures wrap
	// either ErrNotInHistory or ErrBackend.
	ReadCommitted(
		ctx context.Context,
		root entities.RepositoryRoot,
		relativePath string,
		ref string,
	) ([]byte, error)
}
