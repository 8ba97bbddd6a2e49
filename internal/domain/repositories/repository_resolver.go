package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// ErrNotUnderVersionControl is returned when no repository owns a path.
var ErrNotUnderVersionControl = errors.New("path is not under version control")

// RepositoryResolver finds the repository that owns a working-tree path.
type RepositoryResolver interface {
	// Resolve returns the repository root, or an error wrapping
	// ErrNotUnderVersionControl when the path has no owning repository.
	Resolve(ctx context.Context, path string) (entities.RepositoryRoot, error)
}
