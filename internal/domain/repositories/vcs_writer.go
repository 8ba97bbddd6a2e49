package repositories

import (
	"context"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// VCSWriter restores working-tree files from a committed version.
type VCSWriter interface {
	// Checkout restores a single file to its content at ref. The returned
	// error carries the backend's human-readable output.
	Checkout(ctx context.Context, root entities.RepositoryRoot, ref, relativePath string) error
}
