package repositories

import (
	"context"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// DirtyStateNotifier tells the VCS integration that a file's status must be recomputed.
type DirtyStateNotifier interface {
	// MarkRefreshNeeded is called after every successful revert.
	MarkRefreshNeeded(ctx context.Context, root entities.RepositoryRoot, path entities.CandidatePath) error
	// Refresh flushes every pending mark, once per batch.
	Refresh(ctx context.Context) error
}
