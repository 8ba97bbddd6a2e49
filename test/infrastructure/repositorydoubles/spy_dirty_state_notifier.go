//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// SpyDirtyStateNotifier implements repositories.DirtyStateNotifier as a configurable spy.
type SpyDirtyStateNotifier struct {
	MarkErr      error
	Marked       []entities.CandidatePath
	RefreshErr   error
	RefreshCount int
}

var _ repositories.DirtyStateNotifier = (*SpyDirtyStateNotifier)(nil)

func (s *SpyDirtyStateNotifier) MarkRefreshNeeded(
	_ context.Context, _ entities.RepositoryRoot, path entities.CandidatePath,
) error {
	s.Marked = append(s.Marked, path)
	return s.MarkErr
}

func (s *SpyDirtyStateNotifier) Refresh(_ context.Context) error {
	s.RefreshCount++
	return s.RefreshErr
}
