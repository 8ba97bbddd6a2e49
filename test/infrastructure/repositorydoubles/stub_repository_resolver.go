//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// StubRepositoryResolver implements repositories.RepositoryResolver.
type StubRepositoryResolver struct {
	Root       entities.RepositoryRoot
	ResolveErr error
	ErrByPath  map[string]error
	// spy: paths that were resolved
	ResolvedPaths []string
}

var _ repositories.RepositoryResolver = (*StubRepositoryResolver)(nil)

func (s *StubRepositoryResolver) Resolve(
	_ context.Context, path string,
) (entities.RepositoryRoot, error) {
	s.ResolvedPaths = append(s.ResolvedPaths, path)
	if err, ok := s.ErrByPath[path]; ok {
		return "", err
	}
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	return s.Root, nil
}
