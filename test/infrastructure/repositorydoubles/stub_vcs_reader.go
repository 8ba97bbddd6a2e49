//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// StubVCSReader implements repositories.VCSReader from in-memory content.
type StubVCSReader struct {
	// --- ReadCommitted ---
	Contents map[string][]byte // relative path -> committed bytes
	Errs     map[string]error  // relative path -> error
	ReadErr  error             // returned for every path not listed above
	// spy: relative paths that were requested
	ReadPaths []string
	ReadRefs  []string
}

var _ repositories.VCSReader = (*StubVCSReader)(nil)

func (s *StubVCSReader) ReadCommitted(
	_ context.Context, _ entities.RepositoryRoot, relativePath, ref string,
) ([]byte, error) {
	s.ReadPaths = append(s.ReadPaths, relativePath)
	s.ReadRefs = append(s.ReadRefs, ref)
	if err, ok := s.Errs[relativePath]; ok {
		return nil, err
	}
	if content, ok := s.Contents[relativePath]; ok {
		return content, nil
	}
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return nil, fmt.Errorf("%w: %s", repositories.ErrNotInHistory, relativePath)
}
