//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"iter"
	"slices"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// StubFileEnumerator implements repositories.FileEnumerator over a fixed list.
type StubFileEnumerator struct {
	Items []string
	// HideTotal makes Total report repositories.UnknownTotal.
	HideTotal bool
}

var _ repositories.FileEnumerator = (*StubFileEnumerator)(nil)

func (s *StubFileEnumerator) Paths() iter.Seq[string] { return slices.Values(s.Items) }

func (s *StubFileEnumerator) Total() int {
	if s.HideTotal {
		return repositories.UnknownTotal
	}
	return len(s.Items)
}

// StubModifiedFilesLister implements repositories.ModifiedFilesLister.
type StubModifiedFilesLister struct {
	Files     []string
	ListErr   error
	ListRoots []entities.RepositoryRoot
}

var _ repositories.ModifiedFilesLister = (*StubModifiedFilesLister)(nil)

func (s *StubModifiedFilesLister) ListModified(
	_ context.Context, root entities.RepositoryRoot, _ string,
) ([]string, error) {
	s.ListRoots = append(s.ListRoots, root)
	return s.Files, s.ListErr
}
