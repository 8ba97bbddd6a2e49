//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"os"

	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// StubWorkingTreeReader implements repositories.WorkingTreeReader from in-memory content.
type StubWorkingTreeReader struct {
	Contents  map[string][]byte // absolute path -> current bytes
	ReadErr   error
	ReadPaths []string
}

var _ repositories.WorkingTreeReader = (*StubWorkingTreeReader)(nil)

func (s *StubWorkingTreeReader) ReadCurrent(_ context.Context, path string) ([]byte, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	if content, ok := s.Contents[path]; ok {
		return content, nil
	}
	return nil, fmt.Errorf("failed to read %s: %w", path, os.ErrNotExist)
}
