package filesystem

import (
	"context"
	"fmt"
	"os"
)

// WorkingTreeReader reads working-tree files from the local disk.
type WorkingTreeReader struct{}

// NewWorkingTreeReader creates a WorkingTreeReader.
func NewWorkingTreeReader() *WorkingTreeReader {
	return &WorkingTreeReader{}
}

// ReadCurrent returns the current bytes of path.
func (it *WorkingTreeReader) ReadCurrent(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}
