package repositories

import "context"

// WorkingTreeReader reads the current bytes of a working-tree file.
type WorkingTreeReader interface {
	ReadCurrent(ctx context.Context, path string) ([]byte, error)
}
