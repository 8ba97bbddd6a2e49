package gitcli

import (
	"context"
	"errors"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// IndexRefresher refreshes the stat information of the index of every
// repository that had files reverted, so `git status` picks the change up.
type IndexRefresher struct {
	runner  *Runner
	mu      sync.Mutex
	pending map[entities.RepositoryRoot]int
}

// NewIndexRefresher creates an IndexRefresher.
func NewIndexRefresher(runner *Runner) *IndexRefresher {
	return &IndexRefresher{
		runner:  runner,
		pending: make(map[entities.RepositoryRoot]int),
	}
}

// MarkRefreshNeeded queues the repository of path for the next Refresh.
func (it *IndexRefresher) MarkRefreshNeeded(
	_ context.Context,
	root entities.RepositoryRoot,
	_ entities.CandidatePath,
) error {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.pending[root]++
	return nil
}

// Refresh runs `git update-index -q --refresh` once per queued repository.
// An exit status of 1 only means some other files still differ.
func (it *IndexRefresher) Refresh(ctx context.Context) error {
	it.mu.Lock()
	pending := it.pending
	it.pending = make(map[entities.RepositoryRoot]int)
	it.mu.Unlock()

	var errs []error
	for root, count := range pending {
		_, err := it.runner.Run(ctx, root.String(), "update-index", "-q", "--refresh")
		var cmdErr *CommandError
		switch {
		case err == nil:
		case errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1:
			logger.Debugf("[git] Index of %s refreshed; other files still differ", root)
		default:
			errs = append(errs, err)
			continue
		}
		logger.Debugf("[git] Refreshed index of %s after %d reverts", root, count)
	}
	return errors.Join(errs...)
}
