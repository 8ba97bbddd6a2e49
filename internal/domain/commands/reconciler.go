package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// Reconciler classifies a single file's change and reverts it when the
// change is limited to line endings.
type Reconciler struct {
	reader   repositories.VCSReader
	writer   repositories.VCSWriter
	notifier repositories.DirtyStateNotifier
	workTree repositories.WorkingTreeReader
	ref      string
	encoding string
	mode     entities.NormalizationMode
}

// NewReconciler creates a Reconciler bound to the given collaborators and settings.
func NewReconciler(
	backend repositories.Backend,
	workTree repositories.WorkingTreeReader,
	settings *entities.Settings,
) *Reconciler {
	return &Reconciler{
		reader:   backend.Reader,
		writer:   backend.Writer,
		notifier: backend.Notifier,
		workTree: workTree,
		ref:      settings.Ref,
		encoding: settings.Encoding,
		mode:     settings.Normalization,
	}
}

// Classify compares the committed and working-tree content of path. The
// returned error explains NOT_TRACKED and READ_ERROR verdicts; it is nil
// whenever both sides could be compared.
func (it *Reconciler) Classify(
	ctx context.Context,
	root entities.RepositoryRoot,
	path entities.CandidatePath,
) (entities.Classification, error) {
	committedBytes, err := it.reader.ReadCommitted(ctx, root, path.Relative, it.ref)
	if err != nil {
		if errors.Is(err, repositories.ErrNotInHistory) {
			return entities.ClassificationNotTracked, err
		}
		return entities.ClassificationReadError, err
	}

	currentBytes, err := it.workTree.ReadCurrent(ctx, path.Absolute)
	if err != nil {
		return entities.ClassificationReadError, fmt.Errorf("failed to read working tree file: %w", err)
	}

	committed, err := entities.DecodeSnapshot(committedBytes, it.encoding)
	if err != nil {
		return entities.ClassificationReadError, fmt.Errorf("committed content: %w", err)
	}
	current, err := entities.DecodeSnapshot(currentBytes, it.encoding)
	if err != nil {
		return entities.ClassificationReadError, fmt.Errorf("working tree content: %w", err)
	}

	return entities.Classify(committed, current, it.mode), nil
}

// Revert restores path to its committed version and marks it for a status
// refresh. A failing notifier does not undo the revert.
func (it *Reconciler) Revert(
	ctx context.Context,
	root entities.RepositoryRoot,
	path entities.CandidatePath,
) error {
	if err := it.writer.Checkout(ctx, root, it.ref, path.Relative); err != nil {
		return fmt.Errorf("error rolling back %s to %s: %w", path.Relative, it.ref, err)
	}

	if err := it.notifier.MarkRefreshNeeded(ctx, root, path); err != nil {
		logger.Warnf("Reverted %s but could not mark it for status refresh: %v", path.Relative, err)
	}
	return nil
}
