package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// ErrCancelled is returned when the driver asks the batch to stop between files.
var ErrCancelled = errors.New("batch cancelled")

// BatchDependencies are the collaborators one batch runs against.
type BatchDependencies struct {
	Filter     *entities.PathFilter
	Resolver   repositories.RepositoryResolver
	Reconciler *Reconciler
	Progress   repositories.ProgressSink
}

// BatchOptions tune a single batch.
type BatchOptions struct {
	// DryRun classifies files without reverting them.
	DryRun bool
}

// ReconcileAll processes candidates one at a time: every file is fully
// classified (and reverted) before the next one starts. Per-file failures are
// logged and reported through emit; only unexpected errors or cancellation
// stop the loop, leaving already emitted outcomes untouched.
func ReconcileAll(
	ctx context.Context,
	deps BatchDependencies,
	candidates repositories.FileEnumerator,
	opts BatchOptions,
	emit func(entities.FileOutcome),
) error {
	total := candidates.Total()
	totalLabel := "?"
	if total >= 0 {
		totalLabel = strconv.Itoa(total)
	}

	index := 0
	for path := range candidates.Paths() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
		}
		if deps.Progress.IsCancelled() {
			return ErrCancelled
		}

		index++
		deps.Progress.SetLabel(fmt.Sprintf("Processing file %d of %s", index, totalLabel))

		outcome, err := reconcileOne(ctx, deps, path, opts)
		if err != nil {
			return err
		}
		emit(outcome)

		if total > 0 {
			deps.Progress.SetFraction(float64(index) / float64(total))
		}
	}

	return nil
}

func reconcileOne(
	ctx context.Context,
	deps BatchDependencies,
	path string,
	opts BatchOptions,
) (entities.FileOutcome, error) {
	outcome := entities.FileOutcome{Path: path}

	if !deps.Filter.IsEligible(path) {
		logger.Infof("Ignoring file: %s", path)
		outcome.State = entities.FileStateSkippedNotEligible
		return outcome, nil
	}

	root, err := deps.Resolver.Resolve(ctx, path)
	if err != nil {
		if errors.Is(err, repositories.ErrNotUnderVersionControl) {
			logger.Warnf("No git repository found for file: %s", path)
			outcome.State = entities.FileStateSkippedNotEligible
			outcome.Err = err
			return outcome, nil
		}
		return outcome, fmt.Errorf("failed to resolve repository for %s: %w", path, err)
	}

	candidate, err := entities.NewCandidatePath(path, root)
	if err != nil {
		logger.Warnf("Skipping %s: %v", path, err)
		outcome.State = entities.FileStateSkippedNotEligible
		outcome.Err = err
		return outcome, nil
	}
	outcome.Path = candidate.Absolute
	outcome.Relative = candidate.Relative

	classification, classifyErr := deps.Reconciler.Classify(ctx, root, candidate)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return outcome, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
	}
	outcome.Classification = classification
	outcome.Err = classifyErr

	switch classification {
	case entities.ClassificationNotTracked:
		logger.Warnf("File %s does not exist in the committed history: %v", candidate.Relative, classifyErr)
		outcome.State = entities.FileStateSkippedNotTracked
	case entities.ClassificationReadError:
		logger.Errorf("Error reading file content of %s: %v", candidate.Relative, classifyErr)
		outcome.State = entities.FileStateSkippedReadError
	case entities.ClassificationSubstantiveChange:
		logger.Infof("Keeping %s: it has changes beyond line endings", candidate.Relative)
		outcome.State = entities.FileStateSkippedSubstantive
	case entities.ClassificationCRLFOnly:
		outcome.State = revertOne(ctx, deps.Reconciler, root, candidate, opts, &outcome)
	default:
		return outcome, fmt.Errorf("unexpected classification %q for %s", classification, candidate.Relative)
	}

	return outcome, nil
}

func revertOne(
	ctx context.Context,
	reconciler *Reconciler,
	root entities.RepositoryRoot,
	candidate entities.CandidatePath,
	opts BatchOptions,
	outcome *entities.FileOutcome,
) entities.FileState {
	if opts.DryRun {
		logger.Infof("[dry-run] %s only differs in line endings", candidate.Relative)
		return entities.FileStateCRLFOnlyDetected
	}

	// checkout and mark form one unit; an interrupt only takes effect between files
	if err := reconciler.Revert(context.WithoutCancel(ctx), root, candidate); err != nil {
		logger.Errorf("Error reverting file to git version: %v", err)
		outcome.Err = err
		return entities.FileStateRevertFailed
	}

	logger.Infof("Reverted %s: only line endings had changed", candidate.Relative)
	return entities.FileStateReverted
}
