package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories/enumerator"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories/progress"
)

// Revert is the interface for the revert command.
type Revert interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RevertOptions) (*entities.RevertReport, error)
}

// RevertOptions holds runtime options for a single invocation.
type RevertOptions struct {
	Paths    []string
	Modified bool   // use every modified file of the repository owning WorkDir
	WorkDir  string // defaults to the process working directory
	DryRun   bool
	Verbose  bool
	Progress repositories.ProgressSink // defaults to a logging sink bound to ctx
}

// RevertCommand reverts the files whose only change is in line endings.
type RevertCommand struct {
	backendRegistry *infraRepos.BackendRegistry
	workTree        repositories.WorkingTreeReader
}

// NewRevertCommand creates a new RevertCommand.
func NewRevertCommand(
	backendRegistry *infraRepos.BackendRegistry,
	workTree repositories.WorkingTreeReader,
) *RevertCommand {
	return &RevertCommand{
		backendRegistry: backendRegistry,
		workTree:        workTree,
	}
}

// Execute runs one batch and returns its report. A cancelled batch is not an
// error: the report is marked as aborted and keeps the outcomes gathered so far.
func (it *RevertCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RevertOptions,
) (*entities.RevertReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	backend, err := it.backendRegistry.Get(settings.Backend)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Using %s backend against %s", backend.Name, settings.Ref)

	candidates, err := it.buildEnumerator(ctx, backend, settings, opts)
	if err != nil {
		return nil, err
	}

	sink := opts.Progress
	if sink == nil {
		sink = progress.NewLoggerSink(ctx)
	}

	deps := BatchDependencies{
		Filter:     entities.NewPathFilter(settings.EffectiveIgnorePatterns()),
		Resolver:   backend.Resolver,
		Reconciler: NewReconciler(backend, it.workTree, settings),
		Progress:   sink,
	}

	report := entities.NewRevertReport()
	runErr := ReconcileAll(ctx, deps, candidates, BatchOptions{DryRun: opts.DryRun}, report.Add)

	if refreshErr := backend.Notifier.Refresh(context.WithoutCancel(ctx)); refreshErr != nil {
		logger.Warnf("Failed to refresh version control status: %v", refreshErr)
	}

	logger.Infof(
		"Run complete: %d files processed, %d reverted, %d detected, %d substantive, %d skipped, %d failed",
		report.Total(),
		report.Counts[entities.FileStateReverted],
		report.Counts[entities.FileStateCRLFOnlyDetected],
		report.Counts[entities.FileStateSkippedSubstantive],
		report.Counts[entities.FileStateSkippedNotEligible]+
			report.Counts[entities.FileStateSkippedNotTracked]+
			report.Counts[entities.FileStateSkippedReadError],
		report.Counts[entities.FileStateRevertFailed],
	)

	if runErr != nil {
		report.Aborted = true
		if errors.Is(runErr, ErrCancelled) {
			logger.Warn("Run cancelled before all files were processed")
			return report, nil
		}
		return report, runErr
	}
	return report, nil
}

func (it *RevertCommand) buildEnumerator(
	ctx context.Context,
	backend repositories.Backend,
	settings *entities.Settings,
	opts RevertOptions,
) (repositories.FileEnumerator, error) {
	if len(opts.Paths) > 0 {
		return enumerator.NewPathEnumerator(opts.Paths), nil
	}
	if !opts.Modified {
		return nil, errors.New("no files selected: pass paths or use --modified")
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to detect working directory: %w", err)
		}
		workDir = wd
	}

	root, err := backend.Resolver.Resolve(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository for %s: %w", workDir, err)
	}

	files, err := backend.Lister.ListModified(ctx, root, settings.Ref)
	if err != nil {
		return nil, fmt.Errorf("failed to list modified files: %w", err)
	}
	logger.Infof("Found %d modified files in %s", len(files), root)

	return enumerator.NewRootedEnumerator(root, files), nil
}
