package controllers

import (
	"context"
	"os"
	"os/signal"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crlfrevert/internal/domain/commands"
	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// RevertController handles the "revert" subcommand and the bare root command.
type RevertController struct {
	command commands.Revert
}

// NewRevertController creates a new RevertController.
func NewRevertController(command commands.Revert) *RevertController {
	return &RevertController{command: command}
}

// GetBind returns the Cobra command metadata for the revert controller.
func (it *RevertController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "revert [paths...]",
		Short: "Revert files whose only change is in line endings",
		Long: `Compare every selected file with its committed version and restore the
files that only differ in line endings (CRLF vs LF). Files with any other
change are left untouched.

With --modified and no paths, every modified file of the repository
containing the current directory is inspected. Directories are walked
recursively.`,
	}
}

// Execute runs the revert mode.
func (it *RevertController) Execute(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	report, err := it.command.Execute(ctx, settings, revertOptions(cmd, args, false))
	if err != nil {
		logger.Errorf("Revert failed: %v", err)
		return
	}
	if report.Counts[entities.FileStateRevertFailed] > 0 {
		logger.Warnf("%d files could not be reverted", report.Counts[entities.FileStateRevertFailed])
	}
}
