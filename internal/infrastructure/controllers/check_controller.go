package controllers

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crlfrevert/internal/domain/commands"
	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// CheckController handles the "check" subcommand: classification only.
type CheckController struct {
	command commands.Revert
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Revert) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [paths...]",
		Short: "List files whose only change is in line endings",
		Long: `Classify every selected file like "revert" does, without touching the
working tree. Each file that would be reverted is printed on its own line.`,
	}
}

// Execute runs the check mode.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	report, err := it.command.Execute(ctx, settings, revertOptions(cmd, args, true))
	if err != nil {
		logger.Errorf("Check failed: %v", err)
		return
	}

	for _, outcome := range report.Outcomes {
		if outcome.State == entities.FileStateCRLFOnlyDetected {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), outcome.Relative)
		}
	}
}
