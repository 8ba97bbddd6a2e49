package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/crlfrevert/internal"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/controllers"
)

func buildRootCommand(revertController *controllers.RevertController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "crlfrevert [paths...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Revert files whose only change is in line endings",
		Long: `Finds locally modified files that differ from their last committed version
only in line endings (CRLF vs LF) and restores exactly those files, leaving
every file with a real change untouched.

Usage modes:
  crlfrevert --modified      Inspect every modified file of the current repository
  crlfrevert src/ main.go    Inspect the given files and directories
  crlfrevert check           Only list the files that would be reverted`,
		Run: func(command *cobra.Command, args []string) {
			revertController.Execute(command, args)
		},
	}

	controllers.AddPersistentFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	// Load .env file if present (for DEBUG)
	_ = godotenv.Load()

	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	resolved, err := inject()
	if err != nil {
		logger.Fatalf("Failed to start 'crlfrevert': %s", err)
	}
	cobraRoot := buildRootCommand(resolved.Revert)
	addSubcommands(cobraRoot, resolved.App)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'crlfrevert': %s", err)
	}
}
