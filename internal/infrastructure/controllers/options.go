package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/crlfrevert/internal/domain/commands"
	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// AddPersistentFlags adds the flags shared by every controller to the root command.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show which files only differ in line endings without reverting them")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().String("backend", "",
		"Version control backend (gogit, git)")
	cmd.PersistentFlags().String("ref", "",
		"Committed version to compare with (default: HEAD)")
	cmd.PersistentFlags().String("encoding", "",
		"Text encoding of the files (default: utf-8)")
	cmd.PersistentFlags().Bool("strict", false,
		"Compare line by line instead of ignoring where line breaks fall")
	cmd.PersistentFlags().BoolP("modified", "m", false,
		"Inspect every modified file of the current repository (required when no paths are given)")
}

// loadSettings reads the config file and applies flag overrides on top of it.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	backend, _ := cmd.Flags().GetString("backend")
	ref, _ := cmd.Flags().GetString("ref")
	encoding, _ := cmd.Flags().GetString("encoding")
	strict, _ := cmd.Flags().GetBool("strict")

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if backend != "" {
		settings.Backend = backend
	}
	if ref != "" {
		settings.Ref = ref
	}
	if encoding != "" {
		settings.Encoding = encoding
	}
	if strict {
		settings.Normalization = entities.NormalizationStrict
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid settings: %w", validateErr)
	}
	return settings, nil
}

func revertOptions(cmd *cobra.Command, args []string, forceDryRun bool) commands.RevertOptions {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	modified, _ := cmd.Flags().GetBool("modified")

	return commands.RevertOptions{
		Paths:    args,
		Modified: modified,
		DryRun:   dryRun || forceDryRun,
		Verbose:  verbose,
	}
}
