//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crlfrevert/internal/domain/commands"
	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

// StubRevertCommand is a stub implementation of commands.Revert.
type StubRevertCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.RevertReport
	LastSettings     *entities.Settings
	LastOpts         commands.RevertOptions
}

var _ commands.Revert = (*StubRevertCommand)(nil)

func (s *StubRevertCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.RevertOptions,
) (*entities.RevertReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Report != nil {
		return s.Report, nil
	}
	return entities.NewRevertReport(), nil
}
