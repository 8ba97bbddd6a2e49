package main

import (
	"fmt"

	"github.com/rios0rios0/crlfrevert/internal"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

// injection holds what main needs out of the container.
type injection struct {
	dig.In

	App    *internal.AppInternal
	Revert *controllers.RevertController
}

// inject builds the dependency graph once and resolves the app and the
// controller backing the bare root command.
func inject() (injection, error) {
	container := dig.New()
	if err := internal.RegisterProviders(container); err != nil {
		return injection{}, fmt.Errorf("failed to register providers: %w", err)
	}

	var resolved injection
	if err := container.Invoke(func(in injection) {
		resolved = in
	}); err != nil {
		return injection{}, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return resolved, nil
}
