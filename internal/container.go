package internal

import (
	"fmt"

	"github.com/rios0rios0/crlfrevert/internal/domain/commands"
	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/controllers"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

type layer struct {
	name     string
	register func(*dig.Container) error
}

// RegisterProviders registers every layer bottom-up (backends, entities,
// commands, controllers) followed by the AppInternal.
func RegisterProviders(container *dig.Container) error {
	layers := []layer{
		{name: "repositories", register: repositories.RegisterProviders},
		{name: "entities", register: entities.RegisterProviders},
		{name: "commands", register: commands.RegisterProviders},
		{name: "controllers", register: controllers.RegisterProviders},
	}
	for _, l := range layers {
		if err := l.register(container); err != nil {
			return fmt.Errorf("failed to register %s providers: %w", l.name, err)
		}
	}

	return container.Provide(NewAppInternal)
}
