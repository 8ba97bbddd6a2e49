package repositories

import (
	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories/gitcli"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories/gogit"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register backend registry with all version-control backends
	if err := container.Provide(func() *BackendRegistry {
		reg := NewBackendRegistry()
		reg.Register(gogit.BackendName, gogit.NewBackend)
		reg.Register(gitcli.BackendName, gitcli.NewBackend)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.WorkingTreeReader {
		return filesystem.NewWorkingTreeReader()
	}); err != nil {
		return err
	}

	return nil
}
