//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

func TestNewCandidatePath(t *testing.T) {
	t.Parallel()

	t.Run("should compute a slash separated relative path", func(t *testing.T) {
		t.Parallel()

		// given
		root := entities.RepositoryRoot(t.TempDir())
		path := filepath.Join(root.String(), "src", "main", "App.java")

		// when
		candidate, err := entities.NewCandidatePath(path, root)

		// then
		require.NoError(t, err)
		assert.Equal(t, path, candidate.Absolute)
		assert.Equal(t, "src/main/App.java", candidate.Relative)
	})

	t.Run("should reject paths outside the root", func(t *testing.T) {
		t.Parallel()

		// given
		base := t.TempDir()
		root := entities.RepositoryRoot(filepath.Join(base, "repo"))
		path := filepath.Join(base, "other", "file.txt")

		// when
		_, err := entities.NewCandidatePath(path, root)

		// then
		require.ErrorIs(t, err, entities.ErrOutsideRoot)
	})

	t.Run("should reject the root itself", func(t *testing.T) {
		t.Parallel()

		// given
		root := entities.RepositoryRoot(t.TempDir())

		// when
		_, err := entities.NewCandidatePath(root.String(), root)

		// then
		require.ErrorIs(t, err, entities.ErrOutsideRoot)
	})

	t.Run("should resolve a path reached through a symlinked directory against the physical root", func(t *testing.T) {
		t.Parallel()

		// given
		base := t.TempDir()
		physical := filepath.Join(base, "physical")
		require.NoError(t, os.MkdirAll(filepath.Join(physical, "src"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(physical, "src", "a.txt"), []byte("a\r\n"), 0o644))
		link := filepath.Join(base, "work")
		require.NoError(t, os.Symlink(physical, link))
		path := filepath.Join(link, "src", "a.txt")

		// when
		candidate, err := entities.NewCandidatePath(path, entities.RepositoryRoot(physical))

		// then
		require.NoError(t, err)
		assert.Equal(t, path, candidate.Absolute)
		assert.Equal(t, "src/a.txt", candidate.Relative)
	})

	t.Run("should resolve a physical path against a symlinked root", func(t *testing.T) {
		t.Parallel()

		// given
		base := t.TempDir()
		physical := filepath.Join(base, "physical")
		require.NoError(t, os.MkdirAll(physical, 0o755))
		link := filepath.Join(base, "work")
		require.NoError(t, os.Symlink(physical, link))

		// when
		candidate, err := entities.NewCandidatePath(filepath.Join(physical, "new.txt"), entities.RepositoryRoot(link))

		// then
		require.NoError(t, err)
		assert.Equal(t, "new.txt", candidate.Relative)
	})

	t.Run("should keep a symlinked file as its own path", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		outside := filepath.Join(t.TempDir(), "target.txt")
		require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
		link := filepath.Join(root, "link.txt")
		require.NoError(t, os.Symlink(outside, link))

		// when
		candidate, err := entities.NewCandidatePath(link, entities.RepositoryRoot(root))

		// then
		require.NoError(t, err)
		assert.Equal(t, "link.txt", candidate.Relative)
	})
}
