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

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load a YAML config on top of the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, ".crlfrevert.yaml", `
backend: git
normalization: strict
extra_ignore_patterns:
  - "*.generated.cs"
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "git", settings.Backend)
		assert.Equal(t, entities.DefaultRef, settings.Ref)
		assert.Equal(t, entities.DefaultEncoding, settings.Encoding)
		assert.Equal(t, entities.NormalizationStrict, settings.Normalization)
		assert.Equal(t, entities.DefaultIgnorePatterns, settings.IgnorePatterns)
		assert.Contains(t, settings.EffectiveIgnorePatterns(), "*.generated.cs")
		assert.Contains(t, settings.EffectiveIgnorePatterns(), "node_modules")
	})

	t.Run("should load a JSONC config with comments and trailing commas", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, ".crlfrevert.jsonc", `{
  // compare against the previous commit
  "ref": "HEAD~1",
  "encoding": "windows-1252",
  "ignore_patterns": ["vendor",],
}`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "HEAD~1", settings.Ref)
		assert.Equal(t, "windows-1252", settings.Encoding)
		assert.Equal(t, []string{"vendor"}, settings.IgnorePatterns)
		assert.Equal(t, entities.DefaultBackend, settings.Backend)
	})

	t.Run("should reject an unknown normalization mode", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "crlfrevert.yaml", "normalization: fuzzy\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown normalization mode")
	})

	t.Run("should reject an unknown encoding", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "crlfrevert.yaml", "encoding: klingon\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported encoding")
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should return error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "crlfrevert.yml", "backend: [unterminated\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestNewDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should be valid and carry the default ignore patterns", func(t *testing.T) {
		t.Parallel()

		// given / when
		settings := entities.NewDefaultSettings()

		// then
		require.NoError(t, settings.Validate())
		assert.Equal(t, entities.DefaultBackend, settings.Backend)
		assert.Equal(t, entities.DefaultIgnorePatterns, settings.EffectiveIgnorePatterns())
	})

	t.Run("should not share the default pattern slice", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.NewDefaultSettings()

		// when
		settings.IgnorePatterns[0] = "changed"

		// then
		assert.Equal(t, ".git", entities.DefaultIgnorePatterns[0])
	})
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load the explicit path when given", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "custom.yaml", "backend: git\n")

		// when
		settings, err := entities.LoadSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "git", settings.Backend)
	})
}
