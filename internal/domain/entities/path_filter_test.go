//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
)

func TestPathFilterIsEligible(t *testing.T) {
	t.Parallel()

	filter := entities.NewPathFilter(entities.DefaultIgnorePatterns)

	tests := []struct {
		name     string
		path     string
		eligible bool
	}{
		{name: "git internals", path: "/repo/.git/config", eligible: false},
		{name: "regular source file", path: "/repo/src/Main.go", eligible: true},
		{name: "dependency directory", path: "/repo/node_modules/x/index.js", eligible: false},
		{name: "build output", path: "/repo/build/classes/App.class", eligible: false},
		{name: "maven target", path: "/repo/target/app.jar", eligible: false},
		{name: "IDE metadata", path: "/repo/.idea/workspace.xml", eligible: false},
		{name: "editor settings", path: "/repo/.vscode/settings.json", eligible: false},
		{name: "gradle cache", path: "/repo/.gradle/8.0/file.lock", eligible: false},
		{name: "subversion internals", path: "/repo/.svn/entries", eligible: false},
		{name: "mercurial internals", path: "/repo/.hg/store", eligible: false},
		{name: "gitignore file", path: "/repo/.gitignore", eligible: false},
		{name: "gitattributes file", path: "/repo/sub/.gitattributes", eligible: false},
		{name: "gitmodules file", path: "/repo/.gitmodules", eligible: false},
		{name: "gitkeep file", path: "/repo/logs/.gitkeep", eligible: false},
		{name: "intellij module file", path: "/repo/app.iml", eligible: false},
		{name: "dist directory", path: "/repo/web/dist/bundle.js", eligible: false},
		{name: "out directory", path: "/repo/out/production/A.class", eligible: false},
		{name: "windows separators", path: `C:\repo\node_modules\x\index.js`, eligible: false},
		{name: "relative path", path: "src/main/App.java", eligible: true},
		{name: "name merely containing a pattern", path: "/repo/src/rebuild.go", eligible: true},
		{name: "empty path", path: "", eligible: false},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given / when
			eligible := filter.IsEligible(tt.path)

			// then
			assert.Equal(t, tt.eligible, eligible, tt.path)
		})
	}
}

func TestNewPathFilter(t *testing.T) {
	t.Parallel()

	t.Run("should accept every path when no patterns are configured", func(t *testing.T) {
		t.Parallel()

		// given
		filter := entities.NewPathFilter(nil)

		// when
		eligible := filter.IsEligible("/repo/.git/config")

		// then
		assert.True(t, eligible)
	})

	t.Run("should honour custom glob patterns and skip comments", func(t *testing.T) {
		t.Parallel()

		// given
		filter := entities.NewPathFilter([]string{"# generated files", "", "*.pb.go", "vendor"})

		// when / then
		assert.False(t, filter.IsEligible("/repo/api/service.pb.go"))
		assert.False(t, filter.IsEligible("/repo/vendor/lib/lib.go"))
		assert.True(t, filter.IsEligible("/repo/api/service.go"))
	})

	t.Run("should let a negated pattern re-include a path", func(t *testing.T) {
		t.Parallel()

		// given
		filter := entities.NewPathFilter([]string{"*.txt", "!keep.txt"})

		// when / then
		assert.False(t, filter.IsEligible("/repo/notes.txt"))
		assert.True(t, filter.IsEligible("/repo/keep.txt"))
	})
}
