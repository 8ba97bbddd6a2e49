//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	backend        string
	ref            string
	encoding       string
	normalization  entities.NormalizationMode
	ignorePatterns []string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		backend:        "stub",
		ref:            entities.DefaultRef,
		encoding:       entities.DefaultEncoding,
		normalization:  entities.NormalizationCollapse,
		ignorePatterns: append([]string(nil), entities.DefaultIgnorePatterns...),
	}
}

// WithBackend sets the backend name.
func (b *SettingsBuilder) WithBackend(backend string) *SettingsBuilder {
	b.backend = backend
	return b
}

// WithRef sets the committed ref.
func (b *SettingsBuilder) WithRef(ref string) *SettingsBuilder {
	b.ref = ref
	return b
}

// WithEncoding sets the text encoding.
func (b *SettingsBuilder) WithEncoding(encoding string) *SettingsBuilder {
	b.encoding = encoding
	return b
}

// WithNormalization sets the normalization mode.
func (b *SettingsBuilder) WithNormalization(mode entities.NormalizationMode) *SettingsBuilder {
	b.normalization = mode
	return b
}

// WithIgnorePatterns replaces the ignore patterns.
func (b *SettingsBuilder) WithIgnorePatterns(patterns ...string) *SettingsBuilder {
	b.ignorePatterns = patterns
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Backend:        b.backend,
		Ref:            b.ref,
		Encoding:       b.encoding,
		Normalization:  b.normalization,
		IgnorePatterns: append([]string(nil), b.ignorePatterns...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.backend = "stub"
	b.ref = entities.DefaultRef
	b.encoding = entities.DefaultEncoding
	b.normalization = entities.NormalizationCollapse
	b.ignorePatterns = append([]string(nil), entities.DefaultIgnorePatterns...)
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		backend:        b.backend,
		ref:            b.ref,
		encoding:       b.encoding,
		normalization:  b.normalization,
		ignorePatterns: append([]string(nil), b.ignorePatterns...),
	}
}
