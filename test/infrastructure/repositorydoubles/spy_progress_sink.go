//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// SpyProgressSink implements repositories.ProgressSink and records every call.
type SpyProgressSink struct {
	Fractions []float64
	Labels    []string
	// CancelAfter makes IsCancelled return true once this many checks passed; 0 never cancels.
	CancelAfter int
	Checks      int
}

var _ repositories.ProgressSink = (*SpyProgressSink)(nil)

func (s *SpyProgressSink) SetFraction(fraction float64) { s.Fractions = append(s.Fractions, fraction) }

func (s *SpyProgressSink) SetLabel(label string) { s.Labels = append(s.Labels, label) }

func (s *SpyProgressSink) IsCancelled() bool {
	s.Checks++
	return s.CancelAfter > 0 && s.Checks > s.CancelAfter
}
