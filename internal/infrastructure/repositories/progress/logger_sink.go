// Package progress reports batch progress through the logger.
package progress

import (
	"context"
	"sync"

	logger "github.com/sirupsen/logrus"
)

// LoggerSink logs labels and fractions and treats a done context as a
// cancellation request.
type LoggerSink struct {
	ctx      context.Context //nolint:containedctx // cancellation is polled between files
	mu       sync.Mutex
	fraction float64
	label    string
}

// NewLoggerSink creates a LoggerSink bound to ctx.
func NewLoggerSink(ctx context.Context) *LoggerSink {
	return &LoggerSink{ctx: ctx}
}

// SetFraction records and logs the completed fraction.
func (it *LoggerSink) SetFraction(fraction float64) {
	it.mu.Lock()
	it.fraction = fraction
	it.mu.Unlock()
	logger.Debugf("Progress: %.0f%%", fraction*100) //nolint:mnd // percentage
}

// SetLabel records and logs the current step.
func (it *LoggerSink) SetLabel(label string) {
	it.mu.Lock()
	it.label = label
	it.mu.Unlock()
	logger.Debug(label)
}

// IsCancelled reports whether the bound context is done.
func (it *LoggerSink) IsCancelled() bool {
	return it.ctx.Err() != nil
}
