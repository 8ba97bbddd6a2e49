package progress

// Fraction exposes the last recorded fraction for testing.
func (it *LoggerSink) Fraction() float64 {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.fraction
}

// Label exposes the last recorded label for testing.
func (it *LoggerSink) Label() string {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.label
}
