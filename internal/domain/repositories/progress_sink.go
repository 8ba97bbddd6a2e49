package repositories

// ProgressSink receives incremental progress of a batch.
type ProgressSink interface {
	SetFraction(fraction float64)
	SetLabel(label string)
	// IsCancelled is checked before each file is classified.
	IsCancelled() bool
}
