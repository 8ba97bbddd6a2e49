package entities

// FileState is the terminal state a file reaches within one invocation.
type FileState string

const (
	FileStateSkippedNotEligible FileState = "skipped_not_eligible"
	FileStateSkippedNotTracked  FileState = "skipped_not_tracked"
	FileStateSkippedReadError   FileState = "skipped_read_error"
	FileStateSkippedSubstantive FileState = "skipped_substantive"
	FileStateReverted           FileState = "reverted"
	FileStateRevertFailed       FileState = "revert_failed"
	// FileStateCRLFOnlyDetected is used on dry runs, where nothing is written.
	FileStateCRLFOnlyDetected FileState = "crlf_only_detected"
)

// FileOutcome records what happened to a single candidate path.
type FileOutcome struct {
	Path           string
	Relative       string
	State          FileState
	Classification Classification
	Err            error
}

// RevertReport aggregates the outcomes of one batch.
type RevertReport struct {
	Outcomes []FileOutcome
	Counts   map[FileState]int
	Aborted  bool
}

// NewRevertReport creates an empty report.
func NewRevertReport() *RevertReport {
	return &RevertReport{Counts: make(map[FileState]int)}
}

// Add records one outcome.
func (r *RevertReport) Add(outcome FileOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.Counts[outcome.State]++
}

// Total returns the number of files that reached a terminal state.
func (r *RevertReport) Total() int {
	return len(r.Outcomes)
}
