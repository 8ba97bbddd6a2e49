package entities

import "fmt"

// Classification is the verdict on one file's working-tree change.
type Classification string

const (
	ClassificationCRLFOnly          Classification = "crlf_only"
	ClassificationSubstantiveChange Classification = "substantive_change"
	ClassificationNotTracked        Classification = "not_tracked"
	ClassificationReadError         Classification = "read_error"
)

// NormalizationMode selects how line breaks are folded before comparing.
type NormalizationMode string

const (
	// NormalizationCollapse drops every line break, so files that differ only
	// in where breaks fall are also treated as CRLF-only.
	NormalizationCollapse NormalizationMode = "collapse"
	// NormalizationStrict only folds CRLF into LF, so lines must still match one by one.
	NormalizationStrict NormalizationMode = "strict"
)

// ParseNormalizationMode accepts "", "collapse" or "strict".
func ParseNormalizationMode(raw string) (NormalizationMode, error) {
	switch NormalizationMode(raw) {
	case "", NormalizationCollapse:
		return NormalizationCollapse, nil
	case NormalizationStrict:
		return NormalizationStrict, nil
	default:
		return "", fmt.Errorf("unknown normalization mode: %q (expected collapse or strict)", raw)
	}
}

// Classify compares the committed and current snapshots of one file. Binary
// content on either side is never considered a line-ending-only change.
func Classify(committed, current TextSnapshot, mode NormalizationMode) Classification {
	if committed.Binary || current.Binary {
		return ClassificationSubstantiveChange
	}
	if normalizeLineBreaks(committed.Text, mode) == normalizeLineBreaks(current.Text, mode) {
		return ClassificationCRLFOnly
	}
	return ClassificationSubstantiveChange
}
