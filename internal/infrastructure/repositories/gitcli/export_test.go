package gitcli

// SplitNul exposes splitNul for testing.
func SplitNul(output []byte) []string {
	return splitNul(output)
}
