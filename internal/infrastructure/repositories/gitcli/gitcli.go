// Package gitcli implements the version-control backend by shelling out to
// the git executable, so filters and attributes (core.autocrlf, .gitattributes)
// apply exactly as they do on the command line.
package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
)

// BackendName is the registry key of this backend.
const BackendName = "git"

// NewBackend wires every git CLI collaborator into a backend.
func NewBackend() domainRepos.Backend {
	runner := NewRunner("git")
	return domainRepos.Backend{
		Name:     BackendName,
		Resolver: NewResolver(runner),
		Reader:   NewReader(runner),
		Writer:   NewWriter(runner),
		Notifier: NewIndexRefresher(runner),
		Lister:   NewModifiedLister(runner),
	}
}

// CommandError carries the arguments and stderr of a failed git invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code, or -1 when git did not run at all.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Runner executes git commands against a repository directory.
type Runner struct {
	binary string
}

// NewRunner creates a Runner using the given git executable.
func NewRunner(binary string) *Runner {
	return &Runner{binary: binary}
}

// Run executes `git -C dir args...` and returns stdout.
func (r *Runner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, append([]string{"-C", dir}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// splitNul splits `-z` output into its non-empty records.
func splitNul(output []byte) []string {
	records := strings.Split(string(output), "\x00")
	result := make([]string, 0, len(records))
	for _, record := range records {
		if record != "" {
			result = append(result, record)
		}
	}
	return result
}
