//go:build unit

package gitcli_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crlfrevert/internal/domain/entities"
	domainRepos "github.com/rios0rios0/crlfrevert/internal/domain/repositories"
	"github.com/rios0rios0/crlfrevert/internal/infrastructure/repositories/gitcli"
)

func requireGit(t *testing.T) *gitcli.Runner {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
	return gitcli.NewRunner("git")
}

// initRepository creates a repository with the git CLI and commits files.
func initRepository(t *testing.T, runner *gitcli.Runner, files map[string]string) entities.RepositoryRoot {
	t.Helper()

	ctx := context.Background()
	dir := t.TempDir()
	_, err := runner.Run(ctx, dir, "init", "-q")
	require.NoError(t, err)
	_, err = runner.Run(ctx, dir, "config", "core.autocrlf", "false")
	require.NoError(t, err)

	for rel, content := range files {
		writeFile(t, dir, rel, content)
	}
	_, err = runner.Run(ctx, dir, "add", "-A")
	require.NoError(t, err)
	_, err = runner.Run(ctx, dir,
		"-c", "user.name=Test", "-c", "user.email=test@example.com",
		"commit", "-q", "--allow-empty", "-m", "initial")
	require.NoError(t, err)

	return entities.RepositoryRoot(dir)
}

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	target := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte(content), 0o644))
	return target
}

func TestSplitNul(t *testing.T) {
	t.Parallel()

	t.Run("should drop empty records", func(t *testing.T) {
		t.Parallel()

		// when
		records := gitcli.SplitNul([]byte("a.txt\x00dir/b.txt\x00\x00"))

		// then
		assert.Equal(t, []string{"a.txt", "dir/b.txt"}, records)
	})

	t.Run("should return nothing for empty output", func(t *testing.T) {
		t.Parallel()

		// when
		records := gitcli.SplitNul(nil)

		// then
		assert.Empty(t, records)
	})
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	t.Run("should include the arguments and stderr in the message", func(t *testing.T) {
		t.Parallel()

		// given
		err := &gitcli.CommandError{
			Args:   []string{"checkout", "HEAD", "--", "a.txt"},
			Stderr: "error: pathspec 'a.txt' did not match",
			Err:    errors.New("exit status 1"),
		}

		// when
		message := err.Error()

		// then
		assert.Equal(t, "git checkout HEAD -- a.txt: exit status 1: error: pathspec 'a.txt' did not match", message)
	})

	t.Run("should report -1 when git did not run", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("executable file not found")
		err := &gitcli.CommandError{Args: []string{"status"}, Err: cause}

		// when
		code := err.ExitCode()

		// then
		assert.Equal(t, -1, code)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, "git status: executable file not found", err.Error())
	})
}

func TestRunner(t *testing.T) {
	t.Parallel()

	t.Run("should expose the exit code of failed commands", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)

		// when
		_, err := runner.Run(context.Background(), t.TempDir(), "rev-parse", "--show-toplevel")

		// then
		var cmdErr *gitcli.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, 128, cmdErr.ExitCode())
		assert.NotEmpty(t, cmdErr.Stderr)
	})
}

func TestBackendAgainstRealRepository(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the top-level directory", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)
		root := initRepository(t, runner, map[string]string{"src/a.txt": "a\n"})

		// when
		resolved, err := gitcli.NewResolver(runner).Resolve(
			context.Background(), filepath.Join(root.String(), "src", "a.txt"))

		// then
		require.NoError(t, err)
		assert.Equal(t, root, resolved)
	})

	t.Run("should report paths outside any repository as not under version control", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)
		path := writeFile(t, t.TempDir(), "loose.txt", "x\n")

		// when
		_, err := gitcli.NewResolver(runner).Resolve(context.Background(), path)

		// then
		require.ErrorIs(t, err, domainRepos.ErrNotUnderVersionControl)
	})

	t.Run("should map files reached through a symlinked directory onto the resolved root", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)
		root := initRepository(t, runner, map[string]string{"src/a.txt": "a\n"})
		link := filepath.Join(t.TempDir(), "work")
		require.NoError(t, os.Symlink(root.String(), link))
		path := filepath.Join(link, "src", "a.txt")
		backend := gitcli.NewBackend()
		ctx := context.Background()

		// when
		resolved, resolveErr := backend.Resolver.Resolve(ctx, path)
		candidate, candidateErr := entities.NewCandidatePath(path, resolved)
		content, readErr := backend.Reader.ReadCommitted(ctx, resolved, candidate.Relative, "HEAD")

		// then
		require.NoError(t, resolveErr)
		require.NoError(t, candidateErr)
		require.NoError(t, readErr)
		assert.Equal(t, "src/a.txt", candidate.Relative)
		assert.Equal(t, path, candidate.Absolute)
		assert.Equal(t, "a\n", string(content))
	})

	t.Run("should read committed content and tell missing files apart", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)
		root := initRepository(t, runner, map[string]string{"src/a.txt": "a\nb\n"})
		writeFile(t, root.String(), "src/a.txt", "a\r\nb\r\n")
		writeFile(t, root.String(), "src/new.txt", "new\n")
		reader := gitcli.NewReader(runner)

		// when
		content, err := reader.ReadCommitted(context.Background(), root, "src/a.txt", "HEAD")
		_, missingErr := reader.ReadCommitted(context.Background(), root, "src/new.txt", "HEAD")
		_, badRefErr := reader.ReadCommitted(context.Background(), root, "src/a.txt", "no-such-branch")

		// then
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(content))
		require.ErrorIs(t, missingErr, domainRepos.ErrNotInHistory)
		require.ErrorIs(t, badRefErr, domainRepos.ErrNotInHistory)
	})

	t.Run("should list, restore and refresh modified files", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)
		root := initRepository(t, runner, map[string]string{"a.txt": "a\n", "b.txt": "b\n"})
		target := writeFile(t, root.String(), "a.txt", "a\r\n")
		backend := gitcli.NewBackend()
		ctx := context.Background()

		// when
		modified, listErr := backend.Lister.ListModified(ctx, root, "HEAD")
		checkoutErr := backend.Writer.Checkout(ctx, root, "HEAD", "a.txt")
		markErr := backend.Notifier.MarkRefreshNeeded(ctx, root, entities.CandidatePath{Absolute: target, Relative: "a.txt"})
		refreshErr := backend.Notifier.Refresh(ctx)
		remaining, remainingErr := backend.Lister.ListModified(ctx, root, "HEAD")

		// then
		require.NoError(t, listErr)
		assert.Equal(t, []string{"a.txt"}, modified)
		require.NoError(t, checkoutErr)
		require.NoError(t, markErr)
		require.NoError(t, refreshErr)
		require.NoError(t, remainingErr)
		assert.Empty(t, remaining)
		content, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Equal(t, "a\n", string(content))
	})

	t.Run("should return a readable error when checkout fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := requireGit(t)
		root := initRepository(t, runner, map[string]string{"a.txt": "a\n"})

		// when
		err := gitcli.NewWriter(runner).Checkout(context.Background(), root, "HEAD", "missing.txt")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.txt")
	})
}
