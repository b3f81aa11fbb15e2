package engine

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/kstigelman/shell/internal/system/job"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	job.Monitor()

	os.Exit(m.Run())
}

func TestBlankLine(t *testing.T) {
	out := capture(t, func() {
		New().Evaluate("   ")
	})

	require.Empty(t, out)
	require.Zero(t, job.Foreground())
}

func TestForegroundCommand(t *testing.T) {
	out := capture(t, func() {
		New().Evaluate("/bin/echo hi")
	})

	require.Contains(t, out, "hi")
	require.Zero(t, job.Foreground())
}

func TestBackgroundCommand(t *testing.T) {
	start := time.Now()

	out := capture(t, func() {
		New().Evaluate("sleep 0.2 &")
	})

	require.Less(t, time.Since(start), 150*time.Millisecond)
	require.Regexp(t, `\(\d+\) sleep 0.2 &`, out)
	require.Zero(t, job.Foreground())

	// Let the monitor reap the child.
	time.Sleep(300 * time.Millisecond)
}

func TestCommandNotFound(t *testing.T) {
	out := capture(t, func() {
		New().Evaluate("doesnotexist")
	})

	require.Contains(t, out, "doesnotexist: Command not found")
	require.Zero(t, job.Foreground())
}

func TestFgWithNothingSuspended(t *testing.T) {
	// Must return rather than block or crash.
	New().Evaluate("fg")

	require.Zero(t, job.Foreground())
	require.Zero(t, job.Suspended())
}

// capture redirects the shell's output, and that of any children it
// launches, while f runs.
func capture(t *testing.T, f func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	prev := os.Stdout
	os.Stdout = w

	defer func() {
		os.Stdout = prev
	}()

	f()

	require.NoError(t, w.Close())

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}
