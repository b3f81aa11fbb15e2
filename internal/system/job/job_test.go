package job

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMain(m *testing.M) {
	Monitor()

	os.Exit(m.Run())
}

func TestWaitWithNoForeground(t *testing.T) {
	// Must return immediately rather than block.
	Wait()

	require.Zero(t, Foreground())
}

func TestInterruptWithNoForeground(t *testing.T) {
	post(interrupt)
	post(stop)

	require.Zero(t, Foreground())
	require.Zero(t, Suspended())
}

func TestResumeWithNothingSuspended(t *testing.T) {
	Resume()

	require.Zero(t, Foreground())
	require.Zero(t, Suspended())
}

func TestForegroundLifecycle(t *testing.T) {
	pid := launch(t, false, "30")

	require.Equal(t, pid, Foreground())
	require.Zero(t, Suspended())

	kill(pid)
	Wait()

	require.Zero(t, Foreground())
}

func TestBackgroundLaunch(t *testing.T) {
	require.NoError(t, Launch(sleeper(t), []string{"sleep", "0.1"}, true, "sleep 0.1 &"))

	require.Zero(t, Foreground())
	require.Zero(t, Suspended())

	// Give the monitor a chance to reap the child.
	time.Sleep(200 * time.Millisecond)
}

func TestInterruptForwarded(t *testing.T) {
	pid := launch(t, false, "30")

	require.Equal(t, pid, Foreground())

	post(interrupt)
	Wait()

	require.Zero(t, Foreground())
	require.Zero(t, Suspended())
}

func TestStopAndResume(t *testing.T) {
	pid := launch(t, false, "30")

	post(stop)

	require.Zero(t, Foreground())
	require.Equal(t, pid, Suspended())

	Resume()

	require.Equal(t, pid, Foreground())
	require.Zero(t, Suspended())

	kill(pid)
	Wait()

	require.Zero(t, Foreground())
	require.Zero(t, Suspended())
}

func kill(pid int) {
	_ = unix.Kill(-pid, unix.SIGKILL)
}

func launch(t *testing.T, background bool, duration string) int {
	t.Helper()

	err := Launch(sleeper(t), []string{"sleep", duration}, background, "sleep "+duration)
	require.NoError(t, err)

	return Foreground()
}

// post runs f on the monitor goroutine, as signal dispatch would.
func post(f func()) {
	done := make(chan struct{})

	requestq <- func() {
		f()

		close(done)
	}

	<-done
}

func sleeper(t *testing.T) string {
	t.Helper()

	path, err := exec.LookPath("sleep")
	require.NoError(t, err)

	return path
}
