// Released under an MIT license. See LICENSE.

// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

// Package job tracks the shell's foreground and suspended jobs.
//
// The shell tracks at most two jobs: the one it is currently waiting
// on, and the one most recently stopped from the keyboard. Each slot
// holds the leader of a process group, or 0 when empty, and a group
// never occupies both slots at once.
//
// All job state is owned by a single monitor goroutine. The main flow
// submits work through requestq; kernel signals arrive on signalq via
// os/signal. Because the same goroutine services both, launching a
// child and recording it can never interleave with reaping, and no
// other locking is required.
package job

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/kstigelman/shell/internal/system/process"
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	foreground int
	suspended  int

	requestq chan func()
	signalq  chan os.Signal

	waiting []chan struct{}
)

// Monitor installs the shell's signal handlers and starts the
// goroutine that owns all job state. It must be called once, before
// any job is launched.
func Monitor() {
	signal.Ignore(unix.SIGTTIN, unix.SIGTTOU)

	signals := []os.Signal{
		unix.SIGCHLD, unix.SIGINT, unix.SIGTSTP, unix.SIGQUIT,
	}

	requestq = make(chan func(), 1)
	signalq = make(chan os.Signal, len(signals)+1)

	signal.Notify(signalq, signals...)

	go monitor()
}

// Foreground returns the process group in the foreground slot.
func Foreground() int {
	return slot(&foreground)
}

// Launch starts the program at path in a new process group, with the
// shell's standard streams and environment. A foreground job is
// recorded in the foreground slot; a background job is announced as
// "(pid) line" and never recorded. Launch returns the start error,
// if any.
func Launch(path string, argv []string, background bool, line string) error {
	errq := make(chan error)

	requestq <- func() {
		reap()

		attr := &os.ProcAttr{
			Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
			Sys:   process.SysProcAttr(0),
		}

		p, err := os.StartProcess(path, argv, attr)
		if err == nil {
			if background {
				fmt.Printf("(%d) %s\n", p.Pid, line)
			} else {
				foreground = p.Pid
			}
		}

		// Ack with error.
		errq <- err

		close(errq)
	}

	// Wait for an ack.
	return <-errq
}

// Resume continues the suspended job, if there is one, and exchanges
// the foreground and suspended slots. Exchanging two empty slots is
// a no-op, so "fg" with nothing suspended does no harm.
func Resume() {
	done := make(chan struct{})

	requestq <- func() {
		swap()

		close(done)
	}

	<-done
}

// Suspended returns the process group in the suspended slot.
func Suspended() int {
	return slot(&suspended)
}

// Wait blocks the caller until the foreground slot is empty. The wait
// ends when the foreground job is reaped or moved to the suspended
// slot; there is no other way out and no polling.
func Wait() {
	done := make(chan struct{})

	requestq <- func() {
		if foreground == 0 {
			close(done)

			return
		}

		waiting = append(waiting, done)
	}

	<-done
}

func interrupt() {
	if foreground == 0 {
		return
	}

	process.InterruptGroup(foreground)
}

func monitor() {
	for {
		select {
		case f := <-requestq:
			f()

		case s := <-signalq:
			switch s {
			case unix.SIGCHLD:
				reap()

			case unix.SIGINT:
				interrupt()

			case unix.SIGTSTP:
				stop()

			case unix.SIGQUIT:
				quit()
			}
		}
	}
}

func quit() {
	fmt.Println("Terminating after receipt of SIGQUIT signal")
	os.Exit(1)
}

// reap collects every child with a status currently available. One
// SIGCHLD may cover several children. Only termination of the
// foreground job clears its slot; stops are handled by the SIGTSTP
// path, which moves the job aside before it ever becomes waitable.
func reap() {
	var status unix.WaitStatus

	for {
		pid, _ := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		if pid <= 0 {
			break
		}

		if pid != foreground {
			continue
		}

		if status.Signaled() && status.Signal() == unix.SIGINT {
			fmt.Printf("Job (%d) terminated by signal %d\n", pid, int(unix.SIGINT))
		}

		foreground = 0

		tell()
	}
}

func slot(p *int) int {
	r := make(chan int)

	requestq <- func() {
		r <- *p

		close(r)
	}

	return <-r
}

func stop() {
	if foreground == 0 {
		return
	}

	fmt.Printf("Job (%d) stopped by signal %d\n", foreground, int(unix.SIGTSTP))

	process.StopGroup(foreground)

	swap()
}

// swap continues the suspended job, if any, then exchanges the two
// slots. The stopped foreground job, if any, becomes the suspended
// job and the foreground slot is released.
func swap() {
	if suspended != 0 {
		process.ContinueGroup(suspended)
	}

	foreground, suspended = suspended, foreground

	if foreground == 0 {
		tell()
	}
}

func tell() {
	for _, done := range waiting {
		close(done)
	}

	waiting = nil
}
