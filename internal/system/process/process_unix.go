// Released under an MIT license. See LICENSE.

// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package process

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	Platform = "unix"

	id       = unix.Getpid()
	group, _ = unix.Getpgid(id)
)

// CombineOutput folds diagnostic output onto standard output so that
// everything the shell and its children print arrives on one stream.
func CombineOutput() {
	os.Stderr = os.Stdout
}

// ContinueGroup sends a SIGCONT to every process in group.
func ContinueGroup(group int) {
	_ = unix.Kill(-group, unix.SIGCONT)
}

// Group returns the group ID for the current process.
func Group() int {
	return group
}

// ID returns the process ID for the current process.
func ID() int {
	return id
}

// InterruptGroup sends a SIGINT to every process in group.
func InterruptGroup(group int) {
	_ = unix.Kill(-group, unix.SIGINT)
}

// StopGroup sends a SIGTSTP to every process in group.
func StopGroup(group int) {
	_ = unix.Kill(-group, unix.SIGTSTP)
}

// SysProcAttr returns the *unix.SysProcAttr that makes a child the
// leader of a new process group, or a member of group when non-zero.
func SysProcAttr(group int) *unix.SysProcAttr {
	sys := &unix.SysProcAttr{Setpgid: true}

	if group != 0 {
		sys.Pgid = group
	}

	return sys
}
