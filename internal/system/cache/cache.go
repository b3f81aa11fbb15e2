// Package cache maintains the set of executable names used for
// command completion. A single service goroutine owns the set.
package cache

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Executables returns the names of known executables with prefix.
func Executables(prefix string) []string {
	resultq := make(chan []string)

	requestq <- func() {
		var names []string

		for name := range executables {
			if strings.HasPrefix(name, prefix) {
				names = append(names, name)
			}
		}

		sort.Strings(names)

		resultq <- names

		close(resultq)
	}

	return <-resultq
}

// Populate schedules a scan of every directory in the PATH-style
// list dirnames. Unreadable directories are skipped.
func Populate(dirnames string) {
	for _, dirname := range strings.Split(dirnames, pathListSeparator) {
		if dirname == "" {
			dirname = "."
		} else {
			dirname = filepath.Clean(dirname)
		}

		stat, err := os.Stat(dirname)
		if err != nil || !stat.IsDir() {
			continue
		}

		files(dirname)
	}
}

//nolint:gochecknoglobals
var (
	executables       = map[string]struct{}{}
	pathListSeparator = string(os.PathListSeparator)
	requestq          chan func()
)

func files(dirname string) {
	requestq <- func() {
		entries, err := os.ReadDir(dirname)
		if err != nil {
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}

			if info.Mode()&0111 != 0 {
				executables[entry.Name()] = struct{}{}
			}
		}
	}
}

func init() { //nolint:gochecknoinits
	requestq = make(chan func(), 1)

	go service()
}

func service() {
	for {
		(<-requestq)()
	}
}
