package engine

import (
	"strings"

	"github.com/mitchellh/go-ps"
)

var _ ProcessChecker = (*DefaultProcessChecker)(nil)

// ProcessChecker reports whether a named process is in the process table.
type ProcessChecker interface {
	IsRunning(name string) bool
}

// DefaultProcessChecker scans the real process table with go-ps.
type DefaultProcessChecker struct{}

// IsRunning reports whether the named process is up. A scan failure
// counts as not running; the reload path then starts with an activate,
// which works against a stopped engine too.
func (pc *DefaultProcessChecker) IsRunning(name string) bool {
	procs, err := ps.Processes()
	if err != nil {
		return false
	}

	for _, proc := range procs {
		if matchesExecutable(proc.Executable(), name) {
			return true
		}
	}
	return false
}

// matchesExecutable compares a process-table entry against the engine
// name. Only the exact name and its .exe form count, case-insensitively;
// sibling binaries like SkinInstaller.exe or a RainmeterHelper must not
// make the engine look alive.
func matchesExecutable(exe, name string) bool {
	return strings.EqualFold(exe, name) || strings.EqualFold(exe, name+".exe")
}
