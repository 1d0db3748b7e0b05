// Package engine drives the external rendering engine through its
// command-line bang interface. It locates the engine executable, checks
// whether the engine process is up, and issues the activate / refresh /
// unload commands that make the engine pick up skin file changes. All
// invocations are synchronous with a fixed timeout.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/7eventy7/luckydock/internal/filesys"
	"github.com/7eventy7/luckydock/internal/log"
	"github.com/7eventy7/luckydock/pkg/bang"
)

// ErrNotFound is returned when no engine executable could be located.
var ErrNotFound = errors.New("engine executable not found")

const (
	// exeName is the engine's executable file name.
	exeName = "Rainmeter.exe"
	// processName is what the engine shows up as in the process table.
	processName = "Rainmeter"
	// refreshConcurrency bounds the reload fan-out: the engine serializes
	// bangs internally, so more buys nothing.
	refreshConcurrency = 4
)

// Locate finds the engine executable: an explicit override first, then
// the known install folders, then PATH. On ErrNotFound the returned path
// is still a best-effort target (the override as configured, or the bare
// executable name); callers may run it and let the OS resolve it.
func Locate(fsys filesys.FileOps, override string) (string, error) {
	if override != "" {
		if _, err := fsys.Stat(override); err != nil {
			return override, fmt.Errorf("%w: configured path %s", ErrNotFound, override)
		}
		return override, nil
	}

	for _, dir := range knownInstallDirs() {
		p := filepath.Join(dir, exeName)
		if _, err := fsys.Stat(p); err == nil {
			return p, nil
		}
	}

	if p, err := exec.LookPath(exeName); err == nil {
		return p, nil
	}
	return exeName, ErrNotFound
}

// knownInstallDirs lists where the engine's installer puts the executable.
func knownInstallDirs() []string {
	var dirs []string
	for _, env := range []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"} {
		if v := os.Getenv(env); v != "" {
			dirs = append(dirs, filepath.Join(v, "Rainmeter"))
		}
	}
	return dirs
}

// Runner executes one external command synchronously.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

var _ Runner = ExecRunner{}

// ExecRunner runs commands through os/exec, folding any process output
// into the returned error.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err == nil {
		return nil
	}
	if msg := strings.TrimSpace(string(out)); msg != "" {
		return fmt.Errorf("%s: %w: %s", filepath.Base(name), err, msg)
	}
	return fmt.Errorf("%s: %w", filepath.Base(name), err)
}

// Client issues bang commands against one skin group.
type Client struct {
	runner  Runner
	checker ProcessChecker
	exe     string
	group   string
	timeout time.Duration
	retry   time.Duration
}

// New creates a Client for the engine executable at exe, managing skins
// of the given group. timeout bounds each invocation; retry is the pause
// between attempts of a reload sequence.
func New(exe, group string, timeout, retry time.Duration) *Client {
	return &Client{
		runner:  ExecRunner{},
		checker: &DefaultProcessChecker{},
		exe:     exe,
		group:   group,
		timeout: timeout,
		retry:   retry,
	}
}

// Exe returns the engine executable the client talks to.
func (c *Client) Exe() string {
	return c.exe
}

// Running reports whether the engine process is up.
func (c *Client) Running() bool {
	return c.checker.IsRunning(processName)
}

// Activate loads the instance's skin file into the engine and starts
// rendering it. Against a stopped engine this also starts the engine.
func (c *Client) Activate(ctx context.Context, instance, file string) error {
	return c.run(ctx, bang.ActivateConfig(c.group, instance, file))
}

// Refresh makes the engine re-read an already-active instance from disk.
func (c *Client) Refresh(ctx context.Context, instance string) error {
	return c.run(ctx, bang.Refresh(c.group, instance))
}

// Unload removes the instance from the engine. Deleting an instance
// folder without unloading first leaves the engine holding the file open.
func (c *Client) Unload(ctx context.Context, instance string) error {
	return c.run(ctx, bang.UnloadSkin(c.group, instance))
}

// Reload makes the engine pick up a rewritten skin file. The refresh and
// activate forms are tried in sequence with a short pause in between
// until one succeeds; against a stopped engine the sequence starts with
// activate instead, which brings the engine up. Failures of all attempts
// are aggregated.
func (c *Client) Reload(ctx context.Context, instance, file string) error {
	attempts := []bang.Command{
		bang.Refresh(c.group, instance),
		bang.ActivateConfig(c.group, instance, file),
	}
	if !c.Running() {
		attempts[0], attempts[1] = attempts[1], attempts[0]
	}

	var errs error
	for i, cmd := range attempts {
		if i > 0 {
			select {
			case <-ctx.Done():
				return multierr.Append(errs, ctx.Err())
			case <-time.After(c.retry):
			}
		}
		if err := c.run(ctx, cmd); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("engine reload failed: %w", errs)
}

// RefreshAll reloads every named instance. Reloads fan out concurrently
// with a small limit; every instance is attempted even when some fail,
// and per-instance failures come back aggregated.
func (c *Client) RefreshAll(ctx context.Context, names []string, file string) error {
	var g errgroup.Group
	g.SetLimit(refreshConcurrency)

	errs := make([]error, len(names))
	var failed atomic.Int64
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := c.Reload(ctx, name, file); err != nil {
				failed.Inc()
				errs[i] = fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		log.Warnf("engine: %d of %d reloads failed", n, len(names))
	}
	return multierr.Combine(errs...)
}

func (c *Client) run(ctx context.Context, cmd bang.Command) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log.Debugf("engine: %s %s", c.exe, cmd)
	if err := c.runner.Run(ctx, c.exe, cmd.Argv()...); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}
