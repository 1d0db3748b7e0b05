package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/multierr"

	"github.com/7eventy7/luckydock/internal/filesys"
)

type EngineTestSuite struct {
	suite.Suite
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// fakeRunner records invocations and answers them through an optional
// respond hook. It is safe for concurrent use so fan-out tests can share
// one instance.
type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	respond func(args []string) error
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	r.calls = append(r.calls, append([]string{name}, args...))
	r.mu.Unlock()

	if r.respond != nil {
		return r.respond(args)
	}
	return nil
}

func (r *fakeRunner) bangs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c[1])
	}
	return out
}

type fakeChecker struct {
	running bool
}

func (f fakeChecker) IsRunning(string) bool { return f.running }

func (s *EngineTestSuite) client(r *fakeRunner, running bool) *Client {
	return &Client{
		runner:  r,
		checker: fakeChecker{running: running},
		exe:     "Rainmeter.exe",
		group:   "LuckyDock",
		timeout: time.Second,
		retry:   time.Millisecond,
	}
}

func (s *EngineTestSuite) TestReloadRefreshesRunningEngine() {
	r := &fakeRunner{}
	c := s.client(r, true)

	err := c.Reload(context.Background(), "LuckyDock 1", "LuckyDock.ini")
	s.Require().NoError(err)
	s.Equal([]string{"!Refresh"}, r.bangs())
	s.Equal(`LuckyDock\LuckyDock 1`, r.calls[0][2])
}

func (s *EngineTestSuite) TestReloadActivatesStoppedEngine() {
	r := &fakeRunner{}
	c := s.client(r, false)

	err := c.Reload(context.Background(), "LuckyDock 1", "LuckyDock.ini")
	s.Require().NoError(err)
	s.Equal([]string{"!ActivateConfig"}, r.bangs())
	s.Equal("LuckyDock.ini", r.calls[0][3])
}

func (s *EngineTestSuite) TestReloadFallsBackToActivate() {
	r := &fakeRunner{
		respond: func(args []string) error {
			if args[0] == "!Refresh" {
				return errors.New("config not active")
			}
			return nil
		},
	}
	c := s.client(r, true)

	err := c.Reload(context.Background(), "LuckyDock 1", "LuckyDock.ini")
	s.Require().NoError(err)
	s.Equal([]string{"!Refresh", "!ActivateConfig"}, r.bangs())
}

func (s *EngineTestSuite) TestReloadAggregatesFailures() {
	r := &fakeRunner{
		respond: func([]string) error { return errors.New("engine exploded") },
	}
	c := s.client(r, true)

	err := c.Reload(context.Background(), "LuckyDock 1", "LuckyDock.ini")
	s.Require().Error(err)
	s.ErrorContains(err, "!Refresh")
	s.ErrorContains(err, "!ActivateConfig")
	s.Len(r.calls, 2)
}

func (s *EngineTestSuite) TestReloadStopsOnCanceledContext() {
	r := &fakeRunner{
		respond: func([]string) error { return errors.New("boom") },
	}
	c := s.client(r, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Reload(ctx, "LuckyDock 1", "LuckyDock.ini")
	s.Require().Error(err)
	s.ErrorIs(err, context.Canceled)
	s.Len(r.calls, 1)
}

func (s *EngineTestSuite) TestRefreshAllAttemptsEveryInstance() {
	r := &fakeRunner{
		respond: func(args []string) error {
			if strings.Contains(args[1], "LuckyDock 2") {
				return errors.New("stuck")
			}
			return nil
		},
	}
	c := s.client(r, true)

	names := []string{"LuckyDock 1", "LuckyDock 2", "LuckyDock 3"}
	err := c.RefreshAll(context.Background(), names, "LuckyDock.ini")
	s.Require().Error(err)
	s.Len(multierr.Errors(err), 1)
	s.ErrorContains(err, "LuckyDock 2")

	// The failing instance burned both reload attempts, the others one each.
	s.Len(r.calls, 4)
}

func (s *EngineTestSuite) TestRefreshAllCleanRun() {
	r := &fakeRunner{}
	c := s.client(r, true)

	err := c.RefreshAll(context.Background(), []string{"LuckyDock 1", "LuckyDock 2"}, "LuckyDock.ini")
	s.Require().NoError(err)
	s.Len(r.calls, 2)
}

func (s *EngineTestSuite) TestLocate() {
	s.Run("explicit override", func() {
		dir := s.T().TempDir()
		exe := filepath.Join(dir, "Rainmeter.exe")
		s.Require().NoError(os.WriteFile(exe, []byte{}, 0o755))

		p, err := Locate(filesys.OS(), exe)
		s.Require().NoError(err)
		s.Equal(exe, p)
	})

	s.Run("missing override", func() {
		_, err := Locate(filesys.OS(), filepath.Join(s.T().TempDir(), "nope.exe"))
		s.Require().Error(err)
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("known install dir", func() {
		dir := s.T().TempDir()
		s.Require().NoError(os.MkdirAll(filepath.Join(dir, "Rainmeter"), 0o755))
		exe := filepath.Join(dir, "Rainmeter", "Rainmeter.exe")
		s.Require().NoError(os.WriteFile(exe, []byte{}, 0o755))
		s.T().Setenv("PROGRAMFILES", dir)

		p, err := Locate(filesys.OS(), "")
		s.Require().NoError(err)
		s.Equal(exe, p)
	})

	s.Run("nothing found", func() {
		s.T().Setenv("PROGRAMFILES", "")
		s.T().Setenv("PROGRAMFILES(X86)", "")
		s.T().Setenv("LOCALAPPDATA", "")
		// PATH too, or a host with the engine installed finds it there.
		s.T().Setenv("PATH", "")

		p, err := Locate(filesys.OS(), "")
		s.Require().Error(err)
		s.ErrorIs(err, ErrNotFound)
		s.Equal(exeName, p)
	})
}

func (s *EngineTestSuite) TestExecRunnerReportsMissingBinary() {
	err := ExecRunner{}.Run(context.Background(), "luckydock-test-no-such-binary")
	s.Require().Error(err)
}

func (s *EngineTestSuite) TestProcessCheckerMiss() {
	pc := &DefaultProcessChecker{}
	s.False(pc.IsRunning("luckydock-test-no-such-process"))
}

func (s *EngineTestSuite) TestMatchesExecutable() {
	tests := []struct {
		name string
		exe  string
		want bool
	}{
		{name: "bare name", exe: "Rainmeter", want: true},
		{name: "exe form", exe: "Rainmeter.exe", want: true},
		{name: "case folded", exe: "rainmeter.EXE", want: true},
		{name: "helper binary", exe: "RainmeterHelper.exe", want: false},
		{name: "sibling binary", exe: "SkinInstaller.exe", want: false},
		{name: "truncated", exe: "Rainmete", want: false},
		{name: "empty", exe: "", want: false},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, matchesExecutable(tc.exe, processName))
		})
	}
}
