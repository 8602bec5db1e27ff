package power

import (
	"fmt"
	"os/exec"

	"github.com/tomek7667/pcpanel/internal/platform"
)

// Spawned identifies a process started by Launch.
type Spawned struct {
	PID int
}

// LaunchError reports a command that could not be started.
type LaunchError struct {
	Command platform.Command
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot run %q: %v", e.Command.String(), e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// StartFunc starts cmd and returns its PID without waiting for it.
type StartFunc func(cmd platform.Command) (int, error)

// Launcher spawns commands fire-and-forget.
type Launcher struct {
	start StartFunc
}

// NewLauncher returns a Launcher that starts real processes.
func NewLauncher() *Launcher {
	return &Launcher{start: startProcess}
}

// NewLauncherWith returns a Launcher using start, for tests and dry runs.
func NewLauncherWith(start StartFunc) *Launcher {
	return &Launcher{start: start}
}

// Launch starts cmd. It never waits for the process to finish.
func (l *Launcher) Launch(cmd platform.Command) (Spawned, error) {
	pid, err := l.start(cmd)
	if err != nil {
		return Spawned{}, &LaunchError{Command: cmd, Err: err}
	}
	return Spawned{PID: pid}, nil
}

func startProcess(cmd platform.Command) (int, error) {
	c := exec.Command(cmd.Name, cmd.Args...)
	if err := c.Start(); err != nil {
		return 0, err
	}
	pid := c.Process.Pid
	// Reap in the background so no zombie outlives the child.
	go func() { _ = c.Wait() }()
	return pid, nil
}
