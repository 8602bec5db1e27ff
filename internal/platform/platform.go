// Package platform selects the OS family once at startup and hides every
// OS-specific query and command behind the Adapter interface. Every family
// is compiled on every OS.
package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"time"
)

// Family identifies the OS family an Adapter serves.
type Family string

const (
	Windows Family = "windows"
	Linux   Family = "linux"
	Darwin  Family = "darwin"
	Unknown Family = "unknown"
)

const commandTimeout = 10 * time.Second

// RunFunc runs a command and returns its standard output.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// LookPathFunc resolves an executable name the way exec.LookPath does.
type LookPathFunc func(file string) (string, error)

// Env is the OS surface touched by adapters. Tests swap every field.
type Env struct {
	Run      RunFunc
	ReadFile func(name string) ([]byte, error)
	LookPath LookPathFunc
	Username func() (string, error)
}

// SystemEnv returns an Env backed by the real host.
func SystemEnv() Env {
	return Env{
		Run:      runCommand,
		ReadFile: os.ReadFile,
		LookPath: exec.LookPath,
		Username: currentUsername,
	}
}

// Adapter is the per-family capability used by the probe and by power actions.
type Adapter interface {
	Family() Family
	// Board looks up mainboard identity. Failures leave fields empty.
	Board(ctx context.Context) Board
	// Command returns the external command implementing action on this host.
	Command(action Action) (Command, error)
}

// Detect returns the adapter for the running OS.
func Detect() Adapter {
	return ForOS(runtime.GOOS, SystemEnv())
}

// ForOS returns the adapter for goos. Unrecognised systems get an adapter
// that reports nothing and supports no actions.
func ForOS(goos string, env Env) Adapter {
	switch goos {
	case "windows":
		return &windowsAdapter{env: env}
	case "linux":
		return &linuxAdapter{env: env}
	case "darwin":
		return &darwinAdapter{env: env}
	default:
		return &unknownAdapter{goos: goos}
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func currentUsername() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("current user unknown")
}
