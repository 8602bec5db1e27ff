// Package power runs the one-shot session and power actions (restart,
// shutdown, logout, sleep, lock, system monitor).
package power

import (
	"errors"
	"fmt"
	"log"

	"github.com/tomek7667/pcpanel/internal/platform"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Status is the outcome of Run when no error occurred.
type Status int

const (
	Launched Status = iota
	Declined
)

func (s Status) String() string {
	if s == Declined {
		return "declined"
	}
	return "launched"
}

// Result describes what Run did.
type Result struct {
	Action  platform.Action
	Command platform.Command
	Status  Status
	PID     int
}

var verbs = map[platform.Action]string{
	platform.Restart:  "restart",
	platform.Shutdown: "shut down",
	platform.Logout:   "log out",
	platform.Sleep:    "put the computer to sleep",
}

// Prompt is the confirmation question for action.
func Prompt(action platform.Action) string {
	verb, ok := verbs[action]
	if !ok {
		verb = action.String()
	}
	return fmt.Sprintf("Are you sure you want to %s?", verb)
}

// Controller resolves an action through the platform adapter, gates
// destructive actions behind confirmation and launches the command.
type Controller struct {
	adapter  platform.Adapter
	launcher *Launcher
	logger   *log.Logger
}

func NewController(adapter platform.Adapter, launcher *Launcher, logger *log.Logger) *Controller {
	return &Controller{adapter: adapter, launcher: launcher, logger: logger}
}

// Resolve returns the command action would run on this host.
func (c *Controller) Resolve(action platform.Action) (platform.Command, error) {
	cmd, err := c.adapter.Command(action)
	if err != nil {
		return platform.Command{}, fmt.Errorf("%s: %w", action, err)
	}
	return cmd, nil
}

// Run performs action. A missing tool or unsupported OS is returned before
// any confirmation is asked and nothing is spawned.
func (c *Controller) Run(action platform.Action, confirm Confirmer) (Result, error) {
	res := Result{Action: action}

	cmd, err := c.Resolve(action)
	if err != nil {
		return res, err
	}
	res.Command = cmd

	if action.Destructive() && (confirm == nil || !confirm.Confirm(Prompt(action))) {
		res.Status = Declined
		return res, nil
	}

	spawned, err := c.launcher.Launch(cmd)
	if err != nil {
		return res, err
	}
	res.PID = spawned.PID
	res.Status = Launched
	if c.logger != nil {
		c.logger.Printf("power: %s: started %q (pid %d)", action, cmd.String(), spawned.PID)
	}
	return res, nil
}

// Notice turns a Run error into the message shown to the user.
func Notice(err error) string {
	var launchErr *LaunchError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &launchErr):
		return "Error: " + launchErr.Error()
	case errors.Is(err, platform.ErrToolNotFound), errors.Is(err, platform.ErrUnsupported):
		return "Info: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
