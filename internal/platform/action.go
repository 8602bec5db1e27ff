package platform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound means no candidate utility for an action exists on PATH.
	ErrToolNotFound = errors.New("tool not found")
	// ErrUnsupported means the OS family has no command for an action.
	ErrUnsupported = errors.New("unsupported on this system")
)

// Action is a one-shot power or session command.
type Action int

const (
	Restart Action = iota
	Shutdown
	Logout
	Sleep
	Lock
	Monitor
)

// Actions lists every action in display order.
var Actions = []Action{Restart, Shutdown, Logout, Sleep, Lock, Monitor}

var actionNames = map[Action]string{
	Restart:  "restart",
	Shutdown: "shutdown",
	Logout:   "logout",
	Sleep:    "sleep",
	Lock:     "lock",
	Monitor:  "monitor",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Destructive actions end the session or stop the machine and need confirmation.
func (a Action) Destructive() bool {
	switch a {
	case Restart, Shutdown, Logout, Sleep:
		return true
	}
	return false
}

// ParseAction maps a name such as "lock" to its Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

func notFound(hint string) error {
	return fmt.Errorf("%w: %s", ErrToolNotFound, hint)
}
