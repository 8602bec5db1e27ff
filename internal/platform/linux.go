package platform

import (
	"context"
	"path/filepath"
)

const dmiDir = "/sys/class/dmi/id"

type linuxAdapter struct {
	env Env
}

func (*linuxAdapter) Family() Family { return Linux }

// Board reads the DMI pseudo-files. Each file is independent; a missing or
// unreadable one only leaves its field empty.
func (a *linuxAdapter) Board(context.Context) Board {
	read := func(name string) string {
		b, err := a.env.ReadFile(filepath.Join(dmiDir, name))
		if err != nil {
			return ""
		}
		return string(b)
	}
	return Board{
		Manufacturer: read("board_vendor"),
		Product:      read("board_name"),
		Version:      read("board_version"),
		Serial:       read("board_serial"),
	}.normalized()
}

var (
	linuxLockers = []Candidate{
		{Name: "loginctl", Args: []string{"lock-session"}},
		{Name: "xdg-screensaver", Args: []string{"lock"}},
		{Name: "gnome-screensaver-command", Args: []string{"--lock"}},
		{Name: "xlock"},
		{Name: "i3lock"},
	}
	linuxMonitors = []Candidate{
		{Name: "gnome-system-monitor"},
		{Name: "ksysguard"},
		{Name: "htop"},
		{Name: "top"},
	}
)

func (a *linuxAdapter) Command(action Action) (Command, error) {
	switch action {
	case Restart:
		return Command{Name: "systemctl", Args: []string{"reboot"}}, nil
	case Shutdown:
		return Command{Name: "systemctl", Args: []string{"poweroff"}}, nil
	case Sleep:
		return Command{Name: "systemctl", Args: []string{"suspend"}}, nil
	case Logout:
		return a.logoutCommand()
	case Lock:
		if cmd, ok := FirstOnPath(a.env.LookPath, linuxLockers...); ok {
			return cmd, nil
		}
		return Command{}, notFound("no screen locker found")
	case Monitor:
		if cmd, ok := FirstOnPath(a.env.LookPath, linuxMonitors...); ok {
			return cmd, nil
		}
		return Command{}, notFound("no system monitor found (try installing gnome-system-monitor or htop)")
	}
	return Command{}, ErrUnsupported
}

func (a *linuxAdapter) logoutCommand() (Command, error) {
	candidates := make([]Candidate, 0, 2)
	if name, err := a.env.Username(); err == nil && name != "" {
		candidates = append(candidates, Candidate{Name: "loginctl", Args: []string{"terminate-user", name}})
	}
	candidates = append(candidates, Candidate{Name: "gnome-session-quit", Args: []string{"--logout", "--no-prompt"}})

	if cmd, ok := FirstOnPath(a.env.LookPath, candidates...); ok {
		return cmd, nil
	}
	return Command{}, notFound("no logout command found for this environment")
}
