package platform

import (
	"bufio"
	"bytes"
	"context"
	"strings"
)

const cgSession = "/System/Library/CoreServices/Menu Extras/User.menu/Contents/Resources/CGSession"

type darwinAdapter struct {
	env Env
}

func (*darwinAdapter) Family() Family { return Darwin }

// Board scans the IORegistry dump for the board-id property. Apple is the
// only manufacturer.
func (a *darwinAdapter) Board(ctx context.Context) Board {
	out, _ := a.env.Run(ctx, "ioreg", "-l")
	return Board{
		Manufacturer: "Apple",
		Product:      parseBoardID(out),
	}.normalized()
}

func parseBoardID(out []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "board-id") {
			continue
		}
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `<>" `)
	}
	return ""
}

func systemEvents(verb string) Command {
	return Command{Name: "osascript", Args: []string{"-e", `tell app "System Events" to ` + verb}}
}

func (a *darwinAdapter) Command(action Action) (Command, error) {
	switch action {
	case Restart:
		return systemEvents("restart"), nil
	case Shutdown:
		return systemEvents("shut down"), nil
	case Logout:
		return systemEvents("log out"), nil
	case Sleep:
		return Command{Name: "pmset", Args: []string{"sleepnow"}}, nil
	case Lock:
		return Command{Name: cgSession, Args: []string{"-suspend"}}, nil
	case Monitor:
		return Command{Name: "open", Args: []string{"-a", "Activity Monitor"}}, nil
	}
	return Command{}, ErrUnsupported
}
