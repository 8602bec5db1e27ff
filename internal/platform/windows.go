package platform

import (
	"bytes"
	"context"
	"encoding/json"
)

var baseboardQuery = []string{
	"-NoProfile",
	"-Command",
	"Get-CimInstance Win32_BaseBoard | " +
		"Select-Object Product, Manufacturer, SerialNumber, Version | " +
		"ConvertTo-Json -Compress",
}

type windowsAdapter struct {
	env Env
}

func (*windowsAdapter) Family() Family { return Windows }

func (a *windowsAdapter) Board(ctx context.Context) Board {
	out, err := a.env.Run(ctx, "powershell", baseboardQuery...)
	if err != nil {
		return Board{}
	}
	return parseBaseboardJSON(out)
}

type win32BaseBoard struct {
	Manufacturer string `json:"Manufacturer"`
	Product      string `json:"Product"`
	Version      string `json:"Version"`
	SerialNumber string `json:"SerialNumber"`
}

// parseBaseboardJSON accepts a single object or a list (first element wins).
// Anything unparsable yields an empty Board.
func parseBaseboardJSON(out []byte) Board {
	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return Board{}
	}

	var bb win32BaseBoard
	if out[0] == '[' {
		var list []win32BaseBoard
		if err := json.Unmarshal(out, &list); err != nil || len(list) == 0 {
			return Board{}
		}
		bb = list[0]
	} else if err := json.Unmarshal(out, &bb); err != nil {
		return Board{}
	}

	return Board{
		Manufacturer: bb.Manufacturer,
		Product:      bb.Product,
		Version:      bb.Version,
		Serial:       bb.SerialNumber,
	}.normalized()
}

func (a *windowsAdapter) Command(action Action) (Command, error) {
	switch action {
	case Restart:
		return Command{Name: "shutdown", Args: []string{"/r", "/t", "0"}}, nil
	case Shutdown:
		return Command{Name: "shutdown", Args: []string{"/s", "/t", "0"}}, nil
	case Logout:
		return Command{Name: "shutdown", Args: []string{"/l"}}, nil
	case Sleep:
		return Command{Name: "rundll32.exe", Args: []string{"powrprof.dll,SetSuspendState", "0,1,0"}}, nil
	case Lock:
		return Command{Name: "rundll32.exe", Args: []string{"user32.dll,LockWorkStation"}}, nil
	case Monitor:
		return Command{Name: "taskmgr"}, nil
	}
	return Command{}, ErrUnsupported
}
