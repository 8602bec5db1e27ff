package platform

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
)

type fakeHost struct {
	files   map[string]string
	onPath  map[string]bool
	outputs map[string]string
	runErr  error
	user    string
	calls   []string
}

func (h *fakeHost) env() Env {
	return Env{
		Run: func(_ context.Context, name string, args ...string) ([]byte, error) {
			h.calls = append(h.calls, name)
			if h.runErr != nil {
				return nil, h.runErr
			}
			out, ok := h.outputs[name]
			if !ok {
				return nil, errors.New("exit status 1")
			}
			return []byte(out), nil
		},
		ReadFile: func(name string) ([]byte, error) {
			v, ok := h.files[name]
			if !ok {
				return nil, fs.ErrNotExist
			}
			return []byte(v), nil
		},
		LookPath: func(file string) (string, error) {
			if h.onPath[file] {
				return filepath.Join("/usr/bin", file), nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		Username: func() (string, error) {
			if h.user == "" {
				return "", errors.New("no user")
			}
			return h.user, nil
		},
	}
}
