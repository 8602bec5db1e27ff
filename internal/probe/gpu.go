package probe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tomek7667/pcpanel/internal/platform"
)

// gpuNames asks ghw first and falls back to nvidia-smi. Both failing is not
// an error worth reporting: most hosts simply have nothing to list.
func (p *Probe) gpuNames(ctx context.Context) []string {
	if names, err := p.Source.GraphicsCards(); err == nil && len(names) > 0 {
		return names
	}
	names, err := nvidiaSMINames(ctx, p.Env)
	if err != nil {
		return nil
	}
	return names
}

func nvidiaSMINames(ctx context.Context, env platform.Env) ([]string, error) {
	path, err := findNvidiaSMI(env)
	if err != nil {
		return nil, err
	}
	out, err := env.Run(ctx, path, "--query-gpu=name", "--format=csv,noheader")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func findNvidiaSMI(env platform.Env) (string, error) {
	if p, err := env.LookPath("nvidia-smi"); err == nil {
		return p, nil
	}

	candidates := []string{
		os.ExpandEnv(`${ProgramFiles}\NVIDIA Corporation\NVSMI\nvidia-smi.exe`),
		os.ExpandEnv(`${ProgramW6432}\NVIDIA Corporation\NVSMI\nvidia-smi.exe`),
	}
	for _, c := range candidates {
		if strings.HasPrefix(c, `\`) {
			continue
		}
		if p, err := env.LookPath(c); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("nvidia-smi not found")
}
