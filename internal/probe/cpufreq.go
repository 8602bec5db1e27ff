package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomek7667/pcpanel/internal/platform"
)

const cpuRoot = "/sys/devices/system/cpu"

// cpuFreqMHz returns the current average frequency, or nil when the host
// does not expose one.
func (p *Probe) cpuFreqMHz(ctx context.Context, logical int) *float64 {
	if p.Adapter.Family() == platform.Linux {
		if mhz, err := linuxCurrentMHz(p.Env, logical); err == nil && mhz > 0 {
			return &mhz
		}
	}

	info, err := p.Source.CPUInfo(ctx)
	if err != nil {
		return nil
	}
	var sum float64
	var n int
	for _, i := range info {
		if i.Mhz <= 0 {
			continue
		}
		sum += i.Mhz
		n++
	}
	if n == 0 {
		return nil
	}
	mhz := sum / float64(n)
	return &mhz
}

// linuxCurrentMHz averages scaling_cur_freq (kHz) over the logical CPUs.
func linuxCurrentMHz(env platform.Env, logical int) (float64, error) {
	var sumKHz, count int64
	for i := 0; i < logical; i++ {
		base := fmt.Sprintf("%s/cpu%d/cpufreq", cpuRoot, i)
		kHz, err := readInt(env, base+"/scaling_cur_freq")
		if err != nil || kHz <= 0 {
			kHz, err = readInt(env, base+"/cpuinfo_cur_freq")
		}
		if err != nil || kHz <= 0 {
			continue
		}
		sumKHz += kHz
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("no cpufreq data found")
	}
	return float64(sumKHz) / float64(count) / 1000, nil
}

func readInt(env platform.Env, path string) (int64, error) {
	b, err := env.ReadFile(path)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseInt(s, 10, 64)
}
