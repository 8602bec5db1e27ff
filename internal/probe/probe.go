// Package probe collects the mostly static facts about the host: identity,
// CPU topology, GPUs and mainboard.
package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/tomek7667/pcpanel/internal/platform"
)

// hardwareMetaTTL bounds how often slow hardware queries (GPU enumeration,
// the baseboard lookup) are repeated.
const hardwareMetaTTL = 30 * time.Second

var familyNames = map[platform.Family]string{
	platform.Windows: "Windows",
	platform.Linux:   "Linux",
	platform.Darwin:  "Darwin",
}

// Probe builds SystemSnapshots.
type Probe struct {
	Adapter platform.Adapter
	Env     platform.Env
	Source  Source
	// GPU toggles graphics adapter enumeration.
	GPU     bool

	now func() time.Time

	mu             sync.Mutex
	board          platform.Board
	boardUpdatedAt time.Time
	gpus           []string
	gpusUpdatedAt  time.Time
}

// New returns a Probe bound to adapter, querying the real host.
func New(adapter platform.Adapter, env platform.Env) *Probe {
	return &Probe{
		Adapter: adapter,
		Env:     env,
		Source:  SystemSource(),
		GPU:     true,
		now:     time.Now,
	}
}

// Collect builds a snapshot. It always returns a usable snapshot; the error
// lists the queries that failed along the way.
func (p *Probe) Collect(ctx context.Context) (SystemSnapshot, error) {
	now := p.clock()
	var errs []error

	snap := SystemSnapshot{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	info, err := p.Source.Host(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("host info: %w", err))
	}
	if info != nil {
		if info.OS != "" {
			snap.OS = info.OS
		}
		snap.Hostname = strings.TrimSpace(info.Hostname)
		snap.Platform = strings.TrimSpace(info.Platform)
		snap.Release = strings.TrimSpace(info.KernelVersion)
		if info.KernelArch != "" {
			snap.Arch = info.KernelArch
		}
	}
	if name, ok := familyNames[p.Adapter.Family()]; ok {
		snap.OS = name
	}
	if snap.Hostname == "" {
		if h, err := os.Hostname(); err == nil {
			snap.Hostname = h
		}
	}

	if boot, err := p.Source.BootTime(ctx); err != nil {
		errs = append(errs, fmt.Errorf("boot time: %w", err))
	} else if boot > 0 {
		snap.BootTime = time.Unix(int64(boot), 0)
		snap.Uptime = now.Sub(snap.BootTime)
	}

	if p.Adapter.Family() == platform.Unknown {
		return snap, errors.Join(errs...)
	}

	logical, err := p.Source.LogicalCores(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("cpu logical cores: %w", err))
	} else {
		snap.LogicalCores = logical
	}
	if cpus, err := p.Source.CPUInfo(ctx); err == nil && len(cpus) > 0 {
		snap.CPUModel = strings.TrimSpace(cpus[0].ModelName)
	}
	snap.CPUFreqMHz = p.cpuFreqMHz(ctx, logical)

	if p.GPU {
		snap.GPUs = p.cachedGPUs(ctx, now)
	}
	if board := p.cachedBoard(ctx, now); !board.IsZero() {
		snap.Board = &board
	}

	return snap, errors.Join(errs...)
}

func (p *Probe) cachedBoard(ctx context.Context, now time.Time) platform.Board {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.boardUpdatedAt.IsZero() || now.Sub(p.boardUpdatedAt) >= hardwareMetaTTL {
		p.board = p.Adapter.Board(ctx)
		p.boardUpdatedAt = now
	}
	return p.board
}

func (p *Probe) cachedGPUs(ctx context.Context, now time.Time) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gpusUpdatedAt.IsZero() || now.Sub(p.gpusUpdatedAt) >= hardwareMetaTTL {
		p.gpus = p.gpuNames(ctx)
		p.gpusUpdatedAt = now
	}
	return append([]string(nil), p.gpus...)
}

func (p *Probe) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}
