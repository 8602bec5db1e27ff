// Package sampler reads time-varying host counters: CPU load, memory, disk,
// network throughput, temperatures and battery.
package sampler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Sampler keeps the previous CPU and network counters needed to turn
// cumulative counters into rates. It is not safe for concurrent use; the
// tick handler owns it.
type Sampler struct {
	src Source
	now func() time.Time

	// CPU percent is derived from deltas between successive samples.
	prevTotal   float64
	prevIdle    float64
	havePrevCPU bool
	prevCore    []cpu.TimesStat

	prevNet     NetworkCounters
	havePrevNet bool
}

// New returns a Sampler reading the real host.
func New(ctx context.Context) *Sampler {
	return NewWithSource(ctx, SystemSource(), time.Now)
}

// NewWithSource captures the CPU and network baselines from src, so the
// first samples measure the interval since construction.
func NewWithSource(ctx context.Context, src Source, now func() time.Time) *Sampler {
	s := &Sampler{src: src, now: now}
	if cur, err := s.captureNet(ctx); err == nil {
		s.prevNet, s.havePrevNet = cur, true
	}
	_, _ = s.SampleCPU(ctx)
	return s
}

// SampleMemory reports RAM usage.
func (s *Sampler) SampleMemory(ctx context.Context) (MemorySample, error) {
	vm, err := s.src.VirtualMemory(ctx)
	if err != nil {
		return MemorySample{}, err
	}
	if vm == nil {
		return MemorySample{}, fmt.Errorf("no memory statistics")
	}
	return MemorySample{
		UsedBytes:   vm.Used,
		TotalBytes:  vm.Total,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// SampleDisk reports usage of the volume mounted at root.
func (s *Sampler) SampleDisk(ctx context.Context, root string) (DiskSample, error) {
	u, err := s.src.DiskUsage(ctx, root)
	if err != nil {
		return DiskSample{}, fmt.Errorf("%s: %w", root, err)
	}
	if u == nil {
		return DiskSample{}, fmt.Errorf("%s: no usage statistics", root)
	}
	return DiskSample{
		Path:        root,
		UsedBytes:   u.Used,
		TotalBytes:  u.Total,
		UsedPercent: u.UsedPercent,
	}, nil
}

// DefaultRoot is the root of the current volume: "/" on Unix, the current
// drive (e.g. `C:\`) on Windows.
func DefaultRoot() string {
	root, err := filepath.Abs(string(os.PathSeparator))
	if err != nil {
		return string(os.PathSeparator)
	}
	return root
}
