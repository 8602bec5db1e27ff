package sampler

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// SampleCPU reports load since the previous call without blocking. Cores
// without a baseline report 0.
func (s *Sampler) SampleCPU(ctx context.Context) (CPUSample, error) {
	times, err := s.src.CPUTimes(ctx, false)
	if err != nil {
		return CPUSample{}, fmt.Errorf("cpu times: %w", err)
	}
	var sample CPUSample
	if len(times) > 0 {
		total := cpuTimesTotal(times[0])
		idle := times[0].Idle + times[0].Iowait
		if s.havePrevCPU {
			sample.Total = busyPercent(total-s.prevTotal, idle-s.prevIdle)
		}
		s.prevTotal, s.prevIdle, s.havePrevCPU = total, idle, true
	}

	cores, err := s.src.CPUTimes(ctx, true)
	if err != nil {
		return sample, fmt.Errorf("per-core cpu times: %w", err)
	}
	sample.PerCore = make([]float64, len(cores))
	for i, c := range cores {
		if i >= len(s.prevCore) {
			continue
		}
		prev := s.prevCore[i]
		sample.PerCore[i] = busyPercent(
			cpuTimesTotal(c)-cpuTimesTotal(prev),
			(c.Idle+c.Iowait)-(prev.Idle+prev.Iowait),
		)
	}
	s.prevCore = cores
	return sample, nil
}

func busyPercent(totalDelta, idleDelta float64) float64 {
	if totalDelta <= 0 {
		return 0
	}
	usage := (totalDelta - idleDelta) / totalDelta * 100
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}

func cpuTimesTotal(t cpu.TimesStat) float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal + t.Guest + t.GuestNice
}
