package sampler

import (
	"context"
	"fmt"
	"time"
)

// minElapsed floors the interval between two network captures.
const minElapsed = time.Microsecond

// SampleNetworkRate captures the current counters, derives throughput against
// the previous capture and makes the current capture the new baseline.
func (s *Sampler) SampleNetworkRate(ctx context.Context) (NetworkRate, error) {
	cur, err := s.captureNet(ctx)
	if err != nil {
		return NetworkRate{}, err
	}
	if !s.havePrevNet {
		s.prevNet, s.havePrevNet = cur, true
		return NetworkRate{}, nil
	}
	rate := ComputeRate(s.prevNet, cur)
	s.prevNet = cur
	return rate, nil
}

// ComputeRate derives bytes per second between two captures. A counter that
// went backwards (interface reset) yields 0 for that direction.
func ComputeRate(prev, cur NetworkCounters) NetworkRate {
	elapsed := cur.At.Sub(prev.At)
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	secs := elapsed.Seconds()
	return NetworkRate{
		SentBytesPerSec: float64(counterDelta(prev.BytesSent, cur.BytesSent)) / secs,
		RecvBytesPerSec: float64(counterDelta(prev.BytesRecv, cur.BytesRecv)) / secs,
	}
}

func counterDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

func (s *Sampler) captureNet(ctx context.Context) (NetworkCounters, error) {
	counters, err := s.src.NetCounters(ctx)
	if err != nil {
		return NetworkCounters{}, fmt.Errorf("net counters: %w", err)
	}
	cur := NetworkCounters{At: s.now()}
	for _, c := range counters {
		cur.BytesSent += c.BytesSent
		cur.BytesRecv += c.BytesRecv
	}
	return cur, nil
}
