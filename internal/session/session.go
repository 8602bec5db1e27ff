// Package session owns the state that lives across refresh ticks and turns
// one tick into one Snapshot.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tomek7667/pcpanel/internal/probe"
	"github.com/tomek7667/pcpanel/internal/sampler"
)

// Snapshot is everything produced by a single tick. Absent samples are nil.
type Snapshot struct {
	At           time.Time                    `json:"at"`
	System       probe.SystemSnapshot         `json:"system"`
	CPU          *sampler.CPUSample           `json:"cpu,omitempty"`
	Memory       *sampler.MemorySample        `json:"memory,omitempty"`
	Disk         *sampler.DiskSample          `json:"disk,omitempty"`
	Network      *sampler.NetworkRate         `json:"network,omitempty"`
	Temperatures []sampler.TemperatureReading `json:"temperatures"`
	Battery      *sampler.BatteryState        `json:"battery,omitempty"`
	History      []float64                    `json:"history"`
	Errors       SnapshotErrors               `json:"errors"`
}

// SnapshotErrors holds the failure message of each component, empty when it
// succeeded.
type SnapshotErrors struct {
	System       string `json:"system,omitempty"`
	CPU          string `json:"cpu,omitempty"`
	Memory       string `json:"memory,omitempty"`
	Disk         string `json:"disk,omitempty"`
	Network      string `json:"network,omitempty"`
	Temperatures string `json:"temperatures,omitempty"`
	Battery      string `json:"battery,omitempty"`
}

// Config tunes a Session.
type Config struct {
	DiskRoot   string
	HistoryLen int
}

// Session is the single owner of the sampler baselines and the CPU history.
// Tick must not be called concurrently.
type Session struct {
	probe   *probe.Probe
	sampler *sampler.Sampler
	history *sampler.History
	root    string
	logger  *log.Logger
	now     func() time.Time

	lastErr map[string]string
}

func New(p *probe.Probe, s *sampler.Sampler, cfg Config, logger *log.Logger) *Session {
	root := cfg.DiskRoot
	if root == "" {
		root = sampler.DefaultRoot()
	}
	return &Session{
		probe:   p,
		sampler: s,
		history: sampler.NewHistory(cfg.HistoryLen),
		root:    root,
		logger:  logger,
		now:     time.Now,
		lastErr: make(map[string]string),
	}
}

// Tick runs every probe and sampler once. Each one is isolated: a failure or
// panic in one leaves its field empty and is recorded in Errors.
func (s *Session) Tick(ctx context.Context) Snapshot {
	snap := Snapshot{At: s.now()}

	snap.Errors.System = s.guard("system", func() error {
		sys, err := s.probe.Collect(ctx)
		snap.System = sys
		return err
	})
	snap.Errors.CPU = s.guard("cpu", func() error {
		c, err := s.sampler.SampleCPU(ctx)
		if err != nil {
			return err
		}
		snap.CPU = &c
		s.history.Append(c.Total)
		return nil
	})
	snap.Errors.Memory = s.guard("memory", func() error {
		m, err := s.sampler.SampleMemory(ctx)
		if err != nil {
			return err
		}
		snap.Memory = &m
		return nil
	})
	snap.Errors.Disk = s.guard("disk", func() error {
		d, err := s.sampler.SampleDisk(ctx, s.root)
		if err != nil {
			return err
		}
		snap.Disk = &d
		return nil
	})
	snap.Errors.Network = s.guard("network", func() error {
		r, err := s.sampler.SampleNetworkRate(ctx)
		if err != nil {
			return err
		}
		snap.Network = &r
		return nil
	})
	snap.Errors.Temperatures = s.guard("temperatures", func() error {
		t, err := s.sampler.SampleTemperatures(ctx)
		snap.Temperatures = t
		return err
	})
	snap.Errors.Battery = s.guard("battery", func() error {
		b, err := s.sampler.SampleBattery(ctx)
		snap.Battery = b
		return err
	})

	snap.History = s.history.Values()
	return snap
}

// History exposes the CPU history, oldest first.
func (s *Session) History() []float64 {
	return s.history.Values()
}

// guard runs fn, converting a panic into an error. A component's error is
// logged only when its message changes.
func (s *Session) guard(component string, fn func() error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("panic: %v", r)
		}
		if msg != s.lastErr[component] {
			if msg != "" && s.logger != nil {
				s.logger.Printf("%s: %s", component, msg)
			}
			s.lastErr[component] = msg
		}
	}()
	if err := fn(); err != nil {
		return err.Error()
	}
	return ""
}
