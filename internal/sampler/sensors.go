package sampler

import (
	"context"
	"math"
	"strings"

	"github.com/distatus/battery"
)

// SampleTemperatures lists every sensor with a plausible reading. Hosts that
// cannot report temperatures yield an empty list and no error.
func (s *Sampler) SampleTemperatures(ctx context.Context) ([]TemperatureReading, error) {
	temps, err := s.src.Temperatures(ctx)
	if err != nil && len(temps) == 0 {
		if isTemperatureUnavailable(err) {
			return nil, nil
		}
		return nil, err
	}

	readings := make([]TemperatureReading, 0, len(temps))
	for _, t := range temps {
		if t.Temperature <= 0 || !isFiniteFloat(t.Temperature) {
			continue
		}
		sensor, label, _ := strings.Cut(strings.TrimSpace(t.SensorKey), "_")
		readings = append(readings, TemperatureReading{
			Sensor:  sensor,
			Label:   label,
			Celsius: t.Temperature,
		})
	}
	return readings, nil
}

// SampleBattery returns nil when the host has no battery.
func (s *Sampler) SampleBattery(context.Context) (*BatteryState, error) {
	batteries, err := s.src.Batteries()

	var current, full float64
	plugged := true
	for _, b := range batteries {
		if b == nil || b.Full <= 0 {
			continue
		}
		current += b.Current
		full += b.Full
		if b.State == battery.Discharging || b.State == battery.Empty {
			plugged = false
		}
	}
	if full <= 0 {
		if err != nil && len(batteries) > 0 {
			return nil, err
		}
		return nil, nil
	}

	pct := current / full * 100
	return &BatteryState{Percent: math.Max(0, math.Min(100, pct)), PluggedIn: plugged}, nil
}

func isFiniteFloat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isTemperatureUnavailable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not implemented") || strings.Contains(msg, "not supported")
}
