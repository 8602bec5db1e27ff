package sampler

import "time"

// CPUSample is the aggregate load and per-core loads, ordered by OS core index.
type CPUSample struct {
	Total   float64   `json:"total"`
	PerCore []float64 `json:"perCore"`
}

// MemorySample is RAM usage.
type MemorySample struct {
	UsedBytes   uint64  `json:"usedBytes"`
	TotalBytes  uint64  `json:"totalBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

// DiskSample is usage of a single volume.
type DiskSample struct {
	Path        string  `json:"path"`
	UsedBytes   uint64  `json:"usedBytes"`
	TotalBytes  uint64  `json:"totalBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

// NetworkCounters are cumulative byte counters captured at At.
type NetworkCounters struct {
	BytesSent uint64
	BytesRecv uint64
	At        time.Time
}

// NetworkRate is throughput in bytes per second.
type NetworkRate struct {
	SentBytesPerSec float64 `json:"sentBytesPerSec"`
	RecvBytesPerSec float64 `json:"recvBytesPerSec"`
}

func (r NetworkRate) SentBitsPerSec() float64 { return r.SentBytesPerSec * 8 }
func (r NetworkRate) RecvBitsPerSec() float64 { return r.RecvBytesPerSec * 8 }

// TemperatureReading is one sensor value.
type TemperatureReading struct {
	Sensor  string  `json:"sensor"`
	Label   string  `json:"label,omitempty"`
	Celsius float64 `json:"celsius"`
}

// BatteryState is the charge level and whether external power is connected.
type BatteryState struct {
	Percent   float64 `json:"percent"`
	PluggedIn bool    `json:"pluggedIn"`
}
