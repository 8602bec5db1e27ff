package ui

import (
	"fmt"
	"strings"

	"github.com/tomek7667/pcpanel/internal/sampler"
	"github.com/tomek7667/pcpanel/internal/session"
	"github.com/tomek7667/pcpanel/internal/units"
)

const notAvailable = "N/A"

// UsageText renders "used / total (pct%)".
func UsageText(used, total uint64, pct float64) string {
	return fmt.Sprintf("%s / %s (%.0f%%)", units.FormatBytes(float64(used)), units.FormatBytes(float64(total)), pct)
}

func NetworkText(r *sampler.NetworkRate) string {
	if r == nil {
		return notAvailable
	}
	return fmt.Sprintf("Up: %s  |  Down: %s",
		units.FormatBitsPerSecond(r.SentBytesPerSec),
		units.FormatBitsPerSecond(r.RecvBytesPerSec))
}

func TemperaturesText(readings []sampler.TemperatureReading) string {
	if len(readings) == 0 {
		return notAvailable
	}
	parts := make([]string, 0, len(readings))
	for _, r := range readings {
		parts = append(parts, fmt.Sprintf("%s:%s %.0f°C", r.Sensor, r.Label, r.Celsius))
	}
	return strings.Join(parts, ", ")
}

func BatteryText(b *sampler.BatteryState) string {
	if b == nil {
		return notAvailable
	}
	status := "on battery"
	if b.PluggedIn {
		status = "charging"
	}
	return fmt.Sprintf("%.0f%% (%s)", b.Percent, status)
}

// Summary is the plain-text form of a snapshot.
func Summary(snap session.Snapshot) string {
	sys := snap.System
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-13s %s\n", label+":", value)
	}

	line("Host", sys.Hostname)
	line("System", sys.Header())
	line("Uptime", units.FormatUptime(sys.Uptime))
	if sys.Board != nil {
		line("Board", sys.Board.String())
	}
	if sys.CPUModel != "" {
		line("CPU model", sys.CPUModel)
	}
	line("Cores", fmt.Sprintf("%d", sys.LogicalCores))
	line("Frequency", freqText(sys.CPUFreqMHz))
	if len(sys.GPUs) > 0 {
		line("GPU", strings.Join(sys.GPUs, ", "))
	}

	if snap.CPU != nil {
		line("CPU", fmt.Sprintf("%.0f%%", snap.CPU.Total))
		for i, c := range snap.CPU.PerCore {
			line(fmt.Sprintf("  core %d", i+1), fmt.Sprintf("%.0f%%", c))
		}
	} else {
		line("CPU", notAvailable)
	}
	if m := snap.Memory; m != nil {
		line("Memory", UsageText(m.UsedBytes, m.TotalBytes, m.UsedPercent))
	} else {
		line("Memory", notAvailable)
	}
	if d := snap.Disk; d != nil {
		line("Disk "+d.Path, UsageText(d.UsedBytes, d.TotalBytes, d.UsedPercent))
	} else {
		line("Disk", notAvailable)
	}
	line("Network", NetworkText(snap.Network))
	line("Temperatures", TemperaturesText(snap.Temperatures))
	line("Battery", BatteryText(snap.Battery))
	return b.String()
}

func freqText(mhz *float64) string {
	if mhz == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.0f MHz", *mhz)
}
