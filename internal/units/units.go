// Package units turns raw counters into the strings shown on the panel.
package units

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	byteUnits = []string{"B", "KB", "MB", "GB", "TB"}
	bitUnits  = []string{"b/s", "Kb/s", "Mb/s", "Gb/s", "Tb/s"}
)

// FormatBytes renders n with binary (1024) steps and one decimal, e.g. "1.5 MB".
func FormatBytes(n float64) string {
	for _, unit := range byteUnits {
		if n < 1024 {
			return groupThousands(strconv.FormatFloat(n, 'f', 1, 64)) + " " + unit
		}
		n /= 1024
	}
	return fmt.Sprintf("%.1f PB", n)
}

// FormatBitsPerSecond takes a byte rate and renders it as a decimal bit rate.
// Tiers below Pb/s are printed without decimals.
func FormatBitsPerSecond(bytesPerSecond float64) string {
	bps := bytesPerSecond * 8
	for _, unit := range bitUnits {
		if bps < 1000 {
			return groupThousands(strconv.FormatFloat(bps, 'f', 0, 64)) + " " + unit
		}
		bps /= 1000
	}
	return fmt.Sprintf("%.1f Pb/s", bps)
}

// FormatUptime renders d as "2 d 3 h 14 min". Days and hours are left out
// when zero; minutes are always present.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d d", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d h", hours))
	}
	parts = append(parts, fmt.Sprintf("%d min", minutes))
	return strings.Join(parts, " ")
}

// groupThousands inserts a space every three digits of the integer part.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
