package units

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0 B"},
		{512, "512.0 B"},
		{1023, "1 023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024*1024 - 1, "1 024.0 KB"},
		{1048576, "1.0 MB"},
		{1572864, "1.5 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
		{5 * 1024 * 1024 * 1024 * 1024 * 1024, "5.0 PB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytesUnitRanges(t *testing.T) {
	for _, n := range []float64{0, 1, 100, 1000, 1023.9} {
		if got := FormatBytes(n); got[len(got)-2:] != " B" {
			t.Errorf("FormatBytes(%v) = %q, want unit B", n, got)
		}
	}
	for _, n := range []float64{1024, 4096, 1024*1024 - 100} {
		if got := FormatBytes(n); got[len(got)-3:] != " KB" {
			t.Errorf("FormatBytes(%v) = %q, want unit KB", n, got)
		}
	}
}

func TestFormatBitsPerSecond(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 b/s"},
		{100, "800 b/s"},
		{124.99, "1 000 b/s"},
		{125, "1 Kb/s"},
		{1000, "8 Kb/s"},
		{125000, "1 Mb/s"},
		{125000 * 1.001, "1 Mb/s"},
		{124999, "1 000 Kb/s"},
		{1000 * 1000 * 1000, "8 Gb/s"},
		{125e12, "1.0 Pb/s"},
	}
	for _, tt := range tests {
		if got := FormatBitsPerSecond(tt.in); got != tt.want {
			t.Errorf("FormatBitsPerSecond(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 min"},
		{59 * time.Second, "0 min"},
		{42 * time.Minute, "42 min"},
		{3*time.Hour + 5*time.Minute, "3 h 5 min"},
		{2*24*time.Hour + 30*time.Minute, "2 d 30 min"},
		{24*time.Hour + time.Hour + time.Minute, "1 d 1 h 1 min"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.in); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
