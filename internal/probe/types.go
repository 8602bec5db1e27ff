package probe

import (
	"time"

	"github.com/tomek7667/pcpanel/internal/platform"
)

// SystemSnapshot holds the mostly static facts about the host. It is rebuilt
// every tick and never mutated afterwards.
type SystemSnapshot struct {
	Hostname     string          `json:"hostname"`
	OS           string          `json:"os"`
	Platform     string          `json:"platform,omitempty"`
	Release      string          `json:"release"`
	Arch         string          `json:"arch"`
	LogicalCores int             `json:"logicalCores,omitempty"`
	CPUModel     string          `json:"cpuModel,omitempty"`
	CPUFreqMHz   *float64        `json:"cpuFreqMHz,omitempty"`
	GPUs         []string        `json:"gpus,omitempty"`
	Board        *platform.Board `json:"board,omitempty"`
	BootTime     time.Time       `json:"bootTime,omitempty"`
	Uptime       time.Duration   `json:"uptime,omitempty"`
}

// Header is the one-line "<OS> <release> • <arch>" summary.
func (s SystemSnapshot) Header() string {
	h := s.OS
	if s.Release != "" {
		h += " " + s.Release
	}
	if s.Arch != "" {
		h += " • " + s.Arch
	}
	return h
}
