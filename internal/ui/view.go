package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomek7667/pcpanel/internal/power"
	"github.com/tomek7667/pcpanel/internal/units"
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	chartStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	sparkLevels = []rune("▁▂▃▄▅▆▇█")
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

const keyHelp = "r restart · s shutdown · o logout · z sleep · l lock · m monitor · q quit"

func (m *Model) View() string {
	if !m.ready {
		return subtleStyle.Render("Collecting…")
	}
	s := m.snap
	sys := s.System

	header := titleStyle.Render("PC Panel "+sys.Hostname) + "  " + subtleStyle.Render(sys.Header())
	infoLines := []string{"Uptime: " + units.FormatUptime(sys.Uptime)}
	if sys.Board != nil {
		infoLines = append(infoLines, "Board: "+sys.Board.String())
	}
	if len(sys.GPUs) > 0 {
		infoLines = append(infoLines, "GPU: "+strings.Join(sys.GPUs, ", "))
	}
	info := subtleStyle.Render(strings.Join(infoLines, "   "))

	cpuBody := notAvailable
	if s.CPU != nil {
		lines := []string{
			fmt.Sprintf("%s  %d cores  %s", truncate(sys.CPUModel, 32), sys.LogicalCores, freqText(sys.CPUFreqMHz)),
			"Total " + gaugeBar(s.CPU.Total, 24),
		}
		for i, c := range s.CPU.PerCore {
			lines = append(lines, fmt.Sprintf("Core %-2d %s", i+1, gaugeBar(c, 16)))
		}
		lines = append(lines, chartStyle.Render(sparkline(s.History, m.histCap)))
		cpuBody = strings.Join(lines, "\n")
	}
	cpuCard := card("CPU", cpuBody)

	sysLines := make([]string, 0, 5)
	if mem := s.Memory; mem != nil {
		sysLines = append(sysLines, "RAM   "+UsageText(mem.UsedBytes, mem.TotalBytes, mem.UsedPercent))
	} else {
		sysLines = append(sysLines, "RAM   "+notAvailable)
	}
	if d := s.Disk; d != nil {
		sysLines = append(sysLines, "Disk  "+UsageText(d.UsedBytes, d.TotalBytes, d.UsedPercent))
	} else {
		sysLines = append(sysLines, "Disk  "+notAvailable)
	}
	sysLines = append(sysLines,
		"Net   "+NetworkText(s.Network),
		"Temp  "+truncate(TemperaturesText(s.Temperatures), max(m.width-60, 20)),
		"Batt  "+BatteryText(s.Battery),
	)
	sysCard := card("System", strings.Join(sysLines, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard, sysCard)

	footer := subtleStyle.Render(keyHelp)
	if m.pending != nil {
		footer = promptStyle.Render(power.Prompt(*m.pending) + " (y/n)")
	}
	parts := []string{header, info, body, footer}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

// sparkline draws values oldest first, right-aligned in a field of width
// cells so the chart fills from the right as history accumulates.
func sparkline(values []float64, width int) string {
	if width < 0 {
		width = 0
	}
	if width < len(values) {
		values = values[len(values)-width:]
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width-len(values)))
	top := len(sparkLevels) - 1
	for _, v := range values {
		level := int(v/100*float64(top) + 0.5)
		if level < 0 {
			level = 0
		}
		if level > top {
			level = top
		}
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

func card(title, body string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
