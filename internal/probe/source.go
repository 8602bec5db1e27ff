package probe

import (
	"context"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// Source is the set of library queries the probe depends on.
type Source interface {
	Host(ctx context.Context) (*host.InfoStat, error)
	BootTime(ctx context.Context) (uint64, error)
	LogicalCores(ctx context.Context) (int, error)
	CPUInfo(ctx context.Context) ([]cpu.InfoStat, error)
	GraphicsCards() ([]string, error)
}

type systemSource struct{}

// SystemSource returns a Source backed by gopsutil and ghw.
func SystemSource() Source { return systemSource{} }

func (systemSource) Host(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (systemSource) BootTime(ctx context.Context) (uint64, error) {
	return host.BootTimeWithContext(ctx)
}

func (systemSource) LogicalCores(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (systemSource) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (systemSource) GraphicsCards() ([]string, error) {
	info, err := ghw.GPU()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var name, vendor string
		if card.DeviceInfo.Product != nil {
			name = strings.TrimSpace(card.DeviceInfo.Product.Name)
		}
		if card.DeviceInfo.Vendor != nil {
			vendor = strings.TrimSpace(card.DeviceInfo.Vendor.Name)
		}
		if name == "" {
			name = vendor
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
