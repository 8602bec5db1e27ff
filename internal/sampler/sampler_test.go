package sampler

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

type fakeSource struct {
	total    []cpu.TimesStat
	cores    []cpu.TimesStat
	cpuErr   error
	vm       *mem.VirtualMemoryStat
	vmErr    error
	usage    *disk.UsageStat
	usageErr error
	net      []net.IOCountersStat
	netErr   error
	temps    []host.TemperatureStat
	tempErr  error
	batt     []*battery.Battery
	battErr  error
}

func (f *fakeSource) CPUTimes(_ context.Context, perCPU bool) ([]cpu.TimesStat, error) {
	if f.cpuErr != nil {
		return nil, f.cpuErr
	}
	if perCPU {
		return f.cores, nil
	}
	return f.total, nil
}

func (f *fakeSource) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	return f.vm, f.vmErr
}

func (f *fakeSource) DiskUsage(context.Context, string) (*disk.UsageStat, error) {
	return f.usage, f.usageErr
}

func (f *fakeSource) NetCounters(context.Context) ([]net.IOCountersStat, error) {
	return f.net, f.netErr
}

func (f *fakeSource) Temperatures(context.Context) ([]host.TemperatureStat, error) {
	return f.temps, f.tempErr
}

func (f *fakeSource) Batteries() ([]*battery.Battery, error) { return f.batt, f.battErr }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestSampleCPU(t *testing.T) {
	src := &fakeSource{
		total: []cpu.TimesStat{{User: 10, Idle: 90}},
		cores: []cpu.TimesStat{{User: 5, Idle: 45}, {User: 5, Idle: 45}},
	}
	s := NewWithSource(context.Background(), src, time.Now)

	// +30 busy, +70 idle overall; core0 fully busy, core1 idle.
	src.total = []cpu.TimesStat{{User: 40, Idle: 160}}
	src.cores = []cpu.TimesStat{{User: 55, Idle: 45}, {User: 5, Idle: 95}}

	got, err := s.SampleCPU(context.Background())
	if err != nil {
		t.Fatalf("SampleCPU() err = %v", err)
	}
	if math.Abs(got.Total-30) > 1e-9 {
		t.Errorf("Total = %v, want 30", got.Total)
	}
	if len(got.PerCore) != 2 || got.PerCore[0] != 100 || got.PerCore[1] != 0 {
		t.Errorf("PerCore = %v, want [100 0]", got.PerCore)
	}
}

func TestSampleCPUWithoutProgress(t *testing.T) {
	src := &fakeSource{
		total: []cpu.TimesStat{{User: 10, Idle: 90}},
		cores: []cpu.TimesStat{{User: 10, Idle: 90}},
	}
	s := NewWithSource(context.Background(), src, time.Now)
	got, err := s.SampleCPU(context.Background())
	if err != nil {
		t.Fatalf("SampleCPU() err = %v", err)
	}
	if got.Total != 0 || got.PerCore[0] != 0 {
		t.Fatalf("SampleCPU() = %+v, want zeros", got)
	}
}

func TestSampleCPUNewCoreHasNoBaseline(t *testing.T) {
	src := &fakeSource{
		total: []cpu.TimesStat{{User: 1, Idle: 1}},
		cores: []cpu.TimesStat{{User: 1, Idle: 1}},
	}
	s := NewWithSource(context.Background(), src, time.Now)
	src.total = []cpu.TimesStat{{User: 2, Idle: 2}}
	src.cores = []cpu.TimesStat{{User: 2, Idle: 1}, {User: 9, Idle: 0}}
	got, _ := s.SampleCPU(context.Background())
	if len(got.PerCore) != 2 || got.PerCore[0] != 100 || got.PerCore[1] != 0 {
		t.Fatalf("PerCore = %v", got.PerCore)
	}
}

func TestSampleCPUError(t *testing.T) {
	src := &fakeSource{cpuErr: errors.New("permission denied")}
	s := NewWithSource(context.Background(), src, time.Now)
	if _, err := s.SampleCPU(context.Background()); err == nil {
		t.Fatal("SampleCPU() err = nil")
	}
}

func TestSampleMemoryAndDisk(t *testing.T) {
	src := &fakeSource{
		vm:    &mem.VirtualMemoryStat{Total: 16 << 30, Used: 4 << 30, UsedPercent: 25},
		usage: &disk.UsageStat{Total: 500 << 30, Used: 100 << 30, UsedPercent: 20},
	}
	s := NewWithSource(context.Background(), src, time.Now)

	m, err := s.SampleMemory(context.Background())
	if err != nil || m.TotalBytes != 16<<30 || m.UsedBytes != 4<<30 || m.UsedPercent != 25 {
		t.Fatalf("SampleMemory() = %+v, %v", m, err)
	}
	d, err := s.SampleDisk(context.Background(), "/")
	if err != nil || d.Path != "/" || d.UsedPercent != 20 || d.TotalBytes != 500<<30 {
		t.Fatalf("SampleDisk() = %+v, %v", d, err)
	}

	src.vmErr = errors.New("boom")
	if _, err := s.SampleMemory(context.Background()); err == nil {
		t.Fatal("SampleMemory() err = nil")
	}
	src.usage, src.usageErr = nil, errors.New("no such volume")
	if _, err := s.SampleDisk(context.Background(), "/missing"); err == nil {
		t.Fatal("SampleDisk() err = nil")
	}
}

func TestComputeRate(t *testing.T) {
	t0 := time.Unix(0, 0)
	prev := NetworkCounters{BytesSent: 1000, BytesRecv: 2000, At: t0}
	cur := NetworkCounters{BytesSent: 2000, BytesRecv: 2500, At: t0.Add(time.Second)}

	got := ComputeRate(prev, cur)
	if got.SentBytesPerSec != 1000 || got.RecvBytesPerSec != 500 {
		t.Fatalf("ComputeRate() = %+v, want 1000/500 B/s", got)
	}
	if got.SentBitsPerSec() != 8000 || got.RecvBitsPerSec() != 4000 {
		t.Fatalf("bits = %v/%v", got.SentBitsPerSec(), got.RecvBitsPerSec())
	}
}

func TestComputeRateZeroElapsed(t *testing.T) {
	at := time.Unix(100, 0)
	got := ComputeRate(
		NetworkCounters{BytesSent: 0, At: at},
		NetworkCounters{BytesSent: 1, At: at},
	)
	if math.IsInf(got.SentBytesPerSec, 0) || math.IsNaN(got.SentBytesPerSec) {
		t.Fatalf("rate not finite: %+v", got)
	}
	if math.Abs(got.SentBytesPerSec-1e6) > 1e-3 {
		t.Fatalf("SentBytesPerSec = %v, want 1e6", got.SentBytesPerSec)
	}
}

func TestComputeRateCounterReset(t *testing.T) {
	t0 := time.Unix(0, 0)
	got := ComputeRate(
		NetworkCounters{BytesSent: 5000, BytesRecv: 100, At: t0},
		NetworkCounters{BytesSent: 10, BytesRecv: 300, At: t0.Add(2 * time.Second)},
	)
	if got.SentBytesPerSec != 0 || got.RecvBytesPerSec != 100 {
		t.Fatalf("ComputeRate() = %+v, want 0/100", got)
	}
}

func TestSampleNetworkRateSlidesBaseline(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	src := &fakeSource{net: []net.IOCountersStat{{Name: "all", BytesSent: 1000, BytesRecv: 2000}}}
	s := NewWithSource(context.Background(), src, clock.now)

	clock.t = clock.t.Add(time.Second)
	src.net = []net.IOCountersStat{{Name: "all", BytesSent: 2000, BytesRecv: 2500}}
	got, err := s.SampleNetworkRate(context.Background())
	if err != nil || got.SentBytesPerSec != 1000 || got.RecvBytesPerSec != 500 {
		t.Fatalf("first rate = %+v, %v", got, err)
	}

	clock.t = clock.t.Add(2 * time.Second)
	src.net = []net.IOCountersStat{{Name: "all", BytesSent: 2000, BytesRecv: 4500}}
	got, _ = s.SampleNetworkRate(context.Background())
	if got.SentBytesPerSec != 0 || got.RecvBytesPerSec != 1000 {
		t.Fatalf("second rate = %+v", got)
	}
}

func TestSampleNetworkRateRecoversFromFailedBaseline(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	src := &fakeSource{netErr: errors.New("no /proc/net/dev")}
	s := NewWithSource(context.Background(), src, clock.now)

	if _, err := s.SampleNetworkRate(context.Background()); err == nil {
		t.Fatal("SampleNetworkRate() err = nil")
	}

	src.netErr = nil
	src.net = []net.IOCountersStat{{BytesSent: 10, BytesRecv: 10}}
	if got, err := s.SampleNetworkRate(context.Background()); err != nil || got != (NetworkRate{}) {
		t.Fatalf("baseline rate = %+v, %v", got, err)
	}
	clock.t = clock.t.Add(time.Second)
	src.net = []net.IOCountersStat{{BytesSent: 20, BytesRecv: 30}}
	if got, _ := s.SampleNetworkRate(context.Background()); got.SentBytesPerSec != 10 || got.RecvBytesPerSec != 20 {
		t.Fatalf("rate = %+v", got)
	}
}

func TestSampleTemperatures(t *testing.T) {
	src := &fakeSource{temps: []host.TemperatureStat{
		{SensorKey: "coretemp_package_id_0", Temperature: 54},
		{SensorKey: "acpitz", Temperature: 27.8},
		{SensorKey: "nvme_composite", Temperature: 0},
		{SensorKey: "bogus", Temperature: math.NaN()},
	}}
	s := NewWithSource(context.Background(), src, time.Now)
	got, err := s.SampleTemperatures(context.Background())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := []TemperatureReading{
		{Sensor: "coretemp", Label: "package_id_0", Celsius: 54},
		{Sensor: "acpitz", Celsius: 27.8},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reading %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSampleTemperaturesUnsupported(t *testing.T) {
	src := &fakeSource{tempErr: errors.New("not implemented yet")}
	s := NewWithSource(context.Background(), src, time.Now)
	got, err := s.SampleTemperatures(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("SampleTemperatures() = %v, %v; want empty, nil", got, err)
	}
}

func TestSampleTemperaturesPartialWarnings(t *testing.T) {
	src := &fakeSource{
		temps:   []host.TemperatureStat{{SensorKey: "k10temp_tctl", Temperature: 61}},
		tempErr: errors.New("some sensors could not be read"),
	}
	s := NewWithSource(context.Background(), src, time.Now)
	got, err := s.SampleTemperatures(context.Background())
	if err != nil || len(got) != 1 || got[0].Sensor != "k10temp" {
		t.Fatalf("SampleTemperatures() = %v, %v", got, err)
	}
}

func TestSampleBattery(t *testing.T) {
	tests := []struct {
		name string
		batt []*battery.Battery
		err  error
		want *BatteryState
	}{
		{name: "no battery"},
		{name: "lookup error without battery", err: errors.New("not found")},
		{
			name: "discharging",
			batt: []*battery.Battery{{State: battery.Discharging, Current: 30, Full: 60}},
			want: &BatteryState{Percent: 50},
		},
		{
			name: "charging",
			batt: []*battery.Battery{{State: battery.Charging, Current: 45, Full: 50}},
			want: &BatteryState{Percent: 90, PluggedIn: true},
		},
		{
			name: "two packs",
			batt: []*battery.Battery{
				{State: battery.Full, Current: 50, Full: 50},
				{State: battery.Discharging, Current: 0, Full: 50},
			},
			want: &BatteryState{Percent: 50},
		},
		{
			name: "overfull clamps",
			batt: []*battery.Battery{{State: battery.Full, Current: 52, Full: 50}},
			want: &BatteryState{Percent: 100, PluggedIn: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{batt: tt.batt, battErr: tt.err}
			got, err := NewWithSource(context.Background(), src, time.Now).SampleBattery(context.Background())
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Fatalf("SampleBattery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
