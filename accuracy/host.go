package accuracy

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
)

// HostInfo describes the machine a report was produced on. Float64
// references can differ across platforms, so reports carry it.
type HostInfo struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelArch    string `json:"kernel_arch"`
	KernelVersion string `json:"kernel_version"`
	CPUModel      string `json:"cpu_model"`
	LogicalCPUs   int    `json:"logical_cpus"`
	GoVersion     string `json:"go_version"`
}

// CollectHostInfo fills what the platform reports and leaves the rest empty.
func CollectHostInfo() HostInfo {
	info := HostInfo{
		OS:          runtime.GOOS,
		KernelArch:  runtime.GOARCH,
		LogicalCPUs: runtime.NumCPU(),
		GoVersion:   runtime.Version(),
	}
	if hi, err := host.Info(); err == nil {
		info.Hostname = hi.Hostname
		info.Platform = hi.Platform + " " + hi.PlatformVersion
		info.KernelVersion = hi.KernelVersion
		if hi.KernelArch != "" {
			info.KernelArch = hi.KernelArch
		}
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		info.LogicalCPUs = n
	}
	return info
}
