package bench

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Host describes the machine a report was produced on. Fields the platform
// cannot report stay empty.
type Host struct {
	Platform string
	CPU      string
	Cores    int
	MemoryGB uint64
}

// String renders the host as one line.
func (h Host) String() string {
	return fmt.Sprintf("%s, %s (%d cores), %d GB", h.Platform, h.CPU, h.Cores, h.MemoryGB)
}

func probeHost() Host {
	h := Host{Platform: runtime.GOOS + "/" + runtime.GOARCH, Cores: runtime.NumCPU()}

	if hi, err := host.Info(); err == nil && hi.Platform != "" {
		h.Platform = hi.Platform + " " + hi.PlatformVersion
	}
	if ci, err := cpu.Info(); err == nil && len(ci) > 0 {
		h.CPU = ci[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		h.MemoryGB = vm.Total / 1024 / 1024 / 1024
	}

	return h
}
