package bench

import (
	"fmt"
	"runtime"
	"strings"
)

// SystemInfo describes the machine a report was produced on.
type SystemInfo struct {
	GoVersion string
	OS        string
	Arch      string
	Kernel    string // empty when unknown
	CPUs      int
}

// CollectSystemInfo returns information about the running process.
func CollectSystemInfo() SystemInfo {
	return SystemInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Kernel:    kernelRelease(),
		CPUs:      runtime.NumCPU(),
	}
}

// Markdown renders the info as markdown list items.
func (s SystemInfo) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("- %s %s/%s, %d cpus\n", s.GoVersion, s.OS, s.Arch, s.CPUs))

	if s.Kernel != "" {
		sb.WriteString(fmt.Sprintf("- kernel: %s\n", s.Kernel))
	}

	return sb.String()
}
