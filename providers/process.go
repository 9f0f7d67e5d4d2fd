package providers

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/pthm-cable/pulse/stats"
)

// Process reports CPU usage and resident memory for the running process.
type Process struct {
	proc *process.Process
}

// NewProcess creates the process provider. It fails if the current
// process cannot be inspected on this platform.
func NewProcess() (*Process, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("opening current process: %w", err)
	}
	return &Process{proc: proc}, nil
}

// IsAvailable implements stats.Provider.
func (p *Process) IsAvailable(index stats.StatIndex) bool {
	return index == stats.StatCPUUsage || index == stats.StatMemoryRSS
}

// Sample implements stats.Provider. CPU usage is the percentage since the
// previous sample; memory is resident set size in bytes.
func (p *Process) Sample(delta float32) (stats.Counters, error) {
	counters := make(stats.Counters, 2)

	cpu, err := p.proc.Percent(0)
	if err != nil {
		return nil, fmt.Errorf("reading cpu percent: %w", err)
	}
	counters[stats.StatCPUUsage] = float32(cpu)

	mem, err := p.proc.MemoryInfo()
	if err != nil {
		return nil, fmt.Errorf("reading memory info: %w", err)
	}
	counters[stats.StatMemoryRSS] = float32(mem.RSS)

	return counters, nil
}
