package status

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"statusagent/models"
)

// Collect gathers a point-in-time snapshot of the host. Individual probes
// that fail leave their fields zeroed; only total failure to enumerate
// disk usage or processes is reported.
func Collect(ctx context.Context) (*models.StatusReport, error) {
	report := &models.StatusReport{
		Timestamp: time.Now(),
		OS:        runtime.GOOS,
	}

	hostname, _ := os.Hostname()
	report.Hostname = hostname

	if hostInfo, err := host.InfoWithContext(ctx); err == nil {
		report.Platform = hostInfo.Platform + " " + hostInfo.PlatformVersion
		report.Uptime = hostInfo.Uptime
	}

	if percent, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(percent) > 0 {
		report.CPULoad = percent[0]
	}

	if memInfo, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		report.Memory = models.MemoryInfo{
			Total:     memInfo.Total,
			Available: memInfo.Available,
			Used:      memInfo.Used,
			Percent:   memInfo.UsedPercent,
		}
	}

	usage, err := DiskUsage(ctx, "")
	if err != nil {
		return nil, err
	}
	report.Disk = *usage

	count, err := ProcCount(ctx)
	if err != nil {
		return nil, err
	}
	report.ProcCount = count

	if agentMem, err := AgentMem(ctx); err == nil {
		report.AgentMem = agentMem
	}

	report.Containers = Containers(ctx)

	return report, nil
}
