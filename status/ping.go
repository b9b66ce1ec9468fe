package status

import (
	"context"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"statusagent/models"
)

// MasterLatency probes the master with ICMP echo and reports the average
// round-trip time in milliseconds. A master that never answers within the
// timeout yields Success=false.
func MasterLatency(ctx context.Context, master string, timeout time.Duration) models.LatencyInfo {
	info := models.LatencyInfo{Target: master}

	pinger, err := probing.NewPinger(master)
	if err != nil {
		return info
	}
	pinger.Count = 3
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		return info
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return info
	}
	info.Latency = float64(stats.AvgRtt) / float64(time.Millisecond)
	info.Success = true
	return info
}
