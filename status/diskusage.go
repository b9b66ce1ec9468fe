package status

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/disk"

	"statusagent/models"
)

// DefaultDiskPath is the root of the system volume for the current OS.
func DefaultDiskPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

// DiskUsage returns total/used/free byte counts for path. An empty path
// queries the system volume root.
func DiskUsage(ctx context.Context, path string) (*models.DiskUsage, error) {
	if path == "" {
		path = DefaultDiskPath()
	}
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return &models.DiskUsage{
		Total: usage.Total,
		Used:  usage.Used,
		Free:  usage.Free,
	}, nil
}

// HumanDiskUsage renders every field of a DiskUsage through ByteCalc.
func HumanDiskUsage(u *models.DiskUsage) *models.DiskUsageHuman {
	return &models.DiskUsageHuman{
		Total: ByteCalc(u.Total),
		Used:  ByteCalc(u.Used),
		Free:  ByteCalc(u.Free),
	}
}
