package status

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	uptimeMarker = "Statistics since"

	// `net stats srv` prints the boot timestamp as day/month/year.
	uptimeLayout = "2/1/2006 15:04:05"
)

// Uptime returns the elapsed seconds since the host booted, taken from the
// "Statistics since" line of `net stats srv` output.
func Uptime(ctx context.Context, r Runner) (float64, error) {
	out, err := r.Run(ctx, "net", "stats", "srv")
	if err != nil {
		return 0, err
	}
	return uptimeSince(out, time.Now())
}

// uptimeSince scans the command output for the marker line, parses the
// trailing timestamp and returns now minus boot time in seconds.
func uptimeSince(out string, now time.Time) (float64, error) {
	var statsLine string
	for _, line := range splitLines(out) {
		if strings.Contains(line, uptimeMarker) {
			statsLine = line
		}
	}
	if statsLine == "" {
		return 0, fmt.Errorf("%q line not found in server statistics output", uptimeMarker)
	}

	idx := strings.Index(statsLine, uptimeMarker)
	stamp := strings.TrimSpace(statsLine[idx+len(uptimeMarker):])
	booted, err := time.ParseInLocation(uptimeLayout, stamp, now.Location())
	if err != nil {
		return 0, fmt.Errorf("parse boot timestamp %q: %w", stamp, err)
	}

	return now.Sub(booted).Seconds(), nil
}

// FormatUptime renders elapsed seconds as HH:MM:SS, prefixed with
// "Days: N" past one day and "Years: N" past 365 days. Days and years come
// from repeated integer division, not calendar math, so the Days figure is
// days-within-year once uptime exceeds a year.
func FormatUptime(elapsed float64) string {
	rest := int64(elapsed)
	seconds := rest % 60
	rest /= 60
	minutes := rest % 60
	rest /= 60
	hours := rest % 24
	rest /= 24

	out := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if rest > 0 {
		out = fmt.Sprintf("Days: %d %s", rest%365, out)
	}
	if rest > 365 {
		out = fmt.Sprintf("Years: %d %s", rest/365, out)
	}
	return out
}
