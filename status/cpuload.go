package status

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const loadColumn = "LoadPercentage"

// CPULoad returns the current processor load as an integer percentage,
// taken from the LoadPercentage column of `wmic cpu` output.
func CPULoad(ctx context.Context, r Runner) (int, error) {
	out, err := r.Run(ctx, "wmic", "cpu")
	if err != nil {
		return 0, err
	}
	return parseCPULoad(out)
}

// parseCPULoad locates the LoadPercentage column in the header line and
// extracts the value beneath it from the first data line. Handles both the
// fixed-width layout of plain `wmic cpu` and comma-delimited output.
func parseCPULoad(out string) (int, error) {
	lines := splitLines(out)
	if len(lines) < 2 {
		return 0, fmt.Errorf("cpu query output too short: %d line(s)", len(lines))
	}
	header, data := lines[0], lines[1]

	col := strings.Index(header, loadColumn)
	if col < 0 {
		return 0, fmt.Errorf("%s column not found in cpu query output", loadColumn)
	}

	var field string
	if strings.Contains(header, ",") {
		idx := strings.Count(header[:col], ",")
		fields := strings.Split(data, ",")
		if idx >= len(fields) {
			return 0, fmt.Errorf("cpu data line has %d field(s), want at least %d", len(fields), idx+1)
		}
		field = fields[idx]
	} else {
		if col >= len(data) {
			return 0, fmt.Errorf("cpu data line shorter than %s column offset", loadColumn)
		}
		field = data[col:]
		if end := strings.IndexByte(field, ' '); end >= 0 {
			field = field[:end]
		}
	}

	load, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("parse %s value %q: %w", loadColumn, field, err)
	}
	return load, nil
}

// splitLines splits command output on CRLF or LF.
func splitLines(out string) []string {
	return strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
}
