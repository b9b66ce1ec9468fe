package status

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// AgentMem returns the working set of the agent's own process in bytes.
// Pass the result through ByteCalc for a human-readable value.
func AgentMem(ctx context.Context) (uint64, error) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("open own process: %w", err)
	}
	mem, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read working set: %w", err)
	}
	return mem.RSS, nil
}
