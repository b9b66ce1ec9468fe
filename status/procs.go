package status

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
	log "github.com/sirupsen/logrus"

	"statusagent/models"
)

// Owner lookup error code for access denied. PID 0 (System Idle Process)
// and PID 4 (System) always deny the lookup.
const errnoAccessDenied = 2

var systemPIDs = map[int32]bool{0: true, 4: true}

// ProcessHandle exposes the per-process fields the extractor needs. Owner
// may fail; the returned code mirrors the OS error code when known.
type ProcessHandle interface {
	Pid() int32
	Name() (string, error)
	Cmdline() (string, error)
	Owner() (user, domain string, code int, err error)
}

// Procs returns a ProcessInfo entry for every process on the host, keyed
// by PID. Entries whose owner lookup failed are still included, just
// without owner fields.
func Procs(ctx context.Context) (map[int32]models.ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	info := make(map[int32]models.ProcessInfo, len(procs))
	for _, p := range procs {
		info[p.Pid] = extractProcessInfo(gopsHandle{ctx: ctx, proc: p})
	}
	return info, nil
}

// ProcCount returns the number of processes on the host. Fast path: no
// per-process detail extraction.
func ProcCount(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("enumerate processes: %w", err)
	}
	return len(pids), nil
}

// extractProcessInfo builds a ProcessInfo from one process handle. Owner
// lookup failures never escape: the two well-known system PIDs get a
// synthesized SYSTEM owner on access denied, anything else is logged and
// left without owner fields.
func extractProcessInfo(h ProcessHandle) models.ProcessInfo {
	cmd, _ := h.Cmdline()
	name, _ := h.Name()
	info := models.ProcessInfo{Cmd: cmd, Name: name}

	user, domain, code, err := h.Owner()
	switch {
	case err == nil && user != "" && domain != "":
		info.User = user
		info.UserDomain = domain
	case systemPIDs[h.Pid()] && code == errnoAccessDenied:
		info.User = "SYSTEM"
		info.UserDomain = "NT AUTHORITY"
	default:
		log.Warnf("Error getting owner of process; PID='%d'; Error: %d", h.Pid(), code)
	}
	return info
}

// gopsHandle adapts a gopsutil process to ProcessHandle.
type gopsHandle struct {
	ctx  context.Context
	proc *process.Process
}

func (g gopsHandle) Pid() int32 {
	return g.proc.Pid
}

func (g gopsHandle) Name() (string, error) {
	return g.proc.NameWithContext(g.ctx)
}

func (g gopsHandle) Cmdline() (string, error) {
	return g.proc.CmdlineWithContext(g.ctx)
}

// Owner resolves the process owner. On Windows gopsutil reports it as
// DOMAIN\user; elsewhere there is no domain part.
func (g gopsHandle) Owner() (string, string, int, error) {
	username, err := g.proc.UsernameWithContext(g.ctx)
	if err != nil {
		code := 0
		if errors.Is(err, os.ErrPermission) {
			code = errnoAccessDenied
		}
		return "", "", code, err
	}
	if domain, user, ok := strings.Cut(username, `\`); ok {
		return user, domain, 0, nil
	}
	return username, "", 0, nil
}
