package status

import (
	"context"
	"net"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"statusagent/event"
	"statusagent/models"
)

// Event tags fired on a master connectivity change.
const (
	TagMasterConnected    = "__master_connected"
	TagMasterDisconnected = "__master_disconnected"
)

// ResolveFunc resolves a hostname to an IPv4 address, returning "" when
// resolution fails.
type ResolveFunc func(host string) string

func resolveIPv4(host string) string {
	ips, err := net.LookupIP(host)
	if err != nil {
		return ""
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}

// MasterChecker compares the live TCP connection table against the
// expected master endpoint and fires a connectivity event when the
// observation contradicts the caller's belief.
type MasterChecker struct {
	port    int
	runner  Runner
	resolve ResolveFunc
	bus     event.Bus
}

// NewMasterChecker builds a checker watching the given publish port.
func NewMasterChecker(port int, runner Runner, bus event.Bus) *MasterChecker {
	if bus == nil {
		bus = event.NopBus{}
	}
	return &MasterChecker{
		port:    port,
		runner:  runner,
		resolve: resolveIPv4,
		bus:     bus,
	}
}

// Check reports whether the master is currently connected and fires a
// directional event when that contradicts the caller's belief: believed
// connected but absent fires __master_disconnected, believed disconnected
// but present fires __master_connected. At most one event fires per call.
//
// A master hostname that fails to resolve is indistinguishable from a
// master that is legitimately absent: both evaluate as "not found".
//
// A failed connection-listing command is returned as an error; no event
// fires and no result is produced.
func (c *MasterChecker) Check(ctx context.Context, master string, connected bool) (bool, error) {
	masterIP := ""
	if master != "" {
		masterIP = c.resolve(master)
	}

	remotes, err := remotesOn(ctx, c.runner, c.port)
	if err != nil {
		return false, err
	}

	present := masterIP != "" && remotes[masterIP]

	if connected && !present {
		c.fire(ctx, master, TagMasterDisconnected)
	} else if !connected && present {
		c.fire(ctx, master, TagMasterConnected)
	}
	return present, nil
}

func (c *MasterChecker) fire(ctx context.Context, master, tag string) {
	if err := c.bus.Fire(ctx, models.MasterEvent{Master: master}, tag); err != nil {
		log.Warnf("Failed to fire %s event: %v", tag, err)
	}
}

// remotesOn parses `netstat -n -p TCP` output and returns the set of
// remote IPv4 addresses of ESTABLISHED connections on the given remote
// port.
func remotesOn(ctx context.Context, r Runner, port int) (map[string]bool, error) {
	out, err := r.Run(ctx, "netstat", "-n", "-p", "TCP")
	if err != nil {
		return nil, err
	}

	remotes := make(map[string]bool)
	for _, line := range splitLines(out) {
		if !strings.Contains(line, "ESTABLISHED") {
			continue
		}
		// Proto, local address, foreign address, state.
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		host, portStr, found := rsplitHostPort(fields[2])
		if !found {
			continue
		}
		remotePort, err := strconv.Atoi(portStr)
		if err != nil || remotePort != port {
			continue
		}
		remotes[host] = true
	}
	return remotes, nil
}

// rsplitHostPort splits addr on its last colon.
func rsplitHostPort(addr string) (host, port string, found bool) {
	i := strings.LastIndexByte(addr, ':')
	if i < 0 {
		return "", "", false
	}
	return addr[:i], addr[i+1:], true
}
