package models

import "time"

// MemoryInfo holds RAM stats
type MemoryInfo struct {
	Total     uint64  `json:"total"`
	Available uint64  `json:"available"`
	Used      uint64  `json:"used"`
	Percent   float64 `json:"percent"`
}

// StatusReport is the aggregated point-in-time snapshot pushed to the
// orchestration master.
type StatusReport struct {
	Timestamp  time.Time       `json:"timestamp"`
	Hostname   string          `json:"hostname"`
	OS         string          `json:"os"`
	Platform   string          `json:"platform"`
	Uptime     uint64          `json:"uptime"`
	CPULoad    float64         `json:"cpuLoad"`
	Memory     MemoryInfo      `json:"memory"`
	Disk       DiskUsage       `json:"disk"`
	ProcCount  int             `json:"procCount"`
	AgentMem   uint64          `json:"agentMem"`
	Containers []ContainerInfo `json:"containers,omitempty"`
}
