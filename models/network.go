package models

// LatencyInfo holds the result of a single reachability probe.
type LatencyInfo struct {
	Target  string  `json:"target"`
	Latency float64 `json:"latency"`
	Success bool    `json:"success"`
}

// MasterEvent is the payload fired on a master connectivity change.
type MasterEvent struct {
	Master string `json:"master"`
}
