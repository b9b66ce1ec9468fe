package models

// DiskUsage holds raw byte counts for a single volume.
type DiskUsage struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}

// DiskUsageHuman is DiskUsage with every value rendered as a unit string.
type DiskUsageHuman struct {
	Total string `json:"total"`
	Used  string `json:"used"`
	Free  string `json:"free"`
}
