package models

// ProcessInfo holds the command line, name and owner of a single process.
// User and UserDomain are empty when the owner lookup failed for a
// non-system process.
type ProcessInfo struct {
	Cmd        string `json:"cmd"`
	Name       string `json:"name"`
	User       string `json:"user,omitempty"`
	UserDomain string `json:"user_domain,omitempty"`
}
