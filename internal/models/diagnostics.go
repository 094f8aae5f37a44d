package models

// DatabaseState classifies what the diagnostics probe observed
type DatabaseState string

const (
	// DatabaseUnavailable means no live connection exists
	DatabaseUnavailable DatabaseState = "unavailable"
	// DatabaseListingFailed means the connection exists but listing collections failed
	DatabaseListingFailed DatabaseState = "listing_failed"
	// DatabaseOperational means the store answered the probe
	DatabaseOperational DatabaseState = "operational"
)

// DiagnosticReport is the body of GET /test
type DiagnosticReport struct {
	Backend          string        `json:"backend"`
	State            DatabaseState `json:"state"`
	Database         string        `json:"database"`
	DatabaseURL      string        `json:"database_url"`
	DatabaseName     string        `json:"database_name"`
	ConnectionStatus string        `json:"connection_status"`
	Collections      []string      `json:"collections"`
}
