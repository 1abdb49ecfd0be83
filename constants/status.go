package constants

// RunStatus is the canonical status for rows in extraction_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusRunning   RunStatus = "RUNNING"   // in progress
	RunStatusSucceeded RunStatus = "SUCCEEDED" // all attempted chunks resolved, records produced
	RunStatusPartial   RunStatus = "PARTIAL"   // finished with failed chunks or a terminal abort mid-run
	RunStatusFailed    RunStatus = "FAILED"    // terminal failure with nothing to show
)
