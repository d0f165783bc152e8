package resilience

import (
	"time"
)

// DLQEntry records a filing that failed to read or parse. The entry is an
// operator-facing audit row, not a retry queue: the error type tells a
// rerun's operator which failures a fresh invocation might clear
// (transient) and which will just fail again (permanent).
type DLQEntry struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Error       string    `json:"error"`
	ErrorType   string    `json:"error_type"` // "transient" or "permanent"
	FailedPhase string    `json:"failed_phase,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClassifyError categorizes an error as "transient" or "permanent".
func ClassifyError(err error) string {
	if IsTransient(err) {
		return "transient"
	}
	return "permanent"
}
