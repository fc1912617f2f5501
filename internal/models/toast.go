package models

import "time"

// Toast severities.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// Toast is an ephemeral user-facing notification. A zero Duration means the
// toast persists until explicitly removed.
type Toast struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  string        `json:"severity"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}
