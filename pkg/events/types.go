// Package events provides real-time case event delivery via PostgreSQL
// NOTIFY/LISTEN for cross-pod distribution. The case log table is the
// durable record; events are advisory and their loss never affects case
// state.
package events

// Event types broadcast over NOTIFY.
const (
	// EventTypeCaseLog announces a new case log entry.
	EventTypeCaseLog = "case.log"

	// EventTypeCaseStatus announces a case status or step transition.
	EventTypeCaseStatus = "case.status"
)

// GlobalCasesChannel carries case-level status events for every case. The
// case list view subscribes here.
const GlobalCasesChannel = "cases"

// CaseChannel returns the channel name for one case's events.
// Format: "case:{case_id}"
func CaseChannel(caseID string) string {
	return "case:" + caseID
}

// CaseLogPayload is the NOTIFY payload for a log entry.
type CaseLogPayload struct {
	Type      string `json:"type"`
	CaseID    string `json:"case_id"`
	Agent     string `json:"agent"`
	Message   string `json:"message"`
	Sequence  int    `json:"sequence"`
	Timestamp string `json:"timestamp"`
}

// CaseStatusPayload is the NOTIFY payload for a status transition.
type CaseStatusPayload struct {
	Type        string `json:"type"`
	CaseID      string `json:"case_id"`
	Status      string `json:"status"`
	CurrentStep string `json:"current_step,omitempty"`
	Timestamp   string `json:"timestamp"`
}
