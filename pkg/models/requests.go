package models

import "github.com/fincomply/vigil/ent"

// IndexRequest asks for an index pass over a repository. ChangedFiles
// non-empty requests a delta pass restricted to those paths.
type IndexRequest struct {
	RepoID       string   `json:"repo_id"`
	FullName     string   `json:"full_name,omitempty"`
	CommitSHA    string   `json:"commit_sha,omitempty"`
	ChangedFiles []string `json:"changed_files,omitempty"`
}

// CreateAuditRequest starts an audit case.
type CreateAuditRequest struct {
	RepoID        string   `json:"repo_id"`
	RegulationIDs []string `json:"regulation_ids"`

	// RequiresApproval defaults to true; false skips the HITL gate and
	// creates tickets immediately after the remediator step.
	RequiresApproval *bool `json:"requires_approval,omitempty"`
}

// ResumeDecision is the HITL outcome.
type ResumeDecision string

const (
	DecisionApprove ResumeDecision = "approve"
	DecisionDecline ResumeDecision = "decline"
)

// ResumeAuditRequest resolves a case waiting for approval. EditedTasks,
// when present, replaces the remediator's proposed tasks.
type ResumeAuditRequest struct {
	Decision    ResumeDecision    `json:"decision"`
	EditedTasks []RemediationTask `json:"edited_tasks,omitempty"`
	ReviewedBy  string            `json:"reviewed_by,omitempty"`
}

// CaseResponse wraps an AuditCase with its findings.
type CaseResponse struct {
	*ent.AuditCase
	Findings []*ent.Finding `json:"findings,omitempty"`
}

// CaseLogEntry is one log line as returned to streaming clients.
type CaseLogEntry struct {
	Agent     string `json:"agent"`
	Message   string `json:"message"`
	Sequence  int    `json:"sequence"`
	Timestamp string `json:"timestamp"`
}

// CaseLogsResponse is the page of log entries from a given sequence.
type CaseLogsResponse struct {
	CaseID  string         `json:"case_id"`
	Entries []CaseLogEntry `json:"entries"`
	Next    int            `json:"next"`
}
