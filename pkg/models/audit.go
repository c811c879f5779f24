package models

// Workflow step identifiers, in execution order.
const (
	StepPlanner      = "planner"
	StepNavigator    = "navigator"
	StepInvestigator = "investigator"
	StepJudge        = "judge"
	StepRemediator   = "remediator"
)

// WorkflowSteps is the fixed step sequence of an audit case.
var WorkflowSteps = []string{
	StepPlanner,
	StepNavigator,
	StepInvestigator,
	StepJudge,
	StepRemediator,
}

// Agent display names used in case logs.
const (
	AgentPlanner      = "PLANNER"
	AgentNavigator    = "NAVIGATOR"
	AgentInvestigator = "INVESTIGATOR"
	AgentJudge        = "JUDGE"
	AgentRemediator   = "REMEDIATOR"
)

// PlanTask is one investigation task elicited by the planner.
type PlanTask struct {
	Description string `json:"description"`
	Dimension   string `json:"dimension,omitempty"`
}

// PlanResult is the planner step output for one regulation rule.
type PlanResult struct {
	RuleID               string     `json:"rule_id"`
	Intent               string     `json:"intent"`
	ComplianceDimensions []string   `json:"compliance_dimensions"`
	Tasks                []PlanTask `json:"tasks"`

	// Fallback marks plans synthesized from malformed provider output.
	Fallback bool `json:"fallback,omitempty"`
}

// TaskMatch holds the retrieval hits for one plan task, gated by the
// similarity threshold and capped at the configured hit limit.
type TaskMatch struct {
	Task PlanTask       `json:"task"`
	Hits []RetrievalHit `json:"hits"`
}

// NavigationResult is the navigator step output.
type NavigationResult struct {
	RuleID  string      `json:"rule_id"`
	Matches []TaskMatch `json:"matches"`
}

// ImplementationStatus classifies how far a hit satisfies the rule.
type ImplementationStatus string

const (
	StatusImplemented ImplementationStatus = "implemented"
	StatusPartial     ImplementationStatus = "partial"
	StatusMissing     ImplementationStatus = "missing"
)

// Investigation is one adjudicated hit.
type Investigation struct {
	RuleID     string               `json:"rule_id"`
	ChunkID    string               `json:"chunk_id"`
	FilePath   string               `json:"file_path"`
	StartLine  int                  `json:"start_line"`
	EndLine    int                  `json:"end_line"`
	Status     ImplementationStatus `json:"status"`
	Confidence float64              `json:"confidence"`
	Verdict    VerdictResult        `json:"verdict"`
}

// InvestigationResult is the investigator step output.
type InvestigationResult struct {
	RuleID         string          `json:"rule_id"`
	Investigations []Investigation `json:"investigations"`
}

// JudgeResult is the case-level aggregation of the investigations.
type JudgeResult struct {
	RuleID        string  `json:"rule_id"`
	Verdict       string  `json:"verdict"`
	Confidence    float64 `json:"confidence"`
	Reason        string  `json:"reason"`
	EvidenceCount int     `json:"evidence_count"`
}

// RemediationTask is one proposed ticket, pending human approval.
type RemediationTask struct {
	FindingID string `json:"finding_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	RuleID    string `json:"rule_id"`
	FilePath  string `json:"file_path"`
	Priority  string `json:"priority"`
}

// RemediationResult is the remediator step output.
type RemediationResult struct {
	Tasks []RemediationTask `json:"tasks"`
}

// VerdictResult is the structured output of a single adjudication call.
type VerdictResult struct {
	Verdict       string  `json:"verdict"`
	Severity      string  `json:"severity"`
	SeverityScore float64 `json:"severity_score"`
	Confidence    float64 `json:"confidence"`
	Explanation   string  `json:"explanation"`
	Evidence      string  `json:"evidence,omitempty"`
	Remediation   string  `json:"remediation,omitempty"`

	// RawOutput preserves the provider payload when it could not be
	// parsed and the verdict was coerced to unclear.
	RawOutput string `json:"raw_output,omitempty"`
}
