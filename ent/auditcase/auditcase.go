// Code generated by ent, DO NOT EDIT.

package auditcase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditcase type in the database.
	Label = "audit_case"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "case_id"
	// FieldRepoID holds the string denoting the repo_id field in the database.
	FieldRepoID = "repo_id"
	// FieldRegulationIds holds the string denoting the regulation_ids field in the database.
	FieldRegulationIds = "regulation_ids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStepsCompleted holds the string denoting the steps_completed field in the database.
	FieldStepsCompleted = "steps_completed"
	// FieldStepsPending holds the string denoting the steps_pending field in the database.
	FieldStepsPending = "steps_pending"
	// FieldPlanResult holds the string denoting the plan_result field in the database.
	FieldPlanResult = "plan_result"
	// FieldNavigationResult holds the string denoting the navigation_result field in the database.
	FieldNavigationResult = "navigation_result"
	// FieldInvestigationResult holds the string denoting the investigation_result field in the database.
	FieldInvestigationResult = "investigation_result"
	// FieldJudgeResult holds the string denoting the judge_result field in the database.
	FieldJudgeResult = "judge_result"
	// FieldRemediationResult holds the string denoting the remediation_result field in the database.
	FieldRemediationResult = "remediation_result"
	// FieldRequiresApproval holds the string denoting the requires_approval field in the database.
	FieldRequiresApproval = "requires_approval"
	// FieldUserDecision holds the string denoting the user_decision field in the database.
	FieldUserDecision = "user_decision"
	// FieldJiraTicketIds holds the string denoting the jira_ticket_ids field in the database.
	FieldJiraTicketIds = "jira_ticket_ids"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// Table holds the table name of the auditcase in the database.
	Table = "cases"
)

// Columns holds all SQL columns for auditcase fields.
var Columns = []string{
	FieldID,
	FieldRepoID,
	FieldRegulationIds,
	FieldStatus,
	FieldCurrentStep,
	FieldStepsCompleted,
	FieldStepsPending,
	FieldPlanResult,
	FieldNavigationResult,
	FieldInvestigationResult,
	FieldJudgeResult,
	FieldRemediationResult,
	FieldRequiresApproval,
	FieldUserDecision,
	FieldJiraTicketIds,
	FieldErrorMessage,
	FieldCancelRequested,
	FieldPodID,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastActivityAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRequiresApproval holds the default value on creation for the "requires_approval" field.
	DefaultRequiresApproval bool
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending         Status = "pending"
	StatusRunning         Status = "running"
	StatusWaitingApproval Status = "waiting_approval"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusPaused          Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusWaitingApproval, StatusCompleted, StatusFailed, StatusPaused:
		return nil
	default:
		return fmt.Errorf("auditcase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AuditCase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRepoID orders the results by the repo_id field.
func ByRepoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByRequiresApproval orders the results by the requires_approval field.
func ByRequiresApproval(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresApproval, opts...).ToFunc()
}

// ByUserDecision orders the results by the user_decision field.
func ByUserDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserDecision, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}
