// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fincomply/vigil/ent/auditcase"
)

// AuditCase is the model entity for the AuditCase schema.
type AuditCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID string `json:"repo_id,omitempty"`
	// RegulationIds holds the value of the "regulation_ids" field.
	RegulationIds []string `json:"regulation_ids,omitempty"`
	// Status holds the value of the "status" field.
	Status auditcase.Status `json:"status,omitempty"`
	// Step in flight; nil between steps and in terminal states
	CurrentStep *string `json:"current_step,omitempty"`
	// StepsCompleted holds the value of the "steps_completed" field.
	StepsCompleted []string `json:"steps_completed,omitempty"`
	// StepsPending holds the value of the "steps_pending" field.
	StepsPending []string `json:"steps_pending,omitempty"`
	// PlanResult holds the value of the "plan_result" field.
	PlanResult map[string]interface{} `json:"plan_result,omitempty"`
	// NavigationResult holds the value of the "navigation_result" field.
	NavigationResult map[string]interface{} `json:"navigation_result,omitempty"`
	// InvestigationResult holds the value of the "investigation_result" field.
	InvestigationResult map[string]interface{} `json:"investigation_result,omitempty"`
	// JudgeResult holds the value of the "judge_result" field.
	JudgeResult map[string]interface{} `json:"judge_result,omitempty"`
	// RemediationResult holds the value of the "remediation_result" field.
	RemediationResult map[string]interface{} `json:"remediation_result,omitempty"`
	// RequiresApproval holds the value of the "requires_approval" field.
	RequiresApproval bool `json:"requires_approval,omitempty"`
	// 'approved' or 'declined' once the HITL gate resolves
	UserDecision *string `json:"user_decision,omitempty"`
	// JiraTicketIds holds the value of the "jira_ticket_ids" field.
	JiraTicketIds []string `json:"jira_ticket_ids,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Observed at step boundaries only
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For orphan detection
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditcase.FieldRegulationIds, auditcase.FieldStepsCompleted, auditcase.FieldStepsPending, auditcase.FieldPlanResult, auditcase.FieldNavigationResult, auditcase.FieldInvestigationResult, auditcase.FieldJudgeResult, auditcase.FieldRemediationResult, auditcase.FieldJiraTicketIds:
			values[i] = new([]byte)
		case auditcase.FieldRequiresApproval, auditcase.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case auditcase.FieldID, auditcase.FieldRepoID, auditcase.FieldStatus, auditcase.FieldCurrentStep, auditcase.FieldUserDecision, auditcase.FieldErrorMessage, auditcase.FieldPodID:
			values[i] = new(sql.NullString)
		case auditcase.FieldCreatedAt, auditcase.FieldStartedAt, auditcase.FieldCompletedAt, auditcase.FieldLastActivityAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditCase fields.
func (_m *AuditCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case auditcase.FieldRepoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.String
			}
		case auditcase.FieldRegulationIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field regulation_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RegulationIds); err != nil {
					return fmt.Errorf("unmarshal field regulation_ids: %w", err)
				}
			}
		case auditcase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = auditcase.Status(value.String)
			}
		case auditcase.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = new(string)
				*_m.CurrentStep = value.String
			}
		case auditcase.FieldStepsCompleted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps_completed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepsCompleted); err != nil {
					return fmt.Errorf("unmarshal field steps_completed: %w", err)
				}
			}
		case auditcase.FieldStepsPending:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps_pending", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StepsPending); err != nil {
					return fmt.Errorf("unmarshal field steps_pending: %w", err)
				}
			}
		case auditcase.FieldPlanResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanResult); err != nil {
					return fmt.Errorf("unmarshal field plan_result: %w", err)
				}
			}
		case auditcase.FieldNavigationResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field navigation_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NavigationResult); err != nil {
					return fmt.Errorf("unmarshal field navigation_result: %w", err)
				}
			}
		case auditcase.FieldInvestigationResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field investigation_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InvestigationResult); err != nil {
					return fmt.Errorf("unmarshal field investigation_result: %w", err)
				}
			}
		case auditcase.FieldJudgeResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field judge_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JudgeResult); err != nil {
					return fmt.Errorf("unmarshal field judge_result: %w", err)
				}
			}
		case auditcase.FieldRemediationResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RemediationResult); err != nil {
					return fmt.Errorf("unmarshal field remediation_result: %w", err)
				}
			}
		case auditcase.FieldRequiresApproval:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_approval", values[i])
			} else if value.Valid {
				_m.RequiresApproval = value.Bool
			}
		case auditcase.FieldUserDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_decision", values[i])
			} else if value.Valid {
				_m.UserDecision = new(string)
				*_m.UserDecision = value.String
			}
		case auditcase.FieldJiraTicketIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field jira_ticket_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JiraTicketIds); err != nil {
					return fmt.Errorf("unmarshal field jira_ticket_ids: %w", err)
				}
			}
		case auditcase.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case auditcase.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case auditcase.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case auditcase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case auditcase.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case auditcase.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case auditcase.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = new(time.Time)
				*_m.LastActivityAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditCase.
// This includes values selected through modifiers, order, etc.
func (_m *AuditCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AuditCase.
// Note that you need to call AuditCase.Unwrap() before calling this method if this AuditCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditCase) Update() *AuditCaseUpdateOne {
	return NewAuditCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditCase) Unwrap() *AuditCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditCase) String() string {
	var builder strings.Builder
	builder.WriteString("AuditCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("repo_id=")
	builder.WriteString(_m.RepoID)
	builder.WriteString(", ")
	builder.WriteString("regulation_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RegulationIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentStep; v != nil {
		builder.WriteString("current_step=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("steps_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepsCompleted))
	builder.WriteString(", ")
	builder.WriteString("steps_pending=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepsPending))
	builder.WriteString(", ")
	builder.WriteString("plan_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanResult))
	builder.WriteString(", ")
	builder.WriteString("navigation_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.NavigationResult))
	builder.WriteString(", ")
	builder.WriteString("investigation_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvestigationResult))
	builder.WriteString(", ")
	builder.WriteString("judge_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.JudgeResult))
	builder.WriteString(", ")
	builder.WriteString("remediation_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemediationResult))
	builder.WriteString(", ")
	builder.WriteString("requires_approval=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresApproval))
	builder.WriteString(", ")
	if v := _m.UserDecision; v != nil {
		builder.WriteString("user_decision=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("jira_ticket_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.JiraTicketIds))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastActivityAt; v != nil {
		builder.WriteString("last_activity_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AuditCases is a parsable slice of AuditCase.
type AuditCases []*AuditCase
