// Code generated by ent, DO NOT EDIT.

package auditcase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fincomply/vigil/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContainsFold(FieldID, id))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldRepoID, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCurrentStep, v))
}

// RequiresApproval applies equality check predicate on the "requires_approval" field. It's identical to RequiresApprovalEQ.
func RequiresApproval(v bool) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldRequiresApproval, v))
}

// UserDecision applies equality check predicate on the "user_decision" field. It's identical to UserDecisionEQ.
func UserDecision(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldUserDecision, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldErrorMessage, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCancelRequested, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCompletedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldLastActivityAt, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldRepoID, v))
}

// RepoIDContains applies the Contains predicate on the "repo_id" field.
func RepoIDContains(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContains(FieldRepoID, v))
}

// RepoIDHasPrefix applies the HasPrefix predicate on the "repo_id" field.
func RepoIDHasPrefix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasPrefix(FieldRepoID, v))
}

// RepoIDHasSuffix applies the HasSuffix predicate on the "repo_id" field.
func RepoIDHasSuffix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasSuffix(FieldRepoID, v))
}

// RepoIDEqualFold applies the EqualFold predicate on the "repo_id" field.
func RepoIDEqualFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEqualFold(FieldRepoID, v))
}

// RepoIDContainsFold applies the ContainsFold predicate on the "repo_id" field.
func RepoIDContainsFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContainsFold(FieldRepoID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContainsFold(FieldCurrentStep, v))
}

// StepsCompletedIsNil applies the IsNil predicate on the "steps_completed" field.
func StepsCompletedIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldStepsCompleted))
}

// StepsCompletedNotNil applies the NotNil predicate on the "steps_completed" field.
func StepsCompletedNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldStepsCompleted))
}

// StepsPendingIsNil applies the IsNil predicate on the "steps_pending" field.
func StepsPendingIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldStepsPending))
}

// StepsPendingNotNil applies the NotNil predicate on the "steps_pending" field.
func StepsPendingNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldStepsPending))
}

// PlanResultIsNil applies the IsNil predicate on the "plan_result" field.
func PlanResultIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldPlanResult))
}

// PlanResultNotNil applies the NotNil predicate on the "plan_result" field.
func PlanResultNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldPlanResult))
}

// NavigationResultIsNil applies the IsNil predicate on the "navigation_result" field.
func NavigationResultIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldNavigationResult))
}

// NavigationResultNotNil applies the NotNil predicate on the "navigation_result" field.
func NavigationResultNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldNavigationResult))
}

// InvestigationResultIsNil applies the IsNil predicate on the "investigation_result" field.
func InvestigationResultIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldInvestigationResult))
}

// InvestigationResultNotNil applies the NotNil predicate on the "investigation_result" field.
func InvestigationResultNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldInvestigationResult))
}

// JudgeResultIsNil applies the IsNil predicate on the "judge_result" field.
func JudgeResultIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldJudgeResult))
}

// JudgeResultNotNil applies the NotNil predicate on the "judge_result" field.
func JudgeResultNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldJudgeResult))
}

// RemediationResultIsNil applies the IsNil predicate on the "remediation_result" field.
func RemediationResultIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldRemediationResult))
}

// RemediationResultNotNil applies the NotNil predicate on the "remediation_result" field.
func RemediationResultNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldRemediationResult))
}

// RequiresApprovalEQ applies the EQ predicate on the "requires_approval" field.
func RequiresApprovalEQ(v bool) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldRequiresApproval, v))
}

// RequiresApprovalNEQ applies the NEQ predicate on the "requires_approval" field.
func RequiresApprovalNEQ(v bool) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldRequiresApproval, v))
}

// UserDecisionEQ applies the EQ predicate on the "user_decision" field.
func UserDecisionEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldUserDecision, v))
}

// UserDecisionNEQ applies the NEQ predicate on the "user_decision" field.
func UserDecisionNEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldUserDecision, v))
}

// UserDecisionIn applies the In predicate on the "user_decision" field.
func UserDecisionIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldUserDecision, vs...))
}

// UserDecisionNotIn applies the NotIn predicate on the "user_decision" field.
func UserDecisionNotIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldUserDecision, vs...))
}

// UserDecisionGT applies the GT predicate on the "user_decision" field.
func UserDecisionGT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldUserDecision, v))
}

// UserDecisionGTE applies the GTE predicate on the "user_decision" field.
func UserDecisionGTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldUserDecision, v))
}

// UserDecisionLT applies the LT predicate on the "user_decision" field.
func UserDecisionLT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldUserDecision, v))
}

// UserDecisionLTE applies the LTE predicate on the "user_decision" field.
func UserDecisionLTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldUserDecision, v))
}

// UserDecisionContains applies the Contains predicate on the "user_decision" field.
func UserDecisionContains(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContains(FieldUserDecision, v))
}

// UserDecisionHasPrefix applies the HasPrefix predicate on the "user_decision" field.
func UserDecisionHasPrefix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasPrefix(FieldUserDecision, v))
}

// UserDecisionHasSuffix applies the HasSuffix predicate on the "user_decision" field.
func UserDecisionHasSuffix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasSuffix(FieldUserDecision, v))
}

// UserDecisionIsNil applies the IsNil predicate on the "user_decision" field.
func UserDecisionIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldUserDecision))
}

// UserDecisionNotNil applies the NotNil predicate on the "user_decision" field.
func UserDecisionNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldUserDecision))
}

// UserDecisionEqualFold applies the EqualFold predicate on the "user_decision" field.
func UserDecisionEqualFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEqualFold(FieldUserDecision, v))
}

// UserDecisionContainsFold applies the ContainsFold predicate on the "user_decision" field.
func UserDecisionContainsFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContainsFold(FieldUserDecision, v))
}

// JiraTicketIdsIsNil applies the IsNil predicate on the "jira_ticket_ids" field.
func JiraTicketIdsIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldJiraTicketIds))
}

// JiraTicketIdsNotNil applies the NotNil predicate on the "jira_ticket_ids" field.
func JiraTicketIdsNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldJiraTicketIds))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldCancelRequested, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldCompletedAt))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.AuditCase {
	return predicate.AuditCase(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastActivityAtIsNil applies the IsNil predicate on the "last_activity_at" field.
func LastActivityAtIsNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldIsNull(FieldLastActivityAt))
}

// LastActivityAtNotNil applies the NotNil predicate on the "last_activity_at" field.
func LastActivityAtNotNil() predicate.AuditCase {
	return predicate.AuditCase(sql.FieldNotNull(FieldLastActivityAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditCase) predicate.AuditCase {
	return predicate.AuditCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditCase) predicate.AuditCase {
	return predicate.AuditCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditCase) predicate.AuditCase {
	return predicate.AuditCase(sql.NotPredicates(p))
}
