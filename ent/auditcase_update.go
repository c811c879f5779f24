// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fincomply/vigil/ent/auditcase"
	"github.com/fincomply/vigil/ent/predicate"
)

// AuditCaseUpdate is the builder for updating AuditCase entities.
type AuditCaseUpdate struct {
	config
	hooks    []Hook
	mutation *AuditCaseMutation
}

// Where appends a list predicates to the AuditCaseUpdate builder.
func (_u *AuditCaseUpdate) Where(ps ...predicate.AuditCase) *AuditCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRepoID sets the "repo_id" field.
func (_u *AuditCaseUpdate) SetRepoID(v string) *AuditCaseUpdate {
	_u.mutation.SetRepoID(v)
	return _u
}

// SetNillableRepoID sets the "repo_id" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableRepoID(v *string) *AuditCaseUpdate {
	if v != nil {
		_u.SetRepoID(*v)
	}
	return _u
}

// SetRegulationIds sets the "regulation_ids" field.
func (_u *AuditCaseUpdate) SetRegulationIds(v []string) *AuditCaseUpdate {
	_u.mutation.SetRegulationIds(v)
	return _u
}

// AppendRegulationIds appends value to the "regulation_ids" field.
func (_u *AuditCaseUpdate) AppendRegulationIds(v []string) *AuditCaseUpdate {
	_u.mutation.AppendRegulationIds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditCaseUpdate) SetStatus(v auditcase.Status) *AuditCaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableStatus(v *auditcase.Status) *AuditCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AuditCaseUpdate) SetCurrentStep(v string) *AuditCaseUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableCurrentStep(v *string) *AuditCaseUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AuditCaseUpdate) ClearCurrentStep() *AuditCaseUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepsCompleted sets the "steps_completed" field.
func (_u *AuditCaseUpdate) SetStepsCompleted(v []string) *AuditCaseUpdate {
	_u.mutation.SetStepsCompleted(v)
	return _u
}

// AppendStepsCompleted appends value to the "steps_completed" field.
func (_u *AuditCaseUpdate) AppendStepsCompleted(v []string) *AuditCaseUpdate {
	_u.mutation.AppendStepsCompleted(v)
	return _u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (_u *AuditCaseUpdate) ClearStepsCompleted() *AuditCaseUpdate {
	_u.mutation.ClearStepsCompleted()
	return _u
}

// SetStepsPending sets the "steps_pending" field.
func (_u *AuditCaseUpdate) SetStepsPending(v []string) *AuditCaseUpdate {
	_u.mutation.SetStepsPending(v)
	return _u
}

// AppendStepsPending appends value to the "steps_pending" field.
func (_u *AuditCaseUpdate) AppendStepsPending(v []string) *AuditCaseUpdate {
	_u.mutation.AppendStepsPending(v)
	return _u
}

// ClearStepsPending clears the value of the "steps_pending" field.
func (_u *AuditCaseUpdate) ClearStepsPending() *AuditCaseUpdate {
	_u.mutation.ClearStepsPending()
	return _u
}

// SetPlanResult sets the "plan_result" field.
func (_u *AuditCaseUpdate) SetPlanResult(v map[string]interface{}) *AuditCaseUpdate {
	_u.mutation.SetPlanResult(v)
	return _u
}

// ClearPlanResult clears the value of the "plan_result" field.
func (_u *AuditCaseUpdate) ClearPlanResult() *AuditCaseUpdate {
	_u.mutation.ClearPlanResult()
	return _u
}

// SetNavigationResult sets the "navigation_result" field.
func (_u *AuditCaseUpdate) SetNavigationResult(v map[string]interface{}) *AuditCaseUpdate {
	_u.mutation.SetNavigationResult(v)
	return _u
}

// ClearNavigationResult clears the value of the "navigation_result" field.
func (_u *AuditCaseUpdate) ClearNavigationResult() *AuditCaseUpdate {
	_u.mutation.ClearNavigationResult()
	return _u
}

// SetInvestigationResult sets the "investigation_result" field.
func (_u *AuditCaseUpdate) SetInvestigationResult(v map[string]interface{}) *AuditCaseUpdate {
	_u.mutation.SetInvestigationResult(v)
	return _u
}

// ClearInvestigationResult clears the value of the "investigation_result" field.
func (_u *AuditCaseUpdate) ClearInvestigationResult() *AuditCaseUpdate {
	_u.mutation.ClearInvestigationResult()
	return _u
}

// SetJudgeResult sets the "judge_result" field.
func (_u *AuditCaseUpdate) SetJudgeResult(v map[string]interface{}) *AuditCaseUpdate {
	_u.mutation.SetJudgeResult(v)
	return _u
}

// ClearJudgeResult clears the value of the "judge_result" field.
func (_u *AuditCaseUpdate) ClearJudgeResult() *AuditCaseUpdate {
	_u.mutation.ClearJudgeResult()
	return _u
}

// SetRemediationResult sets the "remediation_result" field.
func (_u *AuditCaseUpdate) SetRemediationResult(v map[string]interface{}) *AuditCaseUpdate {
	_u.mutation.SetRemediationResult(v)
	return _u
}

// ClearRemediationResult clears the value of the "remediation_result" field.
func (_u *AuditCaseUpdate) ClearRemediationResult() *AuditCaseUpdate {
	_u.mutation.ClearRemediationResult()
	return _u
}

// SetRequiresApproval sets the "requires_approval" field.
func (_u *AuditCaseUpdate) SetRequiresApproval(v bool) *AuditCaseUpdate {
	_u.mutation.SetRequiresApproval(v)
	return _u
}

// SetNillableRequiresApproval sets the "requires_approval" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableRequiresApproval(v *bool) *AuditCaseUpdate {
	if v != nil {
		_u.SetRequiresApproval(*v)
	}
	return _u
}

// SetUserDecision sets the "user_decision" field.
func (_u *AuditCaseUpdate) SetUserDecision(v string) *AuditCaseUpdate {
	_u.mutation.SetUserDecision(v)
	return _u
}

// SetNillableUserDecision sets the "user_decision" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableUserDecision(v *string) *AuditCaseUpdate {
	if v != nil {
		_u.SetUserDecision(*v)
	}
	return _u
}

// ClearUserDecision clears the value of the "user_decision" field.
func (_u *AuditCaseUpdate) ClearUserDecision() *AuditCaseUpdate {
	_u.mutation.ClearUserDecision()
	return _u
}

// SetJiraTicketIds sets the "jira_ticket_ids" field.
func (_u *AuditCaseUpdate) SetJiraTicketIds(v []string) *AuditCaseUpdate {
	_u.mutation.SetJiraTicketIds(v)
	return _u
}

// AppendJiraTicketIds appends value to the "jira_ticket_ids" field.
func (_u *AuditCaseUpdate) AppendJiraTicketIds(v []string) *AuditCaseUpdate {
	_u.mutation.AppendJiraTicketIds(v)
	return _u
}

// ClearJiraTicketIds clears the value of the "jira_ticket_ids" field.
func (_u *AuditCaseUpdate) ClearJiraTicketIds() *AuditCaseUpdate {
	_u.mutation.ClearJiraTicketIds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditCaseUpdate) SetErrorMessage(v string) *AuditCaseUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableErrorMessage(v *string) *AuditCaseUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditCaseUpdate) ClearErrorMessage() *AuditCaseUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AuditCaseUpdate) SetCancelRequested(v bool) *AuditCaseUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableCancelRequested(v *bool) *AuditCaseUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AuditCaseUpdate) SetPodID(v string) *AuditCaseUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillablePodID(v *string) *AuditCaseUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AuditCaseUpdate) ClearPodID() *AuditCaseUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditCaseUpdate) SetStartedAt(v time.Time) *AuditCaseUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableStartedAt(v *time.Time) *AuditCaseUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditCaseUpdate) ClearStartedAt() *AuditCaseUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditCaseUpdate) SetCompletedAt(v time.Time) *AuditCaseUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableCompletedAt(v *time.Time) *AuditCaseUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditCaseUpdate) ClearCompletedAt() *AuditCaseUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *AuditCaseUpdate) SetLastActivityAt(v time.Time) *AuditCaseUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *AuditCaseUpdate) SetNillableLastActivityAt(v *time.Time) *AuditCaseUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *AuditCaseUpdate) ClearLastActivityAt() *AuditCaseUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// Mutation returns the AuditCaseMutation object of the builder.
func (_u *AuditCaseUpdate) Mutation() *AuditCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditCaseUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditcase.Table, auditcase.Columns, sqlgraph.NewFieldSpec(auditcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepoID(); ok {
		_spec.SetField(auditcase.FieldRepoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegulationIds(); ok {
		_spec.SetField(auditcase.FieldRegulationIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRegulationIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldRegulationIds, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(auditcase.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(auditcase.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepsCompleted(); ok {
		_spec.SetField(auditcase.FieldStepsCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldStepsCompleted, value)
		})
	}
	if _u.mutation.StepsCompletedCleared() {
		_spec.ClearField(auditcase.FieldStepsCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepsPending(); ok {
		_spec.SetField(auditcase.FieldStepsPending, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsPending(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldStepsPending, value)
		})
	}
	if _u.mutation.StepsPendingCleared() {
		_spec.ClearField(auditcase.FieldStepsPending, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanResult(); ok {
		_spec.SetField(auditcase.FieldPlanResult, field.TypeJSON, value)
	}
	if _u.mutation.PlanResultCleared() {
		_spec.ClearField(auditcase.FieldPlanResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.NavigationResult(); ok {
		_spec.SetField(auditcase.FieldNavigationResult, field.TypeJSON, value)
	}
	if _u.mutation.NavigationResultCleared() {
		_spec.ClearField(auditcase.FieldNavigationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvestigationResult(); ok {
		_spec.SetField(auditcase.FieldInvestigationResult, field.TypeJSON, value)
	}
	if _u.mutation.InvestigationResultCleared() {
		_spec.ClearField(auditcase.FieldInvestigationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.JudgeResult(); ok {
		_spec.SetField(auditcase.FieldJudgeResult, field.TypeJSON, value)
	}
	if _u.mutation.JudgeResultCleared() {
		_spec.ClearField(auditcase.FieldJudgeResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RemediationResult(); ok {
		_spec.SetField(auditcase.FieldRemediationResult, field.TypeJSON, value)
	}
	if _u.mutation.RemediationResultCleared() {
		_spec.ClearField(auditcase.FieldRemediationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiresApproval(); ok {
		_spec.SetField(auditcase.FieldRequiresApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UserDecision(); ok {
		_spec.SetField(auditcase.FieldUserDecision, field.TypeString, value)
	}
	if _u.mutation.UserDecisionCleared() {
		_spec.ClearField(auditcase.FieldUserDecision, field.TypeString)
	}
	if value, ok := _u.mutation.JiraTicketIds(); ok {
		_spec.SetField(auditcase.FieldJiraTicketIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedJiraTicketIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldJiraTicketIds, value)
		})
	}
	if _u.mutation.JiraTicketIdsCleared() {
		_spec.ClearField(auditcase.FieldJiraTicketIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditcase.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditcase.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(auditcase.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(auditcase.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(auditcase.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(auditcase.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(auditcase.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(auditcase.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(auditcase.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(auditcase.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(auditcase.FieldLastActivityAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditCaseUpdateOne is the builder for updating a single AuditCase entity.
type AuditCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditCaseMutation
}

// SetRepoID sets the "repo_id" field.
func (_u *AuditCaseUpdateOne) SetRepoID(v string) *AuditCaseUpdateOne {
	_u.mutation.SetRepoID(v)
	return _u
}

// SetNillableRepoID sets the "repo_id" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableRepoID(v *string) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetRepoID(*v)
	}
	return _u
}

// SetRegulationIds sets the "regulation_ids" field.
func (_u *AuditCaseUpdateOne) SetRegulationIds(v []string) *AuditCaseUpdateOne {
	_u.mutation.SetRegulationIds(v)
	return _u
}

// AppendRegulationIds appends value to the "regulation_ids" field.
func (_u *AuditCaseUpdateOne) AppendRegulationIds(v []string) *AuditCaseUpdateOne {
	_u.mutation.AppendRegulationIds(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditCaseUpdateOne) SetStatus(v auditcase.Status) *AuditCaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableStatus(v *auditcase.Status) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AuditCaseUpdateOne) SetCurrentStep(v string) *AuditCaseUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableCurrentStep(v *string) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AuditCaseUpdateOne) ClearCurrentStep() *AuditCaseUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetStepsCompleted sets the "steps_completed" field.
func (_u *AuditCaseUpdateOne) SetStepsCompleted(v []string) *AuditCaseUpdateOne {
	_u.mutation.SetStepsCompleted(v)
	return _u
}

// AppendStepsCompleted appends value to the "steps_completed" field.
func (_u *AuditCaseUpdateOne) AppendStepsCompleted(v []string) *AuditCaseUpdateOne {
	_u.mutation.AppendStepsCompleted(v)
	return _u
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (_u *AuditCaseUpdateOne) ClearStepsCompleted() *AuditCaseUpdateOne {
	_u.mutation.ClearStepsCompleted()
	return _u
}

// SetStepsPending sets the "steps_pending" field.
func (_u *AuditCaseUpdateOne) SetStepsPending(v []string) *AuditCaseUpdateOne {
	_u.mutation.SetStepsPending(v)
	return _u
}

// AppendStepsPending appends value to the "steps_pending" field.
func (_u *AuditCaseUpdateOne) AppendStepsPending(v []string) *AuditCaseUpdateOne {
	_u.mutation.AppendStepsPending(v)
	return _u
}

// ClearStepsPending clears the value of the "steps_pending" field.
func (_u *AuditCaseUpdateOne) ClearStepsPending() *AuditCaseUpdateOne {
	_u.mutation.ClearStepsPending()
	return _u
}

// SetPlanResult sets the "plan_result" field.
func (_u *AuditCaseUpdateOne) SetPlanResult(v map[string]interface{}) *AuditCaseUpdateOne {
	_u.mutation.SetPlanResult(v)
	return _u
}

// ClearPlanResult clears the value of the "plan_result" field.
func (_u *AuditCaseUpdateOne) ClearPlanResult() *AuditCaseUpdateOne {
	_u.mutation.ClearPlanResult()
	return _u
}

// SetNavigationResult sets the "navigation_result" field.
func (_u *AuditCaseUpdateOne) SetNavigationResult(v map[string]interface{}) *AuditCaseUpdateOne {
	_u.mutation.SetNavigationResult(v)
	return _u
}

// ClearNavigationResult clears the value of the "navigation_result" field.
func (_u *AuditCaseUpdateOne) ClearNavigationResult() *AuditCaseUpdateOne {
	_u.mutation.ClearNavigationResult()
	return _u
}

// SetInvestigationResult sets the "investigation_result" field.
func (_u *AuditCaseUpdateOne) SetInvestigationResult(v map[string]interface{}) *AuditCaseUpdateOne {
	_u.mutation.SetInvestigationResult(v)
	return _u
}

// ClearInvestigationResult clears the value of the "investigation_result" field.
func (_u *AuditCaseUpdateOne) ClearInvestigationResult() *AuditCaseUpdateOne {
	_u.mutation.ClearInvestigationResult()
	return _u
}

// SetJudgeResult sets the "judge_result" field.
func (_u *AuditCaseUpdateOne) SetJudgeResult(v map[string]interface{}) *AuditCaseUpdateOne {
	_u.mutation.SetJudgeResult(v)
	return _u
}

// ClearJudgeResult clears the value of the "judge_result" field.
func (_u *AuditCaseUpdateOne) ClearJudgeResult() *AuditCaseUpdateOne {
	_u.mutation.ClearJudgeResult()
	return _u
}

// SetRemediationResult sets the "remediation_result" field.
func (_u *AuditCaseUpdateOne) SetRemediationResult(v map[string]interface{}) *AuditCaseUpdateOne {
	_u.mutation.SetRemediationResult(v)
	return _u
}

// ClearRemediationResult clears the value of the "remediation_result" field.
func (_u *AuditCaseUpdateOne) ClearRemediationResult() *AuditCaseUpdateOne {
	_u.mutation.ClearRemediationResult()
	return _u
}

// SetRequiresApproval sets the "requires_approval" field.
func (_u *AuditCaseUpdateOne) SetRequiresApproval(v bool) *AuditCaseUpdateOne {
	_u.mutation.SetRequiresApproval(v)
	return _u
}

// SetNillableRequiresApproval sets the "requires_approval" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableRequiresApproval(v *bool) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetRequiresApproval(*v)
	}
	return _u
}

// SetUserDecision sets the "user_decision" field.
func (_u *AuditCaseUpdateOne) SetUserDecision(v string) *AuditCaseUpdateOne {
	_u.mutation.SetUserDecision(v)
	return _u
}

// SetNillableUserDecision sets the "user_decision" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableUserDecision(v *string) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetUserDecision(*v)
	}
	return _u
}

// ClearUserDecision clears the value of the "user_decision" field.
func (_u *AuditCaseUpdateOne) ClearUserDecision() *AuditCaseUpdateOne {
	_u.mutation.ClearUserDecision()
	return _u
}

// SetJiraTicketIds sets the "jira_ticket_ids" field.
func (_u *AuditCaseUpdateOne) SetJiraTicketIds(v []string) *AuditCaseUpdateOne {
	_u.mutation.SetJiraTicketIds(v)
	return _u
}

// AppendJiraTicketIds appends value to the "jira_ticket_ids" field.
func (_u *AuditCaseUpdateOne) AppendJiraTicketIds(v []string) *AuditCaseUpdateOne {
	_u.mutation.AppendJiraTicketIds(v)
	return _u
}

// ClearJiraTicketIds clears the value of the "jira_ticket_ids" field.
func (_u *AuditCaseUpdateOne) ClearJiraTicketIds() *AuditCaseUpdateOne {
	_u.mutation.ClearJiraTicketIds()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditCaseUpdateOne) SetErrorMessage(v string) *AuditCaseUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableErrorMessage(v *string) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditCaseUpdateOne) ClearErrorMessage() *AuditCaseUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *AuditCaseUpdateOne) SetCancelRequested(v bool) *AuditCaseUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableCancelRequested(v *bool) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AuditCaseUpdateOne) SetPodID(v string) *AuditCaseUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillablePodID(v *string) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AuditCaseUpdateOne) ClearPodID() *AuditCaseUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditCaseUpdateOne) SetStartedAt(v time.Time) *AuditCaseUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableStartedAt(v *time.Time) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditCaseUpdateOne) ClearStartedAt() *AuditCaseUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditCaseUpdateOne) SetCompletedAt(v time.Time) *AuditCaseUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableCompletedAt(v *time.Time) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditCaseUpdateOne) ClearCompletedAt() *AuditCaseUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *AuditCaseUpdateOne) SetLastActivityAt(v time.Time) *AuditCaseUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *AuditCaseUpdateOne) SetNillableLastActivityAt(v *time.Time) *AuditCaseUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *AuditCaseUpdateOne) ClearLastActivityAt() *AuditCaseUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// Mutation returns the AuditCaseMutation object of the builder.
func (_u *AuditCaseUpdateOne) Mutation() *AuditCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditCaseUpdate builder.
func (_u *AuditCaseUpdateOne) Where(ps ...predicate.AuditCase) *AuditCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditCaseUpdateOne) Select(field string, fields ...string) *AuditCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditCase entity.
func (_u *AuditCaseUpdateOne) Save(ctx context.Context) (*AuditCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditCaseUpdateOne) SaveX(ctx context.Context) *AuditCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditCaseUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditCase.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditCaseUpdateOne) sqlSave(ctx context.Context) (_node *AuditCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditcase.Table, auditcase.Columns, sqlgraph.NewFieldSpec(auditcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditcase.FieldID)
		for _, f := range fields {
			if !auditcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditcase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepoID(); ok {
		_spec.SetField(auditcase.FieldRepoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RegulationIds(); ok {
		_spec.SetField(auditcase.FieldRegulationIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRegulationIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldRegulationIds, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditcase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(auditcase.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(auditcase.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.StepsCompleted(); ok {
		_spec.SetField(auditcase.FieldStepsCompleted, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsCompleted(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldStepsCompleted, value)
		})
	}
	if _u.mutation.StepsCompletedCleared() {
		_spec.ClearField(auditcase.FieldStepsCompleted, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepsPending(); ok {
		_spec.SetField(auditcase.FieldStepsPending, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepsPending(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldStepsPending, value)
		})
	}
	if _u.mutation.StepsPendingCleared() {
		_spec.ClearField(auditcase.FieldStepsPending, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlanResult(); ok {
		_spec.SetField(auditcase.FieldPlanResult, field.TypeJSON, value)
	}
	if _u.mutation.PlanResultCleared() {
		_spec.ClearField(auditcase.FieldPlanResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.NavigationResult(); ok {
		_spec.SetField(auditcase.FieldNavigationResult, field.TypeJSON, value)
	}
	if _u.mutation.NavigationResultCleared() {
		_spec.ClearField(auditcase.FieldNavigationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.InvestigationResult(); ok {
		_spec.SetField(auditcase.FieldInvestigationResult, field.TypeJSON, value)
	}
	if _u.mutation.InvestigationResultCleared() {
		_spec.ClearField(auditcase.FieldInvestigationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.JudgeResult(); ok {
		_spec.SetField(auditcase.FieldJudgeResult, field.TypeJSON, value)
	}
	if _u.mutation.JudgeResultCleared() {
		_spec.ClearField(auditcase.FieldJudgeResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RemediationResult(); ok {
		_spec.SetField(auditcase.FieldRemediationResult, field.TypeJSON, value)
	}
	if _u.mutation.RemediationResultCleared() {
		_spec.ClearField(auditcase.FieldRemediationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiresApproval(); ok {
		_spec.SetField(auditcase.FieldRequiresApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UserDecision(); ok {
		_spec.SetField(auditcase.FieldUserDecision, field.TypeString, value)
	}
	if _u.mutation.UserDecisionCleared() {
		_spec.ClearField(auditcase.FieldUserDecision, field.TypeString)
	}
	if value, ok := _u.mutation.JiraTicketIds(); ok {
		_spec.SetField(auditcase.FieldJiraTicketIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedJiraTicketIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditcase.FieldJiraTicketIds, value)
		})
	}
	if _u.mutation.JiraTicketIdsCleared() {
		_spec.ClearField(auditcase.FieldJiraTicketIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditcase.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditcase.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(auditcase.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(auditcase.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(auditcase.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(auditcase.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(auditcase.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(auditcase.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(auditcase.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(auditcase.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(auditcase.FieldLastActivityAt, field.TypeTime)
	}
	_node = &AuditCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
