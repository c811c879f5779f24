// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fincomply/vigil/ent/auditcase"
)

// AuditCaseCreate is the builder for creating a AuditCase entity.
type AuditCaseCreate struct {
	config
	mutation *AuditCaseMutation
	hooks    []Hook
}

// SetRepoID sets the "repo_id" field.
func (_c *AuditCaseCreate) SetRepoID(v string) *AuditCaseCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetRegulationIds sets the "regulation_ids" field.
func (_c *AuditCaseCreate) SetRegulationIds(v []string) *AuditCaseCreate {
	_c.mutation.SetRegulationIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditCaseCreate) SetStatus(v auditcase.Status) *AuditCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableStatus(v *auditcase.Status) *AuditCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *AuditCaseCreate) SetCurrentStep(v string) *AuditCaseCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableCurrentStep(v *string) *AuditCaseCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetStepsCompleted sets the "steps_completed" field.
func (_c *AuditCaseCreate) SetStepsCompleted(v []string) *AuditCaseCreate {
	_c.mutation.SetStepsCompleted(v)
	return _c
}

// SetStepsPending sets the "steps_pending" field.
func (_c *AuditCaseCreate) SetStepsPending(v []string) *AuditCaseCreate {
	_c.mutation.SetStepsPending(v)
	return _c
}

// SetPlanResult sets the "plan_result" field.
func (_c *AuditCaseCreate) SetPlanResult(v map[string]interface{}) *AuditCaseCreate {
	_c.mutation.SetPlanResult(v)
	return _c
}

// SetNavigationResult sets the "navigation_result" field.
func (_c *AuditCaseCreate) SetNavigationResult(v map[string]interface{}) *AuditCaseCreate {
	_c.mutation.SetNavigationResult(v)
	return _c
}

// SetInvestigationResult sets the "investigation_result" field.
func (_c *AuditCaseCreate) SetInvestigationResult(v map[string]interface{}) *AuditCaseCreate {
	_c.mutation.SetInvestigationResult(v)
	return _c
}

// SetJudgeResult sets the "judge_result" field.
func (_c *AuditCaseCreate) SetJudgeResult(v map[string]interface{}) *AuditCaseCreate {
	_c.mutation.SetJudgeResult(v)
	return _c
}

// SetRemediationResult sets the "remediation_result" field.
func (_c *AuditCaseCreate) SetRemediationResult(v map[string]interface{}) *AuditCaseCreate {
	_c.mutation.SetRemediationResult(v)
	return _c
}

// SetRequiresApproval sets the "requires_approval" field.
func (_c *AuditCaseCreate) SetRequiresApproval(v bool) *AuditCaseCreate {
	_c.mutation.SetRequiresApproval(v)
	return _c
}

// SetNillableRequiresApproval sets the "requires_approval" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableRequiresApproval(v *bool) *AuditCaseCreate {
	if v != nil {
		_c.SetRequiresApproval(*v)
	}
	return _c
}

// SetUserDecision sets the "user_decision" field.
func (_c *AuditCaseCreate) SetUserDecision(v string) *AuditCaseCreate {
	_c.mutation.SetUserDecision(v)
	return _c
}

// SetNillableUserDecision sets the "user_decision" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableUserDecision(v *string) *AuditCaseCreate {
	if v != nil {
		_c.SetUserDecision(*v)
	}
	return _c
}

// SetJiraTicketIds sets the "jira_ticket_ids" field.
func (_c *AuditCaseCreate) SetJiraTicketIds(v []string) *AuditCaseCreate {
	_c.mutation.SetJiraTicketIds(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditCaseCreate) SetErrorMessage(v string) *AuditCaseCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableErrorMessage(v *string) *AuditCaseCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *AuditCaseCreate) SetCancelRequested(v bool) *AuditCaseCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableCancelRequested(v *bool) *AuditCaseCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AuditCaseCreate) SetPodID(v string) *AuditCaseCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillablePodID(v *string) *AuditCaseCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditCaseCreate) SetCreatedAt(v time.Time) *AuditCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableCreatedAt(v *time.Time) *AuditCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AuditCaseCreate) SetStartedAt(v time.Time) *AuditCaseCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableStartedAt(v *time.Time) *AuditCaseCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AuditCaseCreate) SetCompletedAt(v time.Time) *AuditCaseCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableCompletedAt(v *time.Time) *AuditCaseCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *AuditCaseCreate) SetLastActivityAt(v time.Time) *AuditCaseCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *AuditCaseCreate) SetNillableLastActivityAt(v *time.Time) *AuditCaseCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditCaseCreate) SetID(v string) *AuditCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditCaseMutation object of the builder.
func (_c *AuditCaseCreate) Mutation() *AuditCaseMutation {
	return _c.mutation
}

// Save creates the AuditCase in the database.
func (_c *AuditCaseCreate) Save(ctx context.Context) (*AuditCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditCaseCreate) SaveX(ctx context.Context) *AuditCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := auditcase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequiresApproval(); !ok {
		v := auditcase.DefaultRequiresApproval
		_c.mutation.SetRequiresApproval(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := auditcase.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditCaseCreate) check() error {
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "AuditCase.repo_id"`)}
	}
	if _, ok := _c.mutation.RegulationIds(); !ok {
		return &ValidationError{Name: "regulation_ids", err: errors.New(`ent: missing required field "AuditCase.regulation_ids"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := auditcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresApproval(); !ok {
		return &ValidationError{Name: "requires_approval", err: errors.New(`ent: missing required field "AuditCase.requires_approval"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "AuditCase.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditCase.created_at"`)}
	}
	return nil
}

func (_c *AuditCaseCreate) sqlSave(ctx context.Context) (*AuditCase, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuditCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditCaseCreate) createSpec() (*AuditCase, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditcase.Table, sqlgraph.NewFieldSpec(auditcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RepoID(); ok {
		_spec.SetField(auditcase.FieldRepoID, field.TypeString, value)
		_node.RepoID = value
	}
	if value, ok := _c.mutation.RegulationIds(); ok {
		_spec.SetField(auditcase.FieldRegulationIds, field.TypeJSON, value)
		_node.RegulationIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(auditcase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(auditcase.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.StepsCompleted(); ok {
		_spec.SetField(auditcase.FieldStepsCompleted, field.TypeJSON, value)
		_node.StepsCompleted = value
	}
	if value, ok := _c.mutation.StepsPending(); ok {
		_spec.SetField(auditcase.FieldStepsPending, field.TypeJSON, value)
		_node.StepsPending = value
	}
	if value, ok := _c.mutation.PlanResult(); ok {
		_spec.SetField(auditcase.FieldPlanResult, field.TypeJSON, value)
		_node.PlanResult = value
	}
	if value, ok := _c.mutation.NavigationResult(); ok {
		_spec.SetField(auditcase.FieldNavigationResult, field.TypeJSON, value)
		_node.NavigationResult = value
	}
	if value, ok := _c.mutation.InvestigationResult(); ok {
		_spec.SetField(auditcase.FieldInvestigationResult, field.TypeJSON, value)
		_node.InvestigationResult = value
	}
	if value, ok := _c.mutation.JudgeResult(); ok {
		_spec.SetField(auditcase.FieldJudgeResult, field.TypeJSON, value)
		_node.JudgeResult = value
	}
	if value, ok := _c.mutation.RemediationResult(); ok {
		_spec.SetField(auditcase.FieldRemediationResult, field.TypeJSON, value)
		_node.RemediationResult = value
	}
	if value, ok := _c.mutation.RequiresApproval(); ok {
		_spec.SetField(auditcase.FieldRequiresApproval, field.TypeBool, value)
		_node.RequiresApproval = value
	}
	if value, ok := _c.mutation.UserDecision(); ok {
		_spec.SetField(auditcase.FieldUserDecision, field.TypeString, value)
		_node.UserDecision = &value
	}
	if value, ok := _c.mutation.JiraTicketIds(); ok {
		_spec.SetField(auditcase.FieldJiraTicketIds, field.TypeJSON, value)
		_node.JiraTicketIds = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(auditcase.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(auditcase.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(auditcase.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(auditcase.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(auditcase.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(auditcase.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	return _node, _spec
}

// AuditCaseCreateBulk is the builder for creating many AuditCase entities in bulk.
type AuditCaseCreateBulk struct {
	config
	err      error
	builders []*AuditCaseCreate
}

// Save creates the AuditCase entities in the database.
func (_c *AuditCaseCreateBulk) Save(ctx context.Context) ([]*AuditCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditCaseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuditCaseCreateBulk) SaveX(ctx context.Context) []*AuditCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
