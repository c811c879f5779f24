// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fincomply/vigil/ent/auditcase"
	"github.com/fincomply/vigil/ent/caselog"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/ent/predicate"
	"github.com/fincomply/vigil/ent/repository"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditCase  = "AuditCase"
	TypeCaseLog    = "CaseLog"
	TypeFinding    = "Finding"
	TypeJob        = "Job"
	TypeRepository = "Repository"
)

// AuditCaseMutation represents an operation that mutates the AuditCase nodes in the graph.
type AuditCaseMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	repo_id               *string
	regulation_ids        *[]string
	appendregulation_ids  []string
	status                *auditcase.Status
	current_step          *string
	steps_completed       *[]string
	appendsteps_completed []string
	steps_pending         *[]string
	appendsteps_pending   []string
	plan_result           *map[string]interface{}
	navigation_result     *map[string]interface{}
	investigation_result  *map[string]interface{}
	judge_result          *map[string]interface{}
	remediation_result    *map[string]interface{}
	requires_approval     *bool
	user_decision         *string
	jira_ticket_ids       *[]string
	appendjira_ticket_ids []string
	error_message         *string
	cancel_requested      *bool
	pod_id                *string
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	last_activity_at      *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*AuditCase, error)
	predicates            []predicate.AuditCase
}

var _ ent.Mutation = (*AuditCaseMutation)(nil)

// auditcaseOption allows management of the mutation configuration using functional options.
type auditcaseOption func(*AuditCaseMutation)

// newAuditCaseMutation creates new mutation for the AuditCase entity.
func newAuditCaseMutation(c config, op Op, opts ...auditcaseOption) *AuditCaseMutation {
	m := &AuditCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditCaseID sets the ID field of the mutation.
func withAuditCaseID(id string) auditcaseOption {
	return func(m *AuditCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditCase
		)
		m.oldValue = func(ctx context.Context) (*AuditCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditCase sets the old AuditCase of the mutation.
func withAuditCase(node *AuditCase) auditcaseOption {
	return func(m *AuditCaseMutation) {
		m.oldValue = func(context.Context) (*AuditCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditCase entities.
func (m *AuditCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepoID sets the "repo_id" field.
func (m *AuditCaseMutation) SetRepoID(s string) {
	m.repo_id = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *AuditCaseMutation) RepoID() (r string, exists bool) {
	v := m.repo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *AuditCaseMutation) ResetRepoID() {
	m.repo_id = nil
}

// SetRegulationIds sets the "regulation_ids" field.
func (m *AuditCaseMutation) SetRegulationIds(s []string) {
	m.regulation_ids = &s
	m.appendregulation_ids = nil
}

// RegulationIds returns the value of the "regulation_ids" field in the mutation.
func (m *AuditCaseMutation) RegulationIds() (r []string, exists bool) {
	v := m.regulation_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRegulationIds returns the old "regulation_ids" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldRegulationIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegulationIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegulationIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegulationIds: %w", err)
	}
	return oldValue.RegulationIds, nil
}

// AppendRegulationIds adds s to the "regulation_ids" field.
func (m *AuditCaseMutation) AppendRegulationIds(s []string) {
	m.appendregulation_ids = append(m.appendregulation_ids, s...)
}

// AppendedRegulationIds returns the list of values that were appended to the "regulation_ids" field in this mutation.
func (m *AuditCaseMutation) AppendedRegulationIds() ([]string, bool) {
	if len(m.appendregulation_ids) == 0 {
		return nil, false
	}
	return m.appendregulation_ids, true
}

// ResetRegulationIds resets all changes to the "regulation_ids" field.
func (m *AuditCaseMutation) ResetRegulationIds() {
	m.regulation_ids = nil
	m.appendregulation_ids = nil
}

// SetStatus sets the "status" field.
func (m *AuditCaseMutation) SetStatus(a auditcase.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditCaseMutation) Status() (r auditcase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldStatus(ctx context.Context) (v auditcase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditCaseMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *AuditCaseMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *AuditCaseMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *AuditCaseMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[auditcase.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *AuditCaseMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *AuditCaseMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, auditcase.FieldCurrentStep)
}

// SetStepsCompleted sets the "steps_completed" field.
func (m *AuditCaseMutation) SetStepsCompleted(s []string) {
	m.steps_completed = &s
	m.appendsteps_completed = nil
}

// StepsCompleted returns the value of the "steps_completed" field in the mutation.
func (m *AuditCaseMutation) StepsCompleted() (r []string, exists bool) {
	v := m.steps_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsCompleted returns the old "steps_completed" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldStepsCompleted(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsCompleted: %w", err)
	}
	return oldValue.StepsCompleted, nil
}

// AppendStepsCompleted adds s to the "steps_completed" field.
func (m *AuditCaseMutation) AppendStepsCompleted(s []string) {
	m.appendsteps_completed = append(m.appendsteps_completed, s...)
}

// AppendedStepsCompleted returns the list of values that were appended to the "steps_completed" field in this mutation.
func (m *AuditCaseMutation) AppendedStepsCompleted() ([]string, bool) {
	if len(m.appendsteps_completed) == 0 {
		return nil, false
	}
	return m.appendsteps_completed, true
}

// ClearStepsCompleted clears the value of the "steps_completed" field.
func (m *AuditCaseMutation) ClearStepsCompleted() {
	m.steps_completed = nil
	m.appendsteps_completed = nil
	m.clearedFields[auditcase.FieldStepsCompleted] = struct{}{}
}

// StepsCompletedCleared returns if the "steps_completed" field was cleared in this mutation.
func (m *AuditCaseMutation) StepsCompletedCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldStepsCompleted]
	return ok
}

// ResetStepsCompleted resets all changes to the "steps_completed" field.
func (m *AuditCaseMutation) ResetStepsCompleted() {
	m.steps_completed = nil
	m.appendsteps_completed = nil
	delete(m.clearedFields, auditcase.FieldStepsCompleted)
}

// SetStepsPending sets the "steps_pending" field.
func (m *AuditCaseMutation) SetStepsPending(s []string) {
	m.steps_pending = &s
	m.appendsteps_pending = nil
}

// StepsPending returns the value of the "steps_pending" field in the mutation.
func (m *AuditCaseMutation) StepsPending() (r []string, exists bool) {
	v := m.steps_pending
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsPending returns the old "steps_pending" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldStepsPending(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsPending is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsPending requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsPending: %w", err)
	}
	return oldValue.StepsPending, nil
}

// AppendStepsPending adds s to the "steps_pending" field.
func (m *AuditCaseMutation) AppendStepsPending(s []string) {
	m.appendsteps_pending = append(m.appendsteps_pending, s...)
}

// AppendedStepsPending returns the list of values that were appended to the "steps_pending" field in this mutation.
func (m *AuditCaseMutation) AppendedStepsPending() ([]string, bool) {
	if len(m.appendsteps_pending) == 0 {
		return nil, false
	}
	return m.appendsteps_pending, true
}

// ClearStepsPending clears the value of the "steps_pending" field.
func (m *AuditCaseMutation) ClearStepsPending() {
	m.steps_pending = nil
	m.appendsteps_pending = nil
	m.clearedFields[auditcase.FieldStepsPending] = struct{}{}
}

// StepsPendingCleared returns if the "steps_pending" field was cleared in this mutation.
func (m *AuditCaseMutation) StepsPendingCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldStepsPending]
	return ok
}

// ResetStepsPending resets all changes to the "steps_pending" field.
func (m *AuditCaseMutation) ResetStepsPending() {
	m.steps_pending = nil
	m.appendsteps_pending = nil
	delete(m.clearedFields, auditcase.FieldStepsPending)
}

// SetPlanResult sets the "plan_result" field.
func (m *AuditCaseMutation) SetPlanResult(value map[string]interface{}) {
	m.plan_result = &value
}

// PlanResult returns the value of the "plan_result" field in the mutation.
func (m *AuditCaseMutation) PlanResult() (r map[string]interface{}, exists bool) {
	v := m.plan_result
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanResult returns the old "plan_result" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldPlanResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanResult: %w", err)
	}
	return oldValue.PlanResult, nil
}

// ClearPlanResult clears the value of the "plan_result" field.
func (m *AuditCaseMutation) ClearPlanResult() {
	m.plan_result = nil
	m.clearedFields[auditcase.FieldPlanResult] = struct{}{}
}

// PlanResultCleared returns if the "plan_result" field was cleared in this mutation.
func (m *AuditCaseMutation) PlanResultCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldPlanResult]
	return ok
}

// ResetPlanResult resets all changes to the "plan_result" field.
func (m *AuditCaseMutation) ResetPlanResult() {
	m.plan_result = nil
	delete(m.clearedFields, auditcase.FieldPlanResult)
}

// SetNavigationResult sets the "navigation_result" field.
func (m *AuditCaseMutation) SetNavigationResult(value map[string]interface{}) {
	m.navigation_result = &value
}

// NavigationResult returns the value of the "navigation_result" field in the mutation.
func (m *AuditCaseMutation) NavigationResult() (r map[string]interface{}, exists bool) {
	v := m.navigation_result
	if v == nil {
		return
	}
	return *v, true
}

// OldNavigationResult returns the old "navigation_result" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldNavigationResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNavigationResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNavigationResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNavigationResult: %w", err)
	}
	return oldValue.NavigationResult, nil
}

// ClearNavigationResult clears the value of the "navigation_result" field.
func (m *AuditCaseMutation) ClearNavigationResult() {
	m.navigation_result = nil
	m.clearedFields[auditcase.FieldNavigationResult] = struct{}{}
}

// NavigationResultCleared returns if the "navigation_result" field was cleared in this mutation.
func (m *AuditCaseMutation) NavigationResultCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldNavigationResult]
	return ok
}

// ResetNavigationResult resets all changes to the "navigation_result" field.
func (m *AuditCaseMutation) ResetNavigationResult() {
	m.navigation_result = nil
	delete(m.clearedFields, auditcase.FieldNavigationResult)
}

// SetInvestigationResult sets the "investigation_result" field.
func (m *AuditCaseMutation) SetInvestigationResult(value map[string]interface{}) {
	m.investigation_result = &value
}

// InvestigationResult returns the value of the "investigation_result" field in the mutation.
func (m *AuditCaseMutation) InvestigationResult() (r map[string]interface{}, exists bool) {
	v := m.investigation_result
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationResult returns the old "investigation_result" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldInvestigationResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationResult: %w", err)
	}
	return oldValue.InvestigationResult, nil
}

// ClearInvestigationResult clears the value of the "investigation_result" field.
func (m *AuditCaseMutation) ClearInvestigationResult() {
	m.investigation_result = nil
	m.clearedFields[auditcase.FieldInvestigationResult] = struct{}{}
}

// InvestigationResultCleared returns if the "investigation_result" field was cleared in this mutation.
func (m *AuditCaseMutation) InvestigationResultCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldInvestigationResult]
	return ok
}

// ResetInvestigationResult resets all changes to the "investigation_result" field.
func (m *AuditCaseMutation) ResetInvestigationResult() {
	m.investigation_result = nil
	delete(m.clearedFields, auditcase.FieldInvestigationResult)
}

// SetJudgeResult sets the "judge_result" field.
func (m *AuditCaseMutation) SetJudgeResult(value map[string]interface{}) {
	m.judge_result = &value
}

// JudgeResult returns the value of the "judge_result" field in the mutation.
func (m *AuditCaseMutation) JudgeResult() (r map[string]interface{}, exists bool) {
	v := m.judge_result
	if v == nil {
		return
	}
	return *v, true
}

// OldJudgeResult returns the old "judge_result" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldJudgeResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudgeResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudgeResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudgeResult: %w", err)
	}
	return oldValue.JudgeResult, nil
}

// ClearJudgeResult clears the value of the "judge_result" field.
func (m *AuditCaseMutation) ClearJudgeResult() {
	m.judge_result = nil
	m.clearedFields[auditcase.FieldJudgeResult] = struct{}{}
}

// JudgeResultCleared returns if the "judge_result" field was cleared in this mutation.
func (m *AuditCaseMutation) JudgeResultCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldJudgeResult]
	return ok
}

// ResetJudgeResult resets all changes to the "judge_result" field.
func (m *AuditCaseMutation) ResetJudgeResult() {
	m.judge_result = nil
	delete(m.clearedFields, auditcase.FieldJudgeResult)
}

// SetRemediationResult sets the "remediation_result" field.
func (m *AuditCaseMutation) SetRemediationResult(value map[string]interface{}) {
	m.remediation_result = &value
}

// RemediationResult returns the value of the "remediation_result" field in the mutation.
func (m *AuditCaseMutation) RemediationResult() (r map[string]interface{}, exists bool) {
	v := m.remediation_result
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationResult returns the old "remediation_result" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldRemediationResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationResult: %w", err)
	}
	return oldValue.RemediationResult, nil
}

// ClearRemediationResult clears the value of the "remediation_result" field.
func (m *AuditCaseMutation) ClearRemediationResult() {
	m.remediation_result = nil
	m.clearedFields[auditcase.FieldRemediationResult] = struct{}{}
}

// RemediationResultCleared returns if the "remediation_result" field was cleared in this mutation.
func (m *AuditCaseMutation) RemediationResultCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldRemediationResult]
	return ok
}

// ResetRemediationResult resets all changes to the "remediation_result" field.
func (m *AuditCaseMutation) ResetRemediationResult() {
	m.remediation_result = nil
	delete(m.clearedFields, auditcase.FieldRemediationResult)
}

// SetRequiresApproval sets the "requires_approval" field.
func (m *AuditCaseMutation) SetRequiresApproval(b bool) {
	m.requires_approval = &b
}

// RequiresApproval returns the value of the "requires_approval" field in the mutation.
func (m *AuditCaseMutation) RequiresApproval() (r bool, exists bool) {
	v := m.requires_approval
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresApproval returns the old "requires_approval" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldRequiresApproval(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresApproval: %w", err)
	}
	return oldValue.RequiresApproval, nil
}

// ResetRequiresApproval resets all changes to the "requires_approval" field.
func (m *AuditCaseMutation) ResetRequiresApproval() {
	m.requires_approval = nil
}

// SetUserDecision sets the "user_decision" field.
func (m *AuditCaseMutation) SetUserDecision(s string) {
	m.user_decision = &s
}

// UserDecision returns the value of the "user_decision" field in the mutation.
func (m *AuditCaseMutation) UserDecision() (r string, exists bool) {
	v := m.user_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldUserDecision returns the old "user_decision" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldUserDecision(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserDecision: %w", err)
	}
	return oldValue.UserDecision, nil
}

// ClearUserDecision clears the value of the "user_decision" field.
func (m *AuditCaseMutation) ClearUserDecision() {
	m.user_decision = nil
	m.clearedFields[auditcase.FieldUserDecision] = struct{}{}
}

// UserDecisionCleared returns if the "user_decision" field was cleared in this mutation.
func (m *AuditCaseMutation) UserDecisionCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldUserDecision]
	return ok
}

// ResetUserDecision resets all changes to the "user_decision" field.
func (m *AuditCaseMutation) ResetUserDecision() {
	m.user_decision = nil
	delete(m.clearedFields, auditcase.FieldUserDecision)
}

// SetJiraTicketIds sets the "jira_ticket_ids" field.
func (m *AuditCaseMutation) SetJiraTicketIds(s []string) {
	m.jira_ticket_ids = &s
	m.appendjira_ticket_ids = nil
}

// JiraTicketIds returns the value of the "jira_ticket_ids" field in the mutation.
func (m *AuditCaseMutation) JiraTicketIds() (r []string, exists bool) {
	v := m.jira_ticket_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldJiraTicketIds returns the old "jira_ticket_ids" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldJiraTicketIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJiraTicketIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJiraTicketIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJiraTicketIds: %w", err)
	}
	return oldValue.JiraTicketIds, nil
}

// AppendJiraTicketIds adds s to the "jira_ticket_ids" field.
func (m *AuditCaseMutation) AppendJiraTicketIds(s []string) {
	m.appendjira_ticket_ids = append(m.appendjira_ticket_ids, s...)
}

// AppendedJiraTicketIds returns the list of values that were appended to the "jira_ticket_ids" field in this mutation.
func (m *AuditCaseMutation) AppendedJiraTicketIds() ([]string, bool) {
	if len(m.appendjira_ticket_ids) == 0 {
		return nil, false
	}
	return m.appendjira_ticket_ids, true
}

// ClearJiraTicketIds clears the value of the "jira_ticket_ids" field.
func (m *AuditCaseMutation) ClearJiraTicketIds() {
	m.jira_ticket_ids = nil
	m.appendjira_ticket_ids = nil
	m.clearedFields[auditcase.FieldJiraTicketIds] = struct{}{}
}

// JiraTicketIdsCleared returns if the "jira_ticket_ids" field was cleared in this mutation.
func (m *AuditCaseMutation) JiraTicketIdsCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldJiraTicketIds]
	return ok
}

// ResetJiraTicketIds resets all changes to the "jira_ticket_ids" field.
func (m *AuditCaseMutation) ResetJiraTicketIds() {
	m.jira_ticket_ids = nil
	m.appendjira_ticket_ids = nil
	delete(m.clearedFields, auditcase.FieldJiraTicketIds)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditCaseMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditCaseMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditCaseMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[auditcase.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditCaseMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditCaseMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, auditcase.FieldErrorMessage)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *AuditCaseMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *AuditCaseMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *AuditCaseMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetPodID sets the "pod_id" field.
func (m *AuditCaseMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AuditCaseMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AuditCaseMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[auditcase.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AuditCaseMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AuditCaseMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, auditcase.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AuditCaseMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AuditCaseMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AuditCaseMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[auditcase.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AuditCaseMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AuditCaseMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, auditcase.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AuditCaseMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AuditCaseMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AuditCaseMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[auditcase.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AuditCaseMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AuditCaseMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, auditcase.FieldCompletedAt)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *AuditCaseMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *AuditCaseMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the AuditCase entity.
// If the AuditCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditCaseMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *AuditCaseMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[auditcase.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *AuditCaseMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[auditcase.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *AuditCaseMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, auditcase.FieldLastActivityAt)
}

// Where appends a list predicates to the AuditCaseMutation builder.
func (m *AuditCaseMutation) Where(ps ...predicate.AuditCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditCase).
func (m *AuditCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditCaseMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.repo_id != nil {
		fields = append(fields, auditcase.FieldRepoID)
	}
	if m.regulation_ids != nil {
		fields = append(fields, auditcase.FieldRegulationIds)
	}
	if m.status != nil {
		fields = append(fields, auditcase.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, auditcase.FieldCurrentStep)
	}
	if m.steps_completed != nil {
		fields = append(fields, auditcase.FieldStepsCompleted)
	}
	if m.steps_pending != nil {
		fields = append(fields, auditcase.FieldStepsPending)
	}
	if m.plan_result != nil {
		fields = append(fields, auditcase.FieldPlanResult)
	}
	if m.navigation_result != nil {
		fields = append(fields, auditcase.FieldNavigationResult)
	}
	if m.investigation_result != nil {
		fields = append(fields, auditcase.FieldInvestigationResult)
	}
	if m.judge_result != nil {
		fields = append(fields, auditcase.FieldJudgeResult)
	}
	if m.remediation_result != nil {
		fields = append(fields, auditcase.FieldRemediationResult)
	}
	if m.requires_approval != nil {
		fields = append(fields, auditcase.FieldRequiresApproval)
	}
	if m.user_decision != nil {
		fields = append(fields, auditcase.FieldUserDecision)
	}
	if m.jira_ticket_ids != nil {
		fields = append(fields, auditcase.FieldJiraTicketIds)
	}
	if m.error_message != nil {
		fields = append(fields, auditcase.FieldErrorMessage)
	}
	if m.cancel_requested != nil {
		fields = append(fields, auditcase.FieldCancelRequested)
	}
	if m.pod_id != nil {
		fields = append(fields, auditcase.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, auditcase.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, auditcase.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, auditcase.FieldCompletedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, auditcase.FieldLastActivityAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditcase.FieldRepoID:
		return m.RepoID()
	case auditcase.FieldRegulationIds:
		return m.RegulationIds()
	case auditcase.FieldStatus:
		return m.Status()
	case auditcase.FieldCurrentStep:
		return m.CurrentStep()
	case auditcase.FieldStepsCompleted:
		return m.StepsCompleted()
	case auditcase.FieldStepsPending:
		return m.StepsPending()
	case auditcase.FieldPlanResult:
		return m.PlanResult()
	case auditcase.FieldNavigationResult:
		return m.NavigationResult()
	case auditcase.FieldInvestigationResult:
		return m.InvestigationResult()
	case auditcase.FieldJudgeResult:
		return m.JudgeResult()
	case auditcase.FieldRemediationResult:
		return m.RemediationResult()
	case auditcase.FieldRequiresApproval:
		return m.RequiresApproval()
	case auditcase.FieldUserDecision:
		return m.UserDecision()
	case auditcase.FieldJiraTicketIds:
		return m.JiraTicketIds()
	case auditcase.FieldErrorMessage:
		return m.ErrorMessage()
	case auditcase.FieldCancelRequested:
		return m.CancelRequested()
	case auditcase.FieldPodID:
		return m.PodID()
	case auditcase.FieldCreatedAt:
		return m.CreatedAt()
	case auditcase.FieldStartedAt:
		return m.StartedAt()
	case auditcase.FieldCompletedAt:
		return m.CompletedAt()
	case auditcase.FieldLastActivityAt:
		return m.LastActivityAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditcase.FieldRepoID:
		return m.OldRepoID(ctx)
	case auditcase.FieldRegulationIds:
		return m.OldRegulationIds(ctx)
	case auditcase.FieldStatus:
		return m.OldStatus(ctx)
	case auditcase.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case auditcase.FieldStepsCompleted:
		return m.OldStepsCompleted(ctx)
	case auditcase.FieldStepsPending:
		return m.OldStepsPending(ctx)
	case auditcase.FieldPlanResult:
		return m.OldPlanResult(ctx)
	case auditcase.FieldNavigationResult:
		return m.OldNavigationResult(ctx)
	case auditcase.FieldInvestigationResult:
		return m.OldInvestigationResult(ctx)
	case auditcase.FieldJudgeResult:
		return m.OldJudgeResult(ctx)
	case auditcase.FieldRemediationResult:
		return m.OldRemediationResult(ctx)
	case auditcase.FieldRequiresApproval:
		return m.OldRequiresApproval(ctx)
	case auditcase.FieldUserDecision:
		return m.OldUserDecision(ctx)
	case auditcase.FieldJiraTicketIds:
		return m.OldJiraTicketIds(ctx)
	case auditcase.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case auditcase.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case auditcase.FieldPodID:
		return m.OldPodID(ctx)
	case auditcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditcase.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case auditcase.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case auditcase.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditcase.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case auditcase.FieldRegulationIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegulationIds(v)
		return nil
	case auditcase.FieldStatus:
		v, ok := value.(auditcase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditcase.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case auditcase.FieldStepsCompleted:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsCompleted(v)
		return nil
	case auditcase.FieldStepsPending:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsPending(v)
		return nil
	case auditcase.FieldPlanResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanResult(v)
		return nil
	case auditcase.FieldNavigationResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNavigationResult(v)
		return nil
	case auditcase.FieldInvestigationResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationResult(v)
		return nil
	case auditcase.FieldJudgeResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudgeResult(v)
		return nil
	case auditcase.FieldRemediationResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationResult(v)
		return nil
	case auditcase.FieldRequiresApproval:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresApproval(v)
		return nil
	case auditcase.FieldUserDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserDecision(v)
		return nil
	case auditcase.FieldJiraTicketIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJiraTicketIds(v)
		return nil
	case auditcase.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case auditcase.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case auditcase.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case auditcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditcase.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case auditcase.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case auditcase.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditcase.FieldCurrentStep) {
		fields = append(fields, auditcase.FieldCurrentStep)
	}
	if m.FieldCleared(auditcase.FieldStepsCompleted) {
		fields = append(fields, auditcase.FieldStepsCompleted)
	}
	if m.FieldCleared(auditcase.FieldStepsPending) {
		fields = append(fields, auditcase.FieldStepsPending)
	}
	if m.FieldCleared(auditcase.FieldPlanResult) {
		fields = append(fields, auditcase.FieldPlanResult)
	}
	if m.FieldCleared(auditcase.FieldNavigationResult) {
		fields = append(fields, auditcase.FieldNavigationResult)
	}
	if m.FieldCleared(auditcase.FieldInvestigationResult) {
		fields = append(fields, auditcase.FieldInvestigationResult)
	}
	if m.FieldCleared(auditcase.FieldJudgeResult) {
		fields = append(fields, auditcase.FieldJudgeResult)
	}
	if m.FieldCleared(auditcase.FieldRemediationResult) {
		fields = append(fields, auditcase.FieldRemediationResult)
	}
	if m.FieldCleared(auditcase.FieldUserDecision) {
		fields = append(fields, auditcase.FieldUserDecision)
	}
	if m.FieldCleared(auditcase.FieldJiraTicketIds) {
		fields = append(fields, auditcase.FieldJiraTicketIds)
	}
	if m.FieldCleared(auditcase.FieldErrorMessage) {
		fields = append(fields, auditcase.FieldErrorMessage)
	}
	if m.FieldCleared(auditcase.FieldPodID) {
		fields = append(fields, auditcase.FieldPodID)
	}
	if m.FieldCleared(auditcase.FieldStartedAt) {
		fields = append(fields, auditcase.FieldStartedAt)
	}
	if m.FieldCleared(auditcase.FieldCompletedAt) {
		fields = append(fields, auditcase.FieldCompletedAt)
	}
	if m.FieldCleared(auditcase.FieldLastActivityAt) {
		fields = append(fields, auditcase.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditCaseMutation) ClearField(name string) error {
	switch name {
	case auditcase.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case auditcase.FieldStepsCompleted:
		m.ClearStepsCompleted()
		return nil
	case auditcase.FieldStepsPending:
		m.ClearStepsPending()
		return nil
	case auditcase.FieldPlanResult:
		m.ClearPlanResult()
		return nil
	case auditcase.FieldNavigationResult:
		m.ClearNavigationResult()
		return nil
	case auditcase.FieldInvestigationResult:
		m.ClearInvestigationResult()
		return nil
	case auditcase.FieldJudgeResult:
		m.ClearJudgeResult()
		return nil
	case auditcase.FieldRemediationResult:
		m.ClearRemediationResult()
		return nil
	case auditcase.FieldUserDecision:
		m.ClearUserDecision()
		return nil
	case auditcase.FieldJiraTicketIds:
		m.ClearJiraTicketIds()
		return nil
	case auditcase.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case auditcase.FieldPodID:
		m.ClearPodID()
		return nil
	case auditcase.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case auditcase.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case auditcase.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown AuditCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditCaseMutation) ResetField(name string) error {
	switch name {
	case auditcase.FieldRepoID:
		m.ResetRepoID()
		return nil
	case auditcase.FieldRegulationIds:
		m.ResetRegulationIds()
		return nil
	case auditcase.FieldStatus:
		m.ResetStatus()
		return nil
	case auditcase.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case auditcase.FieldStepsCompleted:
		m.ResetStepsCompleted()
		return nil
	case auditcase.FieldStepsPending:
		m.ResetStepsPending()
		return nil
	case auditcase.FieldPlanResult:
		m.ResetPlanResult()
		return nil
	case auditcase.FieldNavigationResult:
		m.ResetNavigationResult()
		return nil
	case auditcase.FieldInvestigationResult:
		m.ResetInvestigationResult()
		return nil
	case auditcase.FieldJudgeResult:
		m.ResetJudgeResult()
		return nil
	case auditcase.FieldRemediationResult:
		m.ResetRemediationResult()
		return nil
	case auditcase.FieldRequiresApproval:
		m.ResetRequiresApproval()
		return nil
	case auditcase.FieldUserDecision:
		m.ResetUserDecision()
		return nil
	case auditcase.FieldJiraTicketIds:
		m.ResetJiraTicketIds()
		return nil
	case auditcase.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case auditcase.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case auditcase.FieldPodID:
		m.ResetPodID()
		return nil
	case auditcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditcase.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case auditcase.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case auditcase.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown AuditCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditCase edge %s", name)
}

// CaseLogMutation represents an operation that mutates the CaseLog nodes in the graph.
type CaseLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	case_id       *string
	agent         *string
	message       *string
	sequence      *int
	addsequence   *int
	created_at    *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CaseLog, error)
	predicates    []predicate.CaseLog
}

var _ ent.Mutation = (*CaseLogMutation)(nil)

// caselogOption allows management of the mutation configuration using functional options.
type caselogOption func(*CaseLogMutation)

// newCaseLogMutation creates new mutation for the CaseLog entity.
func newCaseLogMutation(c config, op Op, opts ...caselogOption) *CaseLogMutation {
	m := &CaseLogMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseLogID sets the ID field of the mutation.
func withCaseLogID(id string) caselogOption {
	return func(m *CaseLogMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseLog
		)
		m.oldValue = func(ctx context.Context) (*CaseLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseLog sets the old CaseLog of the mutation.
func withCaseLog(node *CaseLog) caselogOption {
	return func(m *CaseLogMutation) {
		m.oldValue = func(context.Context) (*CaseLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseLog entities.
func (m *CaseLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *CaseLogMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *CaseLogMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the CaseLog entity.
// If the CaseLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseLogMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *CaseLogMutation) ResetCaseID() {
	m.case_id = nil
}

// SetAgent sets the "agent" field.
func (m *CaseLogMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *CaseLogMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the CaseLog entity.
// If the CaseLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseLogMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *CaseLogMutation) ResetAgent() {
	m.agent = nil
}

// SetMessage sets the "message" field.
func (m *CaseLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *CaseLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the CaseLog entity.
// If the CaseLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *CaseLogMutation) ResetMessage() {
	m.message = nil
}

// SetSequence sets the "sequence" field.
func (m *CaseLogMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CaseLogMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CaseLog entity.
// If the CaseLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseLogMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CaseLogMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CaseLogMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CaseLogMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseLog entity.
// If the CaseLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *CaseLogMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CaseLogMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the CaseLog entity.
// If the CaseLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseLogMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *CaseLogMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[caselog.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *CaseLogMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[caselog.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CaseLogMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, caselog.FieldExpiresAt)
}

// Where appends a list predicates to the CaseLogMutation builder.
func (m *CaseLogMutation) Where(ps ...predicate.CaseLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseLog).
func (m *CaseLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.case_id != nil {
		fields = append(fields, caselog.FieldCaseID)
	}
	if m.agent != nil {
		fields = append(fields, caselog.FieldAgent)
	}
	if m.message != nil {
		fields = append(fields, caselog.FieldMessage)
	}
	if m.sequence != nil {
		fields = append(fields, caselog.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, caselog.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, caselog.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caselog.FieldCaseID:
		return m.CaseID()
	case caselog.FieldAgent:
		return m.Agent()
	case caselog.FieldMessage:
		return m.Message()
	case caselog.FieldSequence:
		return m.Sequence()
	case caselog.FieldCreatedAt:
		return m.CreatedAt()
	case caselog.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caselog.FieldCaseID:
		return m.OldCaseID(ctx)
	case caselog.FieldAgent:
		return m.OldAgent(ctx)
	case caselog.FieldMessage:
		return m.OldMessage(ctx)
	case caselog.FieldSequence:
		return m.OldSequence(ctx)
	case caselog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case caselog.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown CaseLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caselog.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case caselog.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case caselog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case caselog.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case caselog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case caselog.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown CaseLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseLogMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, caselog.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case caselog.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case caselog.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown CaseLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caselog.FieldExpiresAt) {
		fields = append(fields, caselog.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseLogMutation) ClearField(name string) error {
	switch name {
	case caselog.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CaseLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseLogMutation) ResetField(name string) error {
	switch name {
	case caselog.FieldCaseID:
		m.ResetCaseID()
		return nil
	case caselog.FieldAgent:
		m.ResetAgent()
		return nil
	case caselog.FieldMessage:
		m.ResetMessage()
		return nil
	case caselog.FieldSequence:
		m.ResetSequence()
		return nil
	case caselog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case caselog.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CaseLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CaseLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CaseLog edge %s", name)
}

// FindingMutation represents an operation that mutates the Finding nodes in the graph.
type FindingMutation struct {
	config
	op                Op
	typ               string
	id                *string
	case_id           *string
	rule_id           *string
	file_path         *string
	start_line        *int
	addstart_line     *int
	end_line          *int
	addend_line       *int
	verdict           *finding.Verdict
	severity          *finding.Severity
	severity_score    *float64
	addseverity_score *float64
	confidence        *float64
	addconfidence     *float64
	evidence          *string
	reasoning         *string
	remediation       *string
	status            *finding.Status
	ticket_id         *string
	reviewed_by       *string
	reviewed_at       *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Finding, error)
	predicates        []predicate.Finding
}

var _ ent.Mutation = (*FindingMutation)(nil)

// findingOption allows management of the mutation configuration using functional options.
type findingOption func(*FindingMutation)

// newFindingMutation creates new mutation for the Finding entity.
func newFindingMutation(c config, op Op, opts ...findingOption) *FindingMutation {
	m := &FindingMutation{
		config:        c,
		op:            op,
		typ:           TypeFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFindingID sets the ID field of the mutation.
func withFindingID(id string) findingOption {
	return func(m *FindingMutation) {
		var (
			err   error
			once  sync.Once
			value *Finding
		)
		m.oldValue = func(ctx context.Context) (*Finding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Finding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinding sets the old Finding of the mutation.
func withFinding(node *Finding) findingOption {
	return func(m *FindingMutation) {
		m.oldValue = func(context.Context) (*Finding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Finding entities.
func (m *FindingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FindingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FindingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Finding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *FindingMutation) SetCaseID(s string) {
	m.case_id = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *FindingMutation) CaseID() (r string, exists bool) {
	v := m.case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *FindingMutation) ResetCaseID() {
	m.case_id = nil
}

// SetRuleID sets the "rule_id" field.
func (m *FindingMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *FindingMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *FindingMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetFilePath sets the "file_path" field.
func (m *FindingMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *FindingMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *FindingMutation) ResetFilePath() {
	m.file_path = nil
}

// SetStartLine sets the "start_line" field.
func (m *FindingMutation) SetStartLine(i int) {
	m.start_line = &i
	m.addstart_line = nil
}

// StartLine returns the value of the "start_line" field in the mutation.
func (m *FindingMutation) StartLine() (r int, exists bool) {
	v := m.start_line
	if v == nil {
		return
	}
	return *v, true
}

// OldStartLine returns the old "start_line" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldStartLine(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartLine: %w", err)
	}
	return oldValue.StartLine, nil
}

// AddStartLine adds i to the "start_line" field.
func (m *FindingMutation) AddStartLine(i int) {
	if m.addstart_line != nil {
		*m.addstart_line += i
	} else {
		m.addstart_line = &i
	}
}

// AddedStartLine returns the value that was added to the "start_line" field in this mutation.
func (m *FindingMutation) AddedStartLine() (r int, exists bool) {
	v := m.addstart_line
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartLine resets all changes to the "start_line" field.
func (m *FindingMutation) ResetStartLine() {
	m.start_line = nil
	m.addstart_line = nil
}

// SetEndLine sets the "end_line" field.
func (m *FindingMutation) SetEndLine(i int) {
	m.end_line = &i
	m.addend_line = nil
}

// EndLine returns the value of the "end_line" field in the mutation.
func (m *FindingMutation) EndLine() (r int, exists bool) {
	v := m.end_line
	if v == nil {
		return
	}
	return *v, true
}

// OldEndLine returns the old "end_line" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldEndLine(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndLine: %w", err)
	}
	return oldValue.EndLine, nil
}

// AddEndLine adds i to the "end_line" field.
func (m *FindingMutation) AddEndLine(i int) {
	if m.addend_line != nil {
		*m.addend_line += i
	} else {
		m.addend_line = &i
	}
}

// AddedEndLine returns the value that was added to the "end_line" field in this mutation.
func (m *FindingMutation) AddedEndLine() (r int, exists bool) {
	v := m.addend_line
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndLine resets all changes to the "end_line" field.
func (m *FindingMutation) ResetEndLine() {
	m.end_line = nil
	m.addend_line = nil
}

// SetVerdict sets the "verdict" field.
func (m *FindingMutation) SetVerdict(f finding.Verdict) {
	m.verdict = &f
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *FindingMutation) Verdict() (r finding.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldVerdict(ctx context.Context) (v finding.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *FindingMutation) ResetVerdict() {
	m.verdict = nil
}

// SetSeverity sets the "severity" field.
func (m *FindingMutation) SetSeverity(f finding.Severity) {
	m.severity = &f
}

// Severity returns the value of the "severity" field in the mutation.
func (m *FindingMutation) Severity() (r finding.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldSeverity(ctx context.Context) (v finding.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *FindingMutation) ResetSeverity() {
	m.severity = nil
}

// SetSeverityScore sets the "severity_score" field.
func (m *FindingMutation) SetSeverityScore(f float64) {
	m.severity_score = &f
	m.addseverity_score = nil
}

// SeverityScore returns the value of the "severity_score" field in the mutation.
func (m *FindingMutation) SeverityScore() (r float64, exists bool) {
	v := m.severity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityScore returns the old "severity_score" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldSeverityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityScore: %w", err)
	}
	return oldValue.SeverityScore, nil
}

// AddSeverityScore adds f to the "severity_score" field.
func (m *FindingMutation) AddSeverityScore(f float64) {
	if m.addseverity_score != nil {
		*m.addseverity_score += f
	} else {
		m.addseverity_score = &f
	}
}

// AddedSeverityScore returns the value that was added to the "severity_score" field in this mutation.
func (m *FindingMutation) AddedSeverityScore() (r float64, exists bool) {
	v := m.addseverity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverityScore resets all changes to the "severity_score" field.
func (m *FindingMutation) ResetSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *FindingMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FindingMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FindingMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FindingMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FindingMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEvidence sets the "evidence" field.
func (m *FindingMutation) SetEvidence(s string) {
	m.evidence = &s
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *FindingMutation) Evidence() (r string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldEvidence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *FindingMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[finding.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *FindingMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[finding.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *FindingMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, finding.FieldEvidence)
}

// SetReasoning sets the "reasoning" field.
func (m *FindingMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *FindingMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *FindingMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[finding.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *FindingMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[finding.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *FindingMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, finding.FieldReasoning)
}

// SetRemediation sets the "remediation" field.
func (m *FindingMutation) SetRemediation(s string) {
	m.remediation = &s
}

// Remediation returns the value of the "remediation" field in the mutation.
func (m *FindingMutation) Remediation() (r string, exists bool) {
	v := m.remediation
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediation returns the old "remediation" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldRemediation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediation: %w", err)
	}
	return oldValue.Remediation, nil
}

// ClearRemediation clears the value of the "remediation" field.
func (m *FindingMutation) ClearRemediation() {
	m.remediation = nil
	m.clearedFields[finding.FieldRemediation] = struct{}{}
}

// RemediationCleared returns if the "remediation" field was cleared in this mutation.
func (m *FindingMutation) RemediationCleared() bool {
	_, ok := m.clearedFields[finding.FieldRemediation]
	return ok
}

// ResetRemediation resets all changes to the "remediation" field.
func (m *FindingMutation) ResetRemediation() {
	m.remediation = nil
	delete(m.clearedFields, finding.FieldRemediation)
}

// SetStatus sets the "status" field.
func (m *FindingMutation) SetStatus(f finding.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FindingMutation) Status() (r finding.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldStatus(ctx context.Context) (v finding.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FindingMutation) ResetStatus() {
	m.status = nil
}

// SetTicketID sets the "ticket_id" field.
func (m *FindingMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *FindingMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldTicketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *FindingMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[finding.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *FindingMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[finding.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *FindingMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, finding.FieldTicketID)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *FindingMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *FindingMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *FindingMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[finding.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *FindingMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[finding.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *FindingMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, finding.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *FindingMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *FindingMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *FindingMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[finding.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *FindingMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[finding.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *FindingMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, finding.FieldReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FindingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FindingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FindingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FindingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FindingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Finding entity.
// If the Finding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FindingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FindingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FindingMutation builder.
func (m *FindingMutation) Where(ps ...predicate.Finding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Finding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Finding).
func (m *FindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FindingMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.case_id != nil {
		fields = append(fields, finding.FieldCaseID)
	}
	if m.rule_id != nil {
		fields = append(fields, finding.FieldRuleID)
	}
	if m.file_path != nil {
		fields = append(fields, finding.FieldFilePath)
	}
	if m.start_line != nil {
		fields = append(fields, finding.FieldStartLine)
	}
	if m.end_line != nil {
		fields = append(fields, finding.FieldEndLine)
	}
	if m.verdict != nil {
		fields = append(fields, finding.FieldVerdict)
	}
	if m.severity != nil {
		fields = append(fields, finding.FieldSeverity)
	}
	if m.severity_score != nil {
		fields = append(fields, finding.FieldSeverityScore)
	}
	if m.confidence != nil {
		fields = append(fields, finding.FieldConfidence)
	}
	if m.evidence != nil {
		fields = append(fields, finding.FieldEvidence)
	}
	if m.reasoning != nil {
		fields = append(fields, finding.FieldReasoning)
	}
	if m.remediation != nil {
		fields = append(fields, finding.FieldRemediation)
	}
	if m.status != nil {
		fields = append(fields, finding.FieldStatus)
	}
	if m.ticket_id != nil {
		fields = append(fields, finding.FieldTicketID)
	}
	if m.reviewed_by != nil {
		fields = append(fields, finding.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, finding.FieldReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, finding.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, finding.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finding.FieldCaseID:
		return m.CaseID()
	case finding.FieldRuleID:
		return m.RuleID()
	case finding.FieldFilePath:
		return m.FilePath()
	case finding.FieldStartLine:
		return m.StartLine()
	case finding.FieldEndLine:
		return m.EndLine()
	case finding.FieldVerdict:
		return m.Verdict()
	case finding.FieldSeverity:
		return m.Severity()
	case finding.FieldSeverityScore:
		return m.SeverityScore()
	case finding.FieldConfidence:
		return m.Confidence()
	case finding.FieldEvidence:
		return m.Evidence()
	case finding.FieldReasoning:
		return m.Reasoning()
	case finding.FieldRemediation:
		return m.Remediation()
	case finding.FieldStatus:
		return m.Status()
	case finding.FieldTicketID:
		return m.TicketID()
	case finding.FieldReviewedBy:
		return m.ReviewedBy()
	case finding.FieldReviewedAt:
		return m.ReviewedAt()
	case finding.FieldCreatedAt:
		return m.CreatedAt()
	case finding.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finding.FieldCaseID:
		return m.OldCaseID(ctx)
	case finding.FieldRuleID:
		return m.OldRuleID(ctx)
	case finding.FieldFilePath:
		return m.OldFilePath(ctx)
	case finding.FieldStartLine:
		return m.OldStartLine(ctx)
	case finding.FieldEndLine:
		return m.OldEndLine(ctx)
	case finding.FieldVerdict:
		return m.OldVerdict(ctx)
	case finding.FieldSeverity:
		return m.OldSeverity(ctx)
	case finding.FieldSeverityScore:
		return m.OldSeverityScore(ctx)
	case finding.FieldConfidence:
		return m.OldConfidence(ctx)
	case finding.FieldEvidence:
		return m.OldEvidence(ctx)
	case finding.FieldReasoning:
		return m.OldReasoning(ctx)
	case finding.FieldRemediation:
		return m.OldRemediation(ctx)
	case finding.FieldStatus:
		return m.OldStatus(ctx)
	case finding.FieldTicketID:
		return m.OldTicketID(ctx)
	case finding.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case finding.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case finding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case finding.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Finding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finding.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case finding.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case finding.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case finding.FieldStartLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartLine(v)
		return nil
	case finding.FieldEndLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndLine(v)
		return nil
	case finding.FieldVerdict:
		v, ok := value.(finding.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case finding.FieldSeverity:
		v, ok := value.(finding.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case finding.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityScore(v)
		return nil
	case finding.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case finding.FieldEvidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case finding.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case finding.FieldRemediation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediation(v)
		return nil
	case finding.FieldStatus:
		v, ok := value.(finding.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case finding.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case finding.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case finding.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case finding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case finding.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Finding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FindingMutation) AddedFields() []string {
	var fields []string
	if m.addstart_line != nil {
		fields = append(fields, finding.FieldStartLine)
	}
	if m.addend_line != nil {
		fields = append(fields, finding.FieldEndLine)
	}
	if m.addseverity_score != nil {
		fields = append(fields, finding.FieldSeverityScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, finding.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FindingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case finding.FieldStartLine:
		return m.AddedStartLine()
	case finding.FieldEndLine:
		return m.AddedEndLine()
	case finding.FieldSeverityScore:
		return m.AddedSeverityScore()
	case finding.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case finding.FieldStartLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartLine(v)
		return nil
	case finding.FieldEndLine:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndLine(v)
		return nil
	case finding.FieldSeverityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityScore(v)
		return nil
	case finding.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Finding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FindingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(finding.FieldEvidence) {
		fields = append(fields, finding.FieldEvidence)
	}
	if m.FieldCleared(finding.FieldReasoning) {
		fields = append(fields, finding.FieldReasoning)
	}
	if m.FieldCleared(finding.FieldRemediation) {
		fields = append(fields, finding.FieldRemediation)
	}
	if m.FieldCleared(finding.FieldTicketID) {
		fields = append(fields, finding.FieldTicketID)
	}
	if m.FieldCleared(finding.FieldReviewedBy) {
		fields = append(fields, finding.FieldReviewedBy)
	}
	if m.FieldCleared(finding.FieldReviewedAt) {
		fields = append(fields, finding.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FindingMutation) ClearField(name string) error {
	switch name {
	case finding.FieldEvidence:
		m.ClearEvidence()
		return nil
	case finding.FieldReasoning:
		m.ClearReasoning()
		return nil
	case finding.FieldRemediation:
		m.ClearRemediation()
		return nil
	case finding.FieldTicketID:
		m.ClearTicketID()
		return nil
	case finding.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case finding.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Finding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FindingMutation) ResetField(name string) error {
	switch name {
	case finding.FieldCaseID:
		m.ResetCaseID()
		return nil
	case finding.FieldRuleID:
		m.ResetRuleID()
		return nil
	case finding.FieldFilePath:
		m.ResetFilePath()
		return nil
	case finding.FieldStartLine:
		m.ResetStartLine()
		return nil
	case finding.FieldEndLine:
		m.ResetEndLine()
		return nil
	case finding.FieldVerdict:
		m.ResetVerdict()
		return nil
	case finding.FieldSeverity:
		m.ResetSeverity()
		return nil
	case finding.FieldSeverityScore:
		m.ResetSeverityScore()
		return nil
	case finding.FieldConfidence:
		m.ResetConfidence()
		return nil
	case finding.FieldEvidence:
		m.ResetEvidence()
		return nil
	case finding.FieldReasoning:
		m.ResetReasoning()
		return nil
	case finding.FieldRemediation:
		m.ResetRemediation()
		return nil
	case finding.FieldStatus:
		m.ResetStatus()
		return nil
	case finding.FieldTicketID:
		m.ResetTicketID()
		return nil
	case finding.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case finding.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case finding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case finding.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Finding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FindingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FindingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FindingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Finding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FindingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Finding edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	_type              *job.Type
	payload            *map[string]interface{}
	status             *job.Status
	retries            *int
	addretries         *int
	max_retries        *int
	addmax_retries     *int
	timeout_seconds    *int
	addtimeout_seconds *int
	worker_id          *string
	lease_expires_at   *time.Time
	result             *map[string]interface{}
	error              *string
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	next_attempt_at    *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Job, error)
	predicates         []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *JobMutation) SetType(j job.Type) {
	m._type = &j
}

// GetType returns the value of the "type" field in the mutation.
func (m *JobMutation) GetType() (r job.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldType(ctx context.Context) (v job.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *JobMutation) ResetType() {
	m._type = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetRetries sets the "retries" field.
func (m *JobMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *JobMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *JobMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *JobMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *JobMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *JobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *JobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *JobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *JobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *JobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *JobMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *JobMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *JobMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *JobMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *JobMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *JobMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *JobMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *JobMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[job.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *JobMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *JobMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, job.FieldLeaseExpiresAt)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *JobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *JobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *JobMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[job.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *JobMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[job.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *JobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, job.FieldNextAttemptAt)
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m._type != nil {
		fields = append(fields, job.FieldType)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.retries != nil {
		fields = append(fields, job.FieldRetries)
	}
	if m.max_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, job.FieldTimeoutSeconds)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, job.FieldNextAttemptAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldType:
		return m.GetType()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldRetries:
		return m.Retries()
	case job.FieldMaxRetries:
		return m.MaxRetries()
	case job.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case job.FieldResult:
		return m.Result()
	case job.FieldError:
		return m.Error()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldNextAttemptAt:
		return m.NextAttemptAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldType:
		return m.OldType(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldRetries:
		return m.OldRetries(ctx)
	case job.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case job.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldType:
		v, ok := value.(job.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case job.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case job.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addretries != nil {
		fields = append(fields, job.FieldRetries)
	}
	if m.addmax_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, job.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldRetries:
		return m.AddedRetries()
	case job.FieldMaxRetries:
		return m.AddedMaxRetries()
	case job.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case job.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldLeaseExpiresAt) {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldNextAttemptAt) {
		fields = append(fields, job.FieldNextAttemptAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldType:
		m.ResetType()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldRetries:
		m.ResetRetries()
		return nil
	case job.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case job.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// RepositoryMutation represents an operation that mutates the Repository nodes in the graph.
type RepositoryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	full_name             *string
	github_id             *int64
	addgithub_id          *int64
	installation_id       *int64
	addinstallation_id    *int64
	default_branch        *string
	last_commit_sha       *string
	indexed_file_count    *int
	addindexed_file_count *int
	total_chunks          *int
	addtotal_chunks       *int
	created_at            *time.Time
	updated_at            *time.Time
	last_indexed_at       *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Repository, error)
	predicates            []predicate.Repository
}

var _ ent.Mutation = (*RepositoryMutation)(nil)

// repositoryOption allows management of the mutation configuration using functional options.
type repositoryOption func(*RepositoryMutation)

// newRepositoryMutation creates new mutation for the Repository entity.
func newRepositoryMutation(c config, op Op, opts ...repositoryOption) *RepositoryMutation {
	m := &RepositoryMutation{
		config:        c,
		op:            op,
		typ:           TypeRepository,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepositoryID sets the ID field of the mutation.
func withRepositoryID(id string) repositoryOption {
	return func(m *RepositoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Repository
		)
		m.oldValue = func(ctx context.Context) (*Repository, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Repository.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepository sets the old Repository of the mutation.
func withRepository(node *Repository) repositoryOption {
	return func(m *RepositoryMutation) {
		m.oldValue = func(context.Context) (*Repository, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepositoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepositoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Repository entities.
func (m *RepositoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepositoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepositoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Repository.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFullName sets the "full_name" field.
func (m *RepositoryMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *RepositoryMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *RepositoryMutation) ResetFullName() {
	m.full_name = nil
}

// SetGithubID sets the "github_id" field.
func (m *RepositoryMutation) SetGithubID(i int64) {
	m.github_id = &i
	m.addgithub_id = nil
}

// GithubID returns the value of the "github_id" field in the mutation.
func (m *RepositoryMutation) GithubID() (r int64, exists bool) {
	v := m.github_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGithubID returns the old "github_id" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldGithubID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGithubID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGithubID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGithubID: %w", err)
	}
	return oldValue.GithubID, nil
}

// AddGithubID adds i to the "github_id" field.
func (m *RepositoryMutation) AddGithubID(i int64) {
	if m.addgithub_id != nil {
		*m.addgithub_id += i
	} else {
		m.addgithub_id = &i
	}
}

// AddedGithubID returns the value that was added to the "github_id" field in this mutation.
func (m *RepositoryMutation) AddedGithubID() (r int64, exists bool) {
	v := m.addgithub_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearGithubID clears the value of the "github_id" field.
func (m *RepositoryMutation) ClearGithubID() {
	m.github_id = nil
	m.addgithub_id = nil
	m.clearedFields[repository.FieldGithubID] = struct{}{}
}

// GithubIDCleared returns if the "github_id" field was cleared in this mutation.
func (m *RepositoryMutation) GithubIDCleared() bool {
	_, ok := m.clearedFields[repository.FieldGithubID]
	return ok
}

// ResetGithubID resets all changes to the "github_id" field.
func (m *RepositoryMutation) ResetGithubID() {
	m.github_id = nil
	m.addgithub_id = nil
	delete(m.clearedFields, repository.FieldGithubID)
}

// SetInstallationID sets the "installation_id" field.
func (m *RepositoryMutation) SetInstallationID(i int64) {
	m.installation_id = &i
	m.addinstallation_id = nil
}

// InstallationID returns the value of the "installation_id" field in the mutation.
func (m *RepositoryMutation) InstallationID() (r int64, exists bool) {
	v := m.installation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallationID returns the old "installation_id" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldInstallationID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallationID: %w", err)
	}
	return oldValue.InstallationID, nil
}

// AddInstallationID adds i to the "installation_id" field.
func (m *RepositoryMutation) AddInstallationID(i int64) {
	if m.addinstallation_id != nil {
		*m.addinstallation_id += i
	} else {
		m.addinstallation_id = &i
	}
}

// AddedInstallationID returns the value that was added to the "installation_id" field in this mutation.
func (m *RepositoryMutation) AddedInstallationID() (r int64, exists bool) {
	v := m.addinstallation_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstallationID resets all changes to the "installation_id" field.
func (m *RepositoryMutation) ResetInstallationID() {
	m.installation_id = nil
	m.addinstallation_id = nil
}

// SetDefaultBranch sets the "default_branch" field.
func (m *RepositoryMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *RepositoryMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *RepositoryMutation) ResetDefaultBranch() {
	m.default_branch = nil
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (m *RepositoryMutation) SetLastCommitSha(s string) {
	m.last_commit_sha = &s
}

// LastCommitSha returns the value of the "last_commit_sha" field in the mutation.
func (m *RepositoryMutation) LastCommitSha() (r string, exists bool) {
	v := m.last_commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCommitSha returns the old "last_commit_sha" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldLastCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCommitSha: %w", err)
	}
	return oldValue.LastCommitSha, nil
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (m *RepositoryMutation) ClearLastCommitSha() {
	m.last_commit_sha = nil
	m.clearedFields[repository.FieldLastCommitSha] = struct{}{}
}

// LastCommitShaCleared returns if the "last_commit_sha" field was cleared in this mutation.
func (m *RepositoryMutation) LastCommitShaCleared() bool {
	_, ok := m.clearedFields[repository.FieldLastCommitSha]
	return ok
}

// ResetLastCommitSha resets all changes to the "last_commit_sha" field.
func (m *RepositoryMutation) ResetLastCommitSha() {
	m.last_commit_sha = nil
	delete(m.clearedFields, repository.FieldLastCommitSha)
}

// SetIndexedFileCount sets the "indexed_file_count" field.
func (m *RepositoryMutation) SetIndexedFileCount(i int) {
	m.indexed_file_count = &i
	m.addindexed_file_count = nil
}

// IndexedFileCount returns the value of the "indexed_file_count" field in the mutation.
func (m *RepositoryMutation) IndexedFileCount() (r int, exists bool) {
	v := m.indexed_file_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIndexedFileCount returns the old "indexed_file_count" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldIndexedFileCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndexedFileCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndexedFileCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndexedFileCount: %w", err)
	}
	return oldValue.IndexedFileCount, nil
}

// AddIndexedFileCount adds i to the "indexed_file_count" field.
func (m *RepositoryMutation) AddIndexedFileCount(i int) {
	if m.addindexed_file_count != nil {
		*m.addindexed_file_count += i
	} else {
		m.addindexed_file_count = &i
	}
}

// AddedIndexedFileCount returns the value that was added to the "indexed_file_count" field in this mutation.
func (m *RepositoryMutation) AddedIndexedFileCount() (r int, exists bool) {
	v := m.addindexed_file_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIndexedFileCount resets all changes to the "indexed_file_count" field.
func (m *RepositoryMutation) ResetIndexedFileCount() {
	m.indexed_file_count = nil
	m.addindexed_file_count = nil
}

// SetTotalChunks sets the "total_chunks" field.
func (m *RepositoryMutation) SetTotalChunks(i int) {
	m.total_chunks = &i
	m.addtotal_chunks = nil
}

// TotalChunks returns the value of the "total_chunks" field in the mutation.
func (m *RepositoryMutation) TotalChunks() (r int, exists bool) {
	v := m.total_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChunks returns the old "total_chunks" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldTotalChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChunks: %w", err)
	}
	return oldValue.TotalChunks, nil
}

// AddTotalChunks adds i to the "total_chunks" field.
func (m *RepositoryMutation) AddTotalChunks(i int) {
	if m.addtotal_chunks != nil {
		*m.addtotal_chunks += i
	} else {
		m.addtotal_chunks = &i
	}
}

// AddedTotalChunks returns the value that was added to the "total_chunks" field in this mutation.
func (m *RepositoryMutation) AddedTotalChunks() (r int, exists bool) {
	v := m.addtotal_chunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChunks resets all changes to the "total_chunks" field.
func (m *RepositoryMutation) ResetTotalChunks() {
	m.total_chunks = nil
	m.addtotal_chunks = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RepositoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RepositoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RepositoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RepositoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RepositoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RepositoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLastIndexedAt sets the "last_indexed_at" field.
func (m *RepositoryMutation) SetLastIndexedAt(t time.Time) {
	m.last_indexed_at = &t
}

// LastIndexedAt returns the value of the "last_indexed_at" field in the mutation.
func (m *RepositoryMutation) LastIndexedAt() (r time.Time, exists bool) {
	v := m.last_indexed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastIndexedAt returns the old "last_indexed_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldLastIndexedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastIndexedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastIndexedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastIndexedAt: %w", err)
	}
	return oldValue.LastIndexedAt, nil
}

// ClearLastIndexedAt clears the value of the "last_indexed_at" field.
func (m *RepositoryMutation) ClearLastIndexedAt() {
	m.last_indexed_at = nil
	m.clearedFields[repository.FieldLastIndexedAt] = struct{}{}
}

// LastIndexedAtCleared returns if the "last_indexed_at" field was cleared in this mutation.
func (m *RepositoryMutation) LastIndexedAtCleared() bool {
	_, ok := m.clearedFields[repository.FieldLastIndexedAt]
	return ok
}

// ResetLastIndexedAt resets all changes to the "last_indexed_at" field.
func (m *RepositoryMutation) ResetLastIndexedAt() {
	m.last_indexed_at = nil
	delete(m.clearedFields, repository.FieldLastIndexedAt)
}

// Where appends a list predicates to the RepositoryMutation builder.
func (m *RepositoryMutation) Where(ps ...predicate.Repository) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepositoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepositoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Repository, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepositoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepositoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Repository).
func (m *RepositoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepositoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.full_name != nil {
		fields = append(fields, repository.FieldFullName)
	}
	if m.github_id != nil {
		fields = append(fields, repository.FieldGithubID)
	}
	if m.installation_id != nil {
		fields = append(fields, repository.FieldInstallationID)
	}
	if m.default_branch != nil {
		fields = append(fields, repository.FieldDefaultBranch)
	}
	if m.last_commit_sha != nil {
		fields = append(fields, repository.FieldLastCommitSha)
	}
	if m.indexed_file_count != nil {
		fields = append(fields, repository.FieldIndexedFileCount)
	}
	if m.total_chunks != nil {
		fields = append(fields, repository.FieldTotalChunks)
	}
	if m.created_at != nil {
		fields = append(fields, repository.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, repository.FieldUpdatedAt)
	}
	if m.last_indexed_at != nil {
		fields = append(fields, repository.FieldLastIndexedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepositoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldFullName:
		return m.FullName()
	case repository.FieldGithubID:
		return m.GithubID()
	case repository.FieldInstallationID:
		return m.InstallationID()
	case repository.FieldDefaultBranch:
		return m.DefaultBranch()
	case repository.FieldLastCommitSha:
		return m.LastCommitSha()
	case repository.FieldIndexedFileCount:
		return m.IndexedFileCount()
	case repository.FieldTotalChunks:
		return m.TotalChunks()
	case repository.FieldCreatedAt:
		return m.CreatedAt()
	case repository.FieldUpdatedAt:
		return m.UpdatedAt()
	case repository.FieldLastIndexedAt:
		return m.LastIndexedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepositoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repository.FieldFullName:
		return m.OldFullName(ctx)
	case repository.FieldGithubID:
		return m.OldGithubID(ctx)
	case repository.FieldInstallationID:
		return m.OldInstallationID(ctx)
	case repository.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case repository.FieldLastCommitSha:
		return m.OldLastCommitSha(ctx)
	case repository.FieldIndexedFileCount:
		return m.OldIndexedFileCount(ctx)
	case repository.FieldTotalChunks:
		return m.OldTotalChunks(ctx)
	case repository.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case repository.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case repository.FieldLastIndexedAt:
		return m.OldLastIndexedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Repository field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repository.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case repository.FieldGithubID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGithubID(v)
		return nil
	case repository.FieldInstallationID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallationID(v)
		return nil
	case repository.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case repository.FieldLastCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCommitSha(v)
		return nil
	case repository.FieldIndexedFileCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndexedFileCount(v)
		return nil
	case repository.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChunks(v)
		return nil
	case repository.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case repository.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case repository.FieldLastIndexedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastIndexedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepositoryMutation) AddedFields() []string {
	var fields []string
	if m.addgithub_id != nil {
		fields = append(fields, repository.FieldGithubID)
	}
	if m.addinstallation_id != nil {
		fields = append(fields, repository.FieldInstallationID)
	}
	if m.addindexed_file_count != nil {
		fields = append(fields, repository.FieldIndexedFileCount)
	}
	if m.addtotal_chunks != nil {
		fields = append(fields, repository.FieldTotalChunks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepositoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldGithubID:
		return m.AddedGithubID()
	case repository.FieldInstallationID:
		return m.AddedInstallationID()
	case repository.FieldIndexedFileCount:
		return m.AddedIndexedFileCount()
	case repository.FieldTotalChunks:
		return m.AddedTotalChunks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case repository.FieldGithubID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGithubID(v)
		return nil
	case repository.FieldInstallationID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstallationID(v)
		return nil
	case repository.FieldIndexedFileCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIndexedFileCount(v)
		return nil
	case repository.FieldTotalChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChunks(v)
		return nil
	}
	return fmt.Errorf("unknown Repository numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepositoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(repository.FieldGithubID) {
		fields = append(fields, repository.FieldGithubID)
	}
	if m.FieldCleared(repository.FieldLastCommitSha) {
		fields = append(fields, repository.FieldLastCommitSha)
	}
	if m.FieldCleared(repository.FieldLastIndexedAt) {
		fields = append(fields, repository.FieldLastIndexedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepositoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepositoryMutation) ClearField(name string) error {
	switch name {
	case repository.FieldGithubID:
		m.ClearGithubID()
		return nil
	case repository.FieldLastCommitSha:
		m.ClearLastCommitSha()
		return nil
	case repository.FieldLastIndexedAt:
		m.ClearLastIndexedAt()
		return nil
	}
	return fmt.Errorf("unknown Repository nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepositoryMutation) ResetField(name string) error {
	switch name {
	case repository.FieldFullName:
		m.ResetFullName()
		return nil
	case repository.FieldGithubID:
		m.ResetGithubID()
		return nil
	case repository.FieldInstallationID:
		m.ResetInstallationID()
		return nil
	case repository.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case repository.FieldLastCommitSha:
		m.ResetLastCommitSha()
		return nil
	case repository.FieldIndexedFileCount:
		m.ResetIndexedFileCount()
		return nil
	case repository.FieldTotalChunks:
		m.ResetTotalChunks()
		return nil
	case repository.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case repository.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case repository.FieldLastIndexedAt:
		m.ResetLastIndexedAt()
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepositoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepositoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepositoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepositoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepositoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepositoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepositoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Repository unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepositoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Repository edge %s", name)
}
