// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fincomply/vigil/ent/finding"
	"github.com/fincomply/vigil/ent/predicate"
)

// FindingUpdate is the builder for updating Finding entities.
type FindingUpdate struct {
	config
	hooks    []Hook
	mutation *FindingMutation
}

// Where appends a list predicates to the FindingUpdate builder.
func (_u *FindingUpdate) Where(ps ...predicate.Finding) *FindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *FindingUpdate) SetCaseID(v string) *FindingUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableCaseID(v *string) *FindingUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *FindingUpdate) SetRuleID(v string) *FindingUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableRuleID(v *string) *FindingUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *FindingUpdate) SetFilePath(v string) *FindingUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableFilePath(v *string) *FindingUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStartLine sets the "start_line" field.
func (_u *FindingUpdate) SetStartLine(v int) *FindingUpdate {
	_u.mutation.ResetStartLine()
	_u.mutation.SetStartLine(v)
	return _u
}

// SetNillableStartLine sets the "start_line" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableStartLine(v *int) *FindingUpdate {
	if v != nil {
		_u.SetStartLine(*v)
	}
	return _u
}

// AddStartLine adds value to the "start_line" field.
func (_u *FindingUpdate) AddStartLine(v int) *FindingUpdate {
	_u.mutation.AddStartLine(v)
	return _u
}

// SetEndLine sets the "end_line" field.
func (_u *FindingUpdate) SetEndLine(v int) *FindingUpdate {
	_u.mutation.ResetEndLine()
	_u.mutation.SetEndLine(v)
	return _u
}

// SetNillableEndLine sets the "end_line" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableEndLine(v *int) *FindingUpdate {
	if v != nil {
		_u.SetEndLine(*v)
	}
	return _u
}

// AddEndLine adds value to the "end_line" field.
func (_u *FindingUpdate) AddEndLine(v int) *FindingUpdate {
	_u.mutation.AddEndLine(v)
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *FindingUpdate) SetVerdict(v finding.Verdict) *FindingUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableVerdict(v *finding.Verdict) *FindingUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *FindingUpdate) SetSeverity(v finding.Severity) *FindingUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableSeverity(v *finding.Severity) *FindingUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *FindingUpdate) SetSeverityScore(v float64) *FindingUpdate {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableSeverityScore(v *float64) *FindingUpdate {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *FindingUpdate) AddSeverityScore(v float64) *FindingUpdate {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FindingUpdate) SetConfidence(v float64) *FindingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableConfidence(v *float64) *FindingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FindingUpdate) AddConfidence(v float64) *FindingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *FindingUpdate) SetEvidence(v string) *FindingUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableEvidence(v *string) *FindingUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *FindingUpdate) ClearEvidence() *FindingUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *FindingUpdate) SetReasoning(v string) *FindingUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableReasoning(v *string) *FindingUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *FindingUpdate) ClearReasoning() *FindingUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *FindingUpdate) SetRemediation(v string) *FindingUpdate {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableRemediation(v *string) *FindingUpdate {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// ClearRemediation clears the value of the "remediation" field.
func (_u *FindingUpdate) ClearRemediation() *FindingUpdate {
	_u.mutation.ClearRemediation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FindingUpdate) SetStatus(v finding.Status) *FindingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableStatus(v *finding.Status) *FindingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *FindingUpdate) SetTicketID(v string) *FindingUpdate {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableTicketID(v *string) *FindingUpdate {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *FindingUpdate) ClearTicketID() *FindingUpdate {
	_u.mutation.ClearTicketID()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *FindingUpdate) SetReviewedBy(v string) *FindingUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableReviewedBy(v *string) *FindingUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *FindingUpdate) ClearReviewedBy() *FindingUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *FindingUpdate) SetReviewedAt(v time.Time) *FindingUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *FindingUpdate) SetNillableReviewedAt(v *time.Time) *FindingUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *FindingUpdate) ClearReviewedAt() *FindingUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FindingUpdate) SetUpdatedAt(v time.Time) *FindingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FindingMutation object of the builder.
func (_u *FindingUpdate) Mutation() *FindingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FindingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FindingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := finding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FindingUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := finding.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Finding.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := finding.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Finding.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finding.Table, finding.Columns, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(finding.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(finding.FieldRuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(finding.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartLine(); ok {
		_spec.SetField(finding.FieldStartLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartLine(); ok {
		_spec.AddField(finding.FieldStartLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndLine(); ok {
		_spec.SetField(finding.FieldEndLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndLine(); ok {
		_spec.AddField(finding.FieldEndLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(finding.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(finding.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(finding.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(finding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(finding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(finding.FieldEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(finding.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(finding.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(finding.FieldRemediation, field.TypeString, value)
	}
	if _u.mutation.RemediationCleared() {
		_spec.ClearField(finding.FieldRemediation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(finding.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(finding.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(finding.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(finding.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(finding.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(finding.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(finding.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(finding.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FindingUpdateOne is the builder for updating a single Finding entity.
type FindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FindingMutation
}

// SetCaseID sets the "case_id" field.
func (_u *FindingUpdateOne) SetCaseID(v string) *FindingUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableCaseID(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *FindingUpdateOne) SetRuleID(v string) *FindingUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableRuleID(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *FindingUpdateOne) SetFilePath(v string) *FindingUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableFilePath(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetStartLine sets the "start_line" field.
func (_u *FindingUpdateOne) SetStartLine(v int) *FindingUpdateOne {
	_u.mutation.ResetStartLine()
	_u.mutation.SetStartLine(v)
	return _u
}

// SetNillableStartLine sets the "start_line" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableStartLine(v *int) *FindingUpdateOne {
	if v != nil {
		_u.SetStartLine(*v)
	}
	return _u
}

// AddStartLine adds value to the "start_line" field.
func (_u *FindingUpdateOne) AddStartLine(v int) *FindingUpdateOne {
	_u.mutation.AddStartLine(v)
	return _u
}

// SetEndLine sets the "end_line" field.
func (_u *FindingUpdateOne) SetEndLine(v int) *FindingUpdateOne {
	_u.mutation.ResetEndLine()
	_u.mutation.SetEndLine(v)
	return _u
}

// SetNillableEndLine sets the "end_line" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableEndLine(v *int) *FindingUpdateOne {
	if v != nil {
		_u.SetEndLine(*v)
	}
	return _u
}

// AddEndLine adds value to the "end_line" field.
func (_u *FindingUpdateOne) AddEndLine(v int) *FindingUpdateOne {
	_u.mutation.AddEndLine(v)
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *FindingUpdateOne) SetVerdict(v finding.Verdict) *FindingUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableVerdict(v *finding.Verdict) *FindingUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *FindingUpdateOne) SetSeverity(v finding.Severity) *FindingUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableSeverity(v *finding.Severity) *FindingUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *FindingUpdateOne) SetSeverityScore(v float64) *FindingUpdateOne {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableSeverityScore(v *float64) *FindingUpdateOne {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *FindingUpdateOne) AddSeverityScore(v float64) *FindingUpdateOne {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FindingUpdateOne) SetConfidence(v float64) *FindingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableConfidence(v *float64) *FindingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FindingUpdateOne) AddConfidence(v float64) *FindingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *FindingUpdateOne) SetEvidence(v string) *FindingUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableEvidence(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *FindingUpdateOne) ClearEvidence() *FindingUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *FindingUpdateOne) SetReasoning(v string) *FindingUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableReasoning(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *FindingUpdateOne) ClearReasoning() *FindingUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetRemediation sets the "remediation" field.
func (_u *FindingUpdateOne) SetRemediation(v string) *FindingUpdateOne {
	_u.mutation.SetRemediation(v)
	return _u
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableRemediation(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetRemediation(*v)
	}
	return _u
}

// ClearRemediation clears the value of the "remediation" field.
func (_u *FindingUpdateOne) ClearRemediation() *FindingUpdateOne {
	_u.mutation.ClearRemediation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FindingUpdateOne) SetStatus(v finding.Status) *FindingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableStatus(v *finding.Status) *FindingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTicketID sets the "ticket_id" field.
func (_u *FindingUpdateOne) SetTicketID(v string) *FindingUpdateOne {
	_u.mutation.SetTicketID(v)
	return _u
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableTicketID(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetTicketID(*v)
	}
	return _u
}

// ClearTicketID clears the value of the "ticket_id" field.
func (_u *FindingUpdateOne) ClearTicketID() *FindingUpdateOne {
	_u.mutation.ClearTicketID()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *FindingUpdateOne) SetReviewedBy(v string) *FindingUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableReviewedBy(v *string) *FindingUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *FindingUpdateOne) ClearReviewedBy() *FindingUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *FindingUpdateOne) SetReviewedAt(v time.Time) *FindingUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *FindingUpdateOne) SetNillableReviewedAt(v *time.Time) *FindingUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *FindingUpdateOne) ClearReviewedAt() *FindingUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FindingUpdateOne) SetUpdatedAt(v time.Time) *FindingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the FindingMutation object of the builder.
func (_u *FindingUpdateOne) Mutation() *FindingMutation {
	return _u.mutation
}

// Where appends a list predicates to the FindingUpdate builder.
func (_u *FindingUpdateOne) Where(ps ...predicate.Finding) *FindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FindingUpdateOne) Select(field string, fields ...string) *FindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Finding entity.
func (_u *FindingUpdateOne) Save(ctx context.Context) (*Finding, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FindingUpdateOne) SaveX(ctx context.Context) *Finding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FindingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := finding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FindingUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := finding.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Finding.verdict": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := finding.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Finding.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FindingUpdateOne) sqlSave(ctx context.Context) (_node *Finding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(finding.Table, finding.Columns, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Finding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, finding.FieldID)
		for _, f := range fields {
			if !finding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != finding.FieldID {
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
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(finding.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(finding.FieldRuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(finding.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartLine(); ok {
		_spec.SetField(finding.FieldStartLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartLine(); ok {
		_spec.AddField(finding.FieldStartLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndLine(); ok {
		_spec.SetField(finding.FieldEndLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndLine(); ok {
		_spec.AddField(finding.FieldEndLine, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(finding.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(finding.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(finding.FieldSeverityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(finding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(finding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(finding.FieldEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(finding.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(finding.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Remediation(); ok {
		_spec.SetField(finding.FieldRemediation, field.TypeString, value)
	}
	if _u.mutation.RemediationCleared() {
		_spec.ClearField(finding.FieldRemediation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(finding.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TicketID(); ok {
		_spec.SetField(finding.FieldTicketID, field.TypeString, value)
	}
	if _u.mutation.TicketIDCleared() {
		_spec.ClearField(finding.FieldTicketID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(finding.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(finding.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(finding.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(finding.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(finding.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Finding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{finding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
