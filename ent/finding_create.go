// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fincomply/vigil/ent/finding"
)

// FindingCreate is the builder for creating a Finding entity.
type FindingCreate struct {
	config
	mutation *FindingMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *FindingCreate) SetCaseID(v string) *FindingCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *FindingCreate) SetRuleID(v string) *FindingCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *FindingCreate) SetFilePath(v string) *FindingCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetStartLine sets the "start_line" field.
func (_c *FindingCreate) SetStartLine(v int) *FindingCreate {
	_c.mutation.SetStartLine(v)
	return _c
}

// SetEndLine sets the "end_line" field.
func (_c *FindingCreate) SetEndLine(v int) *FindingCreate {
	_c.mutation.SetEndLine(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *FindingCreate) SetVerdict(v finding.Verdict) *FindingCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *FindingCreate) SetSeverity(v finding.Severity) *FindingCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetSeverityScore sets the "severity_score" field.
func (_c *FindingCreate) SetSeverityScore(v float64) *FindingCreate {
	_c.mutation.SetSeverityScore(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FindingCreate) SetConfidence(v float64) *FindingCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *FindingCreate) SetNillableConfidence(v *float64) *FindingCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *FindingCreate) SetEvidence(v string) *FindingCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_c *FindingCreate) SetNillableEvidence(v *string) *FindingCreate {
	if v != nil {
		_c.SetEvidence(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *FindingCreate) SetReasoning(v string) *FindingCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *FindingCreate) SetNillableReasoning(v *string) *FindingCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetRemediation sets the "remediation" field.
func (_c *FindingCreate) SetRemediation(v string) *FindingCreate {
	_c.mutation.SetRemediation(v)
	return _c
}

// SetNillableRemediation sets the "remediation" field if the given value is not nil.
func (_c *FindingCreate) SetNillableRemediation(v *string) *FindingCreate {
	if v != nil {
		_c.SetRemediation(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FindingCreate) SetStatus(v finding.Status) *FindingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FindingCreate) SetNillableStatus(v *finding.Status) *FindingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTicketID sets the "ticket_id" field.
func (_c *FindingCreate) SetTicketID(v string) *FindingCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetNillableTicketID sets the "ticket_id" field if the given value is not nil.
func (_c *FindingCreate) SetNillableTicketID(v *string) *FindingCreate {
	if v != nil {
		_c.SetTicketID(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *FindingCreate) SetReviewedBy(v string) *FindingCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *FindingCreate) SetNillableReviewedBy(v *string) *FindingCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *FindingCreate) SetReviewedAt(v time.Time) *FindingCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *FindingCreate) SetNillableReviewedAt(v *time.Time) *FindingCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FindingCreate) SetCreatedAt(v time.Time) *FindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FindingCreate) SetNillableCreatedAt(v *time.Time) *FindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FindingCreate) SetUpdatedAt(v time.Time) *FindingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FindingCreate) SetNillableUpdatedAt(v *time.Time) *FindingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FindingCreate) SetID(v string) *FindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FindingMutation object of the builder.
func (_c *FindingCreate) Mutation() *FindingMutation {
	return _c.mutation
}

// Save creates the Finding in the database.
func (_c *FindingCreate) Save(ctx context.Context) (*Finding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FindingCreate) SaveX(ctx context.Context) *Finding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FindingCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := finding.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := finding.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := finding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := finding.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FindingCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "Finding.case_id"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "Finding.rule_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Finding.file_path"`)}
	}
	if _, ok := _c.mutation.StartLine(); !ok {
		return &ValidationError{Name: "start_line", err: errors.New(`ent: missing required field "Finding.start_line"`)}
	}
	if _, ok := _c.mutation.EndLine(); !ok {
		return &ValidationError{Name: "end_line", err: errors.New(`ent: missing required field "Finding.end_line"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "Finding.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := finding.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Finding.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Finding.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := finding.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Finding.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeverityScore(); !ok {
		return &ValidationError{Name: "severity_score", err: errors.New(`ent: missing required field "Finding.severity_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Finding.confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Finding.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := finding.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Finding.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Finding.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Finding.updated_at"`)}
	}
	return nil
}

func (_c *FindingCreate) sqlSave(ctx context.Context) (*Finding, error) {
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
			return nil, fmt.Errorf("unexpected Finding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FindingCreate) createSpec() (*Finding, *sqlgraph.CreateSpec) {
	var (
		_node = &Finding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(finding.Table, sqlgraph.NewFieldSpec(finding.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(finding.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(finding.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(finding.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.StartLine(); ok {
		_spec.SetField(finding.FieldStartLine, field.TypeInt, value)
		_node.StartLine = value
	}
	if value, ok := _c.mutation.EndLine(); ok {
		_spec.SetField(finding.FieldEndLine, field.TypeInt, value)
		_node.EndLine = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(finding.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(finding.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.SeverityScore(); ok {
		_spec.SetField(finding.FieldSeverityScore, field.TypeFloat64, value)
		_node.SeverityScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(finding.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(finding.FieldEvidence, field.TypeString, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(finding.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Remediation(); ok {
		_spec.SetField(finding.FieldRemediation, field.TypeString, value)
		_node.Remediation = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(finding.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(finding.FieldTicketID, field.TypeString, value)
		_node.TicketID = &value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(finding.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(finding.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(finding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(finding.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FindingCreateBulk is the builder for creating many Finding entities in bulk.
type FindingCreateBulk struct {
	config
	err      error
	builders []*FindingCreate
}

// Save creates the Finding entities in the database.
func (_c *FindingCreateBulk) Save(ctx context.Context) ([]*Finding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Finding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FindingMutation)
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
func (_c *FindingCreateBulk) SaveX(ctx context.Context) []*Finding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
