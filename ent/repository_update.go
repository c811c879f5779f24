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
	"github.com/fincomply/vigil/ent/predicate"
	"github.com/fincomply/vigil/ent/repository"
)

// RepositoryUpdate is the builder for updating Repository entities.
type RepositoryUpdate struct {
	config
	hooks    []Hook
	mutation *RepositoryMutation
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdate) Where(ps ...predicate.Repository) *RepositoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RepositoryUpdate) SetFullName(v string) *RepositoryUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableFullName(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetGithubID sets the "github_id" field.
func (_u *RepositoryUpdate) SetGithubID(v int64) *RepositoryUpdate {
	_u.mutation.ResetGithubID()
	_u.mutation.SetGithubID(v)
	return _u
}

// SetNillableGithubID sets the "github_id" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableGithubID(v *int64) *RepositoryUpdate {
	if v != nil {
		_u.SetGithubID(*v)
	}
	return _u
}

// AddGithubID adds value to the "github_id" field.
func (_u *RepositoryUpdate) AddGithubID(v int64) *RepositoryUpdate {
	_u.mutation.AddGithubID(v)
	return _u
}

// ClearGithubID clears the value of the "github_id" field.
func (_u *RepositoryUpdate) ClearGithubID() *RepositoryUpdate {
	_u.mutation.ClearGithubID()
	return _u
}

// SetInstallationID sets the "installation_id" field.
func (_u *RepositoryUpdate) SetInstallationID(v int64) *RepositoryUpdate {
	_u.mutation.ResetInstallationID()
	_u.mutation.SetInstallationID(v)
	return _u
}

// SetNillableInstallationID sets the "installation_id" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableInstallationID(v *int64) *RepositoryUpdate {
	if v != nil {
		_u.SetInstallationID(*v)
	}
	return _u
}

// AddInstallationID adds value to the "installation_id" field.
func (_u *RepositoryUpdate) AddInstallationID(v int64) *RepositoryUpdate {
	_u.mutation.AddInstallationID(v)
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *RepositoryUpdate) SetDefaultBranch(v string) *RepositoryUpdate {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableDefaultBranch(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (_u *RepositoryUpdate) SetLastCommitSha(v string) *RepositoryUpdate {
	_u.mutation.SetLastCommitSha(v)
	return _u
}

// SetNillableLastCommitSha sets the "last_commit_sha" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLastCommitSha(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetLastCommitSha(*v)
	}
	return _u
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (_u *RepositoryUpdate) ClearLastCommitSha() *RepositoryUpdate {
	_u.mutation.ClearLastCommitSha()
	return _u
}

// SetIndexedFileCount sets the "indexed_file_count" field.
func (_u *RepositoryUpdate) SetIndexedFileCount(v int) *RepositoryUpdate {
	_u.mutation.ResetIndexedFileCount()
	_u.mutation.SetIndexedFileCount(v)
	return _u
}

// SetNillableIndexedFileCount sets the "indexed_file_count" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableIndexedFileCount(v *int) *RepositoryUpdate {
	if v != nil {
		_u.SetIndexedFileCount(*v)
	}
	return _u
}

// AddIndexedFileCount adds value to the "indexed_file_count" field.
func (_u *RepositoryUpdate) AddIndexedFileCount(v int) *RepositoryUpdate {
	_u.mutation.AddIndexedFileCount(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *RepositoryUpdate) SetTotalChunks(v int) *RepositoryUpdate {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableTotalChunks(v *int) *RepositoryUpdate {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *RepositoryUpdate) AddTotalChunks(v int) *RepositoryUpdate {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepositoryUpdate) SetUpdatedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastIndexedAt sets the "last_indexed_at" field.
func (_u *RepositoryUpdate) SetLastIndexedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetLastIndexedAt(v)
	return _u
}

// SetNillableLastIndexedAt sets the "last_indexed_at" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLastIndexedAt(v *time.Time) *RepositoryUpdate {
	if v != nil {
		_u.SetLastIndexedAt(*v)
	}
	return _u
}

// ClearLastIndexedAt clears the value of the "last_indexed_at" field.
func (_u *RepositoryUpdate) ClearLastIndexedAt() *RepositoryUpdate {
	_u.mutation.ClearLastIndexedAt()
	return _u
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdate) Mutation() *RepositoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepositoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepositoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepositoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := repository.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RepositoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(repository.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GithubID(); ok {
		_spec.SetField(repository.FieldGithubID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGithubID(); ok {
		_spec.AddField(repository.FieldGithubID, field.TypeInt64, value)
	}
	if _u.mutation.GithubIDCleared() {
		_spec.ClearField(repository.FieldGithubID, field.TypeInt64)
	}
	if value, ok := _u.mutation.InstallationID(); ok {
		_spec.SetField(repository.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInstallationID(); ok {
		_spec.AddField(repository.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(repository.FieldDefaultBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCommitSha(); ok {
		_spec.SetField(repository.FieldLastCommitSha, field.TypeString, value)
	}
	if _u.mutation.LastCommitShaCleared() {
		_spec.ClearField(repository.FieldLastCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.IndexedFileCount(); ok {
		_spec.SetField(repository.FieldIndexedFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndexedFileCount(); ok {
		_spec.AddField(repository.FieldIndexedFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(repository.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(repository.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastIndexedAt(); ok {
		_spec.SetField(repository.FieldLastIndexedAt, field.TypeTime, value)
	}
	if _u.mutation.LastIndexedAtCleared() {
		_spec.ClearField(repository.FieldLastIndexedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepositoryUpdateOne is the builder for updating a single Repository entity.
type RepositoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepositoryMutation
}

// SetFullName sets the "full_name" field.
func (_u *RepositoryUpdateOne) SetFullName(v string) *RepositoryUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableFullName(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetGithubID sets the "github_id" field.
func (_u *RepositoryUpdateOne) SetGithubID(v int64) *RepositoryUpdateOne {
	_u.mutation.ResetGithubID()
	_u.mutation.SetGithubID(v)
	return _u
}

// SetNillableGithubID sets the "github_id" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableGithubID(v *int64) *RepositoryUpdateOne {
	if v != nil {
		_u.SetGithubID(*v)
	}
	return _u
}

// AddGithubID adds value to the "github_id" field.
func (_u *RepositoryUpdateOne) AddGithubID(v int64) *RepositoryUpdateOne {
	_u.mutation.AddGithubID(v)
	return _u
}

// ClearGithubID clears the value of the "github_id" field.
func (_u *RepositoryUpdateOne) ClearGithubID() *RepositoryUpdateOne {
	_u.mutation.ClearGithubID()
	return _u
}

// SetInstallationID sets the "installation_id" field.
func (_u *RepositoryUpdateOne) SetInstallationID(v int64) *RepositoryUpdateOne {
	_u.mutation.ResetInstallationID()
	_u.mutation.SetInstallationID(v)
	return _u
}

// SetNillableInstallationID sets the "installation_id" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableInstallationID(v *int64) *RepositoryUpdateOne {
	if v != nil {
		_u.SetInstallationID(*v)
	}
	return _u
}

// AddInstallationID adds value to the "installation_id" field.
func (_u *RepositoryUpdateOne) AddInstallationID(v int64) *RepositoryUpdateOne {
	_u.mutation.AddInstallationID(v)
	return _u
}

// SetDefaultBranch sets the "default_branch" field.
func (_u *RepositoryUpdateOne) SetDefaultBranch(v string) *RepositoryUpdateOne {
	_u.mutation.SetDefaultBranch(v)
	return _u
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableDefaultBranch(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetDefaultBranch(*v)
	}
	return _u
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (_u *RepositoryUpdateOne) SetLastCommitSha(v string) *RepositoryUpdateOne {
	_u.mutation.SetLastCommitSha(v)
	return _u
}

// SetNillableLastCommitSha sets the "last_commit_sha" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLastCommitSha(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLastCommitSha(*v)
	}
	return _u
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (_u *RepositoryUpdateOne) ClearLastCommitSha() *RepositoryUpdateOne {
	_u.mutation.ClearLastCommitSha()
	return _u
}

// SetIndexedFileCount sets the "indexed_file_count" field.
func (_u *RepositoryUpdateOne) SetIndexedFileCount(v int) *RepositoryUpdateOne {
	_u.mutation.ResetIndexedFileCount()
	_u.mutation.SetIndexedFileCount(v)
	return _u
}

// SetNillableIndexedFileCount sets the "indexed_file_count" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableIndexedFileCount(v *int) *RepositoryUpdateOne {
	if v != nil {
		_u.SetIndexedFileCount(*v)
	}
	return _u
}

// AddIndexedFileCount adds value to the "indexed_file_count" field.
func (_u *RepositoryUpdateOne) AddIndexedFileCount(v int) *RepositoryUpdateOne {
	_u.mutation.AddIndexedFileCount(v)
	return _u
}

// SetTotalChunks sets the "total_chunks" field.
func (_u *RepositoryUpdateOne) SetTotalChunks(v int) *RepositoryUpdateOne {
	_u.mutation.ResetTotalChunks()
	_u.mutation.SetTotalChunks(v)
	return _u
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableTotalChunks(v *int) *RepositoryUpdateOne {
	if v != nil {
		_u.SetTotalChunks(*v)
	}
	return _u
}

// AddTotalChunks adds value to the "total_chunks" field.
func (_u *RepositoryUpdateOne) AddTotalChunks(v int) *RepositoryUpdateOne {
	_u.mutation.AddTotalChunks(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepositoryUpdateOne) SetUpdatedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLastIndexedAt sets the "last_indexed_at" field.
func (_u *RepositoryUpdateOne) SetLastIndexedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetLastIndexedAt(v)
	return _u
}

// SetNillableLastIndexedAt sets the "last_indexed_at" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLastIndexedAt(v *time.Time) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLastIndexedAt(*v)
	}
	return _u
}

// ClearLastIndexedAt clears the value of the "last_indexed_at" field.
func (_u *RepositoryUpdateOne) ClearLastIndexedAt() *RepositoryUpdateOne {
	_u.mutation.ClearLastIndexedAt()
	return _u
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdateOne) Mutation() *RepositoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdateOne) Where(ps ...predicate.Repository) *RepositoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepositoryUpdateOne) Select(field string, fields ...string) *RepositoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Repository entity.
func (_u *RepositoryUpdateOne) Save(ctx context.Context) (*Repository, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdateOne) SaveX(ctx context.Context) *Repository {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepositoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepositoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := repository.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *RepositoryUpdateOne) sqlSave(ctx context.Context) (_node *Repository, err error) {
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Repository.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repository.FieldID)
		for _, f := range fields {
			if !repository.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repository.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(repository.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GithubID(); ok {
		_spec.SetField(repository.FieldGithubID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGithubID(); ok {
		_spec.AddField(repository.FieldGithubID, field.TypeInt64, value)
	}
	if _u.mutation.GithubIDCleared() {
		_spec.ClearField(repository.FieldGithubID, field.TypeInt64)
	}
	if value, ok := _u.mutation.InstallationID(); ok {
		_spec.SetField(repository.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInstallationID(); ok {
		_spec.AddField(repository.FieldInstallationID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DefaultBranch(); ok {
		_spec.SetField(repository.FieldDefaultBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastCommitSha(); ok {
		_spec.SetField(repository.FieldLastCommitSha, field.TypeString, value)
	}
	if _u.mutation.LastCommitShaCleared() {
		_spec.ClearField(repository.FieldLastCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.IndexedFileCount(); ok {
		_spec.SetField(repository.FieldIndexedFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIndexedFileCount(); ok {
		_spec.AddField(repository.FieldIndexedFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalChunks(); ok {
		_spec.SetField(repository.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChunks(); ok {
		_spec.AddField(repository.FieldTotalChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastIndexedAt(); ok {
		_spec.SetField(repository.FieldLastIndexedAt, field.TypeTime, value)
	}
	if _u.mutation.LastIndexedAtCleared() {
		_spec.ClearField(repository.FieldLastIndexedAt, field.TypeTime)
	}
	_node = &Repository{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
