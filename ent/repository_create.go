// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fincomply/vigil/ent/repository"
)

// RepositoryCreate is the builder for creating a Repository entity.
type RepositoryCreate struct {
	config
	mutation *RepositoryMutation
	hooks    []Hook
}

// SetFullName sets the "full_name" field.
func (_c *RepositoryCreate) SetFullName(v string) *RepositoryCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetGithubID sets the "github_id" field.
func (_c *RepositoryCreate) SetGithubID(v int64) *RepositoryCreate {
	_c.mutation.SetGithubID(v)
	return _c
}

// SetNillableGithubID sets the "github_id" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableGithubID(v *int64) *RepositoryCreate {
	if v != nil {
		_c.SetGithubID(*v)
	}
	return _c
}

// SetInstallationID sets the "installation_id" field.
func (_c *RepositoryCreate) SetInstallationID(v int64) *RepositoryCreate {
	_c.mutation.SetInstallationID(v)
	return _c
}

// SetNillableInstallationID sets the "installation_id" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableInstallationID(v *int64) *RepositoryCreate {
	if v != nil {
		_c.SetInstallationID(*v)
	}
	return _c
}

// SetDefaultBranch sets the "default_branch" field.
func (_c *RepositoryCreate) SetDefaultBranch(v string) *RepositoryCreate {
	_c.mutation.SetDefaultBranch(v)
	return _c
}

// SetNillableDefaultBranch sets the "default_branch" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableDefaultBranch(v *string) *RepositoryCreate {
	if v != nil {
		_c.SetDefaultBranch(*v)
	}
	return _c
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (_c *RepositoryCreate) SetLastCommitSha(v string) *RepositoryCreate {
	_c.mutation.SetLastCommitSha(v)
	return _c
}

// SetNillableLastCommitSha sets the "last_commit_sha" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableLastCommitSha(v *string) *RepositoryCreate {
	if v != nil {
		_c.SetLastCommitSha(*v)
	}
	return _c
}

// SetIndexedFileCount sets the "indexed_file_count" field.
func (_c *RepositoryCreate) SetIndexedFileCount(v int) *RepositoryCreate {
	_c.mutation.SetIndexedFileCount(v)
	return _c
}

// SetNillableIndexedFileCount sets the "indexed_file_count" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableIndexedFileCount(v *int) *RepositoryCreate {
	if v != nil {
		_c.SetIndexedFileCount(*v)
	}
	return _c
}

// SetTotalChunks sets the "total_chunks" field.
func (_c *RepositoryCreate) SetTotalChunks(v int) *RepositoryCreate {
	_c.mutation.SetTotalChunks(v)
	return _c
}

// SetNillableTotalChunks sets the "total_chunks" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableTotalChunks(v *int) *RepositoryCreate {
	if v != nil {
		_c.SetTotalChunks(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RepositoryCreate) SetCreatedAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableCreatedAt(v *time.Time) *RepositoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RepositoryCreate) SetUpdatedAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableUpdatedAt(v *time.Time) *RepositoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLastIndexedAt sets the "last_indexed_at" field.
func (_c *RepositoryCreate) SetLastIndexedAt(v time.Time) *RepositoryCreate {
	_c.mutation.SetLastIndexedAt(v)
	return _c
}

// SetNillableLastIndexedAt sets the "last_indexed_at" field if the given value is not nil.
func (_c *RepositoryCreate) SetNillableLastIndexedAt(v *time.Time) *RepositoryCreate {
	if v != nil {
		_c.SetLastIndexedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RepositoryCreate) SetID(v string) *RepositoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RepositoryMutation object of the builder.
func (_c *RepositoryCreate) Mutation() *RepositoryMutation {
	return _c.mutation
}

// Save creates the Repository in the database.
func (_c *RepositoryCreate) Save(ctx context.Context) (*Repository, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RepositoryCreate) SaveX(ctx context.Context) *Repository {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepositoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepositoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RepositoryCreate) defaults() {
	if _, ok := _c.mutation.InstallationID(); !ok {
		v := repository.DefaultInstallationID
		_c.mutation.SetInstallationID(v)
	}
	if _, ok := _c.mutation.DefaultBranch(); !ok {
		v := repository.DefaultDefaultBranch
		_c.mutation.SetDefaultBranch(v)
	}
	if _, ok := _c.mutation.IndexedFileCount(); !ok {
		v := repository.DefaultIndexedFileCount
		_c.mutation.SetIndexedFileCount(v)
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		v := repository.DefaultTotalChunks
		_c.mutation.SetTotalChunks(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := repository.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := repository.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RepositoryCreate) check() error {
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Repository.full_name"`)}
	}
	if _, ok := _c.mutation.InstallationID(); !ok {
		return &ValidationError{Name: "installation_id", err: errors.New(`ent: missing required field "Repository.installation_id"`)}
	}
	if _, ok := _c.mutation.DefaultBranch(); !ok {
		return &ValidationError{Name: "default_branch", err: errors.New(`ent: missing required field "Repository.default_branch"`)}
	}
	if _, ok := _c.mutation.IndexedFileCount(); !ok {
		return &ValidationError{Name: "indexed_file_count", err: errors.New(`ent: missing required field "Repository.indexed_file_count"`)}
	}
	if _, ok := _c.mutation.TotalChunks(); !ok {
		return &ValidationError{Name: "total_chunks", err: errors.New(`ent: missing required field "Repository.total_chunks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Repository.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Repository.updated_at"`)}
	}
	return nil
}

func (_c *RepositoryCreate) sqlSave(ctx context.Context) (*Repository, error) {
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
			return nil, fmt.Errorf("unexpected Repository.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RepositoryCreate) createSpec() (*Repository, *sqlgraph.CreateSpec) {
	var (
		_node = &Repository{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(repository.Table, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(repository.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.GithubID(); ok {
		_spec.SetField(repository.FieldGithubID, field.TypeInt64, value)
		_node.GithubID = value
	}
	if value, ok := _c.mutation.InstallationID(); ok {
		_spec.SetField(repository.FieldInstallationID, field.TypeInt64, value)
		_node.InstallationID = value
	}
	if value, ok := _c.mutation.DefaultBranch(); ok {
		_spec.SetField(repository.FieldDefaultBranch, field.TypeString, value)
		_node.DefaultBranch = value
	}
	if value, ok := _c.mutation.LastCommitSha(); ok {
		_spec.SetField(repository.FieldLastCommitSha, field.TypeString, value)
		_node.LastCommitSha = &value
	}
	if value, ok := _c.mutation.IndexedFileCount(); ok {
		_spec.SetField(repository.FieldIndexedFileCount, field.TypeInt, value)
		_node.IndexedFileCount = value
	}
	if value, ok := _c.mutation.TotalChunks(); ok {
		_spec.SetField(repository.FieldTotalChunks, field.TypeInt, value)
		_node.TotalChunks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(repository.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LastIndexedAt(); ok {
		_spec.SetField(repository.FieldLastIndexedAt, field.TypeTime, value)
		_node.LastIndexedAt = &value
	}
	return _node, _spec
}

// RepositoryCreateBulk is the builder for creating many Repository entities in bulk.
type RepositoryCreateBulk struct {
	config
	err      error
	builders []*RepositoryCreate
}

// Save creates the Repository entities in the database.
func (_c *RepositoryCreateBulk) Save(ctx context.Context) ([]*Repository, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Repository, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RepositoryMutation)
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
func (_c *RepositoryCreateBulk) SaveX(ctx context.Context) []*Repository {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepositoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepositoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
