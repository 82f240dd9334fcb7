// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docextract/gen/ent/extractjob"
)

// ExtractJobCreate is the builder for creating a ExtractJob entity.
type ExtractJobCreate struct {
	config
	mutation *ExtractJobMutation
	hooks    []Hook
}

// SetSourcePath sets the "source_path" field.
func (_c *ExtractJobCreate) SetSourcePath(v string) *ExtractJobCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetOutputDir sets the "output_dir" field.
func (_c *ExtractJobCreate) SetOutputDir(v string) *ExtractJobCreate {
	_c.mutation.SetOutputDir(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractJobCreate) SetStatus(v string) *ExtractJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *ExtractJobCreate) SetClassification(v string) *ExtractJobCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableClassification(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *ExtractJobCreate) SetStrategy(v string) *ExtractJobCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableStrategy(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetTableCount sets the "table_count" field.
func (_c *ExtractJobCreate) SetTableCount(v int) *ExtractJobCreate {
	_c.mutation.SetTableCount(v)
	return _c
}

// SetNillableTableCount sets the "table_count" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableTableCount(v *int) *ExtractJobCreate {
	if v != nil {
		_c.SetTableCount(*v)
	}
	return _c
}

// SetImageCount sets the "image_count" field.
func (_c *ExtractJobCreate) SetImageCount(v int) *ExtractJobCreate {
	_c.mutation.SetImageCount(v)
	return _c
}

// SetNillableImageCount sets the "image_count" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableImageCount(v *int) *ExtractJobCreate {
	if v != nil {
		_c.SetImageCount(*v)
	}
	return _c
}

// SetTablesPath sets the "tables_path" field.
func (_c *ExtractJobCreate) SetTablesPath(v string) *ExtractJobCreate {
	_c.mutation.SetTablesPath(v)
	return _c
}

// SetNillableTablesPath sets the "tables_path" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableTablesPath(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetTablesPath(*v)
	}
	return _c
}

// SetDocumentPath sets the "document_path" field.
func (_c *ExtractJobCreate) SetDocumentPath(v string) *ExtractJobCreate {
	_c.mutation.SetDocumentPath(v)
	return _c
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableDocumentPath(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetDocumentPath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractJobCreate) SetErrorMessage(v string) *ExtractJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableErrorMessage(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractJobCreate) SetStartedAt(v time.Time) *ExtractJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableStartedAt(v *time.Time) *ExtractJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractJobCreate) SetFinishedAt(v time.Time) *ExtractJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableFinishedAt(v *time.Time) *ExtractJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractJobCreate) SetID(v uuid.UUID) *ExtractJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableID(v *uuid.UUID) *ExtractJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_c *ExtractJobCreate) Mutation() *ExtractJobMutation {
	return _c.mutation
}

// Save creates the ExtractJob in the database.
func (_c *ExtractJobCreate) Save(ctx context.Context) (*ExtractJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractJobCreate) SaveX(ctx context.Context) *ExtractJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractJobCreate) defaults() {
	if _, ok := _c.mutation.TableCount(); !ok {
		v := extractjob.DefaultTableCount
		_c.mutation.SetTableCount(v)
	}
	if _, ok := _c.mutation.ImageCount(); !ok {
		v := extractjob.DefaultImageCount
		_c.mutation.SetImageCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extractjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractJobCreate) check() error {
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "ExtractJob.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := extractjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputDir(); !ok {
		return &ValidationError{Name: "output_dir", err: errors.New(`ent: missing required field "ExtractJob.output_dir"`)}
	}
	if v, ok := _c.mutation.OutputDir(); ok {
		if err := extractjob.OutputDirValidator(v); err != nil {
			return &ValidationError{Name: "output_dir", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.output_dir": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := extractjob.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.classification": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := extractjob.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TableCount(); !ok {
		return &ValidationError{Name: "table_count", err: errors.New(`ent: missing required field "ExtractJob.table_count"`)}
	}
	if v, ok := _c.mutation.TableCount(); ok {
		if err := extractjob.TableCountValidator(v); err != nil {
			return &ValidationError{Name: "table_count", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.table_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageCount(); !ok {
		return &ValidationError{Name: "image_count", err: errors.New(`ent: missing required field "ExtractJob.image_count"`)}
	}
	if v, ok := _c.mutation.ImageCount(); ok {
		if err := extractjob.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.image_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractJob.started_at"`)}
	}
	return nil
}

func (_c *ExtractJobCreate) sqlSave(ctx context.Context) (*ExtractJob, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractJobCreate) createSpec() (*ExtractJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractjob.Table, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(extractjob.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.OutputDir(); ok {
		_spec.SetField(extractjob.FieldOutputDir, field.TypeString, value)
		_node.OutputDir = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(extractjob.FieldClassification, field.TypeString, value)
		_node.Classification = &value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(extractjob.FieldStrategy, field.TypeString, value)
		_node.Strategy = &value
	}
	if value, ok := _c.mutation.TableCount(); ok {
		_spec.SetField(extractjob.FieldTableCount, field.TypeInt, value)
		_node.TableCount = value
	}
	if value, ok := _c.mutation.ImageCount(); ok {
		_spec.SetField(extractjob.FieldImageCount, field.TypeInt, value)
		_node.ImageCount = value
	}
	if value, ok := _c.mutation.TablesPath(); ok {
		_spec.SetField(extractjob.FieldTablesPath, field.TypeString, value)
		_node.TablesPath = &value
	}
	if value, ok := _c.mutation.DocumentPath(); ok {
		_spec.SetField(extractjob.FieldDocumentPath, field.TypeString, value)
		_node.DocumentPath = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ExtractJobCreateBulk is the builder for creating many ExtractJob entities in bulk.
type ExtractJobCreateBulk struct {
	config
	err      error
	builders []*ExtractJobCreate
}

// Save creates the ExtractJob entities in the database.
func (_c *ExtractJobCreateBulk) Save(ctx context.Context) ([]*ExtractJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractJobMutation)
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
func (_c *ExtractJobCreateBulk) SaveX(ctx context.Context) []*ExtractJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
