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
	"github.com/joseph-ayodele/docextract/gen/ent/extractjob"
	"github.com/joseph-ayodele/docextract/gen/ent/predicate"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ExtractJobUpdate) SetSourcePath(v string) *ExtractJobUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableSourcePath(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *ExtractJobUpdate) SetOutputDir(v string) *ExtractJobUpdate {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableOutputDir(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdate) SetStatus(v string) *ExtractJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStatus(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ExtractJobUpdate) SetClassification(v string) *ExtractJobUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableClassification(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *ExtractJobUpdate) ClearClassification() *ExtractJobUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ExtractJobUpdate) SetStrategy(v string) *ExtractJobUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStrategy(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// ClearStrategy clears the value of the "strategy" field.
func (_u *ExtractJobUpdate) ClearStrategy() *ExtractJobUpdate {
	_u.mutation.ClearStrategy()
	return _u
}

// SetTableCount sets the "table_count" field.
func (_u *ExtractJobUpdate) SetTableCount(v int) *ExtractJobUpdate {
	_u.mutation.ResetTableCount()
	_u.mutation.SetTableCount(v)
	return _u
}

// SetNillableTableCount sets the "table_count" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableTableCount(v *int) *ExtractJobUpdate {
	if v != nil {
		_u.SetTableCount(*v)
	}
	return _u
}

// AddTableCount adds value to the "table_count" field.
func (_u *ExtractJobUpdate) AddTableCount(v int) *ExtractJobUpdate {
	_u.mutation.AddTableCount(v)
	return _u
}

// SetImageCount sets the "image_count" field.
func (_u *ExtractJobUpdate) SetImageCount(v int) *ExtractJobUpdate {
	_u.mutation.ResetImageCount()
	_u.mutation.SetImageCount(v)
	return _u
}

// SetNillableImageCount sets the "image_count" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableImageCount(v *int) *ExtractJobUpdate {
	if v != nil {
		_u.SetImageCount(*v)
	}
	return _u
}

// AddImageCount adds value to the "image_count" field.
func (_u *ExtractJobUpdate) AddImageCount(v int) *ExtractJobUpdate {
	_u.mutation.AddImageCount(v)
	return _u
}

// SetTablesPath sets the "tables_path" field.
func (_u *ExtractJobUpdate) SetTablesPath(v string) *ExtractJobUpdate {
	_u.mutation.SetTablesPath(v)
	return _u
}

// SetNillableTablesPath sets the "tables_path" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableTablesPath(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetTablesPath(*v)
	}
	return _u
}

// ClearTablesPath clears the value of the "tables_path" field.
func (_u *ExtractJobUpdate) ClearTablesPath() *ExtractJobUpdate {
	_u.mutation.ClearTablesPath()
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *ExtractJobUpdate) SetDocumentPath(v string) *ExtractJobUpdate {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableDocumentPath(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *ExtractJobUpdate) ClearDocumentPath() *ExtractJobUpdate {
	_u.mutation.ClearDocumentPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdate) SetErrorMessage(v string) *ExtractJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableErrorMessage(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdate) SetFinishedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := extractjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputDir(); ok {
		if err := extractjob.OutputDirValidator(v); err != nil {
			return &ValidationError{Name: "output_dir", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.output_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := extractjob.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := extractjob.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TableCount(); ok {
		if err := extractjob.TableCountValidator(v); err != nil {
			return &ValidationError{Name: "table_count", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.table_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageCount(); ok {
		if err := extractjob.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.image_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(extractjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(extractjob.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(extractjob.FieldClassification, field.TypeString, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(extractjob.FieldClassification, field.TypeString)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(extractjob.FieldStrategy, field.TypeString, value)
	}
	if _u.mutation.StrategyCleared() {
		_spec.ClearField(extractjob.FieldStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.TableCount(); ok {
		_spec.SetField(extractjob.FieldTableCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTableCount(); ok {
		_spec.AddField(extractjob.FieldTableCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageCount(); ok {
		_spec.SetField(extractjob.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageCount(); ok {
		_spec.AddField(extractjob.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TablesPath(); ok {
		_spec.SetField(extractjob.FieldTablesPath, field.TypeString, value)
	}
	if _u.mutation.TablesPathCleared() {
		_spec.ClearField(extractjob.FieldTablesPath, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(extractjob.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(extractjob.FieldDocumentPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetSourcePath sets the "source_path" field.
func (_u *ExtractJobUpdateOne) SetSourcePath(v string) *ExtractJobUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableSourcePath(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *ExtractJobUpdateOne) SetOutputDir(v string) *ExtractJobUpdateOne {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableOutputDir(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdateOne) SetStatus(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStatus(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *ExtractJobUpdateOne) SetClassification(v string) *ExtractJobUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableClassification(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *ExtractJobUpdateOne) ClearClassification() *ExtractJobUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ExtractJobUpdateOne) SetStrategy(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStrategy(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// ClearStrategy clears the value of the "strategy" field.
func (_u *ExtractJobUpdateOne) ClearStrategy() *ExtractJobUpdateOne {
	_u.mutation.ClearStrategy()
	return _u
}

// SetTableCount sets the "table_count" field.
func (_u *ExtractJobUpdateOne) SetTableCount(v int) *ExtractJobUpdateOne {
	_u.mutation.ResetTableCount()
	_u.mutation.SetTableCount(v)
	return _u
}

// SetNillableTableCount sets the "table_count" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableTableCount(v *int) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetTableCount(*v)
	}
	return _u
}

// AddTableCount adds value to the "table_count" field.
func (_u *ExtractJobUpdateOne) AddTableCount(v int) *ExtractJobUpdateOne {
	_u.mutation.AddTableCount(v)
	return _u
}

// SetImageCount sets the "image_count" field.
func (_u *ExtractJobUpdateOne) SetImageCount(v int) *ExtractJobUpdateOne {
	_u.mutation.ResetImageCount()
	_u.mutation.SetImageCount(v)
	return _u
}

// SetNillableImageCount sets the "image_count" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableImageCount(v *int) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetImageCount(*v)
	}
	return _u
}

// AddImageCount adds value to the "image_count" field.
func (_u *ExtractJobUpdateOne) AddImageCount(v int) *ExtractJobUpdateOne {
	_u.mutation.AddImageCount(v)
	return _u
}

// SetTablesPath sets the "tables_path" field.
func (_u *ExtractJobUpdateOne) SetTablesPath(v string) *ExtractJobUpdateOne {
	_u.mutation.SetTablesPath(v)
	return _u
}

// SetNillableTablesPath sets the "tables_path" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableTablesPath(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetTablesPath(*v)
	}
	return _u
}

// ClearTablesPath clears the value of the "tables_path" field.
func (_u *ExtractJobUpdateOne) ClearTablesPath() *ExtractJobUpdateOne {
	_u.mutation.ClearTablesPath()
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *ExtractJobUpdateOne) SetDocumentPath(v string) *ExtractJobUpdateOne {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableDocumentPath(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *ExtractJobUpdateOne) ClearDocumentPath() *ExtractJobUpdateOne {
	_u.mutation.ClearDocumentPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdateOne) SetErrorMessage(v string) *ExtractJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdateOne) SetFinishedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractJob entity.
func (_u *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := extractjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputDir(); ok {
		if err := extractjob.OutputDirValidator(v); err != nil {
			return &ValidationError{Name: "output_dir", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.output_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := extractjob.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := extractjob.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TableCount(); ok {
		if err := extractjob.TableCountValidator(v); err != nil {
			return &ValidationError{Name: "table_count", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.table_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageCount(); ok {
		if err := extractjob.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.image_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(extractjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(extractjob.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(extractjob.FieldClassification, field.TypeString, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(extractjob.FieldClassification, field.TypeString)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(extractjob.FieldStrategy, field.TypeString, value)
	}
	if _u.mutation.StrategyCleared() {
		_spec.ClearField(extractjob.FieldStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.TableCount(); ok {
		_spec.SetField(extractjob.FieldTableCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTableCount(); ok {
		_spec.AddField(extractjob.FieldTableCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageCount(); ok {
		_spec.SetField(extractjob.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImageCount(); ok {
		_spec.AddField(extractjob.FieldImageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TablesPath(); ok {
		_spec.SetField(extractjob.FieldTablesPath, field.TypeString, value)
	}
	if _u.mutation.TablesPathCleared() {
		_spec.ClearField(extractjob.FieldTablesPath, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(extractjob.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(extractjob.FieldDocumentPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &ExtractJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
