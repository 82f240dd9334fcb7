// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractjob type in the database.
	Label = "extract_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldOutputDir holds the string denoting the output_dir field in the database.
	FieldOutputDir = "output_dir"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldTableCount holds the string denoting the table_count field in the database.
	FieldTableCount = "table_count"
	// FieldImageCount holds the string denoting the image_count field in the database.
	FieldImageCount = "image_count"
	// FieldTablesPath holds the string denoting the tables_path field in the database.
	FieldTablesPath = "tables_path"
	// FieldDocumentPath holds the string denoting the document_path field in the database.
	FieldDocumentPath = "document_path"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the extractjob in the database.
	Table = "extract_job"
)

// Columns holds all SQL columns for extractjob fields.
var Columns = []string{
	FieldID,
	FieldSourcePath,
	FieldOutputDir,
	FieldStatus,
	FieldClassification,
	FieldStrategy,
	FieldTableCount,
	FieldImageCount,
	FieldTablesPath,
	FieldDocumentPath,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// OutputDirValidator is a validator for the "output_dir" field. It is called by the builders before save.
	OutputDirValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	ClassificationValidator func(string) error
	// StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	StrategyValidator func(string) error
	// DefaultTableCount holds the default value on creation for the "table_count" field.
	DefaultTableCount int
	// TableCountValidator is a validator for the "table_count" field. It is called by the builders before save.
	TableCountValidator func(int) error
	// DefaultImageCount holds the default value on creation for the "image_count" field.
	DefaultImageCount int
	// ImageCountValidator is a validator for the "image_count" field. It is called by the builders before save.
	ImageCountValidator func(int) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByOutputDir orders the results by the output_dir field.
func ByOutputDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDir, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByTableCount orders the results by the table_count field.
func ByTableCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableCount, opts...).ToFunc()
}

// ByImageCount orders the results by the image_count field.
func ByImageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageCount, opts...).ToFunc()
}

// ByTablesPath orders the results by the tables_path field.
func ByTablesPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTablesPath, opts...).ToFunc()
}

// ByDocumentPath orders the results by the document_path field.
func ByDocumentPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentPath, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
