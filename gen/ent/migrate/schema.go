// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "output_dir", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString},
		{Name: "classification", Type: field.TypeString, Nullable: true},
		{Name: "strategy", Type: field.TypeString, Nullable: true},
		{Name: "table_count", Type: field.TypeInt, Default: 0},
		{Name: "image_count", Type: field.TypeInt, Default: 0},
		{Name: "tables_path", Type: field.TypeString, Nullable: true},
		{Name: "document_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[3], ExtractJobColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
	}
)

func init() {
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
}
