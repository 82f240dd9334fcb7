package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/joseph-ayodele/docextract/constants"
	"github.com/joseph-ayodele/docextract/db/ent/schema/utils"

	"github.com/google/uuid"
)

// ExtractJob is one ledger row per processed document.
type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source_path").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("output_dir").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatusesAsStringSlice()...)),
		field.String("classification").Optional().Nillable().
			Validate(utils.EnumValidator(string(constants.Digital), string(constants.Scanned))),
		field.String("strategy").Optional().Nillable().
			Validate(utils.EnumValidator(constants.StrategiesAsStringSlice()...)),
		field.Int("table_count").NonNegative().Default(0),
		field.Int("image_count").NonNegative().Default(0),
		field.String("tables_path").Optional().Nillable(),
		field.String("document_path").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
		index.Fields("status", "started_at"),
	}
}
