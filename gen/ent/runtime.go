// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docextract/db/ent/schema"
	"github.com/joseph-ayodele/docextract/gen/ent/extractjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescSourcePath is the schema descriptor for source_path field.
	extractjobDescSourcePath := extractjobFields[1].Descriptor()
	// extractjob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	extractjob.SourcePathValidator = extractjobDescSourcePath.Validators[0].(func(string) error)
	// extractjobDescOutputDir is the schema descriptor for output_dir field.
	extractjobDescOutputDir := extractjobFields[2].Descriptor()
	// extractjob.OutputDirValidator is a validator for the "output_dir" field. It is called by the builders before save.
	extractjob.OutputDirValidator = extractjobDescOutputDir.Validators[0].(func(string) error)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[3].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = func() func(string) error {
		validators := extractjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescClassification is the schema descriptor for classification field.
	extractjobDescClassification := extractjobFields[4].Descriptor()
	// extractjob.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	extractjob.ClassificationValidator = extractjobDescClassification.Validators[0].(func(string) error)
	// extractjobDescStrategy is the schema descriptor for strategy field.
	extractjobDescStrategy := extractjobFields[5].Descriptor()
	// extractjob.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	extractjob.StrategyValidator = extractjobDescStrategy.Validators[0].(func(string) error)
	// extractjobDescTableCount is the schema descriptor for table_count field.
	extractjobDescTableCount := extractjobFields[6].Descriptor()
	// extractjob.DefaultTableCount holds the default value on creation for the table_count field.
	extractjob.DefaultTableCount = extractjobDescTableCount.Default.(int)
	// extractjob.TableCountValidator is a validator for the "table_count" field. It is called by the builders before save.
	extractjob.TableCountValidator = extractjobDescTableCount.Validators[0].(func(int) error)
	// extractjobDescImageCount is the schema descriptor for image_count field.
	extractjobDescImageCount := extractjobFields[7].Descriptor()
	// extractjob.DefaultImageCount holds the default value on creation for the image_count field.
	extractjob.DefaultImageCount = extractjobDescImageCount.Default.(int)
	// extractjob.ImageCountValidator is a validator for the "image_count" field. It is called by the builders before save.
	extractjob.ImageCountValidator = extractjobDescImageCount.Validators[0].(func(int) error)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[11].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
}
