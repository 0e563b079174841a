// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/audittax/audittax/db/ent/schema"
	"github.com/audittax/audittax/gen/ent/audit"
	"github.com/audittax/audittax/gen/ent/audititem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditFields := schema.Audit{}.Fields()
	_ = auditFields
	// auditDescDocumentKey is the schema descriptor for document_key field.
	auditDescDocumentKey := auditFields[1].Descriptor()
	// audit.DocumentKeyValidator is a validator for the "document_key" field. It is called by the builders before save.
	audit.DocumentKeyValidator = auditDescDocumentKey.Validators[0].(func(string) error)
	// auditDescFilename is the schema descriptor for filename field.
	auditDescFilename := auditFields[2].Descriptor()
	// audit.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	audit.FilenameValidator = auditDescFilename.Validators[0].(func(string) error)
	// auditDescStatus is the schema descriptor for status field.
	auditDescStatus := auditFields[3].Descriptor()
	// audit.DefaultStatus holds the default value on creation for the status field.
	audit.DefaultStatus = auditDescStatus.Default.(string)
	// audit.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	audit.StatusValidator = auditDescStatus.Validators[0].(func(string) error)
	// auditDescProgress is the schema descriptor for progress field.
	auditDescProgress := auditFields[4].Descriptor()
	// audit.DefaultProgress holds the default value on creation for the progress field.
	audit.DefaultProgress = auditDescProgress.Default.(int)
	// audit.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	audit.ProgressValidator = func() func(int) error {
		validators := auditDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditDescTotalItems is the schema descriptor for total_items field.
	auditDescTotalItems := auditFields[7].Descriptor()
	// audit.DefaultTotalItems holds the default value on creation for the total_items field.
	audit.DefaultTotalItems = auditDescTotalItems.Default.(int)
	// auditDescCreatedAt is the schema descriptor for created_at field.
	auditDescCreatedAt := auditFields[13].Descriptor()
	// audit.DefaultCreatedAt holds the default value on creation for the created_at field.
	audit.DefaultCreatedAt = auditDescCreatedAt.Default.(func() time.Time)
	// auditDescID is the schema descriptor for id field.
	auditDescID := auditFields[0].Descriptor()
	// audit.DefaultID holds the default value on creation for the id field.
	audit.DefaultID = auditDescID.Default.(func() uuid.UUID)
	audititemFields := schema.AuditItem{}.Fields()
	_ = audititemFields
	// audititemDescItemIndex is the schema descriptor for item_index field.
	audititemDescItemIndex := audititemFields[2].Descriptor()
	// audititem.ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	audititem.ItemIndexValidator = audititemDescItemIndex.Validators[0].(func(int) error)
	// audititemDescProductCode is the schema descriptor for product_code field.
	audititemDescProductCode := audititemFields[3].Descriptor()
	// audititem.ProductCodeValidator is a validator for the "product_code" field. It is called by the builders before save.
	audititem.ProductCodeValidator = audititemDescProductCode.Validators[0].(func(string) error)
	// audititemDescProductName is the schema descriptor for product_name field.
	audititemDescProductName := audititemFields[4].Descriptor()
	// audititem.ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	audititem.ProductNameValidator = audititemDescProductName.Validators[0].(func(string) error)
	// audititemDescStatus is the schema descriptor for status field.
	audititemDescStatus := audititemFields[5].Descriptor()
	// audititem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	audititem.StatusValidator = audititemDescStatus.Validators[0].(func(string) error)
	// audititemDescID is the schema descriptor for id field.
	audititemDescID := audititemFields[0].Descriptor()
	// audititem.DefaultID holds the default value on creation for the id field.
	audititem.DefaultID = audititemDescID.Default.(func() uuid.UUID)
}
