// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/luis-carvajal/invoice-extractor/db/ent/schema"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/invoice"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/invoicefile"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/invoiceline"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/parsejob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[1].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescIssueDate is the schema descriptor for issue_date field.
	invoiceDescIssueDate := invoiceFields[2].Descriptor()
	// invoice.IssueDateValidator is a validator for the "issue_date" field. It is called by the builders before save.
	invoice.IssueDateValidator = invoiceDescIssueDate.Validators[0].(func(string) error)
	// invoiceDescSupplierName is the schema descriptor for supplier_name field.
	invoiceDescSupplierName := invoiceFields[3].Descriptor()
	// invoice.SupplierNameValidator is a validator for the "supplier_name" field. It is called by the builders before save.
	invoice.SupplierNameValidator = invoiceDescSupplierName.Validators[0].(func(string) error)
	// invoiceDescCustomerName is the schema descriptor for customer_name field.
	invoiceDescCustomerName := invoiceFields[6].Descriptor()
	// invoice.CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	invoice.CustomerNameValidator = invoiceDescCustomerName.Validators[0].(func(string) error)
	// invoiceDescTemplateName is the schema descriptor for template_name field.
	invoiceDescTemplateName := invoiceFields[13].Descriptor()
	// invoice.TemplateNameValidator is a validator for the "template_name" field. It is called by the builders before save.
	invoice.TemplateNameValidator = invoiceDescTemplateName.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[16].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[17].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicefileFields := schema.InvoiceFile{}.Fields()
	_ = invoicefileFields
	// invoicefileDescSourcePath is the schema descriptor for source_path field.
	invoicefileDescSourcePath := invoicefileFields[1].Descriptor()
	// invoicefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoicefile.SourcePathValidator = invoicefileDescSourcePath.Validators[0].(func(string) error)
	// invoicefileDescContentHash is the schema descriptor for content_hash field.
	invoicefileDescContentHash := invoicefileFields[2].Descriptor()
	// invoicefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoicefile.ContentHashValidator = invoicefileDescContentHash.Validators[0].(func([]byte) error)
	// invoicefileDescFilename is the schema descriptor for filename field.
	invoicefileDescFilename := invoicefileFields[3].Descriptor()
	// invoicefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicefile.FilenameValidator = invoicefileDescFilename.Validators[0].(func(string) error)
	// invoicefileDescFileExt is the schema descriptor for file_ext field.
	invoicefileDescFileExt := invoicefileFields[4].Descriptor()
	// invoicefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoicefile.FileExtValidator = invoicefileDescFileExt.Validators[0].(func(string) error)
	// invoicefileDescFileSize is the schema descriptor for file_size field.
	invoicefileDescFileSize := invoicefileFields[5].Descriptor()
	// invoicefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	invoicefile.FileSizeValidator = invoicefileDescFileSize.Validators[0].(func(int) error)
	// invoicefileDescUploadedAt is the schema descriptor for uploaded_at field.
	invoicefileDescUploadedAt := invoicefileFields[6].Descriptor()
	// invoicefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoicefile.DefaultUploadedAt = invoicefileDescUploadedAt.Default.(func() time.Time)
	// invoicefileDescID is the schema descriptor for id field.
	invoicefileDescID := invoicefileFields[0].Descriptor()
	// invoicefile.DefaultID holds the default value on creation for the id field.
	invoicefile.DefaultID = invoicefileDescID.Default.(func() uuid.UUID)
	invoicelineFields := schema.InvoiceLine{}.Fields()
	_ = invoicelineFields
	// invoicelineDescLineIndex is the schema descriptor for line_index field.
	invoicelineDescLineIndex := invoicelineFields[2].Descriptor()
	// invoiceline.LineIndexValidator is a validator for the "line_index" field. It is called by the builders before save.
	invoiceline.LineIndexValidator = invoicelineDescLineIndex.Validators[0].(func(int) error)
	// invoicelineDescDescription is the schema descriptor for description field.
	invoicelineDescDescription := invoicelineFields[3].Descriptor()
	// invoiceline.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceline.DescriptionValidator = invoicelineDescDescription.Validators[0].(func(string) error)
	// invoicelineDescQuantity is the schema descriptor for quantity field.
	invoicelineDescQuantity := invoicelineFields[4].Descriptor()
	// invoiceline.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	invoiceline.QuantityValidator = invoicelineDescQuantity.Validators[0].(func(string) error)
	// invoicelineDescUnitPrice is the schema descriptor for unit_price field.
	invoicelineDescUnitPrice := invoicelineFields[5].Descriptor()
	// invoiceline.UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	invoiceline.UnitPriceValidator = invoicelineDescUnitPrice.Validators[0].(func(string) error)
	// invoicelineDescTotal is the schema descriptor for total field.
	invoicelineDescTotal := invoicelineFields[6].Descriptor()
	// invoiceline.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	invoiceline.TotalValidator = invoicelineDescTotal.Validators[0].(func(string) error)
	// invoicelineDescID is the schema descriptor for id field.
	invoicelineDescID := invoicelineFields[0].Descriptor()
	// invoiceline.DefaultID holds the default value on creation for the id field.
	invoiceline.DefaultID = invoicelineDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescSourcePath is the schema descriptor for source_path field.
	parsejobDescSourcePath := parsejobFields[3].Descriptor()
	// parsejob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	parsejob.SourcePathValidator = parsejobDescSourcePath.Validators[0].(func(string) error)
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[4].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStatus is the schema descriptor for status field.
	parsejobDescStatus := parsejobFields[5].Descriptor()
	// parsejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parsejob.StatusValidator = func() func(string) error {
		validators := parsejobDescStatus.Validators
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
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[7].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
}
