// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "issue_date", Type: field.TypeString},
		{Name: "supplier_name", Type: field.TypeString},
		{Name: "supplier_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "supplier_address", Type: field.TypeString, Nullable: true},
		{Name: "customer_name", Type: field.TypeString},
		{Name: "customer_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "customer_address", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "tax", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "total", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "template_name", Type: field.TypeString},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1]},
			},
			{
				Name:    "invoice_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[16]},
			},
		},
	}
	// InvoiceFilesColumns holds the columns for the "invoice_files" table.
	InvoiceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// InvoiceFilesTable holds the schema information for the "invoice_files" table.
	InvoiceFilesTable = &schema.Table{
		Name:       "invoice_files",
		Columns:    InvoiceFilesColumns,
		PrimaryKey: []*schema.Column{InvoiceFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoicefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoiceFilesColumns[2]},
			},
			{
				Name:    "invoicefile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceFilesColumns[6]},
			},
		},
	}
	// InvoiceLinesColumns holds the columns for the "invoice_lines" table.
	InvoiceLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "line_index", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "unit_price", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(14,4)"}},
		{Name: "total", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceLinesTable holds the schema information for the "invoice_lines" table.
	InvoiceLinesTable = &schema.Table{
		Name:       "invoice_lines",
		Columns:    InvoiceLinesColumns,
		PrimaryKey: []*schema.Column{InvoiceLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_lines_invoices_lines",
				Columns:    []*schema.Column{InvoiceLinesColumns[6]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceline_invoice_id_line_index",
				Unique:  true,
				Columns: []*schema.Column{InvoiceLinesColumns[6], InvoiceLinesColumns[1]},
			},
		},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "template_name", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID, Nullable: true},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_invoices_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[9]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_jobs_invoice_files_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[10]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[3], ParseJobsColumns[5]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[10]},
			},
			{
				Name:    "parsejob_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
		InvoiceFilesTable,
		InvoiceLinesTable,
		ParseJobsTable,
	}
)

func init() {
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceFilesTable.Annotation = &entsql.Annotation{
		Table: "invoice_files",
	}
	InvoiceLinesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceLinesTable.Annotation = &entsql.Annotation{
		Table: "invoice_lines",
	}
	ParseJobsTable.ForeignKeys[0].RefTable = InvoicesTable
	ParseJobsTable.ForeignKeys[1].RefTable = InvoiceFilesTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
}
