// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/invoice"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/invoiceline"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/parsejob"
	"github.com/luis-carvajal/invoice-extractor/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdate) SetIssueDate(v string) *InvoiceUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIssueDate(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *InvoiceUpdate) SetSupplierName(v string) *InvoiceUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSupplierName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// SetSupplierTaxID sets the "supplier_tax_id" field.
func (_u *InvoiceUpdate) SetSupplierTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetSupplierTaxID(v)
	return _u
}

// SetNillableSupplierTaxID sets the "supplier_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSupplierTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSupplierTaxID(*v)
	}
	return _u
}

// ClearSupplierTaxID clears the value of the "supplier_tax_id" field.
func (_u *InvoiceUpdate) ClearSupplierTaxID() *InvoiceUpdate {
	_u.mutation.ClearSupplierTaxID()
	return _u
}

// SetSupplierAddress sets the "supplier_address" field.
func (_u *InvoiceUpdate) SetSupplierAddress(v string) *InvoiceUpdate {
	_u.mutation.SetSupplierAddress(v)
	return _u
}

// SetNillableSupplierAddress sets the "supplier_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSupplierAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSupplierAddress(*v)
	}
	return _u
}

// ClearSupplierAddress clears the value of the "supplier_address" field.
func (_u *InvoiceUpdate) ClearSupplierAddress() *InvoiceUpdate {
	_u.mutation.ClearSupplierAddress()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdate) SetCustomerName(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetCustomerTaxID sets the "customer_tax_id" field.
func (_u *InvoiceUpdate) SetCustomerTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerTaxID(v)
	return _u
}

// SetNillableCustomerTaxID sets the "customer_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerTaxID(*v)
	}
	return _u
}

// ClearCustomerTaxID clears the value of the "customer_tax_id" field.
func (_u *InvoiceUpdate) ClearCustomerTaxID() *InvoiceUpdate {
	_u.mutation.ClearCustomerTaxID()
	return _u
}

// SetCustomerAddress sets the "customer_address" field.
func (_u *InvoiceUpdate) SetCustomerAddress(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerAddress(v)
	return _u
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerAddress(*v)
	}
	return _u
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (_u *InvoiceUpdate) ClearCustomerAddress() *InvoiceUpdate {
	_u.mutation.ClearCustomerAddress()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v string) *InvoiceUpdate {
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceUpdate) SetTax(v string) *InvoiceUpdate {
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTax(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *InvoiceUpdate) ClearTax() *InvoiceUpdate {
	_u.mutation.ClearTax()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdate) SetTotal(v string) *InvoiceUpdate {
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotal(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *InvoiceUpdate) ClearTotal() *InvoiceUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdate) SetCurrencyCode(v string) *InvoiceUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrencyCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *InvoiceUpdate) ClearCurrencyCode() *InvoiceUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *InvoiceUpdate) SetTemplateName(v string) *InvoiceUpdate {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTemplateName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetExtra sets the "extra" field.
func (_u *InvoiceUpdate) SetExtra(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// AppendExtra appends value to the "extra" field.
func (_u *InvoiceUpdate) AppendExtra(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *InvoiceUpdate) ClearExtra() *InvoiceUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdate) SetRawText(v string) *InvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawText(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdate) ClearRawText() *InvoiceUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceUpdate) AddLineIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdate) AddLines(v ...*InvoiceLine) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *InvoiceUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *InvoiceUpdate) AddJobs(v ...*ParseJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdate) ClearLines() *InvoiceUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceUpdate) RemoveLineIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceUpdate) RemoveLines(v ...*InvoiceLine) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *InvoiceUpdate) ClearJobs() *InvoiceUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *InvoiceUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *InvoiceUpdate) RemoveJobs(v ...*ParseJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssueDate(); ok {
		if err := invoice.IssueDateValidator(v); err != nil {
			return &ValidationError{Name: "issue_date", err: fmt.Errorf(`ent: validator failed for field "Invoice.issue_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupplierName(); ok {
		if err := invoice.SupplierNameValidator(v); err != nil {
			return &ValidationError{Name: "supplier_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.supplier_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateName(); ok {
		if err := invoice.TemplateNameValidator(v); err != nil {
			return &ValidationError{Name: "template_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.template_name": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(invoice.FieldSupplierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplierTaxID(); ok {
		_spec.SetField(invoice.FieldSupplierTaxID, field.TypeString, value)
	}
	if _u.mutation.SupplierTaxIDCleared() {
		_spec.ClearField(invoice.FieldSupplierTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierAddress(); ok {
		_spec.SetField(invoice.FieldSupplierAddress, field.TypeString, value)
	}
	if _u.mutation.SupplierAddressCleared() {
		_spec.ClearField(invoice.FieldSupplierAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerTaxID(); ok {
		_spec.SetField(invoice.FieldCustomerTaxID, field.TypeString, value)
	}
	if _u.mutation.CustomerTaxIDCleared() {
		_spec.ClearField(invoice.FieldCustomerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerAddress(); ok {
		_spec.SetField(invoice.FieldCustomerAddress, field.TypeString, value)
	}
	if _u.mutation.CustomerAddressCleared() {
		_spec.ClearField(invoice.FieldCustomerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeString, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeString)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeString, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(invoice.FieldTax, field.TypeString)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeString, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(invoice.FieldTotal, field.TypeString)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(invoice.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(invoice.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(invoice.FieldExtra, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtra(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtra, value)
		})
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(invoice.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *InvoiceUpdateOne) SetIssueDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIssueDate(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *InvoiceUpdateOne) SetSupplierName(v string) *InvoiceUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSupplierName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// SetSupplierTaxID sets the "supplier_tax_id" field.
func (_u *InvoiceUpdateOne) SetSupplierTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetSupplierTaxID(v)
	return _u
}

// SetNillableSupplierTaxID sets the "supplier_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSupplierTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierTaxID(*v)
	}
	return _u
}

// ClearSupplierTaxID clears the value of the "supplier_tax_id" field.
func (_u *InvoiceUpdateOne) ClearSupplierTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearSupplierTaxID()
	return _u
}

// SetSupplierAddress sets the "supplier_address" field.
func (_u *InvoiceUpdateOne) SetSupplierAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetSupplierAddress(v)
	return _u
}

// SetNillableSupplierAddress sets the "supplier_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSupplierAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSupplierAddress(*v)
	}
	return _u
}

// ClearSupplierAddress clears the value of the "supplier_address" field.
func (_u *InvoiceUpdateOne) ClearSupplierAddress() *InvoiceUpdateOne {
	_u.mutation.ClearSupplierAddress()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdateOne) SetCustomerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// SetCustomerTaxID sets the "customer_tax_id" field.
func (_u *InvoiceUpdateOne) SetCustomerTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerTaxID(v)
	return _u
}

// SetNillableCustomerTaxID sets the "customer_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerTaxID(*v)
	}
	return _u
}

// ClearCustomerTaxID clears the value of the "customer_tax_id" field.
func (_u *InvoiceUpdateOne) ClearCustomerTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerTaxID()
	return _u
}

// SetCustomerAddress sets the "customer_address" field.
func (_u *InvoiceUpdateOne) SetCustomerAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerAddress(v)
	return _u
}

// SetNillableCustomerAddress sets the "customer_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerAddress(*v)
	}
	return _u
}

// ClearCustomerAddress clears the value of the "customer_address" field.
func (_u *InvoiceUpdateOne) ClearCustomerAddress() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerAddress()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v string) *InvoiceUpdateOne {
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceUpdateOne) SetTax(v string) *InvoiceUpdateOne {
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTax(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *InvoiceUpdateOne) ClearTax() *InvoiceUpdateOne {
	_u.mutation.ClearTax()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdateOne) SetTotal(v string) *InvoiceUpdateOne {
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotal(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *InvoiceUpdateOne) ClearTotal() *InvoiceUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdateOne) SetCurrencyCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *InvoiceUpdateOne) ClearCurrencyCode() *InvoiceUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *InvoiceUpdateOne) SetTemplateName(v string) *InvoiceUpdateOne {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTemplateName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetExtra sets the "extra" field.
func (_u *InvoiceUpdateOne) SetExtra(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// AppendExtra appends value to the "extra" field.
func (_u *InvoiceUpdateOne) AppendExtra(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *InvoiceUpdateOne) ClearExtra() *InvoiceUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdateOne) SetRawText(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawText(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *InvoiceUpdateOne) ClearRawText() *InvoiceUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddLineIDs adds the "lines" edge to the InvoiceLine entity by IDs.
func (_u *InvoiceUpdateOne) AddLineIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdateOne) AddLines(v ...*InvoiceLine) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *InvoiceUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *InvoiceUpdateOne) AddJobs(v ...*ParseJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearLines clears all "lines" edges to the InvoiceLine entity.
func (_u *InvoiceUpdateOne) ClearLines() *InvoiceUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to InvoiceLine entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLineIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to InvoiceLine entities.
func (_u *InvoiceUpdateOne) RemoveLines(v ...*InvoiceLine) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *InvoiceUpdateOne) ClearJobs() *InvoiceUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *InvoiceUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *InvoiceUpdateOne) RemoveJobs(v ...*ParseJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssueDate(); ok {
		if err := invoice.IssueDateValidator(v); err != nil {
			return &ValidationError{Name: "issue_date", err: fmt.Errorf(`ent: validator failed for field "Invoice.issue_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupplierName(); ok {
		if err := invoice.SupplierNameValidator(v); err != nil {
			return &ValidationError{Name: "supplier_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.supplier_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TemplateName(); ok {
		if err := invoice.TemplateNameValidator(v); err != nil {
			return &ValidationError{Name: "template_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.template_name": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(invoice.FieldSupplierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SupplierTaxID(); ok {
		_spec.SetField(invoice.FieldSupplierTaxID, field.TypeString, value)
	}
	if _u.mutation.SupplierTaxIDCleared() {
		_spec.ClearField(invoice.FieldSupplierTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierAddress(); ok {
		_spec.SetField(invoice.FieldSupplierAddress, field.TypeString, value)
	}
	if _u.mutation.SupplierAddressCleared() {
		_spec.ClearField(invoice.FieldSupplierAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerTaxID(); ok {
		_spec.SetField(invoice.FieldCustomerTaxID, field.TypeString, value)
	}
	if _u.mutation.CustomerTaxIDCleared() {
		_spec.ClearField(invoice.FieldCustomerTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerAddress(); ok {
		_spec.SetField(invoice.FieldCustomerAddress, field.TypeString, value)
	}
	if _u.mutation.CustomerAddressCleared() {
		_spec.ClearField(invoice.FieldCustomerAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeString, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeString)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeString, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(invoice.FieldTax, field.TypeString)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeString, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(invoice.FieldTotal, field.TypeString)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(invoice.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(invoice.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(invoice.FieldExtra, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtra(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldExtra, value)
		})
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(invoice.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(invoice.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LinesTable,
			Columns: []string{invoice.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
