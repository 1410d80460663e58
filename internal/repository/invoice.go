package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luis-carvajal/invoice-extractor/gen/ent"
	entinvoice "github.com/luis-carvajal/invoice-extractor/gen/ent/invoice"
	entline "github.com/luis-carvajal/invoice-extractor/gen/ent/invoiceline"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/numeric"
	"github.com/luis-carvajal/invoice-extractor/internal/utils"
)

// ListFilter narrows ListInvoices. Zero values mean no constraint.
type ListFilter struct {
	InvoiceNumber string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, jobID uuid.UUID, inv *entity.Invoice, templateName string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Invoice, []*ent.InvoiceLine, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

// SaveInvoice writes the invoice and its lines in one transaction and links
// the originating parse job when jobID is set.
func (r *invoiceRepository) SaveInvoice(ctx context.Context, jobID uuid.UUID, inv *entity.Invoice, templateName string) (uuid.UUID, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := r.saveTx(ctx, tx, jobID, inv, templateName)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error("rollback failed", "error", rbErr)
		}
		r.logger.Error("failed to save invoice", "invoice_number", inv.InvoiceNumber, "error", err)
		return uuid.Nil, err
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	r.logger.Info("invoice saved", "invoice_id", id, "invoice_number", inv.InvoiceNumber, "lines", len(inv.Lines))
	return id, nil
}

func (r *invoiceRepository) saveTx(ctx context.Context, tx *ent.Tx, jobID uuid.UUID, inv *entity.Invoice, templateName string) (uuid.UUID, error) {
	builder := tx.Invoice.Create().
		SetInvoiceNumber(inv.InvoiceNumber).
		SetIssueDate(inv.IssueDate).
		SetSupplierName(inv.Supplier.Name).
		SetNillableSupplierTaxID(inv.Supplier.TaxID).
		SetNillableSupplierAddress(inv.Supplier.Address).
		SetCustomerName(inv.Customer.Name).
		SetNillableCustomerTaxID(inv.Customer.TaxID).
		SetNillableCustomerAddress(inv.Customer.Address).
		SetTemplateName(templateName).
		SetRawText(inv.RawText)

	if inv.Totals != nil {
		builder = builder.
			SetSubtotal(numeric.FormatMoney(inv.Totals.Subtotal)).
			SetTax(numeric.FormatMoney(inv.Totals.Tax)).
			SetTotal(numeric.FormatMoney(inv.Totals.Total)).
			SetCurrencyCode(inv.Totals.CurrencyCode)
	}
	if len(inv.Extra) > 0 {
		extra, err := json.Marshal(inv.Extra)
		if err != nil {
			return uuid.Nil, fmt.Errorf("marshal extra: %w", err)
		}
		builder = builder.SetExtra(extra)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	for i, l := range inv.Lines {
		_, err := tx.InvoiceLine.Create().
			SetInvoiceID(row.ID).
			SetLineIndex(i).
			SetDescription(l.Description).
			SetQuantity(l.Quantity.String()).
			SetUnitPrice(l.UnitPrice.String()).
			SetTotal(numeric.FormatMoney(l.Total)).
			Save(ctx)
		if err != nil {
			return uuid.Nil, fmt.Errorf("line %d: %w", i, err)
		}
	}

	if jobID != uuid.Nil {
		if err := tx.ParseJob.UpdateOneID(jobID).SetInvoiceID(row.ID).Exec(ctx); err != nil {
			return uuid.Nil, fmt.Errorf("link job: %w", err)
		}
	}
	return row.ID, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Invoice, []*ent.InvoiceLine, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	lines, err := r.lines(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return row, lines, nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, filter ListFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if filter.InvoiceNumber != "" {
		q = q.Where(entinvoice.InvoiceNumber(filter.InvoiceNumber))
	}
	if filter.CreatedFrom != nil {
		q = q.Where(entinvoice.CreatedAtGTE(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		q = q.Where(entinvoice.CreatedAtLTE(*filter.CreatedTo))
	}
	rows, err := q.Order(entinvoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		lines, err := r.lines(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		result[i] = utils.ToInvoice(row, lines)
	}
	return result, nil
}

func (r *invoiceRepository) lines(ctx context.Context, invoiceID uuid.UUID) ([]*ent.InvoiceLine, error) {
	return r.client.InvoiceLine.Query().
		Where(entline.InvoiceID(invoiceID)).
		Order(entline.ByLineIndex()).
		All(ctx)
}
