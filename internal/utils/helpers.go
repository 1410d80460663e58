package utils

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luis-carvajal/invoice-extractor/gen/ent"
	invoicespb "github.com/luis-carvajal/invoice-extractor/gen/proto/invoices/v1"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/numeric"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToInvoice rebuilds the domain record from its stored rows. Lines must be
// ordered by line_index.
func ToInvoice(e *ent.Invoice, lines []*ent.InvoiceLine) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNumber: e.InvoiceNumber,
		IssueDate:     e.IssueDate,
		Supplier: entity.Party{
			Name:    e.SupplierName,
			TaxID:   e.SupplierTaxID,
			Address: e.SupplierAddress,
		},
		Customer: entity.Party{
			Name:    e.CustomerName,
			TaxID:   e.CustomerTaxID,
			Address: e.CustomerAddress,
		},
		RawText: e.RawText,
	}
	if e.Total != nil {
		inv.Totals = &entity.Totals{
			Subtotal:     dec(strOrEmpty(e.Subtotal)),
			Tax:          dec(strOrEmpty(e.Tax)),
			Total:        dec(*e.Total),
			CurrencyCode: strOrEmpty(e.CurrencyCode),
		}
	}
	for _, l := range lines {
		inv.Lines = append(inv.Lines, entity.LineItem{
			Description: l.Description,
			Quantity:    dec(l.Quantity),
			UnitPrice:   dec(l.UnitPrice),
			Total:       dec(l.Total),
		})
	}
	if len(e.Extra) > 0 {
		var extra entity.Extra
		if err := json.Unmarshal(e.Extra, &extra); err == nil {
			inv.Extra = extra
		}
	}
	return inv
}

func ToPBParty(p entity.Party) *invoicespb.Party {
	return &invoicespb.Party{
		Name:    p.Name,
		TaxId:   strOrEmpty(p.TaxID),
		Address: strOrEmpty(p.Address),
	}
}

func ToPBInvoiceFromEntity(inv *entity.Invoice) *invoicespb.Invoice {
	out := &invoicespb.Invoice{
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate,
		Supplier:      ToPBParty(inv.Supplier),
		Customer:      ToPBParty(inv.Customer),
	}
	if inv.Totals != nil {
		out.Totals = &invoicespb.Totals{
			Subtotal:     numeric.FormatMoney(inv.Totals.Subtotal),
			Tax:          numeric.FormatMoney(inv.Totals.Tax),
			Total:        numeric.FormatMoney(inv.Totals.Total),
			CurrencyCode: inv.Totals.CurrencyCode,
		}
	}
	for _, l := range inv.Lines {
		out.Lines = append(out.Lines, &invoicespb.LineItem{
			Description: l.Description,
			Quantity:    l.Quantity.String(),
			UnitPrice:   numeric.FormatMoney(l.UnitPrice),
			Total:       numeric.FormatMoney(l.Total),
		})
	}
	if len(inv.Extra) > 0 {
		if b, err := json.Marshal(inv.Extra); err == nil {
			out.ExtraJson = string(b)
		}
	}
	return out
}

func ToPBInvoice(e *ent.Invoice, lines []*ent.InvoiceLine) *invoicespb.Invoice {
	out := ToPBInvoiceFromEntity(ToInvoice(e, lines))
	out.Id = e.ID.String()
	out.TemplateName = e.TemplateName
	out.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339)
	out.UpdatedAt = e.UpdatedAt.UTC().Format(time.RFC3339)
	return out
}
