// Package assemble merges the fragments a template extracts into the final
// immutable invoice record. It performs shape validation and sentinel
// defaulting only; no field inference happens here.
package assemble

import (
	"github.com/shopspring/decimal"

	"github.com/luis-carvajal/invoice-extractor/constants"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
)

// mismatchThreshold is the relative difference between the line-item sum and
// the reported grand total above which the record is flagged.
var mismatchThreshold = decimal.NewFromFloat(0.01)

// Fragments carries everything a template managed to extract from one
// document. Optional values are nil when the field could not be located;
// absence of any one of them is never an error.
type Fragments struct {
	InvoiceNumber string
	IssueDate     string

	Supplier *entity.Party
	Customer *entity.Party

	Lines []entity.LineItem

	ReportedSubtotal *decimal.Decimal
	ReportedTax      *decimal.Decimal
	ReportedTotal    *decimal.Decimal

	// CurrencyCode as reported by the document; empty falls back to
	// DefaultCurrency.
	CurrencyCode    string
	DefaultCurrency string

	Extra   entity.Extra
	RawText string
}

// Record builds the invoice from fragments. Missing required strings get
// sentinels, the line-item sum is reconciled against the reported total, and
// the extra bag is packaged as-is plus the reconciliation diagnostics.
func Record(f Fragments) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNumber: orSentinel(f.InvoiceNumber, constants.SentinelUnknown),
		IssueDate:     orSentinel(f.IssueDate, constants.SentinelUnknown),
		Supplier:      party(f.Supplier, constants.SentinelSupplier),
		Customer:      party(f.Customer, constants.SentinelCustomer),
		Lines:         f.Lines,
		RawText:       f.RawText,
		Extra:         f.Extra,
	}

	for i := range inv.Lines {
		if inv.Lines[i].Description == "" {
			inv.Lines[i].Description = constants.SentinelItem
		}
	}

	lineSum := decimal.Zero
	for _, l := range inv.Lines {
		lineSum = lineSum.Add(l.Total)
	}

	inv.Totals = totals(f, lineSum)
	inv.Extra = reconcile(inv.Extra, lineSum, f.ReportedTotal)
	return inv
}

// totals decides the authoritative amounts. A strictly positive line-item
// sum wins over a separately reported grand total.
func totals(f Fragments, lineSum decimal.Decimal) *entity.Totals {
	hasReported := f.ReportedSubtotal != nil || f.ReportedTax != nil || f.ReportedTotal != nil
	if lineSum.Sign() <= 0 && !hasReported {
		return nil
	}

	t := entity.Totals{CurrencyCode: f.CurrencyCode}
	if t.CurrencyCode == "" {
		t.CurrencyCode = f.DefaultCurrency
	}

	switch {
	case lineSum.Sign() > 0:
		t.Total = lineSum
	case f.ReportedTotal != nil:
		t.Total = *f.ReportedTotal
	}
	if f.ReportedSubtotal != nil {
		t.Subtotal = *f.ReportedSubtotal
	} else {
		t.Subtotal = t.Total
	}
	if f.ReportedTax != nil {
		t.Tax = *f.ReportedTax
	}
	return &t
}

// reconcile records the drift between summed line items and the reported
// grand total, flagging a mismatch above the 1% threshold.
func reconcile(extra entity.Extra, lineSum decimal.Decimal, reported *decimal.Decimal) entity.Extra {
	if lineSum.Sign() <= 0 || reported == nil {
		return extra
	}
	diff := lineSum.Sub(*reported).Abs()
	extra = extra.Set("total_lines_sum", entity.DecimalValue(lineSum))
	extra = extra.Set("total_reported_diff", entity.DecimalValue(diff))
	if reported.Sign() != 0 {
		ratio := diff.Div(*reported)
		extra = extra.Set("total_reported_ratio", entity.DecimalValue(ratio))
		if ratio.GreaterThan(mismatchThreshold) {
			extra = extra.Set("total_mismatch_flag", entity.BoolValue(true))
		}
	}
	return extra
}

func party(p *entity.Party, sentinel string) entity.Party {
	if p == nil {
		return entity.Party{Name: sentinel}
	}
	out := *p
	if out.Name == "" {
		out.Name = sentinel
	}
	return out
}

func orSentinel(s, sentinel string) string {
	if s == "" {
		return sentinel
	}
	return s
}
