// Package export renders parsed invoices into delivery formats: an XLSX
// workbook with a grand-total row, and a flat JSON summary.
package export

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/numeric"
)

// Row is one summary line of the export. Weights and amounts stay as
// decimals until rendering so the TOTAL row sums exactly.
type Row struct {
	InvoiceNumber string
	IssueDate     string
	Pallets       int64
	NetWeight     decimal.Decimal
	GrossWeight   decimal.Decimal
	Total         decimal.Decimal
	CurrencyCode  string
	Mismatch      bool
}

// BuildRows flattens invoices into summary rows plus the grand-total row.
// Package counts and weights come from the extra bag when the template
// reported them; missing values contribute zero to the totals.
func BuildRows(invoices []*entity.Invoice) ([]Row, Row) {
	rows := make([]Row, 0, len(invoices))
	grand := Row{InvoiceNumber: "TOTAL"}

	for _, inv := range invoices {
		r := Row{
			InvoiceNumber: inv.InvoiceNumber,
			IssueDate:     inv.IssueDate,
		}
		if v, ok := inv.Extra.Get("nr_of_pack_pallets"); ok {
			r.Pallets = v.Int()
		}
		if v, ok := inv.Extra.Get("net_weight"); ok {
			r.NetWeight = v.Decimal()
		}
		if v, ok := inv.Extra.Get("gross_weight"); ok {
			r.GrossWeight = v.Decimal()
		}
		if v, ok := inv.Extra.Get("total_mismatch_flag"); ok {
			r.Mismatch = v.Bool()
		}
		if inv.Totals != nil {
			r.Total = inv.Totals.Total
			r.CurrencyCode = inv.Totals.CurrencyCode
		}

		grand.Pallets += r.Pallets
		grand.NetWeight = grand.NetWeight.Add(r.NetWeight)
		grand.GrossWeight = grand.GrossWeight.Add(r.GrossWeight)
		grand.Total = grand.Total.Add(r.Total)
		if grand.CurrencyCode == "" {
			grand.CurrencyCode = r.CurrencyCode
		}
		rows = append(rows, r)
	}
	return rows, grand
}

type jsonRow struct {
	InvoiceNumber string `json:"invoice_number"`
	IssueDate     string `json:"issue_date,omitempty"`
	Pallets       int64  `json:"nr_of_pack_pallets"`
	NetWeight     string `json:"net_weight"`
	GrossWeight   string `json:"gross_weight"`
	Total         string `json:"total"`
	CurrencyCode  string `json:"currency_code,omitempty"`
	Mismatch      bool   `json:"total_mismatch_flag,omitempty"`
}

type jsonSummary struct {
	Invoices []jsonRow `json:"invoices"`
	Totals   jsonRow   `json:"totals"`
}

// MarshalJSON renders the summary with fixed-point strings, four places for
// weights and two for amounts.
func MarshalJSON(invoices []*entity.Invoice) ([]byte, error) {
	rows, grand := BuildRows(invoices)
	out := jsonSummary{
		Invoices: make([]jsonRow, len(rows)),
		Totals:   toJSONRow(grand),
	}
	for i, r := range rows {
		out.Invoices[i] = toJSONRow(r)
	}
	return json.MarshalIndent(out, "", "  ")
}

func toJSONRow(r Row) jsonRow {
	return jsonRow{
		InvoiceNumber: r.InvoiceNumber,
		IssueDate:     r.IssueDate,
		Pallets:       r.Pallets,
		NetWeight:     numeric.FormatWeight(r.NetWeight),
		GrossWeight:   numeric.FormatWeight(r.GrossWeight),
		Total:         numeric.FormatMoney(r.Total),
		CurrencyCode:  r.CurrencyCode,
		Mismatch:      r.Mismatch,
	}
}
