package entity

import (
	"github.com/shopspring/decimal"
)

// Party is one side of an invoice (supplier or customer). Name is never
// empty; the assembler substitutes a sentinel when it cannot be recovered.
type Party struct {
	Name    string  `json:"name"`
	TaxID   *string `json:"tax_id,omitempty"`
	Address *string `json:"address,omitempty"`
}

// LineItem is a single detail row. The line total is taken verbatim from the
// document; no relation to Quantity*UnitPrice is enforced.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Totals carries the reconciled invoice amounts. CurrencyCode is always a
// 3-letter code; templates supply a default when the document reports none.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currency_code"`
}

// Invoice is the assembled parse result for one document. It is built once
// per parse and treated as read-only afterwards.
type Invoice struct {
	InvoiceNumber string     `json:"invoice_number"`
	IssueDate     string     `json:"issue_date"` // stored as extracted, not parsed
	Supplier      Party      `json:"supplier"`
	Customer      Party      `json:"customer"`
	Lines         []LineItem `json:"lines"`
	Totals        *Totals    `json:"totals,omitempty"`
	RawText       string     `json:"raw_text,omitempty"`
	Extra         Extra      `json:"extra,omitempty"`
}
