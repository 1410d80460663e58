package template

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/luis-carvajal/invoice-extractor/internal/assemble"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/numeric"
	"github.com/luis-carvajal/invoice-extractor/internal/textutil"
)

var (
	reLearHeaderNo = regexp.MustCompile(`(?i)Invoice Number:\s*(DM\d+)`)
	reLearBodyNo   = regexp.MustCompile(`\b(DM\d{6})\b`)
	reLearNoShape  = regexp.MustCompile(`^DM\d{6}$`)
	reLearDate     = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`)

	// One detail row, column by column. The full shape must match or the row
	// is skipped; no partial parses.
	reLearRow = regexp.MustCompile(`(?mi)^\s*` +
		`(\d+)\s+` + // line index
		`(\d{2}/\d{2}/\d{2})\s+` + // ship date
		`DM\d+\s+` + // document number
		`\S+\s+` + // plant
		`\S+\s+` + // platform
		`\S+\s+` + // subcode
		`\S+\s+` + // customer part number
		`(\S+)\s+` + // vendor part (description)
		`(\d+)\s+` + // quantity
		`P\s+` + // price marker
		`([\d.]+)\s+` + // unit price
		`\d+\s+` + // discount code
		`([\d.]+)\s+` + // net line total
		`\d+`) // tax code

	reLearGrandTotal = regexp.MustCompile(`(?i)Total Invoices\s+([\d.,]+)`)
	reLearTaxable    = regexp.MustCompile(`(?i)Taxable Amount\s+([\d.,]+)`)
	// "Curency" is how this vendor's layout spells it
	reLearCurrency = regexp.MustCompile(`Curency\s+([A-Z]{3})`)

	reLearVendorCode   = regexp.MustCompile(`(?i)Vendor Code:\s*(\S+)`)
	reLearCustomerCode = regexp.MustCompile(`(?i)Customer Code:\s*(\S+)`)
	reLearPages        = regexp.MustCompile(`(?i)Number Of Pages:\s*([\d.]+)`)
	reLearLines        = regexp.MustCompile(`(?i)Number of Lines:\s*([\d.]+)`)
	reLearNetWeight    = regexp.MustCompile(`(?i)Net Weight:\s*([\d.,]+)`)
	// "Gros Weight" likewise verbatim from the layout
	reLearGrossWeight = regexp.MustCompile(`(?i)Gros Weight:\s*([\d.,]+)`)
	reLearPallets     = regexp.MustCompile(`(?i)Palets:\s*([\d.,]+)`)
	reLearBoxes       = regexp.MustCompile(`(?i)Boxes:\s*([\d.,]+)`)
)

// LearTemplate is a fixed-profile vendor: the supplier/customer identity is
// invariant per business relationship and ships with the template instead of
// being derived from text.
type LearTemplate struct {
	keywords keywordGate

	supplier entity.Party
	customer entity.Party
}

func NewLearTemplate() *LearTemplate {
	supplierAddr := "Lot 102B/2 Zone Franche, Tanger, Morocco"
	customerVAT := "ESN204102A"
	customerAddr := "Zone Franche d Exportation C/ Futers, 54, Valls 43800 (Tarragona)"
	return &LearTemplate{
		keywords: keywordGate{"Lear", "Invoice Number"},
		supplier: entity.Party{
			Name:    "Lear Automotive Morocco SAS",
			Address: &supplierAddr,
		},
		customer: entity.Party{
			Name:    "Lear Automotive Morocco SAS",
			TaxID:   &customerVAT,
			Address: &customerAddr,
		},
	}
}

func (t *LearTemplate) Name() string { return "lear" }

func (t *LearTemplate) CanHandle(text string) bool { return t.keywords.match(text) }

func (t *LearTemplate) Extract(text string) (assemble.Fragments, error) {
	f := assemble.Fragments{
		InvoiceNumber:   t.invoiceNumber(text),
		IssueDate:       textutil.FirstSubmatch(reLearDate, text),
		Supplier:        &t.supplier,
		Customer:        &t.customer,
		Lines:           t.lineItems(text),
		CurrencyCode:    textutil.FirstSubmatch(reLearCurrency, text),
		DefaultCurrency: "EUR",
		RawText:         text,
	}

	f.ReportedTotal = amount(reLearGrandTotal, text)
	// this vendor reports no tax; subtotal mirrors the decided total
	zero := decimal.Zero
	f.ReportedTax = &zero

	f.Extra = t.extras(text, f)
	return f, nil
}

// invoiceNumber prefers the header-labeled value but falls back to a
// well-shaped DM+6-digit code from the body: header noise is more common
// than body noise in this layout, so a header that fails the shape check
// loses to a body match.
func (t *LearTemplate) invoiceNumber(text string) string {
	header := textutil.FirstSubmatch(reLearHeaderNo, text)
	body := textutil.FirstSubmatch(reLearBodyNo, text)

	if header != "" && reLearNoShape.MatchString(header) {
		return header
	}
	if body != "" {
		return body
	}
	return header
}

func (t *LearTemplate) lineItems(text string) []entity.LineItem {
	var items []entity.LineItem
	for _, m := range reLearRow.FindAllStringSubmatch(text, -1) {
		qty, okQ := numeric.Normalize(m[4], numeric.ModeAmount)
		unit, okU := numeric.Normalize(m[5], numeric.ModeAmount)
		total, okT := numeric.Normalize(m[6], numeric.ModeAmount)
		if !okQ || !okU || !okT {
			continue
		}
		items = append(items, entity.LineItem{
			Description: m[3],
			Quantity:    qty,
			UnitPrice:   unit,
			Total:       total,
		})
	}
	return items
}

// extras gathers the ancillary labeled values. Each one is independently
// optional; absence is not an error.
func (t *LearTemplate) extras(text string, f assemble.Fragments) entity.Extra {
	extra := entity.Extra{}

	if v := textutil.FirstSubmatch(reLearVendorCode, text); v != "" {
		extra = extra.Set("vendor_code", entity.StringValue(v))
	}
	if v := textutil.FirstSubmatch(reLearCustomerCode, text); v != "" {
		extra = extra.Set("customer_code", entity.StringValue(v))
	}
	if n, ok := intField(reLearPages, text); ok {
		extra = extra.Set("number_of_pages", entity.IntValue(n))
	}
	if n, ok := intField(reLearLines, text); ok {
		extra = extra.Set("number_of_lines", entity.IntValue(n))
	}
	extra = extra.Set("parsed_lines_count", entity.IntValue(int64(len(f.Lines))))

	if d := amount(reLearTaxable, text); d != nil {
		extra = extra.Set("taxable_amount_reported", entity.DecimalValue(*d))
	}
	if f.ReportedTotal != nil {
		extra = extra.Set("total_invoices_reported", entity.DecimalValue(*f.ReportedTotal))
	}
	if v := textutil.FirstSubmatch(reLearCurrency, text); v != "" {
		extra = extra.Set("currency_reported", entity.StringValue(v))
	}

	// weights are 3-decimal kilogram values; ModeWeight keeps 592.828 decimal
	if d := weight(reLearNetWeight, text); d != nil {
		extra = extra.Set("net_weight", entity.DecimalValue(*d))
	}
	if d := weight(reLearGrossWeight, text); d != nil {
		extra = extra.Set("gross_weight", entity.DecimalValue(*d))
	}

	pallets, okP := intField(reLearPallets, text)
	boxes, okB := intField(reLearBoxes, text)
	if okP {
		extra = extra.Set("pallets", entity.IntValue(pallets))
	}
	if okB {
		extra = extra.Set("boxes", entity.IntValue(boxes))
	}
	// packing units: pallets when present, boxes otherwise
	switch {
	case okP && pallets > 0:
		extra = extra.Set("nr_of_pack_pallets", entity.IntValue(pallets))
	case okB:
		extra = extra.Set("nr_of_pack_pallets", entity.IntValue(boxes))
	}

	return extra
}

func weight(re *regexp.Regexp, text string) *decimal.Decimal {
	raw := textutil.FirstSubmatch(re, text)
	if raw == "" {
		return nil
	}
	d, ok := numeric.Normalize(raw, numeric.ModeWeight)
	if !ok {
		return nil
	}
	return &d
}

func intField(re *regexp.Regexp, text string) (int64, bool) {
	raw := textutil.FirstSubmatch(re, text)
	if raw == "" {
		return 0, false
	}
	return numeric.NormalizeInt(raw, numeric.ModeAmount)
}
