package template

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/internal/assemble"
)

const learInvoice = `Lear Corporation
Invoice Number: DM03949
Vendor Code: V00112
Customer Code: C-778
Date: 15/01/2024
Number Of Pages: 1.00
Number of Lines: 2.00
1 15/01/24 DM039449 FD3C NX6T A1 7701234 PART-A88 120 P 4.95 0 594.00 0
2 15/01/24 DM039449 FD3C NX6T A1 7701235 PART-B12 40 P 1.20 0 48.00 0
Net Weight: 592.828
Gros Weight: 1.202.938
Palets: 3
Curency EUR
Taxable Amount 642.00
Total Invoices 642.00
`

func TestLearCanHandle(t *testing.T) {
	tpl := NewLearTemplate()
	assert.True(t, tpl.CanHandle(learInvoice))
	assert.False(t, tpl.CanHandle("some other vendor invoice"))
	assert.False(t, tpl.CanHandle("Lear only, missing the number label"))
}

func TestLearInvoiceNumberPrefersBodyShape(t *testing.T) {
	tpl := NewLearTemplate()

	// header DM03949 is malformed (5 digits); body DM039449 has the expected
	// DM+6 shape and wins
	f, err := tpl.Extract(learInvoice)
	require.NoError(t, err)
	assert.Equal(t, "DM039449", f.InvoiceNumber)

	// well-shaped header wins outright
	f, err = tpl.Extract("Lear\nInvoice Number: DM123456\nbody mentions DM654321 too")
	require.NoError(t, err)
	assert.Equal(t, "DM123456", f.InvoiceNumber)

	// malformed header with no body candidate still beats the sentinel
	f, err = tpl.Extract("Lear\nInvoice Number: DM039\n")
	require.NoError(t, err)
	assert.Equal(t, "DM039", f.InvoiceNumber)

	// nothing at all -> assembler substitutes UNKNOWN
	f, err = tpl.Extract("Lear\nInvoice Number pending\n")
	require.NoError(t, err)
	assert.Equal(t, "", f.InvoiceNumber)
	assert.Equal(t, "UNKNOWN", assemble.Record(f).InvoiceNumber)
}

func TestLearLineItems(t *testing.T) {
	tpl := NewLearTemplate()
	f, err := tpl.Extract(learInvoice)
	require.NoError(t, err)

	require.Len(t, f.Lines, 2)
	assert.Equal(t, "PART-A88", f.Lines[0].Description)
	assert.True(t, f.Lines[0].Quantity.Equal(decimal.RequireFromString("120")))
	assert.True(t, f.Lines[0].UnitPrice.Equal(decimal.RequireFromString("4.95")))
	assert.True(t, f.Lines[0].Total.Equal(decimal.RequireFromString("594.00")))
	assert.Equal(t, "PART-B12", f.Lines[1].Description)
}

func TestLearRowShapeMustMatchExactly(t *testing.T) {
	tpl := NewLearTemplate()
	// rows with missing positional groups are skipped, not partially parsed
	f, err := tpl.Extract("Lear\nInvoice Number: DM123456\n1 15/01/24 DM123456 FD3C NX6T 120 P 4.95\n")
	require.NoError(t, err)
	assert.Empty(t, f.Lines)
}

func TestLearTotalsAndExtras(t *testing.T) {
	tpl := NewLearTemplate()
	f, err := tpl.Extract(learInvoice)
	require.NoError(t, err)
	inv := assemble.Record(f)

	require.NotNil(t, inv.Totals)
	assert.True(t, inv.Totals.Total.Equal(decimal.RequireFromString("642.00")), "line sum wins")
	assert.True(t, inv.Totals.Subtotal.Equal(inv.Totals.Total))
	assert.True(t, inv.Totals.Tax.IsZero())
	assert.Equal(t, "EUR", inv.Totals.CurrencyCode)

	assert.Equal(t, "Lear Automotive Morocco SAS", inv.Supplier.Name)
	assert.Equal(t, "15/01/2024", inv.IssueDate)

	vendor, ok := inv.Extra.Get("vendor_code")
	require.True(t, ok)
	assert.Equal(t, "V00112", vendor.String())
	pages, _ := inv.Extra.Get("number_of_pages")
	assert.Equal(t, int64(1), pages.Int())
	count, _ := inv.Extra.Get("parsed_lines_count")
	assert.Equal(t, int64(2), count.Int())

	// weight mode: 3-decimal tail is a decimal, multiple dots are thousands
	net, _ := inv.Extra.Get("net_weight")
	assert.True(t, net.Decimal().Equal(decimal.RequireFromString("592.828")))
	gross, _ := inv.Extra.Get("gross_weight")
	assert.True(t, gross.Decimal().Equal(decimal.RequireFromString("1202938")))

	pallets, _ := inv.Extra.Get("pallets")
	assert.Equal(t, int64(3), pallets.Int())
	pack, _ := inv.Extra.Get("nr_of_pack_pallets")
	assert.Equal(t, int64(3), pack.Int())

	cur, _ := inv.Extra.Get("currency_reported")
	assert.Equal(t, "EUR", cur.String())

	// line sum equals the reported total: diff recorded, no mismatch flag
	diff, ok := inv.Extra.Get("total_reported_diff")
	require.True(t, ok)
	assert.True(t, diff.Decimal().IsZero())
	_, flagged := inv.Extra.Get("total_mismatch_flag")
	assert.False(t, flagged)
}
