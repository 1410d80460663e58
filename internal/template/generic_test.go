package template

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/internal/assemble"
)

const slicedInvoice = `Invoice
From: DEMO - Sliced Invoices Order Number 12345
Suite 5A-1204 Invoice Date January 25, 2016
123 Somewhere Street
Due Date January 31, 2016
Your City AZ 12345
Total Due $93.50
admin@slicedinvoices.com
To: Test Business
123 Somewhere St
d
Melbourne, VIC 3000
test@test.com
i
Hrs/Qty Service Rate/Price Adjust Sub Total
Web Design
1.00 $85.00 0.00% $85.00
This is a sample description...
Invoice Number INV-3337
Sub Total $85.00
Tax $8.50
Total $93.50
`

func TestGenericExtract(t *testing.T) {
	tpl := NewGenericTemplate("USD")
	require.True(t, tpl.CanHandle(slicedInvoice))

	f, err := tpl.Extract(slicedInvoice)
	require.NoError(t, err)

	assert.Equal(t, "INV-3337", f.InvoiceNumber)
	assert.Equal(t, "January 25, 2016", f.IssueDate)

	require.NotNil(t, f.Supplier)
	assert.Equal(t, "DEMO - Sliced Invoices", f.Supplier.Name)
	require.NotNil(t, f.Supplier.Address)
	// metadata lines discarded (incl. the smeared Invoice Date line), email last
	assert.Equal(t, "123 Somewhere Street\nYour City AZ 12345\nadmin@slicedinvoices.com",
		*f.Supplier.Address)

	require.NotNil(t, f.Customer)
	assert.Equal(t, "Test Business", f.Customer.Name)
	require.NotNil(t, f.Customer.Address)
	// single-character artifact lines dropped
	assert.Equal(t, "123 Somewhere St\nMelbourne, VIC 3000\ntest@test.com", *f.Customer.Address)

	require.Len(t, f.Lines, 1)
	line := f.Lines[0]
	assert.Equal(t, "Web Design – This is a sample description...", line.Description)
	assert.True(t, line.Quantity.Equal(decimal.RequireFromString("1")))
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("85")))
	assert.True(t, line.Total.Equal(decimal.RequireFromString("85")))

	require.NotNil(t, f.ReportedSubtotal)
	assert.True(t, f.ReportedSubtotal.Equal(decimal.RequireFromString("85")))
	require.NotNil(t, f.ReportedTax)
	assert.True(t, f.ReportedTax.Equal(decimal.RequireFromString("8.5")))
	require.NotNil(t, f.ReportedTotal)
	assert.True(t, f.ReportedTotal.Equal(decimal.RequireFromString("93.5")), "grand total, not the Sub Total line")
}

func TestGenericEndToEnd(t *testing.T) {
	tpl := NewGenericTemplate("USD")
	text := "From: ACME Corp\n1 Main St\nTotal Due $93.50\nbilling@acme.com\nTo: Someone\nHrs/Qty\n"

	f, err := tpl.Extract(text)
	require.NoError(t, err)
	inv := assemble.Record(f)

	assert.Equal(t, "ACME Corp", inv.Supplier.Name)
	require.NotNil(t, inv.Supplier.Address)
	assert.Equal(t, "1 Main St\nbilling@acme.com", *inv.Supplier.Address)
	assert.Equal(t, "UNKNOWN", inv.InvoiceNumber)
	assert.Equal(t, "UNKNOWN", inv.IssueDate)
}

func TestGenericMissingBlocks(t *testing.T) {
	tpl := NewGenericTemplate("USD")
	f, err := tpl.Extract("From: only a supplier, no customer marker")
	require.NoError(t, err)
	assert.Nil(t, f.Supplier, "missing end anchor yields no block")
	assert.Nil(t, f.Customer)
	assert.Empty(t, f.Lines)
}
