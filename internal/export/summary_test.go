package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/luis-carvajal/invoice-extractor/internal/entity"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func sampleInvoices(t *testing.T) []*entity.Invoice {
	t.Helper()
	first := &entity.Invoice{
		InvoiceNumber: "DM039449",
		IssueDate:     "02/06/21",
		Totals:        &entity.Totals{Total: dec(t, "642.00"), Subtotal: dec(t, "642.00"), CurrencyCode: "EUR"},
		Extra: entity.Extra{}.
			Set("net_weight", entity.DecimalValue(dec(t, "592.828"))).
			Set("gross_weight", entity.DecimalValue(dec(t, "612.5"))).
			Set("nr_of_pack_pallets", entity.IntValue(4)),
	}
	second := &entity.Invoice{
		InvoiceNumber: "DM039501",
		IssueDate:     "03/06/21",
		Totals:        &entity.Totals{Total: dec(t, "158.00"), Subtotal: dec(t, "158.00"), CurrencyCode: "EUR"},
		Extra: entity.Extra{}.
			Set("net_weight", entity.DecimalValue(dec(t, "7.172"))).
			Set("gross_weight", entity.DecimalValue(dec(t, "10"))).
			Set("nr_of_pack_pallets", entity.IntValue(1)).
			Set("total_mismatch_flag", entity.BoolValue(true)),
	}
	return []*entity.Invoice{first, second}
}

func TestBuildRows(t *testing.T) {
	rows, grand := BuildRows(sampleInvoices(t))
	require.Len(t, rows, 2)

	assert.Equal(t, "DM039449", rows[0].InvoiceNumber)
	assert.Equal(t, int64(4), rows[0].Pallets)
	assert.False(t, rows[0].Mismatch)
	assert.True(t, rows[1].Mismatch)

	assert.Equal(t, "TOTAL", grand.InvoiceNumber)
	assert.Equal(t, int64(5), grand.Pallets)
	assert.Equal(t, "600.0000", grand.NetWeight.StringFixed(4))
	assert.Equal(t, "622.5000", grand.GrossWeight.StringFixed(4))
	assert.Equal(t, "800.00", grand.Total.StringFixed(2))
	assert.Equal(t, "EUR", grand.CurrencyCode)
}

func TestBuildRowsMissingExtras(t *testing.T) {
	inv := &entity.Invoice{InvoiceNumber: "INV-1"}
	rows, grand := BuildRows([]*entity.Invoice{inv})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].Pallets)
	assert.True(t, rows[0].Total.IsZero())
	assert.True(t, grand.Total.IsZero())
}

func TestMarshalJSON(t *testing.T) {
	out, err := MarshalJSON(sampleInvoices(t))
	require.NoError(t, err)

	var parsed struct {
		Invoices []map[string]any `json:"invoices"`
		Totals   map[string]any   `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.Len(t, parsed.Invoices, 2)
	assert.Equal(t, "592.8280", parsed.Invoices[0]["net_weight"])
	assert.Equal(t, "642.00", parsed.Invoices[0]["total"])
	assert.Equal(t, true, parsed.Invoices[1]["total_mismatch_flag"])
	assert.Equal(t, "TOTAL", parsed.Totals["invoice_number"])
	assert.Equal(t, "800.00", parsed.Totals["total"])
	assert.Equal(t, "600.0000", parsed.Totals["net_weight"])
}

func TestWriteXLSX(t *testing.T) {
	out, err := WriteXLSX(sampleInvoices(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	// header + 2 invoices + TOTAL
	require.Len(t, rows, 4)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "DM039449", rows[1][0])
	assert.Equal(t, "592.8280", rows[1][3])
	assert.Equal(t, "YES", rows[2][7])

	total := rows[3]
	assert.Equal(t, "TOTAL", total[0])
	assert.Equal(t, "5", total[2])
	assert.Equal(t, "800.00", total[5])
}
