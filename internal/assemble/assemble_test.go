package assemble

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-carvajal/invoice-extractor/internal/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecordSentinels(t *testing.T) {
	inv := Record(Fragments{})

	assert.Equal(t, "UNKNOWN", inv.InvoiceNumber)
	assert.Equal(t, "UNKNOWN", inv.IssueDate)
	assert.Equal(t, "SUPPLIER", inv.Supplier.Name)
	assert.Equal(t, "CUSTOMER", inv.Customer.Name)
	assert.Nil(t, inv.Totals)
}

func TestRecordLineDescriptionSentinel(t *testing.T) {
	inv := Record(Fragments{
		Lines: []entity.LineItem{{Quantity: dec("1"), UnitPrice: dec("2"), Total: dec("2")}},
	})
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Item", inv.Lines[0].Description)
}

func TestRecordLineSumWinsOverReported(t *testing.T) {
	reported := dec("93.50")
	inv := Record(Fragments{
		Lines: []entity.LineItem{
			{Description: "Web Design", Quantity: dec("1"), UnitPrice: dec("85.00"), Total: dec("85.00")},
		},
		ReportedTotal:   &reported,
		DefaultCurrency: "USD",
	})

	require.NotNil(t, inv.Totals)
	assert.True(t, inv.Totals.Total.Equal(dec("85.00")), "line sum is authoritative")
	assert.Equal(t, "USD", inv.Totals.CurrencyCode)

	diff, ok := inv.Extra.Get("total_reported_diff")
	require.True(t, ok)
	assert.True(t, diff.Decimal().Equal(dec("8.50")))

	// |85.00-93.50|/93.50 is about 9%, well over the 1% threshold
	flag, ok := inv.Extra.Get("total_mismatch_flag")
	require.True(t, ok)
	assert.True(t, flag.Bool())
}

func TestRecordNoMismatchFlagWithinThreshold(t *testing.T) {
	reported := dec("100.50")
	inv := Record(Fragments{
		Lines:         []entity.LineItem{{Description: "x", Total: dec("100.00")}},
		ReportedTotal: &reported,
	})

	_, ok := inv.Extra.Get("total_mismatch_flag")
	assert.False(t, ok, "0.5%% drift must not be flagged")

	sum, ok := inv.Extra.Get("total_lines_sum")
	require.True(t, ok)
	assert.True(t, sum.Decimal().Equal(dec("100.00")))
}

func TestRecordReportedTotalFallback(t *testing.T) {
	reported := dec("74058")
	inv := Record(Fragments{
		ReportedTotal:   &reported,
		DefaultCurrency: "EUR",
	})

	require.NotNil(t, inv.Totals)
	assert.True(t, inv.Totals.Total.Equal(reported))
	assert.True(t, inv.Totals.Subtotal.Equal(reported), "subtotal mirrors total when unreported")
	assert.True(t, inv.Totals.Tax.IsZero())

	_, ok := inv.Extra.Get("total_reported_diff")
	assert.False(t, ok, "no reconciliation without line items")
}

func TestRecordReportedCurrencyWins(t *testing.T) {
	reported := dec("10")
	inv := Record(Fragments{
		ReportedTotal:   &reported,
		CurrencyCode:    "MAD",
		DefaultCurrency: "EUR",
	})
	require.NotNil(t, inv.Totals)
	assert.Equal(t, "MAD", inv.Totals.CurrencyCode)
}
