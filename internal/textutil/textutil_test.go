package textutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockBetween(t *testing.T) {
	text := "header\nFrom: ACME Corp\n1 Main St\nTo: Test Business\nitems"

	assert.Equal(t, "ACME Corp\n1 Main St", BlockBetween(text, "From:", "To:"))
	assert.Equal(t, "", BlockBetween(text, "Missing:", "To:"))
	assert.Equal(t, "", BlockBetween(text, "From:", "Missing:"))
	// end anchor must occur after start
	assert.Equal(t, "", BlockBetween("To: x From: y", "From:", "To:"))
}

func TestNonEmptyLines(t *testing.T) {
	got := NonEmptyLines("  a  \n\n\t\nb\n   \nc ")
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Empty(t, NonEmptyLines("  \n \n"))
}

func TestFirstSubmatch(t *testing.T) {
	re := regexp.MustCompile(`Invoice Number\s+([A-Z0-9\-]+)`)
	assert.Equal(t, "INV-3337", FirstSubmatch(re, "Invoice Number INV-3337 foo"))
	assert.Equal(t, "", FirstSubmatch(re, "nothing here"))

	noGroup := regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	assert.Equal(t, "01/02/2024", FirstSubmatch(noGroup, "date 01/02/2024"))
}

func TestNormalizeText(t *testing.T) {
	raw := "IIIINVOICE\r\n\r\n\r\nTotal   Due\t\t$93.50\x00\nLLLLear"
	got := NormalizeText(raw)
	assert.Equal(t, "INVOICE\nTotal Due $93.50\nLear", got)
}

func TestNormalizeTextKeepsDoubles(t *testing.T) {
	// doubled characters are legitimate ("Sliced", "eel"); only 3+ collapse
	assert.Equal(t, "bookkeeping", NormalizeText("bookkeeping"))
	assert.Equal(t, "a", NormalizeText("aaaa"))
}
