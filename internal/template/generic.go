package template

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/luis-carvajal/invoice-extractor/internal/assemble"
	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/numeric"
	"github.com/luis-carvajal/invoice-extractor/internal/textutil"
)

var (
	reGenNumber = regexp.MustCompile(`(?i)Invoice Number\s+([A-Z0-9\-]+)`)
	reGenDate   = regexp.MustCompile(`(?i)Invoice Date\s+([A-Za-z]+\s+\d{1,2},\s+\d{4})`)

	// supplier name trailing noise, e.g. "ACME Corp Order Number 12345"
	reOrderNumber = regexp.MustCompile(`(?i)\bOrder Number\b`)
	// invoice metadata smeared into the address block by layout extraction
	reAddressNoise = regexp.MustCompile(`(?i)(Invoice Date|Due Date|Total Due)`)

	// detail row: qty, $unit, discount%, $total — anchored to the full line
	reGenRow = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s+\$([\d.]+)\s+[\d.]+%?\s+\$([\d.]+)\s*$`)
	// totals section start; also gates the trailing description line
	reTotalsStart = regexp.MustCompile(`(?i)^(Sub Total|Tax|Total)\b`)

	reGenSubtotal = regexp.MustCompile(`(?i)Sub Total\s*\$([\d.]+)`)
	reGenTax      = regexp.MustCompile(`(?i)Tax\s*\$([\d.]+)`)
	// line-anchored so "Sub Total $..." cannot shadow the grand total
	reGenTotal = regexp.MustCompile(`(?im)^\s*Total\s*\$([\d.]+)`)
)

// GenericTemplate handles the common "From: ... To: ..." layout where both
// parties and all amounts must be derived from the text.
type GenericTemplate struct {
	keywords keywordGate

	supplierStart string // "From:"
	supplierEnd   string // "To:" — doubles as the customer block start
	itemsHeader   string // first token of the line-item table header

	defaultCurrency string
}

func NewGenericTemplate(defaultCurrency string) *GenericTemplate {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &GenericTemplate{
		keywords:        keywordGate{"From:", "To:"},
		supplierStart:   "From:",
		supplierEnd:     "To:",
		itemsHeader:     "Hrs/Qty",
		defaultCurrency: defaultCurrency,
	}
}

func (t *GenericTemplate) Name() string { return "generic" }

func (t *GenericTemplate) CanHandle(text string) bool { return t.keywords.match(text) }

func (t *GenericTemplate) Extract(text string) (assemble.Fragments, error) {
	f := assemble.Fragments{
		InvoiceNumber:   textutil.FirstSubmatch(reGenNumber, text),
		IssueDate:       textutil.FirstSubmatch(reGenDate, text),
		DefaultCurrency: t.defaultCurrency,
		RawText:         text,
	}

	f.Supplier = t.supplierParty(text)
	f.Customer = t.customerParty(text)
	f.Lines = t.lineItems(text)

	f.ReportedSubtotal = amount(reGenSubtotal, text)
	f.ReportedTax = amount(reGenTax, text)
	f.ReportedTotal = amount(reGenTotal, text)

	return f, nil
}

// supplierParty reads the block between the From and To markers. The first
// non-empty line is the name, truncated at a trailing order-number label;
// later lines are classified as email, metadata noise, or address.
func (t *GenericTemplate) supplierParty(text string) *entity.Party {
	lines := textutil.NonEmptyLines(textutil.BlockBetween(text, t.supplierStart, t.supplierEnd))
	if len(lines) == 0 {
		return nil
	}
	name := strings.TrimSpace(reOrderNumber.Split(lines[0], 2)[0])

	var address []string
	var email string
	for _, line := range lines[1:] {
		switch {
		case strings.Contains(line, "@"):
			email = line
		case reAddressNoise.MatchString(line):
			// invoice metadata, not address
		default:
			address = append(address, line)
		}
	}
	return buildParty(name, address, email)
}

// customerParty reads the block between the To marker and the line-item
// table header. Single-character lines are layout artifacts and dropped.
func (t *GenericTemplate) customerParty(text string) *entity.Party {
	lines := textutil.NonEmptyLines(textutil.BlockBetween(text, t.supplierEnd, t.itemsHeader))
	if len(lines) == 0 {
		return nil
	}
	name := lines[0]

	var address []string
	var email string
	for _, line := range lines[1:] {
		switch {
		case len(line) == 1:
			// single-character reconstruction artifact
		case strings.Contains(line, "@"):
			email = line
		default:
			address = append(address, line)
		}
	}
	return buildParty(name, address, email)
}

// lineItems scans every line for a qty/price/discount/total row and builds
// the description from the neighbouring lines.
func (t *GenericTemplate) lineItems(text string) []entity.LineItem {
	all := strings.Split(text, "\n")
	var items []entity.LineItem
	for idx, line := range all {
		m := reGenRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, okQ := numeric.Normalize(m[1], numeric.ModeAmount)
		unit, okU := numeric.Normalize(m[2], numeric.ModeAmount)
		total, okT := numeric.Normalize(m[3], numeric.ModeAmount)
		if !okQ || !okU || !okT {
			continue
		}

		var desc []string
		if idx > 0 {
			prev := strings.TrimSpace(all[idx-1])
			if prev != "" && !strings.HasPrefix(strings.ToLower(prev), strings.ToLower(t.itemsHeader)) {
				desc = append(desc, prev)
			}
		}
		if idx+1 < len(all) {
			next := strings.TrimSpace(all[idx+1])
			if next != "" && !reTotalsStart.MatchString(next) {
				desc = append(desc, next)
			}
		}

		items = append(items, entity.LineItem{
			Description: strings.Join(desc, " – "),
			Quantity:    qty,
			UnitPrice:   unit,
			Total:       total,
		})
	}
	return items
}

func buildParty(name string, address []string, email string) *entity.Party {
	p := &entity.Party{Name: name}
	if email != "" {
		address = append(address, email)
	}
	if len(address) > 0 {
		joined := strings.Join(address, "\n")
		p.Address = &joined
	}
	return p
}

// amount extracts and normalizes a labeled money value, nil when absent or
// malformed. A token the normalizer rejects is omitted, never guessed.
func amount(re *regexp.Regexp, text string) *decimal.Decimal {
	raw := textutil.FirstSubmatch(re, text)
	if raw == "" {
		return nil
	}
	d, ok := numeric.Normalize(raw, numeric.ModeAmount)
	if !ok {
		return nil
	}
	return &d
}
