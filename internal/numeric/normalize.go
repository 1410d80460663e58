// Package numeric converts locale-ambiguous numeric tokens into exact
// decimals. Invoice text mixes US style (1,234.56) and EU style (1.234,56),
// sometimes in the same document, so the separator roles have to be inferred
// from the token shape alone.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Mode tells the normalizer how to read a single dot followed by exactly
// three digits. Amounts treat 74.058 as 74058 (thousands); weights treat
// 592.828 as a 3-decimal kilogram value. The source documents use both
// conventions, so the caller must state which one applies.
type Mode int

const (
	// ModeAmount: a lone dot with a 3-digit tail and a short integer part is
	// a thousands separator.
	ModeAmount Mode = iota
	// ModeWeight: a lone dot with a 3-digit tail is a decimal point.
	ModeWeight
)

// Normalize parses a raw numeric token into an exact decimal. It reports
// ok=false when the token is empty after cleaning, is a bare separator, or
// does not parse; it never guesses a value for ambiguous garbage.
func Normalize(raw string, mode Mode) (decimal.Decimal, bool) {
	s := clean(raw)
	if s == "" || s == "-" || s == "." || s == "," {
		return decimal.Decimal{}, false
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		// The separator that appears last is the decimal separator.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}

	case hasComma:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
			break
		}
		left, right, _ := strings.Cut(s, ",")
		if n := len(right); n >= 1 && n <= 4 {
			// decimal comma; quantities carry up to 4 fractional digits
			s = left + "." + right
		} else {
			s = left + right
		}

	case hasDot:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
			break
		}
		left, right, _ := strings.Cut(s, ".")
		if mode == ModeAmount && len(right) == 3 && intDigits(left) <= 3 {
			// thousands that look decimal: 74.058 -> 74058
			s = left + right
		}
		// otherwise the dot stays a decimal point (196.4845, 592.828 weight)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// NormalizeInt parses a token that should be a whole count (pallets, page
// numbers). Fractional results are rounded half away from zero.
func NormalizeInt(raw string, mode Mode) (int64, bool) {
	d, ok := Normalize(raw, mode)
	if !ok {
		return 0, false
	}
	return d.Round(0).IntPart(), true
}

// clean strips whitespace (incl. NBSP) and every character other than
// digits, '.', ',' and '-'.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func intDigits(left string) int {
	return len(strings.TrimPrefix(left, "-"))
}

// FormatMoney renders d with 2 fractional digits, round half up.
func FormatMoney(d decimal.Decimal) string { return d.StringFixed(2) }

// FormatWeight renders d with 4 fractional digits, round half up.
func FormatWeight(d decimal.Decimal) string { return d.StringFixed(4) }

// FormatCount renders d as a whole number, round half up.
func FormatCount(d decimal.Decimal) string { return d.StringFixed(0) }
