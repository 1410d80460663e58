package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmounts(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.202.938", "1202938"},
		{"74.058", "74058"},
		{"196.4845", "196.4845"},
		{"15.768,74", "15768.74"},
		{"20,435.60", "20435.6"},
		{"1234.56", "1234.56"},
		{"85.00", "85"},
		{"0.00", "0"},
		{"1,5", "1.5"},
		{"12,3456", "12.3456"},
		{"1,202,938", "1202938"},
		{"15959,25", "15959.25"},
		{"-12.50", "-12.5"},
		{" 1 234,56 ", "1234.56"},
		{" 1.234,56", "1234.56"},
		{"$93.50", "93.5"},
		{"12345.250", "12345.25"}, // long integer part keeps the dot decimal
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Normalize(tt.raw, ModeAmount)
			require.True(t, ok, "Normalize(%q) not ok", tt.raw)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "Normalize(%q) = %s, want %s", tt.raw, got, want)
		})
	}
}

func TestNormalizeWeights(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"592.828", "592.828"},   // 3-decimal kg value stays decimal
		{"196.4845", "196.4845"},
		{"1.202.938", "1202938"}, // multiple dots are always thousands
		{"74,058", "74.058"},     // decimal comma unaffected by mode
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Normalize(tt.raw, ModeWeight)
			require.True(t, ok)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "Normalize(%q) = %s, want %s", tt.raw, got, want)
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	for _, raw := range []string{"", "-", ".", ",", "   ", "abc", "$", "1.2.3,4,5"} {
		t.Run("reject_"+raw, func(t *testing.T) {
			_, ok := Normalize(raw, ModeAmount)
			assert.False(t, ok, "Normalize(%q) should not parse", raw)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	d, ok := Normalize("1234.56", ModeAmount)
	require.True(t, ok)
	again, ok := Normalize(d.String(), ModeAmount)
	require.True(t, ok)
	assert.True(t, d.Equal(again))
}

// Formatting a canonical decimal in either locale style and normalizing it
// back must return the original value.
func TestNormalizeRoundTrip(t *testing.T) {
	for _, canon := range []string{"0.5", "12.34", "1234.5678", "987654.32", "3"} {
		d, err := decimal.NewFromString(canon)
		require.NoError(t, err)

		us := d.String() // 1234.5678
		eu := replaceDot(d.String())

		gotUS, ok := Normalize(us, ModeWeight)
		require.True(t, ok, "US %q", us)
		assert.True(t, d.Equal(gotUS), "US round-trip %q -> %s", us, gotUS)

		gotEU, ok := Normalize(eu, ModeWeight)
		require.True(t, ok, "EU %q", eu)
		assert.True(t, d.Equal(gotEU), "EU round-trip %q -> %s", eu, gotEU)
	}
}

func replaceDot(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == '.' {
			out[i] = ','
		}
	}
	return string(out)
}

func TestNormalizeInt(t *testing.T) {
	n, ok := NormalizeInt("33.0", ModeAmount)
	require.True(t, ok)
	assert.Equal(t, int64(33), n)

	n, ok = NormalizeInt("2.5", ModeAmount)
	require.True(t, ok)
	assert.Equal(t, int64(3), n) // half up

	_, ok = NormalizeInt("-", ModeAmount)
	assert.False(t, ok)
}

func TestFormatters(t *testing.T) {
	d := decimal.RequireFromString("8.505")
	assert.Equal(t, "8.51", FormatMoney(d))
	assert.Equal(t, "8.5050", FormatWeight(d))
	assert.Equal(t, "9", FormatCount(d))
}
