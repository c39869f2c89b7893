package textutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     []string
		negative []bool
	}{
		{
			name:     "plain dollar amount",
			line:     "ACH CREDIT STRIPE PAYOUT $123.45",
			want:     []string{"123.45"},
			negative: []bool{false},
		},
		{
			name:     "thousands separator",
			line:     "DEPOSIT $1,234.56",
			want:     []string{"1234.56"},
			negative: []bool{false},
		},
		{
			name:     "leading minus",
			line:     "POS PURCHASE -$12.00",
			want:     []string{"12"},
			negative: []bool{true},
		},
		{
			name:     "minus after dollar sign",
			line:     "FEE $-3.50",
			want:     []string{"3.5"},
			negative: []bool{true},
		},
		{
			name:     "parenthesized amount",
			line:     "ADJUSTMENT ($45.00)",
			want:     []string{"45"},
			negative: []bool{true},
		},
		{
			name:     "two column row keeps order",
			line:     "06/01 DEPOSIT 500.00 12,345.67",
			want:     []string{"500", "12345.67"},
			negative: []bool{false, false},
		},
		{
			name: "no amount",
			line: "DEPOSITS AND ADDITIONS",
		},
		{
			name: "integer without decimals is not an amount",
			line: "CHECK 1042",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := AmountTokens(tt.line)
			require.Len(t, tokens, len(tt.want))
			for i, tok := range tokens {
				expected, err := decimal.NewFromString(tt.want[i])
				require.NoError(t, err)
				assert.True(t, tok.Value.Equal(expected),
					"token %d: got %s want %s", i, tok.Value, expected)
				assert.Equal(t, tt.negative[i], tok.Negative, "token %d negativity", i)
			}
		})
	}
}

func TestAmountTokensOffsets(t *testing.T) {
	line := "TRANSFER TO ACCT 1234 $50.00"
	tokens := AmountTokens(line)
	require.Len(t, tokens, 1)
	assert.Equal(t, "$50.00", line[tokens[0].Start:tokens[0].End])
}

func TestFirstCreditAmount(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{
			name: "single positive",
			line: "SQUARE INC $200.00",
			want: "200",
			ok:   true,
		},
		{
			name: "leftmost positive wins over balance column",
			line: "06/03 DEPOSIT 150.00 9,850.00",
			want: "150",
			ok:   true,
		},
		{
			name: "skips negative to first positive",
			line: "ADJUSTMENT -$5.00 THEN CREDIT $20.00",
			want: "20",
			ok:   true,
		},
		{
			name: "all negative",
			line: "FEE -$2.00 ($3.00)",
		},
		{
			name: "no amounts",
			line: "TOTAL DEPOSITS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := FirstCreditAmount(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				expected, err := decimal.NewFromString(tt.want)
				require.NoError(t, err)
				assert.True(t, amount.Equal(expected), "got %s want %s", amount, expected)
			}
		})
	}
}

func TestHasPositiveAmount(t *testing.T) {
	assert.True(t, HasPositiveAmount("STRIPE PAYOUT $100.00"))
	assert.False(t, HasPositiveAmount("POS PURCHASE -$12.00"))
	assert.False(t, HasPositiveAmount("DEPOSITS AND ADDITIONS"))
}
