package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownOnLine(t *testing.T) {
	m := New([]string{"Stripe", "Square", "PayPal"}, "")

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "case-insensitive match",
			line: "06/01 ACH CREDIT STRIPE PAYOUT $123.45",
			want: []string{"Stripe"},
		},
		{
			name: "two processors on one line",
			line: "TRANSFER STRIPE TO PAYPAL",
			want: []string{"Stripe", "PayPal"},
		},
		{
			name: "same processor once per line",
			line: "STRIPE STRIPE STRIPE",
			want: []string{"Stripe"},
		},
		{
			name: "no match",
			line: "CHECK 1042 CLEARED",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.KnownOnLine(tt.line))
		})
	}
}

func TestPossibleFromLine(t *testing.T) {
	m := New([]string{"Stripe"}, "")

	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{
			name: "capitalized merchant name",
			line: "06/04 ACH CREDIT Bluewave Consulting LLC $300.00",
			want: "Bluewave Consulting LLC",
			ok:   true,
		},
		{
			name: "state token truncates the run",
			line: "06/05 DEPOSIT Harbor Goods TX 75201 $80.00",
			want: "Harbor Goods",
			ok:   true,
		},
		{
			name: "stoplisted candidate rejected",
			line: "06/06 PAYROLL DIRECT DEP $900.00",
		},
		{
			name: "descriptors only leaves nothing",
			line: "acct 9876 deposit $25.00",
		},
		{
			name: "too short after cleaning",
			line: "06/07 AB $10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.PossibleFromLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPossibleFromLineSuppressesDebtor(t *testing.T) {
	m := New(nil, "Acme")
	_, ok := m.PossibleFromLine("06/08 DEPOSIT Acme Holdings $50.00")
	assert.False(t, ok)
}

func TestAccountsOnLine(t *testing.T) {
	m := New(nil, "")

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "transfer keyword",
			line: "TRANSFER TO ACCT 9876",
			want: []string{"9876"},
		},
		{
			name: "ach as whole word",
			line: "ACH FROM 1234",
			want: []string{"1234"},
		},
		{
			name: "ach inside another word does not count",
			line: "PEACHTREE 1234",
			want: nil,
		},
		{
			name: "no transfer context",
			line: "CHECK CARD 5678",
			want: nil,
		},
		{
			name: "deposit is transfer context",
			line: "acct 9876 deposit $25.00",
			want: []string{"9876"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.AccountsOnLine(tt.line))
		})
	}
}
