package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcluded(t *testing.T) {
	f := NewFilter([]string{"Acme Payroll", "Coinbase"}, 85)

	tests := []struct {
		name string
		want bool
	}{
		{"Acme Payroll", true},
		{"acme payroll", true},
		{"Acme Payrol", true},
		{"Stripe", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Excluded(tt.name))
		})
	}
}

func TestExcludedEmptyList(t *testing.T) {
	f := NewFilter(nil, 85)
	assert.False(t, f.Excluded("Stripe"))
}

func TestExcludedThreshold(t *testing.T) {
	strict := NewFilter([]string{"Coinbase"}, 100)
	assert.True(t, strict.Excluded("coinbase"))
	assert.False(t, strict.Excluded("coinbasse"))

	loose := NewFilter([]string{"Coinbase"}, 80)
	assert.True(t, loose.Excluded("coinbasse"))
}
