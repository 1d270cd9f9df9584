package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_Status(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		expected CustomerStatus
	}{
		{
			name:     "high spend wins over visit count",
			customer: Customer{TotalSpendCents: 501, VisitCount: 1},
			expected: CustomerStatusVIP,
		},
		{
			name:     "spend at threshold is not VIP",
			customer: Customer{TotalSpendCents: 500, VisitCount: 3},
			expected: CustomerStatusActive,
		},
		{
			name:     "single visit",
			customer: Customer{VisitCount: 1},
			expected: CustomerStatusNew,
		},
		{
			name:     "no visits yet",
			customer: Customer{},
			expected: CustomerStatusLead,
		},
		{
			name:     "repeat visitor with modest spend",
			customer: Customer{TotalSpendCents: 200, VisitCount: 4},
			expected: CustomerStatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.customer.Status())
		})
	}
}
