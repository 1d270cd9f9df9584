package entity

import "time"

// CustomerStatus is the derived loyalty label shown on the customers page.
type CustomerStatus string

const (
	CustomerStatusVIP    CustomerStatus = "VIP"
	CustomerStatusNew    CustomerStatus = "New"
	CustomerStatusLead   CustomerStatus = "Lead"
	CustomerStatusActive CustomerStatus = "Active"
)

// Customer represents a POS customer synced into local storage. The (ID,
// MerchantID) pair is the unique key; rows are replaced wholesale on each
// sync batch.
type Customer struct {
	ID              string     `json:"id"`          // Customer identifier assigned by Clover.
	MerchantID      string     `json:"merchant_id"` // Owning merchant.
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email,omitempty"`
	PhoneNumber     string     `json:"phone_number,omitempty"`
	VisitCount      int        `json:"visit_count"`
	TotalSpendCents int64      `json:"total_spend_cents"`
	LastVisitDate   *time.Time `json:"last_visit_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Status classifies the customer for display. Spend threshold is compared
// against the stored spend value, matching the dashboard's display logic.
func (c *Customer) Status() CustomerStatus {
	switch {
	case c.TotalSpendCents > 500:
		return CustomerStatusVIP
	case c.VisitCount == 1:
		return CustomerStatusNew
	case c.VisitCount == 0:
		return CustomerStatusLead
	default:
		return CustomerStatusActive
	}
}
