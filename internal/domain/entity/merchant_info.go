package entity

// MerchantInfo is the merchant profile returned by the POS API.
type MerchantInfo struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// DailyStats aggregates the merchant's recent orders into dashboard figures.
// Total is expressed in currency units (the POS reports minor units).
type DailyStats struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
