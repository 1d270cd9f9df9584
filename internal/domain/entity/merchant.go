// Package entity contains the core business objects of the project.
package entity

import "time"

// Merchant represents a Clover merchant account connected through the OAuth
// flow. The access token is the long-lived credential used for all POS API
// calls on the merchant's behalf; it is never serialized to clients.
type Merchant struct {
	CloverMerchantID string    `json:"clover_merchant_id"` // Merchant identifier assigned by Clover.
	AccessToken      string    `json:"-"`                  // Opaque POS API credential, last-write-wins per merchant.
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
