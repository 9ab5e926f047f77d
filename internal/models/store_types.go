package models

import (
	"time"
)

// Store is the model for the 'stores' table: a vendor's public profile.
// There is no foreign key from vendor_responses to this table.
type Store struct {
	VendorID  string    `json:"vendorId" db:"vendor_id"`
	StoreName string    `json:"storeName" db:"store_name"`
	Slug      string    `json:"slug" db:"slug"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
