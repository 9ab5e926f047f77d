package models

import (
	"time"
)

// ResponseStatusPending is the status every new vendor response starts with.
const ResponseStatusPending = "pending"

// VendorResponse is the model for the 'vendor_responses' table.
// A vendor may respond to the same request more than once.
type VendorResponse struct {
	ID        string    `json:"id" db:"id"`
	VendorID  string    `json:"vendorId" db:"vendor_id"`
	RequestID string    `json:"requestId" db:"request_id"`
	Price     *float64  `json:"price,omitempty" db:"price"` // nil = price on request
	Message   string    `json:"message" db:"message"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
