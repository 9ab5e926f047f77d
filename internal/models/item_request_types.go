package models

import (
	"time"
)

// Request statuses. Only "open" is ever written today.
const (
	RequestStatusOpen   = "open"
	RequestStatusClosed = "closed"
)

// ItemRequest is the model for the 'item_requests' table.
// It is a buyer's posted description of a product they want.
type ItemRequest struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// IsOpen reports whether vendors may still respond to the request.
func (r *ItemRequest) IsOpen() bool {
	return r.Status == RequestStatusOpen
}
