package models

// FeedEntry is one display record on the landing page feed.
// It is not stored; it is assembled from a VendorResponse and,
// when one exists, the vendor's Store.
type FeedEntry struct {
	ResponseID  string `json:"responseId"`
	RequestID   string `json:"requestId"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Location    string `json:"location"`

	// Placeholder fields. They are random stand-ins for reputation and
	// geolocation data that is not modeled yet, and are omitted when
	// placeholders are switched off.
	Rating       *float64 `json:"rating,omitempty"`
	Distance     string   `json:"distance,omitempty"`
	ResponseTime string   `json:"responseTime,omitempty"`
}
