package marketplace

import (
	"bytes"
	"encoding/json"
)

// RequestForm is the short-lived input state of one "post a request" action.
// It is cleared only after a successful submit so a failed submit can be retried.
type RequestForm struct {
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
}

func (f *RequestForm) Reset() {
	*f = RequestForm{}
}

// ResponseForm is the input state of one vendor response.
// RequestID is the request the vendor selected.
type ResponseForm struct {
	RequestID string    `json:"-"`
	Price     PriceText `json:"price"`
	Message   string    `json:"message" binding:"required"`
	ImageURL  string    `json:"imageUrl" binding:"omitempty,url"`
}

// Reset clears the form, including the selected request.
func (f *ResponseForm) Reset() {
	*f = ResponseForm{}
}

// StoreForm is a vendor's store profile input.
type StoreForm struct {
	StoreName string `json:"storeName" binding:"required,max=255"`
	Address   string `json:"address" binding:"max=512"`
}

// PriceText is a price exactly as the user typed it. It accepts a JSON
// string ("10.99"), a JSON number (10.99) or null.
type PriceText string

func (p *PriceText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceText(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*p = PriceText(n.String())
		return nil
	}
}
