package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/01moynul/locify-golang/internal/models"
)

// SubmitResponse records a vendor's offer against an open request.
//
// The response starts out "pending". The requester gets a notification in
// the same transaction, unless the vendor is answering their own request.
// The form is cleared only on success.
func (s *Service) SubmitResponse(ctx context.Context, vendorID string, form *ResponseForm) (*models.VendorResponse, error) {
	if vendorID == "" {
		return nil, ErrNoIdentity
	}

	// 1. --- Validate Input ---
	requestID := strings.TrimSpace(form.RequestID)
	if requestID == "" {
		return nil, ErrRequestIDRequired
	}
	if strings.TrimSpace(form.Message) == "" {
		return nil, ErrMessageRequired
	}
	price, err := ParsePrice(form.Price)
	if err != nil {
		return nil, err
	}

	// 2. --- Check the Request ---
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if !req.IsOpen() {
		return nil, ErrRequestClosed
	}

	// 3. --- Store ---
	now := s.now()
	resp := &models.VendorResponse{
		ID:        s.newID(),
		VendorID:  vendorID,
		RequestID: requestID,
		Price:     price,
		Message:   form.Message,
		ImageURL:  optional(form.ImageURL),
		Status:    models.ResponseStatusPending,
		CreatedAt: now,
	}

	if req.UserID == vendorID {
		err = s.responses.Insert(ctx, resp)
	} else {
		link := "/requests/" + requestID
		err = s.responses.InsertWithNotification(ctx, resp, &models.Notification{
			UserID:    req.UserID,
			Message:   fmt.Sprintf("A vendor responded to your request: %s", truncate(strings.TrimSpace(req.Description), 80)),
			Link:      &link,
			CreatedAt: now,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("submit response: %w", err)
	}

	form.Reset()
	return resp, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
