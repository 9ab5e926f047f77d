package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/01moynul/locify-golang/internal/models"
)

// SubmitRequest posts a new open item request for userID.
//
// An anonymous caller gets ErrNoIdentity and nothing is written. On a
// datastore failure the form is left as it was. On success the form is
// cleared and onCreated (if not nil) is called once with the stored request.
// Submitting twice creates two requests.
func (s *Service) SubmitRequest(ctx context.Context, userID string, form *RequestForm, onCreated func(*models.ItemRequest)) (*models.ItemRequest, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	// Blank text is rejected; anything else is stored as typed.
	if strings.TrimSpace(form.Description) == "" {
		return nil, ErrDescriptionRequired
	}

	req := &models.ItemRequest{
		ID:          s.newID(),
		UserID:      userID,
		Description: form.Description,
		ImageURL:    optional(form.ImageURL),
		Status:      models.RequestStatusOpen,
		CreatedAt:   s.now(),
	}
	if err := s.requests.Insert(ctx, req); err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}

	form.Reset()
	if onCreated != nil {
		onCreated(req)
	}
	return req, nil
}

// OpenRequests lists every open request, newest first. A non-blank search
// keeps only requests whose description contains it.
func (s *Service) OpenRequests(ctx context.Context, search string) ([]*models.ItemRequest, error) {
	requests, err := s.requests.ListByStatus(ctx, models.RequestStatusOpen, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list open requests: %w", err)
	}
	return requests, nil
}

// ResponsesForRequest returns the vendor responses to one of the caller's
// own requests.
func (s *Service) ResponsesForRequest(ctx context.Context, userID, requestID string) ([]*models.VendorResponse, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.UserID != userID {
		return nil, ErrForbidden
	}

	responses, err := s.responses.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return responses, nil
}

// optional maps blank input to a NULL column.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
