package marketplace

import (
	"context"
	"fmt"

	"github.com/01moynul/locify-golang/internal/models"
)

func (s *Service) Notifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	notifications, err := s.notifications.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead only touches notifications owned by userID.
func (s *Service) MarkNotificationRead(ctx context.Context, userID string, id int64) error {
	if userID == "" {
		return ErrNoIdentity
	}

	ok, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
