package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/01moynul/locify-golang/internal/models"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListForUser returns the user's notifications, unread and newest first.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, message, link, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY is_read ASC, created_at DESC
		LIMIT 50`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		var notif models.Notification
		var link sql.NullString
		if err := rows.Scan(
			&notif.ID,
			&notif.UserID,
			&notif.Message,
			&link,
			&notif.IsRead,
			&notif.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notif.Link = stringPtr(link)
		notifications = append(notifications, &notif)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead reports false when the notification does not exist
// or belongs to someone else.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64, userID string) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = 1
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check affected rows: %w", err)
	}
	if rowsAffected > 0 {
		return true, nil
	}

	// Without clientFoundRows MySQL reports 0 for a row that was already read.
	var exists bool
	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM notifications WHERE id = ? AND user_id = ?)`, id, userID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check notification: %w", err)
	}
	return exists, nil
}
