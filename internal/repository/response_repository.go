package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/01moynul/locify-golang/internal/models"
)

type ResponseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

const insertResponseQuery = `
	INSERT INTO vendor_responses (id, vendor_id, request_id, price, message, image_url, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const insertNotificationQuery = `
	INSERT INTO notifications (user_id, message, link, is_read, created_at)
	VALUES (?, ?, ?, 0, ?)`

const selectResponseColumns = `
	SELECT id, vendor_id, request_id, price, message, image_url, status, created_at
	FROM vendor_responses`

func (r *ResponseRepository) Insert(ctx context.Context, resp *models.VendorResponse) error {
	_, err := r.db.ExecContext(ctx, insertResponseQuery, responseArgs(resp)...)
	if err != nil {
		return fmt.Errorf("insert vendor response: %w", err)
	}
	return nil
}

// InsertWithNotification stores the response and a notification for the
// requester in one transaction: either both rows exist or neither does.
func (r *ResponseRepository) InsertWithNotification(ctx context.Context, resp *models.VendorResponse, notif *models.Notification) error {
	// 1. --- Begin Transaction ---
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 2. --- Insert Response ---
	if _, err := tx.ExecContext(ctx, insertResponseQuery, responseArgs(resp)...); err != nil {
		return fmt.Errorf("insert vendor response: %w", err)
	}

	// 3. --- Insert Notification ---
	res, err := tx.ExecContext(ctx, insertNotificationQuery,
		notif.UserID, notif.Message, nullString(notif.Link), notif.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		notif.ID = id
	}

	// 4. --- Commit ---
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vendor response: %w", err)
	}
	return nil
}

// List returns at most limit responses in the datastore's default order.
func (r *ResponseRepository) List(ctx context.Context, limit int) ([]*models.VendorResponse, error) {
	return r.query(ctx, selectResponseColumns+` LIMIT ?`, limit)
}

// ListByRequest returns every response to a request, newest first.
func (r *ResponseRepository) ListByRequest(ctx context.Context, requestID string) ([]*models.VendorResponse, error) {
	return r.query(ctx, selectResponseColumns+` WHERE request_id = ? ORDER BY created_at DESC`, requestID)
}

func (r *ResponseRepository) query(ctx context.Context, query string, args ...any) ([]*models.VendorResponse, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vendor responses: %w", err)
	}
	defer rows.Close()

	responses := []*models.VendorResponse{}
	for rows.Next() {
		var resp models.VendorResponse
		var price sql.NullFloat64
		var imageURL sql.NullString
		if err := rows.Scan(
			&resp.ID,
			&resp.VendorID,
			&resp.RequestID,
			&price,
			&resp.Message,
			&imageURL,
			&resp.Status,
			&resp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vendor response: %w", err)
		}
		resp.Price = floatPtr(price)
		resp.ImageURL = stringPtr(imageURL)
		responses = append(responses, &resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendor responses: %w", err)
	}

	return responses, nil
}

func responseArgs(resp *models.VendorResponse) []any {
	return []any{
		resp.ID,
		resp.VendorID,
		resp.RequestID,
		nullFloat(resp.Price),
		resp.Message,
		nullString(resp.ImageURL),
		resp.Status,
		resp.CreatedAt,
	}
}
