package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/locify-golang/internal/models"
)

type RequestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Insert(ctx context.Context, req *models.ItemRequest) error {
	query := `
		INSERT INTO item_requests (id, user_id, description, image_url, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.UserID, req.Description, nullString(req.ImageURL), req.Status, req.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert item request: %w", err)
	}
	return nil
}

// ListByStatus returns every request with the given status, newest first.
// A non-empty search narrows the result to descriptions containing it.
func (r *RequestRepository) ListByStatus(ctx context.Context, status, search string) ([]*models.ItemRequest, error) {
	query := `
		SELECT id, user_id, description, image_url, status, created_at
		FROM item_requests
		WHERE status = ?`
	args := []any{status}
	if search != "" {
		query += ` AND description LIKE ?`
		args = append(args, likePattern(search))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.ItemRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item requests: %w", err)
	}

	return requests, nil
}

// GetByID returns nil, nil when no request has the given id.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.ItemRequest, error) {
	query := `
		SELECT id, user_id, description, image_url, status, created_at
		FROM item_requests
		WHERE id = ?`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return req, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*models.ItemRequest, error) {
	var req models.ItemRequest
	var imageURL sql.NullString
	if err := row.Scan(&req.ID, &req.UserID, &req.Description, &imageURL, &req.Status, &req.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan item request: %w", err)
	}
	req.ImageURL = stringPtr(imageURL)
	return &req, nil
}
