package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/locify-golang/internal/models"
)

type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

const selectStoreColumns = `
	SELECT vendor_id, store_name, slug, address, created_at, updated_at
	FROM stores`

// ListAll returns every store profile.
func (r *StoreRepository) ListAll(ctx context.Context) ([]*models.Store, error) {
	rows, err := r.db.QueryContext(ctx, selectStoreColumns)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	stores := []*models.Store{}
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.VendorID, &s.StoreName, &s.Slug, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}

	return stores, nil
}

// GetByVendor returns nil, nil when the vendor has no store yet.
func (r *StoreRepository) GetByVendor(ctx context.Context, vendorID string) (*models.Store, error) {
	var s models.Store
	err := r.db.QueryRowContext(ctx, selectStoreColumns+` WHERE vendor_id = ?`, vendorID).
		Scan(&s.VendorID, &s.StoreName, &s.Slug, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Upsert creates the vendor's store or replaces its name, slug and address.
// Only vendor_id decides which row is updated; a slug already taken by another
// vendor fails the write instead of touching that vendor's store.
func (r *StoreRepository) Upsert(ctx context.Context, s *models.Store) error {
	// 1. --- Begin Transaction ---
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 2. --- Lock The Vendor's Row, If Any ---
	var vendorID string
	err = tx.QueryRowContext(ctx, `SELECT vendor_id FROM stores WHERE vendor_id = ? FOR UPDATE`, s.VendorID).Scan(&vendorID)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lock store: %w", err)
	}

	// 3. --- Update Or Insert ---
	if exists {
		_, err = tx.ExecContext(ctx, `
			UPDATE stores
			SET store_name = ?, slug = ?, address = ?, updated_at = ?
			WHERE vendor_id = ?`,
			s.StoreName, s.Slug, s.Address, s.UpdatedAt, s.VendorID)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO stores (vendor_id, store_name, slug, address, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.VendorID, s.StoreName, s.Slug, s.Address, s.CreatedAt, s.UpdatedAt)
	}
	if err != nil {
		return fmt.Errorf("save store: %w", err)
	}

	// 4. --- Commit ---
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit store: %w", err)
	}
	return nil
}
